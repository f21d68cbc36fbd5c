package di

import (
	"go.uber.org/fx"

	"github.com/bookloop/bookloop-go/internal/config"
	"github.com/bookloop/bookloop-go/internal/security"
)

// SecurityModule provides security-related dependencies
var SecurityModule = fx.Module("security",
	fx.Provide(
		provideJWTProvider,
		providePasswordHasher,
		provideSecurityService,
	),
)

func provideJWTProvider(cfg *config.JWTConfig) *security.JWTProvider {
	return security.NewJWTProvider(cfg)
}

func providePasswordHasher() *security.PasswordHasher {
	return security.NewPasswordHasher()
}

func provideSecurityService() *security.SecurityService {
	return security.NewSecurityService()
}
