package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/config"
	"github.com/bookloop/bookloop-go/pkg/logger"
)

// LoggerModule provides logging dependencies
var LoggerModule = fx.Module("logger",
	fx.Provide(provideLogger),
)

func provideLogger(appCfg *config.AppConfig, logCfg *config.LogConfig) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:       logCfg.Level,
		Development: appCfg.Debug,
		Encoding:    logCfg.Encoding,
	})
}
