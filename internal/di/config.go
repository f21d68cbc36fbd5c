package di

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/config"
)

// ConfigModule provides configuration dependencies
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
		provideAppConfig,
		provideServerConfig,
		provideDatabaseConfig,
		provideRedisConfig,
		provideJWTConfig,
		provideSecurityConfig,
		provideRecommendConfig,
		provideJobsConfig,
		provideLogConfig,
		provideObservabilityConfig,
	),
	fx.Invoke(startConfigWatcher),
)

// startConfigWatcher watches the config file for edits. Reloads only update
// the watcher's snapshot; components read their config at construction, so a
// restart is still needed for most settings to take effect.
func startConfigWatcher(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) {
	var watcher *config.Watcher
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			w, err := config.NewWatcher(cfg, logger)
			if err != nil {
				logger.Warn("Config watcher disabled", zap.Error(err))
				return nil
			}
			w.OnChange(func(c *config.Config) {
				logger.Info("Configuration reloaded",
					zap.String("log_level", c.Log.Level),
				)
			})
			watcher = w
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if watcher != nil {
				return watcher.Close()
			}
			return nil
		},
	})
}

func provideAppConfig(cfg *config.Config) *config.AppConfig {
	return &cfg.App
}

func provideServerConfig(cfg *config.Config) *config.ServerConfig {
	return &cfg.Server
}

func provideDatabaseConfig(cfg *config.Config) *config.DatabaseConfig {
	return &cfg.Database
}

func provideRedisConfig(cfg *config.Config) *config.RedisConfig {
	return &cfg.Redis
}

func provideJWTConfig(cfg *config.Config) *config.JWTConfig {
	return &cfg.JWT
}

func provideSecurityConfig(cfg *config.Config) *config.SecurityConfig {
	return &cfg.Security
}

func provideRecommendConfig(cfg *config.Config) *config.RecommendConfig {
	return &cfg.Recommend
}

func provideJobsConfig(cfg *config.Config) *config.JobsConfig {
	return &cfg.Jobs
}

func provideLogConfig(cfg *config.Config) *config.LogConfig {
	return &cfg.Log
}

func provideObservabilityConfig(cfg *config.Config) *config.ObservabilityConfig {
	return &cfg.Observability
}
