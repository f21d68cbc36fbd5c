package di

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/config"
	"github.com/bookloop/bookloop-go/internal/observability"
)

// ObservabilityModule provides metrics and tracing dependencies
var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		provideMetricsProvider,
		provideTracingProvider,
	),
)

func provideMetricsProvider(
	lc fx.Lifecycle,
	appCfg *config.AppConfig,
	obsCfg *config.ObservabilityConfig,
	logger *zap.Logger,
) (*observability.MetricsProvider, error) {
	cfg := observability.DefaultMetricsConfig()
	cfg.Enabled = obsCfg.MetricsEnabled
	cfg.ServiceName = appCfg.Name

	mp, err := observability.NewMetricsProvider(cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return mp.Shutdown(ctx)
		},
	})

	return mp, nil
}

func provideTracingProvider(
	lc fx.Lifecycle,
	appCfg *config.AppConfig,
	obsCfg *config.ObservabilityConfig,
	logger *zap.Logger,
) (*observability.TracingProvider, error) {
	cfg := observability.DefaultTracingConfig()
	cfg.Enabled = obsCfg.TracingEnabled
	cfg.ServiceName = appCfg.Name
	cfg.ServiceVersion = appCfg.Version
	cfg.Environment = appCfg.Environment

	tp, err := observability.NewTracingProvider(cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	return tp, nil
}
