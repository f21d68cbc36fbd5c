package di

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/security"
	"github.com/bookloop/bookloop-go/internal/websocket"
)

// WebSocketModule provides the realtime hub and its HTTP handler. The hub
// also backs the EventPublisher the domain services fan events out through.
var WebSocketModule = fx.Module("websocket",
	fx.Provide(
		provideWebSocketConfig,
		provideHub,
		provideWebSocketHandler,
		provideEventPublisher,
	),
	fx.Invoke(runHub),
)

func provideWebSocketConfig() *websocket.WebSocketConfig {
	return websocket.DefaultWebSocketConfig()
}

func provideHub(logger *zap.Logger) *websocket.Hub {
	return websocket.NewHub(logger)
}

func provideWebSocketHandler(
	config *websocket.WebSocketConfig,
	hub *websocket.Hub,
	jwtProvider *security.JWTProvider,
	logger *zap.Logger,
) *websocket.Handler {
	return websocket.NewHandler(config, hub, jwtProvider, logger)
}

func provideEventPublisher(hub *websocket.Hub) service.EventPublisher {
	return websocket.NewHubPublisher(hub)
}

func runHub(lc fx.Lifecycle, hub *websocket.Hub, handler *websocket.Handler, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting websocket hub")
			go hub.Run()
			handler.StartHeartbeat()
			return nil
		},
	})
}
