package di

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/config"
	graphqlctrl "github.com/bookloop/bookloop-go/internal/controller/graphql"
	httpctrl "github.com/bookloop/bookloop-go/internal/controller/http"
	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/middleware"
	"github.com/bookloop/bookloop-go/internal/observability"
	"github.com/bookloop/bookloop-go/internal/websocket"
)

// HTTPServerModule provides HTTP server dependencies
var HTTPServerModule = fx.Module("http_server",
	fx.Provide(provideGinEngine),
	fx.Provide(provideHTTPServer),
	fx.Invoke(registerHTTPRoutes),
	fx.Invoke(seedOptions),
	fx.Invoke(startHTTPServer),
)

func provideGinEngine(
	cfg *config.AppConfig,
	obsCfg *config.ObservabilityConfig,
	metricsProvider *observability.MetricsProvider,
	logger *zap.Logger,
) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if obsCfg.TracingEnabled {
		router.Use(observability.TracingMiddleware(cfg.Name))
	}
	if obsCfg.MetricsEnabled {
		router.Use(observability.MetricsMiddleware(metricsProvider))
	}

	return router
}

func provideHTTPServer(cfg *config.ServerConfig, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// Controllers is a struct that holds all HTTP controllers for fx to inject
type Controllers struct {
	fx.In

	User         *httpctrl.UserController
	Book         *httpctrl.BookController
	Circle       *httpctrl.CircleController
	Post         *httpctrl.PostController
	Trade        *httpctrl.TradeController
	Notification *httpctrl.NotificationController
	Options      *httpctrl.OptionsController
	Recommend    *httpctrl.RecommendController
	GraphQL      *graphqlctrl.Handler
	WebSocket    *websocket.Handler
}

func registerHTTPRoutes(
	router *gin.Engine,
	controllers Controllers,
	authMiddleware *middleware.AuthMiddleware,
	securityCfg *config.SecurityConfig,
	obsCfg *config.ObservabilityConfig,
	metricsProvider *observability.MetricsProvider,
) {
	// Health endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if obsCfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metricsProvider.Handler()))
	}

	// Realtime endpoint lives outside /api so clients can pass identity
	// through the query string during the upgrade
	root := router.Group("")
	controllers.WebSocket.RegisterRoutes(root)

	// API routes
	api := router.Group("/api")
	if securityCfg.RequireAuth {
		api.Use(authMiddleware.Authenticate())
	} else {
		api.Use(authMiddleware.OptionalAuth())
	}

	controllers.User.RegisterRoutes(api)
	controllers.Book.RegisterRoutes(api)
	controllers.Circle.RegisterRoutes(api)
	controllers.Post.RegisterRoutes(api)
	controllers.Trade.RegisterRoutes(api)
	controllers.Notification.RegisterRoutes(api)
	controllers.Options.RegisterRoutes(api)
	controllers.Recommend.RegisterRoutes(api)
	controllers.GraphQL.RegisterRoutes(api)
}

// seedOptions writes the default genre and language lists on first boot
func seedOptions(lc fx.Lifecycle, optionsService service.OptionsService, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := optionsService.Seed(ctx); err != nil {
				logger.Warn("Failed to seed options", zap.Error(err))
			}
			return nil
		},
	})
}

func startHTTPServer(lc fx.Lifecycle, server *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting HTTP server", zap.String("address", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
