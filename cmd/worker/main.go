package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/config"
	mongodao "github.com/bookloop/bookloop-go/internal/domain/dao/mongo"
	"github.com/bookloop/bookloop-go/internal/domain/repository/impl"
	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/jobs"
	"github.com/bookloop/bookloop-go/internal/jobs/handler"
	"github.com/bookloop/bookloop-go/internal/jobs/lock"
	"github.com/bookloop/bookloop-go/internal/jobs/queue"
	"github.com/bookloop/bookloop-go/internal/jobs/scheduler"
	"github.com/bookloop/bookloop-go/internal/jobs/worker"
	"github.com/bookloop/bookloop-go/pkg/logger"
)

// Standalone worker process. Runs the same queue, scheduler and handlers as
// the embedded worker in the API server, so either deployment shape works.
func main() {
	cfg, log := mustLoadConfig()
	defer log.Sync()

	log.Info("Starting BookLoop worker",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	ctx := context.Background()
	redisClient := mustConnectRedis(ctx, cfg, log)
	defer redisClient.Close()

	db, disconnect := mustConnectMongo(ctx, cfg, log)
	defer disconnect()

	jobQueue := queue.NewRedisQueue(redisClient)
	lockManager := setupLockManager(redisClient, cfg, log)
	pool := setupWorkerPool(jobQueue, lockManager, cfg, log)

	registry := handler.NewRegistry(pool, log)
	registerHandlers(registry, db, log)

	sched := scheduler.NewScheduler(redisClient, jobQueue, log)
	registerScheduledJobs(sched, &cfg.Jobs, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := pool.Start(ctx); err != nil {
		log.Fatal("Failed to start worker pool", zap.Error(err))
	}
	if err := sched.Start(ctx); err != nil {
		log.Fatal("Failed to start scheduler", zap.Error(err))
	}

	go startHealthServer(sched, lockManager, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutdown signal received, stopping workers...")
	cancel()
	gracefulShutdown(pool, sched, lockManager, log)
}

func mustLoadConfig() (*config.Config, *zap.Logger) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.App.Debug,
		Encoding:    cfg.Log.Encoding,
	})
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	return cfg, log
}

func mustConnectRedis(ctx context.Context, cfg *config.Config, log *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Connected to Redis", zap.String("host", cfg.Redis.Host))
	return client
}

func mustConnectMongo(ctx context.Context, cfg *config.Config, log *zap.Logger) (*mongo.Database, func()) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Database.MongoURI()))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB", zap.Error(err))
	}
	log.Info("Connected to MongoDB", zap.String("database", cfg.Database.Name))

	disconnect := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn("Error disconnecting MongoDB", zap.Error(err))
		}
	}
	return client.Database(cfg.Database.Name), disconnect
}

func setupLockManager(redisClient *redis.Client, cfg *config.Config, log *zap.Logger) *lock.LockManager {
	lockConfig := lock.DefaultLockManagerConfig()
	if cfg.Jobs.LockTTL > 0 {
		lockConfig.LockTTL = cfg.Jobs.LockTTL
	}
	lm := lock.NewLockManager(redisClient, lockConfig)
	log.Info("Lock manager initialized",
		zap.String("worker_id", lm.GetWorkerID()),
		zap.Duration("lock_ttl", lockConfig.LockTTL),
	)
	return lm
}

func setupWorkerPool(jobQueue *queue.RedisQueue, lockManager *lock.LockManager, cfg *config.Config, log *zap.Logger) *worker.WorkerPool {
	workerConfig := worker.DefaultWorkerPoolConfig()
	if cfg.Jobs.Concurrency > 0 {
		workerConfig.Concurrency = cfg.Jobs.Concurrency
	}
	pool := worker.NewWorkerPool(jobQueue, log, workerConfig)
	pool.SetLockManager(lockManager)
	return pool
}

// registerHandlers wires the domain job handlers against the database
func registerHandlers(registry *handler.Registry, db *mongo.Database, log *zap.Logger) {
	notificationRepo := impl.NewNotificationRepository(mongodao.NewNotificationDAO(db))
	circleRepo := impl.NewCircleRepository(mongodao.NewCircleDAO(db))
	notificationService := service.NewNotificationService(notificationRepo)

	handlers := handler.NewHandlers(notificationService, circleRepo, log)
	handlers.RegisterAll(registry)
	log.Info("Registered job handlers")
}

func registerScheduledJobs(sched *scheduler.Scheduler, jobsCfg *config.JobsConfig, log *zap.Logger) {
	retentionDays := int(jobsCfg.NotificationRetention.Hours() / 24)

	if err := sched.RegisterJob(scheduler.ScheduledJob{
		Name:     "notification-cleanup",
		Schedule: jobsCfg.CleanupSchedule,
		JobType:  handler.JobTypeNotificationCleanup,
		Payload: handler.NotificationCleanupPayload{
			RetentionDays: retentionDays,
		},
		Priority: jobs.PriorityLow,
		Tags:     []string{"maintenance", "notifications"},
	}); err != nil {
		log.Warn("Failed to register notification-cleanup job", zap.Error(err))
	}

	if err := sched.RegisterJob(scheduler.ScheduledJob{
		Name:     "member-count-reconcile",
		Schedule: jobsCfg.ReconcileSchedule,
		JobType:  handler.JobTypeMemberReconcile,
		Payload:  handler.MemberReconcilePayload{},
		Priority: jobs.PriorityNormal,
		Tags:     []string{"maintenance", "circles"},
	}); err != nil {
		log.Warn("Failed to register member-count-reconcile job", zap.Error(err))
	}

	log.Info("Registered scheduled jobs")
}

func startHealthServer(sched *scheduler.Scheduler, lockManager *lock.LockManager, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth(sched, lockManager))
	mux.HandleFunc("/ready", handleReady())
	mux.HandleFunc("/running", handleRunning(lockManager))

	healthPort := os.Getenv("BOOKLOOP_WORKER_HEALTH_PORT")
	if healthPort == "" {
		healthPort = "9100"
	}
	log.Info("Starting worker health server", zap.String("port", healthPort))
	if err := http.ListenAndServe(":"+healthPort, mux); err != nil {
		log.Error("Worker health server error", zap.Error(err))
	}
}

func handleHealth(sched *scheduler.Scheduler, lockManager *lock.LockManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := jobs.GlobalMetrics.GetHealthCheck(sched.IsLeader())
		w.Header().Set("Content-Type", "application/json")
		if health.Status == "healthy" {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status":         health.Status,
			"workers_active": health.WorkersActive,
			"jobs_pending":   health.JobsPending,
			"is_leader":      health.IsLeader,
			"worker_id":      lockManager.GetWorkerID(),
		})
	}
}

func handleReady() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ready"}`))
	}
}

func handleRunning(lockManager *lock.LockManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runningJobs, err := lockManager.GetRunningJobs(r.Context())
		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"running_jobs": len(runningJobs),
			"jobs":         runningJobs,
		})
	}
}

func gracefulShutdown(pool *worker.WorkerPool, sched *scheduler.Scheduler, lockManager *lock.LockManager, log *zap.Logger) {
	workerConfig := worker.DefaultWorkerPoolConfig()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), workerConfig.ShutdownTimeout)
	defer cancel()

	if err := sched.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping scheduler", zap.Error(err))
	}
	if err := pool.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping worker pool", zap.Error(err))
	}
	if err := lockManager.ReleaseAllLocks(shutdownCtx); err != nil {
		log.Error("Error releasing locks", zap.Error(err))
	}
	log.Info("Worker shutdown complete")
}
