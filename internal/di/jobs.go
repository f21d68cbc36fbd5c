package di

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/config"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/jobs"
	"github.com/bookloop/bookloop-go/internal/jobs/handler"
	"github.com/bookloop/bookloop-go/internal/jobs/lock"
	"github.com/bookloop/bookloop-go/internal/jobs/queue"
	"github.com/bookloop/bookloop-go/internal/jobs/scheduler"
	"github.com/bookloop/bookloop-go/internal/jobs/worker"
)

// JobsModule provides the background job system
var JobsModule = fx.Module("jobs",
	fx.Provide(
		provideRedisClient,
		provideJobQueue,
		provideLockManager,
		provideWorkerPool,
		provideScheduler,
		provideJobService,
		provideHandlerRegistry,
		provideJobHandlers,
	),
	fx.Invoke(
		registerJobHandlers,
		registerScheduledJobs,
		startJobWorkers,
	),
)

func provideRedisClient(lc fx.Lifecycle, cfg *config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Connected to Redis",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
	)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Redis connection")
			return client.Close()
		},
	})

	return client, nil
}

func provideJobQueue(client *redis.Client) *queue.RedisQueue {
	return queue.NewRedisQueue(client)
}

func provideLockManager(client *redis.Client, jobsCfg *config.JobsConfig, logger *zap.Logger) *lock.LockManager {
	lockConfig := lock.DefaultLockManagerConfig()
	if jobsCfg.LockTTL > 0 {
		lockConfig.LockTTL = jobsCfg.LockTTL
	}
	lm := lock.NewLockManager(client, lockConfig)
	logger.Info("Lock manager initialized",
		zap.String("worker_id", lm.GetWorkerID()),
		zap.Duration("lock_ttl", lockConfig.LockTTL),
		zap.Duration("idempotency_ttl", lockConfig.IdempotencyTTL),
	)
	return lm
}

func provideWorkerPool(
	q *queue.RedisQueue,
	lm *lock.LockManager,
	jobsCfg *config.JobsConfig,
	logger *zap.Logger,
) *worker.WorkerPool {
	poolConfig := worker.DefaultWorkerPoolConfig()
	if jobsCfg.Concurrency > 0 {
		poolConfig.Concurrency = jobsCfg.Concurrency
	}
	pool := worker.NewWorkerPool(q, logger, poolConfig)
	pool.SetLockManager(lm)
	return pool
}

func provideScheduler(client *redis.Client, q *queue.RedisQueue, logger *zap.Logger) *scheduler.Scheduler {
	return scheduler.NewScheduler(client, q, logger)
}

func provideJobService(q *queue.RedisQueue, pool *worker.WorkerPool, sched *scheduler.Scheduler) jobs.Service {
	return jobs.NewJobService(q, pool, sched)
}

func provideHandlerRegistry(pool *worker.WorkerPool, logger *zap.Logger) *handler.Registry {
	return handler.NewRegistry(pool, logger)
}

func provideJobHandlers(
	notificationService service.NotificationService,
	circleRepo repository.CircleRepository,
	logger *zap.Logger,
) *handler.Handlers {
	return handler.NewHandlers(notificationService, circleRepo, logger)
}

func registerJobHandlers(registry *handler.Registry, handlers *handler.Handlers, logger *zap.Logger) {
	handlers.RegisterAll(registry)
	logger.Info("Registered job handlers")
}

// registerScheduledJobs registers the recurring maintenance jobs
func registerScheduledJobs(sched *scheduler.Scheduler, jobsCfg *config.JobsConfig, logger *zap.Logger) {
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
		logger.Warn("Failed to register notification-cleanup job", zap.Error(err))
	}

	if err := sched.RegisterJob(scheduler.ScheduledJob{
		Name:     "member-count-reconcile",
		Schedule: jobsCfg.ReconcileSchedule,
		JobType:  handler.JobTypeMemberReconcile,
		Payload:  handler.MemberReconcilePayload{},
		Priority: jobs.PriorityNormal,
		Tags:     []string{"maintenance", "circles"},
	}); err != nil {
		logger.Warn("Failed to register member-count-reconcile job", zap.Error(err))
	}

	logger.Info("Registered scheduled jobs")
}

// startJobWorkers starts the worker pool and scheduler
func startJobWorkers(lc fx.Lifecycle, pool *worker.WorkerPool, sched *scheduler.Scheduler, lm *lock.LockManager, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting job worker pool",
				zap.String("worker_id", lm.GetWorkerID()),
			)
			if err := pool.Start(ctx); err != nil {
				return fmt.Errorf("failed to start worker pool: %w", err)
			}

			logger.Info("Starting job scheduler")
			if err := sched.Start(ctx); err != nil {
				return fmt.Errorf("failed to start scheduler: %w", err)
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping job scheduler")
			if err := sched.Stop(ctx); err != nil {
				logger.Warn("Error stopping scheduler", zap.Error(err))
			}

			logger.Info("Stopping job worker pool")
			if err := pool.Stop(ctx); err != nil {
				logger.Warn("Error stopping worker pool", zap.Error(err))
			}

			logger.Info("Releasing all job locks")
			if err := lm.ReleaseAllLocks(ctx); err != nil {
				logger.Warn("Error releasing locks", zap.Error(err))
			}

			return nil
		},
	})
}
