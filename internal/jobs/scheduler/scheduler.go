package scheduler

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/jobs"
)

const (
	// Common cron expressions
	EveryMinute      = "* * * * *"
	EveryFiveMinutes = "*/5 * * * *"
	EveryHour        = "0 * * * *"
	DailyMidnight    = "0 0 * * *"

	leaderKey           = "bookloop:jobs:scheduler:leader"
	cronExecutionPrefix = "bookloop:jobs:cron:execution:"
)

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	LeaderLockTTL        time.Duration
	CronDeduplicationTTL time.Duration
}

// DefaultSchedulerConfig returns default scheduler configuration
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		LeaderLockTTL:        30 * time.Second,
		CronDeduplicationTTL: 24 * time.Hour,
	}
}

// ScheduledJob represents a recurring job
type ScheduledJob struct {
	Name      string
	Schedule  string // Cron expression
	JobType   string
	Payload   any
	Priority  jobs.Priority
	UniqueKey string // Optional: base key for deduplication
	Tags      []string
}

// Scheduler manages cron-based job scheduling with leader election. Only the
// leader enqueues, so one instance fires each schedule across the fleet.
type Scheduler struct {
	redis  *redis.Client
	queue  jobs.Queue
	logger *zap.Logger
	config SchedulerConfig
	cron   *cron.Cron
	jobs   map[string]ScheduledJob
	mu     sync.RWMutex

	instanceID string
	isLeader   bool
	leaderMu   sync.RWMutex

	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewScheduler creates a new scheduler
func NewScheduler(redisClient *redis.Client, jobQueue jobs.Queue, logger *zap.Logger) *Scheduler {
	return NewSchedulerWithConfig(redisClient, jobQueue, logger, DefaultSchedulerConfig())
}

// NewSchedulerWithConfig creates a new scheduler with custom configuration
func NewSchedulerWithConfig(redisClient *redis.Client, jobQueue jobs.Queue, logger *zap.Logger, config SchedulerConfig) *Scheduler {
	return &Scheduler{
		redis:      redisClient,
		queue:      jobQueue,
		logger:     logger,
		config:     config,
		cron:       cron.New(),
		jobs:       make(map[string]ScheduledJob),
		instanceID: uuid.New().String(),
		stopCh:     make(chan struct{}),
	}
}

// RegisterJob registers a scheduled job
func (s *Scheduler) RegisterJob(job ScheduledJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.Name]; exists {
		return fmt.Errorf("job %s already registered", job.Name)
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(job.Schedule); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	s.jobs[job.Name] = job
	s.logger.Info("Registered scheduled job",
		zap.String("name", job.Name),
		zap.String("schedule", job.Schedule),
		zap.String("job_type", job.JobType),
	)

	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start(ctx context.Context) error {
	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	s.running = true
	s.logger.Info("Starting scheduler", zap.String("instance_id", s.instanceID))

	s.wg.Add(1)
	go s.leaderElectionLoop(ctx)

	s.setupCronJobs()
	s.cron.Start()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop(ctx context.Context) error {
	if !s.running {
		return nil
	}

	s.logger.Info("Stopping scheduler")
	s.running = false
	close(s.stopCh)

	cronCtx := s.cron.Stop()
	select {
	case <-cronCtx.Done():
	case <-ctx.Done():
	}

	s.releaseLeadership(ctx)

	s.wg.Wait()
	return nil
}

// setupCronJobs sets up all registered cron jobs
func (s *Scheduler) setupCronJobs() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, job := range s.jobs {
		j := job
		_, err := s.cron.AddFunc(j.Schedule, func() {
			s.executeScheduledJob(context.Background(), j)
		})
		if err != nil {
			s.logger.Error("Failed to add cron job",
				zap.String("name", j.Name),
				zap.Error(err),
			)
		}
	}
}

// executeScheduledJob executes a scheduled job if this instance is the leader
func (s *Scheduler) executeScheduledJob(ctx context.Context, job ScheduledJob) {
	s.leaderMu.RLock()
	isLeader := s.isLeader
	s.leaderMu.RUnlock()

	if !isLeader {
		return
	}

	executionWindow := s.getExecutionWindow(job.Schedule)
	executionKey := fmt.Sprintf("%s:%s", job.Name, executionWindow)

	acquired, err := s.acquireCronExecutionLock(ctx, executionKey)
	if err != nil {
		s.logger.Error("Failed to acquire cron execution lock",
			zap.String("name", job.Name),
			zap.Error(err),
		)
		return
	}
	if !acquired {
		s.logger.Debug("Cron job already executed in this window",
			zap.String("name", job.Name),
			zap.String("window", executionWindow),
		)
		return
	}

	s.logger.Info("Executing scheduled job",
		zap.String("name", job.Name),
		zap.String("job_type", job.JobType),
		zap.String("execution_window", executionWindow),
	)

	uniqueKey := s.generateJobUniqueKey(job, executionWindow)

	opts := []jobs.JobOption{
		jobs.WithPriority(job.Priority),
		jobs.WithTags(append(job.Tags, "scheduled", "cron:"+job.Name)...),
		jobs.WithUniqueKey(uniqueKey),
	}

	payload, err := jobs.NewJobPayload(job.JobType, job.Payload, opts...)
	if err != nil {
		s.logger.Error("Failed to create job payload",
			zap.String("name", job.Name),
			zap.Error(err),
		)
		return
	}

	if err := s.queue.Enqueue(ctx, payload); err != nil {
		if err == jobs.ErrDuplicateJob {
			s.logger.Debug("Skipping duplicate scheduled job",
				zap.String("name", job.Name),
			)
			return
		}
		s.logger.Error("Failed to enqueue scheduled job",
			zap.String("name", job.Name),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("Scheduled job enqueued",
		zap.String("name", job.Name),
		zap.String("job_id", payload.ID),
	)
}

// getExecutionWindow returns a time window identifier based on the cron schedule
func (s *Scheduler) getExecutionWindow(schedule string) string {
	now := time.Now().UTC()

	switch schedule {
	case EveryMinute:
		return now.Format("2006-01-02T15:04")
	case EveryFiveMinutes:
		minute := (now.Minute() / 5) * 5
		return now.Format("2006-01-02T15:") + fmt.Sprintf("%02d", minute)
	case EveryHour:
		return now.Format("2006-01-02T15")
	case DailyMidnight:
		return now.Format("2006-01-02")
	default:
		return now.Format("2006-01-02T15:04")
	}
}

// generateJobUniqueKey creates a unique key for job deduplication
func (s *Scheduler) generateJobUniqueKey(job ScheduledJob, window string) string {
	baseKey := job.UniqueKey
	if baseKey == "" {
		baseKey = job.Name
	}

	data := fmt.Sprintf("%s:%s:%s:%v", baseKey, job.JobType, window, job.Payload)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("cron:%s:%s", job.Name, hex.EncodeToString(hash[:8]))
}

// acquireCronExecutionLock tries to acquire a lock for cron execution
func (s *Scheduler) acquireCronExecutionLock(ctx context.Context, executionKey string) (bool, error) {
	lockKey := cronExecutionPrefix + executionKey

	acquired, err := s.redis.SetNX(ctx, lockKey, s.instanceID, s.config.CronDeduplicationTTL).Result()
	if err != nil {
		return false, err
	}

	return acquired, nil
}

// leaderElectionLoop continuously tries to acquire/maintain leadership
func (s *Scheduler) leaderElectionLoop(ctx context.Context) {
	defer s.wg.Done()

	s.tryAcquireLeadership(ctx)

	ticker := time.NewTicker(s.config.LeaderLockTTL / 3)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tryAcquireLeadership(ctx)
		}
	}
}

// tryAcquireLeadership attempts to acquire or renew leadership
func (s *Scheduler) tryAcquireLeadership(ctx context.Context) {
	s.leaderMu.Lock()
	defer s.leaderMu.Unlock()

	set, err := s.redis.SetNX(ctx, leaderKey, s.instanceID, s.config.LeaderLockTTL).Result()
	if err != nil {
		s.logger.Error("Failed to acquire leadership", zap.Error(err))
		s.isLeader = false
		return
	}

	if set {
		if !s.isLeader {
			s.logger.Info("Acquired scheduler leadership", zap.String("instance_id", s.instanceID))
		}
		s.isLeader = true
		return
	}

	currentLeader, err := s.redis.Get(ctx, leaderKey).Result()
	if err != nil {
		s.isLeader = false
		return
	}

	if currentLeader == s.instanceID {
		// Renew our lease
		s.redis.Expire(ctx, leaderKey, s.config.LeaderLockTTL)
		s.isLeader = true
	} else {
		if s.isLeader {
			s.logger.Info("Lost scheduler leadership",
				zap.String("instance_id", s.instanceID),
				zap.String("new_leader", currentLeader),
			)
		}
		s.isLeader = false
	}
}

// releaseLeadership releases leadership when shutting down
func (s *Scheduler) releaseLeadership(ctx context.Context) {
	s.leaderMu.Lock()
	defer s.leaderMu.Unlock()

	if !s.isLeader {
		return
	}

	currentLeader, err := s.redis.Get(ctx, leaderKey).Result()
	if err == nil && currentLeader == s.instanceID {
		s.redis.Del(ctx, leaderKey)
		s.logger.Info("Released scheduler leadership", zap.String("instance_id", s.instanceID))
	}

	s.isLeader = false
}

// IsLeader returns whether this instance is the leader
func (s *Scheduler) IsLeader() bool {
	s.leaderMu.RLock()
	defer s.leaderMu.RUnlock()
	return s.isLeader
}

// ListJobs returns all registered scheduled jobs
func (s *Scheduler) ListJobs() []jobs.ScheduledJobInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]jobs.ScheduledJobInfo, 0, len(s.jobs))
	for _, job := range s.jobs {
		result = append(result, jobs.ScheduledJobInfo{
			Name:     job.Name,
			Schedule: job.Schedule,
			JobType:  job.JobType,
			Priority: job.Priority.String(),
		})
	}
	return result
}

// GetNextRun returns the next scheduled run time for a job
func (s *Scheduler) GetNextRun(jobName string) (time.Time, error) {
	s.mu.RLock()
	job, exists := s.jobs[jobName]
	s.mu.RUnlock()

	if !exists {
		return time.Time{}, fmt.Errorf("job %s not found", jobName)
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(job.Schedule)
	if err != nil {
		return time.Time{}, err
	}

	return schedule.Next(time.Now()), nil
}
