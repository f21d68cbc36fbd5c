package jobs

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics collects job system counters shared by the worker pool and the
// health endpoint.
type Metrics struct {
	// Counters
	JobsEnqueued  atomic.Int64
	JobsCompleted atomic.Int64
	JobsFailed    atomic.Int64
	JobsRetried   atomic.Int64
	JobsDead      atomic.Int64

	// Gauges
	JobsPending   atomic.Int64
	JobsRunning   atomic.Int64
	WorkersActive atomic.Int64

	durations  []time.Duration
	durationMu sync.RWMutex
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		durations: make([]time.Duration, 0),
	}
}

// Global metrics instance
var GlobalMetrics = NewMetrics()

// RecordJobEnqueued records a job being enqueued
func (m *Metrics) RecordJobEnqueued(Priority) {
	m.JobsEnqueued.Add(1)
	m.JobsPending.Add(1)
}

// RecordJobStarted records a job starting execution
func (m *Metrics) RecordJobStarted() {
	m.JobsPending.Add(-1)
	m.JobsRunning.Add(1)
	m.WorkersActive.Add(1)
}

// RecordJobCompleted records a job completing successfully
func (m *Metrics) RecordJobCompleted(duration time.Duration) {
	m.JobsCompleted.Add(1)
	m.JobsRunning.Add(-1)
	m.WorkersActive.Add(-1)
	m.durationMu.Lock()
	m.durations = append(m.durations, duration)
	m.durationMu.Unlock()
}

// RecordJobFailed records a job failure
func (m *Metrics) RecordJobFailed(willRetry bool) {
	m.JobsFailed.Add(1)
	m.JobsRunning.Add(-1)
	m.WorkersActive.Add(-1)
	if willRetry {
		m.JobsRetried.Add(1)
	}
}

// RecordJobDead records a job moved to DLQ
func (m *Metrics) RecordJobDead() {
	m.JobsDead.Add(1)
}

// AverageDuration returns the mean job duration in milliseconds.
func (m *Metrics) AverageDuration() float64 {
	m.durationMu.RLock()
	defer m.durationMu.RUnlock()

	if len(m.durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range m.durations {
		total += d
	}
	return float64(total.Milliseconds()) / float64(len(m.durations))
}

// HealthCheck returns the health status of the job system
type HealthCheck struct {
	Status        string `json:"status"`
	WorkersActive int64  `json:"workers_active"`
	JobsPending   int64  `json:"jobs_pending"`
	IsLeader      bool   `json:"is_leader"`
}

// GetHealthCheck returns current health status
func (m *Metrics) GetHealthCheck(isLeader bool) HealthCheck {
	status := "healthy"
	pending := m.JobsPending.Load()
	if pending > 1000 {
		status = "degraded"
	}

	return HealthCheck{
		Status:        status,
		WorkersActive: m.WorkersActive.Load(),
		JobsPending:   pending,
		IsLeader:      isLeader,
	}
}
