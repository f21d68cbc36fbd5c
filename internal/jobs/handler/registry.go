package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/jobs/worker"
)

// HandlerFunc is a typed handler function
type HandlerFunc[T any] func(ctx context.Context, payload T) error

// Registry manages job handler registration
type Registry struct {
	pool   *worker.WorkerPool
	logger *zap.Logger
	mu     sync.RWMutex
	types  map[string]string // jobType -> Go type name for documentation
}

// NewRegistry creates a new handler registry
func NewRegistry(pool *worker.WorkerPool, logger *zap.Logger) *Registry {
	return &Registry{
		pool:   pool,
		logger: logger,
		types:  make(map[string]string),
	}
}

// Register registers a typed handler for a job type
func Register[T any](r *Registry, jobType string, handler HandlerFunc[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	r.types[jobType] = fmt.Sprintf("%T", zero)

	wrappedHandler := func(ctx context.Context, data []byte) error {
		var payload T
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
		return handler(ctx, payload)
	}

	r.pool.RegisterHandler(jobType, wrappedHandler)
	r.logger.Info("Registered typed job handler",
		zap.String("job_type", jobType),
		zap.String("payload_type", r.types[jobType]),
	)
}

// ListHandlers returns all registered handler types
func (r *Registry) ListHandlers() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]string)
	for k, v := range r.types {
		result[k] = v
	}
	return result
}
