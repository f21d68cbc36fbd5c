package handler

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/jobs/worker"
)

type cleanupPayload struct {
	RetentionDays int `json:"retention_days"`
}

func newTestRegistry() *Registry {
	pool := worker.NewWorkerPool(nil, zap.NewNop(), worker.WorkerPoolConfig{Concurrency: 1})
	return NewRegistry(pool, zap.NewNop())
}

func TestRegistry_Register(t *testing.T) {
	r := newTestRegistry()

	Register(r, "notification.cleanup", func(ctx context.Context, p cleanupPayload) error {
		return nil
	})

	handlers := r.ListHandlers()
	if len(handlers) != 1 {
		t.Fatalf("ListHandlers() len = %d, want 1", len(handlers))
	}
	if _, ok := handlers["notification.cleanup"]; !ok {
		t.Error("ListHandlers() missing notification.cleanup")
	}
}

func TestRegistry_ListHandlersIsACopy(t *testing.T) {
	r := newTestRegistry()
	Register(r, "circle.reconcile_members", func(ctx context.Context, p struct{}) error {
		return nil
	})

	handlers := r.ListHandlers()
	delete(handlers, "circle.reconcile_members")

	if len(r.ListHandlers()) != 1 {
		t.Error("mutating the returned map changed the registry")
	}
}
