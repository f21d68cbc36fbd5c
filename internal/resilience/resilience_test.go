package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker(&BreakerConfig{
		Name:             "test",
		FailureThreshold: 2,
		Cooldown:         time.Minute,
	}, zap.NewNop())
	ctx := context.Background()
	failing := func(context.Context) error { return errors.New("boom") }

	for i := 0; i < 2; i++ {
		if err := cb.Execute(ctx, failing); err == nil {
			t.Fatal("Execute() error = nil, want failure")
		}
	}
	if cb.State() != StateOpen {
		t.Errorf("State() = %v, want OPEN", cb.State())
	}

	err := cb.Execute(ctx, failing)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("Execute() error = %v, want ErrCircuitOpen", err)
	}
}

func TestCircuitBreaker_RecoversAfterCooldown(t *testing.T) {
	cb := NewCircuitBreaker(&BreakerConfig{
		Name:             "test",
		FailureThreshold: 1,
		Cooldown:         10 * time.Millisecond,
	}, zap.NewNop())
	ctx := context.Background()

	_ = cb.Execute(ctx, func(context.Context) error { return errors.New("boom") })
	if cb.State() != StateOpen {
		t.Fatalf("State() = %v, want OPEN", cb.State())
	}

	time.Sleep(20 * time.Millisecond)

	// The post-cooldown probe succeeds and closes the breaker.
	if err := cb.Execute(ctx, func(context.Context) error { return nil }); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if cb.State() != StateClosed {
		t.Errorf("State() = %v, want CLOSED", cb.State())
	}
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := NewCircuitBreaker(&BreakerConfig{
		Name:             "test",
		FailureThreshold: 2,
		Cooldown:         time.Minute,
	}, zap.NewNop())
	ctx := context.Background()

	_ = cb.Execute(ctx, func(context.Context) error { return errors.New("boom") })
	_ = cb.Execute(ctx, func(context.Context) error { return nil })
	_ = cb.Execute(ctx, func(context.Context) error { return errors.New("boom") })

	if cb.State() != StateClosed {
		t.Errorf("State() = %v, want CLOSED after interleaved success", cb.State())
	}
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb := NewCircuitBreaker(&BreakerConfig{
		Name:             "test",
		FailureThreshold: 1,
		Cooldown:         time.Minute,
	}, zap.NewNop())
	ctx := context.Background()

	_ = cb.Execute(ctx, func(context.Context) error { return errors.New("boom") })
	cb.Reset()
	if cb.State() != StateClosed {
		t.Errorf("State() = %v, want CLOSED after Reset", cb.State())
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateClosed, "CLOSED"},
		{StateOpen, "OPEN"},
		{StateHalfOpen, "HALF_OPEN"},
		{State(9), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %v, want %v", got, tt.want)
		}
	}
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	cfg := &RetryConfig{
		MaxAttempts:     3,
		InitialInterval: time.Millisecond,
		MaxInterval:     10 * time.Millisecond,
		Multiplier:      2.0,
	}

	attempts := 0
	err := Retry(context.Background(), cfg, func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	cfg := &RetryConfig{
		MaxAttempts:     2,
		InitialInterval: time.Millisecond,
		MaxInterval:     10 * time.Millisecond,
		Multiplier:      2.0,
	}

	wantErr := errors.New("permanent")
	attempts := 0
	err := Retry(context.Background(), cfg, func(context.Context) error {
		attempts++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Retry() error = %v, want %v", err, wantErr)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestRetry_ContextCanceled(t *testing.T) {
	cfg := DefaultRetryConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, cfg, func(context.Context) error {
		return errors.New("should not matter")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Retry() error = %v, want context.Canceled", err)
	}
}
