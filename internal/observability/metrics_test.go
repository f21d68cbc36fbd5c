package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestDefaultMetricsConfig verifies the default config values
func TestDefaultMetricsConfig(t *testing.T) {
	cfg := DefaultMetricsConfig()
	assert.NotNil(t, cfg)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "bookloop", cfg.ServiceName)
	assert.Equal(t, "/metrics", cfg.PrometheusPath)
}

// TestNewMetricsProvider_Disabled creates a disabled provider
func TestNewMetricsProvider_Disabled(t *testing.T) {
	cfg := &MetricsConfig{
		Enabled:     false,
		ServiceName: "test-service",
	}
	mp, err := NewMetricsProvider(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, mp)
}

// TestNewMetricsProvider_Enabled creates an enabled provider
func TestNewMetricsProvider_Enabled(t *testing.T) {
	cfg := DefaultMetricsConfig()
	cfg.ServiceName = "test-metrics-enabled"
	mp, err := NewMetricsProvider(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, mp)

	err = mp.Shutdown(context.Background())
	assert.NoError(t, err)
}

// TestMetricsProvider_Handler_Enabled checks handler serves the registry
func TestMetricsProvider_Handler_Enabled(t *testing.T) {
	cfg := DefaultMetricsConfig()
	cfg.ServiceName = "test-handler-enabled"
	mp, err := NewMetricsProvider(cfg, zap.NewNop())
	require.NoError(t, err)
	defer mp.Shutdown(context.Background())

	handler := mp.Handler()
	require.NotNil(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

// TestMetricsProvider_Handler_Disabled returns NotFoundHandler when disabled
func TestMetricsProvider_Handler_Disabled(t *testing.T) {
	cfg := &MetricsConfig{Enabled: false, ServiceName: "disabled"}
	mp, err := NewMetricsProvider(cfg, zap.NewNop())
	require.NoError(t, err)

	handler := mp.Handler()
	require.NotNil(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// TestMetricsProvider_RecordHTTPRequest records without panicking
func TestMetricsProvider_RecordHTTPRequest(t *testing.T) {
	cfg := DefaultMetricsConfig()
	cfg.ServiceName = "test-record-http"
	mp, err := NewMetricsProvider(cfg, zap.NewNop())
	require.NoError(t, err)
	defer mp.Shutdown(context.Background())

	ctx := context.Background()
	mp.RecordHTTPRequest(ctx, http.MethodGet, "/api/books", http.StatusOK, 25*time.Millisecond)
	mp.RecordHTTPRequest(ctx, http.MethodPost, "/api/trades", http.StatusCreated, 40*time.Millisecond)
}

// TestMetricsProvider_RecordOnDisabledProvider is a no-op, not a panic
func TestMetricsProvider_RecordOnDisabledProvider(t *testing.T) {
	cfg := &MetricsConfig{Enabled: false, ServiceName: "disabled"}
	mp, err := NewMetricsProvider(cfg, zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	mp.RecordHTTPRequest(ctx, http.MethodGet, "/api/books", http.StatusOK, time.Millisecond)
	mp.RecordDBOperation(ctx, "find", true, time.Millisecond)
	mp.RecordNotificationSent(ctx, "trade_request")
	mp.RecordJob(ctx, "notification.cleanup", true, time.Millisecond)
	mp.IncrementConnections(ctx, "websocket")
	mp.DecrementConnections(ctx, "websocket")
}

// TestMetricsProvider_RecordDomainMetrics covers job and notification counters
func TestMetricsProvider_RecordDomainMetrics(t *testing.T) {
	cfg := DefaultMetricsConfig()
	cfg.ServiceName = "test-record-domain"
	mp, err := NewMetricsProvider(cfg, zap.NewNop())
	require.NoError(t, err)
	defer mp.Shutdown(context.Background())

	ctx := context.Background()
	mp.RecordDBOperation(ctx, "insert", true, 5*time.Millisecond)
	mp.RecordDBOperation(ctx, "find", false, 5*time.Millisecond)
	mp.RecordNotificationSent(ctx, "circle_join")
	mp.RecordJob(ctx, "circle.reconcile_members", true, 100*time.Millisecond)
	mp.IncrementConnections(ctx, "websocket")
	mp.DecrementConnections(ctx, "websocket")
}

// TestMetricsProvider_Meter returns the meter
func TestMetricsProvider_Meter(t *testing.T) {
	cfg := DefaultMetricsConfig()
	cfg.ServiceName = "test-meter"
	mp, err := NewMetricsProvider(cfg, zap.NewNop())
	require.NoError(t, err)
	defer mp.Shutdown(context.Background())

	assert.NotNil(t, mp.Meter())
}

// TestMetricsProvider_Shutdown_Disabled shuts down cleanly without a provider
func TestMetricsProvider_Shutdown_Disabled(t *testing.T) {
	cfg := &MetricsConfig{Enabled: false, ServiceName: "disabled"}
	mp, err := NewMetricsProvider(cfg, zap.NewNop())
	require.NoError(t, err)

	assert.NoError(t, mp.Shutdown(context.Background()))
}
