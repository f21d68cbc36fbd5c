package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// TestDefaultTracingConfig verifies the default tracing config
func TestDefaultTracingConfig(t *testing.T) {
	cfg := DefaultTracingConfig()
	assert.NotNil(t, cfg)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "bookloop", cfg.ServiceName)
	assert.Equal(t, "1.0.0", cfg.ServiceVersion)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "stdout", cfg.ExporterType)
	assert.Equal(t, "localhost:4317", cfg.OTLPEndpoint)
	assert.True(t, cfg.OTLPInsecure)
	assert.Equal(t, 1.0, cfg.SamplingRate)
	assert.Equal(t, "tracecontext", cfg.PropagatorType)
}

// TestNewTracingProvider_Disabled creates a disabled provider (no exporter)
func TestNewTracingProvider_Disabled(t *testing.T) {
	cfg := &TracingConfig{
		Enabled:     false,
		ServiceName: "test-tracing",
	}
	tp, err := NewTracingProvider(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, tp)
	assert.NotNil(t, tp.Tracer())
	assert.NoError(t, tp.Shutdown(context.Background()))
}

// TestNewTracingProvider_StdoutEnabled creates an enabled stdout provider
func TestNewTracingProvider_StdoutEnabled(t *testing.T) {
	cfg := &TracingConfig{
		Enabled:        true,
		ServiceName:    "test-stdout",
		ServiceVersion: "1.0.0",
		Environment:    "test",
		ExporterType:   "stdout",
		SamplingRate:   1.0,
		PropagatorType: "tracecontext",
	}
	tp, err := NewTracingProvider(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, tp)

	err = tp.Shutdown(context.Background())
	assert.NoError(t, err)
}

// TestNewTracingProvider_NeverSample uses sampling rate <= 0
func TestNewTracingProvider_NeverSample(t *testing.T) {
	cfg := &TracingConfig{
		Enabled:      true,
		ServiceName:  "test-never-sample",
		ExporterType: "stdout",
		SamplingRate: 0,
	}
	tp, err := NewTracingProvider(cfg, zap.NewNop())
	require.NoError(t, err)
	defer tp.Shutdown(context.Background())

	_, span := tp.StartSpan(context.Background(), "dropped")
	assert.False(t, span.SpanContext().IsSampled())
	span.End()
}

// TestNewTracingProvider_RatioSample uses a fractional sampling rate
func TestNewTracingProvider_RatioSample(t *testing.T) {
	cfg := &TracingConfig{
		Enabled:      true,
		ServiceName:  "test-ratio-sample",
		ExporterType: "stdout",
		SamplingRate: 0.5,
	}
	tp, err := NewTracingProvider(cfg, zap.NewNop())
	require.NoError(t, err)
	defer tp.Shutdown(context.Background())
	assert.NotNil(t, tp.Tracer())
}

// TestTracingProvider_StartSpan starts and ends a span
func TestTracingProvider_StartSpan(t *testing.T) {
	cfg := &TracingConfig{
		Enabled:      true,
		ServiceName:  "test-span",
		ExporterType: "stdout",
		SamplingRate: 1.0,
	}
	tp, err := NewTracingProvider(cfg, zap.NewNop())
	require.NoError(t, err)
	defer tp.Shutdown(context.Background())

	ctx, span := tp.StartSpan(context.Background(), "operation")
	require.NotNil(t, span)
	assert.True(t, span.SpanContext().IsValid())

	AddSpanAttributes(ctx, AttrUserID.String("u-1"), AttrCircleID.String("c-1"))
	RecordSpanError(ctx, errors.New("boom"))
	SetSpanStatus(ctx, codes.Error, "boom")
	span.End()
}

// TestSpanFromContext returns a noop span when none is set
func TestSpanFromContext(t *testing.T) {
	span := SpanFromContext(context.Background())
	assert.NotNil(t, span)
	assert.False(t, span.SpanContext().IsValid())
}

// TestCreatePropagator always yields a composite W3C propagator
func TestCreatePropagator(t *testing.T) {
	p := createPropagator("tracecontext")
	require.NotNil(t, p)
	assert.Contains(t, p.Fields(), "traceparent")
	assert.Contains(t, p.Fields(), "baggage")
}
