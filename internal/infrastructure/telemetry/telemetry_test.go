package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func installRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return rec
}

func TestNewTracerProvider_Disabled(t *testing.T) {
	tp, err := NewTracerProvider(context.Background(), Config{Enabled: false}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, tp.IsEnabled())
	assert.NotNil(t, tp.Tracer("x"))
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestSampler(t *testing.T) {
	assert.Contains(t, Sampler(1).Description(), "AlwaysOnSampler")
	assert.Equal(t, "AlwaysOffSampler", Sampler(0).Description())
	assert.Contains(t, Sampler(0.25).Description(), "TraceIDRatioBased")
}

func TestStartEndSpan(t *testing.T) {
	rec := installRecorder(t)

	_, span := StartSpan(context.Background(), "action.create_invoice")
	EndSpan(span, errors.New("boom"))
	_, span = StartSpan(context.Background(), "action.list_farms")
	EndSpan(span, nil)

	ended := rec.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "action.create_invoice", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, codes.Ok, ended[1].Status().Code)
}

func TestDBTracingPlugin_Register(t *testing.T) {
	rec := installRecorder(t)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	t.Run("disabled does nothing", func(t *testing.T) {
		p := NewDBTracingPlugin(DBTracingConfig{Enabled: false}, zap.NewNop())
		require.NoError(t, p.Register(db))
	})

	t.Run("enabled traces queries", func(t *testing.T) {
		cfg := DefaultDBTracingConfig()
		cfg.Enabled = true
		cfg.DBSystem = "sqlite"
		p := NewDBTracingPlugin(cfg, zap.NewNop())
		require.NoError(t, p.Register(db))

		var n int
		require.NoError(t, db.WithContext(context.Background()).Raw("SELECT 1").Scan(&n).Error)
		assert.Equal(t, 1, n)
		assert.NotEmpty(t, rec.Ended())
	})
}
