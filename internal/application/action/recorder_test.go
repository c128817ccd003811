package action

import (
	"context"
	"errors"
	"testing"

	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/kdirani/farms/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func installActionMetrics(t *testing.T) *sdkmetric.ManualReader {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := telemetry.NewActionMetrics(mp.Meter("test"))
	require.NoError(t, err)
	SetRecorder(m)
	t.Cleanup(func() {
		SetRecorder(nil)
		_ = mp.Shutdown(context.Background())
	})
	return reader
}

// counts sums an int64 counter by the value of key
func counts(t *testing.T, reader *sdkmetric.ManualReader, name string, key attribute.Key) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value(key)
				out[v.AsString()] += dp.Value
			}
		}
	}
	return out
}

func TestRun_RecordsOutcome(t *testing.T) {
	reader := installActionMetrics(t)
	ctx := context.Background()

	Run(ctx, "farm.create", func(context.Context) (int, error) { return 1, nil })
	Run(ctx, "farm.create", func(context.Context) (any, error) { return nil, shared.NotFound("farm") })
	Run(ctx, "farm.create", func(context.Context) (any, error) { return nil, errors.New("disk full") })
	Run(ctx, "farm.create", func(context.Context) (any, error) { panic("boom") })

	outcomes := counts(t, reader, "action_total", telemetry.AttrActionOutcome)
	assert.Equal(t, int64(1), outcomes["success"])
	assert.Equal(t, int64(3), outcomes["failure"])

	failures := counts(t, reader, "action_failures_total", telemetry.AttrErrorCode)
	assert.Equal(t, map[string]int64{"NOT_FOUND": 1, "INTERNAL_ERROR": 2}, failures)
}

func TestRun_NoRecorder(t *testing.T) {
	SetRecorder(nil)
	res := Run(context.Background(), "noop", func(context.Context) (int, error) { return 7, nil })
	assert.True(t, res.Success)
}
