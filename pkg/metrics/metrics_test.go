package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewServiceDisabledUsesNoOp(t *testing.T) {
	svc, err := NewService(Config{Enabled: false})
	require.NoError(t, err)

	svc.IncrementCounter("tokens_parsed_total", Fields{"status": "ok"})
	svc.SetGauge("cache_entries", 10, nil)
	require.NotNil(t, svc.Handler(), "expected non-nil handler even when disabled")
}

func TestPrometheusCounterIncrementsAcrossCalls(t *testing.T) {
	svc, err := NewService(Config{Enabled: true, Namespace: "atomiccss", Subsystem: "compiler"})
	require.NoError(t, err)
	defer svc.Close()

	svc.IncrementCounter("tokens_parsed_total", Fields{"priority": "scalar_high"})
	svc.IncrementCounter("tokens_parsed_total", Fields{"priority": "scalar_high"})

	c, ok := svc.Counter("tokens_parsed_total", "tokens parsed", "priority").(*prometheusCounter)
	require.True(t, ok)
	require.Equal(t, float64(2), testutil.ToFloat64(c.counter.WithLabelValues("scalar_high")))
}

func TestPrometheusGaugeSet(t *testing.T) {
	svc, err := NewService(Config{Enabled: true, Namespace: "atomiccss", Subsystem: "compiler"})
	require.NoError(t, err)
	defer svc.Close()

	svc.SetGauge("cache_hit_ratio", 0.75, Fields{"tier": "l1"})

	g, ok := svc.Gauge("cache_hit_ratio", "cache hit ratio", "tier").(*prometheusGauge)
	require.True(t, ok)
	require.Equal(t, 0.75, testutil.ToFloat64(g.gauge.WithLabelValues("l1")))
}

func TestTimerFuncRecordsDuration(t *testing.T) {
	svc, err := NewService(Config{Enabled: true, Namespace: "atomiccss", Subsystem: "compiler"})
	require.NoError(t, err)
	defer svc.Close()

	d := svc.TimerFunc("compile_duration_seconds", nil, func() {})
	require.GreaterOrEqual(t, d.Seconds(), 0.0)
}
