package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsForTest(t *testing.T) (*PrometheusMetrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, ok := NewPrometheusMetrics(reg).(*PrometheusMetrics)
	require.True(t, ok)
	return m, reg
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	m, _ := newMetricsForTest(t)

	m.IncrementCounter("wallet.refetch", map[string]string{"status": "success"})
	m.IncrementCounter("wallet.refetch", map[string]string{"status": "success"})
	m.IncrementCounter("wallet.refetch", map[string]string{"status": "stale"})
	m.IncrementCounter("wallet.load_more", map[string]string{"outcome": "appended"})
	m.IncrementCounter("wallet.action", map[string]string{"action": "set_query", "criteria_changed": "true"})
	m.IncrementCounter("wallet.session.created", nil)
	m.IncrementCounter("wallet.session.expired", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.refetchTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.refetchTotal.WithLabelValues("stale")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loadMoreTotal.WithLabelValues("appended")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.actionsTotal.WithLabelValues("set_query", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsTotal.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsTotal.WithLabelValues("expired")))
}

func TestPrometheusMetrics_IgnoresMissingLabels(t *testing.T) {
	m, _ := newMetricsForTest(t)

	m.IncrementCounter("wallet.refetch", nil)
	m.IncrementCounter("wallet.load_more", map[string]string{})
	m.IncrementCounter("not.a.metric", map[string]string{"status": "x"})

	assert.Equal(t, 0, testutil.CollectAndCount(m.refetchTotal))
	assert.Equal(t, 0, testutil.CollectAndCount(m.loadMoreTotal))
}

func TestPrometheusMetrics_GaugesAndHistogram(t *testing.T) {
	m, reg := newMetricsForTest(t)

	m.RecordGauge("wallet.sessions.active", 4, nil)
	m.RecordGauge("transactions.seeded", 120, nil)
	m.IncrementCounter("circuit_breaker.open", map[string]string{"service": "database"})
	m.RecordProcessingTime("wallet.fetch", 12*time.Millisecond)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.sessionsActive))
	assert.Equal(t, 120.0, testutil.ToFloat64(m.transactionsSeeded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.circuitBreakerState.WithLabelValues("database")))

	count, err := testutil.GatherAndCount(reg, "wallet_fetch_duration_milliseconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
