package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	sessionsActive       prometheus.Gauge
	sessionsTotal        *prometheus.CounterVec
	actionsTotal         *prometheus.CounterVec
	refetchTotal         *prometheus.CounterVec
	loadMoreTotal        *prometheus.CounterVec
	fetchDuration        prometheus.Histogram
	pageFetchErrors      *prometheus.CounterVec
	circuitBreakerState  *prometheus.GaugeVec
	transactionsSeeded   prometheus.Counter
	transactionListings  *prometheus.CounterVec
	authenticationEvents *prometheus.CounterVec
}

// NewPrometheusMetrics registers the wallet metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		sessionsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "wallet_sessions_active",
				Help: "Current number of open wallet sessions",
			},
		),
		sessionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_sessions_total",
				Help: "Wallet sessions opened and closed",
			},
			[]string{"event"},
		),
		actionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_filter_actions_total",
				Help: "Filter actions dispatched by action type",
			},
			[]string{"action", "criteria_changed"},
		),
		refetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_refetch_total",
				Help: "Wallet first-page refetches by status",
			},
			[]string{"status"},
		),
		loadMoreTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_load_more_total",
				Help: "Wallet load-more requests by outcome",
			},
			[]string{"outcome"},
		),
		fetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wallet_fetch_duration_milliseconds",
				Help:    "Transaction page fetch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		pageFetchErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_page_fetch_errors_total",
				Help: "Transaction page fetch errors by reason",
			},
			[]string{"reason"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		transactionsSeeded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "wallet_transactions_seeded_total",
				Help: "Transactions generated by the development seeder",
			},
		),
		transactionListings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_transaction_listings_total",
				Help: "Stateless transaction listing requests by status",
			},
			[]string{"status"},
		),
		authenticationEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "wallet.session.created":
		m.sessionsTotal.WithLabelValues("created").Inc()
	case "wallet.session.closed":
		m.sessionsTotal.WithLabelValues("closed").Inc()
	case "wallet.session.expired":
		m.sessionsTotal.WithLabelValues("expired").Inc()
	case "wallet.action":
		if action := tags["action"]; action != "" {
			m.actionsTotal.WithLabelValues(action, tags["criteria_changed"]).Inc()
		}
	case "wallet.refetch":
		if status := tags["status"]; status != "" {
			m.refetchTotal.WithLabelValues(status).Inc()
		}
	case "wallet.load_more":
		if outcome := tags["outcome"]; outcome != "" {
			m.loadMoreTotal.WithLabelValues(outcome).Inc()
		}
	case "wallet.fetch.failed":
		m.pageFetchErrors.WithLabelValues(tags["reason"]).Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case "circuit_breaker.closed":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(0)
	case "transactions.listed":
		if status := tags["status"]; status != "" {
			m.transactionListings.WithLabelValues(status).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEvents.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "wallet.fetch":
		m.fetchDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "wallet.sessions.active":
		m.sessionsActive.Set(value)
	case "transactions.seeded":
		m.transactionsSeeded.Add(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
