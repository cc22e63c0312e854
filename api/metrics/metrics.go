// Package metrics provides Prometheus metrics for scoring passes and the web endpoints.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns a registry and the metrics registered on it.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	scoringPasses *prometheus.CounterVec
	pointsTotal   prometheus.Gauge
	entriesScored prometheus.Gauge
	passDuration  prometheus.Histogram
	resultsStored prometheus.Counter
	httpRequests  *prometheus.CounterVec
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// NewManager creates a manager with its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "playoff_bracket",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)
	m.scoringPasses = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "scoring_passes_total",
		Help:      "Scoring passes run, by outcome",
	}, []string{"outcome"})
	m.pointsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "points",
		Help:      "Sum of the entry totals after the latest pass",
	})
	m.entriesScored = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "entries_scored",
		Help:      "Entries scored by the latest pass",
	})
	m.passDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "scoring_pass_duration_seconds",
		Help:      "Duration of scoring passes",
		Buckets:   prometheus.DefBuckets,
	})
	m.resultsStored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "results_stored_total",
		Help:      "Real slot results recorded",
	})
	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by endpoint and status code",
	}, []string{"endpoint", "code"})
	return m
}

// RecordPass records a finished scoring pass. points is the sum of the entry totals after the pass
func (m *Manager) RecordPass(entries, points int, duration time.Duration, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.scoringPasses.WithLabelValues("error").Inc()
		return
	}
	m.scoringPasses.WithLabelValues("ok").Inc()
	m.pointsTotal.Set(float64(points))
	m.entriesScored.Set(float64(entries))
	m.passDuration.Observe(duration.Seconds())
}

// RecordResultStored counts a real slot result written to the store
func (m *Manager) RecordResultStored() {
	if m == nil {
		return
	}
	m.resultsStored.Inc()
}

// RecordHTTPRequest counts a served request
func (m *Manager) RecordHTTPRequest(endpoint string, code int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, strconv.Itoa(code)).Inc()
}

// Registry returns the registry backing the manager
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
