// Package metrics provides Prometheus instrumentation for an
// engine.Engine: documents indexed, queries served, query latency, and
// duplicate counts. A Manager wraps its own prometheus.Registry so two
// engines in one process never collide on metric names.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config controls whether a Manager actually records anything and the
// histogram buckets its latency metric uses.
type Config struct {
	Enabled              bool
	QueryDurationBuckets []float64
}

// DefaultConfig returns sane bucket boundaries for in-memory query
// latencies, which are expected to be sub-millisecond to low-millisecond.
func DefaultConfig() Config {
	return Config{
		Enabled:              true,
		QueryDurationBuckets: []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
	}
}

// Manager holds the engine-level gauges, counters and histogram this
// package exposes, each guarded by the enabled flag so a disabled
// Manager costs its caller nothing beyond the guard check.
type Manager struct {
	registry *prometheus.Registry
	enabled  bool

	documentsIndexed prometheus.Counter
	documentsRemoved prometheus.Counter
	liveDocuments    prometheus.Gauge
	queriesServed    *prometheus.CounterVec
	queryDuration    *prometheus.HistogramVec
	duplicatesFound  prometheus.Gauge
}

// New builds a Manager registered against a fresh prometheus.Registry.
func New(cfg Config) *Manager {
	m := &Manager{
		registry: prometheus.NewRegistry(),
		enabled:  cfg.Enabled,
	}

	m.documentsIndexed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "search_engine_documents_indexed_total",
		Help: "Total number of documents successfully added to the engine.",
	})
	m.documentsRemoved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "search_engine_documents_removed_total",
		Help: "Total number of documents removed from the engine.",
	})
	m.liveDocuments = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "search_engine_live_documents",
		Help: "Current number of live documents in the engine.",
	})
	m.queriesServed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "search_engine_queries_served_total",
		Help: "Total number of FindTopDocuments calls, by outcome.",
	}, []string{"outcome"})
	m.queryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "search_engine_query_duration_seconds",
		Help:    "FindTopDocuments latency in seconds, by execution policy.",
		Buckets: cfg.QueryDurationBuckets,
	}, []string{"policy"})
	m.duplicatesFound = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "search_engine_duplicate_documents",
		Help: "Number of documents found by the most recent DuplicateIDs scan.",
	})

	m.registry.MustRegister(
		m.documentsIndexed,
		m.documentsRemoved,
		m.liveDocuments,
		m.queriesServed,
		m.queryDuration,
		m.duplicatesFound,
	)
	return m
}

// Registry returns the Manager's prometheus.Registry, for callers that
// want to serve /metrics themselves.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// RecordDocumentIndexed increments the indexed-documents counter and
// sets the live-documents gauge to liveCount.
func (m *Manager) RecordDocumentIndexed(liveCount int) {
	if !m.enabled {
		return
	}
	m.documentsIndexed.Inc()
	m.liveDocuments.Set(float64(liveCount))
}

// RecordDocumentRemoved increments the removed-documents counter and
// sets the live-documents gauge to liveCount.
func (m *Manager) RecordDocumentRemoved(liveCount int) {
	if !m.enabled {
		return
	}
	m.documentsRemoved.Inc()
	m.liveDocuments.Set(float64(liveCount))
}

// RecordQuery records one FindTopDocuments call: its outcome ("hit" or
// "miss"), execution policy ("sequential" or "parallel"), and latency.
func (m *Manager) RecordQuery(hit bool, parallel bool, duration time.Duration) {
	if !m.enabled {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	policy := "sequential"
	if parallel {
		policy = "parallel"
	}
	m.queriesServed.WithLabelValues(outcome).Inc()
	m.queryDuration.WithLabelValues(policy).Observe(duration.Seconds())
}

// SetDuplicateCount records the size of the most recent DuplicateIDs
// result.
func (m *Manager) SetDuplicateCount(n int) {
	if !m.enabled {
		return
	}
	m.duplicatesFound.Set(float64(n))
}
