// Package metrics defines the Prometheus metric collectors used across the
// match search services and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the match search services.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	MatchesIndexedTotal  prometheus.Counter
	EventsIndexedTotal   prometheus.Counter
	IndexBuildDuration   prometheus.Histogram
	IndexSkipsTotal      *prometheus.CounterVec
	QueriesTotal         *prometheus.CounterVec
	QueryLatency         prometheus.Histogram
	SummaryCacheHits     prometheus.Counter
	SummaryCacheMisses   prometheus.Counter
	ArchiveWritesTotal   *prometheus.CounterVec
	MatchesReceivedTotal *prometheus.CounterVec
	LoadedMatches        prometheus.Gauge
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		MatchesIndexedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "matches_indexed_total",
				Help: "Total number of match records indexed.",
			},
		),
		EventsIndexedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "events_indexed_total",
				Help: "Total number of match events inserted into indices.",
			},
		),
		IndexBuildDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "index_build_duration_seconds",
				Help:    "Time taken to build the full index set for one match.",
				Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
			},
		),
		IndexSkipsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "index_skips_total",
				Help: "Events skipped on one axis due to values outside the category domain.",
			},
			[]string{"axis"},
		),
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "event_queries_total",
				Help: "Total event queries by axis and outcome (ok, invalid).",
			},
			[]string{"axis", "outcome"},
		),
		QueryLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "event_query_latency_seconds",
				Help:    "Event query latency in seconds.",
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
			},
		),
		SummaryCacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "summary_cache_hits_total",
				Help: "Match summary cache hits.",
			},
		),
		SummaryCacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "summary_cache_misses_total",
				Help: "Match summary cache misses.",
			},
		),
		ArchiveWritesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "archive_writes_total",
				Help: "Match archive writes by status (ok, error).",
			},
			[]string{"status"},
		),
		MatchesReceivedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matches_received_total",
				Help: "Match records received by the ingest endpoint by outcome (accepted, duplicate, rejected).",
			},
			[]string{"outcome"},
		),
		LoadedMatches: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "loaded_matches",
				Help: "Number of matches currently held in memory with built indices.",
			},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.MatchesIndexedTotal,
		m.EventsIndexedTotal,
		m.IndexBuildDuration,
		m.IndexSkipsTotal,
		m.QueriesTotal,
		m.QueryLatency,
		m.SummaryCacheHits,
		m.SummaryCacheMisses,
		m.ArchiveWritesTotal,
		m.MatchesReceivedTotal,
		m.LoadedMatches,
	)
	return m
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
