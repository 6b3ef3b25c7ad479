package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	registry *prometheus.Registry

	APIRequests      *prometheus.CounterVec
	APIDuration      *prometheus.HistogramVec
	QueriesCommitted *prometheus.CounterVec
	QueriesFailed    *prometheus.CounterVec
	ResultsDiscarded *prometheus.CounterVec
	DetailsResolved  *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on a private registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		APIRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "countryexplorer_api_requests_total",
			Help: "Requests sent to the countries API by operation and outcome",
		}, []string{"op", "outcome"}),
		APIDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "countryexplorer_api_request_duration_seconds",
			Help:    "Latency of requests to the countries API",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		QueriesCommitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "countryexplorer_queries_committed_total",
			Help: "List queries whose results became the current result set",
		}, []string{"kind"}),
		QueriesFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "countryexplorer_queries_failed_total",
			Help: "List queries that settled as failed, by error kind",
		}, []string{"error_kind"}),
		ResultsDiscarded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "countryexplorer_results_discarded_total",
			Help: "Superseded responses dropped before commit",
		}, []string{"source"}),
		DetailsResolved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "countryexplorer_details_resolved_total",
			Help: "Detail lookups by final status",
		}, []string{"status"}),
	}
}

// ObserveRequest records one completed API request
func (m *Metrics) ObserveRequest(op, outcome string, d time.Duration) {
	m.APIRequests.WithLabelValues(op, outcome).Inc()
	m.APIDuration.WithLabelValues(op).Observe(d.Seconds())
}

// IncrementCommitted increments the committed queries counter
func (m *Metrics) IncrementCommitted(kind string) {
	m.QueriesCommitted.WithLabelValues(kind).Inc()
}

// IncrementFailed increments the failed queries counter
func (m *Metrics) IncrementFailed(errorKind string) {
	m.QueriesFailed.WithLabelValues(errorKind).Inc()
}

// IncrementDiscarded increments the discarded results counter
func (m *Metrics) IncrementDiscarded(source string) {
	m.ResultsDiscarded.WithLabelValues(source).Inc()
}

// IncrementDetailResolved increments the detail status counter
func (m *Metrics) IncrementDetailResolved(status string) {
	m.DetailsResolved.WithLabelValues(status).Inc()
}

// Registry exposes the underlying registry for gathering in tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
