package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the application.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	MutationsTotal  *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "docman_http_requests_total",
			Help: "Total HTTP requests served, by method and status",
		}, []string{"method", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "docman_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		MutationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "docman_entity_mutations_total",
			Help: "Entity mutations performed, by entity and action",
		}, []string{"entity", "action"}),
	}
}

func (m *Metrics) RecordMutation(entity, action string) {
	if m == nil {
		return
	}
	m.MutationsTotal.WithLabelValues(entity, action).Inc()
}
