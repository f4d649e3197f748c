// Package metrics holds the Prometheus collectors exposed by the conversion
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics bundles the service collectors with their registry.
type Metrics struct {
	Registry *prometheus.Registry

	// ConversionsTotal counts successfully converted domains, by endpoint.
	ConversionsTotal *prometheus.CounterVec

	// ConversionErrors counts failed conversions, by endpoint and error kind
	// (structural, value, syntax).
	ConversionErrors *prometheus.CounterVec

	// RequestDuration observes request latency per endpoint.
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		ConversionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "attrex",
			Name:      "conversions_total",
			Help:      "Domains successfully converted to expressions.",
		}, []string{"endpoint"}),
		ConversionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "attrex",
			Name:      "conversion_errors_total",
			Help:      "Conversions rejected as malformed.",
		}, []string{"endpoint", "kind"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "attrex",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ConversionsTotal,
		m.ConversionErrors,
		m.RequestDuration,
	)
	return m
}
