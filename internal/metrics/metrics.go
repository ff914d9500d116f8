// Package metrics owns the Prometheus collectors of the addon.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Catalog request outcomes.
const (
	OutcomeOK            = "ok"
	OutcomeEmpty         = "empty"
	OutcomeCallerError   = "caller_error"
	OutcomeUpstreamError = "upstream_error"
)

// Metrics is safe to use as a nil pointer, in which case every call is a no-op.
type Metrics struct {
	registry         *prometheus.Registry
	catalogRequests  *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
	itemsReturned    prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		catalogRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_requests_total",
				Help: "Catalog requests by outcome.",
			},
			[]string{"outcome"},
		),
		providerDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "provider_request_duration_seconds",
				Help:    "Latency of Trakt requests by endpoint.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		itemsReturned: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "catalog_items_returned",
				Help:    "Number of items in each served catalog page.",
				Buckets: []float64{0, 10, 25, 50, 100, 250, 500},
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.catalogRequests,
		m.providerDuration,
		m.itemsReturned,
	)

	return m
}

// ObserveProvider records the duration of one provider call started at start.
func (m *Metrics) ObserveProvider(endpoint string, start time.Time) {
	if m == nil {
		return
	}
	m.providerDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

// ObserveCatalog records a served catalog request.
func (m *Metrics) ObserveCatalog(outcome string, items int) {
	if m == nil {
		return
	}
	m.catalogRequests.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK || outcome == OutcomeEmpty {
		m.itemsReturned.Observe(float64(items))
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
