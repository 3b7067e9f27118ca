// Package metrics holds the Prometheus collectors for the folio server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "folio"

// Outcome label values.
const (
	OutcomeOK         = "ok"
	OutcomeInvalid    = "invalid"
	OutcomeNotFound   = "not_found"
	OutcomeNotDurable = "not_durable"
	OutcomeDelivered  = "delivered"
	OutcomeFallback   = "mailto_fallback"
)

// Metrics:
//   - folio_http_requests_total{method,route,status}
//   - folio_http_request_duration_seconds{route}
//   - folio_catalog_projects
//   - folio_catalog_mutations_total{op,outcome}
//   - folio_contact_submissions_total{outcome}
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	CatalogProjects    prometheus.Gauge
	MutationsTotal     *prometheus.CounterVec
	ContactSubmissions *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. Pass a fresh prometheus.NewRegistry()
// per server; registering twice on one registry panics.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		CatalogProjects: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "catalog_projects",
				Help:      "Number of projects currently in the catalog",
			},
		),
		MutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_mutations_total",
				Help:      "Total number of catalog create and delete attempts",
			},
			[]string{"op", "outcome"},
		),
		ContactSubmissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "contact_submissions_total",
				Help:      "Total number of contact form submissions",
			},
			[]string{"outcome"},
		),
		gatherer: reg,
	}
}

func (m *Metrics) Mutation(op, outcome string) {
	m.MutationsTotal.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) Contact(outcome string) {
	m.ContactSubmissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetCatalogSize(n int) {
	m.CatalogProjects.Set(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
