// Package metrics holds the prometheus counters exported by myregistry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "registry"

// Metrics counts registry mutations.
type Metrics struct {
	Registrations   prometheus.Counter
	Deregistrations prometheus.Counter
	Reaped          prometheus.Counter
	ReaperErrors    prometheus.Counter
}

// New creates the counters and registers them with reg. A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Registrations created or renewed.",
		}),
		Deregistrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deregistrations_total",
			Help:      "Registrations deleted, explicitly or by the reaper.",
		}),
		Reaped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reaped_total",
			Help:      "Expired registrations removed from the expiry index.",
		}),
		ReaperErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reaper_errors_total",
			Help:      "Failed expiry index sweeps.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Registrations, m.Deregistrations, m.Reaped, m.ReaperErrors)
	}
	return m
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
