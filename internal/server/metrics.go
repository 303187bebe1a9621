package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's prometheus instruments. Each server owns
// its own registry so tests can spin up servers independently.
type metrics struct {
	registry *prometheus.Registry
	toggles  *prometheus.CounterVec
	resets   prometheus.Counter
	progress prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		toggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "soft75_toggles_total",
			Help: "Habit toggles applied, by habit.",
		}, []string{"habit"}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "soft75_resets_total",
			Help: "Full tracker resets.",
		}),
		progress: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "soft75_progress_percent",
			Help: "Current challenge completion percentage.",
		}),
	}

	m.registry.MustRegister(m.toggles, m.resets, m.progress)
	m.registry.MustRegister(collectors.NewGoCollector())
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
