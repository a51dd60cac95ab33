// Package metrics declares the prometheus collectors exported by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HTTP holds the request collectors of the API server.
type HTTP struct {
	Duration *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

// NewHTTP creates the HTTP collectors and registers them with reg.
func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	m := &HTTP{
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "catconnect",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests by route pattern, method and status.",
			Buckets:   DefaultBuckets,
		}, []string{"route", "method", "status"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "catconnect",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
	}

	for _, c := range []prometheus.Collector{m.Duration, m.InFlight} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Tasks holds the background task dispatch collectors.
type Tasks struct {
	Dispatched *prometheus.CounterVec
	Fallback   prometheus.Gauge
}

// NewTasks creates the task collectors and registers them with reg.
func NewTasks(reg prometheus.Registerer) (*Tasks, error) {
	m := &Tasks{
		Dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catconnect",
			Subsystem: "tasks",
			Name:      "dispatched_total",
			Help:      "Tasks dispatched by kind and route (queue, fallback, dropped).",
		}, []string{"kind", "route"}),
		Fallback: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "catconnect",
			Subsystem: "tasks",
			Name:      "fallback_running",
			Help:      "Tasks currently running in-process, either unqueued or after the queue rejected them.",
		}),
	}

	for _, c := range []prometheus.Collector{m.Dispatched, m.Fallback} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}
