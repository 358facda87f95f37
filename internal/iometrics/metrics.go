// Package iometrics collects metrics of a batch run and writes them in
// the Prometheus text format, ready for the node exporter textfile
// collector.
package iometrics

import (
	"time"

	"github.com/gnames/gnfish/pkg/report"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics of one batch run. Methods are safe for concurrent use.
type Metrics struct {
	reg         *prometheus.Registry
	evaluations *prometheus.CounterVec
	failures    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// New creates metrics with their own registry.
func New() *Metrics {
	res := &Metrics{
		reg: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gnfish_evaluations_total",
				Help: "Stations evaluated successfully",
			},
			[]string{"index", "status"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gnfish_failures_total",
				Help: "Stations that could not be evaluated",
			},
			[]string{"index"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gnfish_station_duration_seconds",
				Help:    "Time spent to load and evaluate a station",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			},
			[]string{"index"},
		),
	}
	res.reg.MustRegister(res.evaluations, res.failures, res.duration)
	return res
}

// Evaluated counts a successful evaluation by its status. Undefined
// statuses are counted as NC.
func (m *Metrics) Evaluated(ev report.Evaluation, d time.Duration) {
	status := report.NotComputed
	if ev.Status != nil {
		status = *ev.Status
	}
	m.evaluations.WithLabelValues(string(ev.Index), status).Inc()
	m.duration.WithLabelValues(string(ev.Index)).Observe(d.Seconds())
}

// Failed counts a station that could not be evaluated.
func (m *Metrics) Failed(idx report.Index, d time.Duration) {
	m.failures.WithLabelValues(string(idx)).Inc()
	m.duration.WithLabelValues(string(idx)).Observe(d.Seconds())
}

// WriteFile saves all metrics to a Prometheus textfile.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return MetricsFileError(path, err)
	}
	return nil
}
