// Package metrics exposes pipeline counters to Prometheus. All methods are safe on a nil *Metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "service_alerts"

type Metrics struct {
	registry    *prometheus.Registry
	rows        *prometheus.CounterVec
	geocodes    *prometheus.CounterVec
	cacheRows   *prometheus.GaugeVec
	runs        *prometheus.CounterVec
	runDuration prometheus.Histogram
	lastSuccess prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}
	m.rows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_total",
		Help:      "Rows handled per stage and outcome",
	}, []string{"stage", "outcome"})
	m.geocodes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_total",
		Help:      "Location resolutions by strategy or rejection reason",
	}, []string{"result"})
	m.cacheRows = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cache_rows",
		Help:      "Size of the new and cached partitions of the last run",
	}, []string{"stage", "partition"})
	m.runs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_total",
		Help:      "Pipeline runs by status",
	}, []string{"status"})
	m.runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Time spent in a pipeline run",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
	m.lastSuccess = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix timestamp of the last successful run",
	})

	m.registry.MustRegister(
		m.rows, m.geocodes, m.cacheRows,
		m.runs, m.runDuration, m.lastSuccess,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) AddRows(stage, outcome string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.rows.WithLabelValues(stage, outcome).Add(float64(n))
}

func (m *Metrics) Geocoded(result string) {
	if m == nil {
		return
	}
	m.geocodes.WithLabelValues(result).Inc()
}

func (m *Metrics) SetCachePartition(stage string, fresh, cached int) {
	if m == nil {
		return
	}
	m.cacheRows.WithLabelValues(stage, "new").Set(float64(fresh))
	m.cacheRows.WithLabelValues(stage, "cached").Set(float64(cached))
}

func (m *Metrics) ObserveRun(err error, d time.Duration) {
	if m == nil {
		return
	}
	m.runDuration.Observe(d.Seconds())
	if err != nil {
		m.runs.WithLabelValues("error").Inc()
		return
	}
	m.runs.WithLabelValues("ok").Inc()
	m.lastSuccess.SetToCurrentTime()
}
