// Package metrics owns the Prometheus collectors exported on /metrics.
package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "rating"

// Collector holds all Prometheus metrics for the application. Each instance
// carries its own registry so tests can build as many as they like.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Event bus metrics
	EventsEmitted   *prometheus.CounterVec
	HandlerPanics   *prometheus.CounterVec
	TasksDropped    prometheus.Counter
	TasksCompleted  prometheus.Counter
	DispatcherQueue prometheus.Gauge

	// Summarization trigger metrics
	SummaryRequests *prometheus.CounterVec
}

// NewCollector creates and registers every metric.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		EventsEmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "eventbus",
				Name:      "events_emitted_total",
				Help:      "Total number of events emitted per topic",
			},
			[]string{"topic"},
		),
		HandlerPanics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "eventbus",
				Name:      "handler_panics_total",
				Help:      "Total number of recovered handler panics per topic",
			},
			[]string{"topic"},
		),
		TasksDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "eventbus",
				Name:      "tasks_dropped_total",
				Help:      "Tasks rejected because the dispatcher queue was full or stopped",
			},
		),
		TasksCompleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "eventbus",
				Name:      "tasks_completed_total",
				Help:      "Tasks run to completion by dispatcher workers",
			},
		),
		DispatcherQueue: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "eventbus",
				Name:      "dispatcher_queue_length",
				Help:      "Tasks waiting in the dispatcher queue",
			},
		),
		SummaryRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "summarizer",
				Name:      "requests_total",
				Help:      "Summarization requests by provider and outcome",
			},
			[]string{"provider", "status"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.HTTPRequests,
		c.HTTPDuration,
		c.EventsEmitted,
		c.HandlerPanics,
		c.TasksDropped,
		c.TasksCompleted,
		c.DispatcherQueue,
		c.SummaryRequests,
	)

	return c
}

// RegisterDBStats exports connection pool statistics of db.
func (c *Collector) RegisterDBStats(db *sql.DB, name string) error {
	return c.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// Registry returns the Prometheus registry for this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
