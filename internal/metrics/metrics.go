// Package metrics exposes Prometheus collectors for HTTP traffic and domain events.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quizly"

// Metrics owns a private registry so tests can create as many instances as they need.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	transitions  *prometheus.CounterVec
	results      prometheus.Counter
	reminders    prometheus.Counter
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "membership_transitions_total",
			Help:      "Membership operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		results: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_results_submitted_total",
			Help:      "Graded quiz attempts.",
		}),
		reminders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_reminders_sent_total",
			Help:      "Quiz reminder notifications created by the scheduler.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.transitions,
		m.results,
		m.reminders,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Transition records the outcome of a membership operation.
func (m *Metrics) Transition(operation, outcome string) {
	m.transitions.WithLabelValues(operation, outcome).Inc()
}

// ResultSubmitted counts a graded attempt.
func (m *Metrics) ResultSubmitted() {
	m.results.Inc()
}

// RemindersSent counts reminder notifications.
func (m *Metrics) RemindersSent(n int) {
	m.reminders.Add(float64(n))
}
