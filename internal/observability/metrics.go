package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "drp"

// Metrics holds the Prometheus collectors for notification fan-out and routing.
type Metrics struct {
	// Notifier.
	NotificationsTriggered prometheus.Counter
	NotificationTargets    *prometheus.CounterVec // labels: kind={user,guest}
	PushResults            *prometheus.CounterVec // labels: outcome={success,failure,error}
	AuditRecords           *prometheus.CounterVec // labels: outcome={inserted,failed}
	NotifierDuration       prometheus.Histogram

	// Background queue.
	QueueEnqueued prometheus.Counter
	QueueErrors   *prometheus.CounterVec // labels: op={enqueue,dequeue}

	// Routing provider.
	RouteRequests *prometheus.CounterVec   // labels: kind={direct,avoid}, outcome={success,error,empty}
	RouteDuration *prometheus.HistogramVec // labels: kind
}

func newMetrics() *Metrics {
	return &Metrics{
		NotificationsTriggered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_triggered_total",
			Help:      "Incident notification fan-outs started.",
		}),
		NotificationTargets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_targets_total",
			Help:      "Unique owners resolved near an incident, by owner kind.",
		}, []string{"kind"}),
		PushResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_results_total",
			Help:      "Per-token push delivery outcomes.",
		}, []string{"outcome"}),
		AuditRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_audit_records_total",
			Help:      "Notification audit rows by outcome.",
		}, []string{"outcome"}),
		NotifierDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "notifier_duration_seconds",
			Help:      "Duration of a complete notification fan-out.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		QueueEnqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_jobs_enqueued_total",
			Help:      "Notification jobs submitted to the background queue.",
		}),
		QueueErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_queue_errors_total",
			Help:      "Notification queue failures by operation.",
		}, []string{"op"}),
		RouteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_requests_total",
			Help:      "Routing provider requests by kind and outcome.",
		}, []string{"kind", "outcome"}),
		RouteDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_request_duration_seconds",
			Help:      "Routing provider request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"kind"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.NotificationsTriggered,
		m.NotificationTargets,
		m.PushResults,
		m.AuditRecords,
		m.NotifierDuration,
		m.QueueEnqueued,
		m.QueueErrors,
		m.RouteRequests,
		m.RouteDuration,
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates unregistered metrics so tests can build as many
// as they like without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
