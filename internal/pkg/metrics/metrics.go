package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

// Metrics methods are nil-safe so components can run without a collector.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	reservations *prometheus.CounterVec
	sideEffects  *prometheus.CounterVec
	backfill     *prometheus.CounterVec
}

func New(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reservations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_attempts_total",
			Help:      "Reservation attempts by outcome.",
		}, []string{"outcome"}),
		sideEffects: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_side_effects_total",
			Help:      "Post-commit reservation side effects by step and result.",
		}, []string{"step", "result"}),
		backfill: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backfill_items_total",
			Help:      "Items processed by the backfill sweep by task and result.",
		}, []string{"task", "result"}),
	}
}

// NewIsolated registers on a private registry. Used by tests and tools.
func NewIsolated() *Metrics {
	return New(prometheus.NewRegistry(), "bookfair")
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ReservationOutcome(outcome string) {
	if m == nil {
		return
	}
	m.reservations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SideEffect(step string, err error) {
	if m == nil {
		return
	}
	m.sideEffects.WithLabelValues(step, result(err)).Inc()
}

func (m *Metrics) BackfillItem(task string, err error) {
	if m == nil {
		return
	}
	m.backfill.WithLabelValues(task, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return ResultFailed
	}
	return ResultOK
}
