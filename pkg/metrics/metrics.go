package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "attendance"

// Metrics holds the service collectors. Each instance owns its registry so
// tests can create as many as they need.
type Metrics struct {
	Registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	logins          *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	leaveDecisions  *prometheus.CounterVec
	notificationsTx prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by selected role and outcome.",
		}, []string{"role", "outcome"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigation_transitions_total",
			Help:      "Navigation events by event name and result.",
		}, []string{"event", "result"}),
		leaveDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leave_decisions_total",
			Help:      "Leave request decisions by status.",
		}, []string{"status"}),
		notificationsTx: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_sent_total",
			Help:      "Emails handed to the SMTP server by the notifier.",
		}),
	}

	m.Registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.logins,
		m.transitions,
		m.leaveDecisions,
		m.notificationsTx,
		collectors.NewGoCollector(),
	)

	return m
}

func (m *Metrics) ObserveHTTP(route, method string, code int, seconds float64) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(seconds)
}

func (m *Metrics) Login(role string, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}

	m.logins.WithLabelValues(role, outcome).Inc()
}

func (m *Metrics) Transition(event string, ok bool) {
	result := "rejected"
	if ok {
		result = "applied"
	}

	m.transitions.WithLabelValues(event, result).Inc()
}

func (m *Metrics) LeaveDecision(status string) {
	m.leaveDecisions.WithLabelValues(status).Inc()
}

func (m *Metrics) EmailSent() {
	m.notificationsTx.Inc()
}
