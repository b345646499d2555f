// Package metrics exposes Prometheus collectors for the bus, the FBS
// transport and the login tracker.
package metrics

import (
	"time"

	"github.com/bnema/bibbox-fbs/internal/bus"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "bibbox"

	LabelChannel = "channel"
	LabelOutcome = "outcome"
	LabelCommand = "command"
	LabelResult  = "result"
)

type Metrics struct {
	registry *prometheus.Registry

	busRequests     *prometheus.HistogramVec
	fbsRequests     *prometheus.HistogramVec
	loginFailures   prometheus.Counter
	patronBlocks    *prometheus.CounterVec
	offlineFallback prometheus.Counter
}

var _ bus.Observer = (*Metrics)(nil)

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		busRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "bus",
			Name:      "request_duration_seconds",
			Help:      "Duration of correlated bus requests, in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 3, 8),
		}, []string{LabelChannel, LabelOutcome}),
		fbsRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "fbs",
			Name:      "request_duration_seconds",
			Help:      "Duration of SIP2 requests sent to FBS, in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 3, 8),
		}, []string{LabelCommand, LabelResult}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "login",
			Name:      "failures_total",
			Help:      "Failed patron logins.",
		}),
		patronBlocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "login",
			Name:      "blocks_total",
			Help:      "Block requests issued after too many failed logins.",
		}, []string{LabelResult}),
		offlineFallback: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "login",
			Name:      "offline_fallback_total",
			Help:      "Logins allowed unauthenticated because FBS was offline.",
		}),
	}

	m.registry.MustRegister(
		m.busRequests,
		m.fbsRequests,
		m.loginFailures,
		m.patronBlocks,
		m.offlineFallback,
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveRequest(channel string, outcome bus.Outcome, elapsed time.Duration) {
	m.busRequests.WithLabelValues(channel, string(outcome)).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveFBS(command string, result string, elapsed time.Duration) {
	m.fbsRequests.WithLabelValues(command, result).Observe(elapsed.Seconds())
}

func (m *Metrics) LoginFailed() {
	m.loginFailures.Inc()
}

func (m *Metrics) PatronBlocked(ok bool) {
	result := "success"
	if !ok {
		result = "error"
	}
	m.patronBlocks.WithLabelValues(result).Inc()
}

func (m *Metrics) OfflineLogin() {
	m.offlineFallback.Inc()
}
