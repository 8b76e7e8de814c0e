package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns its own registry so tests can run collectors side by side.
type Collector struct {
	registry         *prometheus.Registry
	transitionsTotal *prometheus.CounterVec
	submissionsTotal *prometheus.CounterVec
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	return &Collector{
		registry: registry,
		transitionsTotal: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "loan_transitions_total",
			Help: "Loan lifecycle transitions by operation and outcome",
		}, []string{"operation", "outcome"}),
		submissionsTotal: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "loan_submissions_total",
			Help: "Loan submissions by outcome",
		}, []string{"outcome"}),
	}
}

// Record methods tolerate a nil collector so callers need no wiring guard.

func (c *Collector) RecordTransition(operation string, err error) {
	if c == nil {
		return
	}
	c.transitionsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

func (c *Collector) RecordSubmission(err error) {
	if c == nil {
		return
	}
	c.submissionsTotal.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
