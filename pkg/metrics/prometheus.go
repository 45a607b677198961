package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "failfast"

	outcomePassed = "passed"
	outcomeFailed = "failed"
)

// PrometheusMetrics implements CheckMetrics with a Prometheus
// counter labelled by check name and outcome.
type PrometheusMetrics struct {
	checks *prometheus.CounterVec
}

// NewPrometheusMetrics creates the collectors and registers them
// with reg. A nil reg leaves them unregistered.
func NewPrometheusMetrics(
	reg prometheus.Registerer,
) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checks_total",
				Help:      "Number of evaluated checks by check name and outcome.",
			},
			[]string{"check", "outcome"},
		),
	}

	if reg != nil {
		if err := reg.Register(m.checks); err != nil {
			return nil, fmt.Errorf(
				"failed to register check metrics: %w", err,
			)
		}
	}

	return m, nil
}

func (m *PrometheusMetrics) RecordCheck(check string, passed bool) {
	m.checks.WithLabelValues(check, outcome(passed)).Inc()
}

// Collector exposes the underlying counter, e.g. for a custom
// registry or for tests.
func (m *PrometheusMetrics) Collector() *prometheus.CounterVec {
	return m.checks
}

func outcome(passed bool) string {
	if passed {
		return outcomePassed
	}
	return outcomeFailed
}
