// Package metrics records check outcomes for the assertion
// engine.
package metrics

// CheckMetrics defines the interface for recording check
// outcomes.
type CheckMetrics interface {
	// RecordCheck records one evaluation of the named check.
	RecordCheck(check string, passed bool)
}

// NoopMetrics is a no-op implementation of CheckMetrics used
// when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordCheck(_ string, _ bool) {}
