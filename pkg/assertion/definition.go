// Package assertion evaluates failfast checks by name. An
// Engine holds a fixed table of checks built at construction
// time, so checks can be declared as data (a Definition, a
// compact "check:arg" string, or a YAML document) and run
// against named values.
package assertion

// Definition describes a single named check to run against a
// target value.
type Definition struct {
	// Check is the check name (e.g. "number", "has_property",
	// "match").
	Check string `json:"check" yaml:"check"`

	// Target is the name of the value to check when evaluating
	// against a map of values.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Message replaces the default failure message when set.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// Pattern is the regular expression for "match".
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Property is the property name for "has_property".
	Property string `json:"property,omitempty" yaml:"property,omitempty"`

	// Type is the registered type name for "instance_of".
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Result captures the outcome of evaluating a single
// Definition.
type Result struct {
	// Check is the check that was evaluated.
	Check string `json:"check"`

	// Target is the name of the value checked.
	Target string `json:"target"`

	// Passed indicates whether the check held.
	Passed bool `json:"passed"`

	// Message is the failure message, empty when Passed.
	Message string `json:"message,omitempty"`

	// Err is the failure signal, nil when Passed.
	Err error `json:"-"`
}

// message returns the definition's custom message as check
// arguments.
func (d Definition) message() []any {
	if d.Message == "" {
		return nil
	}
	return []any{d.Message}
}
