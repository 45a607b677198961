package assertion

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"digital.vasic.failfast/pkg/failfast"
	"digital.vasic.failfast/pkg/logging"
	"digital.vasic.failfast/pkg/metrics"
)

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	checker *failfast.Checker
	logger  logging.Logger
	metrics metrics.CheckMetrics
	types   map[string]reflect.Type
	custom  []namedCheck
}

type namedCheck struct {
	name  string
	check Check
}

// WithChecker sets the checker the built-in checks run on. The
// default is failfast.New().
func WithChecker(checker *failfast.Checker) Option {
	return func(c *engineConfig) {
		c.checker = checker
	}
}

// WithLogger sets the logger failed checks are reported to.
func WithLogger(logger logging.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithMetrics sets the recorder for check outcomes.
func WithMetrics(m metrics.CheckMetrics) Option {
	return func(c *engineConfig) {
		c.metrics = m
	}
}

// WithType registers typ under name for the "instance_of"
// check. NewEngine fails if typ is nil.
func WithType(name string, typ reflect.Type) Option {
	return func(c *engineConfig) {
		c.types[name] = typ
	}
}

// WithCheck adds a custom check. NewEngine fails if name is
// already taken.
func WithCheck(name string, check Check) Option {
	return func(c *engineConfig) {
		c.custom = append(c.custom, namedCheck{name: name, check: check})
	}
}

// Engine runs named checks. Its check table is fixed by
// NewEngine and never changes afterwards, so an Engine is safe
// for concurrent use without locking.
type Engine struct {
	checks  map[string]Check
	types   map[string]reflect.Type
	logger  logging.Logger
	metrics metrics.CheckMetrics
}

// NewEngine creates an Engine with the built-in checks plus any
// added through WithCheck.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{
		logger:  logging.NullLogger{},
		metrics: metrics.NoopMetrics{},
		types:   make(map[string]reflect.Type),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.checker == nil {
		cfg.checker = failfast.New()
	}

	for name, typ := range cfg.types {
		if typ == nil {
			return nil, fmt.Errorf("type %s: nil type", name)
		}
	}

	checks := builtinChecks(cfg.checker, cfg.types)
	for _, nc := range cfg.custom {
		if nc.check == nil {
			return nil, fmt.Errorf("check %s: nil check function", nc.name)
		}
		if _, exists := checks[nc.name]; exists {
			return nil, fmt.Errorf(
				"check already registered: %s", nc.name,
			)
		}
		checks[nc.name] = nc.check
	}

	return &Engine{
		checks:  checks,
		types:   cfg.types,
		logger:  cfg.logger,
		metrics: cfg.metrics,
	}, nil
}

// Check runs def against value. It returns nil when the check
// holds and a *failfast.AssertionError otherwise, including
// when def names an unknown check.
func (e *Engine) Check(def Definition, value any) error {
	check, exists := e.checks[def.Check]

	var err error
	if exists {
		err = check(def, value)
	} else {
		err = unknownCheck(def, value)
	}

	e.metrics.RecordCheck(def.Check, err == nil)
	if err != nil {
		e.logFailure(def, value, err)
	}
	return err
}

// Evaluate runs def against value and reports the outcome as a
// Result.
func (e *Engine) Evaluate(def Definition, value any) Result {
	err := e.Check(def, value)

	r := Result{
		Check:  def.Check,
		Target: def.Target,
		Passed: err == nil,
		Err:    err,
	}
	if err != nil {
		r.Message = err.Error()
	}
	return r
}

// EvaluateAll runs each definition against the value stored
// under its Target. A target missing from values is checked as
// failfast.Undefined.
func (e *Engine) EvaluateAll(
	defs []Definition,
	values map[string]any,
) []Result {
	results := make([]Result, 0, len(defs))

	for _, def := range defs {
		value, exists := values[def.Target]
		if !exists {
			value = failfast.Undefined
		}
		results = append(results, e.Evaluate(def, value))
	}

	return results
}

// Validate checks that each definition names a check in the
// table, that "instance_of" names a registered type, and that
// the definition passes the package-level Validate.
func (e *Engine) Validate(defs ...Definition) error {
	var errs []error
	for i, def := range defs {
		if err := e.validate(def); err != nil {
			errs = append(errs, fmt.Errorf("definition %d (%s): %w", i, def.Check, err))
		}
	}
	return errors.Join(errs...)
}

func (e *Engine) validate(def Definition) error {
	if err := Validate(def); err != nil {
		return err
	}
	if !e.HasCheck(def.Check) {
		return fmt.Errorf("unknown check: %s", def.Check)
	}
	if def.Check == failfast.CheckInstanceOf {
		if _, ok := e.types[def.Type]; !ok {
			return fmt.Errorf("unregistered type: %s", def.Type)
		}
	}
	return nil
}

// HasCheck returns true if name is in the check table.
func (e *Engine) HasCheck(name string) bool {
	_, exists := e.checks[name]
	return exists
}

// Checks returns the names in the check table, sorted.
func (e *Engine) Checks() []string {
	names := make([]string, 0, len(e.checks))
	for name := range e.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Engine) logFailure(def Definition, value any, err error) {
	fields := []logging.Field{
		logging.StringField("check", def.Check),
		logging.StringField("kind", failfast.KindAssertionFailure),
		logging.StringField("actual", failfast.ClassOf(value).String()),
		logging.ErrorField(err),
	}
	if def.Target != "" {
		fields = append(fields, logging.StringField("target", def.Target))
	}
	e.logger.Debug("check failed", fields...)
}

func unknownCheck(def Definition, value any) error {
	msg := def.Message
	if msg == "" {
		msg = fmt.Sprintf("unknown check: %s", def.Check)
	}
	return &failfast.AssertionError{
		Check:    def.Check,
		Message:  msg,
		Expected: "known check",
		Actual:   failfast.ClassOf(value),
	}
}
