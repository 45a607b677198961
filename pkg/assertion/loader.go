package assertion

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"digital.vasic.failfast/pkg/failfast"
)

// File is the on-disk structure of a YAML check file:
//
//	version: "1"
//	checks:
//	  - check: normal_number
//	    target: width
//	  - check: match
//	    target: id
//	    pattern: "^[a-z0-9]{32}$"
//	    message: id must be a 32 character hex digest
type File struct {
	Version string       `yaml:"version"`
	Checks  []Definition `yaml:"checks"`
}

// LoadDefinitionsFromFile reads and validates a YAML check file.
func LoadDefinitionsFromFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read check file %s: %w", path, err,
		)
	}

	defs, err := LoadDefinitions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// LoadDefinitions parses a YAML check document and validates
// every definition with Validate.
func LoadDefinitions(data []byte) ([]Definition, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse check file: %w", err)
	}

	var errs []error
	for i, def := range f.Checks {
		if err := Validate(def); err != nil {
			errs = append(errs, fmt.Errorf("checks[%d]: %w", i, err))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return f.Checks, nil
}

// LoadDefinitions parses a YAML check document like the
// package-level LoadDefinitions and then validates it against the
// engine: check names must be in the table and "instance_of"
// types must be registered.
func (e *Engine) LoadDefinitions(data []byte) ([]Definition, error) {
	defs, err := LoadDefinitions(data)
	if err != nil {
		return nil, err
	}
	if err := e.Validate(defs...); err != nil {
		return nil, err
	}
	return defs, nil
}

// Validate reports definitions that can never pass because of a
// mistake in the definition itself: a missing check name, a
// missing argument, or a pattern that does not compile. Whether
// the check name exists is the engine's concern, see
// Engine.Validate.
func Validate(def Definition) error {
	if def.Check == "" {
		return errors.New("check name is required")
	}

	switch def.Check {
	case failfast.CheckMatch:
		if def.Pattern == "" {
			return errors.New("match requires a pattern")
		}
		if _, err := regexp.Compile(def.Pattern); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", def.Pattern, err)
		}
	case failfast.CheckHasProperty:
		if def.Property == "" {
			return errors.New("has_property requires a property")
		}
	case failfast.CheckInstanceOf:
		if def.Type == "" {
			return errors.New("instance_of requires a type")
		}
	}

	return nil
}
