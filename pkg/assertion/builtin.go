package assertion

import (
	"fmt"
	"reflect"
	"regexp"

	"digital.vasic.failfast/pkg/failfast"
)

// builtinChecks returns the built-in checks bound to checker.
// types resolves the names used by "instance_of".
func builtinChecks(
	checker *failfast.Checker,
	types map[string]reflect.Type,
) map[string]Check {
	return map[string]Check{
		failfast.CheckAssert:       valueCheck(checker.Assert),
		failfast.CheckNotNull:      valueCheck(checker.NotNull),
		failfast.CheckBoolean:      valueCheck(checker.Boolean),
		failfast.CheckString:       valueCheck(checker.String),
		failfast.CheckArray:        valueCheck(checker.Array),
		failfast.CheckFunction:     valueCheck(checker.Function),
		failfast.CheckDate:         valueCheck(checker.Date),
		failfast.CheckNumber:       valueCheck(checker.Number),
		failfast.CheckNormalNumber: valueCheck(checker.NormalNumber),
		failfast.CheckObject:       valueCheck(checker.Object),
		failfast.CheckInstanceOf:   instanceOfCheck(checker, types),
		failfast.CheckHasProperty:  hasPropertyCheck(checker),
		failfast.CheckMatch:        matchCheck(checker),
	}
}

// valueCheck adapts a check that needs nothing but the value.
func valueCheck(
	fn func(value any, msgAndArgs ...any) error,
) Check {
	return func(def Definition, value any) error {
		return fn(value, def.message()...)
	}
}

// instanceOfCheck resolves Definition.Type against the types
// registered on the engine. An unregistered name checks against
// nothing and always fails.
func instanceOfCheck(
	checker *failfast.Checker,
	types map[string]reflect.Type,
) Check {
	return func(def Definition, value any) error {
		return checker.InstanceOf(value, types[def.Type], def.message()...)
	}
}

func hasPropertyCheck(checker *failfast.Checker) Check {
	return func(def Definition, value any) error {
		return checker.HasProperty(value, def.Property, def.message()...)
	}
}

// matchCheck compiles Definition.Pattern on every call. An
// invalid pattern fails the check with a message naming the
// compile error.
func matchCheck(checker *failfast.Checker) Check {
	return func(def Definition, value any) error {
		pattern, err := regexp.Compile(def.Pattern)
		if err != nil {
			msg := fmt.Sprintf("invalid pattern %q: %v", def.Pattern, err)
			if def.Message != "" {
				msg = def.Message
			}
			return &failfast.AssertionError{
				Check:    failfast.CheckMatch,
				Message:  msg,
				Expected: "value matching " + def.Pattern,
				Actual:   failfast.ClassOf(value),
			}
		}
		return checker.Match(value, pattern, def.message()...)
	}
}
