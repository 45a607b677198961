// Package failfast guards function entry points with runtime
// type and value checks. Each check examines one value and
// returns nil when it holds, or an *AssertionError carrying a
// descriptive message when it does not:
//
//	func Resize(width any) error {
//		if err := failfast.NormalNumber(width, "width must be a finite number"); err != nil {
//			return err
//		}
//		...
//	}
//
// Checks take the examined value first and an optional message
// last. Without a message a default of the form
// "Expected Number but got String" is used. Callers that prefer
// to abort outright wrap a check in Must.
//
// Classification (see ClassOf) looks through pointers, so a
// boxed value and its primitive classify the same way.
package failfast

import (
	"reflect"
	"regexp"
)

var std = New()

// Assert fails unless value is exactly the boolean true.
func Assert(value any, msgAndArgs ...any) error {
	return std.Assert(value, msgAndArgs...)
}

// NotNull fails when value is nil. Undefined passes.
func NotNull(value any, msgAndArgs ...any) error {
	return std.NotNull(value, msgAndArgs...)
}

// Boolean fails unless value is a bool.
func Boolean(value any, msgAndArgs ...any) error {
	return std.Boolean(value, msgAndArgs...)
}

// String fails unless value is a string.
func String(value any, msgAndArgs ...any) error {
	return std.String(value, msgAndArgs...)
}

// Array fails unless value is a slice or an array.
func Array(value any, msgAndArgs ...any) error {
	return std.Array(value, msgAndArgs...)
}

// Function fails unless value is a non-nil func.
func Function(value any, msgAndArgs ...any) error {
	return std.Function(value, msgAndArgs...)
}

// Date fails unless value is a time.Time.
func Date(value any, msgAndArgs ...any) error {
	return std.Date(value, msgAndArgs...)
}

// Number fails unless value is numeric. Numeric strings fail.
func Number(value any, msgAndArgs ...any) error {
	return std.Number(value, msgAndArgs...)
}

// NormalNumber fails unless value is numeric, finite and not NaN.
func NormalNumber(value any, msgAndArgs ...any) error {
	return std.NormalNumber(value, msgAndArgs...)
}

// Object fails unless value is a map or a struct.
func Object(value any, msgAndArgs ...any) error {
	return std.Object(value, msgAndArgs...)
}

// InstanceOf fails unless value's dynamic type is assignable to
// typ.
func InstanceOf(value any, typ reflect.Type, msgAndArgs ...any) error {
	return std.InstanceOf(value, typ, msgAndArgs...)
}

// IsInstance is InstanceOf with the type given as a type
// parameter:
//
//	failfast.IsInstance[io.Reader](src)
func IsInstance[T any](value any, msgAndArgs ...any) error {
	return std.InstanceOf(value, reflect.TypeOf((*T)(nil)).Elem(), msgAndArgs...)
}

// HasProperty fails unless name is a key, field or method of
// object.
func HasProperty(object any, name string, msgAndArgs ...any) error {
	return std.HasProperty(object, name, msgAndArgs...)
}

// Match fails unless the string form of value fully matches
// pattern.
func Match(value any, pattern *regexp.Regexp, msgAndArgs ...any) error {
	return std.Match(value, pattern, msgAndArgs...)
}
