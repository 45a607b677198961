package failfast

import (
	"errors"
	"fmt"
)

// KindAssertionFailure is the stable identifier carried by
// every failure this package produces.
const KindAssertionFailure = "AssertionFailure"

// ErrAssertionFailed is the sentinel all assertion failures
// unwrap to.
var ErrAssertionFailed = errors.New("assertion failed")

// AssertionError is the failure signal returned by a check that
// does not hold.
type AssertionError struct {
	// Check is the name of the check that failed (e.g.
	// "number", "has_property").
	Check string

	// Message is the custom message supplied by the caller, or
	// the default message for the check.
	Message string

	// Expected describes what the check required.
	Expected string

	// Actual is the classification observed on the value.
	Actual Kind
}

// Error returns the message unchanged.
func (e *AssertionError) Error() string {
	if e == nil || e.Message == "" {
		return ErrAssertionFailed.Error()
	}
	return e.Message
}

// Kind returns KindAssertionFailure.
func (e *AssertionError) Kind() string {
	return KindAssertionFailure
}

// Unwrap returns ErrAssertionFailed for errors.Is.
func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// IsAssertionFailure reports whether err, or any error it
// wraps, is an assertion failure.
func IsAssertionFailure(err error) bool {
	return errors.Is(err, ErrAssertionFailed)
}

// AsAssertionError extracts the *AssertionError from err's
// chain.
func AsAssertionError(err error) (*AssertionError, bool) {
	var ae *AssertionError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// Must panics with err when it is non-nil. Use it where a failed
// check should abort the current operation outright:
//
//	failfast.Must(failfast.Number(port, "port must be a number"))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Recover turns a panic raised by Must back into an error. It
// must be deferred directly:
//
//	func Configure(v any) (err error) {
//		defer failfast.Recover(&err)
//		failfast.Must(failfast.Object(v))
//		...
//	}
//
// Panics that do not carry an assertion failure are re-raised.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	err, ok := r.(error)
	if !ok || !IsAssertionFailure(err) {
		panic(r)
	}

	if errp != nil {
		*errp = err
	}
}

func newFailure(check, expected string, actual Kind, message string) *AssertionError {
	return &AssertionError{
		Check:    check,
		Message:  message,
		Expected: expected,
		Actual:   actual,
	}
}

// defaultMessage builds "Expected <expected> but got <actual>".
func defaultMessage(expected, actual string) string {
	return fmt.Sprintf("Expected %s but got %s", expected, actual)
}
