package assertion

// Check evaluates one Definition against a value. It returns
// nil when the check holds and a *failfast.AssertionError when
// it does not.
type Check func(def Definition, value any) error
