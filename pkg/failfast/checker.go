package failfast

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Check names carried by AssertionError.Check.
const (
	CheckAssert       = "assert"
	CheckNotNull      = "not_null"
	CheckBoolean      = "boolean"
	CheckString       = "string"
	CheckArray        = "array"
	CheckFunction     = "function"
	CheckDate         = "date"
	CheckNumber       = "number"
	CheckNormalNumber = "normal_number"
	CheckObject       = "object"
	CheckInstanceOf   = "instance_of"
	CheckHasProperty  = "has_property"
	CheckMatch        = "match"
)

// Option configures a Checker.
type Option func(*Checker)

// WithNumericStrings makes Number and NormalNumber accept
// strings that parse as a floating point number ("42", " 1.5e3 ").
// The default policy rejects every String.
func WithNumericStrings() Option {
	return func(c *Checker) {
		c.numericStrings = true
	}
}

// WithStrictBounds makes NormalNumber reject the representable
// bounds of the value's type: the maximum of an integer type
// (and the minimum of a signed one), and the largest and
// smallest non-zero magnitudes of a float type.
func WithStrictBounds() Option {
	return func(c *Checker) {
		c.strictBounds = true
	}
}

// Checker evaluates checks under a fixed policy. It holds no
// mutable state and is safe for concurrent use.
type Checker struct {
	numericStrings bool
	strictBounds   bool
}

// New creates a Checker. Without options it uses the strict
// number policy and does not exclude numeric bounds.
func New(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Assert fails unless value is exactly the boolean true. A
// pointer to true counts as true; truthy values do not.
func (c *Checker) Assert(value any, msgAndArgs ...any) error {
	if b, ok := boolValue(value); ok && b {
		return nil
	}

	actual := ClassOf(value)
	return newFailure(CheckAssert, "true", actual, messageOr(msgAndArgs, func() string {
		if actual == KindBoolean {
			return defaultMessage("true", "false")
		}
		return defaultMessage("true", actual.String())
	}))
}

// NotNull fails when value classifies as Null. Undefined passes.
func (c *Checker) NotNull(value any, msgAndArgs ...any) error {
	if ClassOf(value) != KindNull {
		return nil
	}
	return newFailure(CheckNotNull, "non-null value", KindNull, messageOr(msgAndArgs, func() string {
		return defaultMessage("non-null value", KindNull.String())
	}))
}

// Boolean fails unless value classifies as Boolean.
func (c *Checker) Boolean(value any, msgAndArgs ...any) error {
	return c.expectKind(CheckBoolean, KindBoolean, value, msgAndArgs)
}

// String fails unless value classifies as String.
func (c *Checker) String(value any, msgAndArgs ...any) error {
	return c.expectKind(CheckString, KindString, value, msgAndArgs)
}

// Array fails unless value is a slice or an array.
func (c *Checker) Array(value any, msgAndArgs ...any) error {
	return c.expectKind(CheckArray, KindArray, value, msgAndArgs)
}

// Function fails unless value is a non-nil func.
func (c *Checker) Function(value any, msgAndArgs ...any) error {
	return c.expectKind(CheckFunction, KindFunction, value, msgAndArgs)
}

// Date fails unless value is a time.Time.
func (c *Checker) Date(value any, msgAndArgs ...any) error {
	return c.expectKind(CheckDate, KindDate, value, msgAndArgs)
}

// Object fails unless value is a map or a struct. Arrays, dates,
// strings, numbers, booleans, nil and Undefined all fail.
func (c *Checker) Object(value any, msgAndArgs ...any) error {
	return c.expectKind(CheckObject, KindObject, value, msgAndArgs)
}

// Number fails unless value classifies as Number, or, under
// WithNumericStrings, is a String holding a parseable number.
func (c *Checker) Number(value any, msgAndArgs ...any) error {
	if _, ok := c.numberOf(value); ok {
		return nil
	}
	return c.kindFailure(CheckNumber, KindNumber.String(), value, msgAndArgs)
}

// NormalNumber fails unless Number holds and the value is
// neither NaN nor an infinity. Under WithStrictBounds the
// representable bounds of the value's type fail too.
func (c *Checker) NormalNumber(value any, msgAndArgs ...any) error {
	const expected = "normal Number"

	n, ok := c.numberOf(value)
	if !ok {
		return c.kindFailure(CheckNormalNumber, expected, value, msgAndArgs)
	}
	if n.normal(c.strictBounds) {
		return nil
	}

	return newFailure(CheckNormalNumber, expected, KindNumber, messageOr(msgAndArgs, func() string {
		return defaultMessage(expected, n.String())
	}))
}

// InstanceOf fails when value is Null or Undefined, or when its
// dynamic type is not assignable to typ. For an interface typ
// this is an implements check. A pointer whose element type is
// assignable to typ also passes.
func (c *Checker) InstanceOf(value any, typ reflect.Type, msgAndArgs ...any) error {
	actual := ClassOf(value)
	if typ != nil && actual != KindNull && actual != KindUndefined && instanceOf(reflect.TypeOf(value), typ) {
		return nil
	}

	expected := "instance of <nil>"
	if typ != nil {
		expected = "instance of " + typ.String()
	}
	return newFailure(CheckInstanceOf, expected, actual, messageOr(msgAndArgs, func() string {
		return defaultMessage(expected, typeName(value, actual))
	}))
}

// HasProperty fails unless name is reachable on object: a key of
// a map, a field of a struct (promoted fields of embedded structs
// included), or a method of the value or of a pointer to it.
func (c *Checker) HasProperty(object any, name string, msgAndArgs ...any) error {
	if hasProperty(object, name) {
		return nil
	}
	return newFailure(CheckHasProperty, "property "+name, ClassOf(object), messageOr(msgAndArgs, func() string {
		return "Expected object to have property named " + name
	}))
}

// Match fails unless the string form of value fully matches
// pattern. Partial matches fail regardless of anchors in the
// pattern.
func (c *Checker) Match(value any, pattern *regexp.Regexp, msgAndArgs ...any) error {
	var expected string
	if pattern != nil {
		expected = "value matching " + pattern.String()
		if full, err := anchored(pattern); err == nil && full.MatchString(StringForm(value)) {
			return nil
		}
	} else {
		expected = "value matching <nil>"
	}

	actual := ClassOf(value)
	return newFailure(CheckMatch, expected, actual, messageOr(msgAndArgs, func() string {
		return defaultMessage(expected, actual.String())
	}))
}

func (c *Checker) expectKind(check string, want Kind, value any, msgAndArgs []any) error {
	if ClassOf(value) == want {
		return nil
	}
	return c.kindFailure(check, want.String(), value, msgAndArgs)
}

func (c *Checker) kindFailure(check, expected string, value any, msgAndArgs []any) error {
	actual := ClassOf(value)
	return newFailure(check, expected, actual, messageOr(msgAndArgs, func() string {
		return defaultMessage(expected, actual.String())
	}))
}

func boolValue(value any) (bool, bool) {
	if value == nil {
		return false, false
	}
	rv, ok := unbox(reflect.ValueOf(value))
	if !ok || rv.Kind() != reflect.Bool {
		return false, false
	}
	return rv.Bool(), true
}

// number is a numeric value lifted out of its Go representation.
type number struct {
	f       float64
	exact   bool // true for integers, where bounds come from bits
	signed  bool
	bits    int
	i       int64
	u       uint64
	bigNum  bool
	bigInf  bool // only a big.Float can be infinite
	display string
}

func (c *Checker) numberOf(value any) (number, bool) {
	switch ClassOf(value) {
	case KindNumber:
	case KindString:
		if !c.numericStrings {
			return number{}, false
		}
	default:
		return number{}, false
	}

	rv, _ := unbox(reflect.ValueOf(value))

	switch rv.Type() {
	case bigInt:
		bi := bigPointer[big.Int](rv)
		return number{bigNum: true, display: bi.String()}, true
	case bigFloat:
		bf := bigPointer[big.Float](rv)
		return number{bigNum: true, bigInf: bf.IsInf(), display: bf.String()}, true
	case bigRat:
		br := bigPointer[big.Rat](rv)
		return number{bigNum: true, display: br.RatString()}, true
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		return number{f: float64(i), exact: true, signed: true, bits: rv.Type().Bits(), i: i}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		return number{f: float64(u), exact: true, bits: rv.Type().Bits(), u: u}, true
	case reflect.Float32, reflect.Float64:
		return number{f: rv.Float(), bits: rv.Type().Bits()}, true
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil && !isRangeError(err) {
			return number{}, false
		}
		return number{f: f, bits: 64}, true
	}

	return number{}, false
}

// bigPointer returns a pointer to the math/big value held by rv,
// copying it when rv is not addressable.
func bigPointer[T any](rv reflect.Value) *T {
	if rv.CanAddr() {
		return rv.Addr().Interface().(*T)
	}
	v := rv.Interface().(T)
	return &v
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

// normal reports whether n is finite and, when strict is set,
// not one of its type's representable bounds. math/big values
// have no bounds.
func (n number) normal(strict bool) bool {
	if n.bigNum {
		return !n.bigInf
	}
	if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
		return false
	}
	if !strict {
		return true
	}

	if n.exact {
		if n.signed {
			limit := int64(^uint64(0) >> (65 - n.bits))
			return n.i != limit && n.i != -limit-1
		}
		return n.u != ^uint64(0)>>(64-n.bits)
	}

	if n.bits == 32 {
		abs := math.Abs(n.f)
		return abs != math.MaxFloat32 && abs != math.SmallestNonzeroFloat32
	}
	abs := math.Abs(n.f)
	return abs != math.MaxFloat64 && abs != math.SmallestNonzeroFloat64
}

func (n number) String() string {
	if n.display != "" {
		return n.display
	}
	switch {
	case n.exact && n.signed:
		return strconv.FormatInt(n.i, 10)
	case n.exact:
		return strconv.FormatUint(n.u, 10)
	default:
		return formatFloat(n.f, 64)
	}
}

func instanceOf(actual, typ reflect.Type) bool {
	for actual != nil {
		if actual.AssignableTo(typ) {
			return true
		}
		if actual.Kind() != reflect.Pointer {
			return false
		}
		actual = actual.Elem()
	}
	return false
}

func typeName(value any, kind Kind) string {
	if kind == KindNull || kind == KindUndefined {
		return kind.String()
	}
	return reflect.TypeOf(value).String()
}

// hasProperty never finds anything on a Null or Undefined object,
// even a typed nil pointer whose method set has name.
func hasProperty(object any, name string) bool {
	if kind := ClassOf(object); kind == KindNull || kind == KindUndefined {
		return false
	}

	outer := reflect.ValueOf(object)
	if hasMethod(outer.Type(), name) {
		return true
	}

	rv, ok := unbox(outer)
	if !ok {
		return false
	}
	if hasMethod(rv.Type(), name) || hasMethod(reflect.PointerTo(rv.Type()), name) {
		return true
	}

	switch rv.Kind() {
	case reflect.Map:
		return mapHasKey(rv, name)
	case reflect.Struct:
		_, found := rv.Type().FieldByName(name)
		return found
	}
	return false
}

func hasMethod(t reflect.Type, name string) bool {
	_, ok := t.MethodByName(name)
	return ok
}

func mapHasKey(rv reflect.Value, name string) bool {
	keyType := rv.Type().Key()

	switch {
	case keyType.Kind() == reflect.String:
		return rv.MapIndex(reflect.ValueOf(name).Convert(keyType)).IsValid()
	case keyType.Kind() == reflect.Interface:
		if !reflect.TypeOf(name).Implements(keyType) {
			return false
		}
		return rv.MapIndex(reflect.ValueOf(name)).IsValid()
	}

	for _, key := range rv.MapKeys() {
		if fmt.Sprint(key.Interface()) == name {
			return true
		}
	}
	return false
}

// anchored compiles pattern so that it only matches a whole
// string. The caller's pattern is wrapped, not modified.
func anchored(pattern *regexp.Regexp) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + pattern.String() + `)\z`)
}
