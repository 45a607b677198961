package failfast

import (
	"math/big"
	"reflect"
	"regexp"
	"time"
)

// Kind is the canonical runtime classification of a value. It
// does not distinguish a primitive from its boxed (pointer)
// form: 1 and a *int pointing at 1 both classify as Number.
type Kind int

const (
	// KindUndefined is the classification of the Undefined
	// sentinel (an unset value).
	KindUndefined Kind = iota
	// KindNull covers untyped nil and nil pointers, funcs,
	// channels and interfaces.
	KindNull
	// KindBoolean covers bool and named bool types.
	KindBoolean
	// KindNumber covers integer and float kinds plus the
	// math/big number types.
	KindNumber
	// KindString covers string and named string types.
	KindString
	// KindArray covers slices and arrays.
	KindArray
	// KindFunction covers non-nil funcs.
	KindFunction
	// KindDate covers time.Time.
	KindDate
	// KindRegExp covers regexp.Regexp.
	KindRegExp
	// KindObject covers maps and structs.
	KindObject
	// KindChannel covers non-nil channels.
	KindChannel
	// KindComplex covers complex64 and complex128.
	KindComplex
	// KindPointer covers unsafe.Pointer.
	KindPointer
)

// String returns the display name used in failure messages.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "Undefined"
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindFunction:
		return "Function"
	case KindDate:
		return "Date"
	case KindRegExp:
		return "RegExp"
	case KindObject:
		return "Object"
	case KindChannel:
		return "Channel"
	case KindComplex:
		return "Complex"
	case KindPointer:
		return "Pointer"
	default:
		return "Unknown"
	}
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined stands in for a value that was never set. It is
// distinct from nil: NotNull accepts it, every type check
// rejects it.
var Undefined any = undefined{}

var (
	timeType   = reflect.TypeOf(time.Time{})
	regexpType = reflect.TypeOf(regexp.Regexp{})
	bigInt     = reflect.TypeOf(big.Int{})
	bigFloat   = reflect.TypeOf(big.Float{})
	bigRat     = reflect.TypeOf(big.Rat{})
)

// ClassOf returns the classification of v.
func ClassOf(v any) Kind {
	if v == nil {
		return KindNull
	}
	if _, ok := v.(undefined); ok {
		return KindUndefined
	}

	rv, ok := unbox(reflect.ValueOf(v))
	if !ok {
		return KindNull
	}
	return classOfValue(rv)
}

// unbox follows pointers and interfaces down to the value they
// hold. It reports false when it meets a nil on the way.
func unbox(rv reflect.Value) (reflect.Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rv, false
		}
		rv = rv.Elem()
	}
	return rv, true
}

func classOfValue(rv reflect.Value) Kind {
	switch rv.Type() {
	case timeType:
		return KindDate
	case regexpType:
		return KindRegExp
	case bigInt, bigFloat, bigRat:
		return KindNumber
	}

	switch rv.Kind() {
	case reflect.Bool:
		return KindBoolean
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Complex64, reflect.Complex128:
		return KindComplex
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Func:
		if rv.IsNil() {
			return KindNull
		}
		return KindFunction
	case reflect.Chan:
		if rv.IsNil() {
			return KindNull
		}
		return KindChannel
	case reflect.Map, reflect.Struct:
		return KindObject
	case reflect.UnsafePointer:
		if rv.IsNil() {
			return KindNull
		}
		return KindPointer
	default:
		return KindNull
	}
}
