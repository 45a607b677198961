package failfast

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// StringForm returns the string a value is matched against by
// Match.
func StringForm(v any) string {
	return stringForm(v, nil)
}

// sliceVisit identifies a slice that is being rendered, so that a
// slice holding itself renders the repeat as "".
type sliceVisit struct {
	typ reflect.Type
	ptr uintptr
	len int
}

func stringForm(v any, seen map[sliceVisit]struct{}) string {
	switch ClassOf(v) {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	}

	switch s := v.(type) {
	case string:
		return s
	case time.Time:
		return s.Format(time.RFC3339Nano)
	case *time.Time:
		return s.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return s.String()
	case error:
		return s.Error()
	}

	rv, _ := unbox(reflect.ValueOf(v))
	return valueForm(rv, seen)
}

func valueForm(rv reflect.Value, seen map[sliceVisit]struct{}) string {
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Slice:
		if rv.Len() == 0 {
			return ""
		}
		visit := sliceVisit{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}
		if _, ok := seen[visit]; ok {
			return ""
		}
		if seen == nil {
			seen = make(map[sliceVisit]struct{})
		}
		seen[visit] = struct{}{}
		defer delete(seen, visit)
		return joinElements(rv, seen)
	case reflect.Array:
		return joinElements(rv, seen)
	}

	if rv.CanInterface() {
		return fmt.Sprint(rv.Interface())
	}
	return rv.String()
}

func joinElements(rv reflect.Value, seen map[sliceVisit]struct{}) string {
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = stringForm(rv.Index(i).Interface(), seen)
	}
	return strings.Join(parts, ",")
}

// formatFloat renders f in plain decimal notation when
// 1e-7 <= |f| < 1e21 and in exponent notation otherwise, with
// NaN and the infinities spelled out.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e-7 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}

	// strconv pads the exponent to two digits ("1e-08").
	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
