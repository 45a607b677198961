package assertion

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.failfast/pkg/failfast"
)

func TestBuiltinChecks(t *testing.T) {
	checks := builtinChecks(failfast.New(), map[string]reflect.Type{
		"duration": reflect.TypeOf((*time.Duration)(nil)).Elem(),
	})

	tests := []struct {
		name   string
		def    Definition
		value  any
		passed bool
	}{
		{"assert true", Definition{Check: "assert"}, true, true},
		{"assert truthy", Definition{Check: "assert"}, 1, false},
		{"not_null undefined", Definition{Check: "not_null"}, failfast.Undefined, true},
		{"not_null nil", Definition{Check: "not_null"}, nil, false},
		{"boolean", Definition{Check: "boolean"}, false, true},
		{"string", Definition{Check: "string"}, "", true},
		{"array", Definition{Check: "array"}, []int{}, true},
		{"function", Definition{Check: "function"}, func() {}, true},
		{"date", Definition{Check: "date"}, time.Now(), true},
		{"number", Definition{Check: "number"}, 3, true},
		{"normal_number NaN", Definition{Check: "normal_number"}, math.NaN(), false},
		{"object", Definition{Check: "object"}, map[string]int{}, true},
		{"instance_of", Definition{Check: "instance_of", Type: "duration"}, time.Second, true},
		{"instance_of wrong type", Definition{Check: "instance_of", Type: "duration"}, 1, false},
		{"has_property", Definition{Check: "has_property", Property: "a"}, map[string]int{"a": 1}, true},
		{"has_property missing", Definition{Check: "has_property", Property: "b"}, map[string]int{"a": 1}, false},
		{"match", Definition{Check: "match", Pattern: `\d+`}, 123, true},
		{"match partial", Definition{Check: "match", Pattern: `\d+`}, "a123", false},
		{"match integral float", Definition{Check: "match", Pattern: `\d+`}, float64(1000000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check, ok := checks[tt.def.Check]
			require.True(t, ok)

			err := check(tt.def, tt.value)
			if tt.passed {
				assert.NoError(t, err)
			} else {
				assert.True(t, failfast.IsAssertionFailure(err))
			}
		})
	}
}

func TestMatchCheck_InvalidPattern(t *testing.T) {
	check := matchCheck(failfast.New())

	err := check(Definition{Check: "match", Pattern: "("}, "x")
	require.Error(t, err)
	assert.True(t, failfast.IsAssertionFailure(err))
	assert.Contains(t, err.Error(), `invalid pattern "("`)

	err = check(Definition{Check: "match", Pattern: "(", Message: "bad id"}, "x")
	require.Error(t, err)
	assert.Equal(t, "bad id", err.Error())
}

func TestDefinition_Message(t *testing.T) {
	assert.Nil(t, Definition{}.message())
	assert.Equal(t, []any{"m"}, Definition{Message: "m"}.message())
}
