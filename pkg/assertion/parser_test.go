package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinition(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Definition
	}{
		{
			name:     "check without argument",
			input:    "number",
			expected: Definition{Check: "number"},
		},
		{
			name:     "surrounding whitespace",
			input:    "  array ",
			expected: Definition{Check: "array"},
		},
		{
			name:     "has_property",
			input:    "has_property:myKey",
			expected: Definition{Check: "has_property", Property: "myKey"},
		},
		{
			name:     "instance_of",
			input:    "instance_of:reader",
			expected: Definition{Check: "instance_of", Type: "reader"},
		},
		{
			name:     "match keeps later colons",
			input:    "match:^[a-z]+:[0-9]+$",
			expected: Definition{Check: "match", Pattern: "^[a-z]+:[0-9]+$"},
		},
		{
			name:     "custom check name",
			input:    "even",
			expected: Definition{Check: "even"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := ParseDefinition(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, def)
		})
	}
}

func TestParseDefinition_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "empty check"},
		{"only colon", ":x", "empty check"},
		{"argument on plain check", "number:5", "takes no argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinition(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
