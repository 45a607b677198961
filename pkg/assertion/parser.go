package assertion

import (
	"fmt"
	"strings"

	"digital.vasic.failfast/pkg/failfast"
)

// ParseDefinition parses a compact check string of the form
// "check" or "check:arg". The argument fills Pattern for
// "match", Property for "has_property" and Type for
// "instance_of"; only the first colon separates, so patterns may
// contain colons.
//
// Examples:
//
//	"number"                -> {Check: "number"}
//	"has_property:myKey"    -> {Check: "has_property", Property: "myKey"}
//	"match:^[a-z0-9]{32}$"  -> {Check: "match", Pattern: "^[a-z0-9]{32}$"}
func ParseDefinition(s string) (Definition, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	def := Definition{Check: parts[0]}

	if def.Check == "" {
		return Definition{}, fmt.Errorf("empty check in %q", s)
	}
	if len(parts) == 1 {
		return def, nil
	}

	arg := parts[1]
	switch def.Check {
	case failfast.CheckMatch:
		def.Pattern = arg
	case failfast.CheckHasProperty:
		def.Property = arg
	case failfast.CheckInstanceOf:
		def.Type = arg
	default:
		return Definition{}, fmt.Errorf(
			"check %s takes no argument (got %q)", def.Check, arg,
		)
	}

	return def, nil
}
