package jsdecode

import (
	"fmt"
	"strings"
	"unicode"
)

// ExtractVariable locates the first assignment to the given declaration
// pattern (e.g. "var jobs", "const data") in the script and returns its
// value.
//
// Matching is a literal search for "<pattern> = "; there is no scope
// awareness and the first occurrence wins. When the right-hand side is a
// JSON.parse call it is handled by [ExtractJSONParseArgument]; otherwise
// the statement text is captured with [ExtractStatement], trimmed and
// parsed as structured data with a control-character repair retry. A
// right-hand side that still cannot be parsed is returned as a raw value;
// once the pattern is found, parse failures never surface as errors.
//
// [ErrVariableNotFound] is returned when the assignment form is absent.
func ExtractVariable(script, pattern string) (Value, error) {
	needle := strings.TrimSpace(pattern) + " = "
	start := strings.Index(script, needle)
	if start < 0 {
		return Value{}, fmt.Errorf("%w: %q", ErrVariableNotFound, pattern)
	}

	remaining := script[start+len(needle):]

	if trimmed := strings.TrimLeftFunc(remaining, unicode.IsSpace); strings.HasPrefix(trimmed, jsonParsePrefix) {
		return ExtractJSONParseArgument(trimmed)
	}

	rhs := strings.TrimSpace(ExtractStatement(remaining))
	return coerce(rhs), nil
}
