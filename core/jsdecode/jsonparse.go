package jsdecode

import (
	"fmt"
	"strings"
)

// jsonParsePrefix introduces the one call form the extractor understands.
const jsonParsePrefix = "JSON.parse("

// ExtractJSONParseArgument extracts and decodes the string argument of a
// JSON.parse call. The input must start with the literal prefix
// "JSON.parse(" and the argument must be a '...' or "..." literal;
// anything else fails with [ErrUnsupportedLiteral].
//
// The argument body is decoded with [DecodeLiteral] and then parsed as
// structured data, with a control-character repair retry. Text that still
// will not parse is returned as a raw value rather than an error.
//
// A missing closing quote is tolerated: the scan simply stops at end of
// input and everything scanned is treated as the argument.
func ExtractJSONParseArgument(text string) (Value, error) {
	rest, ok := strings.CutPrefix(text, jsonParsePrefix)
	if !ok {
		return Value{}, fmt.Errorf("%w: expected %q prefix", ErrUnsupportedLiteral, jsonParsePrefix)
	}
	if rest == "" {
		return Value{}, fmt.Errorf("%w: missing argument after %q", ErrUnsupportedLiteral, jsonParsePrefix)
	}

	quote := rest[0]
	if quote != '\'' && quote != '"' {
		return Value{}, fmt.Errorf("%w: expected ' or \" after %q, got %q", ErrUnsupportedLiteral, jsonParsePrefix, rune(quote))
	}

	content := rest[1:]
	end := len(content)
	escaped := false
	for i := 0; i < len(content); i++ {
		c := content[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == quote {
			end = i
			break
		}
	}

	decoded, err := DecodeLiteral(content[:end])
	if err != nil {
		return Value{}, err
	}
	return coerce(decoded), nil
}
