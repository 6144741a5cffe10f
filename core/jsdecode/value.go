package jsdecode

import (
	"encoding/json"
	"errors"

	"github.com/leofalp/htmlsift/internal/jsonutil"
)

// Sentinel errors returned by the extraction functions. They are wrapped
// with positional context, so match them with [errors.Is].
var (
	// ErrMalformedEscape reports an incomplete or invalid \x or \u escape
	// sequence in a string-literal body.
	ErrMalformedEscape = errors.New("htmlsift: malformed escape sequence")

	// ErrVariableNotFound reports that a variable assignment pattern does
	// not occur in the script.
	ErrVariableNotFound = errors.New("htmlsift: variable pattern not found")

	// ErrUnsupportedLiteral reports a JSON.parse call whose argument is not
	// a single- or double-quoted string literal.
	ErrUnsupportedLiteral = errors.New("htmlsift: unsupported JSON.parse literal")
)

// Value is the result of an extraction: either a structured JSON-compatible
// value tree or raw text that could not be parsed as one. The zero Value is
// raw empty text.
type Value struct {
	tree       any
	raw        string
	structured bool
}

// Structured wraps a decoded JSON value tree (nil, bool, json.Number,
// string, []any or map[string]any) in a Value.
func Structured(tree any) Value {
	return Value{tree: tree, structured: true}
}

// Raw wraps verbatim text that could not be parsed as structured data.
func Raw(text string) Value {
	return Value{raw: text}
}

// IsStructured reports whether the value holds a parsed tree rather than
// raw text.
func (v Value) IsStructured() bool {
	return v.structured
}

// Tree returns the decoded value tree, or nil for raw values.
func (v Value) Tree() any {
	return v.tree
}

// RawText returns the verbatim text of a raw value, or "" for structured
// values.
func (v Value) RawText() string {
	return v.raw
}

// JSONString renders the value as compact JSON. Structured values are
// marshalled directly; raw values are marshalled as a JSON string so the
// result is always a valid JSON document.
func (v Value) JSONString() string {
	if v.structured {
		if out := jsonutil.MarshalCompact(v.tree); out != "" {
			return out
		}
		return "null"
	}
	out, err := json.Marshal(v.raw)
	if err != nil {
		return `""`
	}
	return string(out)
}

// coerce attempts a strict structured parse of text, then a parse after
// control-character repair, and falls back to a raw value when both fail.
func coerce(text string) Value {
	if tree, ok := jsonutil.Decode(text); ok {
		return Structured(tree)
	}
	if tree, ok := jsonutil.Decode(jsonutil.RepairControlChars(text)); ok {
		return Structured(tree)
	}
	return Raw(text)
}
