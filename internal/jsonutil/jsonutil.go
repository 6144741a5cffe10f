// Package jsonutil provides lenient JSON decoding helpers shared by the
// extraction packages.
//
// Script text scraped from third-party pages is rarely valid JSON on the
// first try: multiline strings carry raw newlines, attributes are
// single-quoted, trailing commas abound. The helpers here form a ladder of
// increasingly aggressive recovery steps so callers can prefer partial
// results over hard failures.
package jsonutil

import (
	"encoding/json"
	"io"
	"strings"
	"unicode"

	"github.com/kaptinlin/jsonrepair"
)

// Decode parses text as a single strict JSON document.
//
// Numbers are decoded as [json.Number] so integer values survive a
// decode/re-encode round trip unchanged. Unlike [json.Unmarshal] via a bare
// any, trailing non-whitespace content after the document is rejected, so
// "true garbage" does not decode as true.
func Decode(text string) (any, bool) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return v, true
}

// RepairControlChars escapes raw control characters found inside the string
// spans of near-valid JSON so the result becomes parseable.
//
// String spans are tracked with a simple quote-toggle scan that honours
// backslash escape pairs. Inside a string, raw \n, \r and \t become their
// two-character escape sequences and any other unescaped control character
// is dropped. Control characters outside strings are left untouched.
//
// The function is idempotent: running it on its own output is a no-op,
// because the inserted backslashes shield the following letter from the
// control-character check.
func RepairControlChars(text string) string {
	var fixed strings.Builder
	fixed.Grow(len(text))

	inString := false
	escaped := false

	for _, c := range text {
		if escaped {
			fixed.WriteRune(c)
			escaped = false
			continue
		}

		if c == '\\' {
			fixed.WriteRune(c)
			escaped = true
			continue
		}

		if c == '"' {
			inString = !inString
			fixed.WriteRune(c)
			continue
		}

		if inString && unicode.IsControl(c) {
			switch c {
			case '\n':
				fixed.WriteString(`\n`)
			case '\r':
				fixed.WriteString(`\r`)
			case '\t':
				fixed.WriteString(`\t`)
			}
			// Other control characters are dropped.
			continue
		}

		fixed.WriteRune(c)
	}

	return fixed.String()
}

// Parse decodes near-valid JSON using the full recovery ladder: a strict
// parse first, then a parse after [RepairControlChars], and finally a parse
// after running the jsonrepair library over the text. The repaired document
// is returned as a decoded value tree; ok is false when every rung fails.
func Parse(text string) (any, bool) {
	if v, ok := Decode(text); ok {
		return v, true
	}
	if v, ok := Decode(RepairControlChars(text)); ok {
		return v, true
	}
	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return nil, false
	}
	return Decode(repaired)
}

// MarshalCompact renders a decoded value tree as compact JSON. Object keys
// come out in sorted order, matching encoding/json map behaviour. The empty
// string is returned when the value cannot be marshalled, which cannot
// happen for trees produced by [Decode] or [Parse].
func MarshalCompact(v any) string {
	out, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(out)
}
