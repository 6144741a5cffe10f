// Package htmlsift extracts structured data from HTML pages: CSS-selector
// queries over the markup, and decoding of the JSON that pages embed in
// their script tags as JavaScript literals, JSON.parse calls, LD+JSON
// documents or React Server Components payloads.
//
// This file re-exports the most common entry points; the full APIs live
// in core/htmlquery, core/jsdecode and core/extract, and the SQL binding
// in bindings/sqlitefn.
package htmlsift

import (
	"github.com/leofalp/htmlsift/core/extract"
	"github.com/leofalp/htmlsift/core/htmlquery"
	"github.com/leofalp/htmlsift/core/jsdecode"
)

// Value is the result of a script extraction: a parsed JSON tree or the
// raw text when parsing was not possible.
type Value = jsdecode.Value

// Select returns the outer HTML of every element matching selector.
func Select(rawHTML, selector string) ([]string, error) {
	return htmlquery.Select(rawHTML, selector)
}

// SelectText returns the text content of every element matching selector.
func SelectText(rawHTML, selector string) ([]string, error) {
	return htmlquery.SelectText(rawHTML, selector)
}

// ExtractVariable finds a JavaScript variable assignment in script text
// and decodes its value.
func ExtractVariable(script, pattern string) (Value, error) {
	return jsdecode.ExtractVariable(script, pattern)
}

// ExtractJSON extracts embedded JSON from a whole page as a compact JSON
// array string; see [extract.JSON] for the pattern forms.
func ExtractJSON(rawHTML, selector, pattern string) (string, bool) {
	return extract.JSON(rawHTML, selector, pattern)
}
