// Package extract combines HTML selection with script decoding into a
// single entry point for pulling embedded JSON out of whole pages. It is
// the shared backend of the SQL binding and the CLI's --var mode: callers
// hand it raw HTML, a CSS selector and a pattern, and get back a JSON
// array string or a plain "no result".
package extract

import (
	"strings"

	"github.com/leofalp/htmlsift/core/htmlquery"
	"github.com/leofalp/htmlsift/core/jsdecode"
	"github.com/leofalp/htmlsift/internal/jsonutil"
)

// RSCPrefix marks a pattern that targets React Server Components payloads
// instead of a JavaScript variable. The JSON key to search for follows the
// colon, as in "@nextjs_rsc:productDisplay".
const RSCPrefix = "@nextjs_rsc:"

// JSON extracts embedded JSON from rawHTML and returns it serialised as a
// compact JSON array. The pattern decides the strategy:
//
//   - empty: the text of every element matching selector is parsed as a
//     JSON document (the application/ld+json path), and every document
//     that parses becomes an array element.
//   - "@nextjs_rsc:<key>": every <script> on the page is scanned for
//     streamed payload objects containing <key>, regardless of selector.
//   - anything else: the pattern names a JavaScript variable; the text of
//     the elements matching selector is searched for its assignment and
//     the decoded value becomes the array's single element.
//
// The boolean reports whether anything was extracted. JSON never panics
// and never returns an error: a page that yields nothing is a normal
// outcome, not a failure.
func JSON(rawHTML, selector, pattern string) (string, bool) {
	switch {
	case pattern == "":
		return jsonDocuments(rawHTML, selector)
	case strings.HasPrefix(pattern, RSCPrefix):
		return rscPayloads(rawHTML, strings.TrimPrefix(pattern, RSCPrefix))
	default:
		return jsVariable(rawHTML, selector, pattern)
	}
}

func jsonDocuments(rawHTML, selector string) (string, bool) {
	values, err := htmlquery.JSONBlocks(rawHTML, selector)
	if err != nil || len(values) == 0 {
		return "", false
	}
	return jsonutil.MarshalCompact(values), true
}

func rscPayloads(rawHTML, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	texts, err := htmlquery.SelectText(rawHTML, "script")
	if err != nil {
		return "", false
	}

	var trees []any
	for _, text := range texts {
		for _, v := range jsdecode.ExtractRSCPayloads(text, key) {
			trees = append(trees, v.Tree())
		}
	}
	if len(trees) == 0 {
		return "", false
	}
	return jsonutil.MarshalCompact(trees), true
}

func jsVariable(rawHTML, selector, pattern string) (string, bool) {
	text, err := htmlquery.Process(rawHTML, htmlquery.Config{
		Selector: selector,
		TextOnly: true,
	})
	if err != nil {
		return "", false
	}
	v, err := jsdecode.ExtractVariable(text, pattern)
	if err != nil {
		return "", false
	}
	return "[" + v.JSONString() + "]", true
}
