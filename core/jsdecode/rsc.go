package jsdecode

import (
	"strings"

	"github.com/leofalp/htmlsift/internal/jsonutil"
)

// ExtractRSCPayloads finds every JSON object in the script that contains
// jsonKey as a top-level member. Server-component streaming frameworks push
// such objects as string arguments of script-level calls, so the payload
// may appear under either quoting convention: plain ("key":) or escaped
// (\"key\":) when nested inside an outer string.
//
// For each key occurrence the scan walks backward through plain brace pairs
// to the enclosing object's opening brace (the container is always a
// plain-brace object even when its strings use the escaped convention),
// then forward with [ScanBalanced] in the convention of the match. The
// balanced region is normalised, decoded and parsed; candidates that fail
// any step, or that no longer contain jsonKey after parsing, are skipped.
//
// All matches across both conventions are returned in match order without
// deduplication. The function never errors; no matches yields a nil slice.
func ExtractRSCPayloads(script, jsonKey string) []Value {
	patterns := []struct {
		needle string
		conv   QuoteConvention
	}{
		{`\"` + jsonKey + `\":`, QuoteEscaped},
		{`"` + jsonKey + `":`, QuoteLiteral},
	}

	var matches []Value
	for _, p := range patterns {
		from := 0
		for {
			rel := strings.Index(script[from:], p.needle)
			if rel < 0 {
				break
			}
			at := from + rel
			from = at + len(p.needle)

			open := enclosingBrace(script, at)
			if open < 0 {
				continue
			}
			region, ok := ScanBalanced(script[open:], p.conv)
			if !ok {
				continue
			}
			if p.conv == QuoteEscaped {
				region = strings.ReplaceAll(region, `\"`, `"`)
			}
			decoded, err := DecodeLiteral(region)
			if err != nil {
				continue
			}

			tree, ok := jsonutil.Decode(decoded)
			if !ok {
				tree, ok = jsonutil.Decode(jsonutil.RepairControlChars(decoded))
			}
			if !ok {
				continue
			}
			obj, isObject := tree.(map[string]any)
			if !isObject {
				continue
			}
			// Guard against decoding artifacts: the key must survive the
			// normalise/decode/parse pipeline.
			if _, has := obj[jsonKey]; !has {
				continue
			}
			matches = append(matches, Structured(tree))
		}
	}
	return matches
}

// enclosingBrace scans backward from pos through plain brace pairs and
// returns the index of the opening brace of the object containing pos, or
// -1 when there is none. Braces are always treated literally here,
// regardless of the forward quoting convention.
func enclosingBrace(script string, pos int) int {
	depth := 0
	for j := pos - 1; j >= 0; j-- {
		switch script[j] {
		case '}':
			depth++
		case '{':
			if depth == 0 {
				return j
			}
			depth--
		}
	}
	return -1
}
