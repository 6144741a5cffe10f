package htmlquery

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/leofalp/htmlsift/internal/jsonutil"
)

// JSONBlocks parses the text content of every element matching selector as
// JSON and returns the decoded value trees in document order. It is meant
// for <script type="application/ld+json"> blocks and similar embedded
// documents.
//
// Pages frequently serve these blocks with HTML entities baked into the
// values (&amp;, &#39;, ...), so string values of parsed documents are
// entity-decoded recursively. When a block does not parse at all, it is
// entity-decoded first and parsed again; blocks that still fail are
// dropped.
func JSONBlocks(rawHTML, selector string) ([]any, error) {
	texts, err := SelectText(rawHTML, selector)
	if err != nil {
		return nil, err
	}

	var values []any
	for _, text := range texts {
		if v, ok := parseAndDecode(text); ok {
			values = append(values, v)
		}
	}
	return values, nil
}

// parseAndDecode parses one script block, decoding HTML entities either in
// the parsed string values or, as a fallback, in the raw text before a
// second parse attempt.
func parseAndDecode(text string) (any, bool) {
	trimmed := strings.TrimSpace(text)

	if v, ok := jsonutil.Decode(trimmed); ok {
		return decodeEntities(v), true
	}
	if v, ok := jsonutil.Decode(jsonutil.RepairControlChars(trimmed)); ok {
		return decodeEntities(v), true
	}

	// The block itself may be entity-encoded; unescape before falling back
	// to the full repair ladder.
	unescaped := html.UnescapeString(trimmed)
	if v, ok := jsonutil.Decode(unescaped); ok {
		return v, true
	}
	// Repair salvages sloppy JSON but also happily quotes arbitrary script
	// code into a bare string, so only container results are accepted.
	if v, ok := jsonutil.Parse(unescaped); ok {
		switch v.(type) {
		case map[string]any, []any:
			return v, true
		}
	}
	return nil, false
}

// decodeEntities recursively decodes HTML entities in the string values of
// a decoded JSON tree. Keys are left untouched.
func decodeEntities(v any) any {
	switch val := v.(type) {
	case string:
		return html.UnescapeString(val)
	case []any:
		for i, item := range val {
			val[i] = decodeEntities(item)
		}
		return val
	case map[string]any:
		for k, item := range val {
			val[k] = decodeEntities(item)
		}
		return val
	default:
		return v
	}
}
