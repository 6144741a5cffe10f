package htmlquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/leofalp/htmlsift/internal/jsonutil"
)

// DefaultSelector matches the document root when no selector is given.
const DefaultSelector = ":root"

// Config drives [Process]. The zero value selects the whole document as
// outer HTML.
type Config struct {
	// Selector is the CSS selector to match; empty means [DefaultSelector].
	Selector string

	// TextOnly emits text content instead of markup.
	TextOnly bool

	// IgnoreWhitespace skips whitespace-only text nodes in text output and
	// separates the remaining ones with newlines.
	IgnoreWhitespace bool

	// Compact re-serialises JSON output compactly, repairing raw control
	// characters inside strings when needed. Non-JSON output is returned
	// unchanged.
	Compact bool

	// RemoveNodes lists selectors whose matches are detached from every
	// selected element before serialisation.
	RemoveNodes []string

	// Attributes, when non-empty, emits the values of these attributes
	// (one per line) instead of markup or text.
	Attributes []string
}

// parse builds a goquery document from raw HTML.
func parse(rawHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("htmlsift: parse html: %w", err)
	}
	return doc, nil
}

// compile turns a CSS selector into a matcher, reporting invalid selectors
// as errors instead of panicking like Selection.Find does.
func compile(selector string) (cascadia.Selector, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("htmlsift: invalid CSS selector %q: %w", selector, err)
	}
	return m, nil
}

// Select returns the outer HTML of every element matching selector, in
// document order.
func Select(rawHTML, selector string) ([]string, error) {
	return Extract(rawHTML, selector, Mode{Kind: ModeHTML})
}

// SelectText returns the trimmed text content of every element matching
// selector, in document order. Elements with no text are omitted.
func SelectText(rawHTML, selector string) ([]string, error) {
	return Extract(rawHTML, selector, Mode{Kind: ModeText})
}

// Extract returns one string per element matching selector, produced
// according to mode. Empty results are omitted, so a missing attribute
// simply contributes nothing.
func Extract(rawHTML, selector string, mode Mode) ([]string, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	matcher, err := compile(selector)
	if err != nil {
		return nil, err
	}

	var results []string
	doc.FindMatcher(matcher).Each(func(_ int, sel *goquery.Selection) {
		content := extractOne(sel, mode)
		if content != "" {
			results = append(results, content)
		}
	})
	return results, nil
}

// extractOne renders a single selection under the given mode.
func extractOne(sel *goquery.Selection, mode Mode) string {
	switch mode.Kind {
	case ModeText:
		return strings.TrimSpace(serializeText(sel, false))
	case ModeAttribute:
		val, _ := sel.Attr(mode.Attribute)
		return val
	case ModeMultiAttribute:
		obj := make(map[string]any, len(mode.Attributes))
		for _, attr := range mode.Attributes {
			if attr == textMarker {
				obj["text"] = strings.TrimSpace(serializeText(sel, false))
				continue
			}
			val, _ := sel.Attr(attr)
			obj[attr] = val
		}
		return jsonutil.MarshalCompact(obj)
	default:
		return outerHTML(sel)
	}
}

// Process runs the full selection pipeline: match cfg.Selector, detach
// cfg.RemoveNodes from each match, then serialise every match as attribute
// lines, text, or outer HTML, one per line. With cfg.Compact the combined
// output is re-serialised as compact JSON when it parses (after
// control-character repair if needed); otherwise it is returned as-is,
// since the output may simply be HTML.
func Process(rawHTML string, cfg Config) (string, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return "", err
	}
	matcher, err := compile(cfg.Selector)
	if err != nil {
		return "", err
	}

	var removeMatcher cascadia.Selector
	if len(cfg.RemoveNodes) > 0 {
		removeMatcher, err = compile(strings.Join(cfg.RemoveNodes, ","))
		if err != nil {
			return "", err
		}
	}

	var out strings.Builder
	doc.FindMatcher(matcher).Each(func(_ int, sel *goquery.Selection) {
		if removeMatcher != nil {
			sel.FindMatcher(removeMatcher).Remove()
		}

		if len(cfg.Attributes) > 0 {
			for _, attr := range cfg.Attributes {
				if val, ok := sel.Attr(attr); ok {
					out.WriteString(val)
					out.WriteByte('\n')
				}
			}
			return
		}

		if cfg.TextOnly {
			out.WriteString(serializeText(sel, cfg.IgnoreWhitespace))
			out.WriteByte('\n')
			return
		}

		out.WriteString(outerHTML(sel))
		out.WriteByte('\n')
	})

	result := out.String()
	if cfg.Compact {
		trimmed := strings.TrimSpace(result)
		if v, ok := jsonutil.Decode(trimmed); ok {
			return jsonutil.MarshalCompact(v), nil
		}
		if v, ok := jsonutil.Decode(jsonutil.RepairControlChars(trimmed)); ok {
			return jsonutil.MarshalCompact(v), nil
		}
	}
	return result, nil
}

// outerHTML renders the full markup of a selection, including the element
// itself.
func outerHTML(sel *goquery.Selection) string {
	out, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	return out
}

// serializeText collects the text nodes under a selection. With
// ignoreWhitespace, whitespace-only nodes are skipped and the remaining
// ones are newline-separated.
func serializeText(sel *goquery.Selection, ignoreWhitespace bool) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if ignoreWhitespace && strings.TrimSpace(n.Data) == "" {
				return
			}
			b.WriteString(n.Data)
			if ignoreWhitespace {
				b.WriteByte('\n')
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return b.String()
}
