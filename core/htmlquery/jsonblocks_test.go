package htmlquery

import (
	"strings"
	"testing"
)

func TestJSONBlocks_SingleBlock(t *testing.T) {
	html := `<html><body><script type="application/ld+json">{"@type": "JobPosting", "title": "Engineer"}</script></body></html>`
	values, err := JSONBlocks(html, `script[type="application/ld+json"]`)
	if err != nil {
		t.Fatalf("JSONBlocks failed: %v", err)
	}
	if len(values) != 1 {
		t.Fatalf("Expected 1 value, got %d", len(values))
	}
	obj, ok := values[0].(map[string]any)
	if !ok {
		t.Fatalf("Expected object, got %T", values[0])
	}
	if obj["title"] != "Engineer" {
		t.Errorf("Expected title Engineer, got %v", obj["title"])
	}
}

func TestJSONBlocks_DecodesEntitiesInValues(t *testing.T) {
	html := `<html><body><script type="application/ld+json">{"company": "Fish &amp; Chips Ltd", "note": "it&#39;s fine"}</script></body></html>`
	values, err := JSONBlocks(html, "script")
	if err != nil {
		t.Fatalf("JSONBlocks failed: %v", err)
	}
	if len(values) != 1 {
		t.Fatalf("Expected 1 value, got %d", len(values))
	}
	obj := values[0].(map[string]any)
	if obj["company"] != "Fish & Chips Ltd" {
		t.Errorf("Expected decoded ampersand, got %v", obj["company"])
	}
	if obj["note"] != "it's fine" {
		t.Errorf("Expected decoded apostrophe, got %v", obj["note"])
	}
}

func TestJSONBlocks_DecodesEntitiesBeforeParsing(t *testing.T) {
	// Entities encoded into the JSON syntax itself, not just the values.
	html := `<html><body><script>{&quot;title&quot;: &quot;Engineer&quot;}</script></body></html>`
	values, err := JSONBlocks(html, "script")
	if err != nil {
		t.Fatalf("JSONBlocks failed: %v", err)
	}
	if len(values) != 1 {
		t.Fatalf("Expected 1 value, got %d", len(values))
	}
	obj := values[0].(map[string]any)
	if obj["title"] != "Engineer" {
		t.Errorf("Expected title Engineer, got %v", obj["title"])
	}
}

func TestJSONBlocks_NestedEntities(t *testing.T) {
	html := `<html><body><script>{"jobs": [{"name": "R&amp;D Lead"}]}</script></body></html>`
	values, err := JSONBlocks(html, "script")
	if err != nil {
		t.Fatalf("JSONBlocks failed: %v", err)
	}
	jobs := values[0].(map[string]any)["jobs"].([]any)
	name := jobs[0].(map[string]any)["name"]
	if name != "R&D Lead" {
		t.Errorf("Expected decoded nested value, got %v", name)
	}
}

func TestJSONBlocks_DropsUnparseableBlocks(t *testing.T) {
	html := `<html><body><script>var x = 1;</script><script>{"ok": true}</script></body></html>`
	values, err := JSONBlocks(html, "script")
	if err != nil {
		t.Fatalf("JSONBlocks failed: %v", err)
	}
	if len(values) != 1 {
		t.Fatalf("Expected only the parseable block, got %d values", len(values))
	}
	if values[0].(map[string]any)["ok"] != true {
		t.Errorf("Unexpected value: %#v", values[0])
	}
}

func TestMarkdown_ConvertsFragments(t *testing.T) {
	html := `<html><body><article><h1>Title</h1><p>Some <strong>bold</strong> text.</p></article></body></html>`
	results, err := Markdown(html, "article")
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	md := results[0]
	for _, want := range []string{"# Title", "**bold**"} {
		if !strings.Contains(md, want) {
			t.Errorf("Expected markdown to contain %q, got %q", want, md)
		}
	}
}
