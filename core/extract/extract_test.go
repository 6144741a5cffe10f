package extract

import (
	"strings"
	"testing"
)

func TestJSON_LDJSONBlocks(t *testing.T) {
	html := `<html><body>
<script type="application/ld+json">{"@type": "JobPosting", "title": "Engineer"}</script>
<script type="application/ld+json">{"@type": "Organization", "name": "Acme"}</script>
</body></html>`
	out, ok := JSON(html, `script[type="application/ld+json"]`, "")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	expected := `[{"@type":"JobPosting","title":"Engineer"},{"@type":"Organization","name":"Acme"}]`
	if out != expected {
		t.Errorf("Expected %s, got %s", expected, out)
	}
}

func TestJSON_LDJSONNoBlocks(t *testing.T) {
	html := `<html><body><p>no scripts here</p></body></html>`
	if out, ok := JSON(html, "script", ""); ok {
		t.Errorf("Expected no result, got %s", out)
	}
}

func TestJSON_Variable(t *testing.T) {
	html := `<html><body><script>var config = {"apiUrl": "https://api.example.com", "retries": 3};</script></body></html>`
	out, ok := JSON(html, "script", "config")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	expected := `[{"apiUrl":"https://api.example.com","retries":3}]`
	if out != expected {
		t.Errorf("Expected %s, got %s", expected, out)
	}
}

func TestJSON_VariableFromJSONParse(t *testing.T) {
	html := `<html><body><script>window.__DATA__ = JSON.parse('{"id": 42}');</script></body></html>`
	out, ok := JSON(html, "script", "window.__DATA__")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if out != `[{"id":42}]` {
		t.Errorf("Expected [{\"id\":42}], got %s", out)
	}
}

func TestJSON_VariableNotFound(t *testing.T) {
	html := `<html><body><script>var other = 1;</script></body></html>`
	if out, ok := JSON(html, "script", "config"); ok {
		t.Errorf("Expected no result, got %s", out)
	}
}

func TestJSON_VariableRawFallback(t *testing.T) {
	html := `<html><body><script>var config = someFunction();</script></body></html>`
	out, ok := JSON(html, "script", "config")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if out != `["someFunction()"]` {
		t.Errorf("Expected raw string element, got %s", out)
	}
}

func TestJSON_RSCPayloads(t *testing.T) {
	html := `<html><body>
<div>page content</div>
<script>self.__next_f.push([1,"{\"productDisplay\":{\"id\":\"123\",\"name\":\"Widget\"}}"])</script>
</body></html>`
	out, ok := JSON(html, "div", "@nextjs_rsc:productDisplay")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if !strings.Contains(out, `"productDisplay"`) || !strings.Contains(out, `"Widget"`) {
		t.Errorf("Expected payload in output, got %s", out)
	}
	if !strings.HasPrefix(out, "[") || !strings.HasSuffix(out, "]") {
		t.Errorf("Expected JSON array, got %s", out)
	}
}

func TestJSON_RSCNoKey(t *testing.T) {
	html := `<html><body><script>var x = 1;</script></body></html>`
	if out, ok := JSON(html, "script", "@nextjs_rsc:"); ok {
		t.Errorf("Expected no result for empty key, got %s", out)
	}
}

func TestJSON_RSCKeyAbsent(t *testing.T) {
	html := `<html><body><script>self.__next_f.push([1,"{\"other\":1}"])</script></body></html>`
	if out, ok := JSON(html, "script", "@nextjs_rsc:productDisplay"); ok {
		t.Errorf("Expected no result, got %s", out)
	}
}

func TestJSON_InvalidSelector(t *testing.T) {
	html := `<html><body><script>var config = 1;</script></body></html>`
	if out, ok := JSON(html, "script[bad", "config"); ok {
		t.Errorf("Expected no result for invalid selector, got %s", out)
	}
}
