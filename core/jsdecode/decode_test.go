package jsdecode

import (
	"errors"
	"testing"
)

func TestDecodeLiteral_Identity(t *testing.T) {
	// Strings without backslashes decode to themselves.
	inputs := []string{
		"",
		"plain text",
		`{"already": "decoded"}`,
		"accented: Café – naïve",
		"tabs\tand\nnewlines survive",
	}
	for _, input := range inputs {
		got, err := DecodeLiteral(input)
		if err != nil {
			t.Fatalf("DecodeLiteral(%q) failed: %v", input, err)
		}
		if got != input {
			t.Errorf("DecodeLiteral(%q) = %q, want identity", input, got)
		}
	}
}

func TestDecodeLiteral_HexEscapes(t *testing.T) {
	input := `[\x22Salary\x22:\x2250000$\x22]`
	expected := `["Salary":"50000$"]`
	got, err := DecodeLiteral(input)
	if err != nil {
		t.Fatalf("DecodeLiteral failed: %v", err)
	}
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestDecodeLiteral_UnicodeEscapes(t *testing.T) {
	got, err := DecodeLiteral(`Title\u2013Profil`)
	if err != nil {
		t.Fatalf("DecodeLiteral failed: %v", err)
	}
	if got != "Title–Profil" {
		t.Errorf("Expected en-dash decoding, got %q", got)
	}
}

func TestDecodeLiteral_DoubleUnicodeEscapes(t *testing.T) {
	got, err := DecodeLiteral(`Title\\u2013Profil`)
	if err != nil {
		t.Fatalf("DecodeLiteral failed: %v", err)
	}
	if got != "Title–Profil" {
		t.Errorf("Expected double-escaped en-dash decoding, got %q", got)
	}
}

func TestDecodeLiteral_LenientEscapes(t *testing.T) {
	got, err := DecodeLiteral(`50000$\-80000$`)
	if err != nil {
		t.Fatalf("DecodeLiteral failed: %v", err)
	}
	if got != "50000$-80000$" {
		t.Errorf("Expected lenient \\- handling, got %q", got)
	}
}

func TestDecodeLiteral_Combined(t *testing.T) {
	input := `[\x22Salary\x22:\x2250000$ \- 80000$\x22,\x22Langue\x22:[\x22Français\x22]]`
	expected := `["Salary":"50000$ - 80000$","Langue":["Français"]]`
	got, err := DecodeLiteral(input)
	if err != nil {
		t.Fatalf("DecodeLiteral failed: %v", err)
	}
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestDecodeLiteral_SingleCharEscapes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`a\nb`, "a\nb"},
		{`a\rb`, "a\rb"},
		{`a\tb`, "a\tb"},
		{`a\"b`, `a"b`},
		{`a\'b`, "a'b"},
		{`a\bb`, "a\bb"},
		{`a\fb`, "a\fb"},
		{`a\vb`, "a\vb"},
		{`a\0b`, "a\x00b"},
		{`a\/b`, "a/b"},
		{`a\qb`, "aqb"},      // unknown escape passes the letter through
		{`a\\b`, `a\b`},      // bare double backslash collapses
		{`trailing\`, `trailing\`}, // lone trailing backslash is kept
	}
	for _, tt := range tests {
		got, err := DecodeLiteral(tt.input)
		if err != nil {
			t.Fatalf("DecodeLiteral(%q) failed: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("DecodeLiteral(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDecodeLiteral_MalformedEscapes(t *testing.T) {
	inputs := []string{
		`\x2`,     // one hex digit
		`\x`,      // no hex digits
		`\xZZ`,    // non-hex digits
		`\u123`,   // three hex digits
		`\uWXYZ`,  // non-hex digits
		`\\u12`,   // truncated double-escaped form
		`\ud834x`, // surrogate code point
	}
	for _, input := range inputs {
		if _, err := DecodeLiteral(input); !errors.Is(err, ErrMalformedEscape) {
			t.Errorf("DecodeLiteral(%q): expected ErrMalformedEscape, got %v", input, err)
		}
	}
}

func TestDecodeLiteral_HexIsLatin1(t *testing.T) {
	got, err := DecodeLiteral(`Caf\xe9`)
	if err != nil {
		t.Fatalf("DecodeLiteral failed: %v", err)
	}
	if got != "Café" {
		t.Errorf("Expected Latin-1 byte to decode as é, got %q", got)
	}
}
