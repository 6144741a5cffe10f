package jsdecode

import (
	"strings"
	"unicode"
)

// ExtractStatement returns the right-hand-side expression of an assignment,
// given text that begins immediately after the assignment operator.
//
// The scan stops at the first semicolon found outside strings at zero
// brace/bracket depth (the semicolon is excluded), or at a newline under
// the same conditions unless the next non-whitespace character is one of
// . , + - * /, in which case the expression continues on the next line.
// End of input always terminates the statement, so the function is total.
//
// String literals may use either quote character; braces, brackets and
// terminators inside them are ignored. A backslash makes the following
// character literal wherever it appears.
func ExtractStatement(text string) string {
	runes := []rune(text)
	var out strings.Builder

	inString := false
	var quote rune
	escaped := false
	braceDepth := 0
	bracketDepth := 0

scan:
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if escaped {
			out.WriteRune(c)
			escaped = false
			continue
		}
		if c == '\\' {
			out.WriteRune(c)
			escaped = true
			continue
		}

		if inString {
			out.WriteRune(c)
			if c == quote {
				inString = false
			}
			continue
		}

		if c == '"' || c == '\'' {
			inString = true
			quote = c
			out.WriteRune(c)
			continue
		}

		switch c {
		case '{':
			braceDepth++
		case '}':
			braceDepth--
		case '[':
			bracketDepth++
		case ']':
			bracketDepth--
		case ';':
			if braceDepth == 0 && bracketDepth == 0 {
				break scan
			}
		case '\n':
			if braceDepth == 0 && bracketDepth == 0 && !continuesExpression(runes[i+1:]) {
				break scan
			}
		}

		out.WriteRune(c)
	}

	return out.String()
}

// continuesExpression reports whether the text after a top-level newline
// starts with an operator that carries the expression onto the next line.
func continuesExpression(rest []rune) bool {
	for _, c := range rest {
		if unicode.IsSpace(c) {
			continue
		}
		switch c {
		case '.', ',', '+', '-', '*', '/':
			return true
		}
		return false
	}
	return false
}
