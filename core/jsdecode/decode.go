package jsdecode

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

// DecodeLiteral decodes the body of a JavaScript string literal (the
// characters between, but not including, the quotes) into plain text.
//
// Handled escapes, scanned left to right:
//   - \xHH   two hex digits, emitted as the corresponding Latin-1 character
//   - \uHHHH four hex digits, emitted as the corresponding code point
//   - \\uHHHH a double-escaped unicode escape, decoded like \uHHHH; a \\
//     not followed by u collapses to a single backslash
//   - \n \r \t \" \' \b \f \v \0 standard single-character escapes
//   - \- and \/ lenient passthroughs not valid in strict JSON
//
// Any other \X emits X literally: pages routinely contain backslashes that
// are formatting artifacts rather than real escapes, and dropping them
// recovers more data than rejecting them would. A lone trailing backslash
// is emitted as-is. The only failures are truncated \x or \u sequences,
// non-hex digits, and invalid code points, all reported as
// [ErrMalformedEscape].
func DecodeLiteral(body string) (string, error) {
	runes := []rune(body)
	var out strings.Builder
	out.Grow(len(body))

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '\\' {
			out.WriteRune(c)
			continue
		}
		if i+1 >= len(runes) {
			out.WriteRune('\\')
			break
		}

		switch next := runes[i+1]; next {
		case 'x':
			cp, err := hexEscape(runes, i+2, 2)
			if err != nil {
				return "", err
			}
			out.WriteRune(cp) // Latin-1 byte as a character
			i += 3
		case 'u':
			cp, err := unicodeEscape(runes, i+2)
			if err != nil {
				return "", err
			}
			out.WriteRune(cp)
			i += 5
		case '\\':
			if i+2 < len(runes) && runes[i+2] == 'u' {
				cp, err := unicodeEscape(runes, i+3)
				if err != nil {
					return "", err
				}
				out.WriteRune(cp)
				i += 6
			} else {
				out.WriteRune('\\')
				i++
			}
		case 'n':
			out.WriteRune('\n')
			i++
		case 'r':
			out.WriteRune('\r')
			i++
		case 't':
			out.WriteRune('\t')
			i++
		case '"':
			out.WriteRune('"')
			i++
		case '\'':
			out.WriteRune('\'')
			i++
		case 'b':
			out.WriteRune('\b')
			i++
		case 'f':
			out.WriteRune('\f')
			i++
		case 'v':
			out.WriteRune('\v')
			i++
		case '0':
			out.WriteRune(0)
			i++
		case '-':
			out.WriteRune('-')
			i++
		case '/':
			out.WriteRune('/')
			i++
		default:
			// Unknown escape: emit the character, drop the backslash.
			out.WriteRune(next)
			i++
		}
	}

	return out.String(), nil
}

// hexEscape reads width hex digits starting at runes[start] and returns the
// encoded value as a rune.
func hexEscape(runes []rune, start, width int) (rune, error) {
	if start+width > len(runes) {
		return 0, fmt.Errorf("%w: incomplete hex escape %q", ErrMalformedEscape, string(runes[start-2:]))
	}
	digits := string(runes[start : start+width])
	cp, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid hex digits %q", ErrMalformedEscape, digits)
	}
	return rune(cp), nil
}

// unicodeEscape reads the four hex digits of a \u escape starting at
// runes[start] and validates that they encode a Unicode scalar value.
func unicodeEscape(runes []rune, start int) (rune, error) {
	cp, err := hexEscape(runes, start, 4)
	if err != nil {
		return 0, err
	}
	if utf16.IsSurrogate(cp) || cp > unicode.MaxRune {
		return 0, fmt.Errorf("%w: invalid code point \\u%04x", ErrMalformedEscape, cp)
	}
	return cp, nil
}
