package jsdecode

// QuoteConvention selects how [ScanBalanced] recognises string boundaries.
//
// The same payload can appear either directly in script text or nested
// inside an outer JavaScript string, where every original " was escaped to
// \". Modelling both as one parameterized scanner keeps the two modes
// behaviourally symmetric.
type QuoteConvention int

const (
	// QuoteLiteral treats an unescaped " as the string delimiter. Inside a
	// string, a backslash and the character after it are skipped as a unit.
	QuoteLiteral QuoteConvention = iota

	// QuoteEscaped treats the two-character sequence \" as the string
	// delimiter. Inside a string, the sequence \\ is skipped as a unit; a
	// lone backslash is not special.
	QuoteEscaped
)

// ScanBalanced returns the shortest prefix of text that closes the opening
// brace or bracket at offset 0, honouring string boundaries under the given
// quoting convention. Braces and brackets share a single depth counter;
// matching closing punctuation of the wrong kind is not detected. ok is
// false when text does not start with { or [ or ends before balance is
// reached.
func ScanBalanced(text string, conv QuoteConvention) (string, bool) {
	if text == "" || (text[0] != '{' && text[0] != '[') {
		return "", false
	}

	depth := 0
	inString := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch conv {
		case QuoteLiteral:
			if inString {
				if c == '\\' {
					i++
				} else if c == '"' {
					inString = false
				}
				continue
			}
			if c == '"' {
				inString = true
				continue
			}
		case QuoteEscaped:
			if c == '\\' && i+1 < len(text) {
				if text[i+1] == '"' {
					inString = !inString
					i++
					continue
				}
				if inString && text[i+1] == '\\' {
					i++
					continue
				}
			}
			if inString {
				continue
			}
		}

		switch c {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return text[:i+1], true
			}
		}
	}

	return "", false
}
