package htmlquery

import "strings"

// textMarker is the normalised list entry that selects text content in
// multi-attribute mode.
const textMarker = "@text"

// ModeKind enumerates what [Extract] pulls out of each matched element.
type ModeKind int

const (
	// ModeHTML extracts the full outer HTML of the element.
	ModeHTML ModeKind = iota
	// ModeText extracts the trimmed text content.
	ModeText
	// ModeAttribute extracts a single attribute value.
	ModeAttribute
	// ModeMultiAttribute extracts several attributes as a JSON object.
	ModeMultiAttribute
)

// Mode describes an extraction mode parsed from the caller's attribute
// specification.
type Mode struct {
	Kind ModeKind

	// Attribute is the attribute name for ModeAttribute.
	Attribute string

	// Attributes holds the normalised names for ModeMultiAttribute; the
	// entry "@text" selects text content.
	Attributes []string
}

// ModeFromAttr parses a single extraction specifier.
//
//	""              -> full HTML
//	"@text", "text" -> text content
//	"@href"         -> href attribute
//	"href"          -> href attribute
func ModeFromAttr(attr string) Mode {
	switch {
	case attr == "":
		return Mode{Kind: ModeHTML}
	case attr == "@text" || attr == "text":
		return Mode{Kind: ModeText}
	case strings.HasPrefix(attr, "@"):
		return Mode{Kind: ModeAttribute, Attribute: attr[1:]}
	default:
		return Mode{Kind: ModeAttribute, Attribute: attr}
	}
}

// ModeFromAttrList parses a list of extraction specifiers. An empty list
// selects full HTML and a single entry behaves like [ModeFromAttr];
// multiple entries select multi-attribute extraction, where each match
// becomes a JSON object keyed by attribute name (with "text" for the
// "@text" entry).
func ModeFromAttrList(attrs []string) Mode {
	switch len(attrs) {
	case 0:
		return Mode{Kind: ModeHTML}
	case 1:
		return ModeFromAttr(attrs[0])
	default:
		normalized := make([]string, 0, len(attrs))
		for _, attr := range attrs {
			switch {
			case attr == "@text" || attr == "text":
				normalized = append(normalized, textMarker)
			case strings.HasPrefix(attr, "@"):
				normalized = append(normalized, attr[1:])
			default:
				normalized = append(normalized, attr)
			}
		}
		return Mode{Kind: ModeMultiAttribute, Attributes: normalized}
	}
}
