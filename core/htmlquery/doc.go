// Package htmlquery selects fragments of HTML documents with CSS selectors
// and extracts their markup, text, or attribute values.
//
// It is the selection layer in front of the script decoders: callers use it
// to isolate candidate <script> text (or any other element) before handing
// the content to jsdecode or the JSON helpers. Selection is delegated to
// goquery/cascadia; this package adds the extraction modes ([Mode]), the
// processing pipeline used by the CLI and SQL bindings ([Process]),
// HTML-entity-aware JSON block extraction ([JSONBlocks]) and Markdown
// rendering of matches ([Markdown]).
package htmlquery
