// Package jsdecode extracts structured values from JavaScript-ish script
// text copied out of rendered pages.
//
// The input is whatever an HTML selection layer found inside <script>
// elements: often not valid JSON, not even valid JavaScript, just close
// enough to both that a tolerant scanner can recover the embedded data.
// The package therefore implements small hand-written state machines
// instead of a grammar: a string-literal escape decoder ([DecodeLiteral]),
// a statement-boundary scanner ([ExtractStatement]), a balanced brace/
// bracket scanner with two quoting conventions ([ScanBalanced]), and the
// extractors built on top of them ([ExtractVariable],
// [ExtractJSONParseArgument], [ExtractRSCPayloads]).
//
// Every function is pure and operates on immutable input, so concurrent use
// from any number of goroutines needs no coordination. Extraction degrades
// rather than fails: when a candidate cannot be parsed as structured data
// the extractors fall back to raw text or skip the candidate, because
// callers scraping heterogeneous pages prefer partial results over errors.
package jsdecode
