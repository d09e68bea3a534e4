// Package fdl parses the frame definition language (FDL), a line-oriented
// text format of named sections containing ordered key/value fields.
//
// # Grammar
//
// Informal EBNF:
//
//	Syntax     → Section+
//	Section    → Header Field* EndSection
//	Header     → '[' Text ']' EOL
//	EndSection → '[/]' EOL
//	Field      → Text '=' Text EOL
//	Text       → byte sequence, conceptually letters, digits, and symbols
//	EOL        → '\n'
//
// # Example
//
//	[flap]
//	frames = 1
//	sprite = bird.png
//	[/]
//
// # Pipeline
//
// Bytes flow one way: [Reader] (buffered look-ahead cursor) feeds the
// [Lexer], which produces a flat [Token] sequence; [Parse] folds tokens into
// an ordered section tree owned by [Document]. No stage holds a reference
// back to an earlier one.
//
// The lexer is strict: the first byte that matches no construct aborts the
// whole tokenization with the byte offset attached, and no partial result is
// produced. The tree builder is deliberately lenient: structurally orphaned
// tokens (a stray end marker, a field with no value) are dropped silently.
// Do not tighten one or loosen the other; consumers depend on the asymmetry.
//
// Names and values are captured verbatim. There is no quoting, no escaping,
// and no whitespace trimming: the field line "  a  =  b  " yields the name
// "  a  " and the value "  b  ". Only '[', ']', '=', and '\n' are structural;
// every other byte (including '\r') is ordinary text, even though the grammar
// above nominally restricts Text to a fixed character set.
//
// A [Document] is immutable once constructed and safe for concurrent
// readers. Lookup is first-match on both levels: [Document.Fetch] resolves
// (section, field) against the first section with that name and the first
// field within it.
package fdl
