package fdl

// Kind classifies a [Token] produced by the lexer.
type Kind int

const (
	// KindSectionStart is a section header: '[' name ']'.
	KindSectionStart Kind = iota

	// KindSectionEnd is the section end marker: '[/]'.
	KindSectionEnd

	// KindField is the text left of '=' on a field line.
	KindField

	// KindValue is the text right of '=' up to the line terminator.
	KindValue
)

// String returns a string representation of the token kind.
func (k Kind) String() string {
	switch k {
	case KindSectionStart:
		return "SectionStart"
	case KindSectionEnd:
		return "SectionEnd"
	case KindField:
		return "Field"
	case KindValue:
		return "Value"
	default:
		return "Unknown"
	}
}

// Token is the smallest classified unit of FDL source text.
//
// Tokens are immutable values emitted in strict source byte order.
// Text carries the payload for SectionStart, Field, and Value tokens;
// it is always empty for SectionEnd.
type Token struct {
	Kind Kind
	Text string
}
