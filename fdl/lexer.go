package fdl

// Structural bytes of the grammar. Everything else is ordinary text.
const (
	newline      = '\n'
	bracketOpen  = '['
	bracketClose = ']'
	slash        = '/'
	equals       = '='
)

// Lexer turns the byte stream into a flat [Token] sequence.
// It is stateless beyond the Reader's position.
type Lexer struct {
	r *Reader
}

// NewLexer creates a Lexer that consumes the given Reader.
func NewLexer(r *Reader) *Lexer {
	return &Lexer{r: r}
}

// Lex tokenizes the entire input.
//
// Each step tries, in fixed priority order: a structural newline (skipped),
// a section header or end marker, a value, then a field name. The first
// byte that matches none of those aborts the whole lex with
// [ErrUnexpectedChar] carrying the byte offset; no partial token list is
// ever returned.
func (l *Lexer) Lex() ([]Token, error) {
	var tokens []Token

	for !l.r.EOF() {
		if l.newline() {
			continue
		}

		if tok, ok := l.section(); ok {
			tokens = append(tokens, tok)

			continue
		}

		if tok, ok := l.value(); ok {
			tokens = append(tokens, tok)

			continue
		}

		if tok, ok := l.field(); ok {
			tokens = append(tokens, tok)

			continue
		}

		return nil, ErrUnexpectedChar.WithOffset(l.r.Cursor())
	}

	return tokens, nil
}

// newline consumes a structural line terminator.
// Blank lines between constructs are insignificant.
func (l *Lexer) newline() bool {
	return l.r.ConsumeIf(newline)
}

// section recognizes '[' text ']' on a single line. A payload of exactly
// "/" is the end marker; any other payload, including the empty string,
// starts a section.
func (l *Lexer) section() (Token, bool) {
	b, ok := l.r.Peek()
	if !ok || b != bracketOpen {
		return Token{}, false
	}

	l.r.Consume()

	seq, err := l.r.ConsumeUntilLineOr(bracketClose)
	if err != nil {
		// Unterminated header: decline and let the catch-all report it.
		return Token{}, false
	}

	l.r.Consume() // closing ']'

	if len(seq) == 1 && seq[0] == slash {
		return Token{Kind: KindSectionEnd}, true
	}

	return Token{Kind: KindSectionStart, Text: string(seq)}, true
}

// value recognizes '=' followed by everything up to the line terminator,
// exclusive. It only fires when a preceding field() left the cursor on the
// '='; the value may be empty.
func (l *Lexer) value() (Token, bool) {
	b, ok := l.r.Peek()
	if !ok || b != equals {
		return Token{}, false
	}

	l.r.Consume()

	seq := l.r.ConsumeUntil(newline)

	return Token{Kind: KindValue, Text: string(seq)}, true
}

// field recognizes text up to the next '=' on the same line, leaving the
// cursor on the '=' so the next step's value() pairs with it. The name is
// captured verbatim, interior and trailing spaces included.
func (l *Lexer) field() (Token, bool) {
	seq, err := l.r.ConsumeUntilLineOr(equals)
	if err != nil {
		return Token{}, false
	}

	return Token{Kind: KindField, Text: string(seq)}, true
}
