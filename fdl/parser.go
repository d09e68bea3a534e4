package fdl

// parseTokens folds a flat token sequence into an ordered section tree.
//
// Tokens are consumed strictly front to back with no lookahead beyond one
// token. Folding never fails: a SectionStart opens a section, a Field token
// immediately followed by a Value records a field, a SectionEnd (or token
// exhaustion) closes the open section, and anything structurally orphaned
// is dropped. All error signaling for malformed input happens in the lexer.
func parseTokens(tokens []Token) []Section {
	var tree []Section

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		i++

		// Stray tokens outside a section are ignored.
		if tok.Kind != KindSectionStart {
			continue
		}

		var fields []Field

		fields, i = collectFields(tokens, i)

		tree = append(tree, Section{Name: tok.Text, Fields: fields})
	}

	return tree
}

// collectFields gathers fields from position i until a SectionEnd token or
// the end of the sequence. A Field token commits the token after it: if
// that token is a Value the pair is recorded, otherwise both are discarded.
// Unterminated sections are implicitly closed.
func collectFields(tokens []Token, i int) ([]Field, int) {
	var fields []Field

	for i < len(tokens) {
		tok := tokens[i]
		i++

		switch tok.Kind {
		case KindSectionEnd:
			return fields, i

		case KindField:
			if i < len(tokens) {
				next := tokens[i]
				i++

				if next.Kind == KindValue {
					fields = append(fields, Field{Name: tok.Text, Value: next.Text})
				}
			}

		default:
			// Stray values and nested starts carry no structure here.
			continue
		}
	}

	return fields, i
}
