package fdl

import (
	"bytes"
	"context"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/readahead"
)

// Field is a single name = value entry inside a section.
// Both halves are verbatim source bytes, line terminator excluded.
type Field struct {
	Name  string
	Value string
}

// Section is a named group of fields in source order.
type Section struct {
	Name   string
	Fields []Field
}

// Fetch returns the value of the first field named name,
// or false if the section has no such field.
func (s Section) Fetch(name string) (string, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}

	return "", false
}

// Document is an immutable FDL section tree.
//
// It is constructed once, atomically, from a fully lexed token sequence and
// never mutated afterward, so it may be shared freely among concurrent
// readers without locking.
type Document struct {
	tree []Section
}

// Load opens and parses the FDL file at path.
//
// It fails with [ErrOpen] if the file cannot be opened and propagates lexer
// errors unchanged. The file handle is released on every exit path.
func Load(ctx context.Context, path string, opts ...Option) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ErrOpen.Wrap(err).With(slog.String("path", path))
	}
	defer file.Close()

	doc, err := LoadReader(ctx, file, opts...)
	if err != nil {
		return nil, WrapError(err).With(slog.String("path", path))
	}

	return doc, nil
}

// LoadReader parses FDL source from r.
//
// The reader is wrapped with asynchronous read-ahead so input is prefetched
// while earlier chunks are being tokenized; the source is still consumed
// incrementally, never loaded whole.
func LoadReader(ctx context.Context, r io.Reader, opts ...Option) (*Document, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	return lex(ctx, NewReader(ra), makeConfig(opts...))
}

// Parse parses FDL source from a byte slice.
func Parse(ctx context.Context, src []byte, opts ...Option) (*Document, error) {
	return lex(ctx, NewReader(bytes.NewReader(src)), makeConfig(opts...))
}

// ParseString parses FDL source from a string.
func ParseString(ctx context.Context, s string, opts ...Option) (*Document, error) {
	return lex(ctx, NewReader(strings.NewReader(s)), makeConfig(opts...))
}

// lex runs the tokenize-then-fold pipeline over r.
func lex(ctx context.Context, r *Reader, cfg config) (*Document, error) {
	tokens, err := NewLexer(r).Lex()
	if err != nil {
		return nil, err
	}

	cfg.logger.TraceContext(ctx, "lex complete",
		slog.Int("tokens", len(tokens)),
		slog.Int("bytes", r.Cursor()),
	)

	doc := &Document{tree: parseTokens(tokens)}

	cfg.logger.TraceContext(ctx, "parse complete",
		slog.Int("sections", len(doc.tree)),
	)

	return doc, nil
}

// Fetch returns the value of the first field named field inside the first
// section named section. The second result is false if either lookup
// misses; a miss is a normal empty result, never an error.
func (d *Document) Fetch(section, field string) (string, bool) {
	s, ok := d.Section(section)
	if !ok {
		return "", false
	}

	return s.Fetch(field)
}

// Section returns the first section named name.
func (d *Document) Section(name string) (Section, bool) {
	for _, s := range d.tree {
		if s.Name == name {
			return s, true
		}
	}

	return Section{}, false
}

// Sections returns an iterator over all sections in source order,
// duplicates included.
func (d *Document) Sections() iter.Seq[Section] {
	return func(yield func(Section) bool) {
		for _, s := range d.tree {
			if !yield(s) {
				return
			}
		}
	}
}

// Len returns the number of sections in the document.
func (d *Document) Len() int { return len(d.tree) }
