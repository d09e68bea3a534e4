package fdl

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestReader_PeekConsume(t *testing.T) {
	r := NewReader(strings.NewReader("abc"))

	b, ok := r.Peek()
	if !ok || b != 'a' {
		t.Fatalf("Peek() = %q, %v; want 'a', true", b, ok)
	}

	// Peeking must not advance the cursor.
	if got := r.Cursor(); got != 0 {
		t.Errorf("Cursor() after Peek = %d, want 0", got)
	}

	b, ok = r.Consume()
	if !ok || b != 'b' {
		t.Fatalf("Consume() = %q, %v; want 'b', true", b, ok)
	}

	if got := r.Cursor(); got != 1 {
		t.Errorf("Cursor() after Consume = %d, want 1", got)
	}
}

func TestReader_PeekAt(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		want   byte
		ok     bool
	}{
		{name: "first byte", input: "xyz", offset: 1, want: 'x', ok: true},
		{name: "second byte", input: "xyz", offset: 2, want: 'y', ok: true},
		{name: "last byte", input: "xyz", offset: 3, want: 'z', ok: true},
		{name: "past end", input: "xyz", offset: 4, ok: false},
		{name: "zero offset", input: "xyz", offset: 0, ok: false},
		{name: "negative offset", input: "xyz", offset: -1, ok: false},
		{name: "empty input", input: "", offset: 1, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input))

			got, ok := r.PeekAt(tt.offset)
			if ok != tt.ok {
				t.Fatalf("PeekAt(%d) ok = %v, want %v", tt.offset, ok, tt.ok)
			}

			if ok && got != tt.want {
				t.Errorf("PeekAt(%d) = %q, want %q", tt.offset, got, tt.want)
			}
		})
	}
}

func TestReader_ConsumeN(t *testing.T) {
	r := NewReader(strings.NewReader("hello"))

	b, ok := r.ConsumeN(3)
	if !ok || b != 'l' {
		t.Fatalf("ConsumeN(3) = %q, %v; want 'l', true", b, ok)
	}

	if got := r.Cursor(); got != 3 {
		t.Errorf("Cursor() = %d, want 3", got)
	}

	// Consuming past the end stops at end of stream.
	_, ok = r.ConsumeN(10)
	if ok {
		t.Error("ConsumeN(10) past end reported a byte")
	}

	if got := r.Cursor(); got != 5 {
		t.Errorf("Cursor() after over-consume = %d, want 5", got)
	}

	if !r.EOF() {
		t.Error("EOF() = false after consuming everything")
	}
}

func TestReader_ConsumeIf(t *testing.T) {
	r := NewReader(strings.NewReader("=v"))

	if r.ConsumeIf('x') {
		t.Error("ConsumeIf('x') = true on mismatched byte")
	}

	if got := r.Cursor(); got != 0 {
		t.Errorf("Cursor() advanced on mismatch: %d", got)
	}

	if !r.ConsumeIf('=') {
		t.Error("ConsumeIf('=') = false on matching byte")
	}

	if got := r.Cursor(); got != 1 {
		t.Errorf("Cursor() = %d, want 1", got)
	}
}

func TestReader_ConsumeUntil(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target byte
		want   string
		cursor int
	}{
		{name: "stops before target", input: "abc=def", target: '=', want: "abc", cursor: 3},
		{name: "target first", input: "=def", target: '=', want: "", cursor: 0},
		{name: "target absent", input: "abcdef", target: '=', want: "abcdef", cursor: 6},
		{name: "empty input", input: "", target: '=', want: "", cursor: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input))

			got := r.ConsumeUntil(tt.target)
			if string(got) != tt.want {
				t.Errorf("ConsumeUntil(%q) = %q, want %q", tt.target, got, tt.want)
			}

			if r.Cursor() != tt.cursor {
				t.Errorf("Cursor() = %d, want %d", r.Cursor(), tt.cursor)
			}
		})
	}
}

func TestReader_ConsumeUntilLineOr(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target byte
		want   string
		err    error
	}{
		{name: "target on line", input: "name=value\n", target: '=', want: "name"},
		{name: "newline first", input: "name\n=value", target: '=', err: errEndOfLine},
		{name: "stream ends first", input: "name", target: '=', err: errEndOfFile},
		{name: "target immediately", input: "=v\n", target: '=', want: ""},
		{name: "empty input", input: "", target: '=', err: errEndOfFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input))

			got, err := r.ConsumeUntilLineOr(tt.target)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ConsumeUntilLineOr(%q) error = %v, want %v", tt.target, err, tt.err)
			}

			if err == nil && string(got) != tt.want {
				t.Errorf("ConsumeUntilLineOr(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

func TestReader_ConsumeUntilLineOr_KeepsConsumed(t *testing.T) {
	// A failed scan does not rewind: the scanned bytes stay consumed and
	// the read position rests on the terminator that stopped it.
	r := NewReader(strings.NewReader("abc\nxyz"))

	_, err := r.ConsumeUntilLineOr('=')
	if !errors.Is(err, errEndOfLine) {
		t.Fatalf("error = %v, want %v", err, errEndOfLine)
	}

	if got := r.Cursor(); got != 3 {
		t.Errorf("Cursor() = %d, want 3", got)
	}

	b, ok := r.Peek()
	if !ok || b != '\n' {
		t.Errorf("Peek() = %q, %v; want '\\n', true", b, ok)
	}
}

func TestReader_LargeInput(t *testing.T) {
	// Exercise buffer growth and the consumed-prefix slide across several
	// chunk boundaries.
	line := strings.Repeat("x", 100) + "\n"
	input := strings.Repeat(line, 3*readChunk/len(line))

	r := NewReader(strings.NewReader(input))

	total := 0

	for !r.EOF() {
		seq := r.ConsumeUntil('\n')
		total += len(seq)

		if !r.ConsumeIf('\n') {
			break
		}

		total++
	}

	if total != len(input) {
		t.Errorf("consumed %d bytes, want %d", total, len(input))
	}

	if r.Cursor() != len(input) {
		t.Errorf("Cursor() = %d, want %d", r.Cursor(), len(input))
	}
}

func TestReader_ShortReads(t *testing.T) {
	// A source that trickles one byte per Read must behave identically.
	src := iotest.OneByteReader(strings.NewReader("ab=cd\n"))
	r := NewReader(src)

	seq, err := r.ConsumeUntilLineOr('=')
	if err != nil {
		t.Fatalf("ConsumeUntilLineOr error: %v", err)
	}

	if string(seq) != "ab" {
		t.Errorf("scanned %q, want \"ab\"", seq)
	}

	if b, ok := r.Peek(); !ok || b != '=' {
		t.Errorf("Peek() = %q, %v; want '=', true", b, ok)
	}
}

func TestReader_EOF(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	if !r.EOF() {
		t.Error("EOF() = false on empty input")
	}

	r = NewReader(strings.NewReader("a"))
	if r.EOF() {
		t.Error("EOF() = true with input remaining")
	}

	r.Consume()

	if !r.EOF() {
		t.Error("EOF() = false after draining input")
	}
}
