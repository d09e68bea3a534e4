package fdl

import "io"

// readChunk is the granularity of reads from the underlying source.
const readChunk = 4096

// Reader is a forward-only cursor with cheap look-ahead over a byte stream.
//
// The logical position is an explicit index into a chunked buffer that is
// filled on demand, so the source is never loaded whole and peeking never
// touches the underlying stream position. Consumption is irreversible;
// there is no rewind.
type Reader struct {
	src    io.Reader
	buf    []byte // buf[pos:] is buffered, unconsumed input
	pos    int    // read index into buf
	cursor int    // absolute count of bytes consumed
	err    error  // sticky source error; io.EOF once the source drains
}

// NewReader creates a Reader that consumes src incrementally.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// Cursor returns the absolute number of bytes consumed so far.
// It identifies byte offsets in error diagnostics.
func (r *Reader) Cursor() int { return r.cursor }

// fill buffers at least n unconsumed bytes, reading the source in chunks.
// It reports whether n bytes are available.
func (r *Reader) fill(n int) bool {
	for len(r.buf)-r.pos < n && r.err == nil {
		// Slide consumed bytes out before growing the buffer.
		if r.pos > readChunk {
			r.buf = append(r.buf[:0], r.buf[r.pos:]...)
			r.pos = 0
		}

		free := cap(r.buf) - len(r.buf)
		if free < readChunk {
			r.buf = append(r.buf, make([]byte, readChunk)...)[:len(r.buf)]
		}

		m, err := r.src.Read(r.buf[len(r.buf):cap(r.buf)])
		r.buf = r.buf[:len(r.buf)+m]

		if err != nil {
			r.err = err
		}
	}

	return len(r.buf)-r.pos >= n
}

// Peek returns the next unconsumed byte without consuming it.
// The second result is false at end of stream.
func (r *Reader) Peek() (byte, bool) {
	return r.PeekAt(1)
}

// PeekAt returns the byte located offset bytes ahead of the read position
// without consuming anything. PeekAt(1) is the immediately upcoming byte.
// The second result is false if that position is at or past end of stream.
func (r *Reader) PeekAt(offset int) (byte, bool) {
	if offset < 1 || !r.fill(offset) {
		return 0, false
	}

	return r.buf[r.pos+offset-1], true
}

// Consume advances past the next byte and returns the byte now at the read
// position, or false at end of stream.
func (r *Reader) Consume() (byte, bool) {
	return r.ConsumeN(1)
}

// ConsumeN advances the read position by n bytes, or to end of stream if
// fewer remain, and returns the byte now at the read position. The cursor
// advances by the number of bytes actually consumed.
func (r *Reader) ConsumeN(n int) (byte, bool) {
	for n > 0 {
		if !r.fill(1) {
			break
		}

		r.pos++
		r.cursor++
		n--
	}

	return r.Peek()
}

// ConsumeIf consumes the next byte iff it equals target.
// No state changes otherwise.
func (r *Reader) ConsumeIf(target byte) bool {
	b, ok := r.Peek()
	if !ok || b != target {
		return false
	}

	r.Consume()

	return true
}

// ConsumeUntil consumes and accumulates bytes up to, but not including, the
// first occurrence of target. It stops silently at end of stream.
// The returned slice may be empty.
func (r *Reader) ConsumeUntil(target byte) []byte {
	var seq []byte

	for {
		b, ok := r.Peek()
		if !ok || b == target {
			break
		}

		r.Consume()

		seq = append(seq, b)
	}

	return seq
}

// ConsumeUntilLineOr consumes and accumulates bytes up to, but not
// including, the first occurrence of target, refusing to cross a line
// terminator. It fails with errEndOfLine if a newline appears before
// target and with errEndOfFile if the stream ends before either.
//
// Bytes scanned before the failure remain consumed.
func (r *Reader) ConsumeUntilLineOr(target byte) ([]byte, error) {
	var seq []byte

	for {
		b, ok := r.Peek()
		if !ok {
			return nil, errEndOfFile
		}

		if b == newline {
			return nil, errEndOfLine
		}

		if b == target {
			return seq, nil
		}

		r.Consume()

		seq = append(seq, b)
	}
}

// EOF reports whether the read position is at end of stream.
func (r *Reader) EOF() bool {
	_, ok := r.Peek()

	return !ok
}
