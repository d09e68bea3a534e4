package fdl

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrOpen           = NewError("open input")
	ErrRead           = NewError("read input")
	ErrUnexpectedChar = NewError("unexpected character")
)

// Internal scan outcomes raised while looking for a delimiter.
// They steer the lexer's recognizers and never escape to callers.
var (
	errEndOfLine = NewError("end of line")
	errEndOfFile = NewError("end of file")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg    string
	err    error       // Wrapped error (for errors.Unwrap)
	attrs  []slog.Attr // Attributes for structured logging
	offset int         // Byte offset into the source, when known
	hasOff bool
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 3)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.hasOff {
		part = append(part, "at offset "+strconv.Itoa(e.offset))
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an Error derived from the same sentinel.
// Derived errors created by [Error.Wrap], [Error.With], and
// [Error.WithOffset] share the sentinel's message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.hasOff {
		attrs = append(attrs, slog.Int("offset", e.offset))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:    e.msg,
		err:    err,
		attrs:  e.attrs, // Share attrs
		offset: e.offset,
		hasOff: e.hasOff,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:    e.msg,
		err:    e.err,
		attrs:  newAttrs,
		offset: e.offset,
		hasOff: e.hasOff,
	}
}

// WithOffset attaches an absolute byte offset to the error.
func (e *Error) WithOffset(offset int) *Error {
	return &Error{
		msg:    e.msg,
		err:    e.err,
		attrs:  e.attrs,
		offset: offset,
		hasOff: true,
	}
}

// Offset returns the byte offset attached to err, if any.
func Offset(err error) (int, bool) {
	e := &Error{}
	if errors.As(err, &e) && e.hasOff {
		return e.offset, true
	}

	return 0, false
}
