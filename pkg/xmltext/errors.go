package xmltext

import (
	"errors"
	"fmt"
)

var (
	errNilReader        = errors.New("nil XML reader")
	errUnexpectedEOF    = errors.New("unexpected EOF")
	errInvalidName      = errors.New("invalid XML name")
	errInvalidEntity    = errors.New("invalid entity reference")
	errInvalidCharRef   = errors.New("invalid character reference")
	errInvalidChar      = errors.New("invalid XML character")
	errInvalidComment   = errors.New("invalid XML comment")
	errMismatchedEndTag = errors.New("mismatched end element")
)

// SyntaxError reports a well-formedness error with location context.
type SyntaxError struct {
	Offset int64
	Err    error
}

// Error formats the syntax error with location and cause.
func (e *SyntaxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("xml syntax error at offset %d: %v", e.Offset, e.Err)
}

// Unwrap exposes the underlying error.
func (e *SyntaxError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
