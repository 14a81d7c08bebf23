package atom

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStartTag reports input that did not begin with an opening
	// feed tag.
	ErrInvalidStartTag = errors.New("input did not begin with an opening feed tag")

	// ErrUnexpectedEOF reports input that ended while content was still
	// expected.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// XMLError wraps a failure reported by the XML token source: malformed
// UTF-8, a malformed entity or character reference, or mismatched tags.
type XMLError struct {
	Err error
}

// Error formats the underlying token source failure.
func (e *XMLError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("xml: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *XMLError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DatetimeError reports a date field whose text failed date parsing.
type DatetimeError struct {
	Value string
}

func (e *DatetimeError) Error() string {
	return fmt.Sprintf("timestamps must be formatted by RFC3339, rather than %q", e.Value)
}

// AttributeError reports an attribute value that is syntactically valid XML
// but outside its enumerated domain.
type AttributeError struct {
	Attribute string
	Value     string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("unsupported value of attribute %s: %q", e.Attribute, e.Value)
}

// wrapXML converts a token source error into the codec error domain.
func wrapXML(err error) error {
	return &XMLError{Err: err}
}
