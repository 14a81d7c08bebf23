// Package xmlwrite provides a minimal event-based XML writer: start tags
// with attributes, escaped text, pre-escaped raw markup and end tags.
package xmlwrite

import (
	"bufio"
	"io"

	"github.com/jacoelho/atom/pkg/xmltext"
)

// Attr holds one attribute to emit on a start tag. The value is escaped on
// write.
type Attr struct {
	Name  string
	Value string
}

// Writer emits XML events to an underlying byte sink. The first write error
// is sticky: subsequent calls become no-ops and the error surfaces from
// Flush or Err.
type Writer struct {
	bw  *bufio.Writer
	buf []byte
	err error
}

// NewWriter creates a writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Decl writes the XML declaration followed by a newline.
func (w *Writer) Decl() {
	w.writeString("<?xml version=\"1.0\"?>\n")
}

// Start writes a start tag with the given attributes in argument order.
func (w *Writer) Start(name string, attrs ...Attr) {
	w.writeByte('<')
	w.writeString(name)
	for _, attr := range attrs {
		w.writeByte(' ')
		w.writeString(attr.Name)
		w.writeString(`="`)
		w.writeEscaped(attr.Value)
		w.writeByte('"')
	}
	w.writeByte('>')
}

// End writes the matching end tag.
func (w *Writer) End(name string) {
	w.writeString("</")
	w.writeString(name)
	w.writeByte('>')
}

// Text writes character data with XML special characters escaped.
func (w *Writer) Text(s string) {
	w.writeEscaped(s)
}

// Raw writes s verbatim. The caller is responsible for well-formedness.
func (w *Writer) Raw(s string) {
	w.writeString(s)
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// Flush writes buffered output to the underlying sink and reports the first
// error encountered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.bw.Flush()
	return w.err
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.bw.WriteString(s)
}

func (w *Writer) writeByte(b byte) {
	if w.err != nil {
		return
	}
	w.err = w.bw.WriteByte(b)
}

func (w *Writer) writeEscaped(s string) {
	if w.err != nil {
		return
	}
	w.buf = xmltext.AppendEscaped(w.buf[:0], []byte(s))
	_, w.err = w.bw.Write(w.buf)
}
