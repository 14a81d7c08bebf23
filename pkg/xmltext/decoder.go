package xmltext

import (
	"bufio"
	"bytes"
	"io"
)

const defaultBufferSize = 32 * 1024

// Decoder streams XML tokens from a byte source. It enforces tag balance
// but is otherwise lenient: attribute lists are recovered best-effort and
// content outside the root element is not policed.
type Decoder struct {
	r               *bufio.Reader
	tokBuf          []byte
	attrs           []Attr
	stack           []string
	pendingEnd      string
	err             error
	offset          int64
	expandEmpty     bool
	pendingEndValid bool
}

// NewDecoder creates a new XML decoder for the reader. Self-closing tag
// expansion starts enabled.
func NewDecoder(r io.Reader) *Decoder {
	d := &Decoder{expandEmpty: true}
	if r == nil {
		d.err = errNilReader
		return d
	}
	d.r = bufio.NewReaderSize(r, defaultBufferSize)
	return d
}

// ExpandEmptyElements toggles self-closing tag expansion. When enabled, a
// self-closing tag yields a StartElement followed by a synthesized
// EndElement; when disabled it yields a single EmptyElement token.
func (d *Decoder) ExpandEmptyElements(enabled bool) {
	d.expandEmpty = enabled
}

// InputOffset returns the current byte position in the input stream.
func (d *Decoder) InputOffset() int64 {
	return d.offset
}

// ReadToken returns the next XML token. It returns io.EOF at a clean token
// boundary at the end of input, even if elements remain open; detecting
// truncated documents is the caller's responsibility. Any other error is
// sticky.
func (d *Decoder) ReadToken() (Token, error) {
	if d.err != nil {
		return Token{}, d.err
	}
	if d.pendingEndValid {
		d.pendingEndValid = false
		d.tokBuf = append(d.tokBuf[:0], d.pendingEnd...)
		return Token{Kind: KindEndElement, Name: d.tokBuf}, nil
	}
	d.tokBuf = d.tokBuf[:0]
	d.attrs = d.attrs[:0]

	b, err := d.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return Token{}, io.EOF
		}
		d.err = err
		return Token{}, err
	}
	d.offset++
	if b != '<' {
		return d.scanCharData(b)
	}

	m, err := d.readMarkupByte()
	if err != nil {
		return Token{}, err
	}
	switch m {
	case '/':
		return d.scanEndTag()
	case '!':
		return d.scanBang()
	case '?':
		return d.scanPI()
	default:
		return d.scanStartTag(m)
	}
}

func (d *Decoder) readMarkupByte() (byte, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, d.syntaxError(errUnexpectedEOF)
		}
		d.err = err
		return 0, err
	}
	d.offset++
	return b, nil
}

func (d *Decoder) syntaxError(err error) error {
	serr := &SyntaxError{Offset: d.offset, Err: err}
	d.err = serr
	return serr
}

func (d *Decoder) scanCharData(first byte) (Token, error) {
	d.tokBuf = append(d.tokBuf, first)
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			d.err = err
			return Token{}, err
		}
		if b == '<' {
			// Leave the markup for the next call.
			_ = d.r.UnreadByte()
			break
		}
		d.offset++
		d.tokBuf = append(d.tokBuf, b)
	}
	return Token{Kind: KindCharData, Text: d.tokBuf}, nil
}

func (d *Decoder) scanEndTag() (Token, error) {
	for {
		b, err := d.readMarkupByte()
		if err != nil {
			return Token{}, err
		}
		if b == '>' {
			break
		}
		d.tokBuf = append(d.tokBuf, b)
	}
	name := bytes.TrimRight(d.tokBuf, " \t\n\r")
	if err := validateName(name); err != nil {
		return Token{}, d.syntaxError(err)
	}
	if len(d.stack) == 0 || d.stack[len(d.stack)-1] != string(name) {
		return Token{}, d.syntaxError(errMismatchedEndTag)
	}
	d.stack = d.stack[:len(d.stack)-1]
	return Token{Kind: KindEndElement, Name: name}, nil
}

func (d *Decoder) scanStartTag(first byte) (Token, error) {
	d.tokBuf = append(d.tokBuf, first)
	var quote byte
	for {
		b, err := d.readMarkupByte()
		if err != nil {
			return Token{}, err
		}
		if quote != 0 {
			if b == quote {
				quote = 0
			}
		} else if b == '"' || b == '\'' {
			quote = b
		} else if b == '>' {
			break
		}
		d.tokBuf = append(d.tokBuf, b)
	}

	interior := d.tokBuf
	selfClosing := false
	if n := len(interior); n > 0 && interior[n-1] == '/' {
		selfClosing = true
		interior = interior[:n-1]
	}

	i := 0
	for i < len(interior) && !isWhitespace(interior[i]) {
		i++
	}
	name := interior[:i]
	if err := validateName(name); err != nil {
		return Token{}, d.syntaxError(err)
	}
	d.parseAttrs(interior[i:])

	tok := Token{Kind: KindStartElement, Name: name, Raw: interior, Attrs: d.attrs}
	if selfClosing {
		if d.expandEmpty {
			d.pendingEnd = string(name)
			d.pendingEndValid = true
			return tok, nil
		}
		tok.Kind = KindEmptyElement
		return tok, nil
	}
	d.stack = append(d.stack, string(name))
	return tok, nil
}

// parseAttrs recovers name="value" pairs from the tag interior after the
// element name. Fragments that do not fit the attribute form are skipped
// rather than rejected.
func (d *Decoder) parseAttrs(rest []byte) {
	for {
		for len(rest) > 0 && isWhitespace(rest[0]) {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			return
		}
		k := 0
		for k < len(rest) && rest[k] != '=' && !isWhitespace(rest[k]) {
			k++
		}
		name := rest[:k]
		rest = rest[k:]
		for len(rest) > 0 && isWhitespace(rest[0]) {
			rest = rest[1:]
		}
		if len(rest) == 0 || rest[0] != '=' {
			continue
		}
		rest = rest[1:]
		for len(rest) > 0 && isWhitespace(rest[0]) {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			return
		}
		if rest[0] != '"' && rest[0] != '\'' {
			v := 0
			for v < len(rest) && !isWhitespace(rest[v]) {
				v++
			}
			if len(name) > 0 {
				d.attrs = append(d.attrs, Attr{Name: name, Value: rest[:v]})
			}
			rest = rest[v:]
			continue
		}
		q := rest[0]
		rest = rest[1:]
		end := bytes.IndexByte(rest, q)
		if end < 0 {
			return
		}
		if len(name) > 0 {
			d.attrs = append(d.attrs, Attr{Name: name, Value: rest[:end]})
		}
		rest = rest[end+1:]
	}
}

func (d *Decoder) scanBang() (Token, error) {
	b, err := d.readMarkupByte()
	if err != nil {
		return Token{}, err
	}
	switch b {
	case '-':
		b2, err := d.readMarkupByte()
		if err != nil {
			return Token{}, err
		}
		if b2 != '-' {
			return Token{}, d.syntaxError(errInvalidComment)
		}
		return d.scanComment()
	case '[':
		for _, want := range []byte("CDATA[") {
			c, err := d.readMarkupByte()
			if err != nil {
				return Token{}, err
			}
			if c != want {
				return Token{}, d.syntaxError(errInvalidName)
			}
		}
		return d.scanCData()
	default:
		return d.scanDirective(b)
	}
}

func (d *Decoder) scanComment() (Token, error) {
	for {
		b, err := d.readMarkupByte()
		if err != nil {
			return Token{}, err
		}
		d.tokBuf = append(d.tokBuf, b)
		if n := len(d.tokBuf); b == '>' && n >= 3 && d.tokBuf[n-2] == '-' && d.tokBuf[n-3] == '-' {
			return Token{Kind: KindComment, Text: d.tokBuf[:n-3]}, nil
		}
	}
}

func (d *Decoder) scanCData() (Token, error) {
	for {
		b, err := d.readMarkupByte()
		if err != nil {
			return Token{}, err
		}
		d.tokBuf = append(d.tokBuf, b)
		if n := len(d.tokBuf); b == '>' && n >= 3 && d.tokBuf[n-2] == ']' && d.tokBuf[n-3] == ']' {
			return Token{Kind: KindCDATA, Text: d.tokBuf[:n-3]}, nil
		}
	}
}

func (d *Decoder) scanPI() (Token, error) {
	for {
		b, err := d.readMarkupByte()
		if err != nil {
			return Token{}, err
		}
		d.tokBuf = append(d.tokBuf, b)
		if n := len(d.tokBuf); b == '>' && n >= 2 && d.tokBuf[n-2] == '?' {
			return Token{Kind: KindPI, Text: d.tokBuf[:n-2]}, nil
		}
	}
}

func (d *Decoder) scanDirective(first byte) (Token, error) {
	depth := 0
	b := first
	for {
		if b == '[' {
			depth++
		} else if b == ']' {
			depth--
		} else if b == '>' && depth <= 0 {
			return Token{Kind: KindDirective, Text: d.tokBuf}, nil
		}
		d.tokBuf = append(d.tokBuf, b)
		next, err := d.readMarkupByte()
		if err != nil {
			return Token{}, err
		}
		b = next
	}
}
