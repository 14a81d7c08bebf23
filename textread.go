package atom

import (
	"io"
	"strings"
	"time"

	"github.com/jacoelho/atom/pkg/xmltext"
)

// readText consumes the decoder from just after an element's start tag
// through its matching end tag and reconstructs the subtree as plain text:
// character data has entity and character references resolved, CDATA is
// copied, nested tags are reconstructed as literal markup from their raw
// interiors, comments pass through and processing instructions and
// directives are dropped. The result is whitespace-trimmed; an empty result
// reports ok = false.
//
// Self-closing tag expansion is disabled for the duration so that <br/>
// stays distinguishable from a start/end pair, and restored afterwards.
func readText(dec *xmltext.Decoder) (value string, ok bool, err error) {
	return readContent(dec, false)
}

// readXHTML is the raw counterpart of readText: character data is validated
// and re-emitted verbatim, with entity references preserved as written, and
// CDATA content is escaped. XHTML-typed content is a nested document tree
// that must survive as markup, unlike plain or HTML content which is
// ordinary character data.
func readXHTML(dec *xmltext.Decoder) (value string, ok bool, err error) {
	return readContent(dec, true)
}

func readContent(dec *xmltext.Decoder, raw bool) (string, bool, error) {
	dec.ExpandEmptyElements(false)
	defer dec.ExpandEmptyElements(true)

	var buf []byte
	depth := 0
	for {
		tok, err := dec.ReadToken()
		if err == io.EOF {
			return "", false, ErrUnexpectedEOF
		}
		if err != nil {
			return "", false, wrapXML(err)
		}

		switch tok.Kind {
		case xmltext.KindStartElement:
			depth++
			buf = append(buf, '<')
			buf = append(buf, tok.Raw...)
			buf = append(buf, '>')

		case xmltext.KindEmptyElement:
			buf = append(buf, '<')
			buf = append(buf, tok.Raw...)
			buf = append(buf, "/>"...)

		case xmltext.KindEndElement:
			if depth == 0 {
				value := strings.TrimSpace(string(buf))
				return value, value != "", nil
			}
			depth--
			buf = append(buf, "</"...)
			buf = append(buf, tok.Name...)
			buf = append(buf, '>')

		case xmltext.KindCharData:
			if raw {
				if err := xmltext.ValidateText(tok.Text); err != nil {
					return "", false, wrapXML(err)
				}
				buf = append(buf, tok.Text...)
			} else {
				buf, err = xmltext.AppendUnescapedText(buf, tok.Text)
				if err != nil {
					return "", false, wrapXML(err)
				}
			}

		case xmltext.KindCDATA:
			if err := xmltext.ValidateChars(tok.Text); err != nil {
				return "", false, wrapXML(err)
			}
			if raw {
				buf = xmltext.AppendEscaped(buf, tok.Text)
			} else {
				buf = append(buf, tok.Text...)
			}

		case xmltext.KindComment:
			buf = append(buf, "<!--"...)
			buf = append(buf, tok.Text...)
			buf = append(buf, "-->"...)

		case xmltext.KindPI, xmltext.KindDirective:
			// Dropped from reconstructed content.
		}
	}
}

// readDateTime reads the element body as text and parses it leniently.
// An absent body reports a nil time.
func readDateTime(dec *xmltext.Decoder) (*time.Time, error) {
	value, ok, err := readText(dec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	t, ok := parseDateTime(value)
	if !ok {
		return nil, &DatetimeError{Value: value}
	}
	return &t, nil
}

// skipElement consumes the decoder through the end tag matching the start
// tag that was just read, discarding everything in between.
func skipElement(dec *xmltext.Decoder) error {
	depth := 0
	for {
		tok, err := dec.ReadToken()
		if err == io.EOF {
			return ErrUnexpectedEOF
		}
		if err != nil {
			return wrapXML(err)
		}
		switch tok.Kind {
		case xmltext.KindStartElement:
			depth++
		case xmltext.KindEndElement:
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}
