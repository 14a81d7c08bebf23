package atom

import (
	"github.com/jacoelho/atom/pkg/xmltext"
	"github.com/jacoelho/atom/pkg/xmlwrite"
)

// TextType is the value of the type attribute of a text construct: the
// declared typing of the content stored in the element.
type TextType byte

const (
	// TextTypeText is the default.
	TextTypeText TextType = iota
	TextTypeHTML
	TextTypeXHTML
)

// String returns the attribute value for the type.
func (t TextType) String() string {
	switch t {
	case TextTypeHTML:
		return "html"
	case TextTypeXHTML:
		return "xhtml"
	default:
		return "text"
	}
}

func parseTextType(value string) (TextType, bool) {
	switch value {
	case "text":
		return TextTypeText, true
	case "html":
		return TextTypeHTML, true
	case "xhtml":
		return TextTypeXHTML, true
	default:
		return TextTypeText, false
	}
}

// Text represents a text construct: prose typed as plain text, HTML or
// embedded XHTML. For TextTypeXHTML the value holds one well-formed XML
// fragment preserved verbatim as markup; for the other types it holds
// fully-unescaped character data in which any nested tags are literal text.
type Text struct {
	Value string
	Base  string
	Lang  string
	Type  TextType
}

// NewText returns a plain text construct with the given value.
func NewText(value string) Text {
	return Text{Value: value}
}

func (t *Text) parseFrom(dec *xmltext.Decoder, attrs []attribute) error {
	for _, attr := range attrs {
		switch attr.name {
		case "xml:base", "base":
			t.Base = attr.value
		case "xml:lang", "lang":
			t.Lang = attr.value
		case "type":
			typ, ok := parseTextType(attr.value)
			if !ok {
				return &AttributeError{Attribute: "type", Value: attr.value}
			}
			t.Type = typ
		}
	}

	var (
		value string
		err   error
	)
	if t.Type == TextTypeXHTML {
		value, _, err = readXHTML(dec)
	} else {
		value, _, err = readText(dec)
	}
	if err != nil {
		return err
	}
	t.Value = value
	return nil
}

func (t *Text) writeToNamed(w *xmlwrite.Writer, name string) {
	attrs := make([]xmlwrite.Attr, 0, 3)
	if t.Base != "" {
		attrs = append(attrs, xmlwrite.Attr{Name: "xml:base", Value: t.Base})
	}
	if t.Lang != "" {
		attrs = append(attrs, xmlwrite.Attr{Name: "xml:lang", Value: t.Lang})
	}
	if t.Type != TextTypeText {
		attrs = append(attrs, xmlwrite.Attr{Name: "type", Value: t.Type.String()})
	}
	w.Start(name, attrs...)
	if t.Type == TextTypeXHTML {
		// Already escaped markup; a second escaping pass would corrupt it.
		w.Raw(t.Value)
	} else {
		w.Text(t.Value)
	}
	w.End(name)
}
