package atom

import (
	"github.com/jacoelho/atom/pkg/xmltext"
	"github.com/jacoelho/atom/pkg/xmlwrite"
)

// Link references a Web page related to a feed or entry.
type Link struct {
	// Href is the URI of the referenced resource.
	Href string
	// Rel is the link relationship type. It defaults to "alternate" when
	// the attribute is absent.
	Rel string
	// HrefLang is the language of the resource.
	HrefLang string
	// MIMEType is the media type of the resource.
	MIMEType string
	// Title holds human-readable information about the link.
	Title string
	// Length is the advisory length of the resource in bytes.
	Length string
}

func (l *Link) parseFrom(dec *xmltext.Decoder, attrs []attribute) error {
	l.Rel = "alternate"
	for _, attr := range attrs {
		switch attr.name {
		case "href":
			l.Href = attr.value
		case "rel":
			l.Rel = attr.value
		case "hreflang":
			l.HrefLang = attr.value
		case "type":
			l.MIMEType = attr.value
		case "title":
			l.Title = attr.value
		case "length":
			l.Length = attr.value
		}
	}
	return skipElement(dec)
}

func (l *Link) writeTo(w *xmlwrite.Writer) {
	attrs := make([]xmlwrite.Attr, 0, 6)
	attrs = append(attrs, xmlwrite.Attr{Name: "href", Value: l.Href})
	attrs = appendOptionalAttr(attrs, "rel", l.Rel)
	attrs = appendOptionalAttr(attrs, "hreflang", l.HrefLang)
	attrs = appendOptionalAttr(attrs, "type", l.MIMEType)
	attrs = appendOptionalAttr(attrs, "title", l.Title)
	attrs = appendOptionalAttr(attrs, "length", l.Length)
	w.Start("link", attrs...)
	w.End("link")
}
