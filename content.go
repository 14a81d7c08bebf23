package atom

import (
	"github.com/jacoelho/atom/pkg/xmltext"
	"github.com/jacoelho/atom/pkg/xmlwrite"
)

// Content contains or links to the complete content of an entry.
type Content struct {
	// Value is the text of the content; empty when the content is remote.
	Value string
	// Src is the URI where the content can be found.
	Src string
	// ContentType is the media type of the content: "text", "html",
	// "xhtml" or a MIME type such as "application/octet-stream".
	ContentType string
	// Base is the base URL for resolving relative references.
	Base string
	// Lang indicates the natural language of the content.
	Lang string
}

func (c *Content) parseFrom(dec *xmltext.Decoder, attrs []attribute) error {
	for _, attr := range attrs {
		switch attr.name {
		case "xml:base", "base":
			c.Base = attr.value
		case "xml:lang", "lang":
			c.Lang = attr.value
		case "type":
			c.ContentType = attr.value
		case "src":
			c.Src = attr.value
		}
	}

	var (
		value string
		err   error
	)
	if c.ContentType == "xhtml" {
		value, _, err = readXHTML(dec)
	} else {
		value, _, err = readText(dec)
	}
	if err != nil {
		return err
	}
	c.Value = value
	return nil
}

func (c *Content) writeTo(w *xmlwrite.Writer) {
	attrs := make([]xmlwrite.Attr, 0, 4)
	attrs = appendOptionalAttr(attrs, "xml:base", c.Base)
	attrs = appendOptionalAttr(attrs, "xml:lang", c.Lang)
	attrs = appendOptionalAttr(attrs, "type", c.ContentType)
	attrs = appendOptionalAttr(attrs, "src", c.Src)
	w.Start("content", attrs...)
	if c.ContentType == "xhtml" {
		w.Raw(c.Value)
	} else {
		w.Text(c.Value)
	}
	w.End("content")
}
