package atom

import (
	"github.com/jacoelho/atom/pkg/xmltext"
	"github.com/jacoelho/atom/pkg/xmlwrite"
)

// Category identifies a category that a feed or entry belongs to.
type Category struct {
	// Term identifies the category.
	Term string
	// Scheme identifies the categorization scheme via a URI.
	Scheme string
	// Label is a human-readable label for display.
	Label string
}

func (c *Category) parseFrom(dec *xmltext.Decoder, attrs []attribute) error {
	for _, attr := range attrs {
		switch attr.name {
		case "term":
			c.Term = attr.value
		case "scheme":
			c.Scheme = attr.value
		case "label":
			c.Label = attr.value
		}
	}
	return skipElement(dec)
}

func (c *Category) writeTo(w *xmlwrite.Writer) {
	attrs := make([]xmlwrite.Attr, 0, 3)
	attrs = append(attrs, xmlwrite.Attr{Name: "term", Value: c.Term})
	attrs = appendOptionalAttr(attrs, "scheme", c.Scheme)
	attrs = appendOptionalAttr(attrs, "label", c.Label)
	w.Start("category", attrs...)
	w.End("category")
}
