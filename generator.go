package atom

import (
	"github.com/jacoelho/atom/pkg/xmltext"
	"github.com/jacoelho/atom/pkg/xmlwrite"
)

// Generator identifies the software used to generate a feed.
type Generator struct {
	// Value is the name of the generator.
	Value string
	// URI is the generator URI.
	URI string
	// Version is the generator version.
	Version string
}

func (g *Generator) parseFrom(dec *xmltext.Decoder, attrs []attribute) error {
	for _, attr := range attrs {
		switch attr.name {
		case "uri":
			g.URI = attr.value
		case "version":
			g.Version = attr.value
		}
	}
	value, _, err := readText(dec)
	if err != nil {
		return err
	}
	g.Value = value
	return nil
}

func (g *Generator) writeTo(w *xmlwrite.Writer) {
	attrs := make([]xmlwrite.Attr, 0, 2)
	attrs = appendOptionalAttr(attrs, "uri", g.URI)
	attrs = appendOptionalAttr(attrs, "version", g.Version)
	w.Start("generator", attrs...)
	w.Text(g.Value)
	w.End("generator")
}
