package atom

import (
	"io"

	"github.com/jacoelho/atom/pkg/xmltext"
	"github.com/jacoelho/atom/pkg/xmlwrite"
)

// Person is a person construct: an author or contributor of a feed, entry
// or source.
type Person struct {
	// Name is a human-readable name for the person.
	Name string
	// Email is an email address for the person.
	Email string
	// URI is a home page for the person.
	URI string
}

func (p *Person) parseFrom(dec *xmltext.Decoder, _ []attribute) error {
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
			if _, err := decodeAttrs(tok); err != nil {
				return err
			}
			switch string(tok.Name) {
			case "name":
				p.Name, _, err = readText(dec)
			case "email":
				p.Email, _, err = readText(dec)
			case "uri":
				p.URI, _, err = readText(dec)
			default:
				err = skipElement(dec)
			}
			if err != nil {
				return err
			}

		case xmltext.KindEndElement:
			return nil
		}
	}
}

// writeToNamed emits the person under the given element name: author or
// contributor.
func (p *Person) writeToNamed(w *xmlwrite.Writer, name string) {
	w.Start(name)
	writeTextElement(w, "name", p.Name)
	writeOptionalTextElement(w, "email", p.Email)
	writeOptionalTextElement(w, "uri", p.URI)
	w.End(name)
}
