package atom

import (
	"io"
	"time"

	"github.com/jacoelho/atom/pkg/xmltext"
	"github.com/jacoelho/atom/pkg/xmlwrite"
)

// Entry represents one item in an Atom feed.
type Entry struct {
	// Title is a human-readable title for the entry.
	Title Text
	// ID is a universally unique and permanent URI.
	ID string
	// Updated is the last time the entry was modified in a significant way.
	Updated time.Time
	// Authors are the authors of the entry.
	Authors []Person
	// Categories are the categories that the entry belongs to.
	Categories []Category
	// Contributors are the contributors to the entry.
	Contributors []Person
	// Links are the Web pages related to the entry.
	Links []Link
	// Published is the first time the entry was available, if stated.
	Published *time.Time
	// Rights holds information about rights held in and over the entry.
	Rights *Text
	// Source is the metadata of the feed the entry was copied from, if any.
	Source *Source
	// Summary is a short summary, abstract or excerpt of the entry.
	Summary *Text
	// Content contains or links to the complete content of the entry.
	Content *Content
	// Extensions holds the entry's extension elements, keyed by namespace
	// prefix and then by local name.
	Extensions ExtensionMap
}

func (e *Entry) parseFrom(dec *xmltext.Decoder, _ []attribute) error {
	e.Updated = defaultDateTime()
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
			name := string(tok.Name)
			childAttrs, err := decodeAttrs(tok)
			if err != nil {
				return err
			}
			if err := e.parseChild(dec, name, childAttrs); err != nil {
				return err
			}

		case xmltext.KindEndElement:
			return nil
		}
	}
}

func (e *Entry) parseChild(dec *xmltext.Decoder, name string, attrs []attribute) error {
	switch name {
	case "title":
		return e.Title.parseFrom(dec, attrs)
	case "id":
		value, _, err := readText(dec)
		e.ID = value
		return err
	case "updated":
		t, err := readDateTime(dec)
		if err != nil {
			return err
		}
		if t != nil {
			e.Updated = *t
		}
		return nil
	case "author":
		var person Person
		if err := person.parseFrom(dec, attrs); err != nil {
			return err
		}
		e.Authors = append(e.Authors, person)
		return nil
	case "category":
		var category Category
		if err := category.parseFrom(dec, attrs); err != nil {
			return err
		}
		e.Categories = append(e.Categories, category)
		return nil
	case "contributor":
		var person Person
		if err := person.parseFrom(dec, attrs); err != nil {
			return err
		}
		e.Contributors = append(e.Contributors, person)
		return nil
	case "link":
		var link Link
		if err := link.parseFrom(dec, attrs); err != nil {
			return err
		}
		e.Links = append(e.Links, link)
		return nil
	case "published":
		t, err := readDateTime(dec)
		if err != nil {
			return err
		}
		e.Published = t
		return nil
	case "rights":
		var rights Text
		if err := rights.parseFrom(dec, attrs); err != nil {
			return err
		}
		e.Rights = &rights
		return nil
	case "source":
		var source Source
		if err := source.parseFrom(dec, attrs); err != nil {
			return err
		}
		e.Source = &source
		return nil
	case "summary":
		var summary Text
		if err := summary.parseFrom(dec, attrs); err != nil {
			return err
		}
		e.Summary = &summary
		return nil
	case "content":
		var content Content
		if err := content.parseFrom(dec, attrs); err != nil {
			return err
		}
		e.Content = &content
		return nil
	default:
		if prefix, local, ok := extensionName(name); ok {
			if e.Extensions == nil {
				e.Extensions = make(ExtensionMap)
			}
			return parseExtension(dec, attrs, prefix, local, e.Extensions)
		}
		return skipElement(dec)
	}
}

func (e *Entry) writeTo(w *xmlwrite.Writer) {
	w.Start("entry")
	e.Title.writeToNamed(w, "title")
	writeTextElement(w, "id", e.ID)
	writeTextElement(w, "updated", formatDateTime(e.Updated))
	for i := range e.Authors {
		e.Authors[i].writeToNamed(w, "author")
	}
	for i := range e.Categories {
		e.Categories[i].writeTo(w)
	}
	for i := range e.Contributors {
		e.Contributors[i].writeToNamed(w, "contributor")
	}
	for i := range e.Links {
		e.Links[i].writeTo(w)
	}
	if e.Published != nil {
		writeTextElement(w, "published", formatDateTime(*e.Published))
	}
	if e.Rights != nil {
		e.Rights.writeToNamed(w, "rights")
	}
	if e.Source != nil {
		e.Source.writeTo(w)
	}
	if e.Summary != nil {
		e.Summary.writeToNamed(w, "summary")
	}
	if e.Content != nil {
		e.Content.writeTo(w)
	}
	writeExtensionMap(w, e.Extensions)
	w.End("entry")
}
