package atom

import (
	"io"
	"time"

	"github.com/jacoelho/atom/pkg/xmltext"
	"github.com/jacoelho/atom/pkg/xmlwrite"
)

// Source carries the metadata of the feed an entry was copied from.
type Source struct {
	// Title is a human-readable title for the source feed.
	Title Text
	// ID is a universally unique and permanent URI.
	ID string
	// Updated is the last time the source feed was modified in a
	// significant way.
	Updated time.Time
	// Authors are the authors of the source feed.
	Authors []Person
	// Categories are the categories that the source feed belongs to.
	Categories []Category
	// Contributors are the contributors to the source feed.
	Contributors []Person
	// Generator identifies the software used to generate the source feed.
	Generator *Generator
	// Icon is a small image which provides visual identification.
	Icon string
	// Links are the Web pages related to the source feed.
	Links []Link
	// Logo is a larger image which provides visual identification.
	Logo string
	// Rights holds information about rights held in and over the feed.
	Rights *Text
	// Subtitle is a human-readable description or subtitle.
	Subtitle *Text
}

func (s *Source) parseFrom(dec *xmltext.Decoder, _ []attribute) error {
	s.Updated = defaultDateTime()
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
			childAttrs, err := decodeAttrs(tok)
			if err != nil {
				return err
			}
			if err := s.parseChild(dec, string(tok.Name), childAttrs); err != nil {
				return err
			}

		case xmltext.KindEndElement:
			return nil
		}
	}
}

func (s *Source) parseChild(dec *xmltext.Decoder, name string, attrs []attribute) error {
	switch name {
	case "title":
		return s.Title.parseFrom(dec, attrs)
	case "id":
		value, _, err := readText(dec)
		s.ID = value
		return err
	case "updated":
		t, err := readDateTime(dec)
		if err != nil {
			return err
		}
		if t != nil {
			s.Updated = *t
		}
		return nil
	case "author":
		var person Person
		if err := person.parseFrom(dec, attrs); err != nil {
			return err
		}
		s.Authors = append(s.Authors, person)
		return nil
	case "category":
		var category Category
		if err := category.parseFrom(dec, attrs); err != nil {
			return err
		}
		s.Categories = append(s.Categories, category)
		return nil
	case "contributor":
		var person Person
		if err := person.parseFrom(dec, attrs); err != nil {
			return err
		}
		s.Contributors = append(s.Contributors, person)
		return nil
	case "generator":
		var generator Generator
		if err := generator.parseFrom(dec, attrs); err != nil {
			return err
		}
		s.Generator = &generator
		return nil
	case "icon":
		value, _, err := readText(dec)
		s.Icon = value
		return err
	case "link":
		var link Link
		if err := link.parseFrom(dec, attrs); err != nil {
			return err
		}
		s.Links = append(s.Links, link)
		return nil
	case "logo":
		value, _, err := readText(dec)
		s.Logo = value
		return err
	case "rights":
		var rights Text
		if err := rights.parseFrom(dec, attrs); err != nil {
			return err
		}
		s.Rights = &rights
		return nil
	case "subtitle":
		var subtitle Text
		if err := subtitle.parseFrom(dec, attrs); err != nil {
			return err
		}
		s.Subtitle = &subtitle
		return nil
	default:
		return skipElement(dec)
	}
}

func (s *Source) writeTo(w *xmlwrite.Writer) {
	w.Start("source")
	s.Title.writeToNamed(w, "title")
	writeTextElement(w, "id", s.ID)
	writeTextElement(w, "updated", formatDateTime(s.Updated))
	for i := range s.Authors {
		s.Authors[i].writeToNamed(w, "author")
	}
	for i := range s.Categories {
		s.Categories[i].writeTo(w)
	}
	for i := range s.Contributors {
		s.Contributors[i].writeToNamed(w, "contributor")
	}
	if s.Generator != nil {
		s.Generator.writeTo(w)
	}
	writeOptionalTextElement(w, "icon", s.Icon)
	for i := range s.Links {
		s.Links[i].writeTo(w)
	}
	writeOptionalTextElement(w, "logo", s.Logo)
	if s.Rights != nil {
		s.Rights.writeToNamed(w, "rights")
	}
	if s.Subtitle != nil {
		s.Subtitle.writeToNamed(w, "subtitle")
	}
	w.End("source")
}
