package atom

import (
	"io"
	"strings"
	"time"

	"github.com/jacoelho/atom/pkg/xmltext"
	"github.com/jacoelho/atom/pkg/xmlwrite"
)

const atomNamespace = "http://www.w3.org/2005/Atom"

// Feed represents an Atom feed document.
type Feed struct {
	// Title is a human-readable title for the feed.
	Title Text
	// ID is a universally unique and permanent URI.
	ID string
	// Updated is the last time the feed was modified in a significant way.
	Updated time.Time
	// Authors are the authors of the feed.
	Authors []Person
	// Categories are the categories that the feed belongs to.
	Categories []Category
	// Contributors are the contributors to the feed.
	Contributors []Person
	// Generator identifies the software used to generate the feed.
	Generator *Generator
	// Icon is a small image which provides visual identification.
	Icon string
	// Links are the Web pages related to the feed.
	Links []Link
	// Logo is a larger image which provides visual identification.
	Logo string
	// Rights holds information about rights held in and over the feed.
	Rights *Text
	// Subtitle is a human-readable description or subtitle.
	Subtitle *Text
	// Entries are the items contained in the feed.
	Entries []Entry
	// Extensions holds the feed's extension elements, keyed by namespace
	// prefix and then by local name.
	Extensions ExtensionMap
	// Namespaces maps declared namespace prefixes to their URIs.
	Namespaces map[string]string
	// Base is the base URI for resolving relative references, if declared.
	Base string
	// Lang is the natural language of the feed, if declared.
	Lang string
}

// ReadFrom reads an Atom feed from r. The document root must be a feed
// element; any other root yields ErrInvalidStartTag, and input ending before
// a root element yields ErrUnexpectedEOF.
func ReadFrom(r io.Reader) (*Feed, error) {
	dec := xmltext.NewDecoder(r)

	for {
		tok, err := dec.ReadToken()
		if err == io.EOF {
			return nil, ErrUnexpectedEOF
		}
		if err != nil {
			return nil, wrapXML(err)
		}
		if tok.Kind != xmltext.KindStartElement {
			continue
		}
		if string(tok.Name) != "feed" {
			return nil, ErrInvalidStartTag
		}
		attrs, err := decodeAttrs(tok)
		if err != nil {
			return nil, err
		}

		feed := &Feed{Updated: defaultDateTime()}
		if err := feed.parseFrom(dec, attrs); err != nil {
			return nil, err
		}
		return feed, nil
	}
}

// ParseString reads an Atom feed from a string.
func ParseString(s string) (*Feed, error) {
	return ReadFrom(strings.NewReader(s))
}

func (f *Feed) parseFrom(dec *xmltext.Decoder, attrs []attribute) error {
	for _, attr := range attrs {
		switch {
		case attr.name == "xml:base":
			f.Base = attr.value
		case attr.name == "xml:lang":
			f.Lang = attr.value
		case attr.name == "xmlns:dc":
			// The dc prefix is written by some producers alongside the
			// default namespace without carrying extension content.
		case strings.HasPrefix(attr.name, "xmlns:"):
			if f.Namespaces == nil {
				f.Namespaces = make(map[string]string)
			}
			f.Namespaces[attr.name[len("xmlns:"):]] = attr.value
		}
	}

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
			if err := f.parseChild(dec, name, childAttrs); err != nil {
				return err
			}

		case xmltext.KindEndElement:
			return nil
		}
	}
}

func (f *Feed) parseChild(dec *xmltext.Decoder, name string, attrs []attribute) error {
	switch name {
	case "title":
		return f.Title.parseFrom(dec, attrs)
	case "id":
		value, _, err := readText(dec)
		f.ID = value
		return err
	case "updated":
		t, err := readDateTime(dec)
		if err != nil {
			return err
		}
		if t != nil {
			f.Updated = *t
		}
		return nil
	case "author":
		var person Person
		if err := person.parseFrom(dec, attrs); err != nil {
			return err
		}
		f.Authors = append(f.Authors, person)
		return nil
	case "category":
		var category Category
		if err := category.parseFrom(dec, attrs); err != nil {
			return err
		}
		f.Categories = append(f.Categories, category)
		return nil
	case "contributor":
		var person Person
		if err := person.parseFrom(dec, attrs); err != nil {
			return err
		}
		f.Contributors = append(f.Contributors, person)
		return nil
	case "generator":
		var generator Generator
		if err := generator.parseFrom(dec, attrs); err != nil {
			return err
		}
		f.Generator = &generator
		return nil
	case "icon":
		value, _, err := readText(dec)
		f.Icon = value
		return err
	case "link":
		var link Link
		if err := link.parseFrom(dec, attrs); err != nil {
			return err
		}
		f.Links = append(f.Links, link)
		return nil
	case "logo":
		value, _, err := readText(dec)
		f.Logo = value
		return err
	case "rights":
		var rights Text
		if err := rights.parseFrom(dec, attrs); err != nil {
			return err
		}
		f.Rights = &rights
		return nil
	case "subtitle":
		var subtitle Text
		if err := subtitle.parseFrom(dec, attrs); err != nil {
			return err
		}
		f.Subtitle = &subtitle
		return nil
	case "entry":
		var entry Entry
		if err := entry.parseFrom(dec, attrs); err != nil {
			return err
		}
		f.Entries = append(f.Entries, entry)
		return nil
	default:
		if prefix, local, ok := extensionName(name); ok {
			if f.Extensions == nil {
				f.Extensions = make(ExtensionMap)
			}
			return parseExtension(dec, attrs, prefix, local, f.Extensions)
		}
		return skipElement(dec)
	}
}

// WriteTo writes the feed to w as an XML document.
func (f *Feed) WriteTo(w io.Writer) error {
	xw := xmlwrite.NewWriter(w)
	xw.Decl()
	f.writeTo(xw)
	return xw.Flush()
}

// String renders the feed as an XML document.
func (f *Feed) String() string {
	var sb strings.Builder
	// strings.Builder writes cannot fail.
	_ = f.WriteTo(&sb)
	return sb.String()
}

func (f *Feed) writeTo(w *xmlwrite.Writer) {
	attrs := []xmlwrite.Attr{{Name: "xmlns", Value: atomNamespace}}
	for _, prefix := range sortedKeys(f.Namespaces) {
		attrs = append(attrs, xmlwrite.Attr{Name: "xmlns:" + prefix, Value: f.Namespaces[prefix]})
	}
	attrs = appendOptionalAttr(attrs, "xml:base", f.Base)
	attrs = appendOptionalAttr(attrs, "xml:lang", f.Lang)
	w.Start("feed", attrs...)

	f.Title.writeToNamed(w, "title")
	writeTextElement(w, "id", f.ID)
	writeTextElement(w, "updated", formatDateTime(f.Updated))
	for i := range f.Authors {
		f.Authors[i].writeToNamed(w, "author")
	}
	for i := range f.Categories {
		f.Categories[i].writeTo(w)
	}
	for i := range f.Contributors {
		f.Contributors[i].writeToNamed(w, "contributor")
	}
	if f.Generator != nil {
		f.Generator.writeTo(w)
	}
	writeOptionalTextElement(w, "icon", f.Icon)
	for i := range f.Links {
		f.Links[i].writeTo(w)
	}
	writeOptionalTextElement(w, "logo", f.Logo)
	if f.Rights != nil {
		f.Rights.writeToNamed(w, "rights")
	}
	if f.Subtitle != nil {
		f.Subtitle.writeToNamed(w, "subtitle")
	}
	for i := range f.Entries {
		f.Entries[i].writeTo(w)
	}
	writeExtensionMap(w, f.Extensions)
	w.End("feed")
}
