package atom

import (
	"io"
	"sort"
	"strings"

	"github.com/jacoelho/atom/pkg/xmltext"
	"github.com/jacoelho/atom/pkg/xmlwrite"
)

// Extension is a namespaced element outside the core Atom vocabulary,
// materialized as a generic labelled tree.
type Extension struct {
	// Name is the qualified name of the element, e.g. "ext:title".
	Name string

	// Value is the trimmed concatenated text content; empty means none.
	Value string

	// Attrs holds the element attributes keyed by local name.
	Attrs map[string]string

	// Children groups child elements by local name, preserving document
	// order within each group.
	Children map[string][]Extension
}

// ExtensionMap maps namespace prefixes to local names to extension
// elements.
type ExtensionMap map[string]map[string][]Extension

// parseExtension parses the extension element whose start tag was just
// consumed and files it under (prefix, local) in the map.
func parseExtension(dec *xmltext.Decoder, attrs []attribute, prefix, local string, extensions ExtensionMap) error {
	ext, err := parseExtensionElement(dec, attrs)
	if err != nil {
		return err
	}
	byLocal, ok := extensions[prefix]
	if !ok {
		byLocal = make(map[string][]Extension)
		extensions[prefix] = byLocal
	}
	byLocal[local] = append(byLocal[local], ext)
	return nil
}

func parseExtensionElement(dec *xmltext.Decoder, attrs []attribute) (Extension, error) {
	ext := Extension{
		Attrs:    make(map[string]string),
		Children: make(map[string][]Extension),
	}
	for _, attr := range attrs {
		ext.Attrs[localName(attr.name)] = attr.value
	}

	var text []byte
	for {
		tok, err := dec.ReadToken()
		if err == io.EOF {
			return Extension{}, ErrUnexpectedEOF
		}
		if err != nil {
			return Extension{}, wrapXML(err)
		}

		switch tok.Kind {
		case xmltext.KindStartElement:
			childAttrs, err := decodeAttrs(tok)
			if err != nil {
				return Extension{}, err
			}
			name := localName(string(tok.Name))
			child, err := parseExtensionElement(dec, childAttrs)
			if err != nil {
				return Extension{}, err
			}
			ext.Children[name] = append(ext.Children[name], child)

		case xmltext.KindCharData:
			text, err = xmltext.AppendUnescapedText(text, tok.Text)
			if err != nil {
				return Extension{}, wrapXML(err)
			}

		case xmltext.KindCDATA:
			if err := xmltext.ValidateChars(tok.Text); err != nil {
				return Extension{}, wrapXML(err)
			}
			text = append(text, tok.Text...)

		case xmltext.KindEndElement:
			ext.Name = string(tok.Name)
			ext.Value = strings.TrimSpace(string(text))
			return ext, nil
		}
	}
}

func (e *Extension) writeTo(w *xmlwrite.Writer) {
	attrs := make([]xmlwrite.Attr, 0, len(e.Attrs))
	for _, name := range sortedKeys(e.Attrs) {
		attrs = append(attrs, xmlwrite.Attr{Name: name, Value: e.Attrs[name]})
	}
	w.Start(e.Name, attrs...)
	if e.Value != "" {
		w.Text(e.Value)
	}
	for _, name := range sortedKeys(e.Children) {
		children := e.Children[name]
		for i := range children {
			children[i].writeTo(w)
		}
	}
	w.End(e.Name)
}

// writeExtensionMap emits every extension grouped by namespace prefix and
// local name in sorted key order, matching the ordered-map semantics of the
// in-memory model.
func writeExtensionMap(w *xmlwrite.Writer, extensions ExtensionMap) {
	prefixes := make([]string, 0, len(extensions))
	for prefix := range extensions {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		byLocal := extensions[prefix]
		for _, local := range sortedKeys(byLocal) {
			for i := range byLocal[local] {
				byLocal[local][i].writeTo(w)
			}
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
