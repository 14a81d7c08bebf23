package atom

import (
	"strings"

	"github.com/jacoelho/atom/pkg/xmltext"
)

// attribute is a decoded, namespace-qualified attribute.
type attribute struct {
	name  string // literal qualified form, e.g. "xml:base" or "xmlns:ext"
	value string
}

// decodeAttrs decodes every attribute of a start tag: keys keep their
// literal qualified form and values are strictly unescaped. A malformed
// byte sequence or reference in any attribute aborts the whole parse.
func decodeAttrs(tok xmltext.Token) ([]attribute, error) {
	if len(tok.Attrs) == 0 {
		return nil, nil
	}
	attrs := make([]attribute, 0, len(tok.Attrs))
	var buf []byte
	for _, raw := range tok.Attrs {
		if err := xmltext.ValidateChars(raw.Name); err != nil {
			return nil, wrapXML(err)
		}
		var err error
		buf, err = xmltext.AppendUnescapedAttr(buf[:0], raw.Value)
		if err != nil {
			return nil, wrapXML(err)
		}
		attrs = append(attrs, attribute{name: string(raw.Name), value: string(buf)})
	}
	return attrs, nil
}

func localName(qualified string) string {
	if i := strings.IndexByte(qualified, ':'); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

// extensionName splits an element name into its namespace prefix and local
// name. It reports false for names without a non-empty prefix and local
// part.
func extensionName(name string) (prefix, local string, ok bool) {
	i := strings.IndexByte(name, ':')
	if i <= 0 || i == len(name)-1 {
		return "", "", false
	}
	return name[:i], name[i+1:], true
}
