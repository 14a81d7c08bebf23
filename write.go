package atom

import "github.com/jacoelho/atom/pkg/xmlwrite"

func writeTextElement(w *xmlwrite.Writer, name, value string) {
	w.Start(name)
	w.Text(value)
	w.End(name)
}

func writeOptionalTextElement(w *xmlwrite.Writer, name, value string) {
	if value != "" {
		writeTextElement(w, name, value)
	}
}

func appendOptionalAttr(attrs []xmlwrite.Attr, name, value string) []xmlwrite.Attr {
	if value == "" {
		return attrs
	}
	return append(attrs, xmlwrite.Attr{Name: name, Value: value})
}
