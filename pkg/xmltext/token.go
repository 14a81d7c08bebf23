package xmltext

// Attr holds one attribute of a start element. Value is the raw quoted
// content with entity references unresolved; callers decode on demand with
// AppendUnescapedAttr.
type Attr struct {
	Name  []byte
	Value []byte
}

// Token is a view of the next XML token. Name, Raw, Text and attribute
// slices alias the decoder's internal buffer and are valid until the next
// ReadToken call.
type Token struct {
	Kind Kind

	// Name is the qualified element name for start, empty and end tokens.
	Name []byte

	// Raw is the verbatim tag interior for start and empty tokens: the
	// name followed by the attributes exactly as written in the input,
	// without the surrounding angle brackets or the closing slash.
	Raw []byte

	// Attrs holds the attributes of a start or empty token.
	Attrs []Attr

	// Text is the payload of character data, CDATA, comment, processing
	// instruction and directive tokens. Entity references in character
	// data are unresolved.
	Text []byte
}
