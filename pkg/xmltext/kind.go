package xmltext

// Kind identifies the syntactic kind of an XML token.
type Kind byte

const (
	KindNone Kind = iota
	KindStartElement
	KindEndElement
	KindEmptyElement
	KindCharData
	KindCDATA
	KindComment
	KindPI
	KindDirective
)

// String returns a stable name for the kind, suitable for debugging.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindStartElement:
		return "StartElement"
	case KindEndElement:
		return "EndElement"
	case KindEmptyElement:
		return "EmptyElement"
	case KindCharData:
		return "CharData"
	case KindCDATA:
		return "CDATA"
	case KindComment:
		return "Comment"
	case KindPI:
		return "PI"
	case KindDirective:
		return "Directive"
	default:
		return "Unknown"
	}
}
