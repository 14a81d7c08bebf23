package xmltext

// AppendEscaped appends src to dst with the five XML special characters
// replaced by their predefined entity references.
func AppendEscaped(dst, src []byte) []byte {
	for _, b := range src {
		switch b {
		case '&':
			dst = append(dst, "&amp;"...)
		case '<':
			dst = append(dst, "&lt;"...)
		case '>':
			dst = append(dst, "&gt;"...)
		case '"':
			dst = append(dst, "&quot;"...)
		case '\'':
			dst = append(dst, "&apos;"...)
		default:
			dst = append(dst, b)
		}
	}
	return dst
}
