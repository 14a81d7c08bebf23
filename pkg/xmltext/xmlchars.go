package xmltext

import "unicode/utf8"

// isValidXMLChar reports whether r is a valid XML 1.0 character.
// Per XML 1.0 spec section 2.2, Char excludes most control codes.
func isValidXMLChar(r rune) bool {
	switch {
	case r == 0x9 || r == 0xA || r == 0xD:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	default:
		return false
	}
}

// ValidateChars checks that data is well-formed UTF-8 consisting only of
// valid XML 1.0 characters.
func ValidateChars(data []byte) error {
	for len(data) > 0 {
		if data[0] < utf8.RuneSelf {
			if !isValidXMLChar(rune(data[0])) {
				return errInvalidChar
			}
			data = data[1:]
			continue
		}
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return errInvalidChar
		}
		if !isValidXMLChar(r) {
			return errInvalidChar
		}
		data = data[size:]
	}
	return nil
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
