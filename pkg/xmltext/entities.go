package xmltext

import (
	"bytes"
	"unicode/utf8"
)

var standardEntities = map[string]string{
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"apos": "'",
	"quot": "\"",
}

// entityRef describes one reference starting at '&'.
type entityRef struct {
	consumed    int    // bytes consumed including '&' and ';'
	replacement string // resolved value when known or numeric
	known       bool
}

// parseEntityRef parses the reference starting at data[start] ('&').
// A syntactically malformed reference (empty or invalid name, missing
// semicolon, bad character reference) is an error; a well-formed reference
// with an unrecognized name is returned with known = false.
func parseEntityRef(data []byte, start int) (entityRef, error) {
	semi := bytes.IndexByte(data[start+1:], ';')
	if semi < 0 {
		return entityRef{}, errInvalidEntity
	}
	semi += start + 1
	if semi == start+1 {
		return entityRef{}, errInvalidEntity
	}
	ref := data[start+1 : semi]
	consumed := semi - start + 1
	if ref[0] == '#' {
		r, err := parseCharRef(ref)
		if err != nil {
			return entityRef{}, err
		}
		return entityRef{consumed: consumed, replacement: string(r), known: true}, nil
	}
	if err := validateName(ref); err != nil {
		return entityRef{}, errInvalidEntity
	}
	replacement, ok := standardEntities[string(ref)]
	if !ok {
		return entityRef{consumed: consumed}, nil
	}
	return entityRef{consumed: consumed, replacement: replacement, known: true}, nil
}

func parseCharRef(ref []byte) (rune, error) {
	if len(ref) < 2 {
		return 0, errInvalidCharRef
	}
	base := 10
	start := 1
	if ref[1] == 'x' || ref[1] == 'X' {
		base = 16
		start = 2
	}
	if start >= len(ref) {
		return 0, errInvalidCharRef
	}
	var value uint64
	for i := start; i < len(ref); i++ {
		b := ref[i]
		var digit byte
		switch {
		case b >= '0' && b <= '9':
			digit = b - '0'
		case base == 16 && b >= 'a' && b <= 'f':
			digit = b - 'a' + 10
		case base == 16 && b >= 'A' && b <= 'F':
			digit = b - 'A' + 10
		default:
			return 0, errInvalidCharRef
		}
		value = value*uint64(base) + uint64(digit)
		if value > utf8.MaxRune {
			return 0, errInvalidCharRef
		}
	}
	r := rune(value)
	if r == 0 || (r >= 0xD800 && r <= 0xDFFF) || !isValidXMLChar(r) {
		return 0, errInvalidCharRef
	}
	return r, nil
}

// AppendUnescapedAttr appends src to dst with entity and character
// references resolved. Unrecognized entity names are rejected, matching
// attribute-value semantics.
func AppendUnescapedAttr(dst, src []byte) ([]byte, error) {
	return appendUnescaped(dst, src, false)
}

// AppendUnescapedText appends src to dst with entity and character
// references resolved. A well-formed reference with an unrecognized name is
// kept verbatim as "&name;".
func AppendUnescapedText(dst, src []byte) ([]byte, error) {
	return appendUnescaped(dst, src, true)
}

func appendUnescaped(dst, src []byte, keepUnknown bool) ([]byte, error) {
	for i := 0; i < len(src); {
		if src[i] != '&' {
			size, err := validCharAt(src, i)
			if err != nil {
				return dst, err
			}
			dst = append(dst, src[i:i+size]...)
			i += size
			continue
		}
		ref, err := parseEntityRef(src, i)
		if err != nil {
			return dst, err
		}
		if !ref.known {
			if !keepUnknown {
				return dst, errInvalidEntity
			}
			dst = append(dst, src[i:i+ref.consumed]...)
		} else {
			dst = append(dst, ref.replacement...)
		}
		i += ref.consumed
	}
	return dst, nil
}

// ValidateText checks that src is valid XML character data: well-formed
// UTF-8, valid XML characters and syntactically well-formed entity and
// character references. Nothing is rewritten; unrecognized reference names
// are accepted.
func ValidateText(src []byte) error {
	for i := 0; i < len(src); {
		if src[i] == '&' {
			ref, err := parseEntityRef(src, i)
			if err != nil {
				return err
			}
			i += ref.consumed
			continue
		}
		size, err := validCharAt(src, i)
		if err != nil {
			return err
		}
		i += size
	}
	return nil
}

func validCharAt(src []byte, i int) (int, error) {
	if src[i] < utf8.RuneSelf {
		if !isValidXMLChar(rune(src[i])) {
			return 0, errInvalidChar
		}
		return 1, nil
	}
	r, size := utf8.DecodeRune(src[i:])
	if r == utf8.RuneError && size == 1 {
		return 0, errInvalidChar
	}
	if !isValidXMLChar(r) {
		return 0, errInvalidChar
	}
	return size, nil
}
