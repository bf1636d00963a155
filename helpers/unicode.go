package helpers

import (
	"unicode/utf8"
)

// UnescapeUnicode rewrites \uXXXX escape sequences, including surrogate
// pairs, into plain UTF-8. Tweet payloads are unicode-heavy and the
// escaped form makes logged bodies unreadable.
func UnescapeUnicode(data []byte) []byte {
	out := make([]byte, 0, len(data))

	for i := 0; i < len(data); {
		if data[i] != '\\' {
			start := i
			for i < len(data) && data[i] != '\\' {
				i++
			}
			out = append(out, data[start:i]...)
			continue
		}

		if isUnicodeEscape(data, i) {
			r, consumed := decodeUnicodeEscape(data[i:])
			if r >= 0 {
				out = utf8.AppendRune(out, r)
				i += consumed
				continue
			}
		}

		out = append(out, data[i])
		i++
	}

	return out
}

func isUnicodeEscape(data []byte, i int) bool {
	return i+5 < len(data) && data[i] == '\\' && data[i+1] == 'u'
}

// decodeUnicodeEscape reads a \uXXXX sequence and, when the value opens a
// surrogate pair, the adjacent low half as well. Returns the decoded rune
// and the number of consumed bytes, or -1 on a malformed sequence.
func decodeUnicodeEscape(data []byte) (rune, int) {
	v1, ok := parseHex4(data[2:6])
	if !ok {
		return -1, 1
	}

	if 0xD800 <= v1 && v1 <= 0xDBFF && isUnicodeEscape(data, 6) {
		v2, ok2 := parseHex4(data[8:12])
		if ok2 && 0xDC00 <= v2 && v2 <= 0xDFFF {
			r := 0x10000 + ((uint32(v1)-0xD800)<<10 | (uint32(v2) - 0xDC00))
			return rune(r), 12
		}
	}

	return rune(v1), 6
}

func parseHex4(b []byte) (uint16, bool) {
	v := uint16(0)
	for _, c := range b {
		h, ok := hexValue(c)
		if !ok {
			return 0, false
		}
		v = v<<4 | h
	}
	return v, true
}

func hexValue(b byte) (uint16, bool) {
	switch {
	case '0' <= b && b <= '9':
		return uint16(b - '0'), true
	case 'a' <= b && b <= 'f':
		return uint16(b - 'a' + 10), true
	case 'A' <= b && b <= 'F':
		return uint16(b - 'A' + 10), true
	default:
		return 0, false
	}
}
