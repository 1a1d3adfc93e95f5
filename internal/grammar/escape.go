package grammar

import "bytes"

// Unescape decodes every "% HEXDIG HEXDIG" sequence of s.
// Malformed sequences are kept as is.
func Unescape[T ~string | ~[]byte](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape replaces each byte matched by shouldEscape with "% HEXDIG HEXDIG".
// Already escaped sequences are kept, so escaping is idempotent.
func Escape[T ~string | ~[]byte](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
		case shouldEscape(s[i]):
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// Percent-encode sets of the WHATWG URL standard.

// ShouldEscapeC0 matches C0 controls and every non-ASCII byte.
func ShouldEscapeC0(c byte) bool { return c < 0x20 || c > 0x7E }

// ShouldEscapeFragment matches the fragment percent-encode set.
func ShouldEscapeFragment(c byte) bool {
	switch c {
	case ' ', '"', '<', '>', '`':
		return true
	}
	return ShouldEscapeC0(c)
}

// ShouldEscapeQuery matches the query percent-encode set.
func ShouldEscapeQuery(c byte) bool {
	switch c {
	case ' ', '"', '#', '<', '>':
		return true
	}
	return ShouldEscapeC0(c)
}

// ShouldEscapeSpecialQuery matches the special-query percent-encode set.
func ShouldEscapeSpecialQuery(c byte) bool {
	return c == '\'' || ShouldEscapeQuery(c)
}

// ShouldEscapePath matches the path percent-encode set.
func ShouldEscapePath(c byte) bool {
	switch c {
	case '?', '^', '`', '{', '}':
		return true
	}
	return ShouldEscapeQuery(c)
}

// ShouldEscapeOpaquePath matches bytes that can't appear literally in an opaque path.
func ShouldEscapeOpaquePath(c byte) bool {
	return c == '?' || c == '#' || ShouldEscapeC0(c)
}
