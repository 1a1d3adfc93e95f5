package grammar

import (
	"net/netip"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
	"golang.org/x/net/idna"
)

// ParseHost validates host and returns its serialized form.
//
// IPv6 literals must be enclosed in brackets and are returned in compressed form.
// Hosts of special URLs are percent-decoded and mapped with IDNA lookup rules,
// so the result is lowercase ASCII. Opaque hosts of other URLs are only checked
// for forbidden code points and get non-ASCII bytes percent-encoded.
func ParseHost(host string, special bool) (string, error) {
	if host == "" {
		return "", errtrace.Wrap(newInvalidHostErr("empty host"))
	}

	if host[0] == '[' {
		if host[len(host)-1] != ']' {
			return "", errtrace.Wrap(newInvalidHostErr("unterminated IPv6 literal %q", host))
		}
		addr, err := netip.ParseAddr(host[1 : len(host)-1])
		if err != nil || !addr.Is6() || addr.Zone() != "" {
			return "", errtrace.Wrap(newInvalidHostErr("invalid IPv6 literal %q", host))
		}
		return "[" + addr.String() + "]", nil
	}

	if !special {
		if i := strings.IndexFunc(host, isForbiddenHostRune); i >= 0 {
			return "", errtrace.Wrap(newInvalidHostErr("forbidden code point %q in %q", host[i], host))
		}
		return Escape(host, ShouldEscapeC0), nil
	}

	domain := Unescape(host)
	if !utf8.ValidString(domain) {
		return "", errtrace.Wrap(newInvalidHostErr("host %q is not valid UTF-8", host))
	}
	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return "", errtrace.Wrap(newInvalidHostErr(err))
	}
	if ascii == "" {
		return "", errtrace.Wrap(newInvalidHostErr("empty host"))
	}
	for i := 0; i < len(ascii); i++ {
		if isForbiddenDomainByte(ascii[i]) {
			return "", errtrace.Wrap(newInvalidHostErr("forbidden code point %q in %q", ascii[i], host))
		}
	}
	if addr, err := netip.ParseAddr(ascii); err == nil && addr.Is4() {
		return addr.String(), nil
	}
	return ascii, nil
}

func isForbiddenHostRune(r rune) bool {
	return r < utf8.RuneSelf && isForbiddenHostByte(byte(r))
}

func isForbiddenHostByte(c byte) bool {
	switch c {
	case 0x00, '\t', '\n', '\r', ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|':
		return true
	}
	return false
}

func isForbiddenDomainByte(c byte) bool {
	return isForbiddenHostByte(c) || c < 0x20 || c == '%' || c == 0x7F
}
