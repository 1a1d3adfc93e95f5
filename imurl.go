package imurl

//go:generate go tool errtrace -w .

import (
	"net/url"

	"braces.dev/errtrace"

	"github.com/ghettovoice/imurl/internal/grammar"
	"github.com/ghettovoice/imurl/internal/weburl"
)

// URL is an immutable absolute URL.
//
// The zero value is an empty URL: accessors return zero values and builders fail.
// URL values may be copied freely, copies share the parsed structure which is never modified.
// URLs are not comparable with ==, use [URL.Equal] or [URL.Compare].
type URL struct {
	_   [0]func()
	raw string
	u   *weburl.URL
}

// Parse parses an absolute URL. The input string is kept verbatim as the URL string.
func Parse(s string) (URL, error) {
	u, err := weburl.Parse(s)
	if err != nil {
		return URL{}, errtrace.Wrap(newParseErr(err))
	}
	return URL{raw: s, u: u}, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(s string) URL {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// FromStd converts a [net/url.URL] to URL.
func FromStd(u *url.URL) (URL, error) {
	if u == nil {
		return URL{}, errtrace.Wrap(newParseErr(grammar.ErrEmptyInput))
	}
	return errtrace.Wrap2(Parse(u.String()))
}

// Std returns the URL as a new [net/url.URL].
// The result is a copy, modifying it does not affect u.
func (u URL) Std() *url.URL {
	if u.u == nil {
		return nil
	}
	return u.u.Std()
}

// IsZero reports whether u is the zero URL.
func (u URL) IsZero() bool { return u.u == nil }

// String returns the URL string: the parsed input for URLs built by [Parse],
// the canonical serialization for URLs returned by builders.
func (u URL) String() string { return u.raw }

// Scheme returns the lowercase scheme.
func (u URL) Scheme() string {
	if u.u == nil {
		return ""
	}
	return u.u.Scheme()
}

// Username returns the decoded username or an empty string.
func (u URL) Username() string {
	if u.u == nil {
		return ""
	}
	return u.u.Username()
}

// Password returns the decoded password if it is present.
func (u URL) Password() (string, bool) {
	if u.u == nil {
		return "", false
	}
	return u.u.Password()
}

// Host returns the host without port.
// IPv6 hosts are returned in brackets, e.g. "[::1]".
// Hosts of special URLs are ASCII lowercase, non-ASCII hosts are kept as parsed
// until [URL.WithHost] maps them with IDNA.
func (u URL) Host() (string, bool) {
	if u.u == nil {
		return "", false
	}
	return u.u.Host()
}

// Port returns the port if it is present in the URL.
func (u URL) Port() (uint16, bool) {
	if u.u == nil {
		return 0, false
	}
	return u.u.Port()
}

// PortOrDefault returns the port of the URL or the default port of its scheme.
func (u URL) PortOrDefault() (uint16, bool) {
	if p, ok := u.Port(); ok {
		return p, true
	}
	return grammar.DefaultPort(u.Scheme())
}

// Path returns the escaped path. For cannot-be-a-base URLs this is the opaque path,
// e.g. "user@example.com" for "mailto:user@example.com".
func (u URL) Path() string {
	if u.u == nil {
		return ""
	}
	return u.u.Path()
}

// PathSegments returns the decoded path segments.
// It returns false for cannot-be-a-base URLs.
func (u URL) PathSegments() ([]string, bool) {
	if u.u == nil {
		return nil, false
	}
	return u.u.PathSegments()
}

// Query returns the escaped query without "?".
func (u URL) Query() (string, bool) {
	if u.u == nil {
		return "", false
	}
	return u.u.Query()
}

// Fragment returns the escaped fragment without "#".
// A trailing "#" with nothing after it is reported as ("", true).
func (u URL) Fragment() (string, bool) {
	if u.u == nil {
		return "", false
	}
	return u.u.Fragment()
}

// CannotBeABase reports whether the URL has an opaque path and no hierarchy.
func (u URL) CannotBeABase() bool { return u.u != nil && u.u.CannotBeABase() }
