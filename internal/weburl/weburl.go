// Package weburl implements the structured URL used behind [imurl.URL]:
// parsing on top of [net/url], serialization and setters that follow
// the WHATWG URL standard rules for which edits are allowed.
//
// A *URL is mutable. Callers that share it must clone it before editing.
package weburl

//go:generate go tool errtrace -w .

import (
	"net/url"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/imurl/internal/errorutil"
	"github.com/ghettovoice/imurl/internal/grammar"
	"github.com/ghettovoice/imurl/internal/util"
)

const (
	// ErrSchemeTransition is returned when a scheme change would alter the URL shape,
	// e.g. switching between special and non-special schemes.
	ErrSchemeTransition errorutil.Error = "scheme transition not allowed"
	// ErrNoAuthority is returned when credentials or a port are set on a URL
	// that has no host to attach them to.
	ErrNoAuthority errorutil.Error = "url has no authority"
	// ErrCannotBeABase is returned when a hierarchical edit is applied to an opaque URL
	// like "mailto:user@example.com".
	ErrCannotBeABase errorutil.Error = "cannot-be-a-base url"
)

// URL is a parsed absolute URL.
type URL struct {
	url url.URL
	// opaque is set when nothing after "scheme:" starts with "/", e.g. "mailto:" or "mailto:?x".
	opaque bool
	// forceFragment appends an empty fragment ("#") like url.URL.ForceQuery does for the query.
	forceFragment bool
}

// Parse parses an absolute URL.
//
// Special URLs (http, https, ws, wss, ftp) must have a host,
// ports must fit into 16 bits.
func Parse(s string) (*URL, error) {
	if s == "" {
		return nil, errtrace.Wrap(grammar.ErrEmptyInput)
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, err))
	}
	if u.Scheme == "" {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMissingScheme, "%q", s))
	}
	if grammar.RequiresHost(u.Scheme) && u.Hostname() == "" {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrInvalidHost, "%s URL requires a host", u.Scheme))
	}
	if p := u.Port(); p != "" {
		if _, err := strconv.ParseUint(p, 10, 16); err != nil {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrInvalidPort, "port %s out of range", p))
		}
	}
	if grammar.IsSpecial(u.Scheme) {
		u.Host = util.LCase(u.Host)
	}

	rest := s[strings.IndexByte(s, ':')+1:]
	return &URL{
		url:           *u,
		opaque:        !strings.HasPrefix(rest, "/"),
		forceFragment: strings.IndexByte(s, '#') == len(s)-1,
	}, nil
}

// Clone returns a deep copy of the URL.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	u2 := *u
	if u.url.User != nil {
		if pwd, ok := u.url.User.Password(); ok {
			u2.url.User = url.UserPassword(u.url.User.Username(), pwd)
		} else {
			u2.url.User = url.User(u.url.User.Username())
		}
	}
	return &u2
}

// String returns the canonical serialization of the URL.
func (u *URL) String() string {
	if u == nil {
		return ""
	}
	if u.forceFragment && u.url.Fragment == "" {
		return u.url.String() + "#"
	}
	return u.url.String()
}

// Std returns a copy of the URL as [net/url.URL].
func (u *URL) Std() *url.URL {
	if u == nil {
		return nil
	}
	return &u.Clone().url
}

func (u *URL) Scheme() string { return u.url.Scheme }

func (u *URL) Username() string {
	if u.url.User == nil {
		return ""
	}
	return u.url.User.Username()
}

func (u *URL) Password() (string, bool) {
	if u.url.User == nil {
		return "", false
	}
	return u.url.User.Password()
}

// Host returns the host without port. IPv6 literals keep their brackets.
func (u *URL) Host() (string, bool) {
	h := u.hostname()
	return h, h != ""
}

func (u *URL) hostname() string {
	h := u.url.Hostname()
	if strings.Contains(h, ":") {
		return "[" + h + "]"
	}
	return h
}

// Port returns the explicit port of the URL.
func (u *URL) Port() (uint16, bool) {
	p := u.url.Port()
	if p == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(p, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// Path returns the escaped path, or the opaque path of a cannot-be-a-base URL.
func (u *URL) Path() string {
	if u.CannotBeABase() {
		return u.url.Opaque
	}
	return u.escapedPath()
}

// escapedPath strips the "/." prefix that keeps "//" paths of URLs without authority
// from being read as a host.
func (u *URL) escapedPath() string {
	p := u.url.EscapedPath()
	if u.noAuthority() && strings.HasPrefix(p, "/.//") {
		return p[2:]
	}
	return p
}

// noAuthority reports whether the URL is serialized without the "//" authority part.
func (u *URL) noAuthority() bool {
	return u.url.OmitHost && u.url.Host == "" && u.url.User == nil
}

// PathSegments returns the decoded "/"-separated segments of the path.
// It returns false for cannot-be-a-base URLs.
func (u *URL) PathSegments() ([]string, bool) {
	if u.CannotBeABase() {
		return nil, false
	}
	segs := strings.Split(strings.TrimPrefix(u.escapedPath(), "/"), "/")
	for i, seg := range segs {
		segs[i] = grammar.Unescape(seg)
	}
	return segs, true
}

func (u *URL) Query() (string, bool) {
	return u.url.RawQuery, u.url.RawQuery != "" || u.url.ForceQuery
}

// Fragment returns the escaped fragment. A bare trailing "#" is reported as ("", true).
func (u *URL) Fragment() (string, bool) {
	return u.url.EscapedFragment(), u.url.Fragment != "" || u.forceFragment
}

// CannotBeABase reports whether the URL has an opaque path, like "mailto:user@example.com" or "mailto:".
func (u *URL) CannotBeABase() bool { return u.opaque }

func (u *URL) special() bool { return grammar.IsSpecial(u.url.Scheme) }
