package weburl

import (
	"net/url"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/imurl/internal/errorutil"
	"github.com/ghettovoice/imurl/internal/grammar"
	"github.com/ghettovoice/imurl/internal/util"
)

// SetPath replaces the path.
// Existing escapes in p are kept, bytes outside of the path set are escaped.
// Paths of hierarchical URLs always start with "/".
func (u *URL) SetPath(p string) {
	if u.CannotBeABase() {
		op := grammar.Escape(p, grammar.ShouldEscapeOpaquePath)
		// a leading "/" would turn the URL hierarchical
		if strings.HasPrefix(op, "/") {
			op = "%2F" + op[1:]
		}
		u.url.Opaque = op
		return
	}
	if p != "" && p[0] != '/' {
		p = "/" + p
	}
	if p == "" && u.special() {
		p = "/"
	}
	u.setEscapedPath(grammar.Escape(p, grammar.ShouldEscapePath))
}

// setEscapedPath sets a hierarchical path.
// Without authority an empty path becomes "/" and a path starting with "//" gets the "/." prefix,
// so the URL keeps its shape when serialized and parsed again.
func (u *URL) setEscapedPath(p string) {
	if u.noAuthority() {
		switch {
		case p == "":
			p = "/"
		case strings.HasPrefix(p, "//"):
			p = "/." + p
		}
	}
	dec, err := url.PathUnescape(p)
	if err != nil {
		u.url.Path, u.url.RawPath = p, ""
		return
	}
	u.url.Path, u.url.RawPath = dec, p
}

// special URLs never serialize an empty path in front of a query or fragment
func (u *URL) ensureRootPath() {
	if u.special() && !u.CannotBeABase() && u.url.Path == "" {
		u.url.Path, u.url.RawPath = "/", ""
	}
}

// SetQuery replaces the query. An empty q keeps the "?" delimiter.
func (u *URL) SetQuery(q string) {
	if u.special() {
		u.url.RawQuery = grammar.Escape(q, grammar.ShouldEscapeSpecialQuery)
	} else {
		u.url.RawQuery = grammar.Escape(q, grammar.ShouldEscapeQuery)
	}
	u.url.ForceQuery = q == ""
	u.ensureRootPath()
}

// ClearQuery removes the query with its delimiter.
func (u *URL) ClearQuery() {
	u.url.RawQuery = ""
	u.url.ForceQuery = false
}

// SetFragment replaces the fragment. An empty f keeps the "#" delimiter.
func (u *URL) SetFragment(f string) {
	f = grammar.Escape(f, grammar.ShouldEscapeFragment)
	dec, err := url.PathUnescape(f)
	if err != nil {
		u.url.Fragment, u.url.RawFragment = f, ""
	} else {
		u.url.Fragment, u.url.RawFragment = dec, f
	}
	u.forceFragment = f == ""
	u.ensureRootPath()
}

// ClearFragment removes the fragment with its delimiter.
func (u *URL) ClearFragment() {
	u.url.Fragment, u.url.RawFragment = "", ""
	u.forceFragment = false
}

// SetScheme replaces the scheme.
//
// It fails if scheme is not a valid RFC 3986 scheme, when switching between
// special and non-special schemes, when switching to "file" a URL with credentials
// or a port, or when switching from "file" a URL without a host.
// A port equal to the default port of the new scheme is removed.
func (u *URL) SetScheme(scheme string) error {
	if !grammar.IsScheme(scheme) {
		return errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrInvalidScheme, "%q", scheme))
	}

	scheme = util.LCase(scheme)
	cur := u.url.Scheme
	if grammar.IsSpecial(cur) != grammar.IsSpecial(scheme) {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrSchemeTransition, "%s to %s", cur, scheme))
	}
	if scheme == "file" && (u.url.User != nil || u.url.Port() != "") {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrSchemeTransition, "file URL can't have credentials or port"))
	}
	if cur == "file" && u.url.Hostname() == "" {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrSchemeTransition, "%s URL requires a host", scheme))
	}

	u.url.Scheme = scheme
	if p, ok := u.Port(); ok {
		if dp, ok := grammar.DefaultPort(scheme); ok && dp == p {
			u.url.Host = u.hostname()
		}
	}
	return nil
}

func (u *URL) checkAuthority() error {
	switch {
	case u.CannotBeABase():
		return errtrace.Wrap(errorutil.NewWrapperError(ErrNoAuthority, ErrCannotBeABase))
	case u.url.Hostname() == "":
		return errtrace.Wrap(errorutil.NewWrapperError(ErrNoAuthority, "empty host"))
	case u.url.Scheme == "file":
		return errtrace.Wrap(errorutil.NewWrapperError(ErrNoAuthority, "file URL"))
	}
	return nil
}

// SetUsername replaces the username, keeping the password.
func (u *URL) SetUsername(name string) error {
	if err := u.checkAuthority(); err != nil {
		return errtrace.Wrap(err)
	}
	u.setUserinfo(name, u.password())
	return nil
}

// SetPassword replaces the password. An empty pwd removes it.
func (u *URL) SetPassword(pwd string) error {
	if err := u.checkAuthority(); err != nil {
		return errtrace.Wrap(err)
	}
	u.setUserinfo(u.Username(), pwd)
	return nil
}

func (u *URL) password() string {
	p, _ := u.Password()
	return p
}

func (u *URL) setUserinfo(name, pwd string) {
	switch {
	case pwd != "":
		u.url.User = url.UserPassword(name, pwd)
	case name != "":
		u.url.User = url.User(name)
	default:
		u.url.User = nil
	}
}

// SetHost replaces the host, keeping the port.
func (u *URL) SetHost(host string) error {
	if u.CannotBeABase() {
		return errtrace.Wrap(ErrCannotBeABase)
	}

	h, err := grammar.ParseHost(host, u.special())
	if err != nil {
		return errtrace.Wrap(err)
	}
	if p := u.url.Port(); p != "" {
		h += ":" + p
	}
	u.url.Host = h
	return nil
}

// SetPort replaces the port.
// A port equal to the default port of the scheme removes the port.
func (u *URL) SetPort(port int) error {
	if port < 0 || port > 0xFFFF {
		return errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrInvalidPort, "port %d out of range", port))
	}
	if err := u.checkAuthority(); err != nil {
		return errtrace.Wrap(err)
	}

	if dp, ok := grammar.DefaultPort(u.url.Scheme); ok && int(dp) == port {
		u.url.Host = u.hostname()
		return nil
	}
	u.url.Host = u.hostname() + ":" + strconv.Itoa(port)
	return nil
}

func (u *URL) ClearPort() error {
	if err := u.checkAuthority(); err != nil {
		return errtrace.Wrap(err)
	}
	u.url.Host = u.hostname()
	return nil
}

// SetPathSegments replaces the path with segments, escaping each one.
// No segments produce the "/" path.
func (u *URL) SetPathSegments(segments []string) error {
	if u.CannotBeABase() {
		return errtrace.Wrap(ErrCannotBeABase)
	}

	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(seg))
	}
	if sb.Len() == 0 {
		sb.WriteByte('/')
	}
	u.setEscapedPath(sb.String())
	return nil
}
