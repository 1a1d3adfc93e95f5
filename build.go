package imurl

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/imurl/internal/errorutil"
	"github.com/ghettovoice/imurl/internal/weburl"
)

// build applies edit to a copy of the structure and parses its serialization.
// The re-parse guarantees the result is as consistent as a freshly parsed URL.
func (u URL) build(op string, edit func(w *weburl.URL) error) (URL, error) {
	if u.u == nil {
		return URL{}, errtrace.Wrap(newBuildErr(op, errorutil.NewInvalidArgumentError("zero URL")))
	}

	w := u.u.Clone()
	if err := edit(w); err != nil {
		return URL{}, errtrace.Wrap(newBuildErr(op, err))
	}
	return errtrace.Wrap2(Parse(w.String()))
}

// WithPath replaces the path. Hierarchical URLs get a leading "/" when path has none.
func (u URL) WithPath(path string) (URL, error) {
	return errtrace.Wrap2(u.build("path", func(w *weburl.URL) error {
		w.SetPath(path)
		return nil
	}))
}

// WithQuery replaces the query. An empty query keeps the "?" delimiter.
func (u URL) WithQuery(query string) (URL, error) {
	return errtrace.Wrap2(u.build("query", func(w *weburl.URL) error {
		w.SetQuery(query)
		return nil
	}))
}

// WithoutQuery removes the query.
func (u URL) WithoutQuery() (URL, error) {
	return errtrace.Wrap2(u.build("query", func(w *weburl.URL) error {
		w.ClearQuery()
		return nil
	}))
}

// WithFragment replaces the fragment. An empty fragment keeps the "#" delimiter.
func (u URL) WithFragment(fragment string) (URL, error) {
	return errtrace.Wrap2(u.build("fragment", func(w *weburl.URL) error {
		w.SetFragment(fragment)
		return nil
	}))
}

// WithoutFragment removes the fragment.
func (u URL) WithoutFragment() (URL, error) {
	return errtrace.Wrap2(u.build("fragment", func(w *weburl.URL) error {
		w.ClearFragment()
		return nil
	}))
}

// WithScheme replaces the scheme.
// Switching between special (http, https, ws, wss, ftp, file) and other schemes fails
// with [ErrSchemeTransition].
func (u URL) WithScheme(scheme string) (URL, error) {
	return errtrace.Wrap2(u.build("scheme", func(w *weburl.URL) error {
		return errtrace.Wrap(w.SetScheme(scheme))
	}))
}

// WithUsername replaces the username.
// It fails with [ErrNoAuthority] if the URL has no host or is a file URL.
func (u URL) WithUsername(username string) (URL, error) {
	return errtrace.Wrap2(u.build("username", func(w *weburl.URL) error {
		return errtrace.Wrap(w.SetUsername(username))
	}))
}

// WithPassword replaces the password. An empty password removes it.
// It fails with [ErrNoAuthority] if the URL has no host or is a file URL.
func (u URL) WithPassword(password string) (URL, error) {
	return errtrace.Wrap2(u.build("password", func(w *weburl.URL) error {
		return errtrace.Wrap(w.SetPassword(password))
	}))
}

// WithoutPassword removes the password.
func (u URL) WithoutPassword() (URL, error) {
	return errtrace.Wrap2(u.WithPassword(""))
}

// WithHost replaces the host, keeping the port.
func (u URL) WithHost(host string) (URL, error) {
	return errtrace.Wrap2(u.build("host", func(w *weburl.URL) error {
		return errtrace.Wrap(w.SetHost(host))
	}))
}

// WithPort replaces the port. The port must be in range 0-65535.
// It fails with [ErrNoAuthority] if the URL has no host or is a file URL.
func (u URL) WithPort(port int) (URL, error) {
	return errtrace.Wrap2(u.build("port", func(w *weburl.URL) error {
		return errtrace.Wrap(w.SetPort(port))
	}))
}

// WithoutPort removes the port.
func (u URL) WithoutPort() (URL, error) {
	return errtrace.Wrap2(u.build("port", func(w *weburl.URL) error {
		return errtrace.Wrap(w.ClearPort())
	}))
}

// WithPathSegments replaces the path with the given segments.
// Each segment is escaped, so "/" inside a segment becomes "%2F".
// It fails with [ErrCannotBeABase] on URLs without hierarchy, like "mailto:user@example.com".
func (u URL) WithPathSegments(segments ...string) (URL, error) {
	return errtrace.Wrap2(u.build("path segments", func(w *weburl.URL) error {
		return errtrace.Wrap(w.SetPathSegments(segments))
	}))
}
