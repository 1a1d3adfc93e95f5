// Package imurl provides [URL], an immutable absolute URL value with a
// copy-on-write builder API.
//
// # Overview
//
// A [URL] holds two things: the string form of the URL and its parsed structure.
// Both are fixed at construction. Every With* method returns a new [URL] and
// leaves the receiver untouched:
//
//	base := imurl.MustParse("https://example.com")
//	api, err := base.WithPathSegments("api", "v1", "users")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(api)  // https://example.com/api/v1/users
//	fmt.Println(base) // https://example.com
//
// # Parsing
//
// [Parse] accepts absolute URLs only. The input string is kept verbatim,
// so String always returns exactly what was parsed:
//
//	u, _ := imurl.Parse("HTTPS://Example.com:443/a?b#c")
//	u.String() // "HTTPS://Example.com:443/a?b#c"
//	u.Scheme() // "https"
//
// URLs of the special schemes http, https, ws, wss and ftp must have a host.
// Parse errors match [ErrParse] and one of the more specific errors
// ([ErrEmptyInput], [ErrMalformedInput], [ErrMissingScheme], [ErrInvalidHost], [ErrInvalidPort]).
//
// # Builders
//
// Each builder clones the structure, applies one edit, serializes the result
// and parses that string again. The string of a built URL is therefore the
// canonical serialization of the edited structure, which may differ from a
// hand-written equivalent.
//
// Edits follow the WHATWG URL standard setters:
//
//   - [URL.WithScheme] can't switch between special and non-special schemes;
//   - [URL.WithUsername], [URL.WithPassword] and [URL.WithPort] need a non-empty host;
//   - [URL.WithHost] validates the host, hosts of special URLs are IDNA-mapped;
//   - [URL.WithPathSegments] fails on cannot-be-a-base URLs like "mailto:user@example.com";
//   - a port equal to the default port of the scheme is dropped.
//
// Builder errors match [ErrBuild] and the specific reason.
//
// # Equality
//
// Two URLs are equal when their strings are equal, see [URL.Equal] and [URL.Compare].
//
// # Thread Safety
//
// URL values are immutable and safe for concurrent use without synchronization.
package imurl
