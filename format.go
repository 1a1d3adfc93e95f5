package imurl

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

// Equal reports whether val is a URL or *URL with the same string as u.
func (u URL) Equal(val any) bool {
	var other URL
	switch v := val.(type) {
	case URL:
		other = v
	case *URL:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return u.raw == other.raw
}

// Compare orders URLs by their strings.
func (u URL) Compare(other URL) int { return strings.Compare(u.raw, other.raw) }

// Format implements [fmt.Formatter].
//
// Verbs %s and %v print the URL string, %q prints it quoted,
// %#v prints a Go expression that recreates the URL.
func (u URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if verb == 'v' && f.Flag('#') {
			fmt.Fprintf(f, "imurl.MustParse(%q)", u.raw)
			return
		}
		io.WriteString(f, u.raw) //nolint:errcheck
	case 'q':
		io.WriteString(f, strconv.Quote(u.raw)) //nolint:errcheck
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), u.raw)
	}
}

// LogValue implements [slog.LogValuer].
func (u URL) LogValue() slog.Value { return slog.StringValue(u.raw) }

// MarshalText implements [encoding.TextMarshaler].
func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.raw), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// It replaces *u with a newly parsed URL, on error *u is reset to the zero URL.
func (u *URL) UnmarshalText(text []byte) error {
	u1, err := Parse(string(text))
	if err != nil {
		*u = URL{}
		return errtrace.Wrap(err)
	}
	*u = u1
	return nil
}
