// Package grammar contains URL syntax rules shared by the parser and the setters:
// scheme syntax, the table of special schemes, host validation and percent-encode sets.
package grammar

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/imurl/internal/errorutil"
)

func init() {
	abnf.EnableNodeCache(1024)
}

// Error is a grammar violation.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
	ErrMissingScheme  Error = "missing scheme"
	ErrInvalidScheme  Error = "invalid scheme"
	ErrInvalidHost    Error = "invalid host"
	ErrInvalidPort    Error = "invalid port"
)

func newInvalidHostErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidHost, args...) //errtrace:skip
}

// RFC 3986, section 3.1:
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
var (
	alpha = abnf.AltFirst(
		"ALPHA",
		abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
		abnf.Range("%x61-7A", []byte{0x61}, []byte{0x7A}),
	)
	digit  = abnf.Range("DIGIT", []byte{0x30}, []byte{0x39})
	scheme = abnf.Concat(
		"scheme",
		alpha,
		abnf.Repeat0Inf(
			`*( ALPHA / DIGIT / "+" / "-" / "." )`,
			abnf.AltFirst(
				`ALPHA / DIGIT / "+" / "-" / "."`,
				alpha,
				digit,
				abnf.Literal(`"+"`, []byte("+")),
				abnf.Literal(`"-"`, []byte("-")),
				abnf.Literal(`"."`, []byte(".")),
			),
		),
	)
)

// IsScheme reports whether s matches the RFC 3986 scheme rule as a whole.
func IsScheme[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := scheme([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
