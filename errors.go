package imurl

import (
	"fmt"

	"github.com/ghettovoice/imurl/internal/errorutil"
	"github.com/ghettovoice/imurl/internal/grammar"
	"github.com/ghettovoice/imurl/internal/weburl"
)

// Error is a sentinel error type of the package.
type Error = errorutil.Error

const (
	// ErrParse is matched by every error returned from [Parse].
	ErrParse Error = "parse URL"
	// ErrBuild is matched by every error returned when a builder rejects an edit.
	ErrBuild Error = "build URL"
)

// Parse failure reasons.
const (
	ErrEmptyInput     = grammar.ErrEmptyInput
	ErrMalformedInput = grammar.ErrMalformedInput
	ErrMissingScheme  = grammar.ErrMissingScheme
)

// Build failure reasons.
const (
	ErrInvalidScheme    = grammar.ErrInvalidScheme
	ErrInvalidHost      = grammar.ErrInvalidHost
	ErrInvalidPort      = grammar.ErrInvalidPort
	ErrSchemeTransition = weburl.ErrSchemeTransition
	ErrNoAuthority      = weburl.ErrNoAuthority
	ErrCannotBeABase    = weburl.ErrCannotBeABase
)

func newParseErr(err error) error {
	return errorutil.NewWrapperError(ErrParse, err) //errtrace:skip
}

func newBuildErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrBuild, op, err) //errtrace:skip
}
