// Package errorutil holds the sentinel error type and the helpers that wrap and join errors.
package errorutil

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ghettovoice/imurl/internal/util"
)

// Error is a sentinel error declared as a constant.
type Error string

func (s Error) Error() string { return string(s) }

// NewWrapperError returns an error matching sentinel.
//
// The first argument decides the shape: an error is wrapped (or returned as is if it
// already matches sentinel), a string becomes the message, formatted with the rest
// of args when there are any. Without arguments the sentinel itself is returned.
func NewWrapperError(sentinel error, args ...any) error {
	if len(args) == 0 {
		return sentinel //errtrace:skip
	}

	var msg string
	switch v := args[0].(type) {
	case error:
		if errors.Is(v, sentinel) {
			return v //errtrace:skip
		}
		return fmt.Errorf("%w: %w", sentinel, v) //errtrace:skip
	case string:
		msg = v
		if len(args) > 1 {
			msg = fmt.Sprintf(v, args[1:]...)
		}
	default:
		return sentinel //errtrace:skip
	}
	return fmt.Errorf("%w: %s", sentinel, msg) //errtrace:skip
}

// ErrInvalidArgument reports a bad value passed in by the caller, like a zero URL or an unknown flag value.
const ErrInvalidArgument Error = "invalid argument"

func NewInvalidArgumentError(args ...any) error {
	return NewWrapperError(ErrInvalidArgument, args...) //errtrace:skip
}

// JoinPrefix joins errs into a single error which message starts with prefix
// and lists every non-nil error on its own line.
// Nil errors are dropped, nil is returned if nothing is left.
func JoinPrefix(prefix string, errs ...error) error {
	errs = compact(errs)
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%s: %w", strings.TrimRight(prefix, ":"), errs[0]) //errtrace:skip
	default:
		return &multiError{prefix: prefix, errs: errs} //errtrace:skip
	}
}

func compact(errs []error) []error {
	out := errs[:0:0]
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}

type multiError struct {
	prefix string
	errs   []error
}

func (e *multiError) Error() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(e.prefix)
	for _, err := range e.errs {
		sb.WriteString("\n  - ")
		sb.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n    "))
	}
	return sb.String()
}

func (e *multiError) Unwrap() []error { return e.errs }
