// Package log provides logging utilities.
package log

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/imurl"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.Format[any](formatURL),
)

func formatURL(_ []string, _ string, v slog.Value) slog.Value {
	switch v.Kind() {
	case slog.KindAny, slog.KindLogValuer:
		if u, ok := v.Any().(imurl.URL); ok {
			return URLValue(u)
		}
	}
	return v
}

// URLValue renders u as a group of its non-empty components.
func URLValue(u imurl.URL) slog.Value {
	attrs := []slog.Attr{
		slog.String("href", u.String()),
		slog.String("scheme", u.Scheme()),
	}
	if h, ok := u.Host(); ok {
		attrs = append(attrs, slog.String("host", h))
	}
	if p, ok := u.Port(); ok {
		attrs = append(attrs, slog.String("port", strconv.Itoa(int(p))))
	}
	if p := u.Path(); p != "" {
		attrs = append(attrs, slog.String("path", p))
	}
	if q, ok := u.Query(); ok {
		attrs = append(attrs, slog.String("query", q))
	}
	if f, ok := u.Fragment(); ok {
		attrs = append(attrs, slog.String("fragment", f))
	}
	return slog.GroupValue(attrs...)
}

// Options configures a logger created by [New].
type Options struct {
	Level slog.Leveler
	// Dev switches to the colorful multi-line developer output.
	Dev bool
}

// New creates a logger writing to w.
func New(w io.Writer, opts *Options) *slog.Logger {
	if opts == nil {
		opts = &Options{}
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	if opts.Dev {
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	}
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			Level:      level,
			TimeFormat: time.RFC3339,
		}),
	))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})
