package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/imurl"
	"github.com/ghettovoice/imurl/internal/log"
)

func TestURLValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			"full",
			"https://example.com:8080/a?b=1#c",
			map[string]string{
				"href":     "https://example.com:8080/a?b=1#c",
				"scheme":   "https",
				"host":     "example.com",
				"port":     "8080",
				"path":     "/a",
				"query":    "b=1",
				"fragment": "c",
			},
		},
		{
			"opaque",
			"mailto:user@example.com",
			map[string]string{
				"href":   "mailto:user@example.com",
				"scheme": "mailto",
				"path":   "user@example.com",
			},
		},
		{
			"zero",
			"",
			map[string]string{
				"href":   "",
				"scheme": "",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var u imurl.URL
			if c.input != "" {
				u = imurl.MustParse(c.input)
			}
			v := log.URLValue(u)
			if v.Kind() != slog.KindGroup {
				t.Fatalf("log.URLValue(u).Kind() = %v, want %v", v.Kind(), slog.KindGroup)
			}
			got := make(map[string]string)
			for _, a := range v.Group() {
				got[a.Key] = a.Value.String()
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("log.URLValue(%q) mismatch\ndiff (-got +want):\n%v", c.input, diff)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opts *log.Options
	}{
		{"default", nil},
		{"debug", &log.Options{Level: slog.LevelDebug}},
		{"dev", &log.Options{Level: slog.LevelDebug, Dev: true}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := log.New(&buf, c.opts)
			logger.Info("url parsed", "url", imurl.MustParse("https://example.com/api"), "error", errors.New("boom"))

			out := buf.String()
			for _, want := range []string{"url parsed", "example.com", "/api", "boom"} {
				if !strings.Contains(out, want) {
					t.Errorf("log output = %q, want to contain %q", out, want)
				}
			}
		})
	}
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf, &log.Options{Level: slog.LevelWarn})
	logger.Info("hidden")
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("log output = %q, want empty", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("log output = %q, want to contain %q", buf.String(), "shown")
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if log.Noop.Enabled(context.Background(), lvl) {
			t.Errorf("log.Noop.Enabled(%v) = true, want false", lvl)
		}
	}
	log.Noop.With("a", 1).WithGroup("g").Error("ignored")
}
