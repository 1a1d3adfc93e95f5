package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/imurl/internal/grammar"
)

func TestIsScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"http", true},
		{"HTTPS", true},
		{"svn+ssh", true},
		{"not-a-scheme", true},
		{"a.b-c+d9", true},
		{"x", true},
		{"1http", false},
		{"+http", false},
		{"http:", false},
		{"ht tp", false},
		{"ht_tp", false},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsScheme(c.str); got != c.want {
				t.Errorf("grammar.IsScheme(%q) = %v, want %v", c.str, got, c.want)
			}
		})
	}
}

func TestDefaultPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scheme   string
		wantPort uint16
		wantOK   bool
	}{
		{"http", 80, true},
		{"HTTPS", 443, true},
		{"ws", 80, true},
		{"wss", 443, true},
		{"ftp", 21, true},
		{"file", 0, false},
		{"mailto", 0, false},
	}

	for _, c := range cases {
		t.Run(c.scheme, func(t *testing.T) {
			t.Parallel()

			port, ok := grammar.DefaultPort(c.scheme)
			if port != c.wantPort || ok != c.wantOK {
				t.Errorf("grammar.DefaultPort(%q) = (%d, %v), want (%d, %v)", c.scheme, port, ok, c.wantPort, c.wantOK)
			}
		})
	}

	if !grammar.IsSpecial("file") || grammar.IsSpecial("mailto") {
		t.Errorf("grammar.IsSpecial mismatch")
	}
	if grammar.RequiresHost("file") || !grammar.RequiresHost("https") {
		t.Errorf("grammar.RequiresHost mismatch")
	}
}

func TestParseHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		host    string
		special bool
		want    string
		wantErr error
	}{
		{"empty", "", true, "", grammar.ErrInvalidHost},
		{"empty opaque", "", false, "", grammar.ErrInvalidHost},
		{"domain", "example.com", true, "example.com", nil},
		{"domain is lowered", "EXAMPLE.com", true, "example.com", nil},
		{"idn", "bücher.example", true, "xn--bcher-kva.example", nil},
		{"escaped idn", "b%C3%BCcher.example", true, "xn--bcher-kva.example", nil},
		{"ipv4", "192.168.0.1", true, "192.168.0.1", nil},
		{"ipv6", "[2001:DB8::1]", true, "[2001:db8::1]", nil},
		{"ipv6 opaque", "[::1]", false, "[::1]", nil},
		{"ipv6 without brackets", "::1", true, "", grammar.ErrInvalidHost},
		{"unterminated ipv6", "[::1", true, "", grammar.ErrInvalidHost},
		{"ipv6 with zone", "[fe80::1%25eth0]", true, "", grammar.ErrInvalidHost},
		{"space", "exa mple.com", true, "", grammar.ErrInvalidHost},
		{"slash", "example.com/a", false, "", grammar.ErrInvalidHost},
		{"at sign", "user@example.com", true, "", grammar.ErrInvalidHost},
		{"escaped slash", "example.com%2Fa", true, "", grammar.ErrInvalidHost},
		{"opaque keeps case", "Example.COM", false, "Example.COM", nil},
		{"opaque escapes non-ascii", "bücher", false, "b%C3%BCcher", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := grammar.ParseHost(c.host, c.special)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("grammar.ParseHost(%q, %v) error = %v, want %v\ndiff (-got +want):\n%v", c.host, c.special, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("grammar.ParseHost(%q, %v) = %q, want %q", c.host, c.special, got, c.want)
			}
		})
	}
}
