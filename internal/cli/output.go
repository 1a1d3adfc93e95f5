package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/imurl"
)

type urlView struct {
	Href          string   `json:"href" yaml:"href"`
	Scheme        string   `json:"scheme" yaml:"scheme"`
	Username      string   `json:"username,omitempty" yaml:"username,omitempty"`
	Password      *string  `json:"password,omitempty" yaml:"password,omitempty"`
	Host          *string  `json:"host,omitempty" yaml:"host,omitempty"`
	Port          *uint16  `json:"port,omitempty" yaml:"port,omitempty"`
	Path          string   `json:"path" yaml:"path"`
	Segments      []string `json:"segments,omitempty" yaml:"segments,omitempty"`
	Query         *string  `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment      *string  `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	CannotBeABase bool     `json:"cannot_be_a_base,omitempty" yaml:"cannot_be_a_base,omitempty"`
}

func opt[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}

func newURLView(u imurl.URL) urlView {
	v := urlView{
		Href:          u.String(),
		Scheme:        u.Scheme(),
		Username:      u.Username(),
		Path:          u.Path(),
		CannotBeABase: u.CannotBeABase(),
	}
	v.Segments, _ = u.PathSegments()
	pwd, ok := u.Password()
	v.Password = opt(pwd, ok)
	host, ok := u.Host()
	v.Host = opt(host, ok)
	port, ok := u.Port()
	v.Port = opt(port, ok)
	query, ok := u.Query()
	v.Query = opt(query, ok)
	frag, ok := u.Fragment()
	v.Fragment = opt(frag, ok)
	return v
}

// writeURLs writes urls in the given format.
// With list set JSON and YAML get an array and text gets every component,
// otherwise only the first URL is written.
func writeURLs(w io.Writer, format string, urls []imurl.URL, list bool) error {
	views := make([]urlView, len(urls))
	for i, u := range urls {
		views[i] = newURLView(u)
	}

	var v any = views
	if !list {
		if len(views) == 0 {
			return nil
		}
		v = views[0]
	}

	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errtrace.Wrap(enc.Encode(v))
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(enc.Close())
	default:
		if !list {
			_, err := fmt.Fprintln(w, views[0].Href)
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(writeText(w, views))
	}
}

func writeText(w io.Writer, views []urlView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, v := range views {
		fmt.Fprintln(tw, v.Href)
		row := func(key, val string) { fmt.Fprintf(tw, "  %s\t%s\n", key, val) }
		row("scheme", v.Scheme)
		if v.Username != "" {
			row("username", v.Username)
		}
		if v.Password != nil {
			row("password", strings.Repeat("*", len(*v.Password)))
		}
		if v.Host != nil {
			row("host", *v.Host)
		}
		if v.Port != nil {
			row("port", strconv.Itoa(int(*v.Port)))
		}
		row("path", v.Path)
		if v.Query != nil {
			row("query", *v.Query)
		}
		if v.Fragment != nil {
			row("fragment", *v.Fragment)
		}
		if v.CannotBeABase {
			row("opaque", "true")
		}
	}
	return errtrace.Wrap(tw.Flush())
}
