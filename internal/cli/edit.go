package cli

import (
	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/imurl"
)

type editOptions struct {
	scheme     string
	username   string
	password   string
	noPassword bool
	host       string
	port       int
	noPort     bool
	path       string
	segments   []string
	query      string
	noQuery    bool
	fragment   string
	noFragment bool
}

type editStep struct {
	flag  string
	apply func(u imurl.URL) (imurl.URL, error)
}

func newEditCmd(a *app) *cobra.Command {
	var opts editOptions
	cmd := &cobra.Command{
		Use:   "edit URL",
		Short: "Apply edits to a URL and print the result",
		Long: "Apply edits to a URL and print the result.\n\n" +
			"Edits run in order: scheme, username, password, host, port, path, segments, query, fragment.\n" +
			"Every edit produces a new validated URL, the first failing edit stops the command.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return errtrace.Wrap(a.runEdit(cmd, args[0], opts.steps(cmd)))
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.scheme, "scheme", "", "new scheme")
	fs.StringVar(&opts.username, "username", "", "new username")
	fs.StringVar(&opts.password, "password", "", "new password")
	fs.BoolVar(&opts.noPassword, "no-password", false, "remove the password")
	fs.StringVar(&opts.host, "host", "", "new host")
	fs.IntVar(&opts.port, "port", 0, "new port")
	fs.BoolVar(&opts.noPort, "no-port", false, "remove the port")
	fs.StringVar(&opts.path, "path", "", "new path")
	fs.StringArrayVar(&opts.segments, "segment", nil, "path segment, repeat to replace the whole path")
	fs.StringVar(&opts.query, "query", "", "new query")
	fs.BoolVar(&opts.noQuery, "no-query", false, "remove the query")
	fs.StringVar(&opts.fragment, "fragment", "", "new fragment")
	fs.BoolVar(&opts.noFragment, "no-fragment", false, "remove the fragment")
	cmd.MarkFlagsMutuallyExclusive("password", "no-password")
	cmd.MarkFlagsMutuallyExclusive("port", "no-port")
	cmd.MarkFlagsMutuallyExclusive("path", "segment")
	cmd.MarkFlagsMutuallyExclusive("query", "no-query")
	cmd.MarkFlagsMutuallyExclusive("fragment", "no-fragment")
	return cmd
}

func (o *editOptions) steps(cmd *cobra.Command) []editStep {
	changed := cmd.Flags().Changed
	var steps []editStep
	add := func(flag string, apply func(u imurl.URL) (imurl.URL, error)) {
		if changed(flag) {
			steps = append(steps, editStep{flag, apply})
		}
	}

	add("scheme", func(u imurl.URL) (imurl.URL, error) { return u.WithScheme(o.scheme) })
	add("username", func(u imurl.URL) (imurl.URL, error) { return u.WithUsername(o.username) })
	add("password", func(u imurl.URL) (imurl.URL, error) { return u.WithPassword(o.password) })
	add("no-password", func(u imurl.URL) (imurl.URL, error) { return u.WithoutPassword() })
	add("host", func(u imurl.URL) (imurl.URL, error) { return u.WithHost(o.host) })
	add("port", func(u imurl.URL) (imurl.URL, error) { return u.WithPort(o.port) })
	add("no-port", func(u imurl.URL) (imurl.URL, error) { return u.WithoutPort() })
	add("path", func(u imurl.URL) (imurl.URL, error) { return u.WithPath(o.path) })
	add("segment", func(u imurl.URL) (imurl.URL, error) { return u.WithPathSegments(o.segments...) })
	add("query", func(u imurl.URL) (imurl.URL, error) { return u.WithQuery(o.query) })
	add("no-query", func(u imurl.URL) (imurl.URL, error) { return u.WithoutQuery() })
	add("fragment", func(u imurl.URL) (imurl.URL, error) { return u.WithFragment(o.fragment) })
	add("no-fragment", func(u imurl.URL) (imurl.URL, error) { return u.WithoutFragment() })
	return steps
}

func (a *app) runEdit(cmd *cobra.Command, input string, steps []editStep) error {
	u, err := imurl.Parse(input)
	if err != nil {
		a.logger.Error("failed to parse url", "input", input, "error", err)
		return errtrace.Wrap(err)
	}
	a.logger.Debug("url parsed", "url", u)

	for _, s := range steps {
		next, err := s.apply(u)
		if err != nil {
			a.logger.Error("failed to edit url", "flag", s.flag, "url", u, "error", err)
			return errtrace.Wrap(err)
		}
		a.logger.Debug("url edited", "flag", s.flag, "url", next)
		u = next
	}

	return errtrace.Wrap(writeURLs(cmd.OutOrStdout(), a.opts.output, []imurl.URL{u}, false))
}
