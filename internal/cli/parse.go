package cli

import (
	"fmt"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/imurl"
	"github.com/ghettovoice/imurl/internal/errorutil"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse URL...",
		Short: "Parse URLs and print their components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return errtrace.Wrap(a.runParse(cmd, args))
		},
	}
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	urls := make([]imurl.URL, 0, len(args))
	var errs []error
	for _, s := range args {
		u, err := imurl.Parse(s)
		if err != nil {
			a.logger.Error("failed to parse url", "input", s, "error", err)
			errs = append(errs, err)
			continue
		}
		a.logger.Debug("url parsed", "url", u)
		urls = append(urls, u)
	}

	if err := writeURLs(cmd.OutOrStdout(), a.opts.output, urls, true); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(errorutil.JoinPrefix(fmt.Sprintf("%d of %d urls failed:", len(errs), len(args)), errs...))
}
