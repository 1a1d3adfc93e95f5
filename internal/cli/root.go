// Package cli implements the imurl command tree.
package cli

//go:generate go tool errtrace -w .

import (
	"log/slog"
	"slices"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/imurl/internal/errorutil"
	"github.com/ghettovoice/imurl/internal/log"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var outputFormats = []string{outputText, outputJSON, outputYAML}

type rootOptions struct {
	output   string
	logLevel string
	dev      bool
}

type app struct {
	opts   rootOptions
	logger *slog.Logger
}

// NewRootCmd builds the imurl command with all sub-commands.
func NewRootCmd() *cobra.Command {
	a := &app{logger: log.Noop}
	cmd := &cobra.Command{
		Use:           "imurl",
		Short:         "Parse and edit URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return errtrace.Wrap(a.init(cmd))
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVarP(&a.opts.output, "output", "o", outputText, "output format: text, json or yaml")
	fs.StringVar(&a.opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.BoolVar(&a.opts.dev, "dev", false, "verbose developer log output")

	cmd.AddCommand(newParseCmd(a), newEditCmd(a))
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	if !slices.Contains(outputFormats, a.opts.output) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown output format %q", a.opts.output))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.opts.logLevel)); err != nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	a.logger = log.New(cmd.ErrOrStderr(), &log.Options{Level: level, Dev: a.opts.dev})
	return nil
}
