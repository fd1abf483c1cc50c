// Package cli implements the genmat command tree: a demo orchestrator that
// builds matrices, adds them through the matrix contract and prints them.
package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/genmat/internal/logging"
	"github.com/katalvlaran/genmat/matrix"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Quiet     bool
	Lang      string // BCP 47 tag for number rendering; empty keeps plain fmt output
	LogFormat string // "text" | "json"
}

// ValidLogFormats defines the allowed log formats.
var ValidLogFormats = []string{"text", "json"}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "genmat",
		Short:         "genmat - generic heap/fixed matrices",
		Long:          "Builds heap-backed and fixed-shape matrices and adds them through one polymorphic contract.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidLogFormat(opts.LogFormat) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid log format %q: must be one of %v", opts.LogFormat, ValidLogFormats))
			}
			if opts.Lang != "" {
				if _, err := language.Parse(opts.Lang); err != nil {
					return WrapExitError(ExitCommandError, fmt.Sprintf("invalid language %q", opts.Lang), err)
				}
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log matrix lifecycle to stderr")
	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "discard all logs, including failures")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", "", "render numbers for this locale (e.g. en, de)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "text", "log format (text|json)")

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))

	return cmd
}

// printOptions maps global flags onto matrix print options.
func (o *RootOptions) printOptions() []matrix.PrintOption {
	if o.Lang == "" {
		return nil
	}
	tag, err := language.Parse(o.Lang)
	if err != nil { // rejected earlier by PersistentPreRunE
		return nil
	}

	return []matrix.PrintOption{matrix.WithLanguage(tag)}
}

// logger returns an Info-level logger when verbose, a no-op logger when
// quiet, and a Warn-level logger otherwise.
func (o *RootOptions) logger(w io.Writer) logging.Logger {
	if o.Quiet {
		return logging.NewNoOpLogger()
	}
	level := logging.LogLevelWarn
	if o.Verbose {
		level = logging.LogLevelInfo
	}

	return logging.NewSlogLogger(w, level, o.LogFormat)
}

func isValidLogFormat(format string) bool {
	for _, f := range ValidLogFormats {
		if f == format {
			return true
		}
	}
	return false
}
