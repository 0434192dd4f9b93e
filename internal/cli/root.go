// Package cli implements the mdfmtr command line.
package cli

import (
	"errors"
	"log/slog"

	"github.com/dgallion1/mdfmtr/internal/config"
	"github.com/dgallion1/mdfmtr/internal/formatter"
	"github.com/spf13/cobra"
)

// ErrFindings is returned by check when any diagnostic was reported.
var ErrFindings = errors.New("diagnostics reported")

type app struct {
	maxLineLength int
	collapseCRLF  bool
	verbose       bool

	log *slog.Logger
}

func (a *app) options() formatter.Options {
	return formatter.Options{
		MaxLineLength: a.maxLineLength,
		CollapseCRLF:  a.collapseCRLF,
	}
}

// NewRootCmd builds the mdfmtr command tree. Flag defaults come from the
// same environment variables the server reads.
func NewRootCmd() *cobra.Command {
	cfg := config.Load()
	a := &app{}

	root := &cobra.Command{
		Use:   "mdfmtr",
		Short: "Normalize Markdown and report common mistakes",
		Long: `mdfmtr fixes list indentation, marker spacing, bullet and emphasis
styles, ordered list numbering and block spacing, and reports problems it
cannot fix on its own.

Examples:
  mdfmtr fix README.md             # print the fixed text
  mdfmtr fix -w 'docs/**/*.md'     # rewrite files in place
  mdfmtr fix --diff notes.md       # show what would change
  mdfmtr check 'docs/**/*.md'      # exit 1 when anything is reported
  mdfmtr outline guide.md          # heading tree of the fixed text`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&a.maxLineLength, "max-line-length", cfg.MaxLineLength, "Report lines longer than this many characters")
	flags.BoolVar(&a.collapseCRLF, "collapse-crlf", cfg.CollapseCRLF, `Treat "\r\n" as a single line break`)
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log per-file progress to stderr")

	root.AddCommand(newFixCmd(a), newCheckCmd(a), newOutlineCmd(a))
	return root
}
