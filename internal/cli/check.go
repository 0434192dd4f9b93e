package cli

import (
	"github.com/dgallion1/mdfmtr/internal/formatter"
	"github.com/dgallion1/mdfmtr/internal/report"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var excerptWidth int
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report problems the formatter cannot fix",
		Long: `Scan each document and print "path:line: message" for every finding.
Line numbers are 1-based and refer to the input as written. The command
exits with status 1 when anything is reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := loadDocuments(cmd.InOrStdin(), args, a.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			st := report.NewStyles(out)
			total := 0
			for _, doc := range docs {
				res := formatter.Format(doc.text, a.options())
				total += report.Diagnostics(out, st, doc.path, res.Lines, res.Errors, excerptWidth)
			}
			if !quiet {
				errOut := cmd.ErrOrStderr()
				report.Summary(errOut, report.NewStyles(errOut), total, len(docs))
			}
			if total > 0 {
				return ErrFindings
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&excerptWidth, "excerpt-width", 0, "Quote each offending line, cut to this many columns (0 disables)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Omit the summary line")
	return cmd
}
