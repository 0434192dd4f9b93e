package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgallion1/mdfmtr/internal/formatter"
	"github.com/dgallion1/mdfmtr/internal/report"
	"github.com/spf13/cobra"
)

func newFixCmd(a *app) *cobra.Command {
	var write, showDiff bool

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Print or write the normalized Markdown",
		Long: `Normalize each document. Without flags the fixed text is printed;
-w rewrites files in place and --diff prints a unified diff instead.
Paths may be doublestar globs such as 'docs/**/*.md'. With no path the
document is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && showDiff {
				return errors.New("-w and --diff cannot be combined")
			}
			docs, err := loadDocuments(cmd.InOrStdin(), args, a.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			st := report.NewStyles(out)
			changed := 0
			for _, doc := range docs {
				res := formatter.Format(doc.text, a.options())
				dirty := res.FixedText != doc.text
				if dirty {
					changed++
				}
				a.log.Debug("formatted", "path", doc.path, "lines", len(res.Lines), "changed", dirty)

				switch {
				case write:
					if doc.isStdin() {
						return errors.New("-w needs file arguments")
					}
					if dirty {
						if err := writeInPlace(doc.path, res.FixedText); err != nil {
							return err
						}
					}
				case showDiff:
					report.Diff(out, st, doc.path, doc.text, res.FixedText)
				default:
					if len(docs) > 1 {
						fmt.Fprintf(out, "%s\n", st.Path.Render("==> "+doc.path+" <=="))
					}
					fmt.Fprint(out, res.FixedText)
				}
			}
			if write {
				a.log.Info("fix complete", "files", len(docs), "changed", changed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the fixed text back to each file")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Print a unified diff instead of the fixed text")
	return cmd
}

func writeInPlace(path, text string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
