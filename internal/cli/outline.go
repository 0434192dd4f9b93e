package cli

import (
	"encoding/json"

	"github.com/dgallion1/mdfmtr/internal/formatter"
	"github.com/dgallion1/mdfmtr/internal/parser"
	"github.com/dgallion1/mdfmtr/internal/report"
	"github.com/spf13/cobra"
)

func newOutlineCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "outline [path]",
		Short: "Print the heading outline of the fixed text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := loadDocuments(cmd.InOrStdin(), args, a.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, doc := range docs {
				res := formatter.Format(doc.text, a.options())
				title := ""
				if !doc.isStdin() {
					title = parser.TitleFromFilename(doc.path)
				}
				tree := parser.Outline([]byte(res.FixedText), title)
				if asJSON {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					if err := enc.Encode(tree); err != nil {
						return err
					}
					continue
				}
				report.Outline(out, report.NewStyles(out), tree)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the outline as JSON")
	return cmd
}
