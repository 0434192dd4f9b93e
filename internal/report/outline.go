package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/mdfmtr/internal/doctree"
)

// Outline writes the heading tree, one indented heading per line with its
// 1-based source line. Leading text before the first heading is skipped.
func Outline(w io.Writer, st *Styles, tree *doctree.DocTree) {
	if tree.Title != "" {
		fmt.Fprintln(w, st.Heading.Render(tree.Title))
	}
	tree.Walk(func(n *doctree.DocNode, depth int) {
		if n.Level == 0 {
			return
		}
		fmt.Fprintf(w, "%s%s %s %s\n",
			strings.Repeat("  ", depth),
			strings.Repeat("#", n.Level),
			n.Title,
			st.Muted.Render(fmt.Sprintf("(line %d)", n.Line)),
		)
	})
}
