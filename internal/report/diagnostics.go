package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/mdfmtr/internal/diagnose"
	"github.com/mattn/go-runewidth"
)

// DefaultExcerptWidth is the column budget for quoted source lines.
const DefaultExcerptWidth = 72

// Diagnostics writes one "path:line: message" entry per finding, with line
// numbers 1-based. When excerptWidth is positive the offending source line
// is quoted underneath, truncated to that many columns. It returns the
// number of findings written.
func Diagnostics(w io.Writer, st *Styles, path string, lines []string, rep diagnose.Report, excerptWidth int) int {
	n := 0
	for _, idx := range rep.Lines() {
		for _, msg := range rep[idx] {
			fmt.Fprintf(w, "%s:%s: %s\n",
				st.Path.Render(path),
				st.LineNo.Render(fmt.Sprint(idx+1)),
				st.Message.Render(msg),
			)
			n++
		}
		if excerptWidth > 0 && idx < len(lines) {
			fmt.Fprintf(w, "    %s\n", st.Excerpt.Render(Excerpt(lines[idx], excerptWidth)))
		}
	}
	return n
}

// Excerpt renders a source line for display: tabs become spaces and the
// result is cut to width display columns.
func Excerpt(line string, width int) string {
	line = strings.ReplaceAll(line, "\t", "    ")
	if runewidth.StringWidth(line) <= width {
		return line
	}
	return runewidth.Truncate(line, width, "…")
}

// Summary writes the closing count line for a check run.
func Summary(w io.Writer, st *Styles, findings, files int) {
	noun := "files"
	if files == 1 {
		noun = "file"
	}
	switch findings {
	case 0:
		fmt.Fprintf(w, "%s\n", st.Summary.Render(fmt.Sprintf("no problems in %d %s", files, noun)))
	case 1:
		fmt.Fprintf(w, "%s\n", st.Summary.Render(fmt.Sprintf("1 problem in %d %s", files, noun)))
	default:
		fmt.Fprintf(w, "%s\n", st.Summary.Render(fmt.Sprintf("%d problems in %d %s", findings, files, noun)))
	}
}
