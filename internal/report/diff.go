package report

import (
	"fmt"
	"io"
	"strings"

	diff "github.com/shogoki/gotextdiff"
)

// Diff writes a coloured unified diff of the original and fixed text.
// It writes nothing and returns false when they are equal.
func Diff(w io.Writer, st *Styles, path, original, fixed string) bool {
	if original == fixed {
		return false
	}
	out := diff.Diff(path, []byte(original), path, []byte(fixed))
	if len(out) == 0 {
		return false
	}

	for _, line := range strings.Split(strings.TrimSuffix(string(out), "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "diff "),
			strings.HasPrefix(line, "--- "),
			strings.HasPrefix(line, "+++ "):
			fmt.Fprintln(w, st.DiffHeader.Render(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(w, st.DiffHunk.Render(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(w, st.DiffAdd.Render(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(w, st.DiffRemove.Render(line))
		default:
			fmt.Fprintln(w, line)
		}
	}
	return true
}
