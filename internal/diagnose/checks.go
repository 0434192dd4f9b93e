package diagnose

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/mdfmtr/internal/lineclass"
)

const (
	msgDoubleQuote = "quote starts with a nested blockquote (>>)"
	msgBacktick    = "backticks may not be closed"
)

var doubleQuoteRe = regexp.MustCompile(`^\s*>\s*>`)

// checkDoubleBlockquote flags the first line of a quote run when it opens
// with two or more chevrons.
func checkDoubleBlockquote(doc document, r Report) {
	fold(doc.lines, true, func(first bool, i int, line string) bool {
		if doc.code[i] || !lineclass.IsBlockquote(line) {
			return true
		}
		if first && doubleQuoteRe.MatchString(line) {
			r.Add(i, msgDoubleQuote)
		}
		return false
	})
}

// checkBacktickBalance flags lines outside fenced code with an odd number
// of backticks.
func checkBacktickBalance(doc document, r Report) {
	for i, line := range doc.lines {
		if doc.code[i] {
			continue
		}
		if strings.Count(line, "`")%2 == 1 {
			r.Add(i, msgBacktick)
		}
	}
}

// checkDuplicateHeadings flags a heading whose title was already used at
// the same level within the enclosing shallower heading. A heading at level
// L forgets every title recorded for levels deeper than L.
func checkDuplicateHeadings(doc document, r Report) {
	seen := make(map[int]map[string]struct{})
	for i, line := range doc.lines {
		if doc.code[i] {
			continue
		}
		level, title, ok := lineclass.ParseHeading(line)
		if !ok {
			continue
		}
		for deeper := level + 1; deeper <= 6; deeper++ {
			delete(seen, deeper)
		}
		titles := seen[level]
		if titles == nil {
			titles = make(map[string]struct{})
			seen[level] = titles
		}
		if _, dup := titles[title]; dup {
			r.Add(i, fmt.Sprintf("duplicate heading found: level %d, title %q", level, title))
			continue
		}
		titles[title] = struct{}{}
	}
}

type pendingHeading struct {
	index int
	level int
	ok    bool
}

// checkHeadingBody flags a heading followed directly by another heading of
// the same or a shallower level, with nothing but blank lines in between.
func checkHeadingBody(doc document, r Report) {
	fold(doc.lines, pendingHeading{}, func(p pendingHeading, i int, line string) pendingHeading {
		if !doc.code[i] {
			if level, _, ok := lineclass.ParseHeading(line); ok {
				if p.ok && level <= p.level {
					r.Add(p.index, "heading has no body text")
				}
				return pendingHeading{index: i, level: level, ok: true}
			}
		}
		if lineclass.IsBlank(line) {
			return p
		}
		return pendingHeading{}
	})
}

func lineLength(limit int) func(doc document, r Report) {
	return func(doc document, r Report) {
		for i, line := range doc.lines {
			if n := utf8.RuneCountInString(line); n > limit {
				r.Add(i, fmt.Sprintf("line is %d characters long (limit %d)", n, limit))
			}
		}
	}
}

// checkEmphasisBalance flags lines where '*' or '_' runs do not pair up.
func checkEmphasisBalance(doc document, r Report) {
	for i, line := range doc.lines {
		if doc.code[i] || lineclass.IsHorizontalRule(line) {
			continue
		}
		for _, marker := range []byte{'*', '_'} {
			if !lineclass.Balanced(line, marker) {
				r.Add(i, fmt.Sprintf("emphasis %q is not closed properly", string(marker)))
			}
		}
	}
}
