package normalize

import (
	"regexp"
	"strconv"

	"github.com/dgallion1/mdfmtr/internal/lineclass"
)

var orderedItemRe = regexp.MustCompile(`^(\s*)(\d+)(\..*)$`)

// listRun is a contiguous group of ordered items sharing one indent.
type listRun struct {
	level int
	items []int
}

type renumberer struct {
	out    []string
	inList bool
	run    listRun
	// indents[level] is the leading-space count of items at that level.
	indents []int
	// counters[level] is the last number assigned at that level.
	counters map[int]int
}

// RenumberLists rewrites the numbers of ordered list items so every run of
// items at one nesting level counts 1, 2, 3... A deeper run leaves its
// parent's counter untouched so the parent continues after it; returning
// to a shallower level resets the counters of the levels left behind. Any
// non-ordered line, fenced code included, ends the list and clears all
// counters.
func RenumberLists(lines []string) []string {
	r := &renumberer{
		out:      append([]string(nil), lines...),
		counters: make(map[int]int),
	}
	code := lineclass.FencedLines(lines)
	for i, line := range lines {
		m := orderedItemRe.FindStringSubmatch(line)
		if code[i] || m == nil || !lineclass.IsOrdered(line) {
			if r.inList {
				r.endList()
			}
			continue
		}
		r.item(i, len(m[1]))
	}
	if r.inList {
		r.endList()
	}
	return r.out
}

func (r *renumberer) item(index, indent int) {
	switch {
	case !r.inList:
		r.inList = true
		r.indents = append(r.indents[:0], indent)
		r.run = listRun{level: 0}
	case indent > r.indents[r.run.level]:
		r.closeRun()
		level := r.run.level + 1
		r.indents = append(r.indents[:level], indent)
		r.run = listRun{level: level}
	case indent < r.indents[r.run.level]:
		r.closeRun()
		level := r.run.level
		for level > 0 && indent < r.indents[level] {
			delete(r.counters, level)
			level--
		}
		r.indents = r.indents[:level+1]
		switch {
		case indent > r.indents[level]:
			level++
			r.indents = append(r.indents, indent)
		case indent < r.indents[level]:
			r.indents[level] = indent
		}
		r.run = listRun{level: level}
	}
	r.run.items = append(r.run.items, index)
}

func (r *renumberer) closeRun() {
	n := r.counters[r.run.level]
	for _, idx := range r.run.items {
		n++
		r.out[idx] = setNumber(r.out[idx], n)
	}
	r.counters[r.run.level] = n
	r.run.items = nil
}

func (r *renumberer) endList() {
	r.closeRun()
	r.inList = false
	r.indents = r.indents[:0]
	clear(r.counters)
}

func setNumber(line string, n int) string {
	m := orderedItemRe.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	return m[1] + strconv.Itoa(n) + m[3]
}
