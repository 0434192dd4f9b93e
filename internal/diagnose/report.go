// Package diagnose flags suspected authoring mistakes in Markdown without
// changing the text. Findings are advisory and keyed by zero-based line
// index.
package diagnose

import "sort"

// Report maps a line index to the messages raised for it, in the order the
// checks raised them.
type Report map[int][]string

// Add appends msg to the messages of line index.
func (r Report) Add(index int, msg string) {
	r[index] = append(r[index], msg)
}

// Lines returns the flagged line indices in ascending order.
func (r Report) Lines() []int {
	idx := make([]int, 0, len(r))
	for i := range r {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// Count returns the total number of messages.
func (r Report) Count() int {
	n := 0
	for _, msgs := range r {
		n += len(msgs)
	}
	return n
}
