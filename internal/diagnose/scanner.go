package diagnose

import "github.com/dgallion1/mdfmtr/internal/lineclass"

// DefaultMaxLineLength is the line-length limit used when none is set.
const DefaultMaxLineLength = 80

// Options tunes the checks.
type Options struct {
	MaxLineLength int
}

// document is the read-only view every check scans.
type document struct {
	lines []string
	// code[i] is true for fence lines and the lines between them.
	code []bool
}

func newDocument(lines []string) document {
	return document{lines: lines, code: lineclass.FencedLines(lines)}
}

// Check is a single independent diagnostic.
type Check struct {
	Name string
	run  func(doc document, r Report)
}

// Checks returns the diagnostics in the order their messages are recorded.
func Checks(opts Options) []Check {
	limit := opts.MaxLineLength
	if limit <= 0 {
		limit = DefaultMaxLineLength
	}
	return []Check{
		{Name: "double-blockquote-start", run: checkDoubleBlockquote},
		{Name: "backtick-balance", run: checkBacktickBalance},
		{Name: "duplicate-heading", run: checkDuplicateHeadings},
		{Name: "heading-without-body", run: checkHeadingBody},
		{Name: "line-length", run: lineLength(limit)},
		{Name: "emphasis-balance", run: checkEmphasisBalance},
	}
}

// Scan runs every check over lines and collects their findings. It never
// fails; an empty document yields an empty report.
func Scan(lines []string, opts Options) Report {
	doc := newDocument(lines)
	r := Report{}
	for _, c := range Checks(opts) {
		c.run(doc, r)
	}
	return r
}

// fold threads an accumulator through the lines in order.
func fold[S any](lines []string, init S, step func(acc S, i int, line string) S) S {
	acc := init
	for i, line := range lines {
		acc = step(acc, i, line)
	}
	return acc
}
