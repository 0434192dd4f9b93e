package doctree

// DocTree is the heading outline of a document.
type DocTree struct {
	Title    string     `json:"title"`    // Document title (from the request or filename)
	Children []*DocNode `json:"children"` // Top-level sections
}

// DocNode is a recursive section in the outline.
type DocNode struct {
	Title    string     `json:"title,omitempty"` // Section heading (empty for leading text)
	Level    int        `json:"level,omitempty"` // Heading level 1-6 (0 for leading text)
	Line     int        `json:"line,omitempty"`  // 1-based line of the heading (0 if N/A)
	Text     string     `json:"text,omitempty"`  // Text content directly under the heading
	Children []*DocNode `json:"children,omitempty"`
}

// Walk visits every node depth-first, passing its depth (0 for top level).
func (t *DocTree) Walk(fn func(n *DocNode, depth int)) {
	var walk func(nodes []*DocNode, depth int)
	walk = func(nodes []*DocNode, depth int) {
		for _, n := range nodes {
			fn(n, depth)
			walk(n.Children, depth+1)
		}
	}
	walk(t.Children, 0)
}
