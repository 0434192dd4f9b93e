package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingHierarchy(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Section A content.

### Subsection A1

Subsection A1 content.

## Section B

Section B content.
`
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "doc" {
		t.Errorf("expected title %q, got %q", "doc", tree.Title)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 top-level child (h1), got %d", len(tree.Children))
	}

	h1 := tree.Children[0]
	if h1.Title != "Title" || h1.Level != 1 || h1.Line != 1 {
		t.Errorf("unexpected h1: title=%q level=%d line=%d", h1.Title, h1.Level, h1.Line)
	}
	if h1.Text != "Intro text." {
		t.Errorf("expected h1 text %q, got %q", "Intro text.", h1.Text)
	}
	if len(h1.Children) != 2 {
		t.Fatalf("expected 2 h2 children, got %d", len(h1.Children))
	}

	secA := h1.Children[0]
	if secA.Title != "Section A" || secA.Line != 5 {
		t.Errorf("unexpected section A: title=%q line=%d", secA.Title, secA.Line)
	}
	if len(secA.Children) != 1 || secA.Children[0].Title != "Subsection A1" {
		t.Fatalf("expected Subsection A1 under Section A, got %+v", secA.Children)
	}
	if secA.Children[0].Level != 3 {
		t.Errorf("expected level 3, got %d", secA.Children[0].Level)
	}

	secB := h1.Children[1]
	if secB.Title != "Section B" || secB.Text != "Section B content." {
		t.Errorf("unexpected section B: %+v", secB)
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	input := `Just some plain text.

Another paragraph here.`

	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(input), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 child for headingless markdown, got %d", len(tree.Children))
	}
	text := tree.Children[0].Text
	if !strings.Contains(text, "Just some plain text.") || !strings.Contains(text, "Another paragraph here.") {
		t.Errorf("expected both paragraphs, got %q", text)
	}
}

func TestMarkdownParser_LeadingTextBeforeHeading(t *testing.T) {
	tree := Outline([]byte("Preamble.\n\n# Heading\n\nBody.\n"), "x")
	if len(tree.Children) != 2 {
		t.Fatalf("expected leading text node plus heading, got %d", len(tree.Children))
	}
	if tree.Children[0].Text != "Preamble." || tree.Children[0].Title != "" {
		t.Errorf("unexpected leading node %+v", tree.Children[0])
	}
	if tree.Children[1].Title != "Heading" || tree.Children[1].Line != 3 {
		t.Errorf("unexpected heading node %+v", tree.Children[1])
	}
}

func TestMarkdownParser_CodeBlocksAreBodyText(t *testing.T) {
	input := "# API\n\n```\nGET /api/users\n```\n\nMore text after code.\n"
	tree := Outline([]byte(input), "api")
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 top-level child, got %d", len(tree.Children))
	}
	body := tree.Children[0].Text
	if !strings.Contains(body, "GET /api/users") || !strings.Contains(body, "More text after code.") {
		t.Errorf("unexpected body %q", body)
	}
	if strings.Count(body, "More text after code.") != 1 {
		t.Errorf("paragraph text duplicated: %q", body)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected 0 children for empty input, got %d", len(tree.Children))
	}
}

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"readme.md", "readme"},
		{"notes.markdown", "notes"},
		{"docs/plain.txt", "plain"},
		{"archive.tar", "archive.tar"},
	}
	for _, tt := range tests {
		if got := TitleFromFilename(tt.filename); got != tt.want {
			t.Errorf("filename=%q: expected title %q, got %q", tt.filename, tt.want, got)
		}
	}
}

func TestForFile(t *testing.T) {
	if _, err := ForFile("a.md"); err != nil {
		t.Errorf("expected .md supported: %v", err)
	}
	if _, err := ForFile("a.pdf"); err == nil {
		t.Error("expected .pdf to be rejected")
	}
	if !IsSupportedExtension("A.MARKDOWN") || IsSupportedExtension("a.html") {
		t.Error("unexpected extension support result")
	}
}
