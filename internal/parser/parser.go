package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/mdfmtr/internal/doctree"
)

// Parser converts document text into a heading outline.
type Parser interface {
	Parse(r io.Reader, filename string) (*doctree.DocTree, error)
}

// SupportedExtensions lists file extensions the formatter accepts.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// ForFile returns the parser for a filename. Plain text is read as Markdown.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !SupportedExtensions[ext] {
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
	return &MarkdownParser{}, nil
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// TitleFromFilename strips the directory and a supported extension.
func TitleFromFilename(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	if SupportedExtensions[strings.ToLower(ext)] {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
