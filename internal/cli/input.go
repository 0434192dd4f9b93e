package cli

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dgallion1/mdfmtr/internal/parser"
)

// stdinName labels a document read from standard input.
const stdinName = "<stdin>"

type document struct {
	path string
	text string
}

func (d document) isStdin() bool { return d.path == stdinName }

// loadDocuments reads every path argument, expanding glob patterns. With no
// arguments, or a lone "-", it reads standard input.
func loadDocuments(stdin io.Reader, args []string, log *slog.Logger) ([]document, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []document{{path: stdinName, text: string(data)}}, nil
	}

	paths, err := expandPaths(args, log)
	if err != nil {
		return nil, err
	}
	docs := make([]document, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		docs = append(docs, document{path: p, text: string(data)})
	}
	return docs, nil
}

// expandPaths resolves glob arguments to matching Markdown files. Plain
// paths are kept as given. Duplicates are dropped, first occurrence wins.
func expandPaths(args []string, log *slog.Logger) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, arg := range args {
		if !hasMeta(arg) {
			add(arg)
			continue
		}
		matches, err := globFiles(arg)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			log.Warn("pattern matched no files", "pattern", arg)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return out, nil
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// globFiles walks the pattern's static base directory and returns the
// supported files under it that match, sorted. Hidden directories are
// skipped.
func globFiles(pattern string) ([]string, error) {
	base, pat := doublestar.SplitPattern(filepath.ToSlash(pattern))
	root := filepath.FromSlash(base)

	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		ok, err := doublestar.Match(pat, filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if ok && parser.IsSupportedExtension(path) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}
