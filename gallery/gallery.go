// Package gallery builds a static index page for a directory of standalone
// HTML snippets: scan the directory, pull a title and short description out of
// each file's markup, and render one self-contained index.html linking to them
// all. The index is rebuilt from scratch on every run; nothing persists
// between invocations.
//
// Snippet files are trusted local content, so extracted text is interpolated
// into the page verbatim, without HTML escaping.
package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Snippet is one gallery entry: a standalone HTML file plus metadata derived
// from its markup. The filename doubles as the hyperlink target.
type Snippet struct {
	Filename    string
	Title       string
	Description string // may be empty
}

// Generate scans dir, extracts metadata from every snippet, and overwrites
// dir/index.html with the rendered gallery. It returns the snippets listed, in
// index order. Unreadable snippets degrade to a filename-derived title; only
// failure to enumerate dir or to write the index is an error.
func Generate(dir string) ([]Snippet, error) {
	names, err := Scan(dir)
	if err != nil {
		return nil, err
	}
	snippets := make([]Snippet, 0, len(names))
	for _, name := range names {
		title, desc := ExtractFile(filepath.Join(dir, name))
		zap.L().Info("found snippet", zap.String("file", name), zap.String("title", title))
		snippets = append(snippets, Snippet{Filename: name, Title: title, Description: desc})
	}
	out := filepath.Join(dir, OutputFile)
	if err := os.WriteFile(out, Render(snippets, time.Now()), 0o777); err != nil {
		return nil, fmt.Errorf("writing %s: %w", out, err)
	}
	return snippets, nil
}
