package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputFile is the name of the generated index document. Scan never lists it:
// the index must not link to itself.
const OutputFile = "index.html"

// Scan lists the snippet files in dir: regular files whose name ends in
// .html, excluding OutputFile, sorted ascending by filename. Symlinks are
// followed, so a symlink to a directory doesn't qualify. An unlistable dir is
// an error; callers treat that as fatal.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading snippet directory %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries { // os.ReadDir sorts by filename
		n := e.Name()
		if !strings.HasSuffix(n, ".html") || n == OutputFile {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, n))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		names = append(names, n)
	}
	return names, nil
}
