// mdsnippet renders each markdown file in a directory to a sibling .html file
// so it shows up in the snippet index like any other snippet.
//
//	usage:
//	   mdsnippet [DIR]
//
// The page title comes from the first "# heading" in the markdown, falling
// back to the filename. Fenced code blocks are syntax-highlighted.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/tabwriter"

	"github.com/PuerkitoBio/goquery"
	"github.com/sourcegraph/syntaxhighlight"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/willf/snippets/gallery"
)

func main() {
	log.SetPrefix("mdsnippet\t")
	dir := "."
	switch len(os.Args) {
	case 1:
	case 2:
		dir = os.Args[1]
	default:
		log.Fatal("expected at most one command-line argument\nusage:\tmdsnippet [DIR]")
	}
	dir = must(filepath.Abs(dir))

	const format = "mdsnippet\t%s\t->\t%s\n"
	tw := tabwriter.NewWriter(os.Stderr, 2, 2, 2, ' ', 0)
	defer tw.Flush()
	fmt.Fprintf(tw, format, "src", "dst")
	fmt.Fprintf(tw, format, strings.Repeat("-", 20), strings.Repeat("-", 20))
	for _, e := range must(os.ReadDir(dir)) {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		dst := strings.TrimSuffix(e.Name(), ".md") + ".html"
		b, err := renderMarkdown(filepath.Join(dir, e.Name()))
		if err != nil {
			log.Printf("warning: skipping %s: %v", e.Name(), err)
			continue
		}
		must(0, os.WriteFile(filepath.Join(dir, dst), b, 0o777))
		fmt.Fprintf(tw, format, e.Name(), dst)
	}
}

var headingRE = regexp.MustCompile(`(?m)^# (.+)`) // like # Conway's Game of Life

// renderMarkdown renders one markdown file as a complete HTML page and
// replaces its fenced code blocks with syntax-highlighted versions.
func renderMarkdown(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b = markdown.NormalizeNewlines(b)
	title := gallery.FallbackTitle(filepath.Base(path))
	if m := headingRE.FindSubmatch(b); len(m) > 1 {
		title = strings.TrimSpace(string(m[1]))
	}

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: title,
	})
	page := markdown.ToHTML(b, nil, renderer)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}
	// find code-parts via css selector and replace them with highlighted versions
	doc.Find(`code[class*="language-"]`).Each(func(i int, s *goquery.Selection) {
		hl, err := syntaxhighlight.AsHTML([]byte(s.Text()))
		if err != nil {
			return // leave the block as plain code
		}
		s.SetHtml(string(hl))
	})
	out, err := doc.Html()
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

func must[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}
	return t
}
