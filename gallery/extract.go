package gallery

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// best-effort patterns over raw text. Snippets are often partial or malformed
// HTML, so this is deliberately not a structural parse: a match is whatever
// the pattern finds first, and tag bodies may span lines.
var (
	titleRE = regexp.MustCompile(`(?is)<title>(.*?)</title>`)
	h1RE    = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	metaRE  = regexp.MustCompile(`(?i)<meta[^>]*name=["']description["'][^>]*content=["']([^"']*)["'][^>]*>`)
	pRE     = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	tagRE   = regexp.MustCompile(`<[^>]+>`)
)

// descriptions longer than this are cut and marked with an ellipsis.
const maxDescription = 150

var titleCaser = cases.Title(language.English)

// FallbackTitle synthesizes a title from a snippet's filename: extension
// stripped, underscores become spaces, each word capitalized.
// "my_snippet.html" -> "My Snippet".
func FallbackTitle(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return titleCaser.String(strings.ReplaceAll(stem, "_", " "))
}

// Extract derives a title and description from one snippet's raw markup.
//
// Title: first <title> body, else first <h1> body (attributes allowed), else
// FallbackTitle(name). Description: first <meta name="description"> content
// attribute, else the first <p> body with inner tags stripped and whitespace
// collapsed, cut to 150 characters plus "..." if longer; else empty.
// Malformed markup never errors, it just fails to match.
func Extract(name string, content []byte) (title, description string) {
	title = FallbackTitle(name)
	if m := titleRE.FindSubmatch(content); m != nil {
		title = strings.TrimSpace(string(m[1]))
	} else if m := h1RE.FindSubmatch(content); m != nil {
		title = strings.TrimSpace(string(m[1]))
	}
	if m := metaRE.FindSubmatch(content); m != nil {
		description = strings.TrimSpace(string(m[1]))
	} else if m := pRE.FindSubmatch(content); m != nil {
		description = strings.Join(strings.Fields(tagRE.ReplaceAllString(string(m[1]), "")), " ")
		if r := []rune(description); len(r) > maxDescription {
			description = string(r[:maxDescription]) + "..."
		}
	}
	return title, description
}

// ExtractFile reads path and extracts its title and description. A file that
// can't be read or isn't valid UTF-8 degrades to the filename-derived title
// and an empty description, with a warning; it never fails the run.
func ExtractFile(path string) (title, description string) {
	b, err := os.ReadFile(path)
	if err != nil {
		zap.L().Warn("could not read snippet", zap.String("file", path), zap.Error(err))
		return FallbackTitle(filepath.Base(path)), ""
	}
	if !utf8.Valid(b) {
		zap.L().Warn("snippet is not valid UTF-8", zap.String("file", path))
		return FallbackTitle(filepath.Base(path)), ""
	}
	return Extract(filepath.Base(path), b)
}
