package gallery_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/willf/snippets/gallery"
)

var renderTime = time.Date(2024, 5, 17, 13, 4, 5, 0, time.Local)

func parse(t *testing.T, page []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestRenderEntries(t *testing.T) {
	page := gallery.Render([]gallery.Snippet{
		{Filename: "clock.html", Title: "A Clock", Description: "Tells the time."},
		{Filename: "game.html", Title: "A Game"},
	}, renderTime)
	doc := parse(t, page)

	items := doc.Find("li.snippet-item")
	if items.Length() != 2 {
		t.Fatalf("expected 2 entries, got %d", items.Length())
	}
	link := items.First().Find("h2 a")
	if href, _ := link.Attr("href"); href != "clock.html" {
		t.Fatalf("expected link to clock.html, got %q", href)
	}
	if link.Text() != "A Clock" {
		t.Fatalf("expected link text %q, got %q", "A Clock", link.Text())
	}
	// only the first entry has a description; the second renders no <p> at all
	if n := doc.Find("p.snippet-description").Length(); n != 1 {
		t.Fatalf("expected 1 description paragraph, got %d", n)
	}
	if badge := items.Last().Find("span.snippet-filename").Text(); badge != "game.html" {
		t.Fatalf("expected filename badge %q, got %q", "game.html", badge)
	}
	if count := strings.TrimSpace(doc.Find("div.snippet-count").Text()); count != "Found 2 snippets" {
		t.Fatalf("expected count line %q, got %q", "Found 2 snippets", count)
	}
}

func TestRenderSingularCount(t *testing.T) {
	page := gallery.Render([]gallery.Snippet{{Filename: "clock.html", Title: "A Clock"}}, renderTime)
	if count := strings.TrimSpace(parse(t, page).Find("div.snippet-count").Text()); count != "Found 1 snippet" {
		t.Fatalf("expected count line %q, got %q", "Found 1 snippet", count)
	}
}

func TestRenderEmptyState(t *testing.T) {
	doc := parse(t, gallery.Render(nil, renderTime))
	if doc.Find("li.snippet-item").Length() != 0 {
		t.Fatal("expected no entries")
	}
	if doc.Find("div.empty-state").Length() != 1 {
		t.Fatal("expected the empty-state block")
	}
	if count := strings.TrimSpace(doc.Find("div.snippet-count").Text()); count != "No snippets found" {
		t.Fatalf("expected count line %q, got %q", "No snippets found", count)
	}
}

func TestRenderTimestamp(t *testing.T) {
	page := gallery.Render(nil, renderTime)
	if !bytes.Contains(page, []byte("Generated on 2024-05-17 13:04:05")) {
		t.Fatal("expected the footer to carry the generation timestamp")
	}
}

func TestRenderIdenticalExceptTimestamp(t *testing.T) {
	snips := []gallery.Snippet{{Filename: "clock.html", Title: "A Clock", Description: "Tells the time."}}
	later := renderTime.Add(90 * time.Minute)
	a := bytes.ReplaceAll(gallery.Render(snips, renderTime), []byte(renderTime.Format("2006-01-02 15:04:05")), nil)
	b := bytes.ReplaceAll(gallery.Render(snips, later), []byte(later.Format("2006-01-02 15:04:05")), nil)
	if !bytes.Equal(a, b) {
		t.Fatal("renders at different times should differ only in the timestamp")
	}
}

func TestRenderInterpolatesVerbatim(t *testing.T) {
	// trusted local input: markup in a title passes through unescaped
	page := gallery.Render([]gallery.Snippet{{Filename: "x.html", Title: "<em>Fancy</em>"}}, renderTime)
	if !bytes.Contains(page, []byte("<em>Fancy</em>")) {
		t.Fatal("expected title markup to pass through unescaped")
	}
}
