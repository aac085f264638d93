// buildfeed emits an RSS 2.0 feed (feed.xml) for a directory of HTML
// snippets, so the gallery can be followed from a feed reader.
//
//	usage:
//	   buildfeed [DIR]
//
// The feed is rebuilt from scratch each run; item GUIDs are derived from the
// item links, so successive runs over an unchanged directory agree.
package main

import (
	"bytes"
	"encoding/xml"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/willf/snippets/gallery"
	"gitlab.com/efronlicht/enve"
	"golang.org/x/net/html"
)

const feedFile = "feed.xml"

type RSS struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel Channel  `xml:"channel"`
}

type Channel struct {
	Title         string `xml:"title"`
	Description   string `xml:"description"`
	Link          string `xml:"link"`
	TTL           int    `xml:"ttl,omitempty"`
	LastBuildDate string `xml:"lastBuildDate"`
	Items         []Item `xml:"item"`
}

type Item struct {
	Title string `xml:"title"`
	Link  string `xml:"link"`
	GUID  string `xml:"guid"`
}

func main() {
	log.SetPrefix("buildfeed\t")
	dir := "."
	switch len(os.Args) {
	case 1:
	case 2:
		dir = os.Args[1]
	default:
		log.Fatal("expected at most one command-line argument\nusage:\tbuildfeed [DIR]")
	}
	dir = must(filepath.Abs(dir))
	base := strings.TrimSuffix(enve.StringOr("SNIPPETS_BASE_URL", "https://willf.github.io/snippets"), "/")

	items, err := feedItems(dir, base)
	if err != nil {
		log.Fatal(err)
	}
	rss := RSS{
		Version: "2.0",
		Channel: Channel{
			Title:         "Code Snippets Collection",
			Description:   "A collection of code snippets and small one-page apps",
			Link:          base,
			TTL:           1800,
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         items,
		},
	}
	b := must(xml.MarshalIndent(rss, "", "\t"))
	b = append([]byte(xml.Header), b...)
	dst := filepath.Join(dir, feedFile)
	must(0, os.WriteFile(dst, b, 0o777))
	log.Printf("wrote %s with %d item(s)", dst, len(items))
}

// feedItems builds one feed item per snippet in dir, in scan order. Titles
// come from a parsed <title> element when the file parses, the
// filename-derived fallback otherwise.
func feedItems(dir, base string) ([]Item, error) {
	names, err := gallery.Scan(dir)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(names))
	for _, name := range names {
		title := gallery.FallbackTitle(name)
		if b, err := os.ReadFile(filepath.Join(dir, name)); err != nil {
			log.Printf("warning: could not read %s: %v", name, err)
		} else if doc, err := html.Parse(bytes.NewReader(b)); err != nil {
			log.Printf("warning: could not parse %s: %v", name, err)
		} else if t, ok := findTitle(doc); ok && strings.TrimSpace(t) != "" {
			title = strings.TrimSpace(t)
		}
		link := base + "/" + name
		items = append(items, Item{
			Title: title,
			Link:  link,
			GUID:  uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).String(),
		})
	}
	return items, nil
}

func findTitle(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
		return n.FirstChild.Data, true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title, ok := findTitle(c); ok {
			return title, ok
		}
	}
	return "", false
}

func must[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}
	return t
}
