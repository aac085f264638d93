package gallery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/willf/snippets/gallery"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o666); err != nil {
		t.Fatal(err)
	}
}

func TestScanFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "b_clock.html", "<title>Clock</title>")
	write(t, dir, "a_game.html", "<title>Game</title>")
	write(t, dir, "index.html", "the previous index; never listed")
	write(t, dir, "notes.txt", "not a snippet")
	if err := os.Mkdir(filepath.Join(dir, "sub.html"), 0o777); err != nil {
		t.Fatal(err)
	}

	got, err := gallery.Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a_game.html", "b_clock.html"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestScanEmptyDir(t *testing.T) {
	got, err := gallery.Scan(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no snippets, got %v", got)
	}
}

func TestScanMissingDirIsAnError(t *testing.T) {
	if _, err := gallery.Scan(filepath.Join(t.TempDir(), "no_such_dir")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
