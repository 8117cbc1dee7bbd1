package papyrus

import (
	"errors"
	"sync"
	"testing"
)

func TestExtract(t *testing.T) {
	doc, err := Extract("notes.txt", []byte("a\nb\n"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if doc.Content != "a\nb\n" {
		t.Errorf("Content = %q, want input unchanged", doc.Content)
	}
	if got := doc.Metadata["lines"]; got != "3" {
		t.Errorf("metadata[lines] = %q, want %q", got, "3")
	}
}

func TestExtract_Unsupported(t *testing.T) {
	_, err := Extract("file.unknownext", []byte("data"))

	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v (%T), want *UnsupportedFormatError", err, err)
	}
}

func TestCanHandle(t *testing.T) {
	for _, filename := range []string{"a.txt", "a.text", "a.csv", "a.json", "a.xml", "a.html", "a.htm", "a.md", "a.markdown"} {
		if !CanHandle(filename) {
			t.Errorf("CanHandle(%q) = false, want true", filename)
		}
	}
	if CanHandle("a.pdf") {
		t.Error("CanHandle(a.pdf) = true, want false")
	}
}

func TestSupportedFormats(t *testing.T) {
	got := SupportedFormats()
	if len(got) != 5 {
		t.Fatalf("SupportedFormats() returned %d names, want 5", len(got))
	}
	if got[0] != "Plain Text" || got[4] != "Markdown" {
		t.Errorf("unexpected order: %q", got)
	}
}

// A registry has no mutable state, so concurrent extraction needs no
// coordination.
func TestExtract_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := Extract("data.csv", []byte("a,b\n1,2"))
			if err != nil {
				t.Errorf("Extract: %v", err)
				return
			}
			if doc.Metadata["rows"] != "2" {
				t.Errorf("metadata[rows] = %q, want %q", doc.Metadata["rows"], "2")
			}
		}()
	}
	wg.Wait()
}
