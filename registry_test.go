package papyrus

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tsawler/papyrus/model"
)

func TestRegistry_Detect(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		filename string
		wantName string
	}{
		{"notes.txt", "Plain Text"},
		{"notes.text", "Plain Text"},
		{"data.csv", "CSV"},
		{"config.json", "JSON"},
		{"feed.xml", "XML/HTML"},
		{"page.html", "XML/HTML"},
		{"page.htm", "XML/HTML"},
		{"readme.md", "Markdown"},
		{"readme.markdown", "Markdown"},
	}

	for _, tt := range tests {
		ex := r.Detect(tt.filename)
		if ex == nil {
			t.Errorf("Detect(%q) = nil, want %q", tt.filename, tt.wantName)
			continue
		}
		if ex.Name() != tt.wantName {
			t.Errorf("Detect(%q) = %q, want %q", tt.filename, ex.Name(), tt.wantName)
		}
	}
}

func TestRegistry_DetectCaseInsensitive(t *testing.T) {
	r := NewRegistry()

	upper := r.Detect("A.CSV")
	lower := r.Detect("a.csv")
	if upper == nil || lower == nil {
		t.Fatal("expected both A.CSV and a.csv to be detected")
	}
	if upper != lower {
		t.Error("A.CSV and a.csv selected different extractors")
	}
}

func TestRegistry_DetectUnknown(t *testing.T) {
	r := NewRegistry()

	for _, filename := range []string{"file.unknownext", "no_extension", "image.png", ""} {
		if ex := r.Detect(filename); ex != nil {
			t.Errorf("Detect(%q) = %q, want nil", filename, ex.Name())
		}
	}
}

func TestRegistry_CanHandle(t *testing.T) {
	r := NewRegistry()

	if !r.CanHandle("data.csv") {
		t.Error("CanHandle(data.csv) = false, want true")
	}
	if r.CanHandle("file.unknownext") {
		t.Error("CanHandle(file.unknownext) = true, want false")
	}
}

func TestRegistry_SupportedFormats(t *testing.T) {
	want := []string{"Plain Text", "CSV", "JSON", "XML/HTML", "Markdown"}

	got := NewRegistry().SupportedFormats()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SupportedFormats() = %q, want %q", got, want)
	}
}

// The built-in extension sets must stay disjoint: registration order is
// only a tie-break, and with disjoint sets no tie can occur.
func TestRegistry_ExtensionSetsDisjoint(t *testing.T) {
	r := NewRegistry()

	seen := make(map[string]string)
	for _, ex := range r.extractors {
		for _, ext := range ex.Extensions() {
			if owner, ok := seen[ext]; ok {
				t.Errorf("extension %q claimed by both %q and %q", ext, owner, ex.Name())
			}
			seen[ext] = ex.Name()
		}
	}
}

func TestRegistry_ExtractStampsMetadata(t *testing.T) {
	doc, err := NewRegistry().Extract("notes.txt", []byte("hello"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if got := doc.Metadata["parser"]; got != "Plain Text" {
		t.Errorf("metadata[parser] = %q, want %q", got, "Plain Text")
	}
	if got := doc.Metadata["filename"]; got != "notes.txt" {
		t.Errorf("metadata[filename] = %q, want %q", got, "notes.txt")
	}
}

func TestRegistry_ExtractUnsupported(t *testing.T) {
	_, err := NewRegistry().Extract("file.unknownext", []byte("data"))
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}

	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error type = %T, want *UnsupportedFormatError", err)
	}
	if unsupported.Filename != "file.unknownext" {
		t.Errorf("Filename = %q, want %q", unsupported.Filename, "file.unknownext")
	}
}

// failingExtractor stands in for a future extractor with a genuine
// failure mode; none of the built-ins can fail on a valid buffer.
type failingExtractor struct {
	cause error
}

func (f *failingExtractor) Name() string          { return "Failing" }
func (f *failingExtractor) Extensions() []string  { return []string{"fail"} }
func (f *failingExtractor) Extract(filename string, content []byte) (*model.Document, error) {
	return nil, f.cause
}

func TestRegistry_ExtractWrapsFailure(t *testing.T) {
	cause := errors.New("unexpected state")
	r := &Registry{extractors: []Extractor{&failingExtractor{cause: cause}}}

	_, err := r.Extract("broken.fail", []byte("data"))
	if err == nil {
		t.Fatal("expected error from failing extractor")
	}

	var extraction *ExtractionError
	if !errors.As(err, &extraction) {
		t.Fatalf("error type = %T, want *ExtractionError", err)
	}
	if extraction.Filename != "broken.fail" {
		t.Errorf("Filename = %q, want %q", extraction.Filename, "broken.fail")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error does not unwrap to the original cause")
	}
}

func TestRegistry_ExtractAs(t *testing.T) {
	r := NewRegistry()

	// No .csv extension, but the tag forces the CSV extractor.
	doc, err := r.ExtractAs("csv", "export.dat", []byte("a,b\n1,2"))
	if err != nil {
		t.Fatalf("ExtractAs: %v", err)
	}
	if got := doc.Metadata["parser"]; got != "CSV" {
		t.Errorf("metadata[parser] = %q, want %q", got, "CSV")
	}
	if got := doc.Metadata["rows"]; got != "2" {
		t.Errorf("metadata[rows] = %q, want %q", got, "2")
	}

	if _, err := r.ExtractAs("nosuch", "export.dat", nil); err == nil {
		t.Error("expected error for unrecognized format tag")
	}
}

// Extraction is a pure function of its input: repeated runs yield
// identical documents.
func TestRegistry_ExtractIdempotent(t *testing.T) {
	r := NewRegistry()
	input := []byte("a,b,\"c,d\"\n1,2,3")

	first, err := r.Extract("data.csv", input)
	if err != nil {
		t.Fatalf("first Extract: %v", err)
	}
	second, err := r.Extract("data.csv", input)
	if err != nil {
		t.Fatalf("second Extract: %v", err)
	}

	if first.Content != second.Content {
		t.Errorf("content differs across runs: %q vs %q", first.Content, second.Content)
	}
	if !reflect.DeepEqual(first.Metadata, second.Metadata) {
		t.Errorf("metadata differs across runs: %v vs %v", first.Metadata, second.Metadata)
	}
}

func TestWrap(t *testing.T) {
	doc := Wrap([]byte("raw content"), "text")

	if doc.Content != "raw content" {
		t.Errorf("Content = %q, want %q", doc.Content, "raw content")
	}
	if doc.Format != "text" {
		t.Errorf("Format = %q, want %q", doc.Format, "text")
	}
	if got := doc.Metadata["type"]; got != "direct_content" {
		t.Errorf("metadata[type] = %q, want %q", got, "direct_content")
	}
	if len(doc.Metadata) != 1 {
		t.Errorf("expected only the type key, got %v", doc.Metadata)
	}
}
