package papyrus

import (
	"strings"

	"github.com/tsawler/papyrus/csvdoc"
	"github.com/tsawler/papyrus/format"
	"github.com/tsawler/papyrus/jsondoc"
	"github.com/tsawler/papyrus/mddoc"
	"github.com/tsawler/papyrus/model"
	"github.com/tsawler/papyrus/textdoc"
	"github.com/tsawler/papyrus/xmldoc"
)

// Extractor converts a format-specific content buffer into a Document.
// Implementations are stateless and safe for concurrent use.
type Extractor interface {
	// Name returns the human-readable format name, e.g. "Plain Text".
	Name() string

	// Extensions returns the lower-case filename extensions the
	// extractor recognizes, without the leading dot.
	Extensions() []string

	// Extract parses content and returns a fresh Document. The filename
	// is a hint only; implementations never open it.
	Extract(filename string, content []byte) (*model.Document, error)
}

// Compile-time interface checks for the built-in extractors.
var (
	_ Extractor = (*textdoc.Extractor)(nil)
	_ Extractor = (*csvdoc.Extractor)(nil)
	_ Extractor = (*jsondoc.Extractor)(nil)
	_ Extractor = (*xmldoc.Extractor)(nil)
	_ Extractor = (*mddoc.Extractor)(nil)
)

// Registry holds an ordered list of extractors and dispatches content to
// the first one whose extension set matches a filename. The list is fixed
// at construction, so a Registry is safe to share across concurrent
// callers.
type Registry struct {
	extractors []Extractor
}

// NewRegistry returns a Registry with the five built-in extractors in
// their fixed priority order: plain text, CSV, JSON, XML/HTML, Markdown.
// The built-in extension sets are disjoint, so order only matters as a
// tie-break for extractors added by future revisions.
func NewRegistry() *Registry {
	return &Registry{
		extractors: []Extractor{
			textdoc.New(),
			csvdoc.New(),
			jsondoc.New(),
			xmldoc.New(),
			mddoc.New(),
		},
	}
}

// Detect returns the first registered extractor whose extension set
// contains the filename's extension, or nil when none matches. Matching
// is case-insensitive.
func (r *Registry) Detect(filename string) Extractor {
	ext := format.Ext(filename)
	for _, ex := range r.extractors {
		for _, candidate := range ex.Extensions() {
			if candidate == ext {
				return ex
			}
		}
	}
	return nil
}

// CanHandle reports whether some registered extractor matches filename.
func (r *Registry) CanHandle(filename string) bool {
	return r.Detect(filename) != nil
}

// SupportedFormats returns the display name of every registered extractor
// in registration order.
func (r *Registry) SupportedFormats() []string {
	names := make([]string, 0, len(r.extractors))
	for _, ex := range r.extractors {
		names = append(names, ex.Name())
	}
	return names
}

// Extract selects an extractor for filename and runs it over content.
// On success the document's metadata is stamped with the extractor's
// display name under "parser" and the source filename under "filename".
// A filename no extractor recognizes yields an *UnsupportedFormatError;
// an extractor failure is wrapped in an *ExtractionError.
func (r *Registry) Extract(filename string, content []byte) (*model.Document, error) {
	ex := r.Detect(filename)
	if ex == nil {
		return nil, &UnsupportedFormatError{Filename: filename}
	}
	return r.run(ex, filename, content)
}

// ExtractAs runs the extractor registered under the given format tag,
// bypassing filename detection. The tag is matched case-insensitively
// against extractor extensions, so "csv", "html" and "markdown" all
// resolve. An unrecognized tag yields an *UnsupportedFormatError.
func (r *Registry) ExtractAs(tag, filename string, content []byte) (*model.Document, error) {
	target := strings.ToLower(tag)
	for _, ex := range r.extractors {
		for _, candidate := range ex.Extensions() {
			if candidate == target {
				return r.run(ex, filename, content)
			}
		}
	}
	return nil, &UnsupportedFormatError{Filename: filename}
}

// run invokes an extractor and stamps the registry metadata keys.
func (r *Registry) run(ex Extractor, filename string, content []byte) (*model.Document, error) {
	doc, err := ex.Extract(filename, content)
	if err != nil {
		return nil, &ExtractionError{Filename: filename, Err: err}
	}
	doc.Metadata["parser"] = ex.Name()
	doc.Metadata["filename"] = filename
	return doc, nil
}

// Wrap builds a Document directly from content with the given format tag,
// skipping detection and per-format processing entirely. The content
// passes through unchanged and metadata carries type="direct_content".
func Wrap(content []byte, formatTag string) *model.Document {
	doc := model.New(string(content), formatTag)
	doc.Metadata["type"] = "direct_content"
	return doc
}
