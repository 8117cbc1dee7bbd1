// Package model provides the intermediate representation for extracted
// document content.
//
// The [Document] type is the universal output record of every extraction:
// whatever the source format, the caller receives extracted text, a flat
// string-to-string metadata map, and a short format tag. Documents are
// plain values; once returned they are never retained or mutated by the
// library.
package model

// Document holds the content and metadata extracted from a single source
// document.
type Document struct {
	// Content is the extracted text. Its shape depends on the source
	// format: verbatim for plain text, reformatted for CSV and JSON,
	// de-tagged for XML/HTML and Markdown.
	Content string

	// Metadata maps string keys to string values. The keys vary by
	// format (e.g. "rows"/"columns" for CSV, "size" for JSON). Documents
	// produced through a Registry always carry "parser" and "filename".
	Metadata map[string]string

	// Format is the short format tag, e.g. "csv" or "json". For markup
	// documents it is the matched filename extension.
	Format string

	// Pages is reserved for pagination-aware formats. None of the
	// built-in extractors populate it.
	Pages []string
}

// New returns a Document with the given content and format tag and an
// empty, non-nil metadata map.
func New(content, format string) *Document {
	return &Document{
		Content:  content,
		Format:   format,
		Metadata: make(map[string]string),
		Pages:    make([]string, 0),
	}
}

// Line count, field counts and similar numeric metadata are stored as
// decimal strings so the map stays homogeneous across formats.

// Get returns the metadata value for key, or the empty string when the key
// is absent.
func (d *Document) Get(key string) string {
	return d.Metadata[key]
}

// Has reports whether the metadata map contains key.
func (d *Document) Has(key string) bool {
	_, ok := d.Metadata[key]
	return ok
}
