// Package xmldoc provides XML and HTML document extraction.
package xmldoc

import (
	"github.com/tsawler/papyrus/format"
	"github.com/tsawler/papyrus/model"
)

// Extractor handles .xml, .html and .htm files by stripping tags and
// keeping the enclosed text.
type Extractor struct{}

// New creates an XML/HTML extractor.
func New() *Extractor { return &Extractor{} }

// Name returns the display name of the format.
func (e *Extractor) Name() string { return "XML/HTML" }

// Extensions returns the filename extensions this extractor recognizes.
func (e *Extractor) Extensions() []string { return []string{"xml", "html", "htm"} }

// Extract strips tags from content (see [StripTags]). The document's
// format tag is the filename's extension. Metadata carries the matched
// extension under "format" and has_tags="true"; the flag is not checked
// against the content and is emitted unconditionally for this extractor.
// For HTML input the head section is additionally probed for a title and
// meta tags.
func (e *Extractor) Extract(filename string, content []byte) (*model.Document, error) {
	ext := format.Ext(filename)
	if ext == "" {
		// No extension hint, e.g. content handed over directly.
		ext = "xml"
	}

	doc := model.New(StripTags(string(content)), ext)
	doc.Metadata["format"] = ext
	doc.Metadata["has_tags"] = "true"

	if ext == "html" || ext == "htm" {
		probeHead(doc, content)
	}

	return doc, nil
}
