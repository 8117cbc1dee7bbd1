// Package textdoc provides plain text document extraction.
package textdoc

import (
	"strconv"
	"strings"

	"github.com/tsawler/papyrus/model"
)

// Extractor handles .txt and .text files. Content is passed through
// unchanged.
type Extractor struct{}

// New creates a plain text extractor.
func New() *Extractor { return &Extractor{} }

// Name returns the display name of the format.
func (e *Extractor) Name() string { return "Plain Text" }

// Extensions returns the filename extensions this extractor recognizes.
func (e *Extractor) Extensions() []string { return []string{"txt", "text"} }

// Extract returns content verbatim. Metadata reports the encoding and a
// newline-based line count: the count of '\n' characters plus one, so a
// zero-length input reports one line and a trailing newline counts as
// starting another.
func (e *Extractor) Extract(filename string, content []byte) (*model.Document, error) {
	text := string(content)

	doc := model.New(text, "text")
	doc.Metadata["encoding"] = "utf-8"
	doc.Metadata["lines"] = strconv.Itoa(strings.Count(text, "\n") + 1)

	return doc, nil
}
