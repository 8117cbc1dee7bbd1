// Package mddoc provides Markdown document extraction.
//
// Extraction strips inline decorations rather than building an AST; the
// result is readable plain text, not a rendered document. See
// [StripInline] for the exact passes and their known limitations.
package mddoc

import (
	"github.com/tsawler/papyrus/model"
)

// Extractor handles .md and .markdown files.
type Extractor struct{}

// New creates a Markdown extractor.
func New() *Extractor { return &Extractor{} }

// Name returns the display name of the format.
func (e *Extractor) Name() string { return "Markdown" }

// Extensions returns the filename extensions this extractor recognizes.
func (e *Extractor) Extensions() []string { return []string{"md", "markdown"} }

// Extract strips inline markup from content.
func (e *Extractor) Extract(filename string, content []byte) (*model.Document, error) {
	doc := model.New(StripInline(string(content)), "markdown")
	doc.Metadata["format"] = "markdown"
	return doc, nil
}
