// Package papyrus extracts plain-text content and lightweight metadata
// from documents in several common formats, behind a single uniform
// interface. It is intended as an ingestion front-end for text-consuming
// pipelines (search indexing, summarization, analytics) that need
// format-agnostic access to document content.
//
// Basic usage:
//
//	content, err := os.ReadFile("report.csv")
//	if err != nil {
//	    // handle error
//	}
//	doc, err := papyrus.Extract("report.csv", content)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(doc.Content)
//	fmt.Println(doc.Metadata["rows"], doc.Metadata["columns"])
//
// Supported formats are plain text (.txt, .text), CSV, JSON, XML/HTML and
// Markdown, selected by filename extension. Extraction is best effort:
// the library produces readable text and coarse metadata, not a faithful
// structured representation of any format's grammar.
//
// All operations are pure functions of their input. The library performs
// no I/O; callers read the bytes and hand them over together with a
// filename hint. A Registry is immutable after construction and safe to
// share across goroutines.
package papyrus

import "github.com/tsawler/papyrus/model"

// defaultRegistry serves the package-level convenience functions.
var defaultRegistry = NewRegistry()

// Extract runs the default registry over content, using filename to pick
// the extractor.
//
// Example:
//
//	doc, err := papyrus.Extract("notes.md", content)
func Extract(filename string, content []byte) (*model.Document, error) {
	return defaultRegistry.Extract(filename, content)
}

// CanHandle reports whether the default registry recognizes filename.
func CanHandle(filename string) bool {
	return defaultRegistry.CanHandle(filename)
}

// SupportedFormats returns the display names of the default registry's
// extractors in registration order.
func SupportedFormats() []string {
	return defaultRegistry.SupportedFormats()
}
