// Package jsondoc provides JSON document extraction.
//
// Extraction is purely cosmetic re-indentation: the content is never
// unmarshalled or validated, only rewritten with one element per line (see
// [Reindent]). Callers wanting a parsed value should use encoding/json on
// the original bytes instead.
package jsondoc

import (
	"strconv"

	"github.com/tsawler/papyrus/model"
)

// Extractor handles .json files.
type Extractor struct{}

// New creates a JSON extractor.
func New() *Extractor { return &Extractor{} }

// Name returns the display name of the format.
func (e *Extractor) Name() string { return "JSON" }

// Extensions returns the filename extensions this extractor recognizes.
func (e *Extractor) Extensions() []string { return []string{"json"} }

// Extract re-indents content for readability. Metadata reports the byte
// length of the original input, not of the reformatted output.
func (e *Extractor) Extract(filename string, content []byte) (*model.Document, error) {
	text := string(content)

	doc := model.New(Reindent(text), "json")
	doc.Metadata["type"] = "json"
	doc.Metadata["size"] = strconv.Itoa(len(text))

	return doc, nil
}
