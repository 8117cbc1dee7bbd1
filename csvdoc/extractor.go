// Package csvdoc provides CSV document extraction.
//
// The extractor does not aim for full RFC 4180 compliance: quoting is
// handled by a simple toggle (see [SplitLine]) and records never span
// physical lines, so a quoted field containing a newline splits into two
// records. The output is a readable reformatting of the rows, not a
// faithful structured representation.
package csvdoc

import (
	"strconv"
	"strings"

	"github.com/tsawler/papyrus/model"
)

// Extractor handles .csv files.
type Extractor struct{}

// New creates a CSV extractor.
func New() *Extractor { return &Extractor{} }

// Name returns the display name of the format.
func (e *Extractor) Name() string { return "CSV" }

// Extensions returns the filename extensions this extractor recognizes.
func (e *Extractor) Extensions() []string { return []string{"csv"} }

// Extract tokenizes each line of content and reformats the rows with a
// " | " field separator, one row per line with a trailing newline.
// Metadata reports the row count and, when at least one row is present,
// the field count of the first row; "columns" is omitted entirely for
// empty input.
func (e *Extractor) Extract(filename string, content []byte) (*model.Document, error) {
	rows := parseRows(string(content))

	doc := model.New("", "csv")
	doc.Metadata["rows"] = strconv.Itoa(len(rows))
	if len(rows) > 0 {
		doc.Metadata["columns"] = strconv.Itoa(len(rows[0]))
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, " | "))
		b.WriteByte('\n')
	}
	doc.Content = b.String()

	return doc, nil
}

// parseRows splits content into physical lines and tokenizes each one.
func parseRows(content string) [][]string {
	lines := splitLines(content)
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, SplitLine(line))
	}
	return rows
}
