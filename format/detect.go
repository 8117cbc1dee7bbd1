// Package format provides file format detection for the papyrus library.
package format

import "strings"

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PlainText indicates a plain text (.txt, .text) document.
	PlainText
	// CSV indicates a comma-separated values document.
	CSV
	// JSON indicates a JSON document.
	JSON
	// Markup indicates an XML or HTML document.
	Markup
	// Markdown indicates a Markdown document.
	Markdown
)

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case PlainText:
		return "Plain Text"
	case CSV:
		return "CSV"
	case JSON:
		return "JSON"
	case Markup:
		return "XML/HTML"
	case Markdown:
		return "Markdown"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PlainText:
		return ".txt"
	case CSV:
		return ".csv"
	case JSON:
		return ".json"
	case Markup:
		return ".xml"
	case Markdown:
		return ".md"
	default:
		return ""
	}
}

// Ext returns the filename's extension: the lower-cased substring after the
// last '.', without the dot. A filename with no '.' yields the empty string.
func Ext(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// Detect determines file format from the filename extension.
func Detect(filename string) Format {
	switch Ext(filename) {
	case "txt", "text":
		return PlainText
	case "csv":
		return CSV
	case "json":
		return JSON
	case "xml", "html", "htm":
		return Markup
	case "md", "markdown":
		return Markdown
	default:
		return Unknown
	}
}

// DetectFromMagic inspects leading content bytes to determine format.
// Only formats with a recognizable prologue are detected: JSON documents
// open with a bracket, XML and HTML with an angle bracket. Plain text, CSV
// and Markdown have no reliable signature and always report Unknown, so
// callers should fall back to extension-based detection.
func DetectFromMagic(data []byte) Format {
	// Trim leading whitespace
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return Unknown
	}
	data = data[start:]

	switch data[0] {
	case '{', '[':
		return JSON
	case '<':
		return Markup
	}

	return Unknown
}
