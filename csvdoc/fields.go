package csvdoc

import "strings"

// SplitLine tokenizes a single delimited line. Scanning left to right, a
// '"' toggles quote state without being emitted, a ',' outside quotes ends
// the current field, and every other character is appended verbatim. The
// final field is emitted when the line ends, so a line never produces zero
// fields.
//
// The RFC 4180 doubled-quote escape ("" inside a quoted field standing for
// a literal quote) is not handled: both quotes toggle state and neither
// reaches the output. Downstream consumers depend on this behavior, so it
// is a documented limitation rather than a bug to fix.
func SplitLine(line string) []string {
	fields := make([]string, 0, 4)
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}

	return append(fields, field.String())
}

// splitLines splits content on '\n'. A trailing newline does not produce
// an extra empty record, and empty content yields no lines at all.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
