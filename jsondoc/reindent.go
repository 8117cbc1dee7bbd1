package jsondoc

import "strings"

// Reindent reformats bracketed structured text without parsing its
// grammar. Outside of string literals each opening bracket starts a new
// line at one deeper indent level, each closing bracket returns to the
// previous level, commas break lines, and whitespace is dropped. String
// literals pass through verbatim; a '"' is part of the literal when the
// immediately preceding character is a backslash, and the first character
// of the input is never escaped.
//
// Input is not validated. Unbalanced brackets or non-structured text
// produce garbled but non-crashing output, and the indent level may go
// negative, in which case lines simply get no leading spaces.
func Reindent(input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)

	indent := 0
	inString := false

	for i := 0; i < len(input); i++ {
		c := input[i]

		if c == '"' && (i == 0 || input[i-1] != '\\') {
			inString = !inString
		}

		if inString {
			b.WriteByte(c)
			continue
		}

		switch c {
		case '{', '[':
			b.WriteByte(c)
			b.WriteByte('\n')
			indent++
			writeIndent(&b, indent)
		case '}', ']':
			b.WriteByte('\n')
			indent--
			writeIndent(&b, indent)
			b.WriteByte(c)
		case ',':
			b.WriteByte(c)
			b.WriteByte('\n')
			writeIndent(&b, indent)
		case ' ', '\t', '\n':
			// Structural whitespace is dropped.
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// writeIndent writes two spaces per indent level, none when the level has
// gone negative.
func writeIndent(b *strings.Builder, level int) {
	for i := 0; i < level*2; i++ {
		b.WriteByte(' ')
	}
}
