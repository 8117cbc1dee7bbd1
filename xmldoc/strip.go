package xmldoc

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// StripTags removes markup tags from content. Scanning character by
// character, '<' enters tag state, '>' leaves it and emits a single space,
// and characters inside a tag are dropped. After the scan every maximal
// run of whitespace collapses to one space across the whole result, so a
// single leading or trailing space survives but runs do not.
//
// Entities are not resolved and CDATA sections get no special treatment; a
// '>' inside an attribute value ends the tag early. Best-effort readable
// text, not a markup parser.
func StripTags(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	inTag := false
	for i := 0; i < len(input); i++ {
		switch c := input[i]; {
		case c == '<':
			inTag = true
		case c == '>':
			inTag = false
			b.WriteByte(' ')
		case !inTag:
			b.WriteByte(c)
		}
	}

	return whitespaceRun.ReplaceAllString(b.String(), " ")
}
