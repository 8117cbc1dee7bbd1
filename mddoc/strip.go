package mddoc

import "regexp"

var (
	headingPrefix = regexp.MustCompile(`^#+\s*`)
	boldSpan      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicSpan    = regexp.MustCompile(`\*([^*]+)\*`)
	linkSpan      = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	fencedBlock   = regexp.MustCompile("```[^`]*```")
	inlineCode    = regexp.MustCompile("`([^`]+)`")
)

// StripInline removes lightweight markup decorations from content by
// applying substitution passes in a fixed order:
//
//  1. a leading run of '#' characters plus optional whitespace, anchored
//     at the very start of the content only (headings after the first
//     line keep their markers — a known limitation)
//  2. **bold** spans unwrapped
//  3. *italic* spans unwrapped, after the bold pass so stray single
//     asterisks left by it are candidates too
//  4. [label](url) links replaced by their label
//  5. fenced code blocks removed together with their contents
//  6. remaining `inline code` unwrapped
//
// The passes are sequential and their order is significant; fusing or
// reordering them changes the output.
func StripInline(content string) string {
	out := headingPrefix.ReplaceAllString(content, "")
	out = boldSpan.ReplaceAllString(out, "$1")
	out = italicSpan.ReplaceAllString(out, "$1")
	out = linkSpan.ReplaceAllString(out, "$1")
	out = fencedBlock.ReplaceAllString(out, "")
	out = inlineCode.ReplaceAllString(out, "$1")
	return out
}
