package pipeline

import (
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// They pass through goldmark and the sanitizer unchanged and are turned
// into <mark> tags after HTML generation.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Fenced code block delimiter (backticks or tildes, up to 3 spaces indent)
	fencedCodeBlock = regexp.MustCompile("^ {0,3}(```+|~~~+)")

	// ATX heading missing its space: ###Title
	headingNoSpace = regexp.MustCompile(`^(#{1,6})([^\s#])`)

	// Highlight syntax ==text==
	highlightPattern = regexp.MustCompile(`==([^=\n]+?)==`)

	// Single-backtick inline code span on one line
	inlineCodeSpan = regexp.MustCompile("`[^`\n]*`")
)

// Preprocess applies the Markdown fixups that run before goldmark.
// Order matters: line endings first, then heading repair, then highlights.
func Preprocess(content string) string {
	content = normalizeLineEndings(content)
	content = FixHeadingSpace(content)
	content = convertHighlights(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// FixHeadingSpace inserts the missing space in ATX headings written as
// "###Title". Lines inside fenced code blocks are left alone.
func FixHeadingSpace(content string) string {
	return processLinesWithCodeBlockAwareness(content, func(line string) string {
		return headingNoSpace.ReplaceAllString(line, "$1 $2")
	})
}

// convertHighlights transforms ==text== to placeholder markers outside
// code. ConvertMarkPlaceholders finishes the job on the HTML side.
func convertHighlights(content string) string {
	return processLinesWithCodeBlockAwareness(content, func(line string) string {
		return outsideInlineCode(line, func(s string) string {
			return highlightPattern.ReplaceAllString(s, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
		})
	})
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}

// processLinesWithCodeBlockAwareness applies process to every line that is
// not part of a fenced code block. Fence lines themselves are kept as-is.
// A block closes only on a run of its opening character at least as long
// as the opening fence, with nothing else on the line.
func processLinesWithCodeBlockAwareness(content string, process func(line string) string) string {
	lines := strings.Split(content, "\n")
	fence := ""

	for i, line := range lines {
		if fence != "" {
			if closesFence(line, fence) {
				fence = ""
			}
			continue
		}
		if m := fencedCodeBlock.FindStringSubmatch(line); m != nil {
			fence = m[1]
			continue
		}
		lines[i] = process(line)
	}
	return strings.Join(lines, "\n")
}

// closesFence reports whether line ends the block opened by fence.
func closesFence(line, fence string) bool {
	indent := len(line) - len(strings.TrimLeft(line, " "))
	if indent > 3 {
		return false
	}
	trimmed := strings.TrimSpace(line)
	return len(trimmed) >= len(fence) && strings.Trim(trimmed, fence[:1]) == ""
}

// outsideInlineCode applies fn to the parts of line that are not inside
// a `code span`.
func outsideInlineCode(line string, fn func(string) string) string {
	spans := inlineCodeSpan.FindAllStringIndex(line, -1)
	if spans == nil {
		return fn(line)
	}

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(fn(line[last:s[0]]))
		b.WriteString(line[s[0]:s[1]])
		last = s[1]
	}
	b.WriteString(fn(line[last:]))
	return b.String()
}
