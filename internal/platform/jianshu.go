package platform

import (
	"regexp"
	"strings"

	"github.com/alnah/go-mdexport/internal/theme"
)

var (
	taskOpen       = regexp.MustCompile(`(?m)^([ \t]*)([-*+]|\d+[.)])[ \t]+\[ \]`)
	taskDone       = regexp.MustCompile(`(?m)^([ \t]*)([-*+]|\d+[.)])[ \t]+\[[xX]\]`)
	highlightMark  = regexp.MustCompile(`==([^=\n]+?)==`)
	footnoteDef    = regexp.MustCompile(`(?m)^\[\^([^\]\s]+)\]:[ \t]*`)
	footnoteRef    = regexp.MustCompile(`\[\^([^\]\s]+)\]`)
	blockMath      = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)
	inlineMath     = regexp.MustCompile(`\$([^\s$](?:[^$\n]*?[^\s$])?)\$`)
	bareNumber     = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	mathBlockLabel = "[数学公式]"
)

// JianshuExporter rewrites Markdown into the subset Jianshu renders.
type JianshuExporter struct {
	info
	tags *tagStripper
}

// NewJianshuExporter creates the Jianshu adapter.
func NewJianshuExporter() *JianshuExporter {
	return &JianshuExporter{
		info: info{id: Jianshu, name: "简书", icon: "📔", format: FormatMarkdown},
		tags: newTagStripper(jianshuDenylist),
	}
}

// Export runs the Jianshu pipeline:
//  1. strip denylisted HTML tags
//  2. task markers: - [ ] to - ☐, - [x] to - ☑
//  3. ==text== to **text**
//  4. footnote definitions [^n]: t to 注n: t
//  5. footnote references [^n] to (注n)
//  6. block $$...$$ to a fenced block tagged [数学公式]
//  7. inline $...$ to `[公式: ...]` unless it is a bare number
//  8. collapse blank lines and ensure a trailing newline
//
// Step 4 must run before step 5, otherwise definitions are converted as
// references. Code is held aside throughout.
func (e *JianshuExporter) Export(markdown, _ string, _ *theme.Theme) (*ExportResult, error) {
	if markdown == "" {
		return textResult(""), nil
	}

	var p protector
	text := p.protectCode(markdown)
	text = e.tags.strip(text)
	text = convertTaskMarkers(text)
	text = highlightMark.ReplaceAllString(text, "**$1**")
	text = footnoteDef.ReplaceAllString(text, "注$1: ")
	text = footnoteRef.ReplaceAllString(text, "(注$1)")
	text = convertBlockMath(text, &p)
	text = convertInlineMath(text)
	text = collapseBlankLines(text)
	text = p.restore(text)
	return textResult(ensureTrailingNewline(text)), nil
}

func convertTaskMarkers(text string) string {
	text = taskOpen.ReplaceAllString(text, "${1}${2} ☐")
	return taskDone.ReplaceAllString(text, "${1}${2} ☑")
}

// convertBlockMath turns $$...$$ into a fenced block on its own lines.
// The block is held so later passes leave the formula alone.
func convertBlockMath(text string, p *protector) string {
	locs := blockMath.FindAllStringSubmatchIndex(text, -1)
	if locs == nil {
		return text
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		formula := strings.TrimSpace(text[loc[2]:loc[3]])

		b.WriteString(text[last:start])
		if start > 0 && text[start-1] != '\n' {
			b.WriteByte('\n')
		}
		b.WriteString(p.hold("```" + mathBlockLabel + "\n" + formula + "\n```"))
		if end < len(text) && text[end] != '\n' {
			b.WriteByte('\n')
		}
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

// convertInlineMath wraps inline formulas in code, leaving currency-like
// bare numbers ($100, $3.50$) untouched.
func convertInlineMath(text string) string {
	return inlineMath.ReplaceAllStringFunc(text, func(m string) string {
		formula := m[1 : len(m)-1]
		if bareNumber.MatchString(formula) {
			return m
		}
		return "`[公式: " + formula + "]`"
	})
}
