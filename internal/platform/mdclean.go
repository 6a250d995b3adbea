package platform

import (
	"regexp"
	"strings"
)

// csdnDenylist is the set of HTML tags CSDN rejects in Markdown.
var csdnDenylist = []string{
	"script", "style", "iframe", "frame", "frameset", "object", "embed",
	"applet", "form", "input", "button", "select", "textarea", "link",
	"meta", "base", "noscript",
}

// jianshuDenylist extends csdnDenylist with media and canvas tags.
var jianshuDenylist = append(append([]string{}, csdnDenylist...),
	"canvas", "video", "audio", "source", "track", "map", "area",
)

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// tagStripper removes a fixed set of HTML tags from Markdown text.
type tagStripper struct {
	paired []*regexp.Regexp
	open   *regexp.Regexp
	close  *regexp.Regexp
}

func newTagStripper(tags []string) *tagStripper {
	s := &tagStripper{}
	for _, tag := range tags {
		// Each tag is removed together with its content when closed.
		s.paired = append(s.paired,
			regexp.MustCompile(`(?is)<`+tag+`\b[^>]*>.*?</`+tag+`\s*>`))
	}
	names := strings.Join(tags, "|")
	s.open = regexp.MustCompile(`(?i)<(?:` + names + `)\b[^>]*>`)
	s.close = regexp.MustCompile(`(?i)</(?:` + names + `)\s*>`)
	return s
}

// strip removes paired, self-closing, unclosed and stray closing tags.
// It repeats until the text stops changing, so strip(strip(x)) == strip(x).
func (s *tagStripper) strip(text string) string {
	for {
		next := text
		for _, re := range s.paired {
			next = re.ReplaceAllString(next, "")
		}
		next = s.open.ReplaceAllString(next, "")
		next = s.close.ReplaceAllString(next, "")
		if next == text {
			return text
		}
		text = next
	}
}

// collapseBlankLines limits runs of blank lines to one.
func collapseBlankLines(text string) string {
	return excessNewlines.ReplaceAllString(text, "\n\n")
}

// ensureTrailingNewline ends non-empty text with a newline.
func ensureTrailingNewline(text string) string {
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}
