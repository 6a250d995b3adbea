package platform

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholder delimiters for held-aside regions. Private Use Area runes
// never occur in the patterns the rewrite passes look for.
const (
	holdStart = "\uE100"
	holdEnd   = "\uE101"
)

var (
	fenceLine  = regexp.MustCompile("^ {0,3}(```+|~~~+)")
	inlineCode = regexp.MustCompile("``[^\n]*?``|`[^`\n]+`")
	heldRef    = regexp.MustCompile(holdStart + `(\d+)` + holdEnd)
)

// protector swaps regions of text for opaque placeholders and puts them
// back afterwards.
type protector struct {
	held []string
}

// hold stores s and returns its placeholder.
func (p *protector) hold(s string) string {
	p.held = append(p.held, s)
	return holdStart + strconv.Itoa(len(p.held)-1) + holdEnd
}

// protectCode holds fenced code blocks, then inline code spans.
// An unterminated fence runs to the end of the text.
func (p *protector) protectCode(text string) string {
	return p.protectInline(p.protectFences(text))
}

func (p *protector) protectFences(text string) string {
	lines := strings.SplitAfter(text, "\n")
	var out, block strings.Builder
	fence := ""

	for _, line := range lines {
		if fence == "" {
			if m := fenceLine.FindStringSubmatch(line); m != nil {
				fence = m[1]
				block.WriteString(line)
				continue
			}
			out.WriteString(line)
			continue
		}

		block.WriteString(line)
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, fence) && strings.Trim(trimmed, fence[:1]) == "" {
			out.WriteString(p.holdBlock(block.String()))
			block.Reset()
			fence = ""
		}
	}
	if block.Len() > 0 {
		out.WriteString(p.holdBlock(block.String()))
	}
	return out.String()
}

// holdBlock keeps the trailing newline outside the placeholder so
// line-anchored passes still see line boundaries.
func (p *protector) holdBlock(block string) string {
	body, found := strings.CutSuffix(block, "\n")
	ph := p.hold(body)
	if found {
		ph += "\n"
	}
	return ph
}

func (p *protector) protectInline(text string) string {
	return inlineCode.ReplaceAllStringFunc(text, p.hold)
}

// restore replaces every placeholder with its original text. Held text
// may itself contain placeholders, so it repeats until nothing changes.
func (p *protector) restore(text string) string {
	for range len(p.held) + 1 {
		next := heldRef.ReplaceAllStringFunc(text, func(ref string) string {
			i, err := strconv.Atoi(ref[len(holdStart) : len(ref)-len(holdEnd)])
			if err != nil || i >= len(p.held) {
				return ref
			}
			return p.held[i]
		})
		if next == text {
			break
		}
		text = next
	}
	return text
}
