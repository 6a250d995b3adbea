package platform

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/alnah/go-mdexport/internal/theme"
)

// ExternalImageMarker is appended to the alt text of images CSDN will not
// host itself.
const ExternalImageMarker = "[外链图片]"

// markdownImage matches ![alt](url "title") and ![alt](<url with spaces>).
// Alt text may hold one level of brackets so already-annotated images are
// still recognized.
var markdownImage = regexp.MustCompile(`!\[((?:[^\[\]]|\[[^\[\]]*\])*)\]\((<[^>\n]*>|[^)\s]+)(\s+"[^"]*")?\)`)

// csdnHosts are the domains whose images need no annotation.
var csdnHosts = []string{"csdnimg.cn", "csdn.net"}

// CSDNExporter sanitizes Markdown for the CSDN editor.
type CSDNExporter struct {
	info
	tags *tagStripper
}

// NewCSDNExporter creates the CSDN adapter.
func NewCSDNExporter() *CSDNExporter {
	return &CSDNExporter{
		info: info{id: CSDN, name: "CSDN", icon: "📝", format: FormatMarkdown},
		tags: newTagStripper(csdnDenylist),
	}
}

// Export runs the CSDN pipeline:
//  1. strip denylisted HTML tags
//  2. annotate external images
//  3. collapse 3+ newlines to 2
//  4. ensure a trailing newline
//
// Code is held aside during steps 1-3.
func (e *CSDNExporter) Export(markdown, _ string, _ *theme.Theme) (*ExportResult, error) {
	if markdown == "" {
		return textResult(""), nil
	}

	var p protector
	text := p.protectCode(markdown)
	text = e.tags.strip(text)
	text = annotateExternalImages(text)
	text = collapseBlankLines(text)
	text = p.restore(text)
	return textResult(ensureTrailingNewline(text)), nil
}

// annotateExternalImages appends ExternalImageMarker to the alt text of
// every image not hosted by CSDN, at most once per image.
func annotateExternalImages(text string) string {
	return markdownImage.ReplaceAllStringFunc(text, func(img string) string {
		m := markdownImage.FindStringSubmatch(img)
		alt, src, title := m[1], m[2], m[3]
		if strings.Contains(alt, ExternalImageMarker) || !isExternalImage(src) {
			return img
		}
		return "![" + alt + ExternalImageMarker + "](" + src + title + ")"
	})
}

func isExternalImage(src string) bool {
	src = strings.TrimSuffix(strings.TrimPrefix(src, "<"), ">")
	if strings.HasPrefix(strings.ToLower(src), "data:") {
		return false
	}
	u, err := url.Parse(src)
	if err != nil {
		return true
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range csdnHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return false
		}
	}
	return true
}
