package platform

import (
	"fmt"
	stdhtml "html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/alnah/go-mdexport/internal/theme"
)

var (
	langClass  = regexp.MustCompile(`^(?:language|lang)-(.+)$`)
	blankLines = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)
)

// imageAttrs are the only attributes Zhihu keeps on <img>.
var imageAttrs = map[string]bool{"src": true, "alt": true, "title": true}

// ZhihuExporter normalizes HTML for the Zhihu editor.
type ZhihuExporter struct {
	info
	plain *bluemonday.Policy
}

// NewZhihuExporter creates the Zhihu adapter.
func NewZhihuExporter() *ZhihuExporter {
	plain := bluemonday.StripTagsPolicy()
	plain.AddSpaceWhenStrippingTag(true)
	return &ZhihuExporter{
		info:  info{id: Zhihu, name: "知乎", icon: "📘", format: FormatHTML},
		plain: plain,
	}
}

// Export rewrites html so Zhihu's paste filter keeps code blocks and
// images intact:
//   - language labels are dropped and div.highlight wrappers unwrapped
//   - every <pre> becomes <pre><code class="language-X">text</code></pre>
//   - <img> keeps only src, alt and title
//   - style and data-* attributes are removed everywhere
//
// Math (.math elements, $...$ text) passes through untouched. The result
// also carries a tag-stripped plain-text fallback.
func (e *ZhihuExporter) Export(_ string, html string, _ *theme.Theme) (*ExportResult, error) {
	if strings.TrimSpace(html) == "" {
		return &ExportResult{Content: "", MIMEType: MIMEHTML, PlainText: ""}, nil
	}

	content, err := normalizeZhihu(html)
	if err != nil {
		// Keep the input when it cannot be parsed.
		content = html
	}
	return &ExportResult{
		Content:   content,
		MIMEType:  MIMEHTML,
		PlainText: e.plainText(content),
	}, nil
}

func normalizeZhihu(src string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	doc.Find(".code-lang").Remove()

	doc.Find("div.highlight").Each(func(_ int, s *goquery.Selection) {
		if s.Find("pre").Length() > 0 {
			s.Children().Unwrap()
		}
	})

	doc.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		lang := codeLanguage(pre)
		text := pre.Text()

		code := "<code"
		if lang != "" {
			code += ` class="language-` + stdhtml.EscapeString(lang) + `"`
		}
		code += ">" + stdhtml.EscapeString(text) + "</code>"

		pre.SetHtml(code)
		pre.Nodes[0].Attr = nil
	})

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		n := s.Nodes[0]
		isImg := n.Data == "img"
		kept := n.Attr[:0]
		for _, a := range n.Attr {
			switch {
			case a.Key == "style", strings.HasPrefix(a.Key, "data-"):
				continue
			case isImg && !imageAttrs[a.Key]:
				continue
			}
			kept = append(kept, a)
		}
		n.Attr = kept
	})

	return doc.Find("body").Html()
}

// codeLanguage finds the language of a code block from language-X or
// lang-X classes, or data-lang, on the <pre> or its <code>.
func codeLanguage(pre *goquery.Selection) string {
	candidates := []*goquery.Selection{pre, pre.ChildrenFiltered("code").First()}
	for _, s := range candidates {
		if s.Length() == 0 {
			continue
		}
		if class, ok := s.Attr("class"); ok {
			for _, c := range strings.Fields(class) {
				if m := langClass.FindStringSubmatch(c); m != nil {
					return m[1]
				}
			}
		}
		if lang, ok := s.Attr("data-lang"); ok && lang != "" {
			return lang
		}
	}
	return ""
}

func (e *ZhihuExporter) plainText(content string) string {
	text := stdhtml.UnescapeString(e.plain.Sanitize(content))
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
