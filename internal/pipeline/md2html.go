package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	stdhtml "html"
	"io"
	"log/slog"
	"regexp"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Class names emitted around fenced code blocks.
const (
	CodeBlockClass = "code-block"
	CodeLangClass  = "code-lang"
	HighlightClass = "hljs-"
)

// Parser converts Markdown to HTML using goldmark (pure Go).
// It is safe for concurrent use.
type Parser struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	logger *slog.Logger
}

// NewParser creates a Parser with GFM extensions, footnotes, hard wraps
// and chroma syntax highlighting. A nil logger discards output.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
					chromahtml.ClassPrefix(HighlightClass),
					chromahtml.PreventSurroundingPre(true),
				),
				highlighting.WithWrapperRenderer(wrapCodeBlock),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithUnsafe(),    // Raw HTML is passed through, then sanitized
		),
	)
	return &Parser{md: md, policy: newSanitizer(), logger: logger}
}

// newSanitizer extends the UGC policy with what the renderer emits:
// highlight classes, task-list checkboxes, <mark> and data-lang.
func newSanitizer() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
	p.AllowAttrs("data-lang").OnElements("pre", "code")
	p.AllowElements("mark")
	p.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")
	p.AllowAttrs("style").Matching(regexp.MustCompile(`^text-align:\s*(left|right|center);?$`)).OnElements("th", "td")
	return p
}

// wrapCodeBlock renders the <pre>/<code> pair around a fenced code block.
// Only languages chroma knows get a visible label.
func wrapCodeBlock(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	if !entering {
		_, _ = w.WriteString("</code></pre>\n")
		return
	}

	lang, hasLang := c.Language()
	_, _ = w.WriteString(`<pre class="` + CodeBlockClass + `">`)
	if hasLang && len(lang) > 0 && lexers.Get(string(lang)) != nil {
		_, _ = w.WriteString(`<span class="` + CodeLangClass + `">`)
		_, _ = w.WriteString(stdhtml.EscapeString(string(lang)))
		_, _ = w.WriteString("</span>")
	}
	_, _ = w.WriteString("<code")
	if hasLang && len(lang) > 0 {
		_, _ = w.WriteString(` class="language-` + stdhtml.EscapeString(string(lang)) + `"`)
	}
	_ = w.WriteByte('>')
}

// Parse converts Markdown to an HTML fragment. It never fails: on any
// error or panic the escaped input is returned instead.
func (p *Parser) Parse(markdown string) (out string) {
	if markdown == "" {
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("markdown parse panicked, falling back to escaped text", "panic", r)
			out = stdhtml.EscapeString(markdown)
		}
	}()

	result, err := p.toHTML(markdown)
	if err != nil {
		p.logger.Warn("markdown parse failed, falling back to escaped text", "error", err)
		return stdhtml.EscapeString(markdown)
	}
	return result
}

func (p *Parser) toHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(Preprocess(markdown)), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	out := p.policy.Sanitize(buf.String())
	out = ConvertMarkPlaceholders(out)
	return splitInlineCodeElements(out)
}

// splitInlineCodeElements rewrites every <code> outside <pre> into
// punctuation and text runs.
func splitInlineCodeElements(fragment string) (string, error) {
	root, _, err := parseHTML(fragment)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	var codes []*xhtml.Node
	var collect func(*xhtml.Node)
	collect = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode && n.DataAtom == atom.Code && !hasAncestor(n, atom.Pre) {
			codes = append(codes, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(root)

	for _, code := range codes {
		text := textContent(code)
		for code.FirstChild != nil {
			code.RemoveChild(code.FirstChild)
		}
		for _, run := range SplitRuns(text) {
			class := TextClass
			if run.Punct {
				class = PunctClass
			}
			span := &xhtml.Node{
				Type:     xhtml.ElementNode,
				DataAtom: atom.Span,
				Data:     "span",
				Attr:     []xhtml.Attribute{{Key: "class", Val: class}},
			}
			span.AppendChild(&xhtml.Node{Type: xhtml.TextNode, Data: run.Text})
			code.AppendChild(span)
		}
	}

	return renderChildren(root)
}
