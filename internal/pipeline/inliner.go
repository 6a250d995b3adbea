package pipeline

import (
	stdhtml "html"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-mdexport/internal/theme"
)

// InlineCodeClass marks inline <code> elements in inlined output.
const InlineCodeClass = "inline-code"

// Fixed declarations that do not come from the theme.
const (
	markBackground = "#fff5b1"
	whiteFallback  = "#ffffff"
)

// voidElements are emitted as <tag ... />.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Inliner rewrites HTML so every element carries its styles inline.
// It holds no per-call state and is safe for concurrent use.
type Inliner struct {
	logger *slog.Logger
}

// NewInliner creates an Inliner. A nil logger discards output.
func NewInliner(logger *slog.Logger) *Inliner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Inliner{logger: logger}
}

// Inline returns src with inline style attributes computed from styles,
// extras and the code palette, wrapped in a styled <section>.
//
// When styles is empty the input is returned unchanged and a warning is
// logged. A nil code theme selects the default palette.
func (in *Inliner) Inline(src string, styles theme.ThemeStyles, extras theme.Extras, code *theme.CodeTheme) string {
	if styles.IsZero() {
		in.logger.Warn("theme has no usable styles, returning HTML unchanged")
		return src
	}
	if code == nil {
		code = theme.DefaultCodeTheme()
	}

	root, _, err := parseHTML(src)
	if err != nil {
		in.logger.Warn("cannot parse HTML for inlining, returning it unchanged", "error", err)
		return src
	}

	w := &walker{styles: styles, extras: extras, code: code}

	var b strings.Builder
	b.WriteString(`<section style="`)
	b.WriteString(stdhtml.EscapeString(ResolveCSSVars(w.baseStyle().String())))
	b.WriteString(`">`)
	w.children(&b, root, walkCtx{row: -1})
	b.WriteString("</section>")
	return b.String()
}

// walkCtx is the per-node context threaded down the recursive walk.
type walkCtx struct {
	parent       string
	inPre        bool
	inListItem   bool
	inBlockquote bool
	rows         *int // next row index of the enclosing table
	row          int  // row index of the enclosing tr, -1 outside rows
}

type walker struct {
	styles theme.ThemeStyles
	extras theme.Extras
	code   *theme.CodeTheme
}

func (w *walker) children(b *strings.Builder, n *html.Node, ctx walkCtx) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.node(b, c, ctx)
	}
}

func (w *walker) node(b *strings.Builder, n *html.Node, ctx walkCtx) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(stdhtml.EscapeString(n.Data))
	case html.ElementNode:
		w.element(b, n, ctx)
	case html.DocumentNode:
		w.children(b, n, ctx)
	}
	// Comments and doctypes are dropped.
}

func (w *walker) element(b *strings.Builder, n *html.Node, ctx walkCtx) {
	tag := n.Data
	if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
		return
	}

	style, marker := w.styleFor(n, ctx)

	b.WriteByte('<')
	b.WriteString(tag)
	if marker != "" {
		b.WriteString(` class="` + marker + `"`)
	}
	var inline string
	for _, a := range n.Attr {
		switch a.Key {
		case "class":
			continue
		case "style":
			inline = strings.TrimSpace(a.Val)
			continue
		}
		b.WriteByte(' ')
		if a.Namespace != "" {
			b.WriteString(a.Namespace + ":")
		}
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(stdhtml.EscapeString(a.Val))
		b.WriteByte('"')
	}
	if css := joinStyle(style.String(), inline); css != "" {
		b.WriteString(` style="`)
		b.WriteString(stdhtml.EscapeString(ResolveCSSVars(css)))
		b.WriteByte('"')
	}

	if voidElements[tag] {
		b.WriteString(" />")
		return
	}
	b.WriteByte('>')

	if n.DataAtom == atom.Code && !ctx.inPre {
		w.inlineCodeRuns(b, n)
	} else {
		w.children(b, n, w.childCtx(n, ctx))
	}

	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

// childCtx derives the context for the children of n.
func (w *walker) childCtx(n *html.Node, ctx walkCtx) walkCtx {
	next := ctx
	next.parent = n.Data
	switch n.DataAtom {
	case atom.Pre:
		next.inPre = true
	case atom.Li:
		next.inListItem = true
	case atom.Blockquote:
		next.inBlockquote = true
	case atom.Table:
		rows := 0
		next.rows = &rows
		next.row = -1
	case atom.Tr:
		if ctx.rows != nil {
			next.row = *ctx.rows
			*ctx.rows++
		}
	}
	return next
}

// inlineCodeRuns re-splits the text of an inline <code> into styled runs.
func (w *walker) inlineCodeRuns(b *strings.Builder, n *html.Node) {
	for _, run := range SplitRuns(textContent(n)) {
		if run.Punct {
			b.WriteString(`<span style="word-break: break-all">`)
		} else {
			b.WriteString(`<span style="word-break: keep-all">`)
		}
		b.WriteString(stdhtml.EscapeString(run.Text))
		b.WriteString("</span>")
	}
}

func (w *walker) baseStyle() declList {
	var d declList
	d.add("background", w.styles.Background)
	d.add("color", w.styles.TextColor)
	d.add("font-family", w.styles.FontFamily)
	d.add("font-size", w.styles.FontSize)
	d.add("line-height", w.styles.LineHeight)
	d.add("word-wrap", "break-word")
	d.add("text-align", "left")
	return d
}

// styleFor computes the declarations for element n and the generated
// marker class, if any.
func (w *walker) styleFor(n *html.Node, ctx walkCtx) (declList, string) {
	var d declList
	s := &w.styles
	table := s.Table

	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		level, _ := strconv.Atoi(n.Data[1:])
		d.group(s.Heading(level))
	case atom.P:
		d.group(s.Paragraph)
		if ctx.inListItem || ctx.inBlockquote {
			d.add("margin", "0")
		}
	case atom.A:
		d.group(s.Link)
	case atom.Blockquote:
		d.group(s.Blockquote)
	case atom.Code:
		if ctx.inPre {
			d.add("background", "transparent")
			d.add("color", "inherit")
			d.add("padding", "0")
			d.add("border-radius", "0")
			d.add("font-family", "inherit")
			d.add("font-size", "inherit")
			d.add("white-space", "pre")
			return d, ""
		}
		d.group(s.Code)
		return d, InlineCodeClass
	case atom.Pre:
		d.group(s.CodeBlock)
		d.add("background", w.code.Background)
		d.add("color", w.code.Color)
		d.add("position", "relative")
	case atom.Ul, atom.Ol:
		d.group(s.List)
	case atom.Li:
		d.add("margin", "0.25em 0")
	case atom.Table:
		d.add("border-collapse", "collapse")
		d.add("width", "100%")
		d.add("margin", "1em 0")
		d.add("font-size", table.Get(theme.TableFontSize))
	case atom.Th:
		d.add("background", table.Get(theme.TableHeaderBackground))
		d.add("color", table.Get(theme.TableHeaderColor))
		d.add("border", borderFor(table))
		d.add("padding", table.Get(theme.TableCellPadding))
		d.add("font-weight", "bold")
	case atom.Td:
		d.add("border", borderFor(table))
		d.add("padding", table.Get(theme.TableCellPadding))
		if ctx.row >= 0 && ctx.row%2 == 1 {
			d.add("background", table.Get(theme.TableEvenRowBackground))
		}
	case atom.Img:
		d.group(s.Image)
	case atom.Hr:
		d.group(s.HR)
	case atom.Strong, atom.B:
		d.add("font-weight", "bold")
		d.group(w.extras.Strong)
	case atom.Em, atom.I:
		d.add("font-style", "italic")
		d.group(w.extras.Em)
	case atom.Mark:
		d.add("background", markBackground)
		d.add("color", "inherit")
		d.add("padding", "0 2px")
	case atom.Span:
		if hasClass(n, CodeLangClass) {
			d.add("position", "absolute")
			d.add("top", "0.5em")
			d.add("right", "1em")
			d.add("font-size", "0.75em")
			d.add("color", w.code.Comment)
			d.add("user-select", "none")
			break
		}
		if role := TokenRole(classes(n)); role != "" {
			d = tokenStyle(role, w.code)
		}
	}
	return d, ""
}

func borderFor(table theme.StyleGroup) string {
	if c := table.Get(theme.TableBorderColor); c != "" {
		return "1px solid " + c
	}
	return ""
}

// decl is one CSS declaration.
type decl struct {
	prop string
	val  string
}

// declList is an ordered declaration list; setting a property again
// replaces its value in place.
type declList []decl

func (d *declList) add(prop, val string) {
	val = strings.TrimSpace(val)
	if val == "" {
		return
	}
	if strings.HasPrefix(prop, "background") {
		val = sanitizeBackground(val)
	}
	for i := range *d {
		if (*d)[i].prop == prop {
			(*d)[i].val = val
			return
		}
	}
	*d = append(*d, decl{prop: prop, val: val})
}

// group adds every property of g in sorted key order.
func (d *declList) group(g theme.StyleGroup) {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		d.add(theme.CamelToKebab(k), g[k])
	}
}

func (d declList) String() string {
	parts := make([]string, len(d))
	for i, x := range d {
		parts[i] = x.prop + ": " + x.val
	}
	return strings.Join(parts, "; ")
}

// sanitizeBackground reduces gradients to their first literal color.
// CSS variables are resolved first so a var() stop counts as a color.
func sanitizeBackground(v string) string {
	v = ResolveCSSVars(v)
	if !strings.Contains(v, "-gradient(") {
		return v
	}
	if c := theme.FirstColor(v); c != "" {
		return c
	}
	return whiteFallback
}

func joinStyle(computed, existing string) string {
	existing = sanitizeInlineStyle(existing)
	switch {
	case computed == "":
		return existing
	case existing == "":
		return computed
	}
	return computed + "; " + existing
}

// sanitizeInlineStyle applies background sanitization to a source style
// attribute, keeping every other declaration verbatim.
func sanitizeInlineStyle(style string) string {
	var out []string
	for _, part := range splitDeclarations(style) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		prop, val, ok := strings.Cut(part, ":")
		if ok && strings.HasPrefix(strings.ToLower(strings.TrimSpace(prop)), "background") {
			part = strings.TrimSpace(prop) + ": " + sanitizeBackground(strings.TrimSpace(val))
		}
		out = append(out, part)
	}
	return strings.Join(out, "; ")
}

// splitDeclarations splits on semicolons that are not inside parentheses.
func splitDeclarations(style string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(style); i++ {
		switch style[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ';':
			if depth == 0 {
				parts = append(parts, style[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, style[start:])
}
