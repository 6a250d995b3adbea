package pipeline

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alnah/go-mdexport/internal/theme"
)

var classAttr = regexp.MustCompile(`\sclass="([^"]*)"`)

func inlineDefault(t *testing.T, src string) string {
	t.Helper()
	return NewInliner(nil).Inline(src, theme.DefaultStyles(), theme.Extras{}, theme.DefaultCodeTheme())
}

// ---------------------------------------------------------------------------
// TestInliner_Inline - Per-Tag Mapping
// ---------------------------------------------------------------------------

func TestInliner_Inline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		html         string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "section wrapper",
			html:         "<p>x</p>",
			wantContains: []string{`<section style="background: #ffffff; color: #333333;`, "word-wrap: break-word", "</section>"},
		},
		{
			name:         "heading",
			html:         "<h1>T</h1>",
			wantContains: []string{`<h1 style="`, "font-size: 2em", "font-weight: bold"},
		},
		{
			name:         "link",
			html:         `<a href="https://e.com">e</a>`,
			wantContains: []string{`href="https://e.com"`, "color: #0066cc", "text-decoration: none"},
		},
		{
			name:         "paragraph in list item has no margin",
			html:         "<ul><li><p>x</p></li></ul>",
			wantContains: []string{`<p style="line-height: 1.75; margin: 0">`, "padding-left: 2em"},
		},
		{
			name:         "inline code",
			html:         "<p><code>a,b</code></p>",
			wantContains: []string{`<code class="inline-code" style="`, "background: #f4f4f4", `<span style="word-break: break-all">,</span>`},
		},
		{
			name:  "code block",
			html:  `<pre class="code-block"><code class="language-go">x := 1</code></pre>`,
			wantContains: []string{
				"position: relative",
				`<code style="background: transparent; color: inherit; padding: 0;`,
				"x := 1",
			},
			wantExcludes: []string{"inline-code", "word-break"},
		},
		{
			name:         "code label",
			html:         `<pre><span class="code-lang">go</span><code>x</code></pre>`,
			wantContains: []string{`<span style="position: absolute;`, ">go</span>"},
		},
		{
			name:         "void tags self close",
			html:         `<p>a<br>b</p><hr><img src="x.png" alt="x"><input type="checkbox" checked>`,
			wantContains: []string{"<br />", `<hr style="`, `<img src="x.png" alt="x" style="`, `<input type="checkbox" checked="" />`},
		},
		{
			name:         "strong and em",
			html:         "<p><strong>b</strong><em>i</em><b>b2</b><i>i2</i></p>",
			wantContains: []string{`<strong style="font-weight: bold">`, `<em style="font-style: italic">`, `<b style="font-weight: bold">`, `<i style="font-style: italic">`},
		},
		{
			name:         "mark",
			html:         "<p><mark>m</mark></p>",
			wantContains: []string{`<mark style="background: #fff5b1;`},
		},
		{
			name:         "script and style dropped",
			html:         "<p>a</p><script>alert(1)</script><style>p{}</style><!-- c -->",
			wantExcludes: []string{"<script", "alert", "<style", "<!--"},
		},
		{
			name:         "unknown tag kept, children styled",
			html:         "<div><p>x</p></div>",
			wantContains: []string{"<div>", `<p style="`},
		},
		{
			name:         "existing style appended",
			html:         `<p style="text-align: center">x</p>`,
			wantContains: []string{`margin: 1em 0; text-align: center"`},
		},
		{
			name:         "gradient in source style reduced",
			html:         `<div style="background: linear-gradient(90deg, #123456, #fff)">x</div>`,
			wantContains: []string{`style="background: #123456"`},
			wantExcludes: []string{"gradient"},
		},
		{
			name:         "gradient from variable reduced to its color",
			html:         `<p style="background: linear-gradient(to right, var(--primary), #fff)">x</p>`,
			wantContains: []string{"background: #0066cc"},
			wantExcludes: []string{"gradient", "background: #fff\""},
		},
		{
			name:         "text escaped",
			html:         "<p>a &lt; b &amp; c</p>",
			wantContains: []string{"a &lt; b &amp; c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := inlineDefault(t, tt.html)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Inline() missing %q\ngot: %s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("Inline() should not contain %q\ngot: %s", exclude, got)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestInliner_Completeness
// ---------------------------------------------------------------------------

func TestInliner_NoSourceClassesOrStyleTags(t *testing.T) {
	t.Parallel()

	md := "# Title\n\nSome `a.b` and **bold**.\n\n```go\nfunc f() {}\n```\n\n| a |\n|---|\n| 1 |\n\n<style>p{color:red}</style>"
	got := inlineDefault(t, NewParser(nil).Parse(md))

	if strings.Contains(got, "<style") {
		t.Errorf("output contains <style>: %s", got)
	}
	for _, m := range classAttr.FindAllStringSubmatch(got, -1) {
		if m[1] != InlineCodeClass {
			t.Errorf("source class %q carried over", m[1])
		}
	}
	for _, tag := range []string{"<h1 style=", "<p style=", "<pre style=", "<table style=", "<td style=", "<strong style="} {
		if !strings.Contains(got, tag) {
			t.Errorf("output missing %s", tag)
		}
	}
}

// ---------------------------------------------------------------------------
// TestInliner_TableStriping
// ---------------------------------------------------------------------------

func TestInliner_TableStriping(t *testing.T) {
	t.Parallel()

	src := "<table><thead><tr><th>h</th></tr></thead><tbody>" +
		"<tr><td>r1</td></tr><tr><td>r2</td></tr><tr><td>r3</td></tr></tbody></table>"
	got := inlineDefault(t, src)

	cells := regexp.MustCompile(`<td style="([^"]*)">(r\d)</td>`).FindAllStringSubmatch(got, -1)
	if len(cells) != 3 {
		t.Fatalf("found %d cells, want 3\ngot: %s", len(cells), got)
	}

	striped := map[string]bool{"r1": true, "r2": false, "r3": true}
	for _, c := range cells {
		has := strings.Contains(c[1], "background: #f9f9f9")
		if has != striped[c[2]] {
			t.Errorf("cell %s striped = %v, want %v (style %q)", c[2], has, striped[c[2]], c[1])
		}
	}
	if !strings.Contains(got, `<th style="background: #f0f0f0; color: #333333; border: 1px solid #dddddd;`) {
		t.Errorf("header cell style wrong\ngot: %s", got)
	}
}

func TestInliner_NestedTablesCountIndependently(t *testing.T) {
	t.Parallel()

	src := "<table><tr><td><table><tr><td>inner0</td></tr></table></td></tr><tr><td>outer1</td></tr></table>"
	got := inlineDefault(t, src)

	if !regexp.MustCompile(`<td style="[^"]*background: #f9f9f9[^"]*">outer1`).MatchString(got) {
		t.Errorf("outer row 1 not striped\ngot: %s", got)
	}
	if regexp.MustCompile(`<td style="[^"]*background[^"]*">inner0`).MatchString(got) {
		t.Errorf("inner row 0 striped\ngot: %s", got)
	}
}

// ---------------------------------------------------------------------------
// TestInliner_Highlighting
// ---------------------------------------------------------------------------

func TestInliner_HighlightSpans(t *testing.T) {
	t.Parallel()

	code := &theme.CodeTheme{
		Background: "#282c34", Color: "#abb2bf",
		Comment: "#5c6370", Keyword: "#c678dd", String: "#98c379", Function: "#61afef",
	}
	src := `<pre><code><span class="hljs-k">func</span> <span class="hljs-nf">main</span>` +
		`<span class="hljs-c1">// hi</span><span class="hljs-string">"s"</span>` +
		`<span class="hljs-title function_">f</span><span class="hljs-zzz">z</span></code></pre>`
	got := NewInliner(nil).Inline(src, theme.DefaultStyles(), theme.Extras{}, code)

	wants := []string{
		`<span style="color: #c678dd; font-weight: bold">func</span>`,
		`<span style="color: #61afef">main</span>`,
		`<span style="color: #5c6370; font-style: italic">// hi</span>`,
		`<span style="color: #98c379">&#34;s&#34;</span>`,
		`<span style="color: #61afef">f</span>`,
		`<span>z</span>`,
		"background: #282c34",
		"color: #abb2bf",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q\ngot: %s", want, got)
		}
	}
}

func TestTokenRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		classes []string
		want    string
	}{
		{[]string{"hljs-k"}, theme.RoleKeyword},
		{[]string{"hljs-kt"}, theme.RoleType},
		{[]string{"hljs-nf"}, theme.RoleFunction},
		{[]string{"hljs-s2"}, theme.RoleString},
		{[]string{"hljs-mi"}, theme.RoleNumber},
		{[]string{"hljs-c1"}, theme.RoleComment},
		{[]string{"hljs-cp"}, theme.RoleMeta},
		{[]string{"hljs-o"}, theme.RoleOperator},
		{[]string{"hljs-p"}, theme.RolePunctuation},
		{[]string{"hljs-na"}, theme.RoleAttr},
		{[]string{"hljs-nv"}, theme.RoleVariable},
		{[]string{"hljs-keyword"}, theme.RoleKeyword},
		{[]string{"hljs-built_in"}, theme.RoleType},
		{[]string{"hljs-title", "class_"}, theme.RoleType},
		{[]string{"hljs-title", "function_"}, theme.RoleFunction},
		{[]string{"hljs-line"}, ""},
		{[]string{"other"}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := TokenRole(tt.classes); got != tt.want {
			t.Errorf("TokenRole(%v) = %q, want %q", tt.classes, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestInliner - Edge Cases
// ---------------------------------------------------------------------------

func TestInliner_ZeroStylesReturnsInput(t *testing.T) {
	t.Parallel()

	src := `<p class="x">unchanged</p>`
	got := NewInliner(nil).Inline(src, theme.ThemeStyles{}, theme.Extras{}, nil)
	if got != src {
		t.Errorf("Inline() = %q, want input unchanged", got)
	}
}

func TestInliner_Extras(t *testing.T) {
	t.Parallel()

	extras := theme.Extras{
		Strong: theme.StyleGroup{"color": "#d14"},
		Em:     theme.StyleGroup{"fontStyle": "normal"},
	}
	got := NewInliner(nil).Inline("<p><strong>s</strong><em>e</em></p>", theme.DefaultStyles(), extras, nil)

	if !strings.Contains(got, `<strong style="font-weight: bold; color: #d14">`) {
		t.Errorf("strong extras missing\ngot: %s", got)
	}
	if !strings.Contains(got, `<em style="font-style: normal">`) {
		t.Errorf("em extras should replace italic\ngot: %s", got)
	}
}

func TestInliner_GradientThemeBackground(t *testing.T) {
	t.Parallel()

	styles := theme.DefaultStyles()
	styles.Background = "linear-gradient(to right, red, blue)"
	styles.Blockquote["background"] = "linear-gradient(rgba(1, 2, 3, 0.5), #fff)"

	got := NewInliner(nil).Inline("<blockquote><p>q</p></blockquote>", styles, theme.Extras{}, nil)
	if !strings.Contains(got, `<section style="background: #ffffff;`) {
		t.Errorf("section background not reduced to white\ngot: %s", got)
	}
	if !strings.Contains(got, "background: rgba(1, 2, 3, 0.5)") {
		t.Errorf("blockquote background not reduced to first color\ngot: %s", got)
	}

	styles.Blockquote["background"] = "linear-gradient(var(--code-bg, #000), #fff)"
	got = NewInliner(nil).Inline("<blockquote><p>q</p></blockquote>", styles, theme.Extras{}, nil)
	if !strings.Contains(got, "background: #f4f4f4") {
		t.Errorf("theme gradient variable not resolved before reduction\ngot: %s", got)
	}
}

func TestInliner_CSSVariables(t *testing.T) {
	t.Parallel()

	styles := theme.DefaultStyles()
	styles.Link = theme.StyleGroup{"color": "var(--primary)", "borderBottom": "1px solid var(--unknown, #abc)"}

	got := NewInliner(nil).Inline(`<a href="#">x</a>`, styles, theme.Extras{}, nil)
	if !strings.Contains(got, "color: #0066cc") || !strings.Contains(got, "border-bottom: 1px solid #abc") {
		t.Errorf("variables not resolved\ngot: %s", got)
	}
}

func TestInliner_FullDocument(t *testing.T) {
	t.Parallel()

	got := inlineDefault(t, "<!DOCTYPE html><html><head><title>x</title></head><body><p>b</p></body></html>")
	if strings.Contains(got, "<title") || strings.Contains(got, "<body") {
		t.Errorf("document chrome leaked\ngot: %s", got)
	}
	if !strings.Contains(got, `<p style="`) {
		t.Errorf("body content missing\ngot: %s", got)
	}
}

// ---------------------------------------------------------------------------
// TestResolveCSSVars
// ---------------------------------------------------------------------------

func TestResolveCSSVars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"color: var(--foreground)", "color: #333333"},
		{"background: var( --background )", "background: #ffffff"},
		{"color: var(--primary, red)", "color: #0066cc"},
		{"color: var(--nope, red)", "color: red"},
		{"color: var(--nope, rgb(1, 2, 3))", "color: rgb(1, 2, 3)"},
		{"color: var(--nope)", "color: var(--nope)"},
		{"border: 1px solid var(--border)", "border: 1px solid #e4e4e7"},
		{"no vars", "no vars"},
	}
	for _, tt := range tests {
		if got := ResolveCSSVars(tt.in); got != tt.want {
			t.Errorf("ResolveCSSVars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCSSVariables_Count(t *testing.T) {
	t.Parallel()

	if len(cssVariables) != 16 {
		t.Errorf("len(cssVariables) = %d, want 16", len(cssVariables))
	}
}
