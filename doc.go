// Package mdexport turns Markdown into rich HTML that survives being pasted
// into blogging platforms, and into per-platform clipboard payloads.
//
// # Quick Start
//
// Create a converter and render markdown with the default theme:
//
//	conv, err := mdexport.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	html, err := conv.Render(ctx, mdexport.RenderRequest{
//	    Markdown: "# Hello\n\nWorld",
//	})
//
// The output is a single <section> whose elements all carry inline style
// attributes. It contains no <style> tags and no class attributes from the
// source, so editors that strip stylesheets keep the look.
//
// # Pipeline
//
//  1. Markdown preprocessing (line endings, "##Heading" spacing, ==mark==)
//  2. Markdown to HTML via Goldmark (GFM, footnotes, chroma highlighting),
//     sanitized with bluemonday
//  3. Theme resolution: theme styles, optionally overridden by custom CSS
//     scoped under ".preview-content"
//  4. Style inlining: one pre-order walk that writes a style attribute on
//     every element and resolves CSS variables
//  5. Platform export (wechat, zhihu, juejin, csdn, jianshu, markdown)
//
// # Themes
//
// Built-in themes are "default", "github" and "ink"; stylesheet "minimal"
// is also selectable as a theme. LoadTheme accepts a name or a path to a
// .json theme or .css stylesheet:
//
//	t, err := conv.LoadTheme("./brand.json")
//	html := conv.InlineStyles(conv.ParseMarkdown(md), t, nil)
//
// Code blocks are recolored from a CodeTheme palette derived from a chroma
// style (github, monokai, dracula, solarized-dark, vs, native).
//
// # Platform Export
//
//	res, err := conv.ExportContent("csdn", md, "", nil)
//
// ExportContent returns (nil, nil) for an unknown platform id. The wechat
// exporter always fails with ErrDOMCopyOnly: its content is the rendered
// HTML itself, copied from the DOM.
//
// # Concurrency
//
// A Converter is safe for concurrent use. NewRenderer returns either a
// LocalRenderer or a RenderPool of worker goroutines depending on the
// worker count; both produce identical output:
//
//	r := mdexport.NewRenderer(conv, 0) // 0 = GOMAXPROCS/2, clamped 1..8
//	defer r.Close()
//	html, err := r.Render(ctx, mdexport.RenderRequest{Markdown: md})
//
// # Custom Assets
//
// WithAssetPath adds a directory searched before the built-in assets:
//
//	assets/
//	├── themes/
//	│   └── brand.json
//	└── styles/
//	    └── brand.css
package mdexport
