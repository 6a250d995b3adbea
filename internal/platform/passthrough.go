package platform

import "github.com/alnah/go-mdexport/internal/theme"

// PassthroughExporter returns the Markdown source byte for byte.
// Juejin renders GFM, LaTeX and fenced languages natively; the markdown
// target is the raw source itself.
type PassthroughExporter struct {
	info
}

// NewJuejinExporter creates the Juejin adapter.
func NewJuejinExporter() *PassthroughExporter {
	return &PassthroughExporter{
		info: info{id: Juejin, name: "掘金", icon: "⛏️", format: FormatMarkdown},
	}
}

// NewMarkdownExporter creates the raw Markdown adapter.
func NewMarkdownExporter() *PassthroughExporter {
	return &PassthroughExporter{
		info: info{id: Markdown, name: "Markdown", icon: "📄", format: FormatMarkdown},
	}
}

// Export returns markdown unchanged.
func (e *PassthroughExporter) Export(markdown, _ string, _ *theme.Theme) (*ExportResult, error) {
	return textResult(markdown), nil
}
