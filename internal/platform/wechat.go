package platform

import (
	"fmt"

	"github.com/alnah/go-mdexport/internal/theme"
)

// WeChatExporter describes the WeChat Official Account target. Its
// content is the inlined preview copied straight from the rendered DOM,
// so Export is never a valid call.
type WeChatExporter struct {
	info
}

// NewWeChatExporter creates the WeChat adapter.
func NewWeChatExporter() *WeChatExporter {
	return &WeChatExporter{
		info: info{id: WeChat, name: "微信公众号", icon: "💬", format: FormatHTML},
	}
}

// Export always fails with ErrDOMCopyOnly.
func (e *WeChatExporter) Export(_, _ string, _ *theme.Theme) (*ExportResult, error) {
	return nil, fmt.Errorf("%s: %w: copy the inlined preview instead of calling Export", e.id, ErrDOMCopyOnly)
}
