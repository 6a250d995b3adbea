package platform

import (
	"errors"

	"github.com/alnah/go-mdexport/internal/theme"
)

// Sentinel errors.
var (
	ErrDOMCopyOnly = errors.New("platform content must be copied from the rendered DOM")
	ErrMissingID   = errors.New("exporter has no id")
)

// FormatType is the kind of content an exporter produces.
type FormatType string

// Format types.
const (
	FormatHTML     FormatType = "html"
	FormatMarkdown FormatType = "markdown"
	FormatText     FormatType = "text"
)

// MIME types of export results.
const (
	MIMEHTML  = "text/html"
	MIMEPlain = "text/plain"
)

// Platform identifiers, in display order.
const (
	WeChat   = "wechat"
	Zhihu    = "zhihu"
	Juejin   = "juejin"
	CSDN     = "csdn"
	Jianshu  = "jianshu"
	Markdown = "markdown"
)

// ExportResult is the clipboard payload for one export. A fresh value is
// returned by every call.
type ExportResult struct {
	Content   string `json:"content"`
	MIMEType  string `json:"mimeType"`
	PlainText string `json:"plainText,omitempty"`
}

// Exporter converts content for one platform. Implementations hold no
// mutable state and are safe for concurrent use.
type Exporter interface {
	ID() string
	Name() string
	Icon() string
	FormatType() FormatType
	Export(markdown, html string, t *theme.Theme) (*ExportResult, error)
}

// info carries the descriptive half of an Exporter.
type info struct {
	id     string
	name   string
	icon   string
	format FormatType
}

func (i info) ID() string             { return i.id }
func (i info) Name() string           { return i.name }
func (i info) Icon() string           { return i.icon }
func (i info) FormatType() FormatType { return i.format }

func textResult(content string) *ExportResult {
	return &ExportResult{Content: content, MIMEType: MIMEPlain}
}
