package mdexport

import (
	"io"
	"log/slog"

	"github.com/alnah/go-mdexport/internal/platform"
	"github.com/alnah/go-mdexport/internal/theme"
)

// Theme is a named content theme: per-element style groups, optionally
// overridden by custom CSS scoped under ".preview-content".
type Theme = theme.Theme

// ThemeStyles is the per-element style record of a Theme.
type ThemeStyles = theme.ThemeStyles

// StyleGroup is a set of camelCase CSS declarations.
type StyleGroup = theme.StyleGroup

// CodeTheme is a syntax highlight palette.
type CodeTheme = theme.CodeTheme

// Exporter converts content for one publishing platform.
type Exporter = platform.Exporter

// ExportResult is the clipboard payload produced by an Exporter.
type ExportResult = platform.ExportResult

// FormatType is the kind of content an Exporter produces.
type FormatType = platform.FormatType

// Content formats an Exporter can produce.
const (
	FormatHTML     = platform.FormatHTML
	FormatMarkdown = platform.FormatMarkdown
	FormatText     = platform.FormatText
)

// Registry maps platform ids to exporters.
type Registry = platform.Registry

// NewRegistry returns an empty exporter registry.
func NewRegistry() *Registry { return platform.NewRegistry() }

// NewDefaultRegistry returns a registry with every built-in exporter in
// display order: wechat, zhihu, juejin, csdn, jianshu, markdown.
func NewDefaultRegistry() *Registry { return platform.NewDefaultRegistry() }

// RenderRequest is one parse + inline job. Nil themes select the
// converter defaults.
type RenderRequest struct {
	Markdown  string
	Theme     *Theme
	CodeTheme *CodeTheme
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds construction-time settings for Converter.
type converterConfig struct {
	logger        *slog.Logger
	registry      *Registry
	cacheSize     int
	assetPath     string
	themeName     string
	codeThemeName string
}

// Defaults applied by NewConverter.
const (
	DefaultCacheSize     = 128
	DefaultThemeName     = "default"
	DefaultCodeThemeName = theme.DefaultCodeThemeID
)

// WithLogger sets the structured logger. Nil restores the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = l
	}
}

// WithRegistry replaces the default exporter registry.
func WithRegistry(r *Registry) Option {
	return func(c *Converter) {
		c.cfg.registry = r
	}
}

// WithCacheSize sets the number of memoized Render results. Zero disables
// the cache.
// Panics if n < 0 (programmer error).
func WithCacheSize(n int) Option {
	if n < 0 {
		panic("mdexport: WithCacheSize size must not be negative")
	}
	return func(c *Converter) {
		c.cfg.cacheSize = n
	}
}

// WithAssetPath sets a directory holding themes/*.json and styles/*.css
// that take precedence over the built-in assets.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithDefaultTheme selects the theme used when a call passes none. The
// value is a theme or style name, or a path to a .json or .css file.
func WithDefaultTheme(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.themeName = nameOrPath
	}
}

// WithDefaultCodeTheme selects the code theme used when a call passes
// none: a built-in id or a path to a .json palette.
func WithDefaultCodeTheme(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.codeThemeName = nameOrPath
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
