package mdexport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/alnah/go-mdexport/internal/assets"
	"github.com/alnah/go-mdexport/internal/fileutil"
	"github.com/alnah/go-mdexport/internal/pipeline"
	"github.com/alnah/go-mdexport/internal/theme"
)

// Converter runs the export pipeline: Markdown to HTML, HTML to
// theme-inlined HTML, and content to per-platform clipboard payloads.
// Create with NewConverter. A Converter is safe for concurrent use.
type Converter struct {
	cfg       converterConfig
	parser    *pipeline.Parser
	inliner   *pipeline.Inliner
	registry  *Registry
	assets    assets.AssetLoader
	cache     *renderCache // nil when caching is disabled
	theme     *Theme
	codeTheme *CodeTheme
}

// NewConverter creates a Converter. Defaults: discard logger, the built-in
// registry, a 128-entry render cache, embedded assets, theme "default" and
// code theme "github".
// Returns error if the asset path or a default theme cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			cacheSize:     DefaultCacheSize,
			themeName:     DefaultThemeName,
			codeThemeName: DefaultCodeThemeName,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.logger == nil {
		c.cfg.logger = discardLogger()
	}
	c.parser = pipeline.NewParser(c.cfg.logger)
	c.inliner = pipeline.NewInliner(c.cfg.logger)

	c.registry = c.cfg.registry
	if c.registry == nil {
		c.registry = NewDefaultRegistry()
	}

	c.assets = assets.NewEmbeddedLoader()
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assets = resolver
	}

	if c.cfg.cacheSize > 0 {
		cache, err := newRenderCache(c.cfg.cacheSize)
		if err != nil {
			return nil, err
		}
		c.cache = cache
	}

	t, err := c.LoadTheme(c.cfg.themeName)
	if err != nil {
		return nil, fmt.Errorf("default theme: %w", err)
	}
	c.theme = t

	ct, err := c.LoadCodeTheme(c.cfg.codeThemeName)
	if err != nil {
		return nil, fmt.Errorf("default code theme: %w", err)
	}
	c.codeTheme = ct

	return c, nil
}

// ParseMarkdown converts Markdown to sanitized HTML. It never fails:
// input the parser rejects comes back HTML-escaped.
func (c *Converter) ParseMarkdown(markdown string) string {
	return c.parser.Parse(markdown)
}

// InlineStyles rewrites html so every element carries its theme styles
// in a style attribute, ready for paste into editors that drop
// stylesheets. Nil themes select the converter defaults.
func (c *Converter) InlineStyles(html string, t *Theme, ct *CodeTheme) string {
	if t == nil {
		t = c.theme
	}
	if ct == nil {
		ct = c.codeTheme
	}
	styles, extras := theme.Resolve(t)
	return c.inliner.Inline(html, styles, extras, ct)
}

// Render parses and inlines req.Markdown. Results are memoized by content
// and theme. The only error is a done context.
func (c *Converter) Render(ctx context.Context, req RenderRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	t, ct := req.Theme, req.CodeTheme
	if t == nil {
		t = c.theme
	}
	if ct == nil {
		ct = c.codeTheme
	}

	var key uint64
	cacheable := false
	if c.cache != nil {
		k, err := renderKey(req.Markdown, t, ct)
		if err == nil {
			key, cacheable = k, true
			if out, ok := c.cache.get(key); ok {
				c.cfg.logger.Debug("render cache hit", "key", key)
				return out, nil
			}
		}
	}

	out := c.InlineStyles(c.ParseMarkdown(req.Markdown), t, ct)
	if cacheable {
		c.cache.add(key, out)
	}
	return out, nil
}

// ExportContent runs the exporter registered under platformID. It returns
// (nil, nil) when no exporter has that id. A nil theme selects the default.
func (c *Converter) ExportContent(platformID, markdown, html string, t *Theme) (*ExportResult, error) {
	if t == nil {
		t = c.theme
	}
	return c.registry.Export(platformID, markdown, html, t)
}

// Exporters returns every registered exporter in display order.
func (c *Converter) Exporters() []Exporter {
	return c.registry.All()
}

// IsPlatformSupported reports whether an exporter is registered for id.
func (c *Converter) IsPlatformSupported(id string) bool {
	return c.registry.Has(id)
}

// PlatformIDs returns the registered platform ids in display order.
func (c *Converter) PlatformIDs() []string {
	return c.registry.IDs()
}

// DefaultTheme returns the theme used when a call passes none.
func (c *Converter) DefaultTheme() *Theme {
	return c.theme
}

// DefaultCodeTheme returns the code theme used when a call passes none.
func (c *Converter) DefaultCodeTheme() *CodeTheme {
	return c.codeTheme
}

// LoadTheme resolves nameOrPath to a validated theme.
//
// A path (anything with a separator, or ending in .json/.css) is read from
// disk: JSON is decoded as a theme, CSS becomes a custom-CSS theme named
// after the file. A name is looked up among the theme assets first, then
// the stylesheet assets.
func (c *Converter) LoadTheme(nameOrPath string) (*Theme, error) {
	if fileutil.IsFilePath(nameOrPath) {
		return loadThemeFile(nameOrPath)
	}

	doc, err := c.assets.LoadTheme(nameOrPath)
	if err == nil {
		return theme.Decode([]byte(doc))
	}
	if !errors.Is(err, assets.ErrThemeNotFound) {
		return nil, err
	}

	css, styleErr := c.assets.LoadStyle(nameOrPath)
	if styleErr != nil {
		return nil, err
	}
	return cssTheme(nameOrPath, css), nil
}

// LoadCodeTheme resolves a built-in code theme id or a path to a .json
// palette.
func (c *Converter) LoadCodeTheme(nameOrPath string) (*CodeTheme, error) {
	if fileutil.IsFilePath(nameOrPath) {
		data, err := readThemeFile(nameOrPath)
		if err != nil {
			return nil, err
		}
		return theme.DecodeCodeTheme(data)
	}

	if ct, ok := theme.LookupCodeTheme(nameOrPath); ok {
		return ct, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrCodeThemeNotFound, nameOrPath)
}

// ThemeNames lists the themes selectable by name, sorted.
func (c *Converter) ThemeNames() []string {
	return c.assets.ThemeNames()
}

// CodeThemeNames lists the built-in code theme ids in display order.
func (c *Converter) CodeThemeNames() []string {
	return slices.Clone(theme.BuiltinCodeThemes)
}

func loadThemeFile(path string) (*Theme, error) {
	switch {
	case fileutil.HasExtension(path, "json"):
		data, err := readThemeFile(path)
		if err != nil {
			return nil, err
		}
		return theme.Decode(data)
	case fileutil.HasExtension(path, "css"):
		data, err := readThemeFile(path)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return cssTheme(name, string(data)), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedTheme, path)
}

func readThemeFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- theme path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrThemeRead, err)
	}
	return data, nil
}

// cssTheme wraps a stylesheet as a theme with no structured styles.
func cssTheme(name, css string) *Theme {
	return &Theme{
		ID:        name,
		Name:      name,
		CustomCSS: css,
	}
}

var (
	defaultOnce sync.Once
	defaultConv *Converter
)

// defaultConverter is built on first use from embedded assets only, so
// failure means the binary itself is broken.
func defaultConverter() *Converter {
	defaultOnce.Do(func() {
		conv, err := NewConverter()
		if err != nil {
			panic("mdexport: built-in assets are invalid: " + err.Error())
		}
		defaultConv = conv
	})
	return defaultConv
}

// ParseMarkdown converts Markdown to sanitized HTML using a shared
// default Converter.
func ParseMarkdown(markdown string) string {
	return defaultConverter().ParseMarkdown(markdown)
}

// InlineStyles inlines theme styles into html using a shared default
// Converter. Nil themes select "default" and "github".
func InlineStyles(html string, t *Theme, ct *CodeTheme) string {
	return defaultConverter().InlineStyles(html, t, ct)
}
