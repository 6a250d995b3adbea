package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed themes/*.json
var themes embed.FS

//go:embed styles/*.css
var styles embed.FS

// EmbeddedLoader loads the built-in themes and stylesheets.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTheme loads a theme JSON document from embedded assets by name.
func (e *EmbeddedLoader) LoadTheme(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := themes.ReadFile("themes/" + name + ".json")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	return string(content), nil
}

// LoadStyle loads a CSS stylesheet from embedded assets by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// ThemeNames lists the embedded themes.
func (e *EmbeddedLoader) ThemeNames() []string {
	return namesIn(themes, "themes", ".json")
}

// StyleNames lists the embedded stylesheets.
func (e *EmbeddedLoader) StyleNames() []string {
	return namesIn(styles, "styles", ".css")
}

func namesIn(fsys fs.FS, dir, ext string) []string {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ext); ok && !entry.IsDir() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
