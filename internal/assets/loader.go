package assets

// AssetLoader defines the contract for loading theme assets.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type AssetLoader interface {
	// LoadTheme loads a theme JSON document by name (without .json extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTheme(name string) (string, error)

	// LoadStyle loads a custom CSS stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// ThemeNames lists the available theme names, sorted.
	ThemeNames() []string
}

// DefaultThemeName is the name of the built-in fallback theme.
const DefaultThemeName = "default"
