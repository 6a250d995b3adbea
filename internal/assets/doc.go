// Package assets provides the content themes and custom stylesheets the
// exporter can apply. Assets can be loaded from embedded files or a custom
// filesystem path.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in themes)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver tries the custom FilesystemLoader first and falls back to
// EmbeddedLoader only when the asset is not found there.
//
// # Directory Structure
//
//	{basePath}/
//	├── themes/
//	│   └── {name}.json          # Theme documents (id, name, styles, customCSS)
//	└── styles/
//	    └── {name}.css           # Custom CSS scoped under .preview-content
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
