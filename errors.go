package mdexport

import (
	"errors"

	"github.com/alnah/go-mdexport/internal/assets"
	"github.com/alnah/go-mdexport/internal/platform"
	"github.com/alnah/go-mdexport/internal/theme"
)

// Sentinel errors for library operations. Errors raised by internal
// packages are re-exported so callers can match them with errors.Is.
var (
	// ErrDOMCopyOnly is returned by the wechat exporter, whose content must
	// be copied from the rendered DOM rather than produced by Export.
	ErrDOMCopyOnly = platform.ErrDOMCopyOnly

	// ErrMissingID is returned when registering an exporter without an id.
	ErrMissingID = platform.ErrMissingID

	// Theme errors.
	ErrInvalidTheme       = theme.ErrInvalidTheme
	ErrInvalidCodeTheme   = theme.ErrInvalidCodeTheme
	ErrThemeNotFound      = assets.ErrThemeNotFound
	ErrCodeThemeNotFound  = errors.New("code theme not found")
	ErrUnsupportedTheme   = errors.New("unsupported theme file (want .json or .css)")
	ErrInvalidAssetName   = assets.ErrInvalidAssetName
	ErrInvalidAssetPath   = errors.New("invalid asset path")
	ErrThemeRead          = errors.New("failed to read theme file")
	ErrInvalidCacheConfig = errors.New("invalid render cache configuration")
)
