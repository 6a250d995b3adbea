package theme

import "errors"

// Sentinel errors for theme decoding and validation.
var (
	ErrInvalidTheme     = errors.New("invalid theme")
	ErrInvalidCodeTheme = errors.New("invalid code theme")
)
