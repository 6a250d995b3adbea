package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdexport"
	"github.com/alnah/go-mdexport/internal/config"
)

// Exit codes for the mdexport CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, theme, or platform
	ExitIO      = 3 // File not found, permission denied, unreadable input
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadHTML) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, mdexport.ErrThemeRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownPlatform) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdexport.ErrThemeNotFound) ||
		errors.Is(err, mdexport.ErrCodeThemeNotFound) ||
		errors.Is(err, mdexport.ErrInvalidTheme) ||
		errors.Is(err, mdexport.ErrInvalidCodeTheme) ||
		errors.Is(err, mdexport.ErrUnsupportedTheme) ||
		errors.Is(err, mdexport.ErrInvalidAssetName) ||
		errors.Is(err, mdexport.ErrInvalidAssetPath) ||
		errors.Is(err, mdexport.ErrDOMCopyOnly) {
		return ExitUsage
	}

	return ExitGeneral
}
