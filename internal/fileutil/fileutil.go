// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrEmptyPath              = errors.New("path cannot be empty")
)

// WriteFileAtomic writes content to path through a sibling temp file and a
// rename, so readers never observe a half-written export.
func WriteFileAtomic(path, content string) (err error) {
	if path == "" {
		return ErrEmptyPath
	}

	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".mdexport-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmpFile.WriteString(content); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ValidateExtension checks that an extension is a bare suffix such as
// "json" or "css".
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// HasExtension reports whether path ends in "."+ext, case-insensitively.
func HasExtension(path, ext string) bool {
	if ValidateExtension(ext) != nil {
		return false
	}
	return strings.EqualFold(filepath.Ext(path), "."+ext)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// an asset name. A string containing a path separator (/, \) is a path;
// so is a bare file name carrying a theme extension.
//
// Examples:
//   - "github" -> false (name)
//   - "solarized-dark" -> false (hyphenated name)
//   - "./mine.json" -> true (relative path)
//   - "/abs/theme.css" -> true (absolute)
//   - "C:\themes\ink.json" -> true (Windows)
//   - "mine.json" -> true (file in the working directory)
func IsFilePath(s string) bool {
	if strings.ContainsAny(s, "/\\") {
		return true
	}
	return HasExtension(s, "json") || HasExtension(s, "css")
}
