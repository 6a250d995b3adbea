// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// InTerminal reports whether stdout is a character device. Pipelines that
// capture stdout get no clipboard hint.
var InTerminal = func() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config location among searchedPaths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-mdexport") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForThemeNotFound lists the themes that can be selected by name.
func ForThemeNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available themes: " + strings.Join(available, ", ") + "; or pass a path to a .json or .css file")
}

// ForCodeThemeNotFound lists the code highlight palettes.
func ForCodeThemeNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available code themes: " + strings.Join(available, ", "))
}

// ForUnknownPlatform lists registered platform ids.
func ForUnknownPlatform(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return formatHints([]string{
		"available platforms: " + strings.Join(available, ", "),
		"run 'mdexport platforms' for details",
	})
}

// ForDOMCopyOnly explains how to get WeChat content out of the CLI.
func ForDOMCopyOnly() string {
	hint := "use 'mdexport render' and paste the HTML into the editor as rich text"
	if InTerminal() {
		hint += ", or redirect with -o file.html"
	}
	return format(hint)
}

// ForInvalidTheme points at the theme validator.
func ForInvalidTheme() string {
	return format("run 'mdexport validate <theme.json>' for the failing field; colors must be #rgb or #rrggbb")
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
