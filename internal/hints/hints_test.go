package hints

// Notes:
// - ForDOMCopyOnly tests swap the package-level InTerminal variable and
//   cannot use t.Parallel().

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
		excludes string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
			excludes: "create",
		},
		{
			name:     "with user config path",
			paths:    []string{"./foo.yaml", "/home/u/.config/go-mdexport/foo.yaml"},
			contains: "create /home/u/.config/go-mdexport/foo.yaml",
		},
		{
			name:     "local paths only",
			paths:    []string{"./foo.yaml", "./foo.yml"},
			contains: "--config",
			excludes: "create",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
			if tt.excludes != "" && strings.Contains(hint, tt.excludes) {
				t.Errorf("hint should not contain %q, got %q", tt.excludes, hint)
			}
		})
	}
}

func TestListHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fn        func([]string) string
		available []string
		contains  string
	}{
		{"themes", ForThemeNotFound, []string{"default", "ink"}, "default, ink"},
		{"themes mention paths", ForThemeNotFound, []string{"default"}, ".json"},
		{"code themes", ForCodeThemeNotFound, []string{"github", "monokai"}, "github, monokai"},
		{"platforms", ForUnknownPlatform, []string{"wechat", "zhihu"}, "wechat, zhihu"},
		{"platforms command", ForUnknownPlatform, []string{"wechat"}, "mdexport platforms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := tt.fn(tt.available)
			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("hint format inconsistent: %q", hint)
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}

			if empty := tt.fn(nil); empty != "" {
				t.Errorf("expected empty hint with nothing available, got %q", empty)
			}
		})
	}
}

func TestForDOMCopyOnly(t *testing.T) {
	orig := InTerminal
	t.Cleanup(func() { InTerminal = orig })

	InTerminal = func() bool { return true }
	if hint := ForDOMCopyOnly(); !strings.Contains(hint, "-o file.html") {
		t.Errorf("terminal hint should suggest -o, got %q", hint)
	}

	InTerminal = func() bool { return false }
	hint := ForDOMCopyOnly()
	if strings.Contains(hint, "-o file.html") {
		t.Errorf("piped hint should not suggest -o, got %q", hint)
	}
	if !strings.Contains(hint, "mdexport render") {
		t.Errorf("hint should suggest render, got %q", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	hints := []string{
		ForInvalidTheme(),
		ForOutputDirectory(),
		ForConfigNotFound(nil),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}

	if format("") != "" {
		t.Error("format(\"\") should be empty")
	}
	if formatHints(nil) != "" {
		t.Error("formatHints(nil) should be empty")
	}
}
