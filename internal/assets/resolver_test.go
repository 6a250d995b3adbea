package assets

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_LoadTheme_EmbeddedOnly(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	if got, err := resolver.LoadTheme("github"); err != nil || got == "" {
		t.Errorf("LoadTheme(github) = %d bytes, %v", len(got), err)
	}
	if _, err := resolver.LoadTheme("nonexistent"); !errors.Is(err, ErrThemeNotFound) {
		t.Errorf("LoadTheme(nonexistent) error = %v, want ErrThemeNotFound", err)
	}
}

func TestAssetResolver_CustomWithFallback(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	customTheme := `{"id":"github","name":"Mine"}`
	writeAsset(t, tmpDir, "themes", "github.json", customTheme)
	writeAsset(t, tmpDir, "themes", "local.json", `{"id":"local","name":"Local"}`)
	writeAsset(t, tmpDir, "styles", "minimal.css", "/* custom */")

	resolver, err := NewAssetResolver(tmpDir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadTheme("github")
		if err != nil {
			t.Fatalf("LoadTheme() error = %v", err)
		}
		if got != customTheme {
			t.Errorf("LoadTheme() = %q, want custom content", got)
		}

		css, err := resolver.LoadStyle("minimal")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if css != "/* custom */" {
			t.Errorf("LoadStyle() = %q, want custom content", css)
		}
	})

	t.Run("falls back to embedded when custom not found", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadTheme("ink")
		if err != nil {
			t.Fatalf("LoadTheme() error = %v", err)
		}
		if got == "" {
			t.Error("LoadTheme() returned empty content")
		}
	})

	t.Run("returns error when neither has theme", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadTheme("nonexistent")
		if !errors.Is(err, ErrThemeNotFound) {
			t.Errorf("LoadTheme() error = %v, want ErrThemeNotFound", err)
		}
	})

	t.Run("names are the sorted union", func(t *testing.T) {
		t.Parallel()

		got := resolver.ThemeNames()
		for _, want := range []string{"default", "github", "ink", "local"} {
			if !slices.Contains(got, want) {
				t.Errorf("ThemeNames() = %v, missing %q", got, want)
			}
		}
		if !slices.IsSorted(got) {
			t.Errorf("ThemeNames() = %v, want sorted", got)
		}
		if n := countOf(got, "github"); n != 1 {
			t.Errorf("ThemeNames() lists github %d times, want 1", n)
		}
	})
}

func countOf(names []string, name string) int {
	n := 0
	for _, s := range names {
		if s == name {
			n++
		}
	}
	return n
}

func TestAssetResolver_ValidationErrorsNotFallenBack(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	if _, err := resolver.LoadTheme("../etc/passwd"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadTheme() error = %v, want ErrInvalidAssetName", err)
	}
	if _, err := resolver.LoadStyle("a.b"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle() error = %v, want ErrInvalidAssetName", err)
	}
}

func TestAssetResolver_ImplementsAssetLoader(t *testing.T) {
	t.Parallel()

	var _ AssetLoader = (*AssetResolver)(nil)
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"theme not found", ErrThemeNotFound, true},
		{"style not found", ErrStyleNotFound, true},
		{"wrapped theme not found", fmt.Errorf("%w: %q", ErrThemeNotFound, "x"), true},
		{"invalid name", ErrInvalidAssetName, false},
		{"read error", ErrAssetRead, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isNotFoundError(tt.err); got != tt.want {
				t.Errorf("isNotFoundError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
