package theme

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-json"
)

// hexColor is the only color form accepted for built-in-shaped themes.
var hexColor = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// IsHexColor reports whether v is a #rgb or #rrggbb color.
func IsHexColor(v string) bool {
	return hexColor.MatchString(v)
}

// Decode parses a theme from JSON and validates it.
// Unknown fields are rejected.
func Decode(data []byte) (*Theme, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var t Theme
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	if err := Validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Encode serializes t as indented JSON.
func Encode(t *Theme) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil theme", ErrInvalidTheme)
	}
	return json.MarshalIndent(t, "", "  ")
}

// Validate checks the structural rules a theme must satisfy before use.
//
// Themes without custom CSS must carry styles, and every color field in
// them must be a hex color. Other leaf values are free-form CSS.
func Validate(t *Theme) error {
	if t == nil {
		return fmt.Errorf("%w: nil theme", ErrInvalidTheme)
	}
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidTheme)
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTheme)
	}
	if t.HasCustomCSS() {
		return nil
	}
	if t.Styles.IsZero() {
		return fmt.Errorf("%w: styles are empty and no customCSS is set", ErrInvalidTheme)
	}

	if t.Styles.TextColor != "" && !IsHexColor(t.Styles.TextColor) {
		return fmt.Errorf("%w: styles.textColor: %q is not a hex color", ErrInvalidTheme, t.Styles.TextColor)
	}
	for _, ng := range t.Styles.groups() {
		for _, key := range ng.group.Keys() {
			if !isColorKey(key) {
				continue
			}
			if v := (*ng.group)[key]; !IsHexColor(v) {
				return fmt.Errorf("%w: styles.%s.%s: %q is not a hex color", ErrInvalidTheme, ng.name, key, v)
			}
		}
	}
	return nil
}

func isColorKey(key string) bool {
	return key == "color" || strings.HasSuffix(key, "Color")
}

// DecodeCodeTheme parses a code theme from JSON and validates it.
func DecodeCodeTheme(data []byte) (*CodeTheme, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var c CodeTheme
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCodeTheme, err)
	}
	if err := ValidateCodeTheme(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ValidateCodeTheme checks id, name and that every palette entry is hex.
func ValidateCodeTheme(c *CodeTheme) error {
	if c == nil {
		return fmt.Errorf("%w: nil code theme", ErrInvalidCodeTheme)
	}
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidCodeTheme)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCodeTheme)
	}
	for _, nc := range c.palette() {
		if !IsHexColor(nc.value) {
			return fmt.Errorf("%w: %s: %q is not a hex color", ErrInvalidCodeTheme, nc.name, nc.value)
		}
	}
	return nil
}
