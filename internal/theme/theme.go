// Package theme defines the visual theme model used by the export pipeline:
// content themes (per-element style groups, optionally overridden by custom
// CSS) and code themes (syntax highlight palettes).
package theme

import (
	"sort"
	"strings"
)

// StyleGroup is a flat set of CSS declarations keyed by camelCase property
// name (fontSize, borderLeft, ...). Values are free-form CSS fragments.
type StyleGroup map[string]string

// Get returns the value for key, or "" when absent.
func (g StyleGroup) Get(key string) string {
	if g == nil {
		return ""
	}
	return g[key]
}

// Clone returns an independent copy. Cloning nil yields nil.
func (g StyleGroup) Clone() StyleGroup {
	if g == nil {
		return nil
	}
	out := make(StyleGroup, len(g))
	for k, v := range g {
		out[k] = v
	}
	return out
}

// Keys returns the group keys in sorted order.
func (g StyleGroup) Keys() []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// merge returns base overlaid with every non-empty value of over.
func merge(base, over StyleGroup) StyleGroup {
	if base == nil && over == nil {
		return nil
	}
	out := base.Clone()
	if out == nil {
		out = make(StyleGroup, len(over))
	}
	for k, v := range over {
		if strings.TrimSpace(v) != "" {
			out[k] = v
		}
	}
	return out
}

// ThemeStyles is the canonical per-element style record.
// Table uses semantic keys: headerBackground, headerColor, borderColor,
// evenRowBackground, cellPadding, fontSize.
type ThemeStyles struct {
	Background string `json:"background,omitempty"`
	TextColor  string `json:"textColor,omitempty"`
	FontFamily string `json:"fontFamily,omitempty"`
	FontSize   string `json:"fontSize,omitempty"`
	LineHeight string `json:"lineHeight,omitempty"`

	H1 StyleGroup `json:"h1,omitempty"`
	H2 StyleGroup `json:"h2,omitempty"`
	H3 StyleGroup `json:"h3,omitempty"`
	H4 StyleGroup `json:"h4,omitempty"`
	H5 StyleGroup `json:"h5,omitempty"`
	H6 StyleGroup `json:"h6,omitempty"`

	Paragraph  StyleGroup `json:"paragraph,omitempty"`
	Link       StyleGroup `json:"link,omitempty"`
	Blockquote StyleGroup `json:"blockquote,omitempty"`
	Code       StyleGroup `json:"code,omitempty"`
	CodeBlock  StyleGroup `json:"codeBlock,omitempty"`
	List       StyleGroup `json:"list,omitempty"`
	Table      StyleGroup `json:"table,omitempty"`
	Image      StyleGroup `json:"image,omitempty"`
	HR         StyleGroup `json:"hr,omitempty"`
}

// Table style keys.
const (
	TableHeaderBackground  = "headerBackground"
	TableHeaderColor       = "headerColor"
	TableBorderColor       = "borderColor"
	TableEvenRowBackground = "evenRowBackground"
	TableCellPadding       = "cellPadding"
	TableFontSize          = "fontSize"
)

// Heading returns the group for heading level 1..6, or nil.
func (s *ThemeStyles) Heading(level int) StyleGroup {
	switch level {
	case 1:
		return s.H1
	case 2:
		return s.H2
	case 3:
		return s.H3
	case 4:
		return s.H4
	case 5:
		return s.H5
	case 6:
		return s.H6
	}
	return nil
}

// groups exposes every style group by its JSON name, in a stable order.
// The returned pointers alias the receiver's fields.
func (s *ThemeStyles) groups() []namedGroup {
	return []namedGroup{
		{"h1", &s.H1}, {"h2", &s.H2}, {"h3", &s.H3},
		{"h4", &s.H4}, {"h5", &s.H5}, {"h6", &s.H6},
		{"paragraph", &s.Paragraph},
		{"link", &s.Link},
		{"blockquote", &s.Blockquote},
		{"code", &s.Code},
		{"codeBlock", &s.CodeBlock},
		{"list", &s.List},
		{"table", &s.Table},
		{"image", &s.Image},
		{"hr", &s.HR},
	}
}

type namedGroup struct {
	name  string
	group *StyleGroup
}

// IsZero reports whether no style value is set at all.
func (s *ThemeStyles) IsZero() bool {
	if s.Background != "" || s.TextColor != "" || s.FontFamily != "" ||
		s.FontSize != "" || s.LineHeight != "" {
		return false
	}
	for _, ng := range s.groups() {
		for _, v := range *ng.group {
			if strings.TrimSpace(v) != "" {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy.
func (s ThemeStyles) Clone() ThemeStyles {
	out := s
	for _, ng := range out.groups() {
		*ng.group = ng.group.Clone()
	}
	return out
}

// overlay merges over onto base per property; non-empty values of over win.
func overlay(base, over ThemeStyles) ThemeStyles {
	out := base.Clone()
	pick := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	pick(&out.Background, over.Background)
	pick(&out.TextColor, over.TextColor)
	pick(&out.FontFamily, over.FontFamily)
	pick(&out.FontSize, over.FontSize)
	pick(&out.LineHeight, over.LineHeight)

	src := over.groups()
	for i, ng := range out.groups() {
		*ng.group = merge(*ng.group, *src[i].group)
	}
	return out
}

// Theme is a named, serializable content theme.
type Theme struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	IsBuiltIn   bool        `json:"isBuiltIn"`
	Styles      ThemeStyles `json:"styles"`
	CustomCSS   string      `json:"customCSS,omitempty"`
}

// HasCustomCSS reports whether the theme carries non-blank custom CSS.
func (t *Theme) HasCustomCSS() bool {
	return t != nil && strings.TrimSpace(t.CustomCSS) != ""
}

// Usable reports whether the theme can style content: either its styles
// are populated or it carries custom CSS.
func (t *Theme) Usable() bool {
	if t == nil {
		return false
	}
	return t.HasCustomCSS() || !t.Styles.IsZero()
}

// Extras carries strong/em rules extracted from custom CSS. ThemeStyles has
// no field for them.
type Extras struct {
	Strong StyleGroup
	Em     StyleGroup
}
