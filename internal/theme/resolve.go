package theme

import (
	"regexp"
	"strings"
)

// PreviewScope is the selector prefix custom CSS is written against.
const PreviewScope = ".preview-content"

var (
	cssComment = regexp.MustCompile(`(?s)/\*.*?\*/`)

	// cssBlock matches one innermost "selectors { declarations }" block.
	cssBlock = regexp.MustCompile(`([^{}]+)\{([^{}]*)\}`)

	whitespaceRun = regexp.MustCompile(`\s+`)

	// colorToken finds the first literal color in a CSS value.
	colorToken = regexp.MustCompile(`#[0-9a-fA-F]{3,8}\b|rgba?\([^)]*\)`)
)

// Resolve returns the effective styles for t.
//
// Without custom CSS the theme styles are returned as-is (copied). With
// custom CSS, each known selector's first block is parsed and merged per
// property: parsed CSS over t.Styles over DefaultStyles. Resolve never fails;
// unparsable CSS simply contributes nothing.
func Resolve(t *Theme) (ThemeStyles, Extras) {
	if t == nil {
		return DefaultStyles(), Extras{}
	}
	if !t.HasCustomCSS() {
		return t.Styles.Clone(), Extras{}
	}

	parsed, extras := ParseCustomCSS(t.CustomCSS)
	styles := overlay(overlay(DefaultStyles(), t.Styles), parsed)
	return styles, extras
}

// ParseCustomCSS extracts a partial ThemeStyles from free-form CSS scoped
// under PreviewScope. Only the first block naming a selector is used.
func ParseCustomCSS(css string) (ThemeStyles, Extras) {
	blocks := firstBlocks(css)
	var out ThemeStyles
	var extras Extras

	if decls, ok := blocks[PreviewScope]; ok {
		for prop, val := range decls {
			switch prop {
			case "background", "background-color":
				out.Background = val
			case "color":
				out.TextColor = val
			case "font-family":
				out.FontFamily = val
			case "font-size":
				out.FontSize = val
			case "line-height":
				out.LineHeight = val
			}
		}
	}

	simple := []struct {
		tag   string
		group *StyleGroup
	}{
		{"h1", &out.H1}, {"h2", &out.H2}, {"h3", &out.H3},
		{"h4", &out.H4}, {"h5", &out.H5}, {"h6", &out.H6},
		{"p", &out.Paragraph},
		{"a", &out.Link},
		{"blockquote", &out.Blockquote},
		{"code", &out.Code},
		{"pre", &out.CodeBlock},
		{"ul", &out.List},
		{"img", &out.Image},
		{"hr", &out.HR},
		{"strong", &extras.Strong},
		{"em", &extras.Em},
	}
	for _, s := range simple {
		if decls, ok := blocks[scoped(s.tag)]; ok {
			*s.group = toGroup(decls)
		}
	}

	table := StyleGroup{}
	if decls, ok := blocks[scoped("th")]; ok {
		for prop, val := range decls {
			switch prop {
			case "background", "background-color":
				table[TableHeaderBackground] = val
			case "color":
				table[TableHeaderColor] = val
			case "padding":
				table[TableCellPadding] = val
			case "border-color":
				table[TableBorderColor] = val
			}
		}
	}
	if decls, ok := blocks[scoped("td")]; ok {
		for prop, val := range decls {
			switch prop {
			case "border-color":
				table[TableBorderColor] = val
			case "border":
				if c := colorToken.FindString(val); c != "" {
					table[TableBorderColor] = c
				}
			case "padding":
				table[TableCellPadding] = val
			case "font-size":
				table[TableFontSize] = val
			}
		}
	}
	if len(table) > 0 {
		out.Table = table
	}

	return out, extras
}

func scoped(tag string) string {
	return PreviewScope + " " + tag
}

// firstBlocks maps each normalized selector to the declarations of the
// first block that lists it. Later blocks for the same selector are ignored.
func firstBlocks(css string) map[string]map[string]string {
	css = cssComment.ReplaceAllString(css, "")
	out := make(map[string]map[string]string)

	for _, m := range cssBlock.FindAllStringSubmatch(css, -1) {
		decls := parseDeclarations(m[2])
		for _, sel := range strings.Split(m[1], ",") {
			sel = normalizeSelector(sel)
			if sel == "" {
				continue
			}
			if _, seen := out[sel]; seen {
				continue
			}
			out[sel] = decls
		}
	}
	return out
}

func normalizeSelector(sel string) string {
	sel = strings.TrimSpace(sel)
	// Drop any at-rule prelude left in front of a nested block.
	if i := strings.LastIndex(sel, ";"); i >= 0 {
		sel = strings.TrimSpace(sel[i+1:])
	}
	return whitespaceRun.ReplaceAllString(sel, " ")
}

// parseDeclarations splits "a: b; c: d" into a lowercase-property map.
// Later duplicates inside one block win, as in a browser.
func parseDeclarations(body string) map[string]string {
	out := make(map[string]string)
	for _, decl := range strings.Split(body, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.TrimSpace(val)
		val = strings.TrimSpace(strings.TrimSuffix(val, "!important"))
		if prop == "" || val == "" {
			continue
		}
		out[prop] = val
	}
	return out
}

func toGroup(decls map[string]string) StyleGroup {
	g := make(StyleGroup, len(decls))
	for prop, val := range decls {
		g[KebabToCamel(prop)] = val
	}
	return g
}

// KebabToCamel converts a CSS property name to the internal key space:
// "font-size" -> "fontSize", "-webkit-box-shadow" -> "WebkitBoxShadow".
func KebabToCamel(prop string) string {
	var b strings.Builder
	for i, part := range strings.Split(prop, "-") {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}

// CamelToKebab is the inverse of KebabToCamel.
func CamelToKebab(key string) string {
	var b strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FirstColor returns the first hex or rgb()/rgba() token in v, or "".
func FirstColor(v string) string {
	return colorToken.FindString(v)
}
