package pipeline

import (
	"regexp"
	"strings"
)

// cssVariables are the custom properties resolved textually before
// content reaches a paste target. Clipboard sanitizers do not evaluate
// var().
var cssVariables = map[string]string{
	"--background":           "#ffffff",
	"--foreground":           "#333333",
	"--primary":              "#0066cc",
	"--primary-foreground":   "#ffffff",
	"--secondary":            "#f4f4f5",
	"--secondary-foreground": "#18181b",
	"--muted":                "#f4f4f5",
	"--muted-foreground":     "#71717a",
	"--accent":               "#f4f4f5",
	"--accent-foreground":    "#18181b",
	"--border":               "#e4e4e7",
	"--input":                "#e4e4e7",
	"--ring":                 "#0066cc",
	"--card":                 "#ffffff",
	"--card-foreground":      "#333333",
	"--code-bg":              "#f4f4f4",
}

// cssVarRef matches var(--name) and var(--name, fallback). The fallback may
// contain one level of parentheses, as in rgb(0, 0, 0).
var cssVarRef = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)\s*(?:,\s*((?:[^()]|\([^()]*\))*?))?\s*\)`)

// ResolveCSSVars replaces every var() reference with its known value, or
// its fallback. References with neither are left as-is.
func ResolveCSSVars(css string) string {
	if !strings.Contains(css, "var(") {
		return css
	}
	return cssVarRef.ReplaceAllStringFunc(css, func(ref string) string {
		m := cssVarRef.FindStringSubmatch(ref)
		if v, ok := cssVariables[m[1]]; ok {
			return v
		}
		if fallback := strings.TrimSpace(m[2]); fallback != "" {
			return fallback
		}
		return ref
	})
}
