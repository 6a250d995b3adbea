package theme

// Font stacks shared by the defaults.
const (
	DefaultFontFamily = `-apple-system, BlinkMacSystemFont, "Helvetica Neue", "PingFang SC", "Microsoft YaHei", sans-serif`
	MonoFontFamily    = `Menlo, Monaco, Consolas, "Courier New", monospace`
)

// DefaultStyles returns the hard-coded fallback for every property the
// resolver knows about. Custom CSS and theme styles are layered on top.
func DefaultStyles() ThemeStyles {
	heading := func(size, margin string) StyleGroup {
		return StyleGroup{
			"fontSize":   size,
			"fontWeight": "bold",
			"margin":     margin,
			"lineHeight": "1.4",
		}
	}

	return ThemeStyles{
		Background: "#ffffff",
		TextColor:  "#333333",
		FontFamily: DefaultFontFamily,
		FontSize:   "16px",
		LineHeight: "1.75",

		H1: heading("2em", "1.2em 0 0.6em"),
		H2: heading("1.5em", "1.1em 0 0.55em"),
		H3: heading("1.25em", "1em 0 0.5em"),
		H4: heading("1.1em", "1em 0 0.5em"),
		H5: heading("1em", "1em 0 0.5em"),
		H6: heading("0.9em", "1em 0 0.5em"),

		Paragraph: StyleGroup{
			"margin":     "1em 0",
			"lineHeight": "1.75",
		},
		Link: StyleGroup{
			"color":          "#0066cc",
			"textDecoration": "none",
		},
		Blockquote: StyleGroup{
			"borderLeft": "4px solid #dddddd",
			"padding":    "0.5em 1em",
			"margin":     "1em 0",
			"color":      "#666666",
			"background": "#f9f9f9",
		},
		Code: StyleGroup{
			"background":   "#f4f4f4",
			"color":        "#c7254e",
			"padding":      "2px 4px",
			"borderRadius": "3px",
			"fontSize":     "0.9em",
			"fontFamily":   MonoFontFamily,
		},
		CodeBlock: StyleGroup{
			"background":   "#f6f8fa",
			"color":        "#333333",
			"padding":      "1em",
			"margin":       "1em 0",
			"borderRadius": "6px",
			"fontSize":     "0.875em",
			"lineHeight":   "1.6",
			"overflowX":    "auto",
			"fontFamily":   MonoFontFamily,
		},
		List: StyleGroup{
			"paddingLeft": "2em",
			"margin":      "1em 0",
		},
		Table: StyleGroup{
			TableHeaderBackground:  "#f0f0f0",
			TableHeaderColor:       "#333333",
			TableBorderColor:       "#dddddd",
			TableEvenRowBackground: "#f9f9f9",
			TableCellPadding:       "8px 12px",
			TableFontSize:          "0.95em",
		},
		Image: StyleGroup{
			"maxWidth":     "100%",
			"display":      "block",
			"margin":       "1em auto",
			"borderRadius": "4px",
		},
		HR: StyleGroup{
			"border":    "none",
			"borderTop": "1px solid #eeeeee",
			"margin":    "2em 0",
		},
	}
}

// Default returns the built-in fallback theme used when none is supplied.
func Default() *Theme {
	return &Theme{
		ID:          "default",
		Name:        "Default",
		Description: "Neutral built-in theme",
		IsBuiltIn:   true,
		Styles:      DefaultStyles(),
	}
}
