package theme

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Token roles a CodeTheme assigns colors to.
const (
	RoleComment     = "comment"
	RoleKeyword     = "keyword"
	RoleString      = "string"
	RoleNumber      = "number"
	RoleFunction    = "function"
	RoleVariable    = "variable"
	RoleType        = "type"
	RoleOperator    = "operator"
	RolePunctuation = "punctuation"
	RoleAttr        = "attr"
	RoleMeta        = "meta"
)

// CodeTheme is a flat palette used to recolor highlighted code tokens.
type CodeTheme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Background  string `json:"background"`
	Color       string `json:"color"`
	Comment     string `json:"comment"`
	Keyword     string `json:"keyword"`
	String      string `json:"string"`
	Number      string `json:"number"`
	Function    string `json:"function"`
	Variable    string `json:"variable"`
	Type        string `json:"type"`
	Operator    string `json:"operator"`
	Punctuation string `json:"punctuation"`
	Attr        string `json:"attr"`
	Meta        string `json:"meta"`
}

// RoleColor returns the palette entry for a token role, or "" if unknown.
func (c *CodeTheme) RoleColor(role string) string {
	if c == nil {
		return ""
	}
	switch role {
	case RoleComment:
		return c.Comment
	case RoleKeyword:
		return c.Keyword
	case RoleString:
		return c.String
	case RoleNumber:
		return c.Number
	case RoleFunction:
		return c.Function
	case RoleVariable:
		return c.Variable
	case RoleType:
		return c.Type
	case RoleOperator:
		return c.Operator
	case RolePunctuation:
		return c.Punctuation
	case RoleAttr:
		return c.Attr
	case RoleMeta:
		return c.Meta
	}
	return ""
}

// palette lists every color field with its JSON name.
func (c *CodeTheme) palette() []namedColor {
	return []namedColor{
		{"background", c.Background}, {"color", c.Color},
		{"comment", c.Comment}, {"keyword", c.Keyword},
		{"string", c.String}, {"number", c.Number},
		{"function", c.Function}, {"variable", c.Variable},
		{"type", c.Type}, {"operator", c.Operator},
		{"punctuation", c.Punctuation}, {"attr", c.Attr},
		{"meta", c.Meta},
	}
}

type namedColor struct {
	name  string
	value string
}

// BuiltinCodeThemes names the chroma styles exposed as code themes,
// in display order.
var BuiltinCodeThemes = []string{
	"github",
	"monokai",
	"dracula",
	"solarized-dark",
	"vs",
	"native",
}

// DefaultCodeThemeID is the code theme used when none is selected.
const DefaultCodeThemeID = "github"

// DefaultCodeTheme returns the github palette.
func DefaultCodeTheme() *CodeTheme {
	return FromChromaStyle(DefaultCodeThemeID)
}

// FromChromaStyle derives a CodeTheme from a registered chroma style.
// Unknown names resolve to chroma's fallback style, so the result is
// always fully populated.
func FromChromaStyle(name string) *CodeTheme {
	style := styles.Get(name)

	base := style.Get(chroma.Background)
	bg := colourOr(base.Background, "#ffffff")
	fg := colourOr(base.Colour, "#333333")

	role := func(tt chroma.TokenType) string {
		return colourOr(style.Get(tt).Colour, fg)
	}

	return &CodeTheme{
		ID:          name,
		Name:        style.Name,
		Background:  bg,
		Color:       fg,
		Comment:     role(chroma.Comment),
		Keyword:     role(chroma.Keyword),
		String:      role(chroma.LiteralString),
		Number:      role(chroma.LiteralNumber),
		Function:    role(chroma.NameFunction),
		Variable:    role(chroma.NameVariable),
		Type:        role(chroma.KeywordType),
		Operator:    role(chroma.Operator),
		Punctuation: role(chroma.Punctuation),
		Attr:        role(chroma.NameAttribute),
		Meta:        role(chroma.CommentPreproc),
	}
}

func colourOr(c chroma.Colour, fallback string) string {
	if !c.IsSet() {
		return fallback
	}
	return c.String()
}

// LookupCodeTheme returns the built-in code theme with the given id.
func LookupCodeTheme(id string) (*CodeTheme, bool) {
	for _, name := range BuiltinCodeThemes {
		if name == id {
			return FromChromaStyle(name), true
		}
	}
	return nil, false
}
