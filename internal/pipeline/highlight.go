package pipeline

import (
	"strings"

	"github.com/alecthomas/chroma/v2"

	"github.com/alnah/go-mdexport/internal/theme"
)

// chromaTypes maps chroma's short CSS class names back to token types.
var chromaTypes = func() map[string]chroma.TokenType {
	m := make(map[string]chroma.TokenType, len(chroma.StandardTypes))
	for tt, short := range chroma.StandardTypes {
		if short != "" {
			m[short] = tt
		}
	}
	return m
}()

// classicRoles covers highlight.js class names (without the hljs- prefix).
var classicRoles = map[string]string{
	"comment":           theme.RoleComment,
	"quote":             theme.RoleComment,
	"keyword":           theme.RoleKeyword,
	"selector-tag":      theme.RoleKeyword,
	"tag":               theme.RoleKeyword,
	"name":              theme.RoleKeyword,
	"section":           theme.RoleKeyword,
	"doctag":            theme.RoleKeyword,
	"built_in":          theme.RoleType,
	"type":              theme.RoleType,
	"class":             theme.RoleType,
	"title":             theme.RoleFunction,
	"function":          theme.RoleFunction,
	"string":            theme.RoleString,
	"regexp":            theme.RoleString,
	"symbol":            theme.RoleString,
	"char":              theme.RoleString,
	"number":            theme.RoleNumber,
	"literal":           theme.RoleNumber,
	"variable":          theme.RoleVariable,
	"params":            theme.RoleVariable,
	"template-variable": theme.RoleVariable,
	"attr":              theme.RoleAttr,
	"attribute":         theme.RoleAttr,
	"property":          theme.RoleAttr,
	"selector-attr":     theme.RoleAttr,
	"selector-class":    theme.RoleAttr,
	"selector-id":       theme.RoleAttr,
	"meta":              theme.RoleMeta,
	"operator":          theme.RoleOperator,
	"punctuation":       theme.RolePunctuation,
}

// TokenRole maps the class list of a highlighter span to a CodeTheme role.
// Both chroma short classes (hljs-kd) and highlight.js names
// (hljs-keyword, hljs-title function_) are understood. It returns "" for
// spans that carry no recognized class.
func TokenRole(classList []string) string {
	role := ""
	for _, c := range classList {
		switch c {
		case "function_":
			return theme.RoleFunction
		case "class_":
			return theme.RoleType
		}
		name, ok := strings.CutPrefix(c, HighlightClass)
		if !ok || role != "" {
			continue
		}
		if r, ok := classicRoles[name]; ok {
			role = r
			continue
		}
		if tt, ok := chromaTypes[name]; ok {
			role = chromaRole(tt)
		}
	}
	return role
}

// chromaRole buckets a chroma token type into a palette role.
func chromaRole(tt chroma.TokenType) string {
	switch {
	case tt.InSubCategory(chroma.CommentPreproc):
		return theme.RoleMeta
	case tt.InCategory(chroma.Comment):
		return theme.RoleComment
	case tt == chroma.KeywordType:
		return theme.RoleType
	case tt.InCategory(chroma.Keyword):
		return theme.RoleKeyword
	case tt == chroma.NameFunction, tt == chroma.NameFunctionMagic:
		return theme.RoleFunction
	case tt == chroma.NameClass, tt == chroma.NameBuiltin, tt == chroma.NameBuiltinPseudo:
		return theme.RoleType
	case tt == chroma.NameAttribute:
		return theme.RoleAttr
	case tt == chroma.NameTag:
		return theme.RoleKeyword
	case tt == chroma.NameDecorator:
		return theme.RoleMeta
	case tt >= chroma.NameVariable && tt <= chroma.NameVariableMagic:
		return theme.RoleVariable
	case tt.InSubCategory(chroma.LiteralString):
		return theme.RoleString
	case tt.InSubCategory(chroma.LiteralNumber), tt == chroma.LiteralDate:
		return theme.RoleNumber
	case tt.InCategory(chroma.Operator):
		return theme.RoleOperator
	case tt.InCategory(chroma.Punctuation):
		return theme.RolePunctuation
	}
	return ""
}

// tokenStyle returns the inline declarations for a token role.
func tokenStyle(role string, code *theme.CodeTheme) declList {
	var d declList
	d.add("color", code.RoleColor(role))
	switch role {
	case theme.RoleComment:
		d.add("font-style", "italic")
	case theme.RoleKeyword:
		d.add("font-weight", "bold")
	}
	return d
}
