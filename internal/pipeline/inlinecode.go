package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Class names for inline-code runs produced by SplitInlineCode.
const (
	PunctClass = "ic-punct"
	TextClass  = "ic-text"
)

// breakPunct lists the characters inline code may wrap after.
const breakPunct = `,;:./\|`

// htmlEntity matches one named or numeric character reference.
var htmlEntity = regexp.MustCompile(`^&(?:#[0-9]+|#[xX][0-9a-fA-F]+|[A-Za-z][A-Za-z0-9]*);`)

// Run is a maximal stretch of inline code in one character class.
type Run struct {
	Text  string
	Punct bool
}

// SplitRuns splits plain (unescaped) text into punctuation and text runs.
func SplitRuns(text string) []Run {
	var runs []Run
	for _, r := range text {
		punct := strings.ContainsRune(breakPunct, r)
		if n := len(runs); n > 0 && runs[n-1].Punct == punct {
			runs[n-1].Text += string(r)
			continue
		}
		runs = append(runs, Run{Text: string(r), Punct: punct})
	}
	return runs
}

// SplitInlineCode re-renders escaped inline-code HTML as a sequence of
// <span class="ic-punct"> and <span class="ic-text"> runs. Character
// references such as &lt; are atomic and always belong to a text run.
func SplitInlineCode(escaped string) string {
	if escaped == "" {
		return ""
	}

	type atom struct {
		s     string
		punct bool
	}
	var atoms []atom
	for i := 0; i < len(escaped); {
		if escaped[i] == '&' {
			if m := htmlEntity.FindString(escaped[i:]); m != "" {
				atoms = append(atoms, atom{s: m})
				i += len(m)
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(escaped[i:])
		atoms = append(atoms, atom{s: escaped[i : i+size], punct: strings.ContainsRune(breakPunct, r)})
		i += size
	}

	var b strings.Builder
	for i := 0; i < len(atoms); {
		j := i
		for j < len(atoms) && atoms[j].punct == atoms[i].punct {
			j++
		}
		class := TextClass
		if atoms[i].punct {
			class = PunctClass
		}
		b.WriteString(`<span class="` + class + `">`)
		for _, a := range atoms[i:j] {
			b.WriteString(a.s)
		}
		b.WriteString("</span>")
		i = j
	}
	return b.String()
}
