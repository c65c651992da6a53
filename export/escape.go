package export

import "strings"

// escapeDot quotes a label for Graphviz.
func escapeDot(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

var mermaidEscaper = strings.NewReplacer(
	"#", "#35;",
	"`", "#96;",
	`"`, "#quot;",
)

// escapeMermaid replaces characters mermaid treats specially with their
// entity forms.
func escapeMermaid(s string) string {
	return mermaidEscaper.Replace(s)
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash`,
	"#", `\#`,
	"$", `\$`,
	"%", `\%`,
	"&", `\&`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\~{}`,
	"^", `\^{}`,
	"\n", `\\`,
)

// escapeLaTeX escapes TeX special characters in a label.
func escapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}
