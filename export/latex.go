package export

import (
	"io"
	"strings"

	"github.com/treekit/treekit"
)

// WriteLaTeX renders the tree as a tikzpicture. The output needs
// \usepackage{tikz} in the document preamble and is not wrapped in a
// figure environment. Depth is limited to 5 unless WithPrune or
// WithMaxDepth overrides it.
func WriteLaTeX(w io.Writer, root treekit.Node, opts ...Option) error {
	cfg := newConfig(opts)
	prune := cfg.pruneOr(treekit.MaxDepth(5))

	ew := &errWriter{w: w}
	ew.printf("\\begin{tikzpicture}[align=center]\n")
	ew.printf("\\node {%s} [grow=right]", escapeLaTeX(cfg.formatter(root)))
	if prune == nil || !prune(root, treekit.NodeItem{}) {
		for i, c := range root.Children() {
			latexChild(ew, c, treekit.NodeItem{Index: i, Depth: 1}, prune, cfg.formatter)
		}
	}
	ew.printf(";\n\\end{tikzpicture}\n")
	return ew.err
}

func latexChild(ew *errWriter, n treekit.Node, item treekit.NodeItem, prune treekit.Predicate, format func(treekit.Node) string) {
	indent := strings.Repeat("    ", item.Depth)
	ew.printf("\n%schild {node {%s}", indent, escapeLaTeX(format(n)))
	if prune == nil || !prune(n, item) {
		for i, c := range n.Children() {
			latexChild(ew, c, treekit.NodeItem{Index: i, Depth: item.Depth + 1}, prune, format)
		}
	}
	ew.printf("}")
}

// StringLaTeX renders the tree as a tikzpicture and returns it.
func StringLaTeX(root treekit.Node, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := WriteLaTeX(&sb, root, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}
