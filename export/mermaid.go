package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/treekit/treekit"
)

// Shapes maps mermaid shape names to their bracket pairs.
var Shapes = map[string][2]string{
	"box":               {"[", "]"},
	"rectangle":         {"[", "]"},
	"round":             {"(", ")"},
	"stadium":           {"([", "])"},
	"subroutine":        {"[[", "]]"},
	"asymmetric":        {">", "]"},
	"circle":            {"((", "))"},
	"double-circle":     {"(((", ")))"},
	"rhombus":           {"{", "}"},
	"hexagon":           {"{{", "}}"},
	"parallelogram":     {"[/", "/]"},
	"inv-parallelogram": {"[\\", "\\]"},
	"trapezium":         {"[/", "\\]"},
	"inv-trapezium":     {"[\\", "/]"},
}

// WriteMermaid renders the tree as a mermaid graph. Depth is limited to 5
// unless WithPrune or WithMaxDepth overrides it; shared subtrees render
// as one vertex.
func WriteMermaid(w io.Writer, root treekit.Node, opts ...Option) error {
	cfg := newConfig(opts)
	shape, ok := Shapes[cfg.shape]
	if !ok {
		return fmt.Errorf("%w: shape %q", ErrUnknownStyle, cfg.shape)
	}
	prune := treekit.Or(treekit.PreventCycles(), cfg.pruneOr(treekit.MaxDepth(5)))

	ew := &errWriter{w: w}
	ew.printf("graph %s;\n", cfg.direction)

	nm := &names{byID: make(map[any]string)}
	var edges []string

	queue := []graphFrame{{node: root}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		name, fresh := nm.of(f.node)
		if fresh {
			ew.printf("%s%s%s%s;\n", name, shape[0], escapeMermaid(cfg.formatter(f.node)), shape[1])
		}
		if f.parent != "" {
			edges = append(edges, f.parent+"-->"+name+";")
		}
		if prune(f.node, f.item) {
			continue
		}
		for i, c := range f.node.Children() {
			queue = append(queue, graphFrame{
				node:   c,
				item:   treekit.NodeItem{Index: i, Depth: f.item.Depth + 1},
				parent: name,
			})
		}
	}

	for _, e := range edges {
		ew.printf("%s\n", e)
	}
	return ew.err
}

// StringMermaid renders the tree as mermaid and returns it.
func StringMermaid(root treekit.Node, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := WriteMermaid(&sb, root, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}
