package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/treekit/treekit"
)

// errWriter folds a sequence of writes into the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// names assigns stable short identifiers to nodes, deduplicated by NID so
// a node shared by several parents gets one graph vertex.
type names struct {
	byID map[any]string
}

// of returns the node's name and whether it was assigned just now; a
// false second result means the node was already declared.
func (m *names) of(n treekit.Node) (string, bool) {
	id := treekit.NID(n)
	if name, ok := m.byID[id]; ok {
		return name, false
	}
	name := fmt.Sprintf("n%d", len(m.byID))
	m.byID[id] = name
	return name, true
}

type graphFrame struct {
	node   treekit.Node
	item   treekit.NodeItem
	parent string
}

// WriteDot renders the tree as a Graphviz strict digraph. Depth is
// limited to 5 unless WithPrune or WithMaxDepth overrides it; descent
// below already-expanded nodes always stops, so shared subtrees render
// finitely.
func WriteDot(w io.Writer, root treekit.Node, opts ...Option) error {
	cfg := newConfig(opts)
	prune := treekit.Or(treekit.PreventCycles(), cfg.pruneOr(treekit.MaxDepth(5)))

	ew := &errWriter{w: w}
	ew.printf("strict digraph tree {\n")

	nm := &names{byID: make(map[any]string)}
	var edges []string

	// Breadth-first so vertex declarations come out level by level, with
	// all edges after them.
	queue := []graphFrame{{node: root}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		name, fresh := nm.of(f.node)
		if fresh {
			ew.printf("%s[label=%s];\n", name, escapeDot(cfg.formatter(f.node)))
		}
		if f.parent != "" {
			edges = append(edges, f.parent+"->"+name+";")
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
	ew.printf("}\n")
	return ew.err
}

// StringDot renders the tree as Graphviz dot and returns it.
func StringDot(root treekit.Node, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := WriteDot(&sb, root, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}
