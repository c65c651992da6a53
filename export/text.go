package export

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ddddddO/gtree"

	"github.com/treekit/treekit"
	"github.com/treekit/treekit/traverse"
)

// Write renders the tree as indented text, one node per line, with branch
// glyphs from the configured style. Rendering materializes the tree up to
// the prune boundary; pass WithMaxDepth or WithPrune when the input may
// be very deep or infinite.
func Write(w io.Writer, root treekit.Node, opts ...Option) error {
	cfg := newConfig(opts)
	st, err := cfg.style()
	if err != nil {
		return err
	}

	// A stack of gtree nodes indexed by depth links each visited node to
	// its rendered parent.
	var groot *gtree.Node
	var parents []*gtree.Node
	for n, item := range traverse.PreOrder(root, traverse.Prune(cfg.prune)) {
		text := cfg.formatter(n)
		if item.Depth == 0 {
			groot = gtree.NewRoot(text)
			parents = append(parents[:0], groot)
			continue
		}
		parents = parents[:item.Depth]
		parents = append(parents, parents[item.Depth-1].Add(text))
	}

	blanks := strings.Repeat(" ", utf8.RuneCountInString(st.Last))
	return gtree.OutputProgrammably(w, groot,
		gtree.WithBranchFormatIntermedialNode(st.Branch, st.Vertical),
		gtree.WithBranchFormatLastNode(st.Last, blanks),
	)
}

// String renders the tree as text and returns it.
func String(root treekit.Node, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, root, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Print renders the tree as text to stdout.
func Print(root treekit.Node, opts ...Option) error {
	return Write(os.Stdout, root, opts...)
}
