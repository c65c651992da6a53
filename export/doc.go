// Package export renders trees as text, Graphviz dot, Mermaid, or LaTeX
// (tikz). It contains no traversal logic of its own; every renderer is a
// walk over the node contracts plus target-language formatting.
//
// Text rendering is backed by github.com/ddddddO/gtree, with the branch
// glyphs selectable through named styles (square, round, ascii, ...).
//
// The graph renderers (dot, mermaid) deduplicate nodes via treekit.NID
// and stop descent below already-expanded nodes, so trees with shared
// subtrees render as finite graphs. Graph and LaTeX renderers limit depth
// to 5 by default; override with WithPrune or WithMaxDepth.
package export
