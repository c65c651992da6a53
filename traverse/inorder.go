package traverse

import (
	"iter"

	"github.com/treekit/treekit"
)

// InOrder yields a binary tree's left subtree, then the node, then the
// right subtree. Item indices differ from the other orders: every left
// child gets index 0 and every right child index 1, even when the other
// side is nil; the start node keeps index 0.
func InOrder(root treekit.BinaryNode, opts ...Option) iter.Seq2[treekit.Node, treekit.NodeItem] {
	cfg := newConfig(opts)
	return func(yield func(treekit.Node, treekit.NodeItem) bool) {
		if cfg.includeRoot {
			inOrder(yield, root, treekit.NodeItem{}, cfg.prune)
			return
		}
		if l := root.LeftChild(); l != nil {
			if !inOrder(yield, l, treekit.NodeItem{Index: 0, Depth: 1}, cfg.prune) {
				return
			}
		}
		if r := root.RightChild(); r != nil {
			inOrder(yield, r, treekit.NodeItem{Index: 1, Depth: 1}, cfg.prune)
		}
	}
}

func inOrder(yield func(treekit.Node, treekit.NodeItem) bool, n treekit.BinaryNode, item treekit.NodeItem, prune treekit.Predicate) bool {
	pruned := prune != nil && prune(n, item)
	if !pruned {
		if l := n.LeftChild(); l != nil {
			if !inOrder(yield, l, treekit.NodeItem{Index: 0, Depth: item.Depth + 1}, prune) {
				return false
			}
		}
	}
	if !yield(n, item) {
		return false
	}
	if !pruned {
		if r := n.RightChild(); r != nil {
			return inOrder(yield, r, treekit.NodeItem{Index: 1, Depth: item.Depth + 1}, prune)
		}
	}
	return true
}
