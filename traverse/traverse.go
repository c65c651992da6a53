package traverse

import (
	"iter"

	"github.com/treekit/treekit"
	"github.com/treekit/treekit/pool"
)

// frame pairs a node with its traversal metadata on a frontier or level
// buffer.
type frame struct {
	node treekit.Node
	item treekit.NodeItem
}

var framePool = pool.NewSlices[frame](64)

// PreOrder yields each node before its children, children in the order
// Children reports them.
func PreOrder(root treekit.Node, opts ...Option) iter.Seq2[treekit.Node, treekit.NodeItem] {
	cfg := newConfig(opts)
	return func(yield func(treekit.Node, treekit.NodeItem) bool) {
		if cfg.includeRoot {
			preOrder(yield, root, treekit.NodeItem{}, cfg.prune)
			return
		}
		for i, c := range root.Children() {
			if !preOrder(yield, c, treekit.NodeItem{Index: i, Depth: 1}, cfg.prune) {
				return
			}
		}
	}
}

func preOrder(yield func(treekit.Node, treekit.NodeItem) bool, n treekit.Node, item treekit.NodeItem, prune treekit.Predicate) bool {
	if !yield(n, item) {
		return false
	}
	if prune != nil && prune(n, item) {
		return true
	}
	for i, c := range n.Children() {
		if !preOrder(yield, c, treekit.NodeItem{Index: i, Depth: item.Depth + 1}, prune) {
			return false
		}
	}
	return true
}

// PostOrder yields each node's children before the node itself.
func PostOrder(root treekit.Node, opts ...Option) iter.Seq2[treekit.Node, treekit.NodeItem] {
	cfg := newConfig(opts)
	return func(yield func(treekit.Node, treekit.NodeItem) bool) {
		if cfg.includeRoot {
			postOrder(yield, root, treekit.NodeItem{}, cfg.prune)
			return
		}
		for i, c := range root.Children() {
			if !postOrder(yield, c, treekit.NodeItem{Index: i, Depth: 1}, cfg.prune) {
				return
			}
		}
	}
}

func postOrder(yield func(treekit.Node, treekit.NodeItem) bool, n treekit.Node, item treekit.NodeItem, prune treekit.Predicate) bool {
	if prune == nil || !prune(n, item) {
		for i, c := range n.Children() {
			if !postOrder(yield, c, treekit.NodeItem{Index: i, Depth: item.Depth + 1}, prune) {
				return false
			}
		}
	}
	return yield(n, item)
}

// LevelOrder yields nodes in non-decreasing depth order; nodes of equal
// depth appear in the order their parents were visited, then sibling
// order. The walk expands a FIFO frontier and never materializes the
// tree, so any finite prefix of an infinite tree can be consumed.
func LevelOrder(root treekit.Node, opts ...Option) iter.Seq2[treekit.Node, treekit.NodeItem] {
	cfg := newConfig(opts)
	return func(yield func(treekit.Node, treekit.NodeItem) bool) {
		buf := framePool.Acquire()
		defer framePool.Release(buf)

		queue := *buf
		if cfg.includeRoot {
			queue = append(queue, frame{root, treekit.NodeItem{}})
		} else {
			for i, c := range root.Children() {
				queue = append(queue, frame{c, treekit.NodeItem{Index: i, Depth: 1}})
			}
		}

		head := 0
		for head < len(queue) {
			f := queue[head]
			head++
			// Drop the consumed prefix so the queue holds one
			// frontier, not every node seen so far.
			if head >= 64 && head*2 >= len(queue) {
				n := copy(queue, queue[head:])
				queue = queue[:n]
				head = 0
			}
			if !yield(f.node, f.item) {
				*buf = queue
				return
			}
			if cfg.prune != nil && cfg.prune(f.node, f.item) {
				continue
			}
			for i, c := range f.node.Children() {
				queue = append(queue, frame{c, treekit.NodeItem{Index: i, Depth: f.item.Depth + 1}})
			}
		}
		*buf = queue
	}
}

// Nodes yields every node reachable from root exactly once, in no
// particular order. It is the cheapest full walk; use PreOrder,
// PostOrder or LevelOrder when the order matters.
func Nodes(root treekit.Node, opts ...Option) iter.Seq[treekit.Node] {
	cfg := newConfig(opts)
	return func(yield func(treekit.Node) bool) {
		buf := framePool.Acquire()
		defer framePool.Release(buf)

		stack := *buf
		if cfg.includeRoot {
			stack = append(stack, frame{root, treekit.NodeItem{}})
		} else {
			for i, c := range root.Children() {
				stack = append(stack, frame{c, treekit.NodeItem{Index: i, Depth: 1}})
			}
		}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(f.node) {
				*buf = stack
				return
			}
			if cfg.prune != nil && cfg.prune(f.node, f.item) {
				continue
			}
			for i, c := range f.node.Children() {
				stack = append(stack, frame{c, treekit.NodeItem{Index: i, Depth: f.item.Depth + 1}})
			}
		}
		*buf = stack
	}
}

// Descendants yields every node below root, in no particular order.
func Descendants(root treekit.Node) iter.Seq[treekit.Node] {
	return Nodes(root, ExcludeRoot())
}

// Leaves yields every reachable node without children.
func Leaves(root treekit.Node) iter.Seq[treekit.Node] {
	return func(yield func(treekit.Node) bool) {
		for n := range Nodes(root) {
			if treekit.IsLeaf(n) {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// Count consumes an ordered traversal and returns the number of yielded
// pairs.
func Count(seq iter.Seq2[treekit.Node, treekit.NodeItem]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
