package traverse

import (
	"iter"

	"github.com/treekit/treekit"
	"github.com/treekit/treekit/pool"
)

var levelPool = pool.NewSlices[treekit.Node](32)

// Levels yields the tree one depth level at a time, starting with the
// level holding only root. The yielded slice is reused between steps;
// callers must not retain it past the iteration step.
func Levels(root treekit.Node) iter.Seq[[]treekit.Node] {
	return func(yield func([]treekit.Node) bool) {
		cur := levelPool.Acquire()
		next := levelPool.Acquire()
		defer levelPool.Release(cur)
		defer levelPool.Release(next)

		*cur = append(*cur, root)
		for len(*cur) > 0 {
			if !yield(*cur) {
				return
			}
			*next = (*next)[:0]
			for _, n := range *cur {
				*next = append(*next, n.Children()...)
			}
			*cur, *next = *next, *cur
		}
	}
}

// LevelsZigZag is Levels with alternating direction: the level at depth 0
// is reported left-to-right, depth 1 right-to-left, and so on. The
// yielded slice is reused between steps.
func LevelsZigZag(root treekit.Node) iter.Seq[[]treekit.Node] {
	return func(yield func([]treekit.Node) bool) {
		cur := levelPool.Acquire()
		next := levelPool.Acquire()
		emit := levelPool.Acquire()
		defer levelPool.Release(cur)
		defer levelPool.Release(next)
		defer levelPool.Release(emit)

		*cur = append(*cur, root)
		for depth := 0; len(*cur) > 0; depth++ {
			out := *cur
			if depth%2 == 1 {
				*emit = (*emit)[:0]
				for i := len(*cur) - 1; i >= 0; i-- {
					*emit = append(*emit, (*cur)[i])
				}
				out = *emit
			}
			if !yield(out) {
				return
			}
			*next = (*next)[:0]
			for _, n := range *cur {
				*next = append(*next, n.Children()...)
			}
			*cur, *next = *next, *cur
		}
	}
}

// ZigZag yields nodes level by level, alternating sibling direction per
// depth level (depth 0 left-to-right, depth 1 right-to-left, ...). Item
// indices are the nodes' true sibling indices regardless of emission
// direction. Exactly one level is buffered at a time, so zigzag is less
// lazy than LevelOrder but still safe on infinite trees for any finite
// prefix.
func ZigZag(root treekit.Node) iter.Seq2[treekit.Node, treekit.NodeItem] {
	return func(yield func(treekit.Node, treekit.NodeItem) bool) {
		cur := framePool.Acquire()
		next := framePool.Acquire()
		defer framePool.Release(cur)
		defer framePool.Release(next)

		*cur = append(*cur, frame{root, treekit.NodeItem{}})
		for depth := 0; len(*cur) > 0; depth++ {
			if depth%2 == 0 {
				for _, f := range *cur {
					if !yield(f.node, f.item) {
						return
					}
				}
			} else {
				for i := len(*cur) - 1; i >= 0; i-- {
					f := (*cur)[i]
					if !yield(f.node, f.item) {
						return
					}
				}
			}
			*next = (*next)[:0]
			for _, f := range *cur {
				for i, c := range f.node.Children() {
					*next = append(*next, frame{c, treekit.NodeItem{Index: i, Depth: depth + 1}})
				}
			}
			*cur, *next = *next, *cur
		}
	}
}
