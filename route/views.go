package route

import (
	"iter"

	"github.com/treekit/treekit"
)

// Edge is a parent→child link between two adjacent route nodes. The
// direction is structural, not travel order: climbing from a node to its
// parent and descending the same link report the identical Edge.
type Edge struct {
	Parent treekit.Node
	Child  treekit.Node
}

// NodesView is a lazy, count-aware view over every node a route passes
// through: the first anchor, up to the pair's lowest common ancestor,
// down to the next anchor, and so on. Nodes are repeated if the route
// passes through them more than once.
type NodesView struct {
	r *Route
}

// Count returns the number of route nodes without walking the tree; it is
// derived from the anchors' path lengths and their pairwise common-prefix
// depths.
func (v NodesView) Count() int {
	k := len(v.r.apaths)
	if k == 0 {
		return 0
	}
	n := 1
	for i := 0; i+1 < k; i++ {
		c := v.r.commonDepth(i, i+1)
		n += len(v.r.apaths[i]) - 1 - c
		n += len(v.r.apaths[i+1]) - 1 - c
	}
	return n
}

// All yields the route nodes from the first anchor to the last.
func (v NodesView) All() iter.Seq[treekit.Node] {
	return func(yield func(treekit.Node) bool) {
		k := len(v.r.apaths)
		if k == 0 {
			return
		}
		for i := 0; i+1 < k; i++ {
			pi, pj := v.r.apaths[i], v.r.apaths[i+1]
			c := v.r.commonDepth(i, i+1)
			// Climb from anchor i to just above the pair's common
			// ancestor, then descend along anchor i+1's path. The
			// common ancestor itself is emitted on the descent leg.
			for idx := len(pi) - 1; idx > c; idx-- {
				if !yield(pi[idx]) {
					return
				}
			}
			for idx := c; idx < len(pj)-1; idx++ {
				if !yield(pj[idx]) {
					return
				}
			}
		}
		last := v.r.apaths[k-1]
		yield(last[len(last)-1])
	}
}

// Backward yields the route nodes from the last anchor to the first. It
// is the exact element-wise reverse of All.
func (v NodesView) Backward() iter.Seq[treekit.Node] {
	return func(yield func(treekit.Node) bool) {
		k := len(v.r.apaths)
		if k == 0 {
			return
		}
		for i := k - 1; i > 0; i-- {
			pi, pj := v.r.apaths[i], v.r.apaths[i-1]
			c := v.r.commonDepth(i-1, i)
			for idx := len(pi) - 1; idx > c; idx-- {
				if !yield(pi[idx]) {
					return
				}
			}
			for idx := c; idx < len(pj)-1; idx++ {
				if !yield(pj[idx]) {
					return
				}
			}
		}
		first := v.r.apaths[0]
		yield(first[len(first)-1])
	}
}

// EdgesView is a lazy, count-aware view over the edges between
// consecutive route nodes. Every edge is reported parent→child regardless
// of the direction the route travels it.
type EdgesView struct {
	r *Route
}

// Count returns the number of route edges: one fewer than the node count,
// or zero for empty and single-node routes.
func (v EdgesView) Count() int {
	n := NodesView{v.r}.Count()
	if n == 0 {
		return 0
	}
	return n - 1
}

// All yields the route edges from the first anchor toward the last.
func (v EdgesView) All() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		k := len(v.r.apaths)
		for i := 0; i+1 < k; i++ {
			pi, pj := v.r.apaths[i], v.r.apaths[i+1]
			c := v.r.commonDepth(i, i+1)
			for idx := len(pi) - 1; idx > c; idx-- {
				if !yield(Edge{Parent: pi[idx-1], Child: pi[idx]}) {
					return
				}
			}
			for idx := c; idx < len(pj)-1; idx++ {
				if !yield(Edge{Parent: pj[idx], Child: pj[idx+1]}) {
					return
				}
			}
		}
	}
}

// Backward yields the route edges from the last anchor toward the first;
// the exact element-wise reverse of All.
func (v EdgesView) Backward() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		k := len(v.r.apaths)
		for i := k - 1; i > 0; i-- {
			pi, pj := v.r.apaths[i], v.r.apaths[i-1]
			c := v.r.commonDepth(i-1, i)
			for idx := len(pi) - 1; idx > c; idx-- {
				if !yield(Edge{Parent: pi[idx-1], Child: pi[idx]}) {
					return
				}
			}
			for idx := c; idx < len(pj)-1; idx++ {
				if !yield(Edge{Parent: pj[idx], Child: pj[idx+1]}) {
					return
				}
			}
		}
	}
}
