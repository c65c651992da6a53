// Package route computes relationships between nodes of one tree: the
// lowest common ancestor of a set of anchor nodes and the node/edge
// sequence connecting them.
//
// A route visits its anchors in order and is as short as possible between
// consecutive anchors: it climbs from one anchor to the pair's lowest
// common ancestor and descends to the next. Routes with zero anchors
// (empty) and one anchor (a single node) are valid and need no
// special-casing by callers.
//
// A Route is derived from the anchors' parent chains at construction
// time; it is not cached across queries. Build a fresh Route to observe
// structural changes.
package route

import (
	"errors"
	"iter"

	"github.com/treekit/treekit"
	"github.com/treekit/treekit/traverse"
)

// ErrDifferentTree is returned when an anchor does not share a root with
// the route's existing anchors, so no common ancestor exists.
var ErrDifferentTree = errors.New("route: anchor belongs to a different tree")

// Route is a path through adjacent nodes of one tree, passing through the
// anchors in the order they were added.
type Route struct {
	// apaths holds, per anchor, its root path (root first, anchor last).
	apaths [][]treekit.ParentNode

	// common memoizes, per anchor pair, the index of the deepest node
	// their root paths agree on.
	common map[[2]int]int
}

// New creates a route through the given anchor nodes. All anchors must
// belong to the same tree; otherwise ErrDifferentTree is returned.
// Zero anchors yield a valid empty route.
func New(anchors ...treekit.ParentNode) (*Route, error) {
	r := &Route{common: make(map[[2]int]int)}
	for _, a := range anchors {
		if err := r.AddAnchor(a); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// AddAnchor appends an anchor to the route. The anchor's root path is
// computed once, by following parent links; the cost is proportional to
// the anchor's depth.
func (r *Route) AddAnchor(anchor treekit.ParentNode) error {
	path := traverse.RootPath(anchor)
	if len(r.apaths) > 0 && !treekit.Eqv(r.apaths[0][0], path[0]) {
		return ErrDifferentTree
	}
	r.apaths = append(r.apaths, path)
	return nil
}

// LCA returns the lowest common ancestor of all anchors: the deepest node
// that is an ancestor of, or equal to, every anchor. It returns nil for a
// route with no anchors.
func (r *Route) LCA() treekit.Node {
	if len(r.apaths) == 0 {
		return nil
	}
	p0 := r.apaths[0]
	c := len(p0) - 1
	for j := 1; j < len(r.apaths); j++ {
		if cj := r.commonDepth(0, j); cj < c {
			c = cj
		}
	}
	return p0[c]
}

// Anchors returns a view over the route's anchor nodes.
func (r *Route) Anchors() AnchorsView { return AnchorsView{r} }

// Nodes returns a view over every node the route passes through.
func (r *Route) Nodes() NodesView { return NodesView{r} }

// Edges returns a view over the parent→child edges between consecutive
// route nodes.
func (r *Route) Edges() EdgesView { return EdgesView{r} }

// commonDepth returns the index of the deepest node on which the root
// paths of anchors i and j agree. Index 0 (the shared root) always
// agrees; deeper indices agree until the paths fork.
func (r *Route) commonDepth(i, j int) int {
	key := [2]int{i, j}
	if c, ok := r.common[key]; ok {
		return c
	}
	pi, pj := r.apaths[i], r.apaths[j]
	n := min(len(pi), len(pj))
	c := 0
	for c+1 < n && treekit.Eqv(pi[c+1], pj[c+1]) {
		c++
	}
	r.common[key] = c
	return c
}

// AnchorsView is a count-aware view over a route's anchors.
type AnchorsView struct {
	r *Route
}

// Count returns the number of anchors.
func (v AnchorsView) Count() int { return len(v.r.apaths) }

// At returns the i-th anchor.
func (v AnchorsView) At(i int) treekit.ParentNode {
	p := v.r.apaths[i]
	return p[len(p)-1]
}

// All yields the anchors in the order they were added.
func (v AnchorsView) All() iter.Seq[treekit.Node] {
	return func(yield func(treekit.Node) bool) {
		for _, p := range v.r.apaths {
			if !yield(p[len(p)-1]) {
				return
			}
		}
	}
}
