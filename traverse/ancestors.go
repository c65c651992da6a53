package traverse

import (
	"iter"
	"slices"

	"github.com/treekit/treekit"
)

// Ancestors yields n's parent, grandparent, and so on up to the root.
func Ancestors(n treekit.ParentNode) iter.Seq[treekit.ParentNode] {
	return func(yield func(treekit.ParentNode) bool) {
		for p := n.Parent(); p != nil; p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}

// RootPath returns the nodes from the tree root down to n, inclusive.
// Its length is n's depth in the full tree plus one.
func RootPath(n treekit.ParentNode) []treekit.ParentNode {
	chain := []treekit.ParentNode{n}
	for p := n.Parent(); p != nil; p = p.Parent() {
		chain = append(chain, p)
	}
	slices.Reverse(chain)
	return chain
}

// PathOf yields the path from the root down to n, inclusive. The ancestor
// chain is materialized internally; use PathUpward for a fully lazy walk
// in the opposite direction.
func PathOf(n treekit.ParentNode) iter.Seq[treekit.ParentNode] {
	return func(yield func(treekit.ParentNode) bool) {
		for _, p := range RootPath(n) {
			if !yield(p) {
				return
			}
		}
	}
}

// PathUpward yields n followed by its ancestors up to the root.
func PathUpward(n treekit.ParentNode) iter.Seq[treekit.ParentNode] {
	return func(yield func(treekit.ParentNode) bool) {
		if !yield(n) {
			return
		}
		for p := range Ancestors(n) {
			if !yield(p) {
				return
			}
		}
	}
}

// RootOf follows parent links from n to the root of its tree.
func RootOf(n treekit.ParentNode) treekit.ParentNode {
	root := n
	for p := root.Parent(); p != nil; p = p.Parent() {
		root = p
	}
	return root
}

// Depth returns the number of parent hops from n to its root.
func Depth(n treekit.ParentNode) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

// Siblings yields the other children of n's parent, in sibling order.
// A root has no siblings.
func Siblings(n treekit.ParentNode) iter.Seq[treekit.Node] {
	return func(yield func(treekit.Node) bool) {
		p := n.Parent()
		if p == nil {
			return
		}
		for _, c := range p.Children() {
			if treekit.Eqv(c, n) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}
