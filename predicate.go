package treekit

// Predicate decides, for a node yielded during traversal, whether descent
// should stop below it. A node for which the predicate returns true is
// still yielded, but its descendants are not expanded.
type Predicate func(Node, NodeItem) bool

// Or combines predicates; descent stops when any of them says so.
func Or(preds ...Predicate) Predicate {
	return func(n Node, item NodeItem) bool {
		for _, p := range preds {
			if p != nil && p(n, item) {
				return true
			}
		}
		return false
	}
}

// And combines predicates; descent stops only when all of them say so.
func And(preds ...Predicate) Predicate {
	return func(n Node, item NodeItem) bool {
		for _, p := range preds {
			if p == nil || !p(n, item) {
				return false
			}
		}
		return len(preds) > 0
	}
}

// MaxDepth returns a predicate that stops descent at the given depth:
// nodes at depth d are yielded, nodes below are not.
func MaxDepth(d int) Predicate {
	return func(_ Node, item NodeItem) bool {
		return item.Depth >= d
	}
}

// PreventCycles returns a predicate that stops descent below nodes that
// were already expanded during this traversal. A shared node may be
// yielded more than once, but its children are never expanded twice, so
// traversal of structurally shared or cyclic trees stays finite.
//
// The predicate is stateful; use a fresh one per traversal.
func PreventCycles() Predicate {
	seen := make(map[any]struct{})
	return func(n Node, _ NodeItem) bool {
		id := NID(n)
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
		return false
	}
}
