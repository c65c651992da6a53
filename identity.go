package treekit

// Identified is an optional capability for nodes that wrap or delegate to
// an underlying value. NID must return a comparable identifier derived from
// the underlying node, stable for the duration of a traversal or route
// computation, so that two wrapper instances pointing at the same
// structural position compare as equivalent.
type Identified interface {
	NID() any
}

// NID returns a stable identifier for n, suitable as a lookup key for the
// duration of one traversal or route computation. Nodes implementing
// Identified supply their own id; otherwise the node value itself is the
// id, which for pointer-shaped nodes is reference identity.
//
// The returned value must be comparable; a node of a non-comparable
// dynamic type that does not implement Identified cannot be used where
// identity is required.
func NID(n Node) any {
	if n == nil {
		return nil
	}
	if id, ok := n.(Identified); ok {
		return id.NID()
	}
	return n
}

// Eqv reports whether a and b denote the same underlying tree node.
// For plain nodes this is reference identity; delegating wrappers are
// unwrapped through their NID, so independently constructed wrappers over
// the same node are equivalent. Eqv is reflexive and symmetric.
func Eqv(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return NID(a) == NID(b)
}
