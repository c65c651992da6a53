package treekit

// Node is the minimal capability contract every tree node must satisfy.
// Nodes are owned by the caller; treekit only reads them.
type Node interface {
	// Children returns the child nodes. The order must be deterministic
	// for the duration of one traversal. A leaf returns an empty or nil
	// slice.
	Children() []Node
}

// ParentNode is a Node that additionally knows its parent.
// Route queries require anchors to satisfy this contract.
type ParentNode interface {
	Node

	// Parent returns the unique node whose Children include this node,
	// or nil for a root. Implementations must return an untyped nil for
	// roots, never a typed nil wrapped in the interface.
	Parent() ParentNode
}

// BinaryNode is a Node with distinguished left and right children.
// It is consumed by in-order traversal; Children must report the non-nil
// children left-to-right.
type BinaryNode interface {
	Node

	// LeftChild returns the left child or nil.
	LeftChild() BinaryNode

	// RightChild returns the right child or nil.
	RightChild() BinaryNode
}

// Labeled is an optional capability consumed by the export package.
// Nodes that do not implement it are rendered with fmt formatting.
type Labeled interface {
	// Label returns a string representing just this node, without its
	// parents or children.
	Label() string
}

// NodeItem annotates a node yielded during an ordered traversal.
type NodeItem struct {
	// Index is the node's position among its siblings as enumerated by
	// its parent during this walk. The traversal's starting node is
	// always assigned index 0, regardless of its true position in a
	// larger tree. In-order traversal uses 0 for every left child and
	// 1 for every right child.
	Index int

	// Depth is the number of children-hops from the traversal's starting
	// node. Always 0 for the starting node.
	Depth int
}

// IsLeaf reports whether n has no children.
func IsLeaf(n Node) bool {
	return len(n.Children()) == 0
}

// IsRoot reports whether n has no parent.
func IsRoot(n ParentNode) bool {
	return n.Parent() == nil
}

// BinaryChildren returns the non-nil children of a binary node in
// left-to-right order. Adapter types can use it to implement Children.
func BinaryChildren(b BinaryNode) []Node {
	var nodes []Node
	if l := b.LeftChild(); l != nil {
		nodes = append(nodes, l)
	}
	if r := b.RightChild(); r != nil {
		nodes = append(nodes, r)
	}
	return nodes
}
