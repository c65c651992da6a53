package adapt

import (
	"fmt"

	"github.com/treekit/treekit"
)

// Heap adapts a slice laid out as a binary heap into a binary tree: the
// children of index i live at 2i+1 and 2i+2, its parent at (i-1)/2. The
// adapter reads through a slice pointer, so pushes and pops on the
// underlying heap are visible to nodes created earlier.
type Heap[T any] struct {
	data  *[]T
	label func(T) string
}

// HeapOption configures a Heap adapter.
type HeapOption[T any] func(*Heap[T])

// WithHeapLabelFunc overrides the default fmt.Sprint label.
func WithHeapLabelFunc[T any](label func(T) string) HeapOption[T] {
	return func(h *Heap[T]) { h.label = label }
}

// NewHeap creates a binary-tree adapter over the given heap slice.
func NewHeap[T any](data *[]T, opts ...HeapOption[T]) *Heap[T] {
	h := &Heap[T]{data: data}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Len returns the current number of heap elements.
func (h *Heap[T]) Len() int { return len(*h.data) }

// Root returns the node at index 0, or nil for an empty heap.
func (h *Heap[T]) Root() *HeapNode[T] {
	if len(*h.data) == 0 {
		return nil
	}
	return &HeapNode[T]{h: h, index: 0}
}

// Node returns the node at index i. The index must be within the heap.
func (h *Heap[T]) Node(i int) *HeapNode[T] {
	if i < 0 || i >= len(*h.data) {
		panic(fmt.Sprintf("adapt: heap index %d out of range [0,%d)", i, len(*h.data)))
	}
	return &HeapNode[T]{h: h, index: i}
}

// HeapNode is one position of a heap-backed binary tree.
type HeapNode[T any] struct {
	h     *Heap[T]
	index int
}

// Value returns the heap element at this position.
func (n *HeapNode[T]) Value() T { return (*n.h.data)[n.index] }

// Index returns this node's position in the heap slice.
func (n *HeapNode[T]) Index() int { return n.index }

// Children returns the in-range heap children, left before right.
func (n *HeapNode[T]) Children() []treekit.Node {
	size := len(*n.h.data)
	left, right := 2*n.index+1, 2*n.index+2
	switch {
	case right < size:
		return []treekit.Node{
			&HeapNode[T]{h: n.h, index: left},
			&HeapNode[T]{h: n.h, index: right},
		}
	case left < size:
		return []treekit.Node{&HeapNode[T]{h: n.h, index: left}}
	default:
		return nil
	}
}

// LeftChild returns the node at 2i+1, or nil when out of range.
func (n *HeapNode[T]) LeftChild() treekit.BinaryNode {
	if i := 2*n.index + 1; i < len(*n.h.data) {
		return &HeapNode[T]{h: n.h, index: i}
	}
	return nil
}

// RightChild returns the node at 2i+2, or nil when out of range.
func (n *HeapNode[T]) RightChild() treekit.BinaryNode {
	if i := 2*n.index + 2; i < len(*n.h.data) {
		return &HeapNode[T]{h: n.h, index: i}
	}
	return nil
}

// Parent returns the node at (i-1)/2, or nil at the heap root.
func (n *HeapNode[T]) Parent() treekit.ParentNode {
	if n.index == 0 {
		return nil
	}
	return &HeapNode[T]{h: n.h, index: (n.index - 1) / 2}
}

// Label renders the heap element at this position.
func (n *HeapNode[T]) Label() string {
	if n.h.label != nil {
		return n.h.label(n.Value())
	}
	return fmt.Sprint(n.Value())
}

func (n *HeapNode[T]) String() string { return n.Label() }

// heapID ties node identity to the heap slice and position, so wrappers
// over the same position of the same heap are equivalent while equal
// values in different heaps are not.
type heapID struct {
	heap  any
	index int
}

// NID identifies the node by heap and index.
func (n *HeapNode[T]) NID() any { return heapID{heap: n.h.data, index: n.index} }
