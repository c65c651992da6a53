package adapt

import (
	"fmt"

	"github.com/treekit/treekit"
)

// Func adapts an arbitrary comparable value type T into a tree by way of
// caller-supplied accessor functions. Only the children function is
// required; without a parent function the wrapped values form a
// downward-only tree rooted wherever Node is called.
type Func[T comparable] struct {
	children func(T) []T
	parent   func(T) (T, bool)
	label    func(T) string
}

// FuncOption configures a Func adapter.
type FuncOption[T comparable] func(*Func[T])

// WithParentFunc supplies upward navigation: parent returns the parent
// value and true, or the zero value and false at the root.
func WithParentFunc[T comparable](parent func(T) (T, bool)) FuncOption[T] {
	return func(f *Func[T]) { f.parent = parent }
}

// WithLabelFunc overrides the default fmt.Sprint label.
func WithLabelFunc[T comparable](label func(T) string) FuncOption[T] {
	return func(f *Func[T]) { f.label = label }
}

// NewFunc creates an adapter whose trees enumerate children through the
// given function. A nil slice means the value is a leaf.
func NewFunc[T comparable](children func(T) []T, opts ...FuncOption[T]) *Func[T] {
	f := &Func[T]{children: children}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Node wraps a value as a tree node of this adapter.
func (f *Func[T]) Node(v T) *FuncNode[T] {
	return &FuncNode[T]{f: f, value: v}
}

// FuncNode is a node of a Func adapter. It carries the wrapped value and,
// when reached by descending from a parent, a link back to it.
type FuncNode[T comparable] struct {
	f      *Func[T]
	value  T
	parent *FuncNode[T]
}

// Value returns the wrapped value.
func (n *FuncNode[T]) Value() T { return n.value }

// Children wraps the values reported by the adapter's children function.
func (n *FuncNode[T]) Children() []treekit.Node {
	vals := n.f.children(n.value)
	if len(vals) == 0 {
		return nil
	}
	kids := make([]treekit.Node, len(vals))
	for i, v := range vals {
		kids[i] = &FuncNode[T]{f: n.f, value: v, parent: n}
	}
	return kids
}

// Parent returns the node this one was reached from, falling back to the
// adapter's parent function. Nil when neither knows a parent.
func (n *FuncNode[T]) Parent() treekit.ParentNode {
	if n.parent != nil {
		return n.parent
	}
	if n.f.parent != nil {
		if p, ok := n.f.parent(n.value); ok {
			return &FuncNode[T]{f: n.f, value: p}
		}
	}
	return nil
}

// Label renders the wrapped value.
func (n *FuncNode[T]) Label() string {
	if n.f.label != nil {
		return n.f.label(n.value)
	}
	return fmt.Sprint(n.value)
}

func (n *FuncNode[T]) String() string { return n.Label() }

// funcID makes wrappers over equal values equivalent, regardless of how
// each wrapper was constructed.
type funcID[T comparable] struct {
	value T
}

// NID identifies the node by its wrapped value.
func (n *FuncNode[T]) NID() any { return funcID[T]{n.value} }
