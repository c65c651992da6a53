package adapt

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/treekit/treekit"
)

// MapNode adapts nested map[string]any / []any data, the shape produced
// by generic JSON or YAML unmarshalling. Map entries become children
// labeled by their key, visited in sorted key order so traversal is
// deterministic; slice elements keep their position order. Any other
// value is a leaf.
type MapNode struct {
	value  any
	key    string
	path   string
	parent *MapNode
}

// NewMap wraps a nested map/slice/scalar value as a tree root.
func NewMap(v any) *MapNode {
	return &MapNode{value: v, path: "$"}
}

// Value returns the wrapped value.
func (n *MapNode) Value() any { return n.value }

// Path returns the node's location from the root, e.g. "$/spec/ports/0".
func (n *MapNode) Path() string { return n.path }

// Children enumerates map entries (sorted by key) or slice elements.
func (n *MapNode) Children() []treekit.Node {
	switch v := n.value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		kids := make([]treekit.Node, len(keys))
		for i, k := range keys {
			kids[i] = &MapNode{value: v[k], key: k, path: n.path + "/" + k, parent: n}
		}
		return kids
	case []any:
		kids := make([]treekit.Node, len(v))
		for i, e := range v {
			k := strconv.Itoa(i)
			kids[i] = &MapNode{value: e, key: k, path: n.path + "/" + k, parent: n}
		}
		return kids
	default:
		return nil
	}
}

// Parent returns the containing map or slice node, nil at the root.
func (n *MapNode) Parent() treekit.ParentNode {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Label shows the entry key, with the value appended for scalar leaves.
func (n *MapNode) Label() string {
	switch n.value.(type) {
	case map[string]any, []any:
		if n.key == "" {
			return n.path
		}
		return n.key
	default:
		if n.key == "" {
			return fmt.Sprint(n.value)
		}
		return n.key + ": " + fmt.Sprint(n.value)
	}
}

func (n *MapNode) String() string { return n.Label() }

// mapID identifies a node by its path from the adapter root, so
// re-walking the same data yields equivalent wrappers.
type mapID struct {
	path string
}

// NID identifies the node by path.
func (n *MapNode) NID() any { return mapID{n.path} }
