package adapt

import (
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"

	"github.com/treekit/treekit"
)

// JSONNode adapts raw JSON bytes into a tree without unmarshalling the
// document: object members and array elements are enumerated directly
// from the byte slice. Object members keep document order.
type JSONNode struct {
	value  []byte
	vt     jsonparser.ValueType
	key    string
	path   string
	parent *JSONNode
}

// NewJSON wraps a JSON document as a tree root. The document is parsed
// just far enough to classify the root value; malformed input fails here
// rather than during traversal.
func NewJSON(data []byte) (*JSONNode, error) {
	value, vt, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("adapt: invalid json document: %w", err)
	}
	return &JSONNode{value: value, vt: vt, path: "$"}, nil
}

// Value returns the raw bytes of this JSON value. Strings are unquoted.
func (n *JSONNode) Value() []byte { return n.value }

// Type reports the JSON value kind (object, array, string, ...).
func (n *JSONNode) Type() jsonparser.ValueType { return n.vt }

// Path returns the node's location from the root, e.g. "$/items/2/name".
func (n *JSONNode) Path() string { return n.path }

// Children enumerates object members or array elements.
func (n *JSONNode) Children() []treekit.Node {
	switch n.vt {
	case jsonparser.Object:
		var kids []treekit.Node
		err := jsonparser.ObjectEach(n.value, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
			k := string(key)
			kids = append(kids, &JSONNode{
				value:  value,
				vt:     vt,
				key:    k,
				path:   n.path + "/" + k,
				parent: n,
			})
			return nil
		})
		if err != nil {
			return nil
		}
		return kids
	case jsonparser.Array:
		var kids []treekit.Node
		i := 0
		_, err := jsonparser.ArrayEach(n.value, func(value []byte, vt jsonparser.ValueType, _ int, _ error) {
			k := strconv.Itoa(i)
			kids = append(kids, &JSONNode{
				value:  value,
				vt:     vt,
				key:    k,
				path:   n.path + "/" + k,
				parent: n,
			})
			i++
		})
		if err != nil {
			return nil
		}
		return kids
	default:
		return nil
	}
}

// Parent returns the containing object or array node, nil at the root.
func (n *JSONNode) Parent() treekit.ParentNode {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Label shows the member key or array index, with the raw value appended
// for scalar leaves.
func (n *JSONNode) Label() string {
	switch n.vt {
	case jsonparser.Object, jsonparser.Array:
		if n.key == "" {
			return n.path
		}
		return n.key
	default:
		if n.key == "" {
			return string(n.value)
		}
		return n.key + ": " + string(n.value)
	}
}

func (n *JSONNode) String() string { return n.Label() }

// jsonID identifies a node by its path from the document root.
type jsonID struct {
	path string
}

// NID identifies the node by path.
func (n *JSONNode) NID() any { return jsonID{n.path} }
