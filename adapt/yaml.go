package adapt

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/treekit/treekit"
)

// YAMLNode adapts a parsed yaml.Node document. Document and sequence
// nodes expose their content as children; mapping nodes expose one child
// per key/value pair, labeled by the key; alias nodes are leaves so a
// document with anchors cannot send a walk into a cycle.
type YAMLNode struct {
	n      *yaml.Node
	key    string
	parent *YAMLNode
}

// NewYAML wraps an already-parsed yaml.Node as a tree root.
func NewYAML(n *yaml.Node) *YAMLNode {
	return &YAMLNode{n: n}
}

// LoadYAML parses a YAML document and wraps it as a tree root.
func LoadYAML(data []byte) (*YAMLNode, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("adapt: invalid yaml document: %w", err)
	}
	return NewYAML(&n), nil
}

// Value returns the wrapped yaml.Node.
func (n *YAMLNode) Value() *yaml.Node { return n.n }

// Children enumerates document content, mapping pairs, or sequence
// elements.
func (n *YAMLNode) Children() []treekit.Node {
	switch n.n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		kids := make([]treekit.Node, len(n.n.Content))
		for i, c := range n.n.Content {
			kids[i] = &YAMLNode{n: c, parent: n}
		}
		return kids
	case yaml.MappingNode:
		// Content alternates key, value, key, value, ...
		kids := make([]treekit.Node, 0, len(n.n.Content)/2)
		for i := 0; i+1 < len(n.n.Content); i += 2 {
			key, value := n.n.Content[i], n.n.Content[i+1]
			kids = append(kids, &YAMLNode{n: value, key: key.Value, parent: n})
		}
		return kids
	default:
		return nil
	}
}

// Parent returns the containing node, nil at the root.
func (n *YAMLNode) Parent() treekit.ParentNode {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Label shows the mapping key when there is one, the scalar value for
// scalar nodes, and a kind name otherwise.
func (n *YAMLNode) Label() string {
	if n.key != "" {
		if n.n.Kind == yaml.ScalarNode {
			return n.key + ": " + n.n.Value
		}
		return n.key
	}
	switch n.n.Kind {
	case yaml.ScalarNode:
		return n.n.Value
	case yaml.AliasNode:
		return "*" + n.n.Value
	case yaml.DocumentNode:
		return "document"
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	default:
		return fmt.Sprintf("yaml(%d)", n.n.Kind)
	}
}

func (n *YAMLNode) String() string { return n.Label() }

// yamlID identifies a node by the wrapped yaml.Node pointer; parsing a
// document yields one yaml.Node per position, so pointer identity is
// positional identity.
type yamlID struct {
	n *yaml.Node
}

// NID identifies the node by its yaml.Node.
func (n *YAMLNode) NID() any { return yamlID{n.n} }
