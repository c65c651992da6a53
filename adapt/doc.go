// Package adapt maps foreign tree representations onto the treekit node
// contracts without copying or transforming the underlying data.
//
// Every adapter is a thin wrapper: Children, Parent and Label calls are
// answered by reading the wrapped value on demand. Wrappers are cheap to
// build and throw away; two wrappers over the same underlying position
// are Eqv even when constructed independently.
//
// Available adapters:
//
//   - Func[T]: caller-supplied children/parent/label functions over any
//     comparable value type. The most general adapter; also the way to
//     walk implicit (computed, possibly infinite) trees.
//   - MapNode: nested map[string]any / []any / scalar data, as produced
//     by generic JSON or YAML unmarshalling. Map keys are visited in
//     sorted order.
//   - Heap[T]: binary-tree view over a slice with the standard heap
//     layout (children of i at 2i+1 and 2i+2).
//   - JSONNode: raw JSON bytes, walked with jsonparser without
//     unmarshalling the document.
//   - YAMLNode: a parsed yaml.Node document tree.
//   - FSNode: an io/fs filesystem hierarchy.
//
// For callers that receive values of unknown type, a Registry resolves a
// conversion function per concrete type; Any uses a default registry
// preloaded with the adapters above.
package adapt
