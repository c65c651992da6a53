// Package treekit provides a uniform way to traverse, compare, and query
// hierarchical data regardless of how the underlying nodes are represented.
//
// Trees come in many shapes: native composite structs, nested maps and
// slices, parsed documents, filesystem hierarchies, or third-party node
// types that only expose ad-hoc children/parent access. treekit defines a
// minimal capability contract (Node, ParentNode, BinaryNode) and builds
// everything else on top of it: ordered lazy traversals, relationship
// queries between nodes, and identity-aware comparison.
//
// # Quick Start
//
//	import (
//	    "github.com/treekit/treekit"
//	    "github.com/treekit/treekit/adapt"
//	    "github.com/treekit/treekit/traverse"
//	)
//
//	tree := adapt.NewFunc(func(n int) []int {
//	    if n > 100 {
//	        return nil
//	    }
//	    return []int{2*n + 1, 2*n + 2}
//	})
//
//	for node, item := range traverse.PreOrder(tree.Node(0)) {
//	    fmt.Println(item.Depth, node)
//	}
//
// # Components
//
// The repository is organised leaf-to-root:
//
//   - treekit (this package): the Node capability contracts, NodeItem
//     traversal metadata, identity (NID/Eqv) and prune predicates.
//   - traverse: lazy pre-, post-, level-, zigzag- and in-order walks as
//     iter.Seq2 sequences, plus ancestor/path/level helpers.
//   - route: lowest-common-ancestor and connecting-path queries between
//     arbitrary nodes of one tree, exposed as count-aware reversible views.
//   - adapt: adapters mapping foreign representations (functions over a
//     value type, nested maps, heaps, JSON, YAML, io/fs) onto Node.
//   - export: text, graphviz, mermaid and latex rendering.
//
// # Laziness
//
// Every traversal and route view is a pull-based sequence. Work happens
// only when the caller requests the next element, sequences are restartable
// (re-invoking re-walks from scratch), and abandoning a partially consumed
// sequence carries no cleanup obligation. Infinite trees are fine as long
// as only a finite prefix is consumed.
//
// treekit never mutates or copies caller nodes; it only reads the
// capability methods. Mutating a tree while one of its lazy sequences is
// being consumed is undefined behavior for that sequence.
package treekit
