// Package traverse produces lazy, ordered walks over treekit nodes.
//
// Every traversal is an iter.Seq or iter.Seq2 producer: restartable,
// one-pass, and incremental. Nodes are visited exactly once on acyclic
// finite input; on infinite input any finite prefix can be consumed.
// Children are requested only when the walk reaches a node, never up
// front.
//
// Ordered walks (PreOrder, PostOrder, LevelOrder, ZigZag, InOrder) yield
// (node, item) pairs where the item carries the node's depth relative to
// the traversal start and its index among siblings. Descent below
// individual nodes can be cut off with the Prune option; the pruned node
// itself is still yielded.
package traverse
