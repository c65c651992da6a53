package traverse_test

import (
	"strconv"
	"testing"

	"github.com/treekit/treekit"
	"github.com/treekit/treekit/traverse"
)

// node is the test fixture type for this package.
type node struct {
	label    string
	children []*node
	parent   *node
}

func n(label string, children ...*node) *node {
	nd := &node{label: label, children: children}
	for _, c := range children {
		c.parent = nd
	}
	return nd
}

func (n *node) Children() []treekit.Node {
	kids := make([]treekit.Node, len(n.children))
	for i, c := range n.children {
		kids[i] = c
	}
	return kids
}

func (n *node) Parent() treekit.ParentNode {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) Label() string  { return n.label }
func (n *node) String() string { return n.label }

// sample builds the tree A -> [B -> [D, E], C].
func sample() *node {
	return n("A", n("B", n("D"), n("E")), n("C"))
}

// infinite is an unbounded binary tree over ints: children of v are 2v+1
// and 2v+2.
type infinite int

func (v infinite) Children() []treekit.Node {
	return []treekit.Node{infinite(2*v + 1), infinite(2*v + 2)}
}

func labels(seq func(yield func(treekit.Node, treekit.NodeItem) bool)) []string {
	var out []string
	for nd := range seq {
		out = append(out, nd.(*node).label)
	}
	return out
}

func equalStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestOrders(t *testing.T) {
	root := sample()

	tests := []struct {
		name string
		seq  func(yield func(treekit.Node, treekit.NodeItem) bool)
		want []string
	}{
		{name: "preorder", seq: traverse.PreOrder(root), want: []string{"A", "B", "D", "E", "C"}},
		{name: "postorder", seq: traverse.PostOrder(root), want: []string{"D", "E", "B", "C", "A"}},
		{name: "levelorder", seq: traverse.LevelOrder(root), want: []string{"A", "B", "C", "D", "E"}},
		{name: "preorder exclude root", seq: traverse.PreOrder(root, traverse.ExcludeRoot()), want: []string{"B", "D", "E", "C"}},
		{name: "postorder exclude root", seq: traverse.PostOrder(root, traverse.ExcludeRoot()), want: []string{"D", "E", "B", "C"}},
		{name: "levelorder exclude root", seq: traverse.LevelOrder(root, traverse.ExcludeRoot()), want: []string{"B", "C", "D", "E"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			equalStrings(t, labels(tt.seq), tt.want)
			// Sequences restart from scratch when re-iterated.
			equalStrings(t, labels(tt.seq), tt.want)
		})
	}
}

func TestPreOrderItems(t *testing.T) {
	root := sample()

	want := []struct {
		label string
		index int
		depth int
	}{
		{"A", 0, 0},
		{"B", 0, 1},
		{"D", 0, 2},
		{"E", 1, 2},
		{"C", 1, 1},
	}

	i := 0
	for nd, item := range traverse.PreOrder(root) {
		if i >= len(want) {
			t.Fatalf("too many nodes yielded")
		}
		w := want[i]
		if nd.(*node).label != w.label || item.Index != w.index || item.Depth != w.depth {
			t.Errorf("step %d: got (%s, index=%d, depth=%d), want (%s, index=%d, depth=%d)",
				i, nd.(*node).label, item.Index, item.Depth, w.label, w.index, w.depth)
		}
		i++
	}
	if i != len(want) {
		t.Fatalf("yielded %d nodes, want %d", i, len(want))
	}
}

func TestPrune(t *testing.T) {
	root := sample()
	pruneB := treekit.Predicate(func(nd treekit.Node, _ treekit.NodeItem) bool {
		return nd.(*node).label == "B"
	})

	tests := []struct {
		name string
		seq  func(yield func(treekit.Node, treekit.NodeItem) bool)
		want []string
	}{
		// The pruned node is yielded; its subtree is not expanded.
		{name: "preorder", seq: traverse.PreOrder(root, traverse.Prune(pruneB)), want: []string{"A", "B", "C"}},
		{name: "postorder", seq: traverse.PostOrder(root, traverse.Prune(pruneB)), want: []string{"B", "C", "A"}},
		{name: "levelorder", seq: traverse.LevelOrder(root, traverse.Prune(pruneB)), want: []string{"A", "B", "C"}},
		{name: "maxdepth", seq: traverse.PreOrder(root, traverse.Prune(treekit.MaxDepth(1))), want: []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			equalStrings(t, labels(tt.seq), tt.want)
		})
	}
}

func TestInfinitePrefix(t *testing.T) {
	tests := []struct {
		name string
		seq  func(yield func(treekit.Node, treekit.NodeItem) bool)
		want []int
	}{
		{name: "preorder", seq: traverse.PreOrder(infinite(0)), want: []int{0, 1, 3, 7, 15}},
		{name: "levelorder", seq: traverse.LevelOrder(infinite(0)), want: []int{0, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			for nd := range tt.seq {
				got = append(got, int(nd.(infinite)))
				if len(got) == len(tt.want) {
					break
				}
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestNodesAndLeaves(t *testing.T) {
	root := sample()

	seen := map[string]int{}
	for nd := range traverse.Nodes(root) {
		seen[nd.(*node).label]++
	}
	for _, label := range []string{"A", "B", "C", "D", "E"} {
		if seen[label] != 1 {
			t.Errorf("node %s yielded %d times, want 1", label, seen[label])
		}
	}

	leaves := map[string]bool{}
	for nd := range traverse.Leaves(root) {
		leaves[nd.(*node).label] = true
	}
	want := map[string]bool{"C": true, "D": true, "E": true}
	if len(leaves) != len(want) {
		t.Fatalf("leaves = %v, want %v", leaves, want)
	}
	for l := range want {
		if !leaves[l] {
			t.Errorf("missing leaf %s", l)
		}
	}

	descendants := 0
	for range traverse.Descendants(root) {
		descendants++
	}
	if descendants != 4 {
		t.Errorf("Descendants yielded %d nodes, want 4", descendants)
	}
}

func TestNodesPrune(t *testing.T) {
	root := sample()
	got := 0
	for range traverse.Nodes(root, traverse.Prune(treekit.MaxDepth(1))) {
		got++
	}
	if got != 3 {
		t.Errorf("Nodes with depth 1 prune yielded %d, want 3", got)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		root treekit.Node
		want int
	}{
		{name: "sample", root: sample(), want: 5},
		{name: "single", root: n("X"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := traverse.Count(traverse.PreOrder(tt.root)); got != tt.want {
				t.Errorf("Count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWideTreeLevelOrder(t *testing.T) {
	// Enough nodes to drive the internal queue through compaction.
	kids := make([]*node, 300)
	for i := range kids {
		kids[i] = n("c" + strconv.Itoa(i))
	}
	root := n("root", kids...)

	if got := traverse.Count(traverse.LevelOrder(root)); got != 301 {
		t.Fatalf("Count = %d, want 301", got)
	}
	var got []string
	for nd := range traverse.LevelOrder(root, traverse.ExcludeRoot()) {
		got = append(got, nd.(*node).label)
	}
	for i := range kids {
		if got[i] != "c"+strconv.Itoa(i) {
			t.Fatalf("child %d out of order: %s", i, got[i])
		}
	}
}
