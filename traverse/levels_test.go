package traverse_test

import (
	"testing"

	"github.com/treekit/treekit"
	"github.com/treekit/treekit/traverse"
)

// wide builds a three-level tree:
//
//	A -> [B -> [D, E], C -> [F, G]]
func wide() *node {
	return n("A", n("B", n("D"), n("E")), n("C", n("F"), n("G")))
}

func levelLabels(nodes []treekit.Node) []string {
	out := make([]string, len(nodes))
	for i, nd := range nodes {
		out[i] = nd.(*node).label
	}
	return out
}

func TestLevels(t *testing.T) {
	want := [][]string{
		{"A"},
		{"B", "C"},
		{"D", "E", "F", "G"},
	}

	depth := 0
	for level := range traverse.Levels(wide()) {
		if depth >= len(want) {
			t.Fatalf("too many levels")
		}
		equalStrings(t, levelLabels(level), want[depth])
		depth++
	}
	if depth != len(want) {
		t.Fatalf("yielded %d levels, want %d", depth, len(want))
	}
}

func TestLevelsZigZag(t *testing.T) {
	// Odd levels are reported right-to-left.
	want := [][]string{
		{"A"},
		{"C", "B"},
		{"D", "E", "F", "G"},
	}

	depth := 0
	for level := range traverse.LevelsZigZag(wide()) {
		equalStrings(t, levelLabels(level), want[depth])
		depth++
	}
	if depth != len(want) {
		t.Fatalf("yielded %d levels, want %d", depth, len(want))
	}
}

func TestZigZag(t *testing.T) {
	var got []string
	var depths []int
	for nd, item := range traverse.ZigZag(wide()) {
		got = append(got, nd.(*node).label)
		depths = append(depths, item.Depth)
	}

	equalStrings(t, got, []string{"A", "C", "B", "D", "E", "F", "G"})
	wantDepths := []int{0, 1, 1, 2, 2, 2, 2}
	for i := range wantDepths {
		if depths[i] != wantDepths[i] {
			t.Fatalf("depths = %v, want %v", depths, wantDepths)
		}
	}
}

func TestZigZagSiblingIndex(t *testing.T) {
	// Indices stay structural even when a level is emitted reversed.
	for nd, item := range traverse.ZigZag(wide()) {
		label := nd.(*node).label
		wantIndex := map[string]int{"A": 0, "B": 0, "C": 1, "D": 0, "E": 1, "F": 0, "G": 1}[label]
		if item.Index != wantIndex {
			t.Errorf("node %s: index = %d, want %d", label, item.Index, wantIndex)
		}
	}
}

func TestZigZagInfinitePrefix(t *testing.T) {
	// Level 1 of the infinite tree is [1, 2]; zigzag emits it reversed.
	var got []int
	for nd := range traverse.ZigZag(infinite(0)) {
		got = append(got, int(nd.(infinite)))
		if len(got) == 7 {
			break
		}
	}
	want := []int{0, 2, 1, 3, 4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLevelsSingleNode(t *testing.T) {
	count := 0
	for level := range traverse.Levels(n("X")) {
		equalStrings(t, levelLabels(level), []string{"X"})
		count++
	}
	if count != 1 {
		t.Fatalf("yielded %d levels, want 1", count)
	}
}
