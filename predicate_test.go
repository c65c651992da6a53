package treekit

import "testing"

func TestMaxDepth(t *testing.T) {
	n := newTestNode("n")
	p := MaxDepth(2)

	tests := []struct {
		depth int
		want  bool
	}{
		{depth: 0, want: false},
		{depth: 1, want: false},
		{depth: 2, want: true},
		{depth: 3, want: true},
	}

	for _, tt := range tests {
		if got := p(n, NodeItem{Depth: tt.depth}); got != tt.want {
			t.Errorf("MaxDepth(2) at depth %d = %v, want %v", tt.depth, got, tt.want)
		}
	}
}

func TestOrAnd(t *testing.T) {
	n := newTestNode("n")
	yes := Predicate(func(Node, NodeItem) bool { return true })
	no := Predicate(func(Node, NodeItem) bool { return false })

	tests := []struct {
		name string
		pred Predicate
		want bool
	}{
		{name: "or hit", pred: Or(no, yes), want: true},
		{name: "or miss", pred: Or(no, no), want: false},
		{name: "or skips nil", pred: Or(nil, yes), want: true},
		{name: "or empty", pred: Or(), want: false},
		{name: "and hit", pred: And(yes, yes), want: true},
		{name: "and miss", pred: And(yes, no), want: false},
		{name: "and empty", pred: And(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(n, NodeItem{}); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPreventCycles(t *testing.T) {
	a := newTestNode("a")
	b := newTestNode("b")
	p := PreventCycles()

	if p(a, NodeItem{}) {
		t.Error("first visit of a should not prune")
	}
	if !p(a, NodeItem{}) {
		t.Error("second visit of a should prune")
	}
	if p(b, NodeItem{}) {
		t.Error("first visit of b should not prune")
	}

	// A fresh predicate has no memory of earlier traversals.
	if PreventCycles()(a, NodeItem{}) {
		t.Error("fresh predicate should not prune a")
	}
}
