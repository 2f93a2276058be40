package tree

import (
	"testing"

	"github.com/elogical/elogic/op"
	"github.com/google/go-cmp/cmp"
)

func TestToGraphBinary(t *testing.T) {
	g := ToGraph(MustOp(op.Start(), vars2, bin(op.And())))
	wantEdges := []GraphEdge{{From: 0, To: 1}, {From: 0, To: 2}}
	if diff := cmp.Diff(wantEdges, g.Edges); diff != "" {
		t.Errorf("edges (-want +got):\n%s", diff)
	}
	wantNodes := []GraphNode{
		{ID: 0, Label: `<span class="op">&and;</span>`, Kind: OperatorKind, Name: "and", Color: "#7cb24a"},
		{ID: 1, Label: `<span class="var" data-name="v0">v<sub>0</sub></span>`, Kind: LiteralKind, Name: "v0", Color: "#7cb24a"},
		{ID: 2, Label: `<span class="var" data-name="v1">v<sub>1</sub></span>`, Kind: LiteralKind, Name: "v1", Color: "#7cb24a"},
	}
	if diff := cmp.Diff(wantNodes, g.Nodes); diff != "" {
		t.Errorf("nodes (-want +got):\n%s", diff)
	}
	if len(g.Leaves) != 2 {
		t.Errorf("got %d leaves", len(g.Leaves))
	}
}

func TestToGraphDedupsLeaves(t *testing.T) {
	g := ToGraph(MustOp(op.And(), vars2, lit("v0"), lit("v0")))
	if len(g.Leaves) != 1 || g.Leaves[0].Name != "v0" {
		t.Fatalf("leaves: %+v", g.Leaves)
	}
	checkTreeShaped(t, g)
}

func TestToGraphElidesWrappersAndInheritsColor(t *testing.T) {
	n := MustOp(op.Start(), vars2,
		MustOp(op.Not(), vars2,
			MustOp(op.Parens(), vars2,
				MustOp(op.And(), vars2, lit("v0"), MustOp(op.True(), nil)))))
	g := ToGraph(n)
	names := make([]string, len(g.Nodes))
	for i, gn := range g.Nodes {
		names[i] = gn.Name
		if gn.ID != i {
			t.Errorf("node %d has id %d", i, gn.ID)
		}
	}
	if diff := cmp.Diff([]string{"not", "and", "v0", "True"}, names); diff != "" {
		t.Fatalf("nodes (-want +got):\n%s", diff)
	}
	if g.Nodes[0].Color != "#FF605C" {
		t.Errorf("not color %s", g.Nodes[0].Color)
	}
	if g.Nodes[3].Color != "#7cb24a" || g.Nodes[3].Label != "1" {
		t.Errorf("constant must inherit from and: %+v", g.Nodes[3])
	}
	checkTreeShaped(t, g)
	if op.And().Color() != "#7cb24a" {
		t.Errorf("operator color changed by graph traversal")
	}
}

func TestToGraphDefaultColor(t *testing.T) {
	g := ToGraph(MustOp(op.Start(), vars2, lit("v0")))
	if len(g.Nodes) != 1 || g.Nodes[0].Color != defaultGraphColor {
		t.Fatalf("got %+v", g.Nodes)
	}
	if len(g.Edges) != 0 {
		t.Errorf("root must have no edges: %+v", g.Edges)
	}
}

func checkTreeShaped(t *testing.T, g Graph) {
	t.Helper()
	incoming := map[int]int{}
	for _, e := range g.Edges {
		incoming[e.To]++
	}
	for _, n := range g.Nodes {
		want := 1
		if n.ID == 0 {
			want = 0
		}
		if incoming[n.ID] != want {
			t.Errorf("node %d has %d incoming edges, want %d", n.ID, incoming[n.ID], want)
		}
	}
}
