package graph

import (
	"slices"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		edges     []Edge
		wantNodes []string
		wantEdges int
	}{
		{
			name:      "Empty",
			edges:     nil,
			wantNodes: nil,
			wantEdges: 0,
		},
		{
			name:      "Triangle",
			edges:     []Edge{{"a", "b"}, {"b", "c"}, {"c", "a"}},
			wantNodes: []string{"a", "b", "c"},
			wantEdges: 3,
		},
		{
			name:      "FirstEncounterOrder",
			edges:     []Edge{{"kh", "tc"}, {"qp", "kh"}, {"de", "cg"}},
			wantNodes: []string{"kh", "tc", "qp", "de", "cg"},
			wantEdges: 3,
		},
		{
			name:      "DuplicatesAbsorbed",
			edges:     []Edge{{"a", "b"}, {"a", "b"}, {"b", "a"}},
			wantNodes: []string{"a", "b"},
			wantEdges: 1,
		},
		{
			name:      "SelfLoopRecordsNodeOnly",
			edges:     []Edge{{"a", "a"}, {"a", "b"}},
			wantNodes: []string{"a", "b"},
			wantEdges: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(tt.edges)
			if got := g.Nodes(); !slices.Equal(got, tt.wantNodes) {
				t.Errorf("Nodes() = %v, want %v", got, tt.wantNodes)
			}
			if got := g.NodeCount(); got != len(tt.wantNodes) {
				t.Errorf("NodeCount() = %d, want %d", got, len(tt.wantNodes))
			}
			if got := g.EdgeCount(); got != tt.wantEdges {
				t.Errorf("EdgeCount() = %d, want %d", got, tt.wantEdges)
			}
		})
	}
}

func TestAdjacency(t *testing.T) {
	g := Build([]Edge{{"a", "b"}, {"b", "c"}, {"a", "a"}})

	tests := []struct {
		u, v string
		want bool
	}{
		{"a", "b", true},
		{"b", "a", true},
		{"b", "c", true},
		{"c", "b", true},
		{"a", "c", false},
		{"a", "a", false},
		{"a", "missing", false},
		{"missing", "a", false},
	}

	for _, tt := range tests {
		if got := g.Adjacent(tt.u, tt.v); got != tt.want {
			t.Errorf("Adjacent(%q, %q) = %v, want %v", tt.u, tt.v, got, tt.want)
		}
	}

	if got := g.Neighbors("b"); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("Neighbors(b) = %v, want [a c]", got)
	}
	if got := g.Neighbors("missing"); len(got) != 0 {
		t.Errorf("Neighbors(missing) = %v, want empty", got)
	}
	if got := g.Degree("b"); got != 2 {
		t.Errorf("Degree(b) = %d, want 2", got)
	}
	if !g.Has("a") || g.Has("missing") {
		t.Error("Has() reports wrong membership")
	}
}

func TestNodesReturnsCopy(t *testing.T) {
	g := Build([]Edge{{"a", "b"}})
	nodes := g.Nodes()
	nodes[0] = "mutated"

	if got := g.Nodes()[0]; got != "a" {
		t.Errorf("Nodes()[0] = %q after caller mutation, want %q", got, "a")
	}
}

func TestEdgesSortedAndNormalized(t *testing.T) {
	g := Build([]Edge{{"c", "a"}, {"b", "a"}, {"a", "b"}, {"c", "b"}})

	want := []Edge{{"a", "b"}, {"a", "c"}, {"b", "c"}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

func TestCanonicalOrderIndependent(t *testing.T) {
	g1 := Build([]Edge{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	g2 := Build([]Edge{{"a", "c"}, {"c", "b"}, {"b", "a"}, {"a", "b"}})

	if string(g1.Canonical()) != string(g2.Canonical()) {
		t.Errorf("Canonical() differs:\n%s\nvs\n%s", g1.Canonical(), g2.Canonical())
	}

	g3 := Build([]Edge{{"a", "b"}, {"b", "c"}})
	if string(g1.Canonical()) == string(g3.Canonical()) {
		t.Error("Canonical() should differ for different graphs")
	}
	if g1.Hash() != g2.Hash() {
		t.Error("Hash() should match for permuted edge lists")
	}
	if len(g1.Hash()) != 64 {
		t.Errorf("len(Hash()) = %d, want 64", len(g1.Hash()))
	}
}

func TestZeroValueGraph(t *testing.T) {
	var g Graph
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Error("zero Graph should be empty")
	}
	if g.Adjacent("a", "b") {
		t.Error("zero Graph should have no adjacency")
	}
	if len(g.Neighbors("a")) != 0 {
		t.Error("zero Graph should have no neighbors")
	}
}
