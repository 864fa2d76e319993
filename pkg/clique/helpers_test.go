package clique

import (
	"testing"

	"github.com/matzehuels/cliquer/pkg/graph"
)

func mustParse(t *testing.T, s string) *graph.Graph {
	t.Helper()
	edges, err := graph.ParseString(s)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	return graph.Build(edges)
}

func mustLoad(t *testing.T, path string) *graph.Graph {
	t.Helper()
	g, err := graph.Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	return g
}

// bruteTriangles scans every ordered triple of distinct nodes, the reference
// the neighbor-driven enumeration must agree with.
func bruteTriangles(g *graph.Graph, prefix string) map[string]struct{} {
	nodes := g.Nodes()
	out := make(map[string]struct{})
	for i, a := range nodes {
		for j, b := range nodes {
			for k, c := range nodes {
				if i == j || j == k || i == k {
					continue
				}
				if g.Adjacent(a, b) && g.Adjacent(b, c) && g.Adjacent(c, a) && anyHasPrefix(prefix, a, b, c) {
					out[TriangleKey(a, b, c)] = struct{}{}
				}
			}
		}
	}
	return out
}

// bruteMaxCliqueSize checks every subset; only usable for small graphs.
func bruteMaxCliqueSize(g *graph.Graph) int {
	nodes := g.Nodes()
	bestSize := 0
	for mask := 1; mask < 1<<len(nodes); mask++ {
		var c Clique
		for i, n := range nodes {
			if mask&(1<<i) != 0 {
				c = append(c, n)
			}
		}
		if len(c) > bestSize && Validate(g, c) == nil {
			bestSize = len(c)
		}
	}
	return bestSize
}
