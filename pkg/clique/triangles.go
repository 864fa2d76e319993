package clique

import (
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/cliquer/pkg/graph"
)

// DefaultPrefix is the node prefix that qualifies a triangle by default.
const DefaultPrefix = "t"

// TriangleSeparator joins the members of a canonical triangle key.
const TriangleSeparator = "-"

// TriangleKey returns the canonical key for the triangle {a, b, c}: the three
// identifiers sorted lexicographically and joined by "-". All six orderings of
// the same nodes yield the same key.
func TriangleKey(a, b, c string) string {
	k := []string{a, b, c}
	slices.Sort(k)
	return strings.Join(k, TriangleSeparator)
}

// TrianglesWithPrefix returns the sorted canonical keys of every triangle in g
// that has at least one member starting with prefix. An empty prefix matches
// every node.
//
// The result is the same set a scan over all ordered triples of distinct
// nodes would produce, but candidates are drawn from neighbor sets: for each
// node a and neighbor b, only neighbors c of b are tested for c–a adjacency.
func TrianglesWithPrefix(g *graph.Graph, prefix string) []string {
	seen := make(map[string]struct{})
	for _, a := range g.Nodes() {
		for _, b := range g.Neighbors(a) {
			for _, c := range g.Neighbors(b) {
				if c == a || !g.Adjacent(c, a) {
					continue
				}
				if !anyHasPrefix(prefix, a, b, c) {
					continue
				}
				seen[TriangleKey(a, b, c)] = struct{}{}
			}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// CountTrianglesWithPrefix returns len(TrianglesWithPrefix(g, prefix)).
func CountTrianglesWithPrefix(g *graph.Graph, prefix string) int {
	return len(TrianglesWithPrefix(g, prefix))
}

func anyHasPrefix(prefix string, nodes ...string) bool {
	for _, n := range nodes {
		if strings.HasPrefix(n, prefix) {
			return true
		}
	}
	return false
}
