package clique

import (
	"slices"

	"github.com/matzehuels/cliquer/pkg/graph"
)

// best accumulates the largest clique seen so far. It only ever grows.
type best struct {
	clique Clique
}

// offer records r if it is strictly larger than the current best.
func (b *best) offer(r Clique) {
	if len(r) > len(b.clique) {
		b.clique = slices.Clone(r)
	}
}

// MaxClique returns a maximum clique of g using Bron–Kerbosch without
// pivoting. Ties between equal-size cliques go to the one reached first in
// node order. An empty graph yields an empty clique.
func MaxClique(g *graph.Graph) Clique {
	b := &best{clique: Clique{}}
	expand(g, nil, g.Nodes(), nil, func(r Clique) bool {
		b.offer(r)
		return true
	})
	return b.clique
}

// MaximalCliques calls visit once for every maximal clique of g, in search
// order. The slice passed to visit is owned by the caller of visit. Returning
// false from visit stops the search.
func MaximalCliques(g *graph.Graph, visit func(Clique) bool) {
	expand(g, nil, g.Nodes(), nil, func(r Clique) bool {
		return visit(slices.Clone(r))
	})
}

// expand is one Bron–Kerbosch call over (r, p, x). It reports false when
// report asked to stop.
//
// p and x are owned by this call and are modified in place; r is shared with
// the caller and never appended to without a copy.
func expand(g *graph.Graph, r, p, x []string, report func(Clique) bool) bool {
	if len(p) == 0 && len(x) == 0 {
		return report(r)
	}

	snapshot := slices.Clone(p)
	for _, v := range snapshot {
		next := append(slices.Clip(r), v)
		if !expand(g, next, restrict(g, p, v), restrict(g, x, v), report) {
			return false
		}
		p = slices.DeleteFunc(p, func(n string) bool { return n == v })
		x = append(x, v)
	}
	return true
}

// restrict returns the members of set adjacent to v, as a new slice.
func restrict(g *graph.Graph, set []string, v string) []string {
	out := make([]string, 0, len(set))
	for _, n := range set {
		if g.Adjacent(v, n) {
			out = append(out, n)
		}
	}
	return out
}
