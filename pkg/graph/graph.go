package graph

import (
	"bytes"
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"maps"
	"slices"
)

// Edge is one undirected connection as read from the input.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is an immutable undirected graph with set-valued adjacency.
//
// The zero value is an empty graph; use [Build] to create a populated one.
type Graph struct {
	order []string                       // first-encounter order
	adj   map[string]map[string]struct{} // node -> neighbor set
	edges int                            // distinct undirected edges
}

// Build constructs a Graph from an edge list.
//
// For each edge (u, v), v is inserted into u's neighbor set and u into v's.
// Repeated edges, in either direction, are absorbed by the sets. A self-loop
// records its node but adds no adjacency.
func Build(edges []Edge) *Graph {
	g := &Graph{adj: make(map[string]map[string]struct{})}
	for _, e := range edges {
		g.addNode(e.From)
		g.addNode(e.To)
		if e.From == e.To {
			continue
		}
		if _, dup := g.adj[e.From][e.To]; dup {
			continue
		}
		g.adj[e.From][e.To] = struct{}{}
		g.adj[e.To][e.From] = struct{}{}
		g.edges++
	}
	return g
}

func (g *Graph) addNode(id string) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = make(map[string]struct{})
	g.order = append(g.order, id)
}

// Nodes returns every distinct node in first-encounter order.
// The returned slice is a copy and may be modified by the caller.
func (g *Graph) Nodes() []string {
	return slices.Clone(g.order)
}

// Has reports whether id appeared in the edge list.
func (g *Graph) Has(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Neighbors returns the neighbors of id sorted lexicographically.
// An unknown node has no neighbors.
func (g *Graph) Neighbors(id string) []string {
	return slices.Sorted(maps.Keys(g.adj[id]))
}

// Adjacent reports whether u and v share an edge.
func (g *Graph) Adjacent(u, v string) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id string) int {
	return len(g.adj[id])
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Edges returns every distinct undirected edge once, with From < To,
// sorted by (From, To).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, nbrs := range g.adj {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	slices.SortFunc(out, compareEdges)
	return out
}

// Canonical returns an order-independent text form of the graph: sorted
// nodes followed by sorted edges. Two graphs built from permutations of the
// same edge list have identical canonical forms.
func (g *Graph) Canonical() []byte {
	var buf bytes.Buffer
	for _, n := range slices.Sorted(maps.Keys(g.adj)) {
		buf.WriteString(n)
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	for _, e := range g.Edges() {
		buf.WriteString(e.From)
		buf.WriteByte('-')
		buf.WriteString(e.To)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func compareEdges(a, b Edge) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}
	return cmp.Compare(a.To, b.To)
}

// Hash returns the hex SHA-256 of [Graph.Canonical]. Graphs with the same
// nodes and edges hash equally regardless of input line order.
func (g *Graph) Hash() string {
	sum := sha256.Sum256(g.Canonical())
	return hex.EncodeToString(sum[:])
}
