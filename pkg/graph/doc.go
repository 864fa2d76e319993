// Package graph provides the undirected graph store that the clique analyses
// run against.
//
// A [Graph] is built once from an edge list and is read-only afterwards. Every
// node maps to a set of neighbors; the adjacency relation is symmetric by
// construction, so Adjacent(u, v) == Adjacent(v, u) for every pair.
//
// # Input Format
//
// Edge lists are plain text, one undirected edge per line, the two node
// identifiers separated by a single hyphen:
//
//	kh-tc
//	qp-kh
//	de-cg
//
// Blank lines are tolerated. Any other line that does not split into exactly
// two non-empty identifiers is an input-format error and aborts the read; no
// partial graph is returned.
//
// Common operations:
//
//	edges, err := graph.ReadFile("input.txt")  // File → []Edge
//	edges, err := graph.Parse(os.Stdin)        // Reader → []Edge
//	g := graph.Build(edges)                    // []Edge → *Graph
//
// # Node Order
//
// [Graph.Nodes] returns identifiers in the order they were first encountered
// in the edge list. The order carries no meaning, but it is deterministic, so
// searches that iterate it produce reproducible results across runs.
//
// # Concurrency
//
// A built Graph is never mutated, so it is safe for concurrent readers without
// synchronization.
package graph
