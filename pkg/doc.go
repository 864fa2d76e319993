// Package pkg provides the core libraries for cliquer.
//
// # Overview
//
// cliquer analyzes undirected graphs given as edge lists, one "<node>-<node>"
// pair per line. The pkg directory is organized as:
//
//  1. [graph] - Edge list parsing and the immutable adjacency store
//  2. [clique] - Prefixed triangle enumeration and maximum clique search
//  3. [analysis] - Cached, instrumented analysis runs shared by CLI and API
//  4. [cache] - Result caches (null, file, Redis)
//  5. [render/nodelink] - Graphviz node-link diagrams
//  6. [observability], [metrics] - Event hooks and their Prometheus backend
//  7. [errors] - Structured error codes
//
// # Architecture
//
// The typical data flow:
//
//	edge list text
//	     ↓
//	[graph] Parse + Build
//	     ↓
//	[clique] TrianglesWithPrefix | MaxClique
//	     ↓
//	[analysis] Result (count or password)
//
// # Quick Start
//
//	edges, _ := graph.ReadFile("input.txt")
//	g := graph.Build(edges)
//
//	n := clique.CountTrianglesWithPrefix(g, "t")
//	password := clique.MaxClique(g).Password()
package pkg
