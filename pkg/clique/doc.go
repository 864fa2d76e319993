// Package clique finds triangles and maximum cliques in an undirected
// [graph.Graph].
//
// # Triangles
//
// [TrianglesWithPrefix] returns every 3-clique that has at least one member
// whose identifier starts with a given prefix. Each triangle is reported once,
// as a canonical key: its three node identifiers sorted lexicographically and
// joined with "-" (see [TriangleKey]). The six orderings of the same triangle
// collapse to one key.
//
//	keys := clique.TrianglesWithPrefix(g, "t")
//	fmt.Println(len(keys))
//
// # Maximum Clique
//
// [MaxClique] runs an exact Bron–Kerbosch search without pivoting and returns
// one clique of maximum size. When several maximum cliques exist, which one is
// returned depends on the node order of the graph; only its size is
// guaranteed. [Clique.Password] renders the members sorted and comma-joined:
//
//	c := clique.MaxClique(g)
//	fmt.Println(c.Password()) // co,de,ka,ta
//
// The search state is the classical (R, P, X) triple: R holds the nodes
// committed to the current clique, P the candidates that can still extend it,
// X the nodes already explored by an earlier sibling branch. A branch reports R
// only when both P and X are empty, i.e. when R is maximal.
//
// [MaximalCliques] exposes the same recursion as a visitor over every maximal
// clique, and [MaxCliqueParallel] fans the first recursion level out over a
// bounded worker pool.
//
// # Complexity
//
// The search is exponential in the worst case. It is intended for sparse to
// moderately dense graphs with up to a few thousand nodes, where the recursion
// depth is bounded by the size of the largest clique.
package clique
