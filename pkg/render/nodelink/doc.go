// Package nodelink renders undirected graphs as node-link diagrams.
//
// # Overview
//
// Nodes appear as ellipses joined by plain lines. A set of nodes, typically
// the maximum clique, can be highlighted: highlighted nodes are filled and
// every edge between two highlighted nodes is drawn thick, so the clique
// stands out as a fully connected patch.
//
// # Usage
//
// Convert a graph to DOT format, then render:
//
//	c := clique.MaxClique(g)
//	dot := nodelink.ToDOT(g, nodelink.Options{Highlight: c})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// [Render] dispatches on a format name and also accepts "dot", which returns
// the DOT source unchanged.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering;
// no Graphviz installation is required.
package nodelink
