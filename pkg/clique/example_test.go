package clique_test

import (
	"fmt"

	"github.com/matzehuels/cliquer/pkg/clique"
	"github.com/matzehuels/cliquer/pkg/graph"
)

const lan = `kh-tc
qp-kh
de-cg
ka-co
yn-aq
qp-ub
cg-tb
vc-aq
tb-ka
wh-tc
yn-cg
kh-ub
ta-co
de-co
tc-td
tb-wq
wh-td
ta-ka
td-qp
aq-cg
wq-ub
ub-vc
de-ta
wq-aq
wq-vc
wh-yn
ka-de
kh-ta
co-tc
wh-qp
tb-vc
td-yn
`

func ExampleTrianglesWithPrefix() {
	edges, _ := graph.ParseString(lan)
	g := graph.Build(edges)

	for _, key := range clique.TrianglesWithPrefix(g, "t") {
		fmt.Println(key)
	}
	// Output:
	// co-de-ta
	// co-ka-ta
	// de-ka-ta
	// qp-td-wh
	// tb-vc-wq
	// tc-td-wh
	// td-wh-yn
}

func ExampleMaxClique() {
	edges, _ := graph.ParseString(lan)
	g := graph.Build(edges)

	c := clique.MaxClique(g)
	fmt.Println(c.Len(), c.Password())
	// Output:
	// 4 co,de,ka,ta
}
