package clique

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/cliquer/pkg/graph"
)

// PasswordSeparator joins clique members in [Clique.Password].
const PasswordSeparator = ","

// Clique is a set of pairwise adjacent nodes. Member order is the order in
// which the search committed them and carries no meaning.
type Clique []string

// Len returns the number of members.
func (c Clique) Len() int { return len(c) }

// Sorted returns a lexicographically sorted copy.
func (c Clique) Sorted() Clique {
	out := slices.Clone(c)
	slices.Sort(out)
	return out
}

// Password returns the members sorted lexicographically and joined by
// commas. The result is independent of discovery order.
func (c Clique) Password() string {
	return strings.Join(c.Sorted(), PasswordSeparator)
}

// Validate checks that every pair of distinct members is adjacent in g.
func Validate(g *graph.Graph, c Clique) error {
	for i, u := range c {
		if !g.Has(u) {
			return fmt.Errorf("node %q is not in the graph", u)
		}
		for _, v := range c[i+1:] {
			if u == v {
				return fmt.Errorf("node %q appears twice", u)
			}
			if !g.Adjacent(u, v) {
				return fmt.Errorf("%s and %s are not adjacent", u, v)
			}
		}
	}
	return nil
}

// IsMaximal reports whether no node outside c is adjacent to every member
// of c. It does not check that c is a clique; see [Validate].
func IsMaximal(g *graph.Graph, c Clique) bool {
	members := make(map[string]struct{}, len(c))
	for _, n := range c {
		members[n] = struct{}{}
	}
	for _, n := range g.Nodes() {
		if _, in := members[n]; in {
			continue
		}
		if extends(g, c, n) {
			return false
		}
	}
	return true
}

func extends(g *graph.Graph, c Clique, n string) bool {
	for _, m := range c {
		if !g.Adjacent(n, m) {
			return false
		}
	}
	return true
}
