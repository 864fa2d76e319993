package clique

import (
	"context"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/cliquer/pkg/graph"
)

// sharedBest is the best-clique accumulator shared by parallel branches.
// Larger cliques win; equal sizes go to the lower branch index, which makes
// the result identical to the sequential search.
type sharedBest struct {
	mu     sync.Mutex
	clique Clique
	branch int
}

func (s *sharedBest) merge(c Clique, branch int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(c) > len(s.clique) || (len(c) == len(s.clique) && branch < s.branch) {
		s.clique = slices.Clone(c)
		s.branch = branch
	}
}

func (s *sharedBest) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clique)
}

// MaxCliqueParallel is [MaxClique] with the first recursion level spread over
// up to workers goroutines (GOMAXPROCS when workers <= 0).
//
// Branch i commits nodes[i] and starts from the same (R, P, X) the sequential
// loop would hold at iteration i, so every branch is independent and the
// returned clique matches MaxClique exactly. Branches whose node degree rules
// out beating the current best are skipped.
//
// The search stops early with ctx.Err() when ctx is cancelled.
func MaxCliqueParallel(ctx context.Context, g *graph.Graph, workers int) (Clique, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	nodes := g.Nodes()
	shared := &sharedBest{clique: Clique{}, branch: len(nodes)}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, v := range nodes {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if g.Degree(v)+1 < shared.size() {
				return nil
			}
			local := &best{clique: Clique{}}
			var err error
			expand(g, Clique{v}, restrict(g, nodes[i+1:], v), restrict(g, nodes[:i], v), func(r Clique) bool {
				if err = egCtx.Err(); err != nil {
					return false
				}
				local.offer(r)
				return true
			})
			if err != nil {
				return err
			}
			shared.merge(local.clique, i)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return shared.clique, nil
}
