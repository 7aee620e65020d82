package dijkstra

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SolveAll runs Solve for every source, at most workers at a time (workers ≤ 0
// means no limit). The first failure cancels the remaining sources and is
// returned. Cancellation of ctx is checked before each source starts; a
// single run is never interrupted.
//
// Duplicate sources are solved once per occurrence and collapse in the map.
func (e *Engine[N, W]) SolveAll(ctx context.Context, sources []N, workers int) (map[N]*Result[N, W], error) {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	results := make([]*Result[N, W], len(sources))
	for i, s := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.Solve(s)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[N]*Result[N, W], len(sources))
	for i, s := range sources {
		out[s] = results[i]
	}

	return out, nil
}
