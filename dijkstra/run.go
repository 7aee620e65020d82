package dijkstra

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/dmath/pqueue"
)

// Solve computes shortest paths from source into a fresh Result without
// touching the Engine's last run. The Engine's graph is read-only here, so
// Solve may be called from many goroutines concurrently.
//
// Errors:
//   - ErrUnknownNode if source is not in the edge map.
//   - ErrInternal if the priority queue reports a broken invariant.
//
// Complexity: O((V + E) log V) time, O(V) space.
func (e *Engine[N, W]) Solve(source N) (*Result[N, W], error) {
	src, err := e.lookup(source)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	r := &runner[N, W]{e: e}
	if err = r.init(src); err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	e.opts.Logger.Debug("dijkstra run",
		zap.Any("source", source),
		zap.Int("nodes", len(e.nodes)),
		zap.Int("reached", r.res.stats.Reached),
		zap.Int("relaxations", r.res.stats.Relaxations),
		zap.Duration("elapsed", time.Since(start)),
	)

	return r.res, nil
}

// runner holds the mutable state of a single run.
type runner[N comparable, W Weight] struct {
	e       *Engine[N, W]
	res     *Result[N, W]
	pq      *pqueue.Queue[W]
	queued  []bool // index has been pushed at least once
	settled []bool // index has been popped; its distance is final
}

// init resets distances and predecessors, then queues the source with
// distance zero. The queue scores indices by reading r.res.dist at call time,
// so it always sees the current estimate.
func (r *runner[N, W]) init(src int) error {
	n := len(r.e.nodes)
	res := &Result[N, W]{
		e:       r.e,
		source:  src,
		dist:    make([]W, n),
		pred:    make([]int, n),
		reached: make([]bool, n),
	}
	for i := range res.dist {
		res.dist[i] = r.e.inf
		res.pred[i] = noPred
	}
	res.dist[src] = 0
	res.reached[src] = true
	res.stats.Reached = 1
	r.res = res

	pq, err := pqueue.New(n, func(i int) W { return res.dist[i] })
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	r.pq = pq
	r.queued = make([]bool, n)
	r.settled = make([]bool, n)

	if err = r.pq.Push(src); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	r.queued[src] = true

	return nil
}

// process pops the closest frontier index until the queue is empty.
func (r *runner[N, W]) process() error {
	for !r.pq.Empty() {
		u, err := r.pq.Top()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if err = r.pq.Pop(); err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		// Discovered but never improved (MaxDistance, overflow or an infinite
		// edge cut it off).
		if !r.res.reached[u] {
			continue
		}

		r.settled[u] = true
		r.res.stats.Settled++
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every edge leaving u. Newly seen destinations are queued with
// their current (possibly infinite) distance; any strict improvement updates
// dist / pred and reweights the destination.
func (r *runner[N, W]) relax(u int) error {
	opts := &r.e.opts
	du := r.res.dist[u]

	for _, a := range r.e.adj[u] {
		v := a.to
		if opts.limitEdges && a.w >= opts.InfEdgeThreshold {
			continue
		}

		if !r.queued[v] {
			if err := r.pq.Push(v); err != nil {
				return fmt.Errorf("%w: %v", ErrInternal, err)
			}
			r.queued[v] = true
		}
		if r.settled[v] {
			continue
		}

		// Reached distances stay strictly below the infinity sentinel; a sum
		// that wraps or lands on it is not an improvement.
		alt := du + a.w
		if alt < du || alt == r.e.inf {
			continue
		}
		if opts.limitDistance && alt > opts.MaxDistance {
			continue
		}
		r.res.stats.Relaxations++
		if r.res.reached[v] && alt >= r.res.dist[v] {
			continue
		}

		if !r.res.reached[v] {
			r.res.reached[v] = true
			r.res.stats.Reached++
		}
		r.res.dist[v] = alt
		r.res.pred[v] = u
		if !r.pq.Contains(v) {
			if err := r.pq.Push(v); err != nil {
				return fmt.Errorf("%w: %v", ErrInternal, err)
			}
			continue
		}
		if err := r.pq.Reweight(v); err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	return nil
}
