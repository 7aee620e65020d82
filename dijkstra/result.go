package dijkstra

import (
	"fmt"
	"slices"
)

// Stats summarises the work done by one run.
type Stats struct {
	Reached     int // nodes with a finite distance, source included
	Settled     int // nodes popped from the queue
	Relaxations int // edge relaxations attempted
}

// Result holds the distances and predecessors of one run. It shares the
// Engine's immutable graph and is safe for concurrent reads.
type Result[N comparable, W Weight] struct {
	e       *Engine[N, W]
	source  int
	dist    []W
	pred    []int
	reached []bool
	stats   Stats
}

// Source returns the node the run started from.
func (r *Result[N, W]) Source() N { return r.e.nodes[r.source] }

// Stats returns counters collected during the run.
func (r *Result[N, W]) Stats() Stats { return r.stats }

// DistanceTo returns the shortest distance from the source to target, or
// Infinity[W]() when target is unreachable. Unreachability is not an error
// here; only unknown identifiers are.
func (r *Result[N, W]) DistanceTo(target N) (W, error) {
	t, err := r.e.lookup(target)
	if err != nil {
		var zero W
		return zero, err
	}
	if !r.reached[t] {
		return r.e.inf, nil
	}

	return r.dist[t], nil
}

// Reachable reports whether target has a finite distance from the source.
func (r *Result[N, W]) Reachable(target N) (bool, error) {
	t, err := r.e.lookup(target)
	if err != nil {
		return false, err
	}

	return r.reached[t], nil
}

// PathTo reconstructs a shortest path from the source to target by walking
// predecessors backwards. Both ends are included; PathTo(source) is [source].
//
// Errors:
//   - ErrUnknownNode if target is not in the edge map.
//   - ErrUnreachable if target is not connected to the source.
//
// Complexity: O(path length).
func (r *Result[N, W]) PathTo(target N) ([]N, error) {
	cur, err := r.e.lookup(target)
	if err != nil {
		return nil, err
	}

	path := []N{target}
	for cur != r.source {
		next := r.pred[cur]
		if next == noPred {
			return nil, fmt.Errorf("%w: %v → %v", ErrUnreachable, r.Source(), target)
		}
		path = append(path, r.e.nodes[next])
		cur = next
	}
	slices.Reverse(path)

	return path, nil
}

// Distances returns the distance of every reached node, source included.
func (r *Result[N, W]) Distances() map[N]W {
	out := make(map[N]W, r.stats.Reached)
	for i, ok := range r.reached {
		if ok {
			out[r.e.nodes[i]] = r.dist[i]
		}
	}

	return out
}

// Predecessors returns the predecessor of every reached node except the source.
func (r *Result[N, W]) Predecessors() map[N]N {
	out := make(map[N]N, r.stats.Reached)
	for i, p := range r.pred {
		if p != noPred {
			out[r.e.nodes[i]] = r.e.nodes[p]
		}
	}

	return out
}
