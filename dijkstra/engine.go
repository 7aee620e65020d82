package dijkstra

import (
	"cmp"
	"fmt"
	"slices"
)

// noPred marks an index without predecessor (the source, or unreached).
const noPred = -1

// arc is an outgoing edge in index space.
type arc[W Weight] struct {
	to int
	w  W
}

// Engine holds an immutable graph in dense-index form and the result of the
// most recent Run.
type Engine[N comparable, W Weight] struct {
	nodes []N        // index → identifier, in sort order
	index map[N]int  // identifier → index
	adj   [][]arc[W] // adjacency by index, sorted by destination
	edges int        // number of directed edges
	opts  Options[W] // immutable after construction
	inf   W          // cached Infinity[W]()
	last  *Result[N, W]
}

// New builds an Engine over ordered node identifiers. Dense indices follow the
// natural order of N.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - ErrBadWeight / ErrNegativeWeight from the weight pre-scan.
//
// Complexity: O(E log E).
func New[N cmp.Ordered, W Weight](edges EdgeWeights[N, W], opts ...Option[W]) (*Engine[N, W], error) {
	return NewFunc(edges, cmp.Compare[N], opts...)
}

// NewFunc builds an Engine over any comparable node type. compare must be a
// strict three-way ordering (negative, zero, positive) consistent with ==; it
// only decides the dense index order.
func NewFunc[N comparable, W Weight](
	edges EdgeWeights[N, W],
	compare func(a, b N) int,
	opts ...Option[W],
) (*Engine[N, W], error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if compare == nil {
		return nil, ErrNilCompare
	}

	// 2) Pre-scan weights. Dijkstra is only correct for non-negative weights.
	for e, w := range edges {
		if isNaN(w) {
			return nil, fmt.Errorf("%w: edge %v→%v", ErrBadWeight, e.From, e.To)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, w)
		}
	}

	// 3) Collect distinct endpoints and assign dense indices in sort order.
	seen := make(map[N]struct{}, len(edges))
	for e := range edges {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}
	nodes := make([]N, 0, len(seen))
	for n := range seen {
		nodes = append(nodes, n)
	}
	slices.SortFunc(nodes, compare)

	index := make(map[N]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}

	// 4) Translate edges into adjacency lists. Sorting by destination makes
	//    tie-breaks independent of map iteration order.
	adj := make([][]arc[W], len(nodes))
	for e, w := range edges {
		u := index[e.From]
		adj[u] = append(adj[u], arc[W]{to: index[e.To], w: w})
	}
	for u := range adj {
		slices.SortFunc(adj[u], func(a, b arc[W]) int { return cmp.Compare(a.to, b.to) })
	}

	return &Engine[N, W]{
		nodes: nodes,
		index: index,
		adj:   adj,
		edges: len(edges),
		opts:  cfg,
		inf:   Infinity[W](),
	}, nil
}

// Run computes shortest paths from source and keeps the result for later
// DistanceTo / PathTo queries, replacing the previous run entirely.
// A failed Run leaves the previous result in place.
//
// Run is not safe for concurrent use on one Engine; use Solve for that.
func (e *Engine[N, W]) Run(source N) error {
	res, err := e.Solve(source)
	if err != nil {
		return err
	}
	e.last = res

	return nil
}

// DistanceTo returns the distance from the last run's source to target, or
// Infinity[W]() if target is unreachable.
func (e *Engine[N, W]) DistanceTo(target N) (W, error) {
	res, err := e.lastFor(target)
	if err != nil {
		var zero W
		return zero, err
	}

	return res.DistanceTo(target)
}

// PathTo returns the nodes of a shortest path from the last run's source to
// target, both ends included.
func (e *Engine[N, W]) PathTo(target N) ([]N, error) {
	res, err := e.lastFor(target)
	if err != nil {
		return nil, err
	}

	return res.PathTo(target)
}

// Reachable reports whether target was reached by the last run.
func (e *Engine[N, W]) Reachable(target N) (bool, error) {
	res, err := e.lastFor(target)
	if err != nil {
		return false, err
	}

	return res.Reachable(target)
}

// Distances returns the distances of every node reached by the last run, or
// nil if no run has been performed.
func (e *Engine[N, W]) Distances() map[N]W {
	if e.last == nil {
		return nil
	}

	return e.last.Distances()
}

// Predecessors returns, for every reached node other than the source, its
// predecessor on the shortest path found by the last run.
func (e *Engine[N, W]) Predecessors() map[N]N {
	if e.last == nil {
		return nil
	}

	return e.last.Predecessors()
}

// Last returns the result of the most recent successful Run.
func (e *Engine[N, W]) Last() (*Result[N, W], bool) {
	return e.last, e.last != nil
}

// Source returns the source of the most recent successful Run.
func (e *Engine[N, W]) Source() (N, bool) {
	if e.last == nil {
		var zero N
		return zero, false
	}

	return e.last.Source(), true
}

// Has reports whether n appears in the edge map.
func (e *Engine[N, W]) Has(n N) bool {
	_, ok := e.index[n]
	return ok
}

// Nodes returns a copy of the node identifiers in dense index order.
func (e *Engine[N, W]) Nodes() []N { return slices.Clone(e.nodes) }

// NodeCount returns the number of distinct nodes.
func (e *Engine[N, W]) NodeCount() int { return len(e.nodes) }

// EdgeCount returns the number of directed edges.
func (e *Engine[N, W]) EdgeCount() int { return e.edges }

// lookup translates an identifier to its dense index.
func (e *Engine[N, W]) lookup(n N) (int, error) {
	i, ok := e.index[n]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownNode, n)
	}

	return i, nil
}

// lastFor validates target before checking that a run exists, so unknown
// identifiers always report ErrUnknownNode.
func (e *Engine[N, W]) lastFor(target N) (*Result[N, W], error) {
	if _, err := e.lookup(target); err != nil {
		return nil, err
	}
	if e.last == nil {
		return nil, ErrNotRun
	}

	return e.last, nil
}
