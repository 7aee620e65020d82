// Package dijkstra provides a generic single-source shortest-path Engine for
// static directed graphs with non-negative edge weights.
//
// Overview:
//
//   - The graph is given once, as an EdgeWeights map from directed node pairs to
//     weights. Node identifiers can be any comparable type: New takes ordered
//     identifiers (ints, strings), NewFunc takes any comparable type plus a
//     three-way compare function (coordinate structs, composite keys).
//   - At construction the Engine assigns every distinct endpoint a dense index in
//     [0, V), in identifier sort order, and builds index-based adjacency lists.
//     The hot loop never touches the caller's identifier type.
//   - Run(source) computes distances and predecessors from source to every
//     reachable node; DistanceTo / PathTo answer queries against the last run.
//   - Frontier management uses pqueue.Queue, an indexed min-heap scored by the
//     live distance slice, with decrease-key via Reweight.
//
// Graph model and limitations:
//
//   - Only nodes touched by at least one edge exist. An isolated node cannot be
//     registered without a self-loop or dummy edge.
//   - Negative weights are rejected at construction (ErrNegativeWeight) by a
//     single O(E) pre-scan; NaN weights are rejected with ErrBadWeight.
//   - The graph is immutable after construction.
//
// Options (functional, generic over the weight type):
//
//   - WithMaxDistance(d): nodes farther than d stay unreached.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable.
//   - WithLogger(l): one zap debug entry per run (source, reached, relaxations).
//
// Unreachable nodes:
//
//   - DistanceTo reports Infinity[W]() (+Inf for floats, the type's max value
//     for integers) with a nil error. Reachable gives the explicit answer.
//   - PathTo fails with ErrUnreachable. PathTo(source) is always [source].
//   - Reached distances are strictly below Infinity[W](). A path whose total
//     overflows or equals it (a +Inf edge, an exact max-int sum) does not
//     reach its destination.
//
// Complexity:
//
//   - Construction: O(E log E) (sorting endpoints and adjacency lists).
//   - Run: O((V + E) log V). Every index is pushed at most once and every
//     improvement costs one O(log V) Reweight.
//   - Space: O(V + E).
//
// Concurrency:
//
//   - Run stores its result in the Engine and is not safe for concurrent use.
//   - Solve returns an independent Result and may be called from many
//     goroutines at once; SolveAll does exactly that over an errgroup.
//
// Example:
//
//	e, err := dijkstra.New(dijkstra.EdgeWeights[string, int]{
//	    {From: "A", To: "B"}: 1,
//	    {From: "B", To: "C"}: 2,
//	    {From: "A", To: "C"}: 5,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = e.Run("A")
//	d, _ := e.DistanceTo("C")  // 3
//	p, _ := e.PathTo("C")      // [A B C]
package dijkstra
