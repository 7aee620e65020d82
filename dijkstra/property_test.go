package dijkstra_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/dmath/dijkstra"
)

// randomEdges returns a directed graph on n nodes. Each ordered pair
// (self-loops excluded) becomes an edge with probability p and weight in [0,9].
func randomEdges(rng *rand.Rand, n int, p float64) dijkstra.EdgeWeights[int, int] {
	edges := dijkstra.EdgeWeights[int, int]{}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && rng.Float64() < p {
				edges[dijkstra.Edge[int]{From: u, To: v}] = rng.Intn(10)
			}
		}
	}

	return edges
}

// bruteForce enumerates every simple path from src and keeps the minimum
// total weight per reached node.
func bruteForce(edges dijkstra.EdgeWeights[int, int], src int) map[int]int {
	adj := map[int][]dijkstra.Edge[int]{}
	for e := range edges {
		adj[e.From] = append(adj[e.From], e)
	}

	best := map[int]int{src: 0}
	onPath := map[int]bool{src: true}
	var walk func(u, d int)
	walk = func(u, d int) {
		for _, e := range adj[u] {
			if onPath[e.To] {
				continue
			}
			nd := d + edges[e]
			if old, ok := best[e.To]; !ok || nd < old {
				best[e.To] = nd
			}
			onPath[e.To] = true
			walk(e.To, nd)
			onPath[e.To] = false
		}
	}
	walk(src, 0)

	return best
}

// checkPath asserts that p is a chain of existing edges from src to dst whose
// weights sum to want.
func checkPath(t *testing.T, edges dijkstra.EdgeWeights[int, int], p []int, src, dst, want int) {
	t.Helper()
	require.NotEmpty(t, p)
	assert.Equal(t, src, p[0])
	assert.Equal(t, dst, p[len(p)-1])

	sum := 0
	for i := 1; i < len(p); i++ {
		w, ok := edges[dijkstra.Edge[int]{From: p[i-1], To: p[i]}]
		require.True(t, ok, "missing edge %d→%d", p[i-1], p[i])
		sum += w
	}
	assert.Equal(t, want, sum)
}

func TestProperty_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		n := 2 + rng.Intn(6)
		edges := randomEdges(rng, n, 0.4)
		e, err := dijkstra.New(edges)
		require.NoError(t, err)

		for _, src := range e.Nodes() {
			require.NoError(t, e.Run(src))
			want := bruteForce(edges, src)
			assert.Equal(t, want, e.Distances(), "iter=%d src=%d", iter, src)

			for _, dst := range e.Nodes() {
				d, err := e.DistanceTo(dst)
				require.NoError(t, err)
				p, err := e.PathTo(dst)
				if _, ok := want[dst]; !ok {
					require.ErrorIs(t, err, dijkstra.ErrUnreachable)
					assert.True(t, dijkstra.IsInfinite(d))
					continue
				}
				require.NoError(t, err)
				checkPath(t, edges, p, src, dst, d)
			}
		}
	}
}

func TestProperty_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		n := 5 + rng.Intn(20)
		edges := randomEdges(rng, n, 0.2)

		g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			g.AddNode(simple.Node(int64(i)))
		}
		fw := dijkstra.EdgeWeights[int, float64]{}
		for edge, w := range edges {
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(int64(edge.From)), simple.Node(int64(edge.To)), float64(w)))
			fw[edge] = float64(w)
		}

		e, err := dijkstra.New(fw)
		require.NoError(t, err)
		for _, src := range e.Nodes() {
			require.NoError(t, e.Run(src))
			oracle := path.DijkstraFrom(simple.Node(int64(src)), g)
			for _, dst := range e.Nodes() {
				got, err := e.DistanceTo(dst)
				require.NoError(t, err)
				want := oracle.WeightTo(int64(dst))
				if math.IsInf(want, 1) {
					assert.True(t, math.IsInf(got, 1), "iter=%d %d→%d", iter, src, dst)
					continue
				}
				assert.InDelta(t, want, got, 1e-9, "iter=%d %d→%d", iter, src, dst)
			}
		}
	}
}

func TestProperty_SolveAllMatchesRun(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	edges := randomEdges(rng, 30, 0.15)
	e, err := dijkstra.New(edges)
	require.NoError(t, err)

	all, err := e.SolveAll(context.Background(), e.Nodes(), 4)
	require.NoError(t, err)
	require.Len(t, all, e.NodeCount())

	for _, src := range e.Nodes() {
		require.NoError(t, e.Run(src))
		res := all[src]
		require.NotNil(t, res)
		assert.Equal(t, src, res.Source())
		assert.Equal(t, e.Distances(), res.Distances())
		assert.Equal(t, e.Predecessors(), res.Predecessors())
	}
}

func TestSolveAll_UnknownSource(t *testing.T) {
	e, err := dijkstra.New(triangle())
	require.NoError(t, err)

	_, err = e.SolveAll(context.Background(), []string{"A", "Z", "B"}, 0)
	require.ErrorIs(t, err, dijkstra.ErrUnknownNode)
}

func TestSolveAll_CancelledContext(t *testing.T) {
	e, err := dijkstra.New(triangle())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.SolveAll(ctx, []string{"A", "B"}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveAll_DoesNotTouchLastRun(t *testing.T) {
	e, err := dijkstra.New(triangle())
	require.NoError(t, err)

	_, err = e.SolveAll(context.Background(), []string{"A", "B"}, 2)
	require.NoError(t, err)
	_, ok := e.Last()
	assert.False(t, ok)
}
