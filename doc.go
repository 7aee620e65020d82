// Package dmath is a small computational-mathematics toolkit built around a
// generic single-source shortest-path engine.
//
// 🚀 What is dmath?
//
//	A set of focused packages:
//		• pqueue   – min-priority queue over dense indices with decrease-key (Reweight)
//		• dijkstra – Dijkstra over arbitrary node identifiers and numeric weights
//		• numeric  – primes, factorisation, totient, continued fractions, Farey sequences
//		• edgefile – YAML / TOML / JSON edge lists, optionally gzip-compressed
//
// ✨ Why dmath?
//
//   - Generic – any ordered (or comparable + compare func) node type, any integer or float weight
//   - Deterministic – dense indices and adjacency follow node order, not map order
//   - Explicit – unreachable nodes are reported by flag and sentinel error, never by magic values
//   - Concurrent – Solve / SolveAll run many sources over one immutable graph
//
// Layout:
//
//	cmd/dmath/ – command-line front end (path, primes, factor, phi, cfr, farey, sums)
//	dijkstra/  – Engine, Result, options
//	edgefile/  – edge-list decoding and encoding
//	internal/  – configuration (envconfig) and logging (zap, lumberjack)
//	numeric/   – pure number-theory routines
//	pqueue/    – indexed priority queue
//
// Quick example:
//
//	    A ──1──▶ B ──2──▶ C
//	    └──────────5──────▲
//
//	e, _ := dijkstra.New(dijkstra.EdgeWeights[string, int]{
//		{From: "A", To: "B"}: 1,
//		{From: "B", To: "C"}: 2,
//		{From: "A", To: "C"}: 5,
//	})
//	_ = e.Run("A")
//	p, _ := e.PathTo("C") // [A B C], distance 3
//
//	go get github.com/katalvlaran/dmath
package dmath
