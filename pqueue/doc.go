// Package pqueue provides an indexed min-priority queue over dense integer keys.
//
// Overview:
//
//   - Keys are plain ints in the range [0, n), typically dense indices that a
//     caller assigned to richer identifiers (graph nodes, jobs, cells).
//   - Priorities are not stored by the caller. Instead the queue is built with a
//     Scorer, a function key → score, and evaluates it when a key is pushed or
//     reweighted. The score is recorded next to the key, so the ordering stays
//     consistent even while the caller mutates the data behind the Scorer.
//   - When a key's score changes after insertion (the classic decrease-key of
//     Dijkstra or Prim), the caller updates its own state and calls Reweight(key).
//
// Implementation:
//
//   - A binary min-heap on top of container/heap, plus a side table
//     pos[key] = heap position (or -1 when the key is not queued).
//   - Swap keeps the side table in sync, so Contains is O(1) and Reweight /
//     Remove locate their entry without scanning.
//
// Complexity:
//
//   - Push, Pop, Reweight, Remove: O(log n)
//   - Top, Contains, Len, Empty, Score: O(1)
//   - Space: O(n) for the side table plus O(size) for the heap.
//
// Errors (sentinel):
//
//   - ErrEmptyQueue     Top / Pop / PopMin on an empty queue.
//   - ErrDuplicateKey   Push of a key that is already queued.
//   - ErrKeyNotFound    Reweight / Remove of a key that is not queued.
//   - ErrKeyOutOfRange  key outside [0, n), or negative n in New.
//   - ErrNilScorer      New called without a Scorer.
//
// Thread safety:
//
//   - A Queue is not safe for concurrent use. It is meant to be owned by a
//     single algorithm run.
//
// Example:
//
//	dist := []int{7, 3, 5}
//	q, _ := pqueue.New(len(dist), func(k int) int { return dist[k] })
//	_ = q.Push(0)
//	_ = q.Push(2)
//	dist[0] = 1
//	_ = q.Reweight(0)
//	k, _ := q.PopMin() // k == 0
package pqueue
