package pqueue

import (
	"cmp"
	"container/heap"
	"fmt"
)

// Queue is a min-priority queue over the keys [0, n), ordered by the scores a
// Scorer reported at Push or Reweight time.
type Queue[S cmp.Ordered] struct {
	h     entries[S]
	score Scorer[S]
}

// New returns an empty Queue accepting keys in [0, n) and ordered by score.
//
// Errors:
//   - ErrNilScorer if score is nil.
//   - ErrKeyOutOfRange if n is negative.
//
// Complexity: O(n) to allocate the position table.
func New[S cmp.Ordered](n int, score Scorer[S]) (*Queue[S], error) {
	if score == nil {
		return nil, ErrNilScorer
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrKeyOutOfRange, n)
	}

	pos := make([]int, n)
	for i := range pos {
		pos[i] = notQueued
	}

	return &Queue[S]{
		h:     entries[S]{items: make([]entry[S], 0, n), pos: pos},
		score: score,
	}, nil
}

// Push inserts key with the score the Scorer reports right now.
// A key may be queued at most once; a second Push returns ErrDuplicateKey.
func (q *Queue[S]) Push(key int) error {
	if err := q.checkRange(key); err != nil {
		return err
	}
	if q.h.pos[key] != notQueued {
		return fmt.Errorf("%w: %d", ErrDuplicateKey, key)
	}
	heap.Push(&q.h, entry[S]{key: key, score: q.score(key)})

	return nil
}

// Top returns the key with the lowest recorded score without removing it.
func (q *Queue[S]) Top() (int, error) {
	if len(q.h.items) == 0 {
		return 0, ErrEmptyQueue
	}

	return q.h.items[0].key, nil
}

// Pop removes the key with the lowest recorded score.
func (q *Queue[S]) Pop() error {
	if len(q.h.items) == 0 {
		return ErrEmptyQueue
	}
	heap.Pop(&q.h)

	return nil
}

// PopMin removes and returns the key with the lowest recorded score.
func (q *Queue[S]) PopMin() (int, error) {
	if len(q.h.items) == 0 {
		return 0, ErrEmptyQueue
	}

	return heap.Pop(&q.h).(entry[S]).key, nil
}

// Reweight re-evaluates the Scorer for a queued key and restores heap order.
// Call it after the data behind the Scorer changed for that key. Both
// decreases and increases are handled.
//
// Complexity: O(log n).
func (q *Queue[S]) Reweight(key int) error {
	if err := q.checkRange(key); err != nil {
		return err
	}
	i := q.h.pos[key]
	if i == notQueued {
		return fmt.Errorf("%w: %d", ErrKeyNotFound, key)
	}
	q.h.items[i].score = q.score(key)
	heap.Fix(&q.h, i)

	return nil
}

// Remove deletes a queued key regardless of its position.
func (q *Queue[S]) Remove(key int) error {
	if err := q.checkRange(key); err != nil {
		return err
	}
	i := q.h.pos[key]
	if i == notQueued {
		return fmt.Errorf("%w: %d", ErrKeyNotFound, key)
	}
	heap.Remove(&q.h, i)

	return nil
}

// Contains reports whether key is currently queued. Out-of-range keys are
// never queued.
func (q *Queue[S]) Contains(key int) bool {
	return key >= 0 && key < len(q.h.pos) && q.h.pos[key] != notQueued
}

// Score returns the score recorded for a queued key.
func (q *Queue[S]) Score(key int) (S, bool) {
	if !q.Contains(key) {
		var zero S
		return zero, false
	}

	return q.h.items[q.h.pos[key]].score, true
}

// Len returns the number of queued keys.
func (q *Queue[S]) Len() int { return len(q.h.items) }

// Empty reports whether no key is queued.
func (q *Queue[S]) Empty() bool { return len(q.h.items) == 0 }

// Reset drops every member but keeps the allocated storage.
func (q *Queue[S]) Reset() {
	for _, e := range q.h.items {
		q.h.pos[e.key] = notQueued
	}
	q.h.items = q.h.items[:0]
}

func (q *Queue[S]) checkRange(key int) error {
	if key < 0 || key >= len(q.h.pos) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrKeyOutOfRange, key, len(q.h.pos))
	}

	return nil
}

// entries implements heap.Interface and keeps pos[key] pointing at each
// key's slot.
type entries[S cmp.Ordered] struct {
	items []entry[S]
	pos   []int
}

func (h *entries[S]) Len() int { return len(h.items) }

func (h *entries[S]) Less(i, j int) bool { return cmp.Less(h.items[i].score, h.items[j].score) }

func (h *entries[S]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].key] = i
	h.pos[h.items[j].key] = j
}

func (h *entries[S]) Push(x any) {
	e := x.(entry[S])
	h.pos[e.key] = len(h.items)
	h.items = append(h.items, e)
}

func (h *entries[S]) Pop() any {
	n := len(h.items)
	e := h.items[n-1]
	h.pos[e.key] = notQueued
	h.items = h.items[:n-1]

	return e
}
