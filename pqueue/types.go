package pqueue

import (
	"cmp"
	"errors"
)

// Sentinel errors returned by Queue operations.
var (
	// ErrEmptyQueue indicates Top, Pop or PopMin on a queue with no members.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrDuplicateKey indicates Push of a key that is already queued.
	ErrDuplicateKey = errors.New("pqueue: key already queued")

	// ErrKeyNotFound indicates Reweight or Remove of a key that is not queued.
	ErrKeyNotFound = errors.New("pqueue: key not queued")

	// ErrKeyOutOfRange indicates a key outside [0, n) or a negative n.
	ErrKeyOutOfRange = errors.New("pqueue: key out of range")

	// ErrNilScorer indicates that New was called without a Scorer.
	ErrNilScorer = errors.New("pqueue: scorer is nil")
)

// Scorer returns the current priority of key. Lower scores leave the queue first.
// The queue calls it on Push and Reweight only; it must be deterministic
// between those calls.
type Scorer[S cmp.Ordered] func(key int) S

// notQueued marks a key with no heap position.
const notQueued = -1

// entry is a single heap slot: the key and the score recorded for it.
type entry[S cmp.Ordered] struct {
	key   int
	score S
}
