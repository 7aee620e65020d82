package numeric

import (
	"fmt"
	"iter"
	"slices"
)

// FareyStack holds the right-hand fractions still to be visited by NextFarey.
// Its zero value is an empty stack.
type FareyStack struct {
	items []Fraction
}

// NewFareyStack returns a stack holding the given fractions, last on top.
func NewFareyStack(fs ...Fraction) *FareyStack {
	return &FareyStack{items: slices.Clone(fs)}
}

// Push adds f on top of the stack.
func (s *FareyStack) Push(f Fraction) { s.items = append(s.items, f) }

// Len returns the number of pending fractions.
func (s *FareyStack) Len() int { return len(s.items) }

// Empty reports whether nothing is left to visit.
func (s *FareyStack) Empty() bool { return len(s.items) == 0 }

func (s *FareyStack) top() Fraction { return s.items[len(s.items)-1] }

func (s *FareyStack) pop() Fraction {
	f := s.top()
	s.items = s.items[:len(s.items)-1]
	return f
}

// NextFarey returns the neighbour of cur in the Farey sequence of order n.
// Mediants between cur and the stack top with denominator ≤ n are pushed until
// the top is adjacent to cur; that top is then popped and returned.
//
// Errors:
//   - ErrZeroOrder if n == 0.
//   - ErrEmptyStack if s has nothing left.
func NextFarey(cur Fraction, s *FareyStack, n uint64) (Fraction, error) {
	if n == 0 {
		return Fraction{}, ErrZeroOrder
	}
	if s == nil || s.Empty() {
		return Fraction{}, ErrEmptyStack
	}

	for {
		r := s.top()
		den := cur.Den + r.Den
		if den > n {
			return s.pop(), nil
		}
		s.Push(Fraction{Num: cur.Num + r.Num, Den: den})
	}
}

// FareySeq yields the Farey sequence of order n restricted to [left, right],
// both ends included. left and right must be reduced and adjacent in some
// Farey sequence of lower order for the output to be complete.
//
// Errors (reported before iteration starts):
//   - ErrZeroOrder, ErrNotAscending, ErrNotReduced.
func FareySeq(left, right Fraction, n uint64) (iter.Seq[Fraction], error) {
	if n == 0 {
		return nil, ErrZeroOrder
	}
	if !left.Less(right) {
		return nil, fmt.Errorf("%w: %v ≥ %v", ErrNotAscending, left, right)
	}
	if !left.Reduced() {
		return nil, fmt.Errorf("%w: %v", ErrNotReduced, left)
	}
	if !right.Reduced() {
		return nil, fmt.Errorf("%w: %v", ErrNotReduced, right)
	}

	return func(yield func(Fraction) bool) {
		if !yield(left) {
			return
		}
		s := NewFareyStack(right)
		cur := left
		for !s.Empty() {
			next, err := NextFarey(cur, s, n)
			if err != nil {
				return
			}
			if !yield(next) {
				return
			}
			cur = next
		}
	}, nil
}

// RestrictedFarey collects FareySeq(left, right, n).
func RestrictedFarey(left, right Fraction, n uint64) ([]Fraction, error) {
	seq, err := FareySeq(left, right, n)
	if err != nil {
		return nil, err
	}

	return slices.Collect(seq), nil
}

// Farey returns the reduced fractions in [0, 1] with denominator ≤ n in
// ascending order.
//
// Complexity: O(|F_n|) = O(n²).
func Farey(n uint64) ([]Fraction, error) {
	return RestrictedFarey(Fraction{Num: 0, Den: 1}, Fraction{Num: 1, Den: 1}, n)
}
