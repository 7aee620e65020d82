package numeric

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// Sentinel errors returned by the numeric routines.
var (
	// ErrZeroInput indicates an operation undefined for zero.
	ErrZeroInput = errors.New("numeric: input must be non-zero")

	// ErrPerfectSquare indicates that √d is rational, so it has no periodic expansion.
	ErrPerfectSquare = errors.New("numeric: d must not be a perfect square")

	// ErrIndexOutOfRange indicates an index outside the known terms.
	ErrIndexOutOfRange = errors.New("numeric: index out of range")

	// ErrOverflow indicates that an intermediate value exceeded uint64.
	ErrOverflow = errors.New("numeric: uint64 overflow")

	// ErrZeroOrder indicates a Farey sequence of order zero.
	ErrZeroOrder = errors.New("numeric: Farey order must be positive")

	// ErrEmptyStack indicates NextFarey was called with nothing left to visit.
	ErrEmptyStack = errors.New("numeric: Farey stack is empty")

	// ErrNotAscending indicates that left ≥ right.
	ErrNotAscending = errors.New("numeric: left must be less than right")

	// ErrNotReduced indicates a fraction whose numerator and denominator share a factor.
	ErrNotReduced = errors.New("numeric: fraction must be reduced")

	// ErrTooLarge indicates a bound whose n+1 entries cannot be indexed by int.
	ErrTooLarge = errors.New("numeric: bound too large for a table")
)

// tableLen returns n+1 as a slice length, or ErrTooLarge.
func tableLen(n uint64) (int, error) {
	if n >= math.MaxInt {
		return 0, fmt.Errorf("%w: %d", ErrTooLarge, n)
	}

	return int(n) + 1, nil
}

// Integer is the set of built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Factor is one prime power p^e of a factorisation.
type Factor struct {
	Prime uint64
	Exp   uint
}

// Fraction is a non-negative rational Num/Den.
type Fraction struct {
	Num uint64
	Den uint64
}

// String formats f as "num/den".
func (f Fraction) String() string { return fmt.Sprintf("%d/%d", f.Num, f.Den) }

// Less reports whether f < g. Cross products are compared in 128 bits.
func (f Fraction) Less(g Fraction) bool {
	lh, ll := bits.Mul64(f.Num, g.Den)
	rh, rl := bits.Mul64(g.Num, f.Den)
	if lh != rh {
		return lh < rh
	}

	return ll < rl
}

// Reduced reports whether gcd(Num, Den) == 1.
func (f Fraction) Reduced() bool { return GCD(f.Num, f.Den) == 1 }

// ContinuedFraction is the expansion of √d: Terms[0] is ⌊√d⌋, followed by
// one full period. Period is 0 when the iteration limit was hit first.
type ContinuedFraction struct {
	Terms  []uint64
	Period int
}

// mulAdd returns a*x + y or ErrOverflow.
func mulAdd(a, x, y uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, x)
	if hi != 0 {
		return 0, ErrOverflow
	}
	sum, carry := bits.Add64(lo, y, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}

	return sum, nil
}
