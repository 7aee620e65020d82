package numeric

import (
	"fmt"
	"math"
	"slices"
)

// GCD returns the greatest common divisor of a and b, and GCD(0, 0) == 0.
// For signed T the result is non-negative, except when it would be
// -math.MinInt of T (GCD(MinInt, 0), GCD(MinInt, MinInt)): that value does not
// fit T, and GCD returns MinInt itself. Use GCDChecked to detect it.
func GCD[T Integer](a, b T) T {
	g, _ := GCDChecked(a, b)
	return g
}

// GCDChecked is GCD that reports ErrOverflow when the non-negative result
// does not fit T.
func GCDChecked[T Integer](a, b T) (T, error) {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
		if a < 0 {
			return a, fmt.Errorf("%w: gcd magnitude exceeds %T", ErrOverflow, a)
		}
	}

	return a, nil
}

// ISqrt returns ⌊√n⌋ exactly, correcting the float estimate in both directions.
func ISqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}

	return r
}

// IsSquare reports whether n is a perfect square.
func IsSquare(n uint64) bool {
	r := ISqrt(n)
	return r*r == n
}

// IndexSort returns the permutation of indices that visits s in the order
// given by cmp. s itself is left untouched; equal elements keep their order.
func IndexSort[S ~[]E, E any](s S, cmp func(a, b E) int) []int {
	idx := make([]int, len(s))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return cmp(s[a], s[b]) })

	return idx
}

// ApplyIndexSort rearranges s in place so that s[i] becomes the old s[idx[i]].
// With idx from IndexSort this sorts s.
//
// Errors:
//   - ErrIndexOutOfRange if idx and s differ in length or idx holds a bad index.
func ApplyIndexSort[S ~[]E, E any](s S, idx []int) error {
	if len(idx) != len(s) {
		return fmt.Errorf("%w: %d indices for %d elements", ErrIndexOutOfRange, len(idx), len(s))
	}

	tmp := make(S, len(s))
	for i, j := range idx {
		if j < 0 || j >= len(s) {
			return fmt.Errorf("%w: %d", ErrIndexOutOfRange, j)
		}
		tmp[i] = s[j]
	}
	copy(s, tmp)

	return nil
}
