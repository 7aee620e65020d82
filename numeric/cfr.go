package numeric

import "fmt"

// DefaultCFRIterations bounds CFR when no explicit limit is given.
const DefaultCFRIterations = 2000

// CFR returns the continued fraction of √d with DefaultCFRIterations.
func CFR(d uint64) (ContinuedFraction, error) {
	return CFRLimit(d, DefaultCFRIterations)
}

// CFRLimit expands √d = [a0; a1, …, ap] where the period a1…ap ends with
// ap == 2·a0. At most maxIter terms after a0 are produced; if the period has
// not closed by then, Period is 0.
//
// Errors:
//   - ErrPerfectSquare if d is a square (0 and 1 included).
//
// Complexity: O(p) with p the period length, which is O(√d log d).
func CFRLimit(d uint64, maxIter int) (ContinuedFraction, error) {
	a0 := ISqrt(d)
	if a0*a0 == d {
		return ContinuedFraction{}, fmt.Errorf("%w: %d", ErrPerfectSquare, d)
	}

	// Standard recurrence on (m + √d) / q with integer m, q.
	terms := []uint64{a0}
	m, q, a := uint64(0), uint64(1), a0
	for i := 0; i < maxIter; i++ {
		m = q*a - m
		q = (d - m*m) / q
		a = (a0 + m) / q
		terms = append(terms, a)
		if a == 2*a0 {
			return ContinuedFraction{Terms: terms, Period: i + 1}, nil
		}
	}

	return ContinuedFraction{Terms: terms}, nil
}

// Term returns the i-th partial quotient, repeating the period as needed.
//
// Errors:
//   - ErrIndexOutOfRange if i < 0, or i is past Terms of a non-periodic expansion.
func (cf ContinuedFraction) Term(i int) (uint64, error) {
	n := len(cf.Terms)
	switch {
	case i < 0:
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	case i < n:
		return cf.Terms[i], nil
	case cf.Period > 0:
		p := cf.Period
		return cf.Terms[i-p*((i+1-n+p-1)/p)], nil
	default:
		return 0, fmt.Errorf("%w: term %d of non-periodic expansion with %d terms", ErrIndexOutOfRange, i, n)
	}
}

// Convergent returns the n-th convergent h_n/k_n of cf in lowest terms,
// e.g. Convergent(3, CFR(2)) = 17/12.
//
// Errors:
//   - ErrIndexOutOfRange from Term.
//   - ErrOverflow if h_n or k_n exceed uint64.
func Convergent(n int, cf ContinuedFraction) (Fraction, error) {
	if n < 0 {
		return Fraction{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, n)
	}

	// h_{-1}=1, h_{-2}=0; k_{-1}=0, k_{-2}=1.
	h1, h2 := uint64(1), uint64(0)
	k1, k2 := uint64(0), uint64(1)
	for i := 0; i <= n; i++ {
		a, err := cf.Term(i)
		if err != nil {
			return Fraction{}, err
		}
		h, err := mulAdd(a, h1, h2)
		if err != nil {
			return Fraction{}, fmt.Errorf("%w: numerator of convergent %d", err, i)
		}
		k, err := mulAdd(a, k1, k2)
		if err != nil {
			return Fraction{}, fmt.Errorf("%w: denominator of convergent %d", err, i)
		}
		h1, h2 = h, h1
		k1, k2 = k, k1
	}
	g := GCD(h1, k1)

	return Fraction{Num: h1 / g, Den: k1 / g}, nil
}
