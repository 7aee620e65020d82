// Package numeric collects small number-theory routines over uint64:
// primality and the sieve of Eratosthenes, prime factorisation, Euler's
// totient, gcd and integer square roots, continued fractions of √d with
// their convergents, Farey sequences and counting of summations.
//
// All functions are pure and safe for concurrent use. Inputs are unsigned,
// so negative arguments are rejected by the type system rather than at run
// time.
//
// Continued fractions
//
//	cf, _ := numeric.CFR(7)          // {Terms: [2 1 1 1 4], Period: 4}
//	f, _ := numeric.Convergent(3, cf) // 8/3
//
// Farey sequences
//
//	seq, _ := numeric.FareySeq(numeric.Fraction{Num: 1, Den: 3}, numeric.Fraction{Num: 1, Den: 2}, 8)
//	for f := range seq {
//		fmt.Println(f) // 1/3 3/8 2/5 3/7 1/2
//	}
package numeric
