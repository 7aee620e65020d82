package numeric

// IsPrime reports whether n is prime, by trial division over 6k±1.
//
// Complexity: O(√n).
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := uint64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// Eratosthenes returns all primes in [2, n] in ascending order.
//
// Errors:
//   - ErrTooLarge if n ≥ math.MaxInt.
//
// Complexity: O(n log log n) time, O(n) space.
func Eratosthenes(n uint64) ([]uint64, error) {
	if n < 2 {
		return []uint64{}, nil
	}
	size, err := tableLen(n)
	if err != nil {
		return nil, err
	}

	composite := make([]bool, size)
	for i := uint64(2); i <= n/i; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}

	primes := make([]uint64, 0, n/8+1)
	for i := 2; i < len(composite); i++ {
		if !composite[i] {
			primes = append(primes, uint64(i))
		}
	}

	return primes, nil
}

// PrimeFactors returns the prime factorisation of n in ascending prime order.
// PrimeFactors(1) is [{1 1}].
//
// Errors:
//   - ErrZeroInput if n == 0.
//
// Complexity: O(√n).
func PrimeFactors(n uint64) ([]Factor, error) {
	if n == 0 {
		return nil, ErrZeroInput
	}

	var factors []Factor
	divide := func(p uint64) {
		if n%p != 0 {
			return
		}
		f := Factor{Prime: p}
		for n%p == 0 {
			n /= p
			f.Exp++
		}
		factors = append(factors, f)
	}

	divide(2)
	for p := uint64(3); p <= n/p; p += 2 {
		divide(p)
	}
	if n > 1 {
		factors = append(factors, Factor{Prime: n, Exp: 1})
	}
	if len(factors) == 0 {
		factors = append(factors, Factor{Prime: 1, Exp: 1})
	}

	return factors, nil
}

// EulerPhi returns Euler's totient φ(n), the count of integers in [1, n]
// coprime to n. φ(0) = 0 and φ(1) = 1.
func EulerPhi(n uint64) uint64 {
	if n <= 1 {
		return n
	}
	factors, _ := PrimeFactors(n)
	for _, f := range factors {
		n = n / f.Prime * (f.Prime - 1)
	}

	return n
}
