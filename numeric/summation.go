package numeric

import "slices"

// NumberOfSummations returns v with v[x] the number of ways to write x,
// 0 ≤ x ≤ n, as an unordered sum of values from candidates (each usable any
// number of times). Zeros and duplicates in candidates are ignored; v[0] is 1.
// Counts wrap silently past uint64.
//
// Errors:
//   - ErrTooLarge if n ≥ math.MaxInt.
//
// Complexity: O(n·|candidates|).
func NumberOfSummations(candidates []uint64, n uint64) ([]uint64, error) {
	size, err := tableLen(n)
	if err != nil {
		return nil, err
	}
	cs := slices.Clone(candidates)
	slices.Sort(cs)
	cs = slices.Compact(cs)

	v := make([]uint64, size)
	v[0] = 1
	for _, c := range cs {
		if c == 0 {
			continue
		}
		if c > n {
			break
		}
		for i := c; i <= n; i++ {
			v[i] += v[i-c]
		}
	}

	return v, nil
}
