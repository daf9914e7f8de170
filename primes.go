package lewis

import (
	"errors"
	"fmt"
)

// ErrInvalidPrimeBound is returned for a non-positive prime table limit.
var ErrInvalidPrimeBound = errors.New("lewis: prime bound must be positive")

// PrimesBelow returns every prime p with 2 <= p < limit, ascending.
//
// Each candidate is trial-divided by the primes already found, up to its
// square root. The table is the ceiling on factorization completeness:
// a number whose smallest prime factor is >= limit is never explained.
func PrimesBelow(limit int64) ([]int64, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPrimeBound, limit)
	}

	primes := make([]int64, 0)
	for candidate := int64(2); candidate < limit; candidate++ {
		isPrime := true
		for _, p := range primes {
			if p*p > candidate {
				break
			}
			if candidate%p == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			primes = append(primes, candidate)
		}
	}

	return primes, nil
}
