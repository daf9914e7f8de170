package lewis

import (
	"testing"
)

// AssertFactorValidity verifies every recorded factor divides its number.
//
// Property:
//
//	∀ n ∈ FactorMap, ∀ f ∈ FactorMap[n]: n mod f = 0
func AssertFactorValidity(t *testing.T, s *Sieve) {
	t.Helper()

	checked := 0
	for _, n := range s.Numbers() {
		for _, f := range s.Factors(n) {
			checked++
			if n%f != 0 {
				t.Errorf("Invalid factor: %d recorded for %d (remainder %d)", f, n, n%f)
			}
		}
	}

	t.Logf("✓ Factor validity: %d factors checked across %d numbers", checked, len(s.Numbers()))
}

// AssertPropagationClosed verifies a recorded factor reaches every later
// step of itself inside the window.
//
// Property:
//
//	f ∈ FactorMap[n] ⇒ f ∈ FactorMap[n + k·f] for all k ≥ 1 with n + k·f ≤ Upper
func AssertPropagationClosed(t *testing.T, s *Sieve) {
	t.Helper()

	upper := s.Window().Upper
	for _, n := range s.Numbers() {
		for _, f := range s.Factors(n) {
			for m := n + f; m <= upper; m += f {
				fs, ok := s.factors[m]
				if !ok || !fs.Has(f) {
					t.Errorf("Propagation gap: %d recorded for %d but not for %d", f, n, m)
					break
				}
			}
		}
	}
}

// AssertReductionIdempotent verifies reducing a residue again changes nothing.
//
// Property:
//
//	ReduceBy(ReduceBy(n, F), F) = ReduceBy(n, F)
func AssertReductionIdempotent(t *testing.T, s *Sieve) {
	t.Helper()

	for _, n := range s.Numbers() {
		fs := s.Factors(n)
		once := ReduceBy(n, fs)
		twice := ReduceBy(once, fs)
		if once != twice {
			t.Errorf("Reduction not idempotent for %d with %v: %d then %d", n, fs, once, twice)
		}
	}
}

// AssertCompletenessOrResidue verifies every window member is either
// missing or reduced as far as the prime table allows. A factored number's
// residue must be 1, one of its own factors (kept by the n != f stop rule),
// or a prime above the table. Zero keeps zero.
func AssertCompletenessOrResidue(t *testing.T, s *Sieve) {
	t.Helper()

	w := s.Window()
	primes := s.Primes()
	var largest int64
	if len(primes) > 0 {
		largest = primes[len(primes)-1]
	}

	unresolved := 0
	for n := w.Lower; n <= w.Upper; n++ {
		fs, ok := s.factors[n]
		if !ok {
			unresolved++
			continue
		}

		r := ReduceBy(n, fs.Sorted())
		switch {
		case n == 0 && r == 0:
		case r == 1:
		case fs.Has(r):
		case IsPrime(r) && r > largest:
		default:
			t.Errorf("Residue %d of %d is neither 1, a recorded factor, nor a prime above %d",
				r, n, largest)
		}
	}

	t.Logf("✓ Completeness-or-residue: %d numbers checked, %d unresolved", w.Len(), unresolved)
}

// AssertTerminated verifies the closure loop reached DONE within its bound.
func AssertTerminated(t *testing.T, s *Sieve) {
	t.Helper()

	if s.State() != StateDone {
		t.Errorf("Closure loop not finished: state %s", s.State())
	}

	stats := s.Stats()
	if stats.Rounds > s.Window().Len() {
		t.Errorf("Closure loop took %d rounds (bound: %d)", stats.Rounds, s.Window().Len())
	}
	if stats.Capped {
		t.Errorf("Closure loop stopped by round cap after %d rounds", stats.Rounds)
	}
}
