// Package lewis factors every integer in a window around a base number by
// trial division, propagates each discovered factor across its multiples,
// and closes the remaining gaps to a fixpoint.
//
// # Overview
//
// Given a base number b, the window is:
//
//	w     = 2 · floor(√b)
//	Lower = b - w
//	Upper = b + w
//
// The primes below w form the trial-division table. Every number in
// [Lower, Upper] is divided by every table prime; the primes that divide
// it are recorded in the factor map.
//
// # Pipeline
//
//   - PeelOffPrimes: one trial-division pass over the window (distinct primes only)
//   - Reduce:        divide each number by its recorded factors to get a residue
//   - Missing:       window members with no recorded factor
//   - Close:         re-factor missing numbers (with multiplicity), propagate, repeat
//
// # Quick Start
//
//	s, err := lewis.NewSieve(lewis.Config{Base: 20123})
//	if err != nil {
//	    log.Fatal(err) // invalid base, nothing was computed
//	}
//
//	report, err := s.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, rec := range report.Records {
//	    fmt.Println(rec.Index, rec.Number, rec.FactorList(), rec.Reduced)
//	}
//	fmt.Println("missing:", report.Missing)
//	fmt.Println("missing, not prime:", report.MissingNonPrime)
//
// # Propagation
//
// A factor f found for n is attributed to n, n+f, n+2f, ... up to Upper:
//
//	Propagate(n, F): ∀ f ∈ F, ∀ k ≥ 0, n + k·f ≤ Upper ⇒ f ∈ FactorMap[n + k·f]
//
// The factor map only grows.
//
// # Reduction
//
// The residue of n divides out each recorded factor, ascending, while the
// factor divides the running value and the value is not the factor itself:
//
//	r = n
//	for f in sorted(F): while r mod f = 0 and r ≠ f: r = r / f
//
// So 8 with {2} reduces to 2, not 1. Reduction is idempotent.
//
// # Incomplete factorization
//
// A number whose smallest prime factor is at least w cannot be explained by
// the table. It stays in Missing, or its residue is a prime above the
// table. This is expected output, not an error.
//
// # Zero
//
// Every prime divides 0, so 0 is recorded with the whole table and its
// residue is 0.
//
// # Concurrency
//
// Config.Workers > 1 parallelizes the divisibility tests of a pass.
// Factor map writes always happen on the calling goroutine, in ascending
// order, so the report does not depend on the worker count.
package lewis
