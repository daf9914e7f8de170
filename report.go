package lewis

import (
	"modernc.org/mathutil"
)

// NoFactors is shown in place of an empty factor list.
const NoFactors = "N/A"

// Record is one row of the report: a factored number and what is known about it.
type Record struct {
	Index   int     `json:"index"` // 1-based, ascending by Number
	Number  int64   `json:"number"`
	Factors []int64 `json:"factors"`
	Reduced int64   `json:"reduced"`
}

// FactorList renders the factors ascending, or NoFactors if there are none.
func (r Record) FactorList() string {
	if len(r.Factors) == 0 {
		return NoFactors
	}
	return joinFactors(r.Factors)
}

// Report is the observable result of a run.
//
// A record whose Reduced value is not 1 and not one of its own factors,
// or a number left in Missing, is an incomplete factorization: its
// remaining prime factors lie above the prime bound. That is expected
// output, not an error.
type Report struct {
	Window          Window   `json:"window"`
	Records         []Record `json:"records"`
	Missing         []int64  `json:"missing"`
	MissingNonPrime int      `json:"missing_non_prime"`
	Stats           Stats    `json:"stats"`
}

// IsPrime reports whether n is prime. Values below 2 are not.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	return mathutil.IsPrimeUint64(uint64(n))
}

// CountNonPrime counts the values for which IsPrime is false.
func CountNonPrime(nums []int64) int {
	count := 0
	for _, n := range nums {
		if !IsPrime(n) {
			count++
		}
	}
	return count
}

// report snapshots the current state. Numbers that entered the factor map
// after the last Reduce report themselves as their residue.
func (s *Sieve) report(missing []int64) *Report {
	nums := s.Numbers()
	records := make([]Record, len(nums))
	for i, n := range nums {
		reduced, ok := s.reduced[n]
		if !ok {
			reduced = n
		}
		records[i] = Record{
			Index:   i + 1,
			Number:  n,
			Factors: s.factors[n].Sorted(),
			Reduced: reduced,
		}
	}

	return &Report{
		Window:          s.window,
		Records:         records,
		Missing:         missing,
		MissingNonPrime: CountNonPrime(missing),
		Stats:           s.stats,
	}
}
