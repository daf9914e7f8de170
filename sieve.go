package lewis

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"
)

// Sieve owns all mutable state for one factorization run over a Window.
//
// The factor map only ever grows: PeelOffPrimes and Propagate add
// factors, nothing removes them. The reduced map is a derived view that
// Reduce recomputes wholesale.
type Sieve struct {
	cfg    Config
	log    *slog.Logger
	window Window
	primes []int64

	factors   map[int64]FactorSet // number -> recorded factors
	reduced   map[int64]int64     // number -> residue after Reduce
	processed map[int64]struct{}  // numbers already tried by the closure loop

	state LoopState
	stats Stats
}

// NewSieve validates cfg and precomputes the window and its prime table.
// Configuration errors are returned before any sieve work happens.
func NewSieve(cfg Config) (*Sieve, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	window, err := NewWindow(cfg.Base)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	primes, err := PrimesBelow(window.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	s := &Sieve{
		cfg:    cfg,
		log:    cfg.logger(),
		window: window,
		primes: primes,
	}
	s.reset()
	return s, nil
}

func (s *Sieve) reset() {
	s.factors = make(map[int64]FactorSet)
	s.reduced = make(map[int64]int64)
	s.processed = make(map[int64]struct{})
	s.state = StateScanning
	s.stats = Stats{}
}

func (s *Sieve) Window() Window {
	return s.window
}

// Primes returns a copy of the trial-division prime table.
func (s *Sieve) Primes() []int64 {
	return slices.Clone(s.primes)
}

// Factors returns the ascending factors recorded for n, or nil if n is unexplained.
func (s *Sieve) Factors(n int64) []int64 {
	fs, ok := s.factors[n]
	if !ok {
		return nil
	}
	return fs.Sorted()
}

// Reduced returns the residue computed for n by the last Reduce.
func (s *Sieve) Reduced(n int64) (int64, bool) {
	r, ok := s.reduced[n]
	return r, ok
}

// Numbers returns every number with recorded factors, ascending.
func (s *Sieve) Numbers() []int64 {
	return slices.Sorted(maps.Keys(s.factors))
}

func (s *Sieve) State() LoopState {
	return s.state
}

func (s *Sieve) Stats() Stats {
	return s.stats
}

// PeelOffPrimes trial-divides every window member by every table prime and
// records the distinct primes that divide it. Multiplicity is not recorded.
func (s *Sieve) PeelOffPrimes() error {
	nums := make([]int64, 0, s.window.Len())
	for n := s.window.Lower; n <= s.window.Upper; n++ {
		nums = append(nums, n)
	}

	found, err := s.scan(nums, s.distinctDivisors)
	if err != nil {
		return fmt.Errorf("window scan: %w", err)
	}

	for i, fs := range found {
		if len(fs) == 0 {
			continue
		}
		entry := s.entry(nums[i])
		for _, f := range fs {
			entry.Add(f)
		}
	}

	s.log.Debug("window sieved",
		"window", s.window.String(),
		"primes", len(s.primes),
		"factored", len(s.factors))
	return nil
}

// Propagate records each factor f on number and on every later step of f
// up to the window's upper bound. Only positions inside the window are
// written. Factors below 1 are ignored.
func (s *Sieve) Propagate(number int64, factors []int64) {
	upper := s.window.Upper
	for _, f := range factors {
		if f < 1 {
			continue
		}

		n := number
		if n < s.window.Lower {
			steps := (s.window.Lower - n + f - 1) / f
			n += steps * f
		}

		for n <= upper {
			s.entry(n).Add(f)
			if n > upper-f {
				break
			}
			n += f
		}
	}
}

// Reduce recomputes the residue of every number in the factor map.
func (s *Sieve) Reduce() {
	s.reduced = make(map[int64]int64, len(s.factors))
	for n, fs := range s.factors {
		s.reduced[n] = ReduceBy(n, fs.Sorted())
	}
}

// ReduceBy divides n by each factor, ascending, for as long as the factor
// divides the running value and the value is not the factor itself. A
// number equal to its factor keeps that factor as its residue rather than
// collapsing to 1.
//
// Zero is returned unchanged; factors <= 1 are skipped.
func ReduceBy(n int64, factors []int64) int64 {
	if n == 0 {
		return 0
	}

	sorted := slices.Clone(factors)
	slices.Sort(sorted)

	r := n
	for _, f := range sorted {
		if f <= 1 {
			continue
		}
		for r%f == 0 && r != f {
			r /= f
		}
	}
	return r
}

// Missing returns the window members with no recorded factor, ascending.
func (s *Sieve) Missing() []int64 {
	missing := make([]int64, 0)
	for n := s.window.Lower; n <= s.window.Upper; n++ {
		if _, ok := s.factors[n]; !ok {
			missing = append(missing, n)
		}
	}
	return missing
}

// Run executes the full pipeline from an empty factor map:
// sieve, reduce, find gaps, close gaps to a fixpoint, report.
func (s *Sieve) Run() (*Report, error) {
	start := time.Now()
	s.reset()

	if err := s.PeelOffPrimes(); err != nil {
		return nil, err
	}

	s.Reduce()

	missing := s.Missing()
	s.log.Debug("initial gaps", "missing", len(missing))

	if err := s.Close(); err != nil {
		return nil, err
	}

	s.stats.Elapsed = time.Since(start)
	report := s.report(s.Missing())

	s.log.Info("sieve complete",
		"base", s.window.Base,
		"factored", len(report.Records),
		"missing", len(report.Missing),
		"missing_non_prime", report.MissingNonPrime,
		"rounds", s.stats.Rounds,
		"elapsed", s.stats.Elapsed)

	return report, nil
}

func (s *Sieve) entry(n int64) FactorSet {
	fs, ok := s.factors[n]
	if !ok {
		fs = make(FactorSet)
		s.factors[n] = fs
	}
	return fs
}

// distinctDivisors returns each table prime dividing n once.
func (s *Sieve) distinctDivisors(n int64) []int64 {
	var out []int64
	for _, p := range s.primes {
		if n%p == 0 {
			out = append(out, p)
		}
	}
	return out
}

// factorWithMultiplicity divides n by each table prime for as long as it
// divides, recording the prime once per division, and stops as soon as
// the quotient reaches 1. Zero yields each table prime once.
func (s *Sieve) factorWithMultiplicity(n int64) []int64 {
	if n == 0 {
		return s.distinctDivisors(n)
	}

	var out []int64
	m := n
	for _, p := range s.primes {
		for m%p == 0 {
			out = append(out, p)
			m /= p
		}
		if m == 1 {
			break
		}
	}
	return out
}
