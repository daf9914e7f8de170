package lewis

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// ErrNondeterministic is returned when two worker levels disagree on the result.
var ErrNondeterministic = errors.New("lewis: report differs between worker levels")

// BenchConfig controls MeasureScan.
type BenchConfig struct {
	Levels  []int        // Worker counts to test (default: [1,2,4,8])
	Repeats int          // Full runs per level
	Logger  *slog.Logger // Passed to every sieve; nil = slog.Default()
}

// DefaultBenchConfig returns sensible defaults.
func DefaultBenchConfig() BenchConfig {
	return BenchConfig{
		Levels:  []int{1, 2, 4, 8},
		Repeats: 3,
	}
}

// ScanResult contains measurements from a single worker level.
type ScanResult struct {
	Workers   int             // Trial-division goroutines
	Durations []time.Duration // One per repeat
	Mean      time.Duration
	Min       time.Duration
	Speedup   float64 // Mean of the first level / Mean of this level
}

// MeasureScan runs the full sieve for base at every worker level and
// records the wall time of each run. The first report serves as the
// reference; any later report that differs from it fails the measurement,
// since the worker count must never change what the sieve finds.
func MeasureScan(base int64, cfg BenchConfig) ([]ScanResult, error) {
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("%w: no worker levels", ErrInvalidConfig)
	}
	repeats := max(cfg.Repeats, 1)

	var reference *Report
	results := make([]ScanResult, 0, len(cfg.Levels))

	for _, workers := range cfg.Levels {
		result := ScanResult{
			Workers:   workers,
			Durations: make([]time.Duration, 0, repeats),
		}

		for i := 0; i < repeats; i++ {
			s, err := NewSieve(Config{Base: base, Workers: workers, Logger: cfg.Logger})
			if err != nil {
				return nil, err
			}

			start := time.Now()
			report, err := s.Run()
			if err != nil {
				return nil, fmt.Errorf("failed at workers=%d: %w", workers, err)
			}
			result.Durations = append(result.Durations, time.Since(start))

			if reference == nil {
				reference = report
			} else if !SameFindings(reference, report) {
				return nil, fmt.Errorf("%w: workers=%d", ErrNondeterministic, workers)
			}
		}

		result.Mean, result.Min = summarize(result.Durations)
		results = append(results, result)
	}

	if baseline := results[0].Mean; baseline > 0 {
		for i := range results {
			if results[i].Mean > 0 {
				results[i].Speedup = float64(baseline) / float64(results[i].Mean)
			}
		}
	}

	return results, nil
}

// SameFindings reports whether two reports agree on everything except timing.
func SameFindings(a, b *Report) bool {
	if a.Window != b.Window || a.MissingNonPrime != b.MissingNonPrime {
		return false
	}
	if !slices.Equal(a.Missing, b.Missing) {
		return false
	}
	return slices.EqualFunc(a.Records, b.Records, func(x, y Record) bool {
		return x.Index == y.Index &&
			x.Number == y.Number &&
			x.Reduced == y.Reduced &&
			slices.Equal(x.Factors, y.Factors)
	})
}

func summarize(durations []time.Duration) (mean, fastest time.Duration) {
	if len(durations) == 0 {
		return 0, 0
	}

	var sum time.Duration
	fastest = durations[0]
	for _, d := range durations {
		sum += d
		fastest = min(fastest, d)
	}
	return sum / time.Duration(len(durations)), fastest
}
