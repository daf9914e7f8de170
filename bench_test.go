package lewis

import (
	"fmt"
	"testing"
	"time"
)

// TestMeasureScan verifies the multi-level runner works.
func TestMeasureScan(t *testing.T) {
	cfg := DefaultBenchConfig()
	cfg.Levels = []int{1, 2}
	cfg.Repeats = 2
	cfg.Logger = quietLogger()

	results, err := MeasureScan(10007, cfg)
	if err != nil {
		t.Fatalf("MeasureScan failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	for i, r := range results {
		if r.Workers != cfg.Levels[i] {
			t.Errorf("Expected workers=%d, got %d", cfg.Levels[i], r.Workers)
		}
		if len(r.Durations) != cfg.Repeats {
			t.Errorf("workers=%d: expected %d durations, got %d", r.Workers, cfg.Repeats, len(r.Durations))
		}
		if r.Min > r.Mean {
			t.Errorf("workers=%d: min %v above mean %v", r.Workers, r.Min, r.Mean)
		}
		t.Logf("workers=%d: mean=%v min=%v speedup=%.2f", r.Workers, r.Mean, r.Min, r.Speedup)
	}

	if results[0].Mean > 0 && results[0].Speedup != 1 {
		t.Errorf("Baseline speedup should be 1, got %.4f", results[0].Speedup)
	}
}

func TestMeasureScan_NoLevels(t *testing.T) {
	cfg := DefaultBenchConfig()
	cfg.Levels = nil

	if _, err := MeasureScan(100, cfg); err == nil {
		t.Error("Expected error for empty levels")
	}
}

func TestMeasureScan_InvalidBase(t *testing.T) {
	if _, err := MeasureScan(0, DefaultBenchConfig()); err == nil {
		t.Error("Expected error for base 0")
	}
}

func TestSameFindings(t *testing.T) {
	s := newTestSieve(t, 100, 1)
	a, err := s.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	b := *a
	b.Records = append([]Record(nil), a.Records...)
	b.Stats.Elapsed += 1000
	if !SameFindings(a, &b) {
		t.Error("Timing alone should not count as a difference")
	}

	b.Records[3].Reduced++
	if SameFindings(a, &b) {
		t.Error("Changed residue went unnoticed")
	}
}

func TestSummarize(t *testing.T) {
	mean, fastest := summarize([]time.Duration{300, 100, 200})
	if mean != 200 || fastest != 100 {
		t.Errorf("Expected mean=200 min=100, got mean=%v min=%v", mean, fastest)
	}
}

func BenchmarkRun(b *testing.B) {
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s, err := NewSieve(Config{Base: DefaultBase, Workers: workers, Logger: quietLogger()})
				if err != nil {
					b.Fatal(err)
				}
				if _, err := s.Run(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
