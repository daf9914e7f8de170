package lewis

import (
	"fmt"
	"time"
)

// LoopState is the closure loop's position in its state machine.
type LoopState string

const (
	StateScanning LoopState = "SCANNING" // Re-factoring missing numbers
	StateDone     LoopState = "DONE"     // Fixpoint reached, factor map frozen
)

// Stats summarizes one run.
type Stats struct {
	Rounds    int           `json:"rounds"`    // Closure rounds executed, including the final idle round
	Attempted int           `json:"attempted"` // Missing numbers directly factored
	Resolved  int           `json:"resolved"`  // Attempts that produced at least one factor
	Capped    bool          `json:"capped"`    // True if the round cap stopped the loop
	Elapsed   time.Duration `json:"elapsed"`
}

// Close drives the closure loop to its fixpoint.
//
// Each round recomputes the missing set and directly factors (with
// multiplicity) every missing number not attempted before. Numbers that
// yield factors propagate them across the window. A round with no new
// factor ends the loop.
//
// Every round either attempts a new number or finishes, so the loop ends
// within Window.Len() rounds; that count is also enforced as a hard cap.
func (s *Sieve) Close() error {
	maxRounds := s.window.Len()

	for s.state == StateScanning {
		if s.stats.Rounds >= maxRounds {
			s.stats.Capped = true
			s.state = StateDone
			s.log.Warn("closure loop hit round cap", "rounds", s.stats.Rounds)
			break
		}
		s.stats.Rounds++

		pending := make([]int64, 0)
		for _, n := range s.Missing() {
			if _, seen := s.processed[n]; seen {
				continue
			}
			s.processed[n] = struct{}{}
			pending = append(pending, n)
		}

		found, err := s.scan(pending, s.factorWithMultiplicity)
		if err != nil {
			return fmt.Errorf("closure round %d: %w", s.stats.Rounds, err)
		}

		progress := false
		for i, fs := range found {
			if len(fs) == 0 {
				continue
			}
			s.Propagate(pending[i], fs)
			s.stats.Resolved++
			progress = true
		}
		s.stats.Attempted += len(pending)

		s.log.Debug("closure round",
			"round", s.stats.Rounds,
			"attempted", len(pending),
			"progress", progress)

		if !progress {
			s.state = StateDone
		}
	}

	return nil
}
