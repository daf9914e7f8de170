package lewis

import (
	"golang.org/x/sync/errgroup"
)

// scan applies fn to every number and returns the results by position.
//
// With more than one worker the numbers are split into contiguous chunks
// handled by separate goroutines. fn must only read shared state; each
// goroutine writes only its own result slots, and the caller applies the
// results to the factor map afterwards, in order. The output is therefore
// identical for every worker count.
func (s *Sieve) scan(nums []int64, fn func(int64) []int64) ([][]int64, error) {
	out := make([][]int64, len(nums))

	workers := s.cfg.workers()
	if workers == 1 || len(nums) < 2 {
		for i, n := range nums {
			out[i] = fn(n)
		}
		return out, nil
	}

	chunk := (len(nums) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(nums); start += chunk {
		end := min(start+chunk, len(nums))
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = fn(nums[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
