package lewis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestScan_WorkerCountDoesNotChangeResults compares parallel runs against the sequential one.
func TestScan_WorkerCountDoesNotChangeResults(t *testing.T) {
	for _, base := range []int64{1, 4, 97, 10007, 20123} {
		sequential, err := newTestSieve(t, base, 1).Run()
		require.NoError(t, err)

		for _, workers := range []int{0, 2, 3, 8, 64} {
			parallel, err := newTestSieve(t, base, workers).Run()
			require.NoError(t, err)

			if !SameFindings(sequential, parallel) {
				t.Errorf("base %d: workers=%d disagrees with sequential run", base, workers)
			}
		}
	}
}

func TestScan_PreservesPositions(t *testing.T) {
	s := newTestSieve(t, 100, 4)

	nums := []int64{83, 84, 85, 86, 87, 88, 89}
	got, err := s.scan(nums, s.distinctDivisors)
	require.NoError(t, err)

	want := [][]int64{nil, {2, 3, 7}, {5, 17}, {2}, {3}, {2, 11}, nil}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_Empty(t *testing.T) {
	s := newTestSieve(t, 100, 8)

	got, err := s.scan(nil, s.distinctDivisors)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFactorWithMultiplicity(t *testing.T) {
	s := newTestSieve(t, 100, 1) // primes below 20

	tests := []struct {
		n    int64
		want []int64
	}{
		{n: 96, want: []int64{2, 2, 2, 2, 2, 3}},
		{n: 100, want: []int64{2, 2, 5, 5}},
		{n: 115, want: []int64{5}},
		{n: 97, want: nil},
		{n: 1, want: nil},
		{n: 0, want: []int64{2, 3, 5, 7, 11, 13, 17, 19}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, s.factorWithMultiplicity(tt.n)); diff != "" {
			t.Errorf("factorWithMultiplicity(%d) mismatch (-want +got):\n%s", tt.n, diff)
		}
	}
}
