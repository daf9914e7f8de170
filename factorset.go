package lewis

import (
	"slices"
	"strconv"
	"strings"
)

// FactorSet holds the distinct factors recorded for one number.
// Factors are compared by value, so adding the same factor twice is a no-op.
type FactorSet map[int64]struct{}

// NewFactorSet builds a set from factors, collapsing repeats.
func NewFactorSet(factors ...int64) FactorSet {
	s := make(FactorSet, len(factors))
	for _, f := range factors {
		s.Add(f)
	}
	return s
}

// Add records f. It reports whether f was new.
func (s FactorSet) Add(f int64) bool {
	if _, ok := s[f]; ok {
		return false
	}
	s[f] = struct{}{}
	return true
}

func (s FactorSet) Has(f int64) bool {
	_, ok := s[f]
	return ok
}

func (s FactorSet) Len() int {
	return len(s)
}

// Sorted returns the factors in ascending numeric order.
func (s FactorSet) Sorted() []int64 {
	out := make([]int64, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// String renders the factors ascending, comma separated.
func (s FactorSet) String() string {
	return joinFactors(s.Sorted())
}

func joinFactors(factors []int64) string {
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = strconv.FormatInt(f, 10)
	}
	return strings.Join(parts, ", ")
}
