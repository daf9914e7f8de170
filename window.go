package lewis

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidBase is returned when the base number cannot anchor a window.
	ErrInvalidBase = errors.New("lewis: base number must be a positive integer")

	// ErrWindowOverflow is returned when the window's upper bound does not fit in an int64.
	ErrWindowOverflow = errors.New("lewis: window exceeds int64 range")
)

// Window is the contiguous range of integers factored around a base number.
//
//	Size  = 2 * floor(sqrt(Base))
//	Lower = Base - Size
//	Upper = Base + Size
//
// Invariant: Lower <= Base <= Upper. A Window is immutable once built.
type Window struct {
	Base  int64 `json:"base"`  // Center of the window
	Size  int64 `json:"size"`  // Half-width, also the exclusive prime bound
	Lower int64 `json:"lower"` // Inclusive
	Upper int64 `json:"upper"` // Inclusive
}

// NewWindow derives the window for base.
func NewWindow(base int64) (Window, error) {
	if base < 1 {
		return Window{}, fmt.Errorf("%w: got %d", ErrInvalidBase, base)
	}

	size := 2 * isqrt(base)
	if base > math.MaxInt64-size {
		return Window{}, fmt.Errorf("%w: base %d + size %d", ErrWindowOverflow, base, size)
	}

	return Window{
		Base:  base,
		Size:  size,
		Lower: base - size,
		Upper: base + size,
	}, nil
}

// Len returns the number of integers in the window.
func (w Window) Len() int {
	return int(w.Upper - w.Lower + 1)
}

// Contains reports whether n lies inside the window.
func (w Window) Contains(n int64) bool {
	return n >= w.Lower && n <= w.Upper
}

// offset maps a window member onto a zero-based slot.
func (w Window) offset(n int64) int {
	return int(n - w.Lower)
}

func (w Window) String() string {
	return fmt.Sprintf("[%d, %d] (base %d, size %d)", w.Lower, w.Upper, w.Base, w.Size)
}

// isqrt returns floor(sqrt(n)) for n >= 0 without float rounding error.
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}

	// floor(sqrt(MaxInt64)); squaring anything larger overflows
	const maxRoot = 3037000499

	r := min(int64(math.Sqrt(float64(n))), maxRoot)
	// Float sqrt can be off by one in either direction for large n
	for r*r > n {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
