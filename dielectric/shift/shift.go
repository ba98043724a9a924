package shift

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by Shift.
var (
	ErrEmpty           = errors.New("shift: spectrum is empty")
	ErrLengthMismatch  = errors.New("shift: energy and eps2 must have same length")
	ErrShiftOutOfRange = errors.New("shift: index shift exceeds spectrum length")
)

// Shift returns eps2 moved by di grid steps (di = round(delta/dE)) and scaled by
// (E-delta)/(E+regularizer).
//
// For di >= 0 the first di samples take the value of sample di; for di < 0 the
// last |di| samples take the value of sample N+di-1. The inputs are not modified.
func Shift(energy, eps2 []float64, delta float64, di int, regularizer float64) ([]float64, error) {
	n := len(energy)
	if n == 0 {
		return nil, ErrEmpty
	}

	if len(eps2) != n {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(eps2))
	}

	if di >= n || -di >= n {
		return nil, fmt.Errorf("%w: %d steps on %d samples", ErrShiftOutOfRange, di, n)
	}

	lo, hi := ValidRange(n, di)
	out := make([]float64, n)

	factors := make([]float64, hi-lo)
	Jacobian(factors, energy[lo:hi], delta, regularizer)
	vecmath.MulBlock(out[lo:hi], factors, eps2[lo-di:hi-di])

	if di >= 0 {
		for i := 0; i < lo; i++ {
			out[i] = out[lo]
		}
	} else {
		for i := hi; i < n; i++ {
			out[i] = out[hi-1]
		}
	}

	return out, nil
}

// ValidRange returns the output indices [lo, hi) that have a source sample
// eps2[i-di] on a grid of n samples.
func ValidRange(n, di int) (lo, hi int) {
	if di >= 0 {
		return min(di, n), n
	}

	return 0, max(n+di, 0)
}

// Jacobian fills dst with (energy[i]-delta)/(energy[i]+regularizer).
// dst and energy must have the same length.
func Jacobian(dst, energy []float64, delta, regularizer float64) {
	if len(dst) != len(energy) {
		panic("shift: Jacobian length mismatch")
	}

	for i, e := range energy {
		dst[i] = (e - delta) / (e + regularizer)
	}
}
