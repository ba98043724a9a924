package grid

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by Validate.
var (
	ErrTooShort         = errors.New("grid: energy axis needs at least 3 samples")
	ErrNotIncreasing    = errors.New("grid: energy axis must be strictly increasing")
	ErrNonUniformGrid   = errors.New("grid: energy sample spacings are inconsistent")
	ErrInvalidTolerance = errors.New("grid: tolerance must be finite and >= 0")
)

// MinSamples is the shortest axis Validate accepts.
const MinSamples = 3

// Grid describes a validated, uniformly spaced energy axis.
type Grid struct {
	Start float64 // energy of sample 0 in eV
	Step  float64 // nominal spacing energy[1]-energy[0] in eV
	Len   int     // number of samples
}

// Validate checks that energy is uniformly spaced within tol and returns the
// grid description. The nominal step is taken from the first two samples and
// every later step must lie within tol of it and stay positive. A NaN step is
// a spacing violation. The first offending step aborts
// validation; the returned error wraps ErrNonUniformGrid and names its index.
func Validate(energy []float64, tol float64) (Grid, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return Grid{}, fmt.Errorf("%w: %v", ErrInvalidTolerance, tol)
	}

	n := len(energy)
	if n < MinSamples {
		return Grid{}, fmt.Errorf("%w: got %d", ErrTooShort, n)
	}

	step := energy[1] - energy[0]
	if !(step > 0) {
		return Grid{}, fmt.Errorf("%w: first step %v", ErrNotIncreasing, step)
	}

	for i := 2; i < n; i++ {
		d := energy[i] - energy[i-1]
		if !(math.Abs(d-step) <= tol) {
			return Grid{}, &SpacingError{Index: i, Step: d, Nominal: step, Tol: tol}
		}
		if !(d > 0) {
			return Grid{}, fmt.Errorf("%w: step %v at index %d", ErrNotIncreasing, d, i)
		}
	}

	return Grid{Start: energy[0], Step: step, Len: n}, nil
}

// SpacingError reports the first step that deviates from the nominal spacing.
// It matches ErrNonUniformGrid under errors.Is.
type SpacingError struct {
	Index   int     // index i of the step energy[i]-energy[i-1]
	Step    float64 // observed step
	Nominal float64 // energy[1]-energy[0]
	Tol     float64
}

func (e *SpacingError) Error() string {
	return fmt.Sprintf("%v: step %d is %g, nominal %g (tol %g)",
		ErrNonUniformGrid, e.Index, e.Step, e.Nominal, e.Tol)
}

// Unwrap lets errors.Is match ErrNonUniformGrid.
func (e *SpacingError) Unwrap() error { return ErrNonUniformGrid }

// ShiftIndex converts an energy shift in eV into the nearest whole number of
// grid steps. Exact half steps round to even.
func (g Grid) ShiftIndex(delta float64) int {
	return int(math.RoundToEven(delta / g.Step))
}

// End returns the energy of the last sample on the nominal grid.
func (g Grid) End() float64 {
	if g.Len == 0 {
		return g.Start
	}

	return g.Start + float64(g.Len-1)*g.Step
}
