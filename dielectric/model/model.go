// Package model evaluates analytic dielectric functions.
//
// A sum of Lorentz oscillators has real and imaginary parts that form an exact
// Kramers–Kronig pair, which makes it a reference for checking numerical
// transforms and a convenient input for demonstrations.
package model

import (
	"errors"
	"fmt"
)

// ErrInvalidOscillator is returned for oscillators with non-positive energy or
// negative broadening.
var ErrInvalidOscillator = errors.New("model: oscillator energy must be > 0 and broadening >= 0")

// Lorentz is a single damped oscillator contributing
// S·E0²/(E0² − E² − iΓE) to the dielectric function.
type Lorentz struct {
	Energy     float64 `yaml:"energy"`     // resonance E0 in eV
	Broadening float64 `yaml:"broadening"` // damping Γ in eV
	Strength   float64 `yaml:"strength"`   // dimensionless oscillator strength S
}

// Validate reports whether the oscillator parameters are usable.
func (l Lorentz) Validate() error {
	if !(l.Energy > 0) || l.Broadening < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidOscillator, l)
	}
	return nil
}

// At returns the oscillator's contribution (real, imaginary) at energy e.
func (l Lorentz) At(e float64) (re, im float64) {
	e02 := l.Energy * l.Energy
	d := e02 - e*e
	g := l.Broadening * e
	den := d*d + g*g
	if den == 0 {
		return 0, 0
	}
	k := l.Strength * e02 / den
	return k * d, k * g
}

// Grid returns n energies start, start+step, ...
func Grid(start, step float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Evaluate returns eps1 and eps2 of 1 + Σ oscillators on the energy grid.
func Evaluate(oscs []Lorentz, energy []float64) (eps1, eps2 []float64, err error) {
	for _, o := range oscs {
		if err := o.Validate(); err != nil {
			return nil, nil, err
		}
	}

	eps1 = make([]float64, len(energy))
	eps2 = make([]float64, len(energy))
	for i, e := range energy {
		eps1[i] = 1
		for _, o := range oscs {
			re, im := o.At(e)
			eps1[i] += re
			eps2[i] += im
		}
	}

	return eps1, eps2, nil
}
