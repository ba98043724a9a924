// Package optics derives optical constants from a complex dielectric function
// ε = ε1 + iε2.
package optics

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// HC is Planck's constant times the speed of light in eV·cm, so that the
// vacuum wavelength of a photon of energy E (eV) is HC/E cm.
const HC = 1.23984198e-4

// Errors returned by FromDielectric.
var (
	ErrEmpty          = errors.New("optics: spectrum is empty")
	ErrLengthMismatch = errors.New("optics: energy, eps1 and eps2 must have same length")
)

// Constants holds optical constants sampled on the energy grid they were
// derived from.
type Constants struct {
	N            []float64 // refractive index
	K            []float64 // extinction coefficient
	Absorption   []float64 // absorption coefficient α in 1/cm
	Reflectivity []float64 // normal-incidence reflectivity from vacuum
}

// FromDielectric computes n, k, α and R at every energy (eV).
func FromDielectric(energy, eps1, eps2 []float64) (Constants, error) {
	n := len(energy)
	if n == 0 {
		return Constants{}, ErrEmpty
	}

	if len(eps1) != n || len(eps2) != n {
		return Constants{}, fmt.Errorf("%w: %d, %d, %d", ErrLengthMismatch, n, len(eps1), len(eps2))
	}

	mod := make([]float64, n)
	vecmath.Magnitude(mod, eps1, eps2)

	c := Constants{
		N:            make([]float64, n),
		K:            make([]float64, n),
		Absorption:   make([]float64, n),
		Reflectivity: make([]float64, n),
	}

	for i := range energy {
		// Rounding can push |ε|±ε1 a hair below zero.
		c.N[i] = math.Sqrt(math.Max(0, (mod[i]+eps1[i])/2))
		c.K[i] = math.Sqrt(math.Max(0, (mod[i]-eps1[i])/2))
		c.Absorption[i] = Absorption(c.K[i], energy[i])
		c.Reflectivity[i] = Reflectivity(c.N[i], c.K[i])
	}

	return c, nil
}

// Absorption returns α = 4πk/λ in 1/cm for extinction coefficient k at photon
// energy e (eV).
func Absorption(k, e float64) float64 {
	return 4 * math.Pi * k * e / HC
}

// Reflectivity returns ((n−1)²+k²)/((n+1)²+k²).
func Reflectivity(n, k float64) float64 {
	num := (n-1)*(n-1) + k*k
	den := (n+1)*(n+1) + k*k
	if den == 0 {
		return 0
	}
	return num / den
}
