package testutil

import "math/rand"

// UniformGrid returns n energies start, start+step, ...
func UniformGrid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Perturb returns a copy of energy with sample i moved by offset.
func Perturb(energy []float64, i int, offset float64) []float64 {
	out := append([]float64(nil), energy...)
	if i >= 0 && i < len(out) {
		out[i] += offset
	}
	return out
}

// Spike returns a zero spectrum of length n with value amp at pos.
func Spike(n, pos int, amp float64) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = amp
	}
	return out
}

// Zeros returns a zero spectrum of length n.
func Zeros(n int) []float64 {
	return make([]float64, n)
}

// DeterministicSpectrum returns non-negative pseudo-random values in [0, amplitude)
// with a fixed seed, with the first sample forced to zero.
func DeterministicSpectrum(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := 1; i < n; i++ {
		out[i] = rng.Float64() * amplitude
	}
	return out
}
