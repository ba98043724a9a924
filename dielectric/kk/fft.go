package kk

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// minFFTSamples is the shortest spectrum integrateFFT transforms; shorter
// spectra go through the paired walk.
const minFFTSamples = 8

// integrateFFT evaluates the paired sums with convolutions.
//
// With E_i = E_0 + i·h, each weighted term 2·E_j·v_j/(E_j² − E_i²) splits into
// v_j/((j−i)·h) + v_j/(2E_0 + (i+j)·h). The first is a Toeplitz sum, a
// convolution of v with -1/(m·h); the second is a Hankel sum, a convolution of
// reversed v with 1/(2E_0 + k·h). The self term j = i and, for 2i >= N, the
// j = 0 term are subtracted so the sums cover exactly the samples the paired
// walk visits.
//
// A Hankel denominator vanishes only where E_i = -E_j. On a grid starting at
// 0 eV that is the i = j = 0 pole, whose kernel entry is zeroed. Grids starting
// below zero mirror samples across the origin, so they go through the paired
// walk.
func integrateFFT(energy, eps2 []float64, step float64) ([]float64, error) {
	n := len(energy)
	if n < minFFTSamples || energy[0] < 0 {
		in := newIntegrator(energy, eps2, step)
		out := make([]float64, n)
		in.fill(out, 0)
		return out, nil
	}

	fftSize := nextPowerOf2(3*n - 2)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("kk: failed to create FFT plan: %w", err)
	}

	e0 := energy[0]
	hankel := func(k int) float64 {
		den := 2*e0 + float64(k)*step
		if den == 0 {
			return 0
		}
		return 1 / den
	}

	vPadded := make([]complex128, fftSize)
	vRevPadded := make([]complex128, fftSize)
	for j, v := range eps2 {
		vPadded[j] = complex(v, 0)
		vRevPadded[n-1-j] = complex(v, 0)
	}

	// Toeplitz kernel -1/(m·h) for m in [-(n-1), n-1], stored at m+n-1.
	toeplitz := make([]complex128, fftSize)
	for m := -(n - 1); m < n; m++ {
		if m != 0 {
			toeplitz[m+n-1] = complex(-1/(float64(m)*step), 0)
		}
	}

	hankelKernel := make([]complex128, fftSize)
	for k := 0; k <= 2*(n-1); k++ {
		hankelKernel[k] = complex(hankel(k), 0)
	}

	diff, err := convolve(plan, vPadded, toeplitz)
	if err != nil {
		return nil, err
	}

	sum, err := convolve(plan, vRevPadded, hankelKernel)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		s := real(diff[i+n-1]) + real(sum[i+n-1]) - eps2[i]*hankel(2*i)
		if 2*i >= n {
			s -= eps2[0] * (-1/(float64(i)*step) + hankel(i))
		}

		out[i] = s
	}

	vecmath.ScaleBlockInPlace(out, Scale(step))

	for i := range out {
		out[i]++
	}

	return out, nil
}

// convolve returns the circular convolution of a and b. Both must be padded to
// the plan size so that no wrap-around reaches the indices read back.
func convolve(plan *algofft.Plan[complex128], a, b []complex128) ([]complex128, error) {
	size := len(a)
	aFreq := make([]complex128, size)
	bFreq := make([]complex128, size)

	if err := plan.Forward(aFreq, a); err != nil {
		return nil, fmt.Errorf("kk: forward FFT: %w", err)
	}

	if err := plan.Forward(bFreq, b); err != nil {
		return nil, fmt.Errorf("kk: forward FFT: %w", err)
	}

	for i := range aFreq {
		aFreq[i] *= bFreq[i]
	}

	out := make([]complex128, size)
	if err := plan.Inverse(out, aFreq); err != nil {
		return nil, fmt.Errorf("kk: inverse FFT: %w", err)
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
