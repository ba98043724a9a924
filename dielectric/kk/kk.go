package kk

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
)

// Errors returned by Integrate.
var (
	ErrEmpty          = errors.New("kk: spectrum is empty")
	ErrLengthMismatch = errors.New("kk: energy and eps2 must have same length")
	ErrInvalidStep    = errors.New("kk: step must be finite and > 0")
	ErrUnknownMethod  = errors.New("kk: unknown method")
)

// chunksPerWorker over-partitions the sample range so that workers finishing
// early pick up more work.
const chunksPerWorker = 4

// Integrand is the principal-value integrand E'·v / (E'² − E²), where ep is
// the neighbouring energy, e the pole energy and v = eps2(ep).
func Integrand(ep, e, v float64) float64 {
	return ep * v / (ep*ep - e*e)
}

// Integrate returns eps1 reconstructed from eps2 on the energy grid with the
// given step. The result is freshly allocated; inputs are not modified.
func Integrate(energy, eps2 []float64, step float64, opts ...Option) ([]float64, error) {
	if err := validate(energy, eps2, step); err != nil {
		return nil, err
	}

	cfg := ApplyOptions(opts...)

	switch cfg.Method {
	case MethodPaired:
		in := newIntegrator(energy, eps2, step)
		out := make([]float64, len(energy))
		if err := in.run(out, cfg.Workers, cfg.ParallelThreshold); err != nil {
			return nil, err
		}
		return out, nil
	case MethodFFT:
		return integrateFFT(energy, eps2, step)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(cfg.Method))
	}
}

// Sample returns eps1 at index s using the paired method.
func Sample(energy, eps2 []float64, step float64, s int) (float64, error) {
	if err := validate(energy, eps2, step); err != nil {
		return 0, err
	}

	if s < 0 || s >= len(energy) {
		return 0, fmt.Errorf("kk: sample index %d out of range [0,%d)", s, len(energy))
	}

	in := newIntegrator(energy, eps2, step)
	// The conversion keeps the product from fusing with the addition, so the
	// result matches Integrate bit for bit.
	scaled := float64(in.sum(s) * in.scale)
	return scaled + 1, nil
}

// Scale is the factor applied to the weighted sum: the trapezoid half step
// folded together with the 2/π Kramers–Kronig prefactor.
func Scale(step float64) float64 {
	return 2 / math.Pi * step / 2
}

func validate(energy, eps2 []float64, step float64) error {
	if len(energy) == 0 {
		return ErrEmpty
	}

	if len(eps2) != len(energy) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(energy), len(eps2))
	}

	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}

	return nil
}

type integrator struct {
	energy []float64
	eps2   []float64
	scale  float64
	f      func(ep, e, v float64) float64
}

func newIntegrator(energy, eps2 []float64, step float64) *integrator {
	return &integrator{
		energy: energy,
		eps2:   eps2,
		scale:  Scale(step),
		f:      Integrand,
	}
}

// sum returns the weighted trapezoid sum for pole index s, before scaling.
func (in *integrator) sum(s int) float64 {
	e := in.energy[s]
	w := newPairWalk(s, len(in.energy))

	var acc float64
	for {
		lo, hi, ok := w.next()
		if !ok {
			return acc
		}

		switch {
		case hi < 0:
			acc += 2 * in.f(in.energy[lo], e, in.eps2[lo])
		case lo < 0:
			acc += 2 * in.f(in.energy[hi], e, in.eps2[hi])
		default:
			pair := 2*in.f(in.energy[lo], e, in.eps2[lo]) +
				2*in.f(in.energy[hi], e, in.eps2[hi])
			acc += pair
		}
	}
}

// fill computes dst[j] = eps1[from+j].
func (in *integrator) fill(dst []float64, from int) {
	for j := range dst {
		dst[j] = in.sum(from + j)
	}

	vecmath.ScaleBlockInPlace(dst, in.scale)

	for j := range dst {
		dst[j]++
	}
}

// run fills out, splitting the sample range into contiguous chunks when the
// spectrum is long enough. Each chunk writes only its own slots.
func (in *integrator) run(out []float64, workers, threshold int) error {
	n := len(out)
	if workers <= 1 || n < threshold || n < 2 {
		in.fill(out, 0)
		return nil
	}

	chunk := max(1, (n+workers*chunksPerWorker-1)/(workers*chunksPerWorker))

	var g errgroup.Group
	g.SetLimit(workers)

	for from := 0; from < n; from += chunk {
		to := min(from+chunk, n)
		g.Go(func() error {
			in.fill(out[from:to], from)
			return nil
		})
	}

	return g.Wait()
}
