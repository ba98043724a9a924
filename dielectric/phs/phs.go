package phs

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-optics/dielectric/grid"
	"github.com/cwbudde/algo-optics/dielectric/kk"
	"github.com/cwbudde/algo-optics/dielectric/shift"
)

// Errors returned by PHS.
var (
	ErrInvalidLength  = errors.New("phs: arrLen must be positive")
	ErrLengthMismatch = errors.New("phs: energy, eps1 and eps2 must have length arrLen")

	// ErrNonUniformGrid is returned when the energy spacing is inconsistent.
	ErrNonUniformGrid = grid.ErrNonUniformGrid
)

// PHS returns the PHS-corrected real and imaginary parts of a dielectric
// function for a band-gap shift delta (eV).
//
// arrLen must equal the length of energy, eps1 and eps2. eps1 is accepted for
// interface compatibility only: the real part is rebuilt entirely from the
// shifted imaginary part and eps1 is never read.
//
// On failure both outputs are nil and err describes the problem; an
// inconsistent grid spacing matches ErrNonUniformGrid under errors.Is and is
// also reported to the configured logger.
func PHS(arrLen int, energy, eps1, eps2 []float64, delta float64, opts ...Option) (eps1PHS, eps2PHS []float64, err error) {
	cfg := ApplyOptions(opts...)
	log := cfg.Logger

	if arrLen <= 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidLength, arrLen)
	}

	if len(energy) != arrLen || len(eps1) != arrLen || len(eps2) != arrLen {
		return nil, nil, fmt.Errorf("%w: arrLen %d, energy %d, eps1 %d, eps2 %d",
			ErrLengthMismatch, arrLen, len(energy), len(eps1), len(eps2))
	}

	g, err := grid.Validate(energy, cfg.EnergyTol)
	if err != nil {
		var se *grid.SpacingError
		if errors.As(err, &se) {
			log.Warn("phs: energy sample spacings are inconsistent",
				zap.Int("index", se.Index),
				zap.Float64("step", se.Step),
				zap.Float64("nominal", se.Nominal),
				zap.Float64("tol", se.Tol))
		} else {
			log.Warn("phs: invalid energy grid", zap.Error(err))
		}
		return nil, nil, fmt.Errorf("phs: %w", err)
	}

	start := time.Now()
	di := g.ShiftIndex(delta)

	eps2PHS, err = shift.Shift(energy, eps2, delta, di, cfg.regularizer())
	if err != nil {
		return nil, nil, fmt.Errorf("phs: %w", err)
	}

	eps1PHS, err = kk.Integrate(energy, eps2PHS, g.Step,
		kk.WithMethod(cfg.Method),
		kk.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, nil, fmt.Errorf("phs: %w", err)
	}

	log.Debug("phs: corrected spectrum",
		zap.Int("samples", arrLen),
		zap.Float64("grid_start", g.Start),
		zap.Float64("grid_end", g.End()),
		zap.Float64("delta", delta),
		zap.Int("index_shift", di),
		zap.Stringer("method", cfg.Method),
		zap.Duration("elapsed", time.Since(start)))

	return eps1PHS, eps2PHS, nil
}

// Spectrum bundles a dielectric function sampled on an energy grid (eV).
type Spectrum struct {
	Energy []float64
	Eps1   []float64
	Eps2   []float64
}

// Len returns the number of samples.
func (s Spectrum) Len() int { return len(s.Energy) }

// Apply returns the PHS-corrected spectrum on the same energy axis. The
// returned Energy slice is a copy.
func Apply(s Spectrum, delta float64, opts ...Option) (Spectrum, error) {
	eps1PHS, eps2PHS, err := PHS(s.Len(), s.Energy, s.Eps1, s.Eps2, delta, opts...)
	if err != nil {
		return Spectrum{}, err
	}

	return Spectrum{
		Energy: append([]float64(nil), s.Energy...),
		Eps1:   eps1PHS,
		Eps2:   eps2PHS,
	}, nil
}
