package phs

import (
	"math"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-optics/dielectric/kk"
)

// DefaultEnergyTol is the default spacing tolerance in eV.
const DefaultEnergyTol = 1e-3

// Config holds the settings of a PHS run.
type Config struct {
	// EnergyTol is the allowed deviation of each grid step from the first one.
	EnergyTol float64
	// Regularizer is added to E in the denominator of (E-delta)/E. NaN means
	// "same as EnergyTol".
	Regularizer float64
	Workers     int
	Method      kk.Method
	Logger      *zap.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults: 1e-3 eV tolerance reused as regulariser,
// the paired integrator on all CPUs, and a no-op logger.
func DefaultConfig() Config {
	return Config{
		EnergyTol:   DefaultEnergyTol,
		Regularizer: math.NaN(),
		Workers:     kk.DefaultConfig().Workers,
		Method:      kk.MethodPaired,
		Logger:      zap.NewNop(),
	}
}

// WithEnergyTol sets the grid spacing tolerance.
func WithEnergyTol(tol float64) Option {
	return func(cfg *Config) {
		cfg.EnergyTol = tol
	}
}

// WithRegularizer decouples the Jacobian regulariser from the energy tolerance.
// Zero gives the unregularised factor (E-delta)/E.
func WithRegularizer(r float64) Option {
	return func(cfg *Config) {
		cfg.Regularizer = r
	}
}

// WithWorkers limits the number of goroutines used by the integrator.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithMethod selects the principal-value integration method.
func WithMethod(m kk.Method) Option {
	return func(cfg *Config) {
		cfg.Method = m
	}
}

// WithLogger sets the logger receiving diagnostics. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c Config) regularizer() float64 {
	if math.IsNaN(c.Regularizer) {
		return c.EnergyTol
	}
	return c.Regularizer
}
