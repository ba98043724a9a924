package kk

import "runtime"

// Method selects how the principal-value sums are evaluated.
type Method int

const (
	// MethodPaired walks outward from each pole in O(N²).
	MethodPaired Method = iota
	// MethodFFT evaluates the same sums with FFT convolutions in O(N log N).
	// It assumes the nominal grid energy[0] + i·step.
	MethodFFT
)

func (m Method) String() string {
	switch m {
	case MethodPaired:
		return "paired"
	case MethodFFT:
		return "fft"
	default:
		return "unknown"
	}
}

// ParseMethod returns the Method named s ("paired" or "fft").
func ParseMethod(s string) (Method, error) {
	switch s {
	case "paired", "":
		return MethodPaired, nil
	case "fft":
		return MethodFFT, nil
	default:
		return 0, ErrUnknownMethod
	}
}

// Config controls Integrate.
type Config struct {
	Method            Method
	Workers           int // maximum concurrent workers for MethodPaired
	ParallelThreshold int // spectra shorter than this run on the calling goroutine
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the paired method with one worker per available CPU.
func DefaultConfig() Config {
	return Config{
		Method:            MethodPaired,
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: 512,
	}
}

// WithMethod selects the evaluation method.
func WithMethod(m Method) Option {
	return func(cfg *Config) {
		cfg.Method = m
	}
}

// WithWorkers sets the worker limit. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithParallelThreshold sets the spectrum length from which work is spread
// across workers. Negative values are ignored.
func WithParallelThreshold(n int) Option {
	return func(cfg *Config) {
		if n >= 0 {
			cfg.ParallelThreshold = n
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
