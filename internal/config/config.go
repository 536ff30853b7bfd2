// Package config resolves the driver CLI's settings from flags and
// FIBNUM_-prefixed environment variables, in that priority order, with
// hardware-adaptive fallbacks for the backend-switch thresholds.
package config

import (
	"flag"
	"fmt"
	"time"
)

// EnvPrefix namespaces every environment variable this package reads.
const EnvPrefix = "FIBNUM_"

// Algorithm names accepted by --algo.
const (
	AlgoLinear         = "linear"
	AlgoMatrixSimple   = "matrix-simple"
	AlgoMatrixStrassen = "matrix-strassen"
	AlgoGoldenRatio    = "golden"
)

// Backend names accepted by --backend. AlgoLinear ignores this setting.
const (
	BackendAuto       = "auto"
	BackendSchoolbook = "schoolbook"
	BackendKaratsuba  = "karatsuba"
	BackendDFT        = "dft"
	BackendFFT        = "fft"
)

// Output modes accepted by --mode.
const (
	ModeValue = "value" // print the computed decimal value
	ModeCheck = "check"  // print width/digit-count/hex diagnostics instead of the value
	ModePerf  = "perf"   // run the benchmark sweep instead of a single calculation
)

// AppConfig holds the fully-resolved configuration for one driver-CLI
// invocation. Zero value is not meaningful; build one with NewDefaultConfig
// and ParseFlags.
type AppConfig struct {
	N       uint64
	Algo    string
	Backend string
	Width   int // digit width in bits: 8, 16, or 32
	Mode    string
	Timeout time.Duration

	KaratsubaThreshold int // digit count above which auto backend picks Karatsuba over schoolbook
	FFTThreshold       int // digit count above which auto backend picks FFT over Karatsuba

	OutputFile string
	Verbose    bool
	Quiet      bool
}

// NewDefaultConfig returns the configuration used when no flags or
// environment variables override it.
func NewDefaultConfig() AppConfig {
	return AppConfig{
		N:       10,
		Algo:    AlgoMatrixStrassen,
		Backend: BackendAuto,
		Width:   32,
		Mode:    ModeValue,
		Timeout: 30 * time.Second,
	}
}

// ParseFlags parses args against fs, layers FIBNUM_ environment overrides
// onto any flag left at its default, then applies hardware-adaptive
// threshold estimation to any threshold still at zero.
func ParseFlags(fs *flag.FlagSet, args []string) (AppConfig, error) {
	cfg := NewDefaultConfig()

	fs.Uint64Var(&cfg.N, "n", cfg.N, "Fibonacci index to compute")
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, "algorithm: linear, matrix-simple, matrix-strassen, golden, all")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "multiplication backend: auto, schoolbook, karatsuba, dft, fft")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "digit width in bits: 8, 16, or 32")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "output mode: value, check, perf")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall deadline for the computation")
	fs.IntVar(&cfg.KaratsubaThreshold, "karatsuba-threshold", cfg.KaratsubaThreshold, "digit-count threshold for auto backend to prefer Karatsuba (0 = estimate)")
	fs.IntVar(&cfg.FFTThreshold, "fft-threshold", cfg.FFTThreshold, "digit-count threshold for auto backend to prefer FFT (0 = estimate)")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "also write the result to this file")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print the value in full, add the combo and duration, and set the log level to debug")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress all non-error logging")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)
	cfg = ApplyAdaptiveThresholds(cfg)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that would make no sense to execute.
func (c AppConfig) Validate() error {
	switch c.Width {
	case 8, 16, 32:
	default:
		return fmt.Errorf("width must be 8, 16, or 32, got %d", c.Width)
	}
	switch c.Algo {
	case AlgoLinear, AlgoMatrixSimple, AlgoMatrixStrassen, AlgoGoldenRatio, "all":
	default:
		return fmt.Errorf("unknown algorithm %q", c.Algo)
	}
	switch c.Backend {
	case BackendAuto, BackendSchoolbook, BackendKaratsuba, BackendDFT, BackendFFT:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if (c.Backend == BackendDFT || c.Backend == BackendFFT) && c.Width != 8 {
		return fmt.Errorf("backend %q requires width 8", c.Backend)
	}
	switch c.Mode {
	case ModeValue, ModeCheck, ModePerf:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}
