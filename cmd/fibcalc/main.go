// Command fibcalc computes Fibonacci numbers with a choice of algorithm
// and multiplication backend, selectable by flag or FIBNUM_ environment
// variable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/fibnum/internal/benchmark"
	"github.com/agbru/fibnum/internal/bigint"
	"github.com/agbru/fibnum/internal/bigint/mul"
	"github.com/agbru/fibnum/internal/cli"
	"github.com/agbru/fibnum/internal/config"
	apperrors "github.com/agbru/fibnum/internal/errors"
	"github.com/agbru/fibnum/internal/fib"
	"github.com/agbru/fibnum/internal/logging"
	"github.com/agbru/fibnum/internal/orchestration"
	"github.com/agbru/fibnum/internal/ui"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("fibcalc", flag.ContinueOnError)
	noColor := fs.Bool("no-color", false, "disable ANSI color output")
	fs.SetOutput(stderr)

	cfg, err := config.ParseFlags(fs, args)
	if err != nil {
		if err == flag.ErrHelp {
			return apperrors.ExitSuccess
		}
		fmt.Fprintln(stderr, apperrors.NewConfigError("%v", err))
		return apperrors.ExitErrorConfig
	}

	ui.InitTheme(*noColor)
	logger := logging.New(cfg.Verbose, cfg.Quiet)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, cfg.Timeout)
	defer cancelTimeout()

	if !cfg.Quiet {
		cli.PrintExecutionConfig(cfg, stdout)
	}

	if cfg.Mode == config.ModePerf {
		return runPerf(ctx, cfg, stdout, logger)
	}

	if cfg.Algo != "all" && (cfg.Algo == config.AlgoLinear || cfg.Backend != config.BackendAuto) {
		return runSingle(cfg, stdout)
	}
	return runComparison(ctx, cfg, stdout)
}

// runSingle computes one concrete algorithm/backend combo directly, so
// CHECK mode can inspect the raw digit representation rather than just
// the decimal rendering orchestration.Run returns.
func runSingle(cfg config.AppConfig, out *os.File) int {
	backend := cfg.Backend
	if backend == config.BackendAuto {
		backend = config.SelectAutoBackend(cfg)
	}
	if cfg.Width == 8 {
		mulFn, err := backendFunc8(backend)
		if err != nil && cfg.Algo != config.AlgoLinear {
			fmt.Fprintln(out, err)
			return apperrors.ExitErrorConfig
		}
		return reportResult(computeAndReport8(cfg, mulFn), cfg, out)
	}
	mulFn, err := backendFunc32(backend)
	if err != nil && cfg.Algo != config.AlgoLinear {
		fmt.Fprintln(out, err)
		return apperrors.ExitErrorConfig
	}
	return reportResult(computeAndReport32(cfg, mulFn), cfg, out)
}

type computed struct {
	value      string
	digitCount int
	hex        string
}

func computeAndReport8(cfg config.AppConfig, mulFn func(lhs, rhs []uint8) []uint8) computed {
	var v bigint.Int[uint8]
	switch cfg.Algo {
	case config.AlgoLinear:
		v = fib.Linear[uint8](cfg.N)
	case config.AlgoMatrixSimple:
		v = fib.MatrixSimple[uint8](cfg.N, mulFn)
	case config.AlgoMatrixStrassen:
		v = fib.MatrixStrassen[uint8](cfg.N, mulFn)
	case config.AlgoGoldenRatio:
		v = fib.GoldenRatio[uint8](cfg.N, mulFn)
	}
	return computed{value: v.Render(cfg.Verbose), digitCount: len(v.Digits()), hex: v.HexDigits()}
}

func computeAndReport32(cfg config.AppConfig, mulFn func(lhs, rhs []uint32) []uint32) computed {
	var v bigint.Int[uint32]
	switch cfg.Algo {
	case config.AlgoLinear:
		v = fib.Linear[uint32](cfg.N)
	case config.AlgoMatrixSimple:
		v = fib.MatrixSimple[uint32](cfg.N, mulFn)
	case config.AlgoMatrixStrassen:
		v = fib.MatrixStrassen[uint32](cfg.N, mulFn)
	case config.AlgoGoldenRatio:
		v = fib.GoldenRatio[uint32](cfg.N, mulFn)
	}
	return computed{value: v.Render(cfg.Verbose), digitCount: len(v.Digits()), hex: v.HexDigits()}
}

func reportResult(c computed, cfg config.AppConfig, out *os.File) int {
	if cfg.Mode == config.ModeCheck {
		cli.PresentCheckDiagnostics(out, cfg.N, c.digitCount, cfg.Width, c.hex)
		return apperrors.ExitSuccess
	}
	outputCfg := cli.OutputConfig{OutputFile: cfg.OutputFile, Quiet: cfg.Quiet, Verbose: cfg.Verbose}
	combo := orchestration.Combo{Algo: cfg.Algo, Backend: cfg.Backend}
	if err := cli.DisplayResultWithConfig(out, c.value, cfg.N, 0, combo.Name(), outputCfg); err != nil {
		fmt.Fprintln(out, err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runComparison runs every matching combo concurrently (algo=all, or a
// single algorithm with backend=auto widened across backends) and prints
// a comparison table before reporting the reconciled value.
func runComparison(ctx context.Context, cfg config.AppConfig, out *os.File) int {
	combos := orchestration.CombosForConfig(cfg.Algo, cfg.Backend)
	results := orchestration.Run(ctx, combos, cfg.N, cfg.Width)
	if !cfg.Quiet {
		cli.PresentComparisonTable(results, out)
	}
	value, exitCode := orchestration.Reconcile(results)
	if exitCode != apperrors.ExitSuccess {
		return exitCode
	}
	outputCfg := cli.OutputConfig{OutputFile: cfg.OutputFile, Quiet: cfg.Quiet, Verbose: cfg.Verbose}
	if err := cli.DisplayResultWithConfig(out, value, cfg.N, 0, "reconciled", outputCfg); err != nil {
		fmt.Fprintln(out, err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func runPerf(ctx context.Context, cfg config.AppConfig, out *os.File, logger zerolog.Logger) int {
	combo := orchestration.Combo{Algo: cfg.Algo, Backend: cfg.Backend}
	limits := benchmark.DefaultLimits(cfg.Timeout)
	logger.Info().Str("combo", combo.Name()).Msg("starting perf sweep")
	result := benchmark.Run(ctx, combo, cfg.Width, limits)

	if !result.Validated {
		fmt.Fprintf(out, "validation against the linear oracle FAILED for %s\n", combo.Name())
		return apperrors.ExitErrorMismatch
	}
	fmt.Fprintf(out, "%s: validated, best index within %s: %d (%d samples)\n",
		combo.Name(), cfg.Timeout, result.Best, len(result.Samples))
	return apperrors.ExitSuccess
}

func backendFunc8(name string) (func(lhs, rhs []uint8) []uint8, error) {
	switch name {
	case config.BackendSchoolbook:
		return mul.Schoolbook[uint8], nil
	case config.BackendKaratsuba:
		return mul.Karatsuba[uint8], nil
	case config.BackendDFT:
		return mul.DFT, nil
	case config.BackendFFT:
		return mul.FFT, nil
	default:
		return nil, apperrors.NewConfigError("unknown backend %q for width 8", name)
	}
}

func backendFunc32(name string) (func(lhs, rhs []uint32) []uint32, error) {
	switch name {
	case config.BackendSchoolbook:
		return mul.Schoolbook[uint32], nil
	case config.BackendKaratsuba:
		return mul.Karatsuba[uint32], nil
	default:
		return nil, apperrors.NewConfigError("backend %q requires width 8", name)
	}
}
