// Package orchestration runs one or more Fibonacci algorithm/backend
// combinations concurrently and reconciles their results, so --algo=all
// and the benchmark harness's cross-checks share one code path.
package orchestration

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibnum/internal/bigint/mul"
	apperrors "github.com/agbru/fibnum/internal/errors"
	"github.com/agbru/fibnum/internal/fib"
)

// Combo names one algorithm/backend pairing to run.
type Combo struct {
	Algo    string
	Backend string
}

func (c Combo) Name() string {
	if c.Backend == "" {
		return c.Algo
	}
	return c.Algo + "/" + c.Backend
}

// CalculationResult is the outcome of running one Combo.
type CalculationResult struct {
	Combo    Combo
	Value    string // decimal rendering, only populated on success
	Duration time.Duration
	Err      error
}

// backendFunc32 resolves a backend name to a uint32-digit multiplication
// function. The transform-based backends only operate on byte digits, so
// this set is narrower than backendFunc8's.
func backendFunc32(name string) (func(lhs, rhs []uint32) []uint32, error) {
	switch name {
	case "schoolbook":
		return mul.Schoolbook[uint32], nil
	case "karatsuba":
		return mul.Karatsuba[uint32], nil
	default:
		return nil, fmt.Errorf("backend %q requires width 8", name)
	}
}

func backendFunc8(name string) (func(lhs, rhs []uint8) []uint8, error) {
	switch name {
	case "schoolbook":
		return mul.Schoolbook[uint8], nil
	case "karatsuba":
		return mul.Karatsuba[uint8], nil
	case "dft":
		return mul.DFT, nil
	case "fft":
		return mul.FFT, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

// runOne executes a single combo against Fibonacci index n. Width 8 runs
// on byte digits; every other width runs on uint32 digits.
func runOne(combo Combo, n uint64, width int) (string, error) {
	if combo.Algo == "linear" {
		return fib.Linear[uint32](n).String(), nil
	}

	if width == 8 {
		mulFn, err := backendFunc8(combo.Backend)
		if err != nil {
			return "", err
		}
		switch combo.Algo {
		case "matrix-simple":
			return fib.MatrixSimple[uint8](n, mulFn).String(), nil
		case "matrix-strassen":
			return fib.MatrixStrassen[uint8](n, mulFn).String(), nil
		case "golden":
			return fib.GoldenRatio[uint8](n, mulFn).String(), nil
		default:
			return "", fmt.Errorf("unknown algorithm %q", combo.Algo)
		}
	}

	mulFn, err := backendFunc32(combo.Backend)
	if err != nil {
		return "", err
	}
	switch combo.Algo {
	case "matrix-simple":
		return fib.MatrixSimple[uint32](n, mulFn).String(), nil
	case "matrix-strassen":
		return fib.MatrixStrassen[uint32](n, mulFn).String(), nil
	case "golden":
		return fib.GoldenRatio[uint32](n, mulFn).String(), nil
	default:
		return "", fmt.Errorf("unknown algorithm %q", combo.Algo)
	}
}

// Run executes every combo concurrently. A combo's own error never cancels
// its siblings — each result is recorded independently so a comparison
// table can still show which combos succeeded — but ctx cancellation short
// circuits any combo still waiting to start.
func Run(ctx context.Context, combos []Combo, n uint64, width int) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(combos))

	for i, combo := range combos {
		idx, combo := i, combo
		g.Go(func() error {
			start := time.Now()
			select {
			case <-ctx.Done():
				results[idx] = CalculationResult{Combo: combo, Err: ctx.Err()}
				return nil
			default:
			}
			value, err := runOne(combo, n, width)
			results[idx] = CalculationResult{Combo: combo, Value: value, Duration: time.Since(start), Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Reconcile sorts results (successes first, fastest first), checks that
// every successful result agrees on the same value, and returns the
// canonical value plus an exit code in the apperrors convention.
func Reconcile(results []CalculationResult) (value string, exitCode int) {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var first *CalculationResult
	for i := range results {
		if results[i].Err == nil {
			first = &results[i]
			break
		}
	}
	if first == nil {
		for _, r := range results {
			if apperrors.IsContextError(r.Err) {
				return "", apperrors.ExitErrorTimeout
			}
		}
		return "", apperrors.ExitErrorGeneric
	}
	for _, r := range results {
		if r.Err == nil && r.Value != first.Value {
			return "", apperrors.ExitErrorMismatch
		}
	}
	return first.Value, apperrors.ExitSuccess
}
