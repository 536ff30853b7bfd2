// Command fibbench sweeps one or more Fibonacci algorithm/backend combos,
// validating each against the linear oracle and reporting the largest
// index it can reach within a time budget.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibnum/internal/benchmark"
	apperrors "github.com/agbru/fibnum/internal/errors"
	"github.com/agbru/fibnum/internal/logging"
	"github.com/agbru/fibnum/internal/metrics"
	"github.com/agbru/fibnum/internal/orchestration"
	"github.com/agbru/fibnum/internal/server"
	"github.com/agbru/fibnum/internal/sysmon"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out *os.File) int {
	fs := flag.NewFlagSet("fibbench", flag.ContinueOnError)
	comboFlag := fs.String("combo", "all", `comma-separated algo/backend pairs, or "all"`)
	hard := fs.Duration("hard-limit", 2*time.Second, "samples slower than this don't move the best index forward")
	width := fs.Int("width", 32, "digit width in bits: 8 or 32")
	serve := fs.Bool("serve-metrics", false, "expose /metrics on -listen while the sweep runs")
	listen := fs.String("listen", ":9101", "address for -serve-metrics")
	quiet := fs.Bool("quiet", false, "suppress the progress spinner")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitErrorConfig
	}

	logger := logging.New(false, *quiet)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(logger)
	if *serve {
		httpServer := &http.Server{Addr: *listen, Handler: srv.Mux()}
		go func() {
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("metrics server stopped")
			}
		}()
		defer httpServer.Close()
		fmt.Fprintf(out, "serving /metrics on %s\n", *listen)
	}

	combos := resolveCombos(*comboFlag)
	memCollector := metrics.NewMemoryCollector()
	exitCode := apperrors.ExitSuccess

	for _, combo := range combos {
		sp := newSweepSpinner(*quiet, combo.Name())
		sp.Start()

		limits := benchmark.DefaultLimits(*hard)
		before := memCollector.Snapshot()
		sysBefore := sysmon.Sample()

		start := time.Now()
		result := benchmark.Run(ctx, combo, *width, limits)
		srv.ObserveCalculation(time.Since(start).Seconds())

		sp.Stop()
		after := memCollector.Snapshot()
		sysAfter := sysmon.Sample()

		reportResult(out, result, before, after, sysBefore, sysAfter)
		if !result.Validated {
			exitCode = apperrors.ExitErrorMismatch
		}
	}

	return exitCode
}

func resolveCombos(spec string) []orchestration.Combo {
	if spec == "all" || spec == "" {
		return orchestration.CombosForConfig("all", "")
	}
	var combos []orchestration.Combo
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.SplitN(part, "/", 2)
		combo := orchestration.Combo{Algo: fields[0]}
		if len(fields) == 2 {
			combo.Backend = fields[1]
		}
		combos = append(combos, combo)
	}
	return combos
}

func newSweepSpinner(quiet bool, comboName string) *spinner.Spinner {
	w := io.Writer(os.Stderr)
	if quiet {
		w = io.Discard
	}
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = fmt.Sprintf(" sweeping %s...", comboName)
	return s
}

func reportResult(out *os.File, result benchmark.Result, before, after metrics.MemorySnapshot, sysBefore, sysAfter sysmon.Stats) {
	status := "OK"
	if !result.Validated {
		status = "MISMATCH"
	}
	fmt.Fprintf(out, "%s: %s, best=%d, samples=%d, heap %d -> %d bytes, cpu %.1f%% -> %.1f%%, mem %.1f%% -> %.1f%%\n",
		result.Combo.Name(), status, result.Best, len(result.Samples), before.HeapAlloc, after.HeapAlloc,
		sysBefore.CPUPercent, sysAfter.CPUPercent, sysBefore.MemPercent, sysAfter.MemPercent)
}
