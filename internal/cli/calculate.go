package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/fibnum/internal/config"
	"github.com/agbru/fibnum/internal/ui"
)

// PrintExecutionConfig displays the resolved configuration before running
// a calculation: the target index, timeout, environment, and the
// backend-switch thresholds in force for this invocation.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Calculating %sF(%d)%s via %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorPrimary(), cfg.N, ui.ColorReset(),
		ui.ColorSuccess(), cfg.Algo, ui.ColorReset(),
		ui.ColorWarning(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorPrimary(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorPrimary(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Backend-switch thresholds: Karatsuba=%s%d%s digits, FFT=%s%d%s digits.\n",
		ui.ColorPrimary(), cfg.KaratsubaThreshold, ui.ColorReset(),
		ui.ColorPrimary(), cfg.FFTThreshold, ui.ColorReset())
}
