package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/fibnum/internal/format"
	"github.com/agbru/fibnum/internal/orchestration"
	"github.com/agbru/fibnum/internal/ui"
)

// PresentedResult is the single-value view the driver CLI prints in value
// mode: either one combo's result or the value orchestration.Reconcile
// settled on across several combos.
type PresentedResult struct {
	Combo    string
	Value    string
	Duration time.Duration
}

// PresentResult prints the computed value exactly as given; it does no
// truncation of its own, so value is expected to already be in the form
// the caller wants displayed. With verbose set it also prints the combo and
// duration.
func PresentResult(res PresentedResult, n uint64, verbose bool, out io.Writer) {
	fmt.Fprintf(out, "\n%sF(%d)%s = %s\n", ui.ColorPrimary(), n, ui.ColorReset(), res.Value)
	if verbose {
		fmt.Fprintf(out, "Computed via %s%s%s in %s.\n",
			ui.ColorSuccess(), res.Combo, ui.ColorReset(), format.FormatExecutionDuration(res.Duration))
	}
}

// PresentComparisonTable prints one row per orchestration result, manually
// padding around ANSI color codes so alignment survives colorization.
func PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := len("Algorithm/Backend")
	maxDurationLen := len("Duration")
	for _, res := range results {
		if n := len(res.Combo.Name()); n > maxNameLen {
			maxNameLen = n
		}
		d := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			d = "< 1µs"
		}
		if n := len(d); n > maxDurationLen {
			maxDurationLen = n
		}
	}

	fmt.Fprintf(out, "%sAlgorithm/Backend%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Algorithm/Backend")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		name := res.Combo.Name()
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s✗ %v%s", ui.ColorError(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✓ ok%s", ui.ColorSuccess(), ui.ColorReset())
		}
		d := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			d = "< 1µs"
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorPrimary(), name, ui.ColorReset(), padRight("", maxNameLen-len(name)),
			ui.ColorWarning(), d, ui.ColorReset(), padRight("", maxDurationLen-len(d)),
			status)
	}
}

func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentCheckDiagnostics prints the CHECK-mode report: digit count, bit
// width, and the MSD-first hex rendering, in place of the decimal value.
func PresentCheckDiagnostics(out io.Writer, n uint64, digitCount int, width int, hex string) {
	fmt.Fprintf(out, "\n%sCHECK%s F(%d): %d digits at width %d, hex = %s\n",
		ui.ColorWarning(), ui.ColorReset(), n, digitCount, width, hex)
}
