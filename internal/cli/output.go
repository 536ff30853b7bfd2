// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on
// their behavior:
//
//   - Present* functions write formatted output to an [io.Writer] and
//     handle colorization.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/fibnum/internal/ui"
)

// OutputConfig controls how a single calculation's result is reported.
type OutputConfig struct {
	OutputFile string
	Quiet      bool
	Verbose    bool
}

// WriteResultToFile records a computed value and its metadata to path,
// creating parent directories as needed.
func WriteResultToFile(value string, n uint64, duration time.Duration, combo string, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	if dir := filepath.Dir(cfg.OutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Fibonacci calculation result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Algorithm/backend: %s\n", combo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# N: %d\n", n)
	fmt.Fprintf(file, "# Digits: %d\n", len(value))
	fmt.Fprintf(file, "\nF(%d) =\n%s\n", n, value)
	return nil
}

// DisplayQuietResult prints only the value, one line, suitable for scripting.
func DisplayQuietResult(out io.Writer, value string) {
	fmt.Fprintln(out, value)
}

// DisplayResultWithConfig prints value according to cfg and, if an output
// file is configured, saves it too.
func DisplayResultWithConfig(out io.Writer, value string, n uint64, duration time.Duration, combo string, cfg OutputConfig) error {
	if cfg.Quiet {
		DisplayQuietResult(out, value)
	} else {
		PresentResult(PresentedResult{Combo: combo, Value: value, Duration: duration}, n, cfg.Verbose, out)
	}

	if cfg.OutputFile != "" {
		if err := WriteResultToFile(value, n, duration, combo, cfg); err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s\n", ui.ColorSuccess(), cfg.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
