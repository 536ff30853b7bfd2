package ui

import (
	"os"
	"sync"
)

// Theme defines the ANSI escape codes the driver CLI uses for its
// comparison table and result output.
type Theme struct {
	Name      string
	Primary   string
	Success   string
	Warning   string
	Error     string
	Underline string
	Reset     string
}

var (
	// DarkTheme is the default palette for color-capable terminals.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",
		Success:   "\033[38;5;82m",
		Warning:   "\033[38;5;220m",
		Error:     "\033[38;5;196m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output, used when NO_COLOR is set
	// or --no-color is passed.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// InitTheme disables color when noColor is set or the NO_COLOR environment
// variable (https://no-color.org/) is present; otherwise it selects
// DarkTheme.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}
