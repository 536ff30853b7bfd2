package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet reports whether name was explicitly set on the command line,
// so an environment variable never overrides an explicit flag.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// envOverride maps one FIBNUM_ environment key to the flag name it
// shadows and a function that applies the corresponding FIBNUM_<key>
// variable to cfg, via getEnvString/getEnvDuration so an unset or
// unparsable variable leaves cfg's current value untouched.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig)
}

var envOverrides = []envOverride{
	{"N", "n", func(c *AppConfig) {
		if v := getEnvString("N", ""); v != "" {
			if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
				c.N = parsed
			}
		}
	}},
	{"ALGO", "algo", func(c *AppConfig) { c.Algo = getEnvString("ALGO", c.Algo) }},
	{"BACKEND", "backend", func(c *AppConfig) { c.Backend = getEnvString("BACKEND", c.Backend) }},
	{"WIDTH", "width", func(c *AppConfig) {
		if v := getEnvString("WIDTH", ""); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				c.Width = parsed
			}
		}
	}},
	{"MODE", "mode", func(c *AppConfig) { c.Mode = getEnvString("MODE", c.Mode) }},
	{"TIMEOUT", "timeout", func(c *AppConfig) { c.Timeout = getEnvDuration("TIMEOUT", c.Timeout) }},
	{"KARATSUBA_THRESHOLD", "karatsuba-threshold", func(c *AppConfig) {
		if v := getEnvString("KARATSUBA_THRESHOLD", ""); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				c.KaratsubaThreshold = parsed
			}
		}
	}},
	{"FFT_THRESHOLD", "fft-threshold", func(c *AppConfig) {
		if v := getEnvString("FFT_THRESHOLD", ""); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				c.FFTThreshold = parsed
			}
		}
	}},
	{"OUTPUT", "output", func(c *AppConfig) { c.OutputFile = getEnvString("OUTPUT", c.OutputFile) }},
	{"VERBOSE", "verbose", func(c *AppConfig) { c.Verbose = parseBoolEnv(getEnvString("VERBOSE", ""), c.Verbose) }},
	{"QUIET", "quiet", func(c *AppConfig) { c.Quiet = parseBoolEnv(getEnvString("QUIET", ""), c.Quiet) }},
}

func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides fills in cfg from FIBNUM_-prefixed environment
// variables for any flag the caller did not set explicitly. Priority is
// CLI flags > environment > defaults.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		o.apply(cfg)
	}
}
