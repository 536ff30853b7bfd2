package config

import (
	"flag"
	"os"
	"testing"
	"time"
)

func setEnv(t *testing.T, key, val string) {
	t.Helper()
	full := EnvPrefix + key
	old, had := os.LookupEnv(full)
	os.Setenv(full, val)
	t.Cleanup(func() {
		if had {
			os.Setenv(full, old)
		} else {
			os.Unsetenv(full)
		}
	})
}

func TestGetEnvString(t *testing.T) {
	setEnv(t, "TEST_STRING", "value")
	if got := getEnvString("TEST_STRING", "default"); got != "value" {
		t.Errorf("getEnvString = %q, want %q", got, "value")
	}
	if got := getEnvString("TEST_STRING_UNSET", "default"); got != "default" {
		t.Errorf("getEnvString = %q, want %q", got, "default")
	}
}

func TestGetEnvDuration(t *testing.T) {
	setEnv(t, "TEST_DURATION", "1h30m")
	if got := getEnvDuration("TEST_DURATION", 0); got != 90*time.Minute {
		t.Errorf("getEnvDuration = %v, want 1h30m", got)
	}
	if got := getEnvDuration("TEST_DURATION_UNSET", 5*time.Second); got != 5*time.Second {
		t.Errorf("getEnvDuration = %v, want 5s", got)
	}

	setEnv(t, "TEST_DURATION_BAD", "not-a-duration")
	if got := getEnvDuration("TEST_DURATION_BAD", 5*time.Second); got != 5*time.Second {
		t.Errorf("getEnvDuration on unparsable value = %v, want fallback 5s", got)
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val      string
		fallback bool
		want     bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"", true, true},
		{"garbage", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.fallback); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.fallback, got, tt.want)
		}
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	setEnv(t, "N", "777")
	setEnv(t, "ALGO", AlgoGoldenRatio)
	setEnv(t, "TIMEOUT", "45s")
	setEnv(t, "VERBOSE", "true")

	cfg := NewDefaultConfig()
	fs := flag.NewFlagSet("fibcalc", flag.ContinueOnError)
	fs.Uint64Var(&cfg.N, "n", cfg.N, "")
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, "")

	applyEnvOverrides(&cfg, fs)

	if cfg.N != 777 {
		t.Errorf("N = %d, want 777 from FIBNUM_N", cfg.N)
	}
	if cfg.Algo != AlgoGoldenRatio {
		t.Errorf("Algo = %q, want %q from FIBNUM_ALGO", cfg.Algo, AlgoGoldenRatio)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s from FIBNUM_TIMEOUT", cfg.Timeout)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true from FIBNUM_VERBOSE")
	}
}

func TestApplyEnvOverridesFlagTakesPrecedence(t *testing.T) {
	setEnv(t, "N", "777")

	cfg := NewDefaultConfig()
	fs := flag.NewFlagSet("fibcalc", flag.ContinueOnError)
	fs.Uint64Var(&cfg.N, "n", cfg.N, "")
	if err := fs.Parse([]string{"-n", "42"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	applyEnvOverrides(&cfg, fs)

	if cfg.N != 42 {
		t.Errorf("N = %d, want 42 (explicit flag beats FIBNUM_N)", cfg.N)
	}
}
