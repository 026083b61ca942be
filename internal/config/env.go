// This file contains the environment variable overrides of the configuration.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Overrides
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// envOverride maps an env key (without the BIGCALC_ prefix) to the flag it
// shadows and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

func intOverride(key, flagName string, field func(*AppConfig) *int) envOverride {
	return envOverride{key, flagName, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			*field(c) = parsed
		}
	}}
}

func stringOverride(key, flagName string, field func(*AppConfig) *string) envOverride {
	return envOverride{key, flagName, func(c *AppConfig, v string) { *field(c) = v }}
}

func boolOverride(key, flagName string, field func(*AppConfig) *bool) envOverride {
	return envOverride{key, flagName, func(c *AppConfig, v string) {
		*field(c) = parseBoolEnv(v, *field(c))
	}}
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Numeric overrides
	intOverride("DIGIT_BITS", "digit-bits", func(c *AppConfig) *int { return &c.DigitBits }),
	intOverride("KARATSUBA_THRESHOLD", "karatsuba-threshold", func(c *AppConfig) *int { return &c.KaratsubaThreshold }),
	intOverride("NEWTON_THRESHOLD", "newton-threshold", func(c *AppConfig) *int { return &c.NewtonThreshold }),
	intOverride("PARALLEL_THRESHOLD", "parallel-threshold", func(c *AppConfig) *int { return &c.ParallelThreshold }),
	intOverride("MAX_BITS", "max-bits", func(c *AppConfig) *int { return &c.MaxOperandBits }),
	{"SEED", "seed", func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", "timeout", func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	stringOverride("MUL_ALGO", "mul-algo", func(c *AppConfig) *string { return &c.MulAlgo }),
	stringOverride("DIV_ALGO", "div-algo", func(c *AppConfig) *string { return &c.DivAlgo }),
	stringOverride("FORMAT", "format", func(c *AppConfig) *string { return &c.Format }),
	stringOverride("SERVE", "serve", func(c *AppConfig) *string { return &c.Serve }),
	stringOverride("CALIBRATION_PROFILE", "calibration-profile", func(c *AppConfig) *string { return &c.CalibrationProfile }),

	// Boolean overrides
	boolOverride("QUIET", "q", func(c *AppConfig) *bool { return &c.Quiet }),
	boolOverride("VERBOSE", "v", func(c *AppConfig) *bool { return &c.Verbose }),
	boolOverride("NO_COLOR", "no-color", func(c *AppConfig) *bool { return &c.NoColor }),
}

// parseBoolEnv accepts "true", "1", "yes" as true and "false", "0", "no" as
// false (case-insensitive); anything else yields defaultVal.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values for every flag that
// was not set on the command line: flags > environment > defaults.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
