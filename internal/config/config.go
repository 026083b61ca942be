// Package config parses and validates the bigcalc command line.
//
// Values come from three layers, highest priority first: command-line flags,
// BIGCALC_* environment variables, then built-in defaults. Thresholds left at
// zero are filled in by ApplyAdaptiveThresholds.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/bignum/internal/calc"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/nat"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "BIGCALC_"

const (
	// DefaultTimeout bounds a single evaluation.
	DefaultTimeout = 5 * time.Minute
	// DefaultMaxOperandBits bounds operands accepted by the server.
	DefaultMaxOperandBits = 1 << 24
	// DefaultDigitBits selects the digit width of the kernel.
	DefaultDigitBits = 64
)

// AppConfig holds the parsed application configuration.
type AppConfig struct {
	// Op is the operation to evaluate (add, mul, quorem, ...).
	Op string
	// A and B are textual operands (decimal, 0x hex or 0b binary).
	A, B string
	// AFile and BFile name natio binary files holding the operands.
	AFile, BFile string
	// RandA and RandB request random operands of that many bits.
	RandA, RandB int
	Seed         int64
	// DigitBits is 32 or 64.
	DigitBits int

	MulAlgo            string
	DivAlgo            string
	KaratsubaThreshold int
	NewtonThreshold    int
	ParallelThreshold  int

	// Format is the result text format: dec, hex or bin.
	Format     string
	OutputFile string
	Compare    bool
	Timeout    time.Duration
	Quiet      bool
	Verbose    bool
	NoColor    bool
	Info       bool

	// Serve is the listen address; empty disables server mode.
	Serve          string
	MaxOperandBits int

	// Calibrate sweeps the kernel thresholds and saves a profile.
	Calibrate          bool
	CalibrationProfile string
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Usage and parse errors are written to errWriter; -h yields flag.ErrHelp.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	config := AppConfig{}

	fs.StringVar(&config.Op, "op", "mul", "Operation: "+strings.Join(calc.OpNames(), ", ")+".")
	fs.StringVar(&config.A, "a", "", "First operand (decimal, 0x hex or 0b binary, optional sign).")
	fs.StringVar(&config.B, "b", "", "Second operand, or the shift count for lsh/rsh.")
	fs.StringVar(&config.AFile, "a-file", "", "Read the first operand from a binary file.")
	fs.StringVar(&config.BFile, "b-file", "", "Read the second operand from a binary file.")
	fs.IntVar(&config.RandA, "rand-a", 0, "Use a random first operand of this many bits.")
	fs.IntVar(&config.RandB, "rand-b", 0, "Use a random second operand of this many bits.")
	fs.Int64Var(&config.Seed, "seed", 1, "Seed for random operands.")
	fs.IntVar(&config.DigitBits, "digit-bits", DefaultDigitBits, "Digit width of the kernel (32 or 64).")
	fs.StringVar(&config.MulAlgo, "mul-algo", "auto", "Multiplication algorithm (auto, schoolbook, karatsuba).")
	fs.StringVar(&config.DivAlgo, "div-algo", "auto", "Division algorithm (auto, schoolbook, newton, burnikel-ziegler).")
	fs.IntVar(&config.KaratsubaThreshold, "karatsuba-threshold", 0, "Digit count from which Karatsuba is used (0=adaptive).")
	fs.IntVar(&config.NewtonThreshold, "newton-threshold", 0, "Divisor digits up to which Newton division is used (0=adaptive).")
	fs.IntVar(&config.ParallelThreshold, "parallel-threshold", 0, "Digit count from which Karatsuba runs in parallel (0=adaptive).")
	fs.StringVar(&config.Format, "format", "dec", "Result format (dec, hex, bin).")
	fs.StringVar(&config.OutputFile, "o", "", "Write the result to this binary file.")
	fs.BoolVar(&config.Compare, "compare", false, "Run every algorithm for the operation and cross-check results.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum evaluation time.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode: print only the result.")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose mode: print the full value and debug logs.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.Info, "info", false, "Print host and kernel information and exit.")
	fs.StringVar(&config.Serve, "serve", "", "Run the HTTP server on this address (e.g. :8080).")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Measure the optimal thresholds for this host and save them.")
	fs.StringVar(&config.CalibrationProfile, "calibration-profile", "", "Calibration profile path (default ~/.bigcalc_calibration.json).")
	fs.IntVar(&config.MaxOperandBits, "max-bits", DefaultMaxOperandBits, "Largest operand accepted by the server, in bits.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate() error {
	if c.DigitBits != 32 && c.DigitBits != 64 {
		return apperrors.NewConfigError("-digit-bits must be 32 or 64, got %d", c.DigitBits)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("-timeout must be positive, got %s", c.Timeout)
	}
	if _, err := c.base(); err != nil {
		return err
	}
	if _, err := nat.ParseMultiplication(c.MulAlgo); err != nil {
		return apperrors.NewConfigError("-mul-algo: %v", err)
	}
	if _, err := nat.ParseDivision(c.DivAlgo); err != nil {
		return apperrors.NewConfigError("-div-algo: %v", err)
	}
	for name, v := range map[string]int{
		"karatsuba-threshold": c.KaratsubaThreshold,
		"newton-threshold":    c.NewtonThreshold,
		"parallel-threshold":  c.ParallelThreshold,
		"rand-a":              c.RandA,
		"rand-b":              c.RandB,
	} {
		if v < 0 {
			return apperrors.NewConfigError("-%s must be non-negative, got %d", name, v)
		}
	}
	if c.MaxOperandBits <= 0 {
		return apperrors.NewConfigError("-max-bits must be positive, got %d", c.MaxOperandBits)
	}
	if c.Serve != "" || c.Info || c.Calibrate {
		return nil
	}

	op, err := calc.ParseOp(c.Op)
	if err != nil {
		return apperrors.NewConfigError("-op: %v", err)
	}
	if err := checkSources("a", c.A, c.AFile, c.RandA); err != nil {
		return err
	}
	if op.Binary() {
		if err := checkSources("b", c.B, c.BFile, c.RandB); err != nil {
			return err
		}
	}
	if c.Compare && !op.ComparesAlgorithms() {
		return apperrors.NewConfigError("-compare is only supported for mul, sqr, quo, rem and quorem, got %s", op)
	}
	return nil
}

// checkSources requires exactly one source for an operand.
func checkSources(name, text, file string, randBits int) error {
	n := 0
	for _, set := range []bool{text != "", file != "", randBits > 0} {
		if set {
			n++
		}
	}
	switch n {
	case 0:
		return apperrors.NewConfigError("operand %s is required (-%s, -%s-file or -rand-%s)", name, name, name, name)
	case 1:
		return nil
	default:
		return apperrors.NewConfigError("operand %s has more than one source", name)
	}
}

// Base returns the numeric base of the result format.
func (c AppConfig) Base() int {
	b, _ := c.base()
	return b
}

func (c AppConfig) base() (int, error) {
	switch strings.ToLower(c.Format) {
	case "dec", "10", "":
		return 10, nil
	case "hex", "16":
		return 16, nil
	case "bin", "2":
		return 2, nil
	}
	return 0, apperrors.NewConfigError("-format must be dec, hex or bin, got %q", c.Format)
}

// ToOptions maps the configuration to kernel options. Unparseable algorithm
// names fall back to automatic selection; Validate reports them.
func (c AppConfig) ToOptions() nat.Options {
	opts := nat.DefaultOptions()
	if c.KaratsubaThreshold > 0 {
		opts.KaratsubaThreshold = c.KaratsubaThreshold
	}
	if c.NewtonThreshold > 0 {
		opts.NewtonThreshold = c.NewtonThreshold
	}
	if c.ParallelThreshold > 0 {
		opts.ParallelThreshold = c.ParallelThreshold
	}
	opts.Multiplication, _ = nat.ParseMultiplication(c.MulAlgo)
	opts.Division, _ = nat.ParseDivision(c.DivAlgo)
	return opts
}
