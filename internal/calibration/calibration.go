// Package calibration measures the kernel thresholds that suit the host and
// persists them in a profile reused by later runs.
//
// Each threshold is swept on its own: Karatsuba with parallelism disabled,
// Newton under automatic division, then the parallel threshold with the
// Karatsuba crossover already retained.
package calibration

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/agbru/bignum/internal/calc"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/digit"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/nat"
)

// sequentialThreshold stands for "never parallel" in an AppConfig, where a
// zero threshold means adaptive.
const sequentialThreshold = 1 << 30

// Options tunes a calibration run.
type Options struct {
	// ProfilePath is where the profile is written; empty uses
	// GetDefaultProfilePath.
	ProfilePath string
	// Quick sweeps fewer thresholds on smaller operands.
	Quick bool
	// Runs is the number of timed runs per threshold; the fastest counts.
	Runs int
}

// workload sizes, in digits, of the operands used by each sweep.
type workload struct {
	mulDigits      int
	dividendDigits int
	divisorDigits  int
	parallelDigits int
}

var (
	fullWorkload  = workload{mulDigits: 2048, dividendDigits: 8192, divisorDigits: 2048, parallelDigits: 16384}
	quickWorkload = workload{mulDigits: 256, dividendDigits: 1024, divisorDigits: 256, parallelDigits: 2048}
)

type calibrationResult struct {
	Threshold int
	Duration  time.Duration
	Err       error
}

// RunCalibration sweeps the thresholds for the configured digit width, saves
// the profile and returns an exit code.
func RunCalibration(ctx context.Context, cfg config.AppConfig, opts Options, out io.Writer) int {
	var (
		p   *CalibrationProfile
		err error
	)
	if cfg.DigitBits == 32 {
		p, err = calibrate[uint32](ctx, opts, out)
	} else {
		p, err = calibrate[uint64](ctx, opts, out)
	}
	if err != nil {
		fmt.Fprintf(out, "Calibration failed: %v\n", err)
		return apperrors.ExitCode(err)
	}

	path := opts.ProfilePath
	if path == "" {
		path = GetDefaultProfilePath()
	}
	if err := p.SaveProfile(path); err != nil {
		fmt.Fprintf(out, "Calibration failed: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	printCalibrationOutput(p, out)
	fmt.Fprintf(out, "Profile saved to %s\n", path)
	return apperrors.ExitSuccess
}

func calibrate[D digit.Digit](ctx context.Context, opts Options, out io.Writer) (*CalibrationProfile, error) {
	start := time.Now()
	w := fullWorkload
	karatsuba, newton, parallel := GenerateKaratsubaThresholds(), GenerateNewtonThresholds(), GenerateParallelThresholds()
	if opts.Quick {
		w = quickWorkload
		karatsuba, newton, parallel = GenerateQuickKaratsubaThresholds(), GenerateQuickNewtonThresholds(), GenerateQuickParallelThresholds()
	}
	runs := opts.Runs
	if runs <= 0 {
		runs = 3
	}
	bits := int(digit.Width[D]())

	base := nat.DefaultOptions()
	base.ParallelThreshold = 0

	mulReq := calc.Request[D]{
		Op: calc.OpMul,
		A:  calc.RandomOperand[D](w.mulDigits*bits, 1),
		B:  calc.RandomOperand[D](w.mulDigits*bits, 2),
	}
	results, bestKaratsuba, err := sweep(ctx, base, karatsuba, runs, mulReq,
		func(o *nat.Options, t int) { o.KaratsubaThreshold = t })
	if err != nil {
		return nil, err
	}
	printCalibrationResults(out, "Karatsuba Threshold", results, bestKaratsuba)
	base.KaratsubaThreshold = bestKaratsuba

	divReq := calc.Request[D]{
		Op: calc.OpQuoRem,
		A:  calc.RandomOperand[D](w.dividendDigits*bits, 3),
		B:  calc.RandomOperand[D](w.divisorDigits*bits, 4),
	}
	results, bestNewton, err := sweep(ctx, base, newton, runs, divReq,
		func(o *nat.Options, t int) { o.NewtonThreshold = t })
	if err != nil {
		return nil, err
	}
	printCalibrationResults(out, "Newton Threshold", results, bestNewton)
	base.NewtonThreshold = bestNewton

	parReq := calc.Request[D]{
		Op: calc.OpMul,
		A:  calc.RandomOperand[D](w.parallelDigits*bits, 5),
		B:  calc.RandomOperand[D](w.parallelDigits*bits, 6),
	}
	results, bestParallel, err := sweep(ctx, base, parallel, runs, parReq,
		func(o *nat.Options, t int) { o.ParallelThreshold = t })
	if err != nil {
		return nil, err
	}
	printCalibrationResults(out, "Parallel Threshold", results, bestParallel)

	p := NewProfile()
	p.DigitBits = bits
	p.KaratsubaThreshold = bestKaratsuba
	p.NewtonThreshold = bestNewton
	p.ParallelThreshold = bestParallel
	p.CalibrationTime = time.Since(start).Round(time.Millisecond).String()
	return p, nil
}

// sweep times req under each threshold and returns the fastest one. Ties
// keep the earlier threshold. A canceled context aborts the sweep; other
// failures only disqualify their threshold.
func sweep[D digit.Digit](ctx context.Context, base nat.Options, thresholds []int, runs int,
	req calc.Request[D], apply func(*nat.Options, int)) ([]calibrationResult, int, error) {
	results := make([]calibrationResult, 0, len(thresholds))
	best, bestDuration := 0, time.Duration(math.MaxInt64)
	found := false
	for _, t := range thresholds {
		opts := base
		apply(&opts, t)
		d, err := measure(ctx, opts, req, runs)
		if ctx.Err() != nil {
			if err == nil {
				err = ctx.Err()
			}
			return nil, 0, err
		}
		results = append(results, calibrationResult{Threshold: t, Duration: d, Err: err})
		if err == nil && d < bestDuration {
			best, bestDuration, found = t, d, true
		}
	}
	if !found {
		return results, 0, apperrors.CalculationError{Op: req.Op.String(), Cause: fmt.Errorf("no threshold completed")}
	}
	return results, best, nil
}

func measure[D digit.Digit](ctx context.Context, opts nat.Options, req calc.Request[D], runs int) (time.Duration, error) {
	engine := calc.NewEngine[D](calc.Config{Options: opts})
	fastest := time.Duration(math.MaxInt64)
	for i := 0; i < runs; i++ {
		res, err := engine.Eval(ctx, req)
		if err != nil {
			return 0, err
		}
		fastest = min(fastest, res.Duration)
	}
	return fastest, nil
}

// LoadCachedCalibration fills the thresholds left at zero in cfg from the
// profile at path (the default path when empty). It reports whether a
// profile matching the host and digit width was applied.
func LoadCachedCalibration(cfg config.AppConfig, path string) (config.AppConfig, bool) {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	p, loaded := LoadOrCreateProfile(path)
	if !loaded || p.DigitBits != cfg.DigitBits {
		return cfg, false
	}
	if cfg.KaratsubaThreshold == 0 {
		cfg.KaratsubaThreshold = p.KaratsubaThreshold
	}
	if cfg.NewtonThreshold == 0 {
		cfg.NewtonThreshold = p.NewtonThreshold
	}
	if cfg.ParallelThreshold == 0 {
		cfg.ParallelThreshold = p.ParallelThreshold
		if cfg.ParallelThreshold == 0 {
			cfg.ParallelThreshold = sequentialThreshold
		}
	}
	return cfg, true
}
