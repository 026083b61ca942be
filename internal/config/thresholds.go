package config

import (
	"runtime"

	"github.com/agbru/bignum/internal/nat"
)

// Threshold resolution chain (highest priority first):
//   1. CLI flags (-karatsuba-threshold, -newton-threshold, -parallel-threshold)
//   2. Environment variables (BIGCALC_KARATSUBA_THRESHOLD, etc.)
//   3. Adaptive hardware estimation (this file)
//   4. Static defaults in nat/options.go

// ApplyAdaptiveThresholds fills in every threshold left at zero from the
// host's core count and the selected digit width.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.KaratsubaThreshold == 0 {
		cfg.KaratsubaThreshold = EstimateOptimalKaratsubaThreshold(cfg.DigitBits)
	}
	if cfg.NewtonThreshold == 0 {
		cfg.NewtonThreshold = EstimateOptimalNewtonThreshold(cfg.DigitBits)
	}
	if cfg.ParallelThreshold == 0 {
		cfg.ParallelThreshold = EstimateOptimalParallelThreshold()
	}
	return cfg
}

// EstimateOptimalParallelThreshold estimates, in digits, the operand size
// from which parallel Karatsuba pays for its goroutines.
func EstimateOptimalParallelThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return 1 << 30 // No parallelism
	case numCPU <= 2:
		return 8192
	case numCPU <= 4:
		return nat.DefaultParallelThreshold
	case numCPU <= 8:
		return 2048
	default:
		return 1024
	}
}

// EstimateOptimalKaratsubaThreshold estimates the Karatsuba crossover in
// digits. Narrow digits make schoolbook rows cheaper, so the crossover moves
// up, unless the host cannot run the 32-bit kernel through native words.
func EstimateOptimalKaratsubaThreshold(digitBits int) int {
	wordSize := 32 << (^uint(0) >> 63)
	if digitBits == 32 && wordSize == 64 {
		return nat.DefaultKaratsubaThreshold + nat.DefaultKaratsubaThreshold/2
	}
	return nat.DefaultKaratsubaThreshold
}

// EstimateOptimalNewtonThreshold estimates the divisor length, in digits,
// up to which Newton division beats Burnikel–Ziegler.
func EstimateOptimalNewtonThreshold(digitBits int) int {
	if digitBits == 32 {
		return 2 * nat.DefaultNewtonThreshold
	}
	return nat.DefaultNewtonThreshold
}
