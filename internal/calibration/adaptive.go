// This file generates the threshold candidates swept by the calibration.

package calibration

import (
	"runtime"
)

// ─────────────────────────────────────────────────────────────────────────────
// Adaptive Parallel Threshold Generation
// ─────────────────────────────────────────────────────────────────────────────

// GenerateParallelThresholds returns the parallel thresholds, in digits, to
// test on this host. Zero means sequential.
//
// The rationale:
// - Single-core: Only test sequential (0) as parallelism has no benefit
// - 2-4 cores: Test lower thresholds as parallelism overhead is relatively high
// - 8+ cores: Include higher thresholds as more parallelism can be beneficial
// - 16+ cores: Add even higher thresholds for very fine-grained parallelism
func GenerateParallelThresholds() []int {
	numCPU := runtime.NumCPU()

	thresholds := []int{0}

	switch {
	case numCPU == 1:
		return thresholds
	case numCPU <= 4:
		thresholds = append(thresholds, 512, 1024, 2048, 4096)
	case numCPU <= 8:
		thresholds = append(thresholds, 256, 512, 1024, 2048, 4096, 8192)
	case numCPU <= 16:
		thresholds = append(thresholds, 256, 512, 1024, 2048, 4096, 8192, 16384)
	default:
		thresholds = append(thresholds, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768)
	}

	return thresholds
}

// GenerateQuickParallelThresholds generates a smaller set of thresholds for
// quick calibration.
func GenerateQuickParallelThresholds() []int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return []int{0}
	case numCPU <= 4:
		return []int{0, 1024, 4096}
	default:
		return []int{0, 1024, 2048, 4096}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Karatsuba and Newton Threshold Generation
// ─────────────────────────────────────────────────────────────────────────────

// GenerateKaratsubaThresholds returns the Karatsuba crossovers, in digits,
// to test. The kernel clamps values below 4.
func GenerateKaratsubaThresholds() []int {
	return []int{16, 24, 32, 40, 48, 64, 96, 128}
}

// GenerateQuickKaratsubaThresholds generates a smaller set for quick calibration.
func GenerateQuickKaratsubaThresholds() []int {
	return []int{24, 40, 64}
}

// GenerateNewtonThresholds returns the divisor lengths, in digits, up to
// which Newton division is tried. Burnikel–Ziegler recurses down to the
// same length.
func GenerateNewtonThresholds() []int {
	return []int{16, 32, 48, 60, 80, 120, 160}
}

// GenerateQuickNewtonThresholds generates a smaller set for quick calibration.
func GenerateQuickNewtonThresholds() []int {
	return []int{32, 60, 120}
}
