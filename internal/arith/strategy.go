// This file selects the carry-loop implementation used at each call site.

package arith

import (
	"fmt"
	"math/big"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/agbru/bignum/internal/digit"
)

// Strategy identifies one interchangeable implementation of the vector
// carry loops. Generic is the reference; the others must produce identical
// digits and carries.
type Strategy uint8

const (
	// Generic runs portable digit-at-a-time loops.
	Generic Strategy = iota
	// Platform hands digits that are exactly one machine word wide to
	// math/big's assembly vector routines.
	Platform
	// Doubled reinterprets aligned pairs of half-word digits as one machine
	// word (little-endian hosts only) and finishes any odd tail generically.
	Doubled
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Generic:
		return "generic"
	case Platform:
		return "platform"
	case Doubled:
		return "doubled"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// MinFastPathLen is the operand length in digits below which the generic
// loop is always used; reinterpreting the slices costs more than it saves.
const MinFastPathLen = 8

var (
	wordBytes    = int(unsafe.Sizeof(big.Word(0)))
	littleEndian = !cpu.IsBigEndian

	fastPaths atomic.Bool
)

func init() {
	fastPaths.Store(true)
}

// SetFastPaths enables or disables the Platform and Doubled strategies
// process-wide. Results are identical either way.
func SetFastPaths(enabled bool) {
	fastPaths.Store(enabled)
}

// FastPathsEnabled reports whether non-generic strategies may be selected.
func FastPathsEnabled() bool {
	return fastPaths.Load()
}

// Available returns the best strategy the host supports for digits of type D,
// ignoring operand size.
func Available[D digit.Digit]() Strategy {
	switch digit.Bytes[D]() {
	case wordBytes:
		return Platform
	case wordBytes / 2:
		if littleEndian {
			return Doubled
		}
	}
	return Generic
}

// strategyFor picks the strategy for an operation over n digits.
func strategyFor[D digit.Digit](n int) Strategy {
	if n < MinFastPathLen || !fastPaths.Load() {
		return Generic
	}
	return Available[D]()
}

// asWords reinterprets x as machine words. len(x)*sizeof(D) must be a
// multiple of the word size and x must be word aligned.
func asWords[D digit.Digit](x []D) []big.Word {
	if len(x) == 0 {
		return nil
	}
	n := len(x) * digit.Bytes[D]() / wordBytes
	return unsafe.Slice((*big.Word)(unsafe.Pointer(&x[0])), n)
}

func aligned[D digit.Digit](xs ...[]D) bool {
	for _, x := range xs {
		if len(x) > 0 && uintptr(unsafe.Pointer(&x[0]))%uintptr(wordBytes) != 0 {
			return false
		}
	}
	return true
}

// Features describes the host capabilities relevant to the kernel.
type Features struct {
	WordBits     int
	LittleEndian bool
	Strategy32   Strategy
	Strategy64   Strategy
	ADX          bool
	BMI2         bool
	AVX2         bool
	ASIMD        bool
}

// HostFeatures reports the detected capabilities.
func HostFeatures() Features {
	return Features{
		WordBits:     wordBytes * 8,
		LittleEndian: littleEndian,
		Strategy32:   Available[uint32](),
		Strategy64:   Available[uint64](),
		ADX:          cpu.X86.HasADX,
		BMI2:         cpu.X86.HasBMI2,
		AVX2:         cpu.X86.HasAVX2,
		ASIMD:        cpu.ARM64.HasASIMD,
	}
}

// String formats the features on a single line.
func (f Features) String() string {
	return fmt.Sprintf("word=%d little-endian=%v uint32=%s uint64=%s adx=%v bmi2=%v avx2=%v asimd=%v",
		f.WordBits, f.LittleEndian, f.Strategy32, f.Strategy64, f.ADX, f.BMI2, f.AVX2, f.ASIMD)
}
