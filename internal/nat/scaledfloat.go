package nat

import (
	"math"

	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/digit"
)

// scaledFloat is the value ±mant·BASE^scale. It carries only what the
// Newton–Raphson divider needs. mant never has a most-significant zero
// digit; zero has an empty mantissa.
type scaledFloat[D digit.Digit] struct {
	neg   bool
	mant  []D
	scale int
}

func newScaled[D digit.Digit](mant []D, scale int) scaledFloat[D] {
	return scaledFloat[D]{mant: sig(mant), scale: scale}
}

func (a scaledFloat[D]) isZero() bool { return len(a.mant) == 0 }

func (a scaledFloat[D]) negate() scaledFloat[D] {
	if a.isZero() {
		return a
	}
	a.neg = !a.neg
	return a
}

// mul returns the exact product a·b.
func (a scaledFloat[D]) mul(b scaledFloat[D], opts Options) scaledFloat[D] {
	if a.isZero() || b.isZero() {
		return scaledFloat[D]{}
	}
	z := make([]D, len(a.mant)+len(b.mant))
	mulInto(z, a.mant, b.mant, opts)
	return scaledFloat[D]{neg: a.neg != b.neg, mant: sig(z), scale: a.scale + b.scale}
}

// aligned returns the mantissa expressed at the lower scale s.
func (a scaledFloat[D]) aligned(s int) []D {
	shift := a.scale - s
	z := make([]D, len(a.mant)+shift)
	copy(z[shift:], a.mant)
	return z
}

// add returns the exact sum a+b.
func (a scaledFloat[D]) add(b scaledFloat[D]) scaledFloat[D] {
	switch {
	case a.isZero():
		return b
	case b.isZero():
		return a
	}
	s := min(a.scale, b.scale)
	am, bm := a.aligned(s), b.aligned(s)

	if a.neg == b.neg {
		if len(am) < len(bm) {
			am, bm = bm, am
		}
		z := make([]D, len(am)+1)
		copy(z, am)
		arith.AddAssign(z, bm)
		return scaledFloat[D]{neg: a.neg, mant: sig(z), scale: s}
	}

	neg := a.neg
	switch cmpDigits(am, bm) {
	case 0:
		return scaledFloat[D]{}
	case -1:
		am, bm = bm, am
		neg = b.neg
	}
	arith.SubAssign(am, sig(bm))
	return scaledFloat[D]{neg: neg, mant: sig(am), scale: s}
}

func (a scaledFloat[D]) sub(b scaledFloat[D]) scaledFloat[D] {
	return a.add(b.negate())
}

// roundTo rounds the magnitude to at most k digits, half up.
func (a scaledFloat[D]) roundTo(k int) scaledFloat[D] {
	if len(a.mant) <= k {
		return a
	}
	drop := len(a.mant) - k
	half := a.mant[drop-1] >> (digit.Width[D]() - 1)
	m := make([]D, k+1)
	copy(m, a.mant[drop:])
	arith.AddWordAssign(m, half)
	return scaledFloat[D]{neg: a.neg, mant: sig(m), scale: a.scale + drop}
}

// msdView returns the k most significant digits of a, truncated. The view
// shares a's mantissa and must not be modified.
func (a scaledFloat[D]) msdView(k int) scaledFloat[D] {
	if len(a.mant) <= k {
		return a
	}
	drop := len(a.mant) - k
	return scaledFloat[D]{neg: a.neg, mant: sig(a.mant[drop:]), scale: a.scale + drop}
}

// precision returns the number of zero bits after the binary point of |a|
// before its first one bit. Values >= 1 have precision <= 0.
func (a scaledFloat[D]) precision() int {
	if a.isZero() {
		return math.MaxInt32
	}
	return -a.scale*int(digit.Width[D]()) - Nat[D](a.mant).BitLen()
}

// roundToInt returns the non-negative value rounded to the nearest integer,
// half up.
func (a scaledFloat[D]) roundToInt() Nat[D] {
	if a.isZero() {
		return Zero[D]()
	}
	if a.scale >= 0 {
		z := make([]D, len(a.mant)+a.scale)
		copy(z[a.scale:], a.mant)
		return norm(z)
	}
	drop := -a.scale
	if drop > len(a.mant) {
		return Zero[D]()
	}
	half := a.mant[drop-1] >> (digit.Width[D]() - 1)
	z := make([]D, len(a.mant)-drop+1)
	copy(z, a.mant[drop:])
	arith.AddWordAssign(z, half)
	return norm(z)
}
