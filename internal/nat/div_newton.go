package nat

import (
	"math/bits"

	"github.com/agbru/bignum/internal/digit"
)

// newtonGuardBits is the precision, beyond the quotient's bit length, that
// the reciprocal must reach before the quotient is formed.
const newtonGuardBits = 16

// maxFixups bounds the quotient corrections after rounding; the reciprocal
// precision guarantees at most one in either direction.
const maxFixups = 4

// divNewton divides u by v through a reciprocal of the normalized divisor.
//
// With v scaled so its top bit is set, d = v·BASE^-n lies in [0.5, 1). The
// reciprocal starts from x0 = 48/17 - 32/17·d and is refined with
// x <- x + x·(1 - d·x), which squares the error each step. Every step works
// on views of just enough digits for the precision it is about to reach.
func divNewton[D digit.Digit](u, v []D, opts Options) (Nat[D], Nat[D], error) {
	if cmpDigits(u, v) < 0 {
		return Zero[D](), FromDigits(u), nil
	}
	if len(v) == 1 {
		q, r := divSingle(u, v[0])
		return q, Nat[D]{r}, nil
	}

	W := int(digit.Width[D]())
	n := len(v)
	shift := digit.LeadingZeros(v[n-1])
	vn := Nat[D](v).Lsh(shift)
	un := Nat[D](u).Lsh(shift)

	gap := un.BitLen() - vn.BitLen() + 1
	target := gap + newtonGuardBits

	x, err := reciprocal(newScaled(vn, -n), target, opts)
	if err != nil {
		return nil, nil, err
	}

	// q ~ round(msd(u')·x·BASE^-n)
	uDigits := (target+W-1)/W + 2
	qf := newScaled(un, 0).msdView(uDigits).mul(x, opts)
	qf.scale -= n
	q := qf.roundToInt()

	q, r, ok := fixQuotient(u, v, q, opts)
	if !ok {
		return nil, nil, ErrConvergence
	}
	return q, r, nil
}

// reciprocal approximates 1/d for d in [0.5, 1) until the precision of
// 1 - d·x exceeds target bits. The measured precision may be one bit
// optimistic because d is viewed truncated, hence the strict comparison.
func reciprocal[D digit.Digit](d scaledFloat[D], target int, opts Options) (scaledFloat[D], error) {
	W := int(digit.Width[D]())
	one := newScaled([]D{1}, 0)

	// 48/17 and 32/17 to two fractional digits.
	c1, _ := divSingle(Nat[D]{48}.Lsh(uint(2*W)), 17)
	c2, _ := divSingle(Nat[D]{32}.Lsh(uint(2*W)), 17)
	x := newScaled(c1, -2).sub(newScaled(c2, -2).mul(d.msdView(2), opts))

	maxDigits := (target+2+W-1)/W + 2
	predicted := bits.Len(uint((target+3)/4)) + 1
	limit := 2 * predicted

	p := 0
	for step := 0; ; step++ {
		wd := min(maxDigits, (2*p+2*W-1)/W+1)
		xw := x.roundTo(wd)
		e := one.sub(d.msdView(wd + 1).mul(xw, opts))
		// The view of d only certifies precision up to its own length.
		p = min(e.precision(), wd*W-2)
		if p > target {
			return xw, nil
		}
		if step >= limit {
			return scaledFloat[D]{}, ErrConvergence
		}
		x = xw.add(xw.mul(e, opts))
	}
}

// fixQuotient corrects an estimate q of u/v by whole units of v and
// returns the exact quotient and remainder. It reports false if more than
// maxFixups corrections were needed.
func fixQuotient[D digit.Digit](u, v []D, q Nat[D], opts Options) (Nat[D], Nat[D], bool) {
	one := Nat[D]{1}
	vv := Nat[D](v)
	prod := q.MulWith(vv, opts)
	fixes := 0
	for cmpDigits(prod, u) > 0 {
		q.SubAssign(one)
		prod.SubAssign(vv)
		if fixes++; fixes > maxFixups {
			return nil, nil, false
		}
	}
	r := Nat[D](u).Sub(prod)
	for cmpDigits(r, v) >= 0 {
		q.AddAssign(one)
		r.SubAssign(vv)
		if fixes++; fixes > maxFixups {
			return nil, nil, false
		}
	}
	return q, r, true
}
