package nat

import (
	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/digit"
)

// Mul returns x * y using the default options.
func (x Nat[D]) Mul(y Nat[D]) Nat[D] {
	return x.MulWith(y, DefaultOptions())
}

// MulWith returns x * y using opts to pick the algorithm.
func (x Nat[D]) MulWith(y Nat[D], opts Options) Nat[D] {
	a, b := sig(x), sig(y)
	if len(a) == 0 || len(b) == 0 {
		return Zero[D]()
	}
	z := make([]D, len(a)+len(b))
	mulInto(z, a, b, opts)
	return norm(z)
}

// Sqr returns x * x.
func (x Nat[D]) Sqr() Nat[D] {
	return x.Mul(x)
}

// MulAssign sets z = z * y, reusing z's storage when it is large enough.
func (z *Nat[D]) MulAssign(y Nat[D]) {
	p := z.MulWith(y, DefaultOptions())
	if cap(*z) >= len(p) {
		buf := []D(*z)[:len(p)]
		copy(buf, p)
		*z = Nat[D](buf)
		return
	}
	*z = p
}

// MulAssignDigit sets z = z * d in place. The product grows by at most one
// digit, which is reserved before the multiply.
func (z *Nat[D]) MulAssignDigit(d D) {
	x := sig([]D(*z))
	if d == 0 || len(x) == 0 {
		*z = norm([]D(*z)[:0])
		return
	}
	n := len(x)
	buf := grow(x, n+1)
	buf[n] = arith.MulAddVWW(buf[:n], buf[:n], d, 0)
	*z = norm(buf)
}

// mulInto sets z = a * b. len(z) must be len(a)+len(b), and z must not
// alias a or b. Width doubling is decided here, once, before any recursion.
func mulInto[D digit.Digit](z, a, b []D, opts Options) {
	if opts.Doubling && digit.Width[D]() == 32 && len(a) >= 2 && len(b) >= 2 {
		mulDoubled(z, a, b, opts)
		return
	}
	mulDispatch(z, a, b, opts)
}

// mulDispatch sets z = a * b, choosing schoolbook or Karatsuba.
func mulDispatch[D digit.Digit](z, a, b []D, opts Options) {
	if len(a) < len(b) {
		a, b = b, a
	}
	if SelectMultiplication(len(a), len(b), opts) == MulSchoolbook || len(b) < minKaratsuba {
		basicMul(z, a, b)
		return
	}
	karatsubaMul(z, a, b, opts)
}

// basicMul sets z = a * b by schoolbook multiply-accumulate.
func basicMul[D digit.Digit](z, a, b []D) {
	clear(z[:len(a)+len(b)])
	for i, d := range b {
		if d != 0 {
			z[len(a)+i] = arith.AddMulVVW(z[i:i+len(a)], a, d)
		}
	}
}

// mulDoubled multiplies 32-bit digits as packed 64-bit pairs. Even-length
// prefixes are packed and multiplied; an odd top digit of either operand is
// folded back in with one multiply-accumulate pass.
func mulDoubled[D digit.Digit](z, a, b []D, opts Options) {
	la, lb := len(a), len(b)
	ae, be := a[:la&^1], b[:lb&^1]

	pa, pb := pack64(ae), pack64(be)
	pz := make([]uint64, len(pa)+len(pb))
	half := opts
	half.KaratsubaThreshold = max(opts.karatsubaThreshold()/2, minKaratsuba)
	half.ParallelThreshold = opts.ParallelThreshold / 2
	mulDispatch(pz, pa, pb, half)

	clear(z)
	unpack64(z, pz)

	if la&1 == 1 {
		at := a[la-1]
		c := arith.AddMulVVW(z[la-1:la-1+lb], b, at)
		arith.AddWordAssign(z[la-1+lb:], c)
	}
	if lb&1 == 1 {
		bt := b[lb-1]
		c := arith.AddMulVVW(z[lb-1:lb-1+len(ae)], ae, bt)
		arith.AddWordAssign(z[lb-1+len(ae):], c)
	}
}

func pack64[D digit.Digit](x []D) []uint64 {
	p := make([]uint64, len(x)/2)
	for i := range p {
		p[i] = uint64(x[2*i]) | uint64(x[2*i+1])<<32
	}
	return p
}

func unpack64[D digit.Digit](z []D, p []uint64) {
	for i, w := range p {
		z[2*i] = D(w)
		z[2*i+1] = D(w >> 32)
	}
}
