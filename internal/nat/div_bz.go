package nat

import (
	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/digit"
)

// bzDivider carries the recursion parameters of one Burnikel–Ziegler
// division.
type bzDivider[D digit.Digit] struct {
	opts  Options
	limit int // largest block length handled by the base case
	w     uint
}

// divBurnikelZiegler divides u by v with recursive block division
// (Burnikel & Ziegler, "Fast Recursive Division", 1998).
//
// The divisor is padded to n = j·m digits, with m a power of two and
// j <= limit, and shifted left so its top bit is set. The dividend,
// shifted by the same amount, is consumed in n-digit blocks, two at a time,
// by 2n-by-n steps. The shift is undone on the remainder.
func divBurnikelZiegler[D digit.Digit](u, v []D, opts Options) (Nat[D], Nat[D], error) {
	if cmpDigits(u, v) < 0 {
		// Zero quotient: the dividend is already the remainder.
		return Zero[D](), FromDigits(u), nil
	}
	if len(v) == 1 {
		q, r := divSingle(u, v[0])
		return q, Nat[D]{r}, nil
	}

	bz := bzDivider[D]{opts: opts, limit: opts.newtonThreshold(), w: digit.Width[D]()}
	W := int(bz.w)

	s := len(v)
	m := 1
	for s > m*bz.limit {
		m *= 2
	}
	j := (s + m - 1) / m
	n := j * m

	sigma := uint(n*W - Nat[D](v).BitLen())
	b := Nat[D](v).Lsh(sigma)
	a := Nat[D](u).Lsh(sigma)

	// t blocks with the top one below BASE^n/2, so the leading pair is
	// smaller than b·BASE^n.
	t := max(2, (a.BitLen()+1+n*W-1)/(n*W))

	q := make([]D, (t-1)*n)
	z := blockRange(a, (t-2)*n, t*n)
	var r Nat[D]
	for i := t - 2; i >= 0; i-- {
		qi, ri, err := bz.div2n1n(z, b, n)
		if err != nil {
			return nil, nil, err
		}
		copy(q[i*n:], sig(qi))
		if i > 0 {
			z = ri.Lsh(uint(n*W)).Add(blockRange(a, (i-1)*n, i*n))
		} else {
			r = ri
		}
	}
	if debugChecks && cmpDigits(r, b) >= 0 {
		panic("nat: Burnikel–Ziegler remainder not below divisor")
	}
	return norm(q), r.Rsh(sigma), nil
}

// div2n1n divides a < b·BASE^n by the normalized n-digit b.
func (bz bzDivider[D]) div2n1n(a, b Nat[D], n int) (Nat[D], Nat[D], error) {
	if n&1 == 1 || n <= bz.limit {
		return divNewton(sig(a), sig(b), bz.opts)
	}
	h := n / 2
	hw := uint(h) * bz.w
	b1, b2 := blockRange(b, h, n), blockRange(b, 0, h)

	q1, r, err := bz.div3n2n(a.Rsh(hw), b, b1, b2, h)
	if err != nil {
		return nil, nil, err
	}
	q2, s, err := bz.div3n2n(r.Lsh(hw).Add(blockRange(a, 0, h)), b, b1, b2, h)
	if err != nil {
		return nil, nil, err
	}
	return q1.Lsh(hw).Add(q2), s, nil
}

// div3n2n divides the 3h-digit a = [a1 a2 a3] by the 2h-digit b = [b1 b2]
// where a < b·BASE^h.
func (bz bzDivider[D]) div3n2n(a, b, b1, b2 Nat[D], h int) (Nat[D], Nat[D], error) {
	hw := uint(h) * bz.w
	a12 := a.Rsh(hw)
	a1 := a.Rsh(2 * hw)

	var qhat, r1 Nat[D]
	if a1.Cmp(b1) < 0 {
		var err error
		qhat, r1, err = bz.div2n1n(a12, b1, h)
		if err != nil {
			return nil, nil, err
		}
	} else {
		// a1 == b1: the quotient digit block saturates at BASE^h - 1 and
		// r1 = [a1 a2] - [b1 0] + b1.
		qhat = maxBlock[D](h)
		r1 = a12.Add(b1).Sub(b1.Lsh(hw))
	}

	d := qhat.Mul(b2)
	x := r1.Lsh(hw).Add(blockRange(a, 0, h))
	if x.Cmp(d) >= 0 {
		return qhat, x.Sub(d), nil
	}

	// The estimate is too large by at most two. Walk the deficit d - x down
	// by b until one more step would overshoot, then finish with b - deficit.
	one := Nat[D]{1}
	def := d.Sub(x)
	for {
		qhat.SubAssign(one)
		if def.Cmp(b) <= 0 {
			buf := grow([]D(def), len(b))
			arith.RSubAssign(buf, b, len(def))
			r := norm(buf[:len(b)])
			if debugChecks && r.Cmp(b) >= 0 {
				panic("nat: 3n/2n remainder not below divisor")
			}
			return qhat, r, nil
		}
		def.SubAssign(b)
	}
}

// blockRange returns digits [lo, hi) of x as a normalized Nat.
func blockRange[D digit.Digit](x Nat[D], lo, hi int) Nat[D] {
	if lo >= len(x) {
		return Zero[D]()
	}
	return FromDigits([]D(x)[lo:min(hi, len(x))])
}

// maxBlock returns BASE^h - 1.
func maxBlock[D digit.Digit](h int) Nat[D] {
	z := make([]D, h)
	for i := range z {
		z[i] = digit.Max[D]()
	}
	return z
}
