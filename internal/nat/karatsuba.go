package nat

import (
	"math/bits"
	"sync"

	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/digit"
)

// karatsubaMul sets z = a * b for len(a) >= len(b) >= minKaratsuba.
// len(z) must be len(a)+len(b).
func karatsubaMul[D digit.Digit](z, a, b []D, opts Options) {
	la, lb := len(a), len(b)

	// Unbalanced operands: multiply lb-digit chunks of a by b and accumulate.
	if la > 2*lb {
		clear(z)
		tmp := make([]D, 2*lb)
		for i := 0; i < la; i += lb {
			chunk := a[i:min(i+lb, la)]
			t := tmp[:len(chunk)+lb]
			mulDispatch(t, chunk, b, opts)
			arith.AddAssign(z[i:], t)
		}
		return
	}

	n := 1 << bits.Len(uint(la-1))
	x := make([]D, n)
	y := make([]D, n)
	copy(x, a)
	copy(y, b)
	p := make([]D, 2*n)

	threshold := opts.karatsubaThreshold()
	parallel := opts.ParallelThreshold > 0 && n >= opts.ParallelThreshold
	karatsuba(p, x, y, threshold, parallel)
	copy(z, p[:la+lb])
}

// karatsuba sets z = x * y where len(x) == len(y) == n is a power of two and
// len(z) == 2n. Below threshold it falls back to schoolbook.
//
// With x = x1·B^h + x0 and y = y1·B^h + y0:
//
//	z0 = x0·y0, z2 = x1·y1
//	z1 = (x0+x1)(y0+y1) - z0 - z2
//
// The half sums may carry one digit out; the carries cx, cy are applied to
// the middle product explicitly instead of widening the recursion.
func karatsuba[D digit.Digit](z, x, y []D, threshold int, parallel bool) {
	n := len(x)
	if n < 2*threshold || n < 2*minKaratsuba {
		basicMul(z, x, y)
		return
	}
	h := n / 2
	x0, x1 := x[:h], x[h:]
	y0, y1 := y[:h], y[h:]

	// Scratch: two half sums and the n+1 digit middle product.
	scratch := make([]D, 2*h+n+1)
	sx, sy, t := scratch[:h], scratch[h:2*h], scratch[2*h:]
	cx := arith.AddVV(sx, x0, x1)
	cy := arith.AddVV(sy, y0, y1)

	if parallel {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			karatsuba(z[:n], x0, y0, threshold, false)
		}()
		go func() {
			defer wg.Done()
			karatsuba(z[n:], x1, y1, threshold, false)
		}()
		karatsuba(t[:n], sx, sy, threshold, false)
		wg.Wait()
	} else {
		karatsuba(z[:n], x0, y0, threshold, false)
		karatsuba(z[n:], x1, y1, threshold, false)
		karatsuba(t[:n], sx, sy, threshold, false)
	}
	t[n] = 0

	// (sx + cx·B^h)(sy + cy·B^h) = sx·sy + (cx·sy + cy·sx)·B^h + cx·cy·B^n
	if cx != 0 {
		arith.AddAssign(t[h:], sy)
	}
	if cy != 0 {
		arith.AddAssign(t[h:], sx)
	}
	if cx != 0 && cy != 0 {
		arith.AddWordAssign(t[n:], 1)
	}

	arith.SubAssign(t, z[:n])
	arith.SubAssign(t, z[n:])
	arith.AddAssign(z[h:], t)
}
