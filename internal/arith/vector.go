package arith

import "github.com/agbru/bignum/internal/digit"

// AddVV sets z = x + y and returns the carry. All three slices must have
// the same length; z may alias x or y.
func AddVV[D digit.Digit](z, x, y []D) D {
	return addVVWith(strategyFor[D](len(z)), z, x, y)
}

// SubVV sets z = x - y and returns the borrow. All three slices must have
// the same length; z may alias x or y.
func SubVV[D digit.Digit](z, x, y []D) D {
	return subVVWith(strategyFor[D](len(z)), z, x, y)
}

// AddAssign adds src into dst, propagating the carry through all of dst,
// and returns the carry out of the top digit. len(dst) must be at least
// len(src).
func AddAssign[D digit.Digit](dst, src []D) D {
	n := len(src)
	if len(dst) < n {
		panic("arith: AddAssign destination shorter than source")
	}
	c := AddVV(dst[:n], dst[:n], src)
	return AddWordAssign(dst[n:], c)
}

// SubAssign subtracts src from dst, propagating the borrow through all of
// dst, and returns the borrow out of the top digit. len(dst) must be at
// least len(src).
func SubAssign[D digit.Digit](dst, src []D) D {
	n := len(src)
	if len(dst) < n {
		panic("arith: SubAssign destination shorter than source")
	}
	b := SubVV(dst[:n], dst[:n], src)
	return SubWordAssign(dst[n:], b)
}

// RSubAssign replaces dst with src - dst, where dst holds dstLen
// meaningful digits and src holds len(src) >= dstLen digits. The result
// occupies dst[:len(src)]; len(dst) must be at least len(src). The returned
// borrow is non-zero only if src < dst.
//
// Above dstLen the subtrahend is zero, so the window difference's borrow is
// carried through the copied tail of src with a single propagation pass.
func RSubAssign[D digit.Digit](dst, src []D, dstLen int) D {
	m := len(src)
	if dstLen > m || len(dst) < m {
		panic("arith: RSubAssign operand lengths out of range")
	}
	b := SubVV(dst[:dstLen], src[:dstLen], dst[:dstLen])
	copy(dst[dstLen:m], src[dstLen:])
	return SubWordAssign(dst[dstLen:m], b)
}

// AddWordAssign adds the single digit c into z and returns the carry out.
// Propagation stops as soon as the carry is absorbed.
func AddWordAssign[D digit.Digit](z []D, c D) D {
	for i := 0; i < len(z) && c != 0; i++ {
		z[i], c = digit.Add(z[i], c, 0)
	}
	return c
}

// SubWordAssign subtracts the single digit b from z and returns the borrow.
func SubWordAssign[D digit.Digit](z []D, b D) D {
	for i := 0; i < len(z) && b != 0; i++ {
		z[i], b = digit.Sub(z[i], b, 0)
	}
	return b
}

// AddVW sets z = x + y for a single digit y and returns the carry.
func AddVW[D digit.Digit](z, x []D, y D) D {
	c := y
	for i := range z {
		z[i], c = digit.Add(x[i], c, 0)
	}
	return c
}

// SubVW sets z = x - y for a single digit y and returns the borrow.
func SubVW[D digit.Digit](z, x []D, y D) D {
	b := y
	for i := range z {
		z[i], b = digit.Sub(x[i], b, 0)
	}
	return b
}

// MulAddVWW sets z = x*y + r and returns the carry digit.
func MulAddVWW[D digit.Digit](z, x []D, y, r D) D {
	if strategyFor[D](len(z)) == Platform {
		return D(bigMulAddVWW(asWords(z), asWords(x), word(y), word(r)))
	}
	return mulAddVWWGeneric(z, x, y, r)
}

// AddMulVVW adds x*y into z and returns the carry digit.
func AddMulVVW[D digit.Digit](z, x []D, y D) D {
	if strategyFor[D](len(z)) == Platform {
		return D(bigAddMulVVW(asWords(z), asWords(x), word(y)))
	}
	return addMulVVWGeneric(z, x, y)
}

// ShlVU sets z = x << s for 0 <= s < Width and returns the bits shifted
// out of the top digit. z may alias x at the same or a higher offset.
func ShlVU[D digit.Digit](z, x []D, s uint) (c D) {
	n := len(z)
	if n == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	r := digit.Width[D]() - s
	w1 := x[n-1]
	c = w1 >> r
	for i := n - 1; i > 0; i-- {
		w := w1
		w1 = x[i-1]
		z[i] = w<<s | w1>>r
	}
	z[0] = w1 << s
	return c
}

// ShrVU sets z = x >> s for 0 <= s < Width and returns the bits shifted
// out of the bottom digit, left-aligned. z may alias x at the same or a
// lower offset.
func ShrVU[D digit.Digit](z, x []D, s uint) (c D) {
	n := len(z)
	if n == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	r := digit.Width[D]() - s
	w1 := x[0]
	c = w1 << r
	for i := 0; i < n-1; i++ {
		w := w1
		w1 = x[i+1]
		z[i] = w>>s | w1<<r
	}
	z[n-1] = w1 >> s
	return c
}

// DivVW sets z = x / y for a single non-zero digit y and returns the
// remainder. z may alias x.
func DivVW[D digit.Digit](z, x []D, y D) (r D) {
	for i := len(x) - 1; i >= 0; i-- {
		z[i], r = digit.Div(r, x[i], y)
	}
	return r
}

// MulVW sets z = x * y and returns the carry digit. It is MulAddVWW with a
// zero addend.
func MulVW[D digit.Digit](z, x []D, y D) D {
	return MulAddVWW(z, x, y, 0)
}
