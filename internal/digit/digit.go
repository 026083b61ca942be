package digit

import (
	"math/bits"
	"unsafe"
)

// Digit is the numeric-width contract of the kernel. Adding support for a
// new native width means extending this type set and the width switches
// below; nothing above this package names a concrete width.
type Digit interface {
	~uint32 | ~uint64
}

// Width returns the number of bits in one digit of type D.
func Width[D Digit]() uint {
	var d D
	return uint(unsafe.Sizeof(d)) * 8
}

// Bytes returns the number of bytes in one digit of type D.
func Bytes[D Digit]() int {
	var d D
	return int(unsafe.Sizeof(d))
}

// Zero returns the zero digit.
func Zero[D Digit]() D { return 0 }

// One returns the digit with value one.
func One[D Digit]() D { return 1 }

// Max returns BASE-1, the largest digit value.
func Max[D Digit]() D { return ^D(0) }

func narrow[D Digit]() bool {
	var d D
	return unsafe.Sizeof(d) == 4
}

// Add returns x + y + carry and the carry out. carry must be 0 or 1.
func Add[D Digit](x, y, carry D) (sum, carryOut D) {
	if narrow[D]() {
		s, c := bits.Add32(uint32(x), uint32(y), uint32(carry))
		return D(s), D(c)
	}
	s, c := bits.Add64(uint64(x), uint64(y), uint64(carry))
	return D(s), D(c)
}

// Sub returns x - y - borrow and the borrow out. borrow must be 0 or 1.
func Sub[D Digit](x, y, borrow D) (diff, borrowOut D) {
	if narrow[D]() {
		d, b := bits.Sub32(uint32(x), uint32(y), uint32(borrow))
		return D(d), D(b)
	}
	d, b := bits.Sub64(uint64(x), uint64(y), uint64(borrow))
	return D(d), D(b)
}

// Mul returns the double-width product x*y as hi, lo.
func Mul[D Digit](x, y D) (hi, lo D) {
	if narrow[D]() {
		h, l := bits.Mul32(uint32(x), uint32(y))
		return D(h), D(l)
	}
	h, l := bits.Mul64(uint64(x), uint64(y))
	return D(h), D(l)
}

// MulAdd returns x*y + c as hi, lo. The result always fits two digits.
func MulAdd[D Digit](x, y, c D) (hi, lo D) {
	hi, lo = Mul(x, y)
	var cc D
	lo, cc = Add(lo, c, 0)
	return hi + cc, lo
}

// Div returns the quotient and remainder of (hi, lo) / y.
// It panics if y == 0 or y <= hi, since the quotient would not fit a digit.
func Div[D Digit](hi, lo, y D) (q, r D) {
	if narrow[D]() {
		qq, rr := bits.Div32(uint32(hi), uint32(lo), uint32(y))
		return D(qq), D(rr)
	}
	qq, rr := bits.Div64(uint64(hi), uint64(lo), uint64(y))
	return D(qq), D(rr)
}

// LeadingZeros returns the number of leading zero bits in x.
func LeadingZeros[D Digit](x D) uint {
	if narrow[D]() {
		return uint(bits.LeadingZeros32(uint32(x)))
	}
	return uint(bits.LeadingZeros64(uint64(x)))
}

// TrailingZeros returns the number of trailing zero bits in x; Width for 0.
func TrailingZeros[D Digit](x D) uint {
	if narrow[D]() {
		return uint(bits.TrailingZeros32(uint32(x)))
	}
	return uint(bits.TrailingZeros64(uint64(x)))
}

// Len returns the minimum number of bits required to represent x.
func Len[D Digit](x D) int {
	return int(Width[D]() - LeadingZeros(x))
}
