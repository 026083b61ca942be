package nat

import "github.com/agbru/bignum/internal/digit"

// BitLen returns the number of bits needed to represent x; 0 for zero.
func (x Nat[D]) BitLen() int {
	a := sig(x)
	if len(a) == 0 {
		return 0
	}
	return (len(a)-1)*int(digit.Width[D]()) + digit.Len(a[len(a)-1])
}

// TrailingZeroBits returns the number of consecutive zero bits from the
// least significant end; 0 for zero.
func (x Nat[D]) TrailingZeroBits() uint {
	for i, d := range sig(x) {
		if d != 0 {
			return uint(i)*digit.Width[D]() + digit.TrailingZeros(d)
		}
	}
	return 0
}

// Bit returns the value of bit i.
func (x Nat[D]) Bit(i uint) uint {
	w := digit.Width[D]()
	j := int(i / w)
	if j >= len(x) {
		return 0
	}
	return uint(x[j]>>(i%w)) & 1
}

// SetBit returns x with bit i set to b (0 or 1).
func (x Nat[D]) SetBit(i uint, b uint) Nat[D] {
	w := digit.Width[D]()
	j := int(i / w)
	m := D(1) << (i % w)
	z := make([]D, max(len(x), j+1))
	copy(z, x)
	switch b {
	case 0:
		z[j] &^= m
	case 1:
		z[j] |= m
	default:
		panic("nat: SetBit bit value must be 0 or 1")
	}
	return norm(z)
}

// And returns x & y.
func (x Nat[D]) And(y Nat[D]) Nat[D] {
	n := min(len(x), len(y))
	z := make([]D, max(n, 1))
	for i := 0; i < n; i++ {
		z[i] = x[i] & y[i]
	}
	return norm(z)
}

// AndNot returns x &^ y.
func (x Nat[D]) AndNot(y Nat[D]) Nat[D] {
	z := make([]D, max(len(x), 1))
	copy(z, x)
	for i := 0; i < min(len(x), len(y)); i++ {
		z[i] &^= y[i]
	}
	return norm(z)
}

// Or returns x | y.
func (x Nat[D]) Or(y Nat[D]) Nat[D] {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]D, max(len(x), 1))
	copy(z, x)
	for i, d := range y {
		z[i] |= d
	}
	return norm(z)
}

// Xor returns x ^ y.
func (x Nat[D]) Xor(y Nat[D]) Nat[D] {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]D, max(len(x), 1))
	copy(z, x)
	for i, d := range y {
		z[i] ^= d
	}
	return norm(z)
}
