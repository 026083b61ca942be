package nat

import (
	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/digit"
)

// Lsh returns x << s.
func (x Nat[D]) Lsh(s uint) Nat[D] {
	a := sig(x)
	if len(a) == 0 {
		return Zero[D]()
	}
	w := digit.Width[D]()
	whole, part := int(s/w), s%w
	z := make([]D, len(a)+whole+1)
	z[whole+len(a)] = arith.ShlVU(z[whole:whole+len(a)], a, part)
	return norm(z)
}

// Rsh returns x >> s. Shifting out every significant bit yields zero.
func (x Nat[D]) Rsh(s uint) Nat[D] {
	a := sig(x)
	w := digit.Width[D]()
	whole, part := int(s/w), s%w
	if whole >= len(a) {
		return Zero[D]()
	}
	z := make([]D, len(a)-whole)
	arith.ShrVU(z, a[whole:], part)
	return norm(z)
}

// LshAssign sets z = z << s in place.
func (z *Nat[D]) LshAssign(s uint) {
	a := sig([]D(*z))
	n := len(a)
	if n == 0 {
		*z = norm(a)
		return
	}
	w := digit.Width[D]()
	whole, part := int(s/w), s%w
	buf := grow(a, n+whole+1)
	// Shifting top-down lets the source and destination overlap.
	buf[whole+n] = arith.ShlVU(buf[whole:whole+n], buf[:n], part)
	clear(buf[:whole])
	*z = norm(buf)
}

// RshAssign sets z = z >> s in place.
func (z *Nat[D]) RshAssign(s uint) {
	a := sig([]D(*z))
	w := digit.Width[D]()
	whole, part := int(s/w), s%w
	if whole >= len(a) {
		*z = norm(a[:0])
		return
	}
	n := len(a) - whole
	arith.ShrVU(a[:n], a[whole:], part)
	*z = norm(a[:n])
}
