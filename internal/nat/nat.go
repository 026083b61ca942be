package nat

import (
	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/digit"
)

// Nat is an unsigned integer of unbounded magnitude stored as little-endian
// digits. See the package documentation for the normalization invariant.
type Nat[D digit.Digit] []D

// Zero returns the normalized zero value.
func Zero[D digit.Digit]() Nat[D] {
	return Nat[D]{0}
}

// FromUint64 returns v as a Nat.
func FromUint64[D digit.Digit](v uint64) Nat[D] {
	if digit.Width[D]() == 64 {
		return Nat[D]{D(v)}
	}
	return norm([]D{D(v), D(v >> 32)})
}

// FromDigits returns a normalized copy of the little-endian digits ds.
func FromDigits[D digit.Digit](ds []D) Nat[D] {
	z := make([]D, max(len(ds), 1))
	copy(z, ds)
	return norm(z)
}

// norm trims most-significant zero digits, leaving exactly one digit for zero.
func norm[D digit.Digit](z []D) Nat[D] {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		if cap(z) == 0 {
			return Zero[D]()
		}
		z = z[:1]
		z[0] = 0
		return Nat[D](z)
	}
	return Nat[D](z[:i])
}

// sig returns x without most-significant zero digits; zero becomes empty.
func sig[D digit.Digit](x []D) []D {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// grow returns z extended to n digits, reusing its backing array when the
// capacity suffices. Digits beyond the old length are zero.
func grow[D digit.Digit](z []D, n int) []D {
	if n <= len(z) {
		return z
	}
	if n <= cap(z) {
		old := len(z)
		z = z[:n]
		clear(z[old:])
		return z
	}
	nz := make([]D, n, n+n/4)
	copy(nz, z)
	return nz
}

// cmpDigits compares two significant-digit slices.
func cmpDigits[D digit.Digit](x, y []D) int {
	x, y = sig(x), sig(y)
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Nat[D]) Cmp(y Nat[D]) int {
	return cmpDigits(x, y)
}

// Equal reports whether x == y.
func (x Nat[D]) Equal(y Nat[D]) bool {
	return cmpDigits(x, y) == 0
}

// IsZero reports whether x == 0.
func (x Nat[D]) IsZero() bool {
	return len(sig(x)) == 0
}

// Len returns the number of significant digits; 1 for zero.
func (x Nat[D]) Len() int {
	return max(len(sig(x)), 1)
}

// Clone returns a normalized copy of x that shares no storage with it.
func (x Nat[D]) Clone() Nat[D] {
	return FromDigits(x)
}

// Uint64 returns the low 64 bits of x and whether x fits in 64 bits.
func (x Nat[D]) Uint64() (uint64, bool) {
	s := sig(x)
	if digit.Width[D]() == 64 {
		switch len(s) {
		case 0:
			return 0, true
		case 1:
			return uint64(s[0]), true
		}
		return uint64(s[0]), false
	}
	var v uint64
	for i := min(len(s), 2) - 1; i >= 0; i-- {
		v = v<<32 | uint64(s[i])
	}
	return v, len(s) <= 2
}

// ─── Addition and Subtraction ───

// Add returns x + y.
func (x Nat[D]) Add(y Nat[D]) Nat[D] {
	a, b := sig(x), sig(y)
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make([]D, len(a)+1)
	copy(z, a)
	arith.AddAssign(z, b)
	return norm(z)
}

// Sub returns x - y. It panics if y > x.
func (x Nat[D]) Sub(y Nat[D]) Nat[D] {
	a, b := sig(x), sig(y)
	if cmpDigits(a, b) < 0 {
		panic("nat: subtraction underflow")
	}
	z := make([]D, len(a))
	copy(z, a)
	arith.SubAssign(z, b)
	return norm(z)
}

// AddAssign sets z = z + y.
func (z *Nat[D]) AddAssign(y Nat[D]) {
	b := sig(y)
	buf := grow([]D(*z), max(len(*z), len(b))+1)
	arith.AddAssign(buf, b)
	*z = norm(buf)
}

// SubAssign sets z = z - y. It panics if y > z.
func (z *Nat[D]) SubAssign(y Nat[D]) {
	b := sig(y)
	if cmpDigits(*z, b) < 0 {
		panic("nat: subtraction underflow")
	}
	buf := sig([]D(*z))
	arith.SubAssign(buf, b)
	*z = norm([]D(*z)[:len(buf)])
}

// AddAssignDigit sets z = z + d.
func (z *Nat[D]) AddAssignDigit(d D) {
	buf := grow([]D(*z), len(*z)+1)
	arith.AddWordAssign(buf, d)
	*z = norm(buf)
}
