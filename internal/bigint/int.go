// Package bigint is a signed integer wrapper over the nat kernel: a sign
// flag plus an unsigned magnitude.
//
// Division truncates toward zero. Bitwise operations and right shifts
// behave as if the value were stored in infinite two's complement; they are
// computed on the magnitude with De Morgan transforms.
package bigint

import (
	"strings"

	"github.com/agbru/bignum/internal/digit"
	"github.com/agbru/bignum/internal/nat"
)

// Int is a signed integer. Zero is never negative.
type Int[D digit.Digit] struct {
	neg bool
	abs nat.Nat[D]
}

// FromInt64 returns v as an Int.
func FromInt64[D digit.Digit](v int64) Int[D] {
	if v < 0 {
		return Int[D]{neg: true, abs: nat.FromUint64[D](uint64(-(v + 1)) + 1)}
	}
	return Int[D]{abs: nat.FromUint64[D](uint64(v))}
}

// FromNat returns the Int with magnitude abs, negated if neg is set.
func FromNat[D digit.Digit](abs nat.Nat[D], neg bool) Int[D] {
	return newInt(abs.Clone(), neg)
}

// newInt normalizes the sign of zero.
func newInt[D digit.Digit](abs nat.Nat[D], neg bool) Int[D] {
	return Int[D]{neg: neg && !abs.IsZero(), abs: abs}
}

// Abs returns |x|.
func (x Int[D]) Abs() Int[D] { return Int[D]{abs: x.mag()} }

// Magnitude returns |x| as a Nat.
func (x Int[D]) Magnitude() nat.Nat[D] { return x.mag().Clone() }

func (x Int[D]) mag() nat.Nat[D] {
	if x.abs == nil {
		return nat.Zero[D]()
	}
	return x.abs
}

// Neg returns -x.
func (x Int[D]) Neg() Int[D] { return newInt(x.mag(), !x.neg) }

// Sign returns -1, 0 or +1.
func (x Int[D]) Sign() int {
	switch {
	case x.mag().IsZero():
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// BitLen returns the bit length of |x|.
func (x Int[D]) BitLen() int { return x.mag().BitLen() }

// Len returns the number of digits of |x|.
func (x Int[D]) Len() int { return x.mag().Len() }

// IsZero reports whether x == 0.
func (x Int[D]) IsZero() bool { return x.mag().IsZero() }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int[D]) Cmp(y Int[D]) int {
	switch {
	case x.neg == y.neg:
		c := x.mag().Cmp(y.mag())
		if x.neg {
			c = -c
		}
		return c
	case x.neg:
		return -1
	}
	return 1
}

// Add returns x + y.
func (x Int[D]) Add(y Int[D]) Int[D] {
	if x.neg == y.neg {
		return newInt(x.mag().Add(y.mag()), x.neg)
	}
	// Opposite signs: subtract the smaller magnitude from the larger.
	if x.mag().Cmp(y.mag()) >= 0 {
		return newInt(x.mag().Sub(y.mag()), x.neg)
	}
	return newInt(y.mag().Sub(x.mag()), y.neg)
}

// Sub returns x - y.
func (x Int[D]) Sub(y Int[D]) Int[D] {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Int[D]) Mul(y Int[D]) Int[D] {
	return newInt(x.mag().Mul(y.mag()), x.neg != y.neg)
}

// MulWith returns x * y using opts.
func (x Int[D]) MulWith(y Int[D], opts nat.Options) Int[D] {
	return newInt(x.mag().MulWith(y.mag(), opts), x.neg != y.neg)
}

// QuoRem returns the truncated quotient and remainder of x / y. The
// remainder takes the sign of x.
func (x Int[D]) QuoRem(y Int[D]) (q, r Int[D], err error) {
	return x.QuoRemWith(y, nat.DefaultOptions())
}

// QuoRemWith is QuoRem with explicit algorithm options.
func (x Int[D]) QuoRemWith(y Int[D], opts nat.Options) (q, r Int[D], err error) {
	qa, ra, err := x.mag().QuoRemWith(y.mag(), opts)
	if err != nil {
		return Int[D]{}, Int[D]{}, err
	}
	return newInt(qa, x.neg != y.neg), newInt(ra, x.neg), nil
}

// Quo returns x / y truncated toward zero.
func (x Int[D]) Quo(y Int[D]) (Int[D], error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of truncated division.
func (x Int[D]) Rem(y Int[D]) (Int[D], error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Lsh returns x << s.
func (x Int[D]) Lsh(s uint) Int[D] {
	return newInt(x.mag().Lsh(s), x.neg)
}

// Rsh returns x >> s with sign extension, rounding toward negative infinity.
func (x Int[D]) Rsh(s uint) Int[D] {
	if !x.neg {
		return newInt(x.mag().Rsh(s), false)
	}
	// (-x) >> s == ^((x-1) >> s) == -(((x-1) >> s) + 1)
	t := x.mag().Sub(one[D]()).Rsh(s)
	return newInt(t.Add(one[D]()), true)
}

// String returns x in decimal.
func (x Int[D]) String() string {
	return x.Text(10)
}

// Text returns x in base 2, 10 or 16 with a leading '-' when negative.
func (x Int[D]) Text(base int) string {
	s := x.mag().Text(base)
	if x.neg {
		return "-" + s
	}
	return s
}

// Parse converts s, with an optional sign and 0x/0b prefix, to an Int.
func Parse[D digit.Digit](s string) (Int[D], error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg, s = true, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	abs, err := nat.Parse[D](s)
	if err != nil {
		return Int[D]{}, err
	}
	return newInt(abs, neg), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse[D digit.Digit](s string) Int[D] {
	x, err := Parse[D](s)
	if err != nil {
		panic("bigint: MustParse(" + s + "): " + err.Error())
	}
	return x
}

func one[D digit.Digit]() nat.Nat[D] { return nat.FromUint64[D](1) }
