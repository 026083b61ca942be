package nat

import (
	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/digit"
)

// QuoRem returns the quotient and remainder of x / y using the default
// options. It returns ErrDivisionByZero if y is zero.
func (x Nat[D]) QuoRem(y Nat[D]) (q, r Nat[D], err error) {
	return x.QuoRemWith(y, DefaultOptions())
}

// QuoRemWith returns the quotient and remainder of x / y, choosing the
// division algorithm from opts. On success 0 <= r < y and y*q + r == x.
func (x Nat[D]) QuoRemWith(y Nat[D], opts Options) (q, r Nat[D], err error) {
	u, v := sig(x), sig(y)
	if len(v) == 0 {
		return nil, nil, ErrDivisionByZero
	}

	switch SelectDivision(len(v), opts) {
	case DivSingleDigit:
		qd, rd := divSingle(u, v[0])
		q, r = qd, Nat[D]{rd}
	case DivSchoolbook:
		q, r = divSchoolbook(u, v)
	case DivNewton:
		q, r, err = divNewton(u, v, opts)
	default:
		q, r, err = divBurnikelZiegler(u, v, opts)
	}
	if err != nil {
		return nil, nil, err
	}
	if debugChecks {
		verifyQuoRem(u, v, q, r)
	}
	return q, r, nil
}

// Quo returns x / y truncated.
func (x Nat[D]) Quo(y Nat[D]) (Nat[D], error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns x mod y.
func (x Nat[D]) Rem(y Nat[D]) (Nat[D], error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// QuoRemDigit divides x by a single non-zero digit.
func (x Nat[D]) QuoRemDigit(d D) (Nat[D], D, error) {
	if d == 0 {
		return nil, 0, ErrDivisionByZero
	}
	q, r := divSingle(sig(x), d)
	return q, r, nil
}

// divSingle divides u by the single digit d != 0.
func divSingle[D digit.Digit](u []D, d D) (Nat[D], D) {
	q := make([]D, max(len(u), 1))
	r := arith.DivVW(q[:len(u)], u, d)
	return norm(q), r
}

// verifyQuoRem panics unless v*q + r == u and r < v.
func verifyQuoRem[D digit.Digit](u, v []D, q, r Nat[D]) {
	if cmpDigits(r, v) >= 0 {
		panic("nat: division remainder not below divisor")
	}
	back := q.MulWith(Nat[D](v), Options{Multiplication: MulSchoolbook})
	back.AddAssign(r)
	if cmpDigits(back, u) != 0 {
		panic("nat: divisor*quotient + remainder != dividend")
	}
}
