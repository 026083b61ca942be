package nat

import (
	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/digit"
)

// divSchoolbook is Knuth's Algorithm D. It is the reference that the faster
// dividers are tested against.
func divSchoolbook[D digit.Digit](u, v []D) (Nat[D], Nat[D]) {
	if cmpDigits(u, v) < 0 {
		return Zero[D](), FromDigits(u)
	}
	if len(v) == 1 {
		q, r := divSingle(u, v[0])
		return q, Nat[D]{r}
	}
	n := len(v)
	m := len(u) - n

	// Scale so that the divisor's top bit is set.
	shift := digit.LeadingZeros(v[n-1])
	vn := make([]D, n)
	arith.ShlVU(vn, v, shift)
	un := make([]D, len(u)+1)
	un[len(u)] = arith.ShlVU(un[:len(u)], u, shift)

	q := make([]D, m+1)
	knuthDivide(q, un, vn)

	arith.ShrVU(un[:n], un[:n], shift)
	return norm(q), norm(un[:n])
}

// knuthDivide overwrites q with u / v and leaves the remainder in u[:len(v)].
// v must be normalized with at least two digits; len(u) == len(q)+len(v).
func knuthDivide[D digit.Digit](q, u, v []D) {
	n := len(v)
	m := len(u) - n - 1
	qhatv := make([]D, n+1)
	vn1, vn2 := v[n-1], v[n-2]

	for j := m; j >= 0; j-- {
		qhat := digit.Max[D]()
		ujn := u[j+n]
		// ujn <= vn1 holds, so the 2-by-1 guess fits a digit unless equal.
		if ujn != vn1 {
			var rhat D
			qhat, rhat = digit.Div(ujn, u[j+n-1], vn1)

			// Refine to a 3-by-2 guess.
			x1, x2 := digit.Mul(qhat, vn2)
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prev := rhat
				rhat += vn1
				if rhat < prev {
					break
				}
				x1, x2 = digit.Mul(qhat, vn2)
			}
		}

		qhatv[n] = arith.MulAddVWW(qhatv[:n], v, qhat, 0)
		if c := arith.SubVV(u[j:j+n+1], u[j:j+n+1], qhatv); c != 0 {
			c := arith.AddVV(u[j:j+n], u[j:j+n], v)
			u[j+n] += c
			qhat--
		}
		q[j] = qhat
	}
}

// greaterThan reports whether the two-digit numbers x1 x2 > y1 y2, high
// digit first.
func greaterThan[D digit.Digit](x1, x2, y1, y2 D) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}
