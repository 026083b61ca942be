package arith

import "github.com/agbru/bignum/internal/digit"

func addVVWith[D digit.Digit](s Strategy, z, x, y []D) D {
	switch s {
	case Platform:
		return D(bigAddVV(asWords(z), asWords(x), asWords(y)))
	case Doubled:
		k := len(z) &^ 1
		if k > 0 && aligned(z, x, y) {
			c := D(bigAddVV(asWords(z[:k]), asWords(x[:k]), asWords(y[:k])))
			return addVVGeneric(z[k:], x[k:], y[k:], c)
		}
	}
	return addVVGeneric(z, x, y, 0)
}

func subVVWith[D digit.Digit](s Strategy, z, x, y []D) D {
	switch s {
	case Platform:
		return D(bigSubVV(asWords(z), asWords(x), asWords(y)))
	case Doubled:
		k := len(z) &^ 1
		if k > 0 && aligned(z, x, y) {
			b := D(bigSubVV(asWords(z[:k]), asWords(x[:k]), asWords(y[:k])))
			return subVVGeneric(z[k:], x[k:], y[k:], b)
		}
	}
	return subVVGeneric(z, x, y, 0)
}

func addVVGeneric[D digit.Digit](z, x, y []D, c D) D {
	for i := range z {
		z[i], c = digit.Add(x[i], y[i], c)
	}
	return c
}

func subVVGeneric[D digit.Digit](z, x, y []D, b D) D {
	for i := range z {
		z[i], b = digit.Sub(x[i], y[i], b)
	}
	return b
}

func mulAddVWWGeneric[D digit.Digit](z, x []D, y, r D) D {
	c := r
	for i := range z {
		c, z[i] = digit.MulAdd(x[i], y, c)
	}
	return c
}

func addMulVVWGeneric[D digit.Digit](z, x []D, y D) D {
	var c D
	for i := range z {
		hi, lo := digit.MulAdd(x[i], y, z[i])
		var cc D
		z[i], cc = digit.Add(lo, c, 0)
		c = hi + cc
	}
	return c
}
