package nat

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/agbru/bignum/internal/digit"
)

// toBig converts x to a *big.Int through its hexadecimal form.
func toBig[D digit.Digit](t testing.TB, x Nat[D]) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(x.Text(16), 16)
	if !ok {
		t.Fatalf("math/big rejected %q", x.Text(16))
	}
	return b
}

// fromBig converts a non-negative *big.Int to a Nat.
func fromBig[D digit.Digit](t testing.TB, b *big.Int) Nat[D] {
	t.Helper()
	x, err := ParseBase[D](b.Text(16), 16)
	if err != nil {
		t.Fatalf("ParseBase(%s): %v", b.Text(16), err)
	}
	return x
}

// fromBytes builds a Nat from big-endian bytes, as fuzz inputs arrive.
func fromBytes[D digit.Digit](t testing.TB, p []byte) (Nat[D], *big.Int) {
	t.Helper()
	b := new(big.Int).SetBytes(p)
	return fromBig[D](t, b), b
}

// ones returns a Nat of n digits, each equal to one.
func ones[D digit.Digit](n int) Nat[D] {
	z := make(Nat[D], n)
	for i := range z {
		z[i] = 1
	}
	return z
}

func randomNat[D digit.Digit](r *rand.Rand, maxDigits int) Nat[D] {
	w := int(digit.Width[D]())
	return Random[D](r, 1+r.Intn(maxDigits*w))
}

// exactNat returns a random value of exactly n digits.
func exactNat[D digit.Digit](r *rand.Rand, n int) Nat[D] {
	return Random[D](r, n*int(digit.Width[D]()))
}

func assertNormalized[D digit.Digit](t testing.TB, x Nat[D]) {
	t.Helper()
	if len(x) == 0 {
		t.Fatal("empty Nat: zero must be one zero digit")
	}
	if len(x) > 1 && x[len(x)-1] == 0 {
		t.Fatalf("Nat has a most-significant zero digit: %v", []D(x))
	}
}
