package nat

import (
	"math/rand"

	"github.com/agbru/bignum/internal/digit"
)

// Random returns a value of exactly bits bits drawn from r. bits <= 0
// yields zero.
func Random[D digit.Digit](r *rand.Rand, bits int) Nat[D] {
	if bits <= 0 {
		return Zero[D]()
	}
	W := int(digit.Width[D]())
	n := (bits + W - 1) / W
	z := make([]D, n)
	for i := range z {
		z[i] = D(r.Uint64())
	}
	top := uint(bits - (n-1)*W)
	if top < uint(W) {
		z[n-1] &= D(1)<<top - 1
	}
	z[n-1] |= D(1) << (top - 1)
	return norm(z)
}
