package bigint

import "github.com/agbru/bignum/internal/nat"

// Bitwise operations treat negative values as infinite two's complement.
// For x < 0, ^x == |x| - 1, so every case reduces to operations on
// non-negative magnitudes.

// And returns x & y.
func (x Int[D]) And(y Int[D]) Int[D] {
	if x.neg == y.neg {
		if x.neg {
			// (-x) & (-y) == ^(x-1) & ^(y-1) == ^((x-1) | (y-1)) == -(((x-1) | (y-1)) + 1)
			x1, y1 := x.minusOne(), y.minusOne()
			return newInt(x1.Or(y1).Add(one[D]()), true)
		}
		return newInt(x.mag().And(y.mag()), false)
	}
	if x.neg {
		x, y = y, x // & is symmetric
	}
	// x & (-y) == x & ^(y-1) == x &^ (y-1)
	return newInt(x.mag().AndNot(y.minusOne()), false)
}

// Or returns x | y.
func (x Int[D]) Or(y Int[D]) Int[D] {
	if x.neg == y.neg {
		if x.neg {
			// (-x) | (-y) == ^(x-1) | ^(y-1) == ^((x-1) & (y-1)) == -(((x-1) & (y-1)) + 1)
			x1, y1 := x.minusOne(), y.minusOne()
			return newInt(x1.And(y1).Add(one[D]()), true)
		}
		return newInt(x.mag().Or(y.mag()), false)
	}
	if x.neg {
		x, y = y, x // | is symmetric
	}
	// x | (-y) == x | ^(y-1) == ^((y-1) &^ x) == -(((y-1) &^ x) + 1)
	return newInt(y.minusOne().AndNot(x.mag()).Add(one[D]()), true)
}

// Xor returns x ^ y.
func (x Int[D]) Xor(y Int[D]) Int[D] {
	if x.neg == y.neg {
		if x.neg {
			// (-x) ^ (-y) == ^(x-1) ^ ^(y-1) == (x-1) ^ (y-1)
			return newInt(x.minusOne().Xor(y.minusOne()), false)
		}
		return newInt(x.mag().Xor(y.mag()), false)
	}
	if x.neg {
		x, y = y, x // ^ is symmetric
	}
	// x ^ (-y) == x ^ ^(y-1) == ^(x ^ (y-1)) == -((x ^ (y-1)) + 1)
	return newInt(x.mag().Xor(y.minusOne()).Add(one[D]()), true)
}

// Not returns ^x.
func (x Int[D]) Not() Int[D] {
	if x.neg {
		// ^(-x) == ^(^(x-1)) == x-1
		return newInt(x.minusOne(), false)
	}
	// ^x == -x-1 == -(x+1)
	return newInt(x.mag().Add(one[D]()), true)
}

// minusOne returns |x| - 1 for x != 0.
func (x Int[D]) minusOne() nat.Nat[D] {
	return x.mag().Sub(one[D]())
}
