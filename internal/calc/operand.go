package calc

import (
	"math/rand"

	"github.com/agbru/bignum/internal/bigint"
	"github.com/agbru/bignum/internal/digit"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/nat"
	"github.com/agbru/bignum/internal/natio"
)

// ParseOperand parses the text of the named operand. Malformed text yields
// an apperrors.ValidationError for that operand.
func ParseOperand[D digit.Digit](name, text string) (bigint.Int[D], error) {
	x, err := bigint.Parse[D](text)
	if err != nil {
		return bigint.Int[D]{}, apperrors.ValidationError{Field: name, Message: err.Error()}
	}
	return x, nil
}

// RandomOperand returns a non-negative operand of exactly bits bits drawn
// from a generator seeded with seed.
func RandomOperand[D digit.Digit](bits int, seed int64) bigint.Int[D] {
	r := rand.New(rand.NewSource(seed))
	return bigint.FromNat(nat.Random[D](r, bits), false)
}

// LoadOperand reads a non-negative operand from a natio file.
func LoadOperand[D digit.Digit](path string) (bigint.Int[D], error) {
	x, err := natio.ReadFile[D](path)
	if err != nil {
		return bigint.Int[D]{}, apperrors.WrapError(err, "reading operand %s", path)
	}
	return bigint.FromNat(x, false), nil
}

// SaveResult writes a non-negative value to a natio file.
func SaveResult[D digit.Digit](path string, x bigint.Int[D]) error {
	if x.Sign() < 0 {
		return apperrors.ValidationError{Field: "o", Message: "binary output holds non-negative values only"}
	}
	return apperrors.WrapError(natio.WriteFile(path, x.Magnitude()), "writing result %s", path)
}
