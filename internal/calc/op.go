package calc

import (
	"strings"

	apperrors "github.com/agbru/bignum/internal/errors"
)

// Op identifies an operation evaluated by the Engine.
type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpSqr
	OpQuo
	OpRem
	OpQuoRem
	OpLsh
	OpRsh
	OpAnd
	OpOr
	OpXor
	OpNot
	OpCmp
)

var opNames = [...]string{
	OpAdd:    "add",
	OpSub:    "sub",
	OpMul:    "mul",
	OpSqr:    "sqr",
	OpQuo:    "quo",
	OpRem:    "rem",
	OpQuoRem: "quorem",
	OpLsh:    "lsh",
	OpRsh:    "rsh",
	OpAnd:    "and",
	OpOr:     "or",
	OpXor:    "xor",
	OpNot:    "not",
	OpCmp:    "cmp",
}

func (o Op) String() string {
	if int(o) < len(opNames) && opNames[o] != "" {
		return opNames[o]
	}
	return "unknown"
}

// ParseOp maps an operation name to its Op.
func ParseOp(s string) (Op, error) {
	for op, name := range opNames {
		if name != "" && strings.EqualFold(s, name) {
			return Op(op), nil
		}
	}
	return 0, apperrors.ValidationError{Field: "op", Message: "unknown operation " + s}
}

// OpNames lists every operation name in declaration order.
func OpNames() []string {
	names := make([]string, 0, len(opNames)-1)
	for _, name := range opNames[1:] {
		names = append(names, name)
	}
	return names
}

// Binary reports whether the operation takes a second operand.
func (o Op) Binary() bool { return o != OpNot && o != OpSqr }

// Shift reports whether the second operand is a bit count.
func (o Op) Shift() bool { return o == OpLsh || o == OpRsh }

// Division reports whether the operation runs a division algorithm.
func (o Op) Division() bool { return o == OpQuo || o == OpRem || o == OpQuoRem }

// Multiplication reports whether the operation runs a multiplication
// algorithm.
func (o Op) Multiplication() bool { return o == OpMul || o == OpSqr }

// ComparesAlgorithms reports whether several algorithms implement the
// operation, so that their results can be cross-checked.
func (o Op) ComparesAlgorithms() bool { return o.Division() || o.Multiplication() }
