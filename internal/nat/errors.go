package nat

import "github.com/zeebo/errs"

// Error is the error class for every error the kernel returns.
var Error = errs.Class("nat")

var (
	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = Error.New("division by zero")

	// ErrConvergence is returned when the Newton–Raphson reciprocal fails to
	// reach the required precision within twice the predicted number of
	// steps. It indicates a defect in the divider, never bad input.
	ErrConvergence = Error.New("reciprocal iteration did not converge")

	// ErrSyntax is returned by Parse for malformed text.
	ErrSyntax = Error.New("invalid number syntax")
)
