package orchestration

import (
	"io"
	"time"

	"github.com/agbru/bignum/internal/calc"
	"github.com/agbru/bignum/internal/digit"
)

// CalculationResult is the outcome of one algorithm in a cross-check.
type CalculationResult[D digit.Digit] struct {
	// Name identifies the algorithm configuration (e.g. "karatsuba").
	Name string
	// Result is meaningful only when Err is nil.
	Result   calc.Result[D]
	Duration time.Duration
	Err      error
}

// Row returns the presentation view of r.
func (r CalculationResult[D]) Row() ComparisonRow {
	return ComparisonRow{Name: r.Name, Algorithm: r.Result.Algorithm, Duration: r.Duration, Err: r.Err}
}

// ComparisonRow is one line of the comparison table.
type ComparisonRow struct {
	Name      string
	Algorithm string
	Duration  time.Duration
	Err       error
}

// ResultPresenter renders comparison summaries.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(rows []ComparisonRow, out io.Writer)
}

// ErrorHandler handles evaluation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
