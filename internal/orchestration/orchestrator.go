package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/bignum/internal/calc"
	"github.com/agbru/bignum/internal/digit"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/nat"
)

// Candidate is one algorithm configuration taking part in a cross-check.
type Candidate struct {
	Name    string
	Options nat.Options
}

// Candidates lists the algorithm configurations able to evaluate op, derived
// from base so that thresholds are preserved. Operations implemented by a
// single algorithm yield nil.
func Candidates[D digit.Digit](op calc.Op, base nat.Options) []Candidate {
	with := func(name string, edit func(*nat.Options)) Candidate {
		opts := base
		edit(&opts)
		return Candidate{Name: name, Options: opts}
	}
	switch {
	case op.Multiplication():
		cs := []Candidate{
			with("schoolbook", func(o *nat.Options) { o.Multiplication, o.Doubling = nat.MulSchoolbook, false }),
			with("karatsuba", func(o *nat.Options) { o.Multiplication, o.Doubling = nat.MulKaratsuba, false }),
		}
		if digit.Width[D]() == 32 {
			cs = append(cs, with("karatsuba/doubled", func(o *nat.Options) { o.Multiplication, o.Doubling = nat.MulKaratsuba, true }))
		}
		return cs
	case op.Division():
		return []Candidate{
			with("schoolbook", func(o *nat.Options) { o.Division = nat.DivSchoolbook }),
			with("newton", func(o *nat.Options) { o.Division = nat.DivNewton }),
			with("burnikel-ziegler", func(o *nat.Options) { o.Division = nat.DivBurnikelZiegler }),
		}
	}
	return nil
}

// CrossCheck evaluates req once per candidate, concurrently. Each failure is
// recorded in its own result; the slice keeps the candidate order.
func CrossCheck[D digit.Digit](ctx context.Context, engine *calc.Engine[D], req calc.Request[D]) []CalculationResult[D] {
	candidates := Candidates[D](req.Op, engine.Options())
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult[D], len(candidates))

	for i, c := range candidates {
		g.Go(func() error {
			res, err := engine.WithOptions(c.Options).Eval(ctx, req)
			results[i] = CalculationResult[D]{Name: c.Name, Result: res, Duration: res.Duration, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// AnalyzeComparisonResults sorts results by success then duration, checks
// that every successful algorithm agrees and prints a summary. It returns
// the fastest successful result, or nil when every algorithm failed, with
// the exit code.
func AnalyzeComparisonResults[D digit.Digit](results []CalculationResult[D], presenter ResultPresenter, handler ErrorHandler, out io.Writer) (*CalculationResult[D], int) {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *CalculationResult[D]
	var firstError error
	rows := make([]ComparisonRow, len(results))
	for i := range results {
		rows[i] = results[i].Row()
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(rows, out)

	if firstValid == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the operation.\n")
		return nil, handler.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && !sameResult(res.Result, firstValid.Result) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %s and %s disagree.\n", firstValid.Name, res.Name)
			return nil, apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	return firstValid, apperrors.ExitSuccess
}

func sameResult[D digit.Digit](a, b calc.Result[D]) bool {
	return a.Value.Cmp(b.Value) == 0 && a.Remainder.Cmp(b.Remainder) == 0
}
