package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/bignum/internal/bigint"
	"github.com/agbru/bignum/internal/calc"
	"github.com/agbru/bignum/internal/cli"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/digit"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/orchestration"
)

// runCalculate evaluates the configured operation once, or with every
// candidate algorithm when -compare is set.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.DigitBits == 32 {
		return runCalculation[uint32](ctx, a, out)
	}
	return runCalculation[uint64](ctx, a, out)
}

func runCalculation[D digit.Digit](ctx context.Context, a *Application, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}
	op, err := calc.ParseOp(a.Config.Op)
	if err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}
	req, err := buildRequest[D](a.Config, op)
	if err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}
	engine := calc.NewEngine[D](calc.Config{Options: a.Config.ToOptions(), Logger: a.Logger})

	var names []string
	if a.Config.Compare {
		for _, c := range orchestration.Candidates[D](op, engine.Options()) {
			names = append(names, c.Name)
		}
	}
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(names, out)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Base:       a.Config.Base(),
	}
	mem := metrics.NewMemoryCollector()
	before := mem.Snapshot()

	var res calc.Result[D]
	if a.Config.Compare {
		var results []orchestration.CalculationResult[D]
		_ = cli.RunWithSpinner(out, !a.Config.Quiet, "cross-checking "+op.String(), func() error {
			results = orchestration.CrossCheck(ctx, engine, req)
			return nil
		})
		// Quiet mode keeps stdout for the value alone.
		analysisOut := out
		if a.Config.Quiet {
			analysisOut = a.ErrWriter
		}
		best, code := orchestration.AnalyzeComparisonResults(results, presenter, presenter, analysisOut)
		if code != apperrors.ExitSuccess {
			return code
		}
		res = best.Result
	} else {
		err := cli.RunWithSpinner(out, !a.Config.Quiet, "evaluating "+op.String(), func() error {
			var err error
			res, err = engine.Eval(ctx, req)
			return err
		})
		if err != nil {
			return presenter.HandleError(err, res.Duration, a.ErrWriter)
		}
	}

	if err := cli.DisplayResultWithConfig(out, res, outputCfg); err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}
	if a.Config.Verbose && !a.Config.Quiet {
		cli.DisplayMemoryStats(before, mem.Snapshot(), out)
	}
	return apperrors.ExitSuccess
}

// buildRequest loads the operands from their configured sources. The second
// random operand uses the next seed so that -rand-a and -rand-b differ.
func buildRequest[D digit.Digit](cfg config.AppConfig, op calc.Op) (calc.Request[D], error) {
	a, err := loadOperand[D]("a", cfg.A, cfg.AFile, cfg.RandA, cfg.Seed)
	if err != nil {
		return calc.Request[D]{}, err
	}
	req := calc.Request[D]{Op: op, A: a}
	if op.Binary() {
		if req.B, err = loadOperand[D]("b", cfg.B, cfg.BFile, cfg.RandB, cfg.Seed+1); err != nil {
			return calc.Request[D]{}, err
		}
	}
	return req, nil
}

func loadOperand[D digit.Digit](name, text, file string, bits int, seed int64) (bigint.Int[D], error) {
	switch {
	case file != "":
		return calc.LoadOperand[D](file)
	case bits > 0:
		return calc.RandomOperand[D](bits, seed), nil
	default:
		return calc.ParseOperand[D](name, text)
	}
}
