// Package calc evaluates single arithmetic operations on top of the kernel.
//
// The Engine is the boundary between the synchronous kernel and the
// application: it selects and reports the algorithm, honours context
// cancellation, records Prometheus metrics, opens an OpenTelemetry span per
// operation and logs the outcome.
package calc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/bignum/internal/bigint"
	"github.com/agbru/bignum/internal/digit"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/nat"
)

const tracerName = "github.com/agbru/bignum/internal/calc"

// MaxShift bounds the bit count accepted by lsh and rsh.
const MaxShift = 1 << 31

// Config wires an Engine to its collaborators. Zero fields get defaults:
// a discarding logger, the global OpenTelemetry tracer and no metrics.
type Config struct {
	Options nat.Options
	Logger  logging.Logger
	Metrics *metrics.Registry
	Tracer  trace.Tracer
}

// Request is one operation on up to two operands. For lsh and rsh, B holds
// the non-negative shift count.
type Request[D digit.Digit] struct {
	Op   Op
	A, B bigint.Int[D]
}

// Result is the outcome of an evaluation.
type Result[D digit.Digit] struct {
	Op    Op
	Value bigint.Int[D]
	// Remainder is set for OpQuoRem only.
	Remainder bigint.Int[D]
	// Algorithm names the kernel algorithm that produced Value.
	Algorithm string
	Duration  time.Duration
}

// Engine evaluates requests with a fixed set of kernel options. It is safe
// for concurrent use.
type Engine[D digit.Digit] struct {
	cfg Config
}

// NewEngine creates an Engine from cfg.
func NewEngine[D digit.Digit](cfg Config) *Engine[D] {
	if cfg.Logger == nil {
		cfg.Logger = logging.Nop()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer(tracerName)
	}
	return &Engine[D]{cfg: cfg}
}

// Options returns the kernel options of the engine.
func (e *Engine[D]) Options() nat.Options { return e.cfg.Options }

// WithOptions returns an engine sharing e's collaborators with other kernel
// options.
func (e *Engine[D]) WithOptions(opts nat.Options) *Engine[D] {
	cfg := e.cfg
	cfg.Options = opts
	return &Engine[D]{cfg: cfg}
}

// Algorithm reports the kernel algorithm req would run under the engine's
// options.
func (e *Engine[D]) Algorithm(req Request[D]) string {
	opts := e.cfg.Options
	switch {
	case req.Op.Multiplication():
		la, lb := req.A.Len(), req.B.Len()
		if req.Op == OpSqr {
			lb = la
		}
		name := nat.SelectMultiplication(la, lb, opts).String()
		if opts.Doubling && digit.Width[D]() == 32 && la >= 2 && lb >= 2 {
			name += "/doubled"
		}
		return name
	case req.Op.Division():
		return nat.SelectDivision(req.B.Len(), opts).String()
	default:
		return "linear"
	}
}

type outcome[D digit.Digit] struct {
	value, rem bigint.Int[D]
	err        error
}

// Eval evaluates req. The kernel has no cancellation points: when ctx ends
// first, Eval returns at once and the computation finishes in the
// background. A deadline yields apperrors.TimeoutError and a cancellation
// the context error; kernel failures are wrapped in
// apperrors.CalculationError.
func (e *Engine[D]) Eval(ctx context.Context, req Request[D]) (Result[D], error) {
	if req.Op.String() == "unknown" {
		return Result[D]{}, apperrors.ValidationError{Field: "op", Message: fmt.Sprintf("unknown operation %d", req.Op)}
	}
	shift, err := shiftCount(req)
	if err != nil {
		return Result[D]{}, err
	}

	algorithm := e.Algorithm(req)
	digits := max(req.A.Len(), req.B.Len())
	ctx, span := e.cfg.Tracer.Start(ctx, "calc."+req.Op.String(), trace.WithAttributes(
		attribute.String("bigcalc.op", req.Op.String()),
		attribute.String("bigcalc.algorithm", algorithm),
		attribute.Int("bigcalc.digits", digits),
		attribute.Int("bigcalc.digit_bits", int(digit.Width[D]())),
	))
	defer span.End()

	var limit time.Duration
	if deadline, ok := ctx.Deadline(); ok {
		limit = time.Until(deadline)
	}

	start := time.Now()
	var o outcome[D]
	if err := ctx.Err(); err != nil {
		o.err = contextError(req.Op, err, limit)
	} else {
		done := make(chan outcome[D], 1)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					done <- outcome[D]{err: apperrors.CalculationError{Op: req.Op.String(), Cause: fmt.Errorf("panic: %v", r)}}
				}
			}()
			done <- e.compute(req, shift)
		}()
		select {
		case o = <-done:
		case <-ctx.Done():
			o.err = contextError(req.Op, ctx.Err(), limit)
		}
	}
	elapsed := time.Since(start)

	e.cfg.Metrics.ObserveOperation(req.Op.String(), algorithm, elapsed, digits, o.err)
	if o.err != nil {
		span.RecordError(o.err)
		span.SetStatus(codes.Error, o.err.Error())
		e.cfg.Logger.Error("evaluation failed", o.err,
			logging.String("op", req.Op.String()),
			logging.String("algorithm", algorithm),
			logging.Int("digits", digits))
		return Result[D]{}, o.err
	}
	span.SetAttributes(attribute.Int("bigcalc.result_bits", o.value.BitLen()))
	e.cfg.Logger.Debug("evaluated",
		logging.String("op", req.Op.String()),
		logging.String("algorithm", algorithm),
		logging.Int("digits", digits),
		logging.Duration("elapsed", elapsed))

	return Result[D]{
		Op:        req.Op,
		Value:     o.value,
		Remainder: o.rem,
		Algorithm: algorithm,
		Duration:  elapsed,
	}, nil
}

func (e *Engine[D]) compute(req Request[D], shift uint) outcome[D] {
	a, b, opts := req.A, req.B, e.cfg.Options
	switch req.Op {
	case OpAdd:
		return outcome[D]{value: a.Add(b)}
	case OpSub:
		return outcome[D]{value: a.Sub(b)}
	case OpMul:
		return outcome[D]{value: a.MulWith(b, opts)}
	case OpSqr:
		return outcome[D]{value: a.MulWith(a, opts)}
	case OpQuo, OpRem, OpQuoRem:
		q, r, err := a.QuoRemWith(b, opts)
		if err != nil {
			return outcome[D]{err: apperrors.CalculationError{Op: req.Op.String(), Cause: err}}
		}
		switch req.Op {
		case OpQuo:
			return outcome[D]{value: q}
		case OpRem:
			return outcome[D]{value: r}
		}
		return outcome[D]{value: q, rem: r}
	case OpLsh:
		return outcome[D]{value: a.Lsh(shift)}
	case OpRsh:
		return outcome[D]{value: a.Rsh(shift)}
	case OpAnd:
		return outcome[D]{value: a.And(b)}
	case OpOr:
		return outcome[D]{value: a.Or(b)}
	case OpXor:
		return outcome[D]{value: a.Xor(b)}
	case OpNot:
		return outcome[D]{value: a.Not()}
	case OpCmp:
		return outcome[D]{value: bigint.FromInt64[D](int64(a.Cmp(b)))}
	}
	return outcome[D]{err: apperrors.ValidationError{Field: "op", Message: "unsupported operation " + req.Op.String()}}
}

// shiftCount extracts the bit count of a shift request.
func shiftCount[D digit.Digit](req Request[D]) (uint, error) {
	if !req.Op.Shift() {
		return 0, nil
	}
	if req.B.Sign() < 0 {
		return 0, apperrors.ValidationError{Field: "b", Message: "shift count must be non-negative"}
	}
	s, ok := req.B.Magnitude().Uint64()
	if !ok || s > MaxShift {
		return 0, apperrors.ValidationError{Field: "b", Message: fmt.Sprintf("shift count exceeds %d", uint64(MaxShift))}
	}
	return uint(s), nil
}

func contextError(op Op, err error, limit time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError{Operation: op.String(), Limit: limit.Round(time.Millisecond)}
	}
	return apperrors.WrapError(err, "%s", op)
}
