//go:generate mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks

package server

import (
	"context"
	"math"
	"strings"

	"github.com/agbru/bignum/internal/bigint"
	"github.com/agbru/bignum/internal/calc"
	"github.com/agbru/bignum/internal/digit"
	apperrors "github.com/agbru/bignum/internal/errors"
)

// EvalRequest is the JSON body of POST /v1/eval.
type EvalRequest struct {
	Op string `json:"op"`
	A  string `json:"a"`
	B  string `json:"b,omitempty"`
	// Format is dec, hex or bin; empty means dec.
	Format string `json:"format,omitempty"`
}

// EvalResponse is the JSON body of a successful evaluation.
type EvalResponse struct {
	Result     string `json:"result"`
	Remainder  string `json:"remainder,omitempty"`
	Algorithm  string `json:"algorithm"`
	DurationNS int64  `json:"duration_ns"`
}

// Evaluator evaluates textual requests.
type Evaluator interface {
	Evaluate(ctx context.Context, req EvalRequest) (EvalResponse, error)
}

// EngineEvaluator adapts a calc.Engine to Evaluator and enforces the operand
// bit limit.
type EngineEvaluator[D digit.Digit] struct {
	engine  *calc.Engine[D]
	maxBits int
}

// NewEngineEvaluator creates an evaluator rejecting operands, and shift
// counts, above maxBits bits.
func NewEngineEvaluator[D digit.Digit](engine *calc.Engine[D], maxBits int) *EngineEvaluator[D] {
	return &EngineEvaluator[D]{engine: engine, maxBits: maxBits}
}

// Evaluate parses, bounds and evaluates req.
func (e *EngineEvaluator[D]) Evaluate(ctx context.Context, req EvalRequest) (EvalResponse, error) {
	op, err := calc.ParseOp(req.Op)
	if err != nil {
		return EvalResponse{}, err
	}
	base, err := parseFormat(req.Format)
	if err != nil {
		return EvalResponse{}, err
	}

	a, err := e.operand("a", req.A)
	if err != nil {
		return EvalResponse{}, err
	}
	var b bigint.Int[D]
	if op.Binary() {
		if b, err = e.operand("b", req.B); err != nil {
			return EvalResponse{}, err
		}
	}
	if op == calc.OpLsh && b.Sign() > 0 {
		if s, ok := b.Magnitude().Uint64(); !ok || s > uint64(e.maxBits) {
			size := math.MaxInt
			if ok && s < math.MaxInt {
				size = int(s)
			}
			return EvalResponse{}, apperrors.LimitError{Operand: "b", Size: size, Limit: e.maxBits}
		}
	}

	res, err := e.engine.Eval(ctx, calc.Request[D]{Op: op, A: a, B: b})
	if err != nil {
		return EvalResponse{}, err
	}
	resp := EvalResponse{
		Result:     res.Value.Text(base),
		Algorithm:  res.Algorithm,
		DurationNS: res.Duration.Nanoseconds(),
	}
	if op == calc.OpQuoRem {
		resp.Remainder = res.Remainder.Text(base)
	}
	return resp, nil
}

func (e *EngineEvaluator[D]) operand(name, text string) (bigint.Int[D], error) {
	if text == "" {
		return bigint.Int[D]{}, apperrors.ValidationError{Field: name, Message: "operand is required"}
	}
	// Decimal parsing is quadratic: reject what cannot fit before paying
	// for it.
	if lower := minTextBits(text); lower > e.maxBits {
		return bigint.Int[D]{}, apperrors.LimitError{Operand: name, Size: lower, Limit: e.maxBits}
	}
	x, err := calc.ParseOperand[D](name, text)
	if err != nil {
		return bigint.Int[D]{}, err
	}
	if x.BitLen() > e.maxBits {
		return bigint.Int[D]{}, apperrors.LimitError{Operand: name, Size: x.BitLen(), Limit: e.maxBits}
	}
	return x, nil
}

// log2TenMicro is log2(10) scaled by 1e6 and rounded down.
const log2TenMicro = 3321928

// minTextBits returns a lower bound on the bit length of the number written
// in text, in the syntax accepted by bigint.Parse. Any byte after the sign,
// prefix, underscores and leading zeros counts as a digit; malformed text is
// left to the parser.
func minTextBits(text string) int {
	s := strings.TrimLeft(text, "+-")
	base := 10
	if len(s) > 2 {
		switch s[:2] {
		case "0x", "0X":
			base, s = 16, s[2:]
		case "0b", "0B":
			base, s = 2, s[2:]
		}
	}
	s = strings.TrimLeft(s, "0_")
	n := int64(len(s) - strings.Count(s, "_"))
	if n <= 0 {
		return 0
	}
	var lower int64
	switch base {
	case 2:
		lower = n
	case 16:
		lower = 4*(n-1) + 1
	default:
		lower = (n-1)*log2TenMicro/1_000_000 + 1
	}
	return int(min(lower, math.MaxInt32))
}

func parseFormat(f string) (int, error) {
	switch strings.ToLower(f) {
	case "", "dec":
		return 10, nil
	case "hex":
		return 16, nil
	case "bin":
		return 2, nil
	}
	return 0, apperrors.ValidationError{Field: "format", Message: "must be dec, hex or bin"}
}
