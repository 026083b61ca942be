package calc

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agbru/bignum/internal/bigint"
	"github.com/agbru/bignum/internal/digit"
	"github.com/agbru/bignum/internal/nat"
)

// goldenVector mirrors the records written by cmd/generate-golden.
type goldenVector struct {
	Op        string `json:"op"`
	A         string `json:"a"`
	B         string `json:"b"`
	Result    string `json:"result"`
	Remainder string `json:"remainder"`
}

func loadGolden(t *testing.T) []goldenVector {
	t.Helper()
	data, err := os.ReadFile("testdata/golden.json")
	require.NoError(t, err)
	var vectors []goldenVector
	require.NoError(t, json.Unmarshal(data, &vectors))
	require.NotEmpty(t, vectors)
	return vectors
}

func checkGolden[D digit.Digit](t *testing.T, opts nat.Options, vectors []goldenVector) {
	t.Helper()
	e := NewEngine[D](Config{Options: opts})
	for _, v := range vectors {
		op, err := ParseOp(v.Op)
		require.NoError(t, err)
		req := Request[D]{Op: op, A: bigint.MustParse[D](v.A)}
		if v.B != "" {
			req.B = bigint.MustParse[D](v.B)
		}
		res, err := e.Eval(context.Background(), req)
		require.NoError(t, err, "%s(%s, %s)", v.Op, v.A, v.B)
		require.Equal(t, v.Result, res.Value.String(), "%s(%s, %s)", v.Op, v.A, v.B)
		if v.Remainder != "" {
			require.Equal(t, v.Remainder, res.Remainder.String(), "%s(%s, %s) remainder", v.Op, v.A, v.B)
		}
	}
}

// TestGolden replays the math/big vectors under both digit widths, with
// the default selection and with low thresholds that force the
// subquadratic algorithms onto small operands.
func TestGolden(t *testing.T) {
	t.Parallel()
	vectors := loadGolden(t)
	low := nat.Options{KaratsubaThreshold: 4, NewtonThreshold: 2, ParallelThreshold: 8}
	bz := low
	bz.Division = nat.DivBurnikelZiegler

	t.Run("uint32/default", func(t *testing.T) { checkGolden[uint32](t, nat.DefaultOptions(), vectors) })
	t.Run("uint64/default", func(t *testing.T) { checkGolden[uint64](t, nat.DefaultOptions(), vectors) })
	t.Run("uint32/low", func(t *testing.T) { checkGolden[uint32](t, low, vectors) })
	t.Run("uint64/bz", func(t *testing.T) { checkGolden[uint64](t, bz, vectors) })
}
