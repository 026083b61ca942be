package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/bignum/internal/calc"
	"github.com/agbru/bignum/internal/calibration"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
)

// run builds and runs the application, returning its exit code, stdout and
// stderr.
func run(t *testing.T, ctx context.Context, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	application, err := New(append([]string{"bigcalc", "-no-color"}, args...), &stderr, WithLogger(logging.Nop()))
	require.NoError(t, err, "stderr: %s", stderr.String())
	code := application.Run(ctx, &stdout)
	return code, stdout.String(), stderr.String()
}

func TestNew_AppliesAdaptiveThresholds(t *testing.T) {
	t.Parallel()
	application, err := New([]string{"bigcalc", "-a", "1", "-b", "2"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Positive(t, application.Config.KaratsubaThreshold)
	assert.Positive(t, application.Config.NewtonThreshold)
	assert.Positive(t, application.Config.ParallelThreshold)
	assert.NotNil(t, application.Logger)
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()
	var stderr bytes.Buffer
	_, err := New([]string{"bigcalc", "-h"}, &stderr)
	assert.True(t, IsHelpError(err))
	assert.Contains(t, stderr.String(), "-karatsuba-threshold")

	_, err = New([]string{"bigcalc", "-op", "pow", "-a", "1", "-b", "1"}, &stderr)
	require.Error(t, err)
	assert.False(t, IsHelpError(err))
	assert.Equal(t, apperrors.ExitErrorConfig, apperrors.ExitCode(err))
}

func TestRun_Quiet(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add carries", []string{"-op", "add", "-a", "4294967295", "-b", "4294967295"}, "8589934590\n"},
		{"quorem 32-bit", []string{"-op", "quorem", "-digit-bits", "32", "-a", "-10", "-b", "3"}, "-3\n-1\n"},
		{"hex output", []string{"-op", "mul", "-a", "0xff", "-b", "0x100", "-format", "hex"}, "ff00\n"},
		{"not", []string{"-op", "not", "-a", "0"}, "-1\n"},
		{"rsh floors", []string{"-op", "rsh", "-a", "-5", "-b", "1"}, "-3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, out, stderr := run(t, context.Background(), append(tt.args, "-q")...)
			require.Equal(t, apperrors.ExitSuccess, code, "stderr: %s", stderr)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRun_Standard(t *testing.T) {
	t.Parallel()
	code, out, _ := run(t, context.Background(), "-op", "mul", "-rand-a", "4096", "-rand-b", "4096", "-v")
	require.Equal(t, apperrors.ExitSuccess, code)
	for _, want := range []string{"Execution Configuration", "single evaluation", "karatsuba", "Memory Stats"} {
		assert.Contains(t, out, want)
	}
}

func TestRun_Compare(t *testing.T) {
	t.Parallel()
	code, out, _ := run(t, context.Background(), "-op", "quorem", "-digit-bits", "32",
		"-rand-a", "20000", "-rand-b", "7000", "-compare", "-newton-threshold", "8")
	require.Equal(t, apperrors.ExitSuccess, code, out)
	assert.Contains(t, out, "cross-check of 3 algorithms")
	assert.Contains(t, out, "burnikel-ziegler")
	assert.Contains(t, out, "Global Status: Success")
}

func TestRun_CompareQuietKeepsStdoutClean(t *testing.T) {
	t.Parallel()
	code, out, stderr := run(t, context.Background(), "-op", "mul", "-a", "12", "-b", "-12", "-compare", "-q")
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t, "-144\n", out)
	assert.Contains(t, stderr, "Comparison Summary")
}

func TestRun_OutputFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sq.bin")
	code, out, _ := run(t, context.Background(), "-op", "sqr", "-a", "0xffffffffffffffff", "-o", path, "-q")
	require.Equal(t, apperrors.ExitSuccess, code)

	back, err := calc.LoadOperand[uint64](path)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(out), back.String())

	code, out, _ = run(t, context.Background(), "-op", "add", "-a-file", path, "-b", "1", "-q")
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t, "340282366920938463426481119284349108226\n", out)
}

func TestRun_Failures(t *testing.T) {
	t.Parallel()
	code, _, stderr := run(t, context.Background(), "-op", "quo", "-a", "1", "-b", "0")
	assert.Equal(t, apperrors.ExitErrorGeneric, code)
	assert.Contains(t, stderr, "Calculation error")

	code, _, stderr = run(t, context.Background(), "-op", "add", "-a", "12q", "-b", "1")
	assert.Equal(t, apperrors.ExitErrorConfig, code)
	assert.Contains(t, stderr, `validation error for "a"`)

	code, _, _ = run(t, context.Background(), "-op", "mul", "-rand-a", "4000000", "-rand-b", "4000000", "-timeout", "1ns", "-q")
	assert.Equal(t, apperrors.ExitErrorTimeout, code)
}

func TestRun_Info(t *testing.T) {
	t.Parallel()
	code, out, _ := run(t, context.Background(), "-info")
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "bigcalc "+Version)
	assert.Contains(t, out, "Fast paths enabled")
	assert.Contains(t, out, "Thresholds (64-bit digits)")
}

func TestNew_LoadsCalibrationProfile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "profile.json")
	p := calibration.NewProfile()
	p.KaratsubaThreshold = 28
	p.NewtonThreshold = 96
	p.ParallelThreshold = 2048
	require.NoError(t, p.SaveProfile(path))

	application, err := New([]string{"bigcalc", "-info", "-calibration-profile", path, "-newton-threshold", "50"},
		&bytes.Buffer{}, WithLogger(logging.Nop()))
	require.NoError(t, err)
	assert.Equal(t, 28, application.Config.KaratsubaThreshold)
	assert.Equal(t, 50, application.Config.NewtonThreshold, "flags win over the profile")
	assert.Equal(t, 2048, application.Config.ParallelThreshold)
}

func TestRun_Calibrate(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "profile.json")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	code, out, _ := run(t, ctx, "-calibrate", "-calibration-profile", path)
	assert.Equal(t, apperrors.ExitErrorCanceled, code)
	assert.Contains(t, out, "Calibration failed")
}

func TestRun_ServeStopsWithContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	code, out, _ := run(t, ctx, "-serve", "127.0.0.1:0")
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "Serving bigcalc on 127.0.0.1:0")
}

func TestVersion(t *testing.T) {
	t.Parallel()
	assert.True(t, HasVersionFlag([]string{"-q", "--version"}))
	assert.True(t, HasVersionFlag([]string{"-V"}))
	assert.False(t, HasVersionFlag([]string{"-v"}))

	var buf bytes.Buffer
	PrintVersion(&buf)
	assert.Contains(t, buf.String(), "bigcalc "+Version)
	assert.Contains(t, buf.String(), "commit:")
}
