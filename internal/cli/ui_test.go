package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/bignum/internal/cli/mocks"
	"github.com/agbru/bignum/internal/ui"
)

// withSpinner swaps the spinner factory; callers must not run in parallel.
func withSpinner(t *testing.T, s Spinner) {
	t.Helper()
	orig := newSpinner
	newSpinner = func(io.Writer) Spinner { return s }
	t.Cleanup(func() { newSpinner = orig })
}

func TestRunWithSpinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	spin := mocks.NewMockSpinner(ctrl)
	withSpinner(t, spin)

	ran := false
	gomock.InOrder(
		spin.EXPECT().UpdateSuffix(" evaluating mul"),
		spin.EXPECT().Start(),
		spin.EXPECT().Stop(),
	)
	err := RunWithSpinner(io.Discard, true, "evaluating mul", func() error {
		ran = true
		return nil
	})
	if err != nil || !ran {
		t.Fatalf("RunWithSpinner: ran=%v err=%v", ran, err)
	}
}

func TestRunWithSpinner_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No expectations: any spinner call fails the test.
	withSpinner(t, mocks.NewMockSpinner(ctrl))

	want := errors.New("boom")
	if err := RunWithSpinner(io.Discard, false, "x", func() error { return want }); err != want {
		t.Errorf("err = %v, want %v", err, want)
	}
}

func TestRealSpinner(t *testing.T) {
	s := newSpinner(io.Discard)
	if _, ok := s.(*realSpinner); !ok {
		t.Fatalf("newSpinner returned %T", s)
	}
	s.UpdateSuffix(" working")
	s.Start()
	s.Stop()
}

func TestFormatValue(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("1234567890", 20)
	tests := []struct {
		name    string
		text    string
		base    int
		verbose bool
		want    string
	}{
		{"short", "12345", 10, false, "12345"},
		{"verbose keeps all", long, 10, true, long},
		{"decimal edges", long, 10, false, long[:DisplayEdges] + "..." + long[len(long)-DisplayEdges:] + " (200 characters)"},
		{"hex edges", long, 16, false, long[:HexDisplayEdges] + "..." + long[len(long)-HexDisplayEdges:] + " (200 characters)"},
		{"negative", "-" + long, 10, false, "-" + long[:DisplayEdges] + "..." + long[len(long)-DisplayEdges:] + " (200 characters)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatValue(tt.text, tt.base, tt.verbose); got != tt.want {
				t.Errorf("FormatValue = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColors(t *testing.T) {
	defer ui.SetCurrentTheme(ui.GetCurrentTheme())
	ui.InitTheme(true)

	var buf bytes.Buffer
	CLIResultPresenter{}.HandleError(errors.New("x"), 0, &buf)
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("no-color output contains escape codes: %q", buf.String())
	}
}
