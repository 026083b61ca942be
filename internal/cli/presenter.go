package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/ui"
)

// CLIResultPresenter implements the orchestration presentation interfaces
// for terminal output.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays the comparison summary table. Padding is
// computed on the plain text so that ANSI codes do not break alignment.
func (CLIResultPresenter) PresentComparisonTable(rows []orchestration.ComparisonRow, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	nameWidth, algoWidth, durWidth := len("Candidate"), len("Algorithm"), len("Duration")
	durations := make([]string, len(rows))
	for i, row := range rows {
		durations[i] = format.FormatExecutionDuration(row.Duration)
		if row.Duration == 0 && row.Err == nil {
			durations[i] = "< 1µs"
		}
		nameWidth = max(nameWidth, len(row.Name))
		algoWidth = max(algoWidth, len(row.Algorithm))
		durWidth = max(durWidth, len([]rune(durations[i])))
	}

	fmt.Fprintf(out, "%s%s   %s   %s   Status%s\n", ui.ColorBold(),
		padRight("Candidate", nameWidth), padRight("Algorithm", algoWidth), padRight("Duration", durWidth), ui.ColorReset())
	for i, row := range rows {
		status := fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		if row.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), row.Err, ui.ColorReset())
		}
		fmt.Fprintf(out, "%s%s%s   %s   %s%s%s   %s\n",
			ui.ColorCyan(), padRight(row.Name, nameWidth), ui.ColorReset(),
			padRight(row.Algorithm, algoWidth),
			ui.ColorYellow(), padRight(durations[i], durWidth), ui.ColorReset(),
			status)
	}
}

func padRight(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// HandleError prints err with a message matching its class and returns the
// corresponding exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	var (
		timeoutErr apperrors.TimeoutError
		calcErr    apperrors.CalculationError
	)
	switch {
	case errors.As(err, &timeoutErr):
		fmt.Fprintf(out, "%sTimeout:%s %v\n", ui.ColorYellow(), ui.ColorReset(), err)
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCanceled:%s %v\n", ui.ColorYellow(), ui.ColorReset(), err)
	case errors.As(err, &calcErr):
		fmt.Fprintf(out, "%sCalculation error:%s %v\n", ui.ColorRed(), ui.ColorReset(), err)
	default:
		fmt.Fprintf(out, "%sError:%s %v\n", ui.ColorRed(), ui.ColorReset(), err)
	}
	if duration > 0 {
		fmt.Fprintf(out, "Elapsed: %s\n", format.FormatExecutionDuration(duration))
	}
	return apperrors.ExitCode(err)
}

// DisplayMemoryStats shows the memory used by an evaluation.
func DisplayMemoryStats(before, after metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(after.HeapAlloc))
	fmt.Fprintf(out, "  Allocated:       %s\n", format.FormatBytes(after.AllocatedSince(before)))
	fmt.Fprintf(out, "  GC cycles:       %d\n", after.NumGC-before.NumGC)
}
