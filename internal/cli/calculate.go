package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/sysmon"
	"github.com/agbru/bignum/internal/ui"
)

// PrintExecutionConfig displays the operation, timeout, environment and the
// kernel thresholds about to be used.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Evaluating %s%s%s with %d-bit digits and a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Op, ui.ColorReset(), cfg.DigitBits, ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Thresholds: Karatsuba=%s%d%s, Newton=%s%d%s, Parallel=%s%d%s digits.\n",
		ui.ColorCyan(), cfg.KaratsubaThreshold, ui.ColorReset(),
		ui.ColorCyan(), cfg.NewtonThreshold, ui.ColorReset(),
		ui.ColorCyan(), cfg.ParallelThreshold, ui.ColorReset())
}

// PrintExecutionMode displays whether a single algorithm runs or every
// candidate is cross-checked.
func PrintExecutionMode(candidates []string, out io.Writer) {
	if len(candidates) > 1 {
		fmt.Fprintf(out, "Execution mode: cross-check of %d algorithms %v.\n", len(candidates), candidates)
	} else {
		fmt.Fprintf(out, "Execution mode: single evaluation.\n")
	}
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

// PrintHostInfo displays the host features that steer the carry strategies
// and the current system load.
func PrintHostInfo(f arith.Features, s sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "--- Host ---\n")
	fmt.Fprintf(out, "Go %s on %s/%s, %d logical processors.\n", runtime.Version(), runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	fmt.Fprintf(out, "System: CPU %.1f%%, memory %.1f%% of %s used.\n", s.CPUPercent, s.MemPercent, format.FormatBytes(s.TotalMemory))
	fmt.Fprintln(out, f.String())
	fmt.Fprintf(out, "Fast paths enabled: %t\n", arith.FastPathsEnabled())
}
