package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/ui"
)

// printCalibrationResults formats and prints the results table of one sweep.
func printCalibrationResults(out io.Writer, title string, results []calibrationResult, bestThreshold int) {
	fmt.Fprintf(out, "\n--- %s ---\n", title)
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sThreshold%s    │ %sExecution Time%s\n", ui.ColorBold(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s┼%s\n", strings.Repeat("─", 14), strings.Repeat("─", 25))
	for _, res := range results {
		thresholdLabel := fmt.Sprintf("%d digits", res.Threshold)
		if res.Threshold == 0 {
			thresholdLabel = "Sequential"
		}
		durationStr := fmt.Sprintf("%sN/A%s", ui.ColorRed(), ui.ColorReset())
		if res.Err == nil {
			durationStr = format.FormatExecutionDuration(res.Duration)
			if res.Duration == 0 {
				durationStr = "< 1µs"
			}
		}
		highlight := ""
		if res.Threshold == bestThreshold && res.Err == nil {
			highlight = fmt.Sprintf(" %s(Optimal)%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%-12s%s │ %s%s%s%s\n", ui.ColorCyan(), thresholdLabel, ui.ColorReset(), ui.ColorYellow(), durationStr, ui.ColorReset(), highlight)
	}
	tw.Flush()
}

// printCalibrationOutput prints the retained thresholds.
func printCalibrationOutput(p *CalibrationProfile, out io.Writer) {
	fmt.Fprintf(out, "\n%sCalibration%s (%d-bit digits): karatsuba=%s%d%s, newton=%s%d%s, parallel=%s%d%s digits\n",
		ui.ColorGreen(), ui.ColorReset(), p.DigitBits,
		ui.ColorYellow(), p.KaratsubaThreshold, ui.ColorReset(),
		ui.ColorYellow(), p.NewtonThreshold, ui.ColorReset(),
		ui.ColorYellow(), p.ParallelThreshold, ui.ColorReset())
}
