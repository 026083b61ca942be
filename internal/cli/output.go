// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatValue].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bignum/internal/calc"
	"github.com/agbru/bignum/internal/digit"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the natio file receiving the result (empty for none).
	OutputFile string
	// Quiet prints only the value.
	Quiet bool
	// Verbose prints the value without truncation.
	Verbose bool
	// Base is 2, 10 or 16.
	Base int
}

// FormatValue truncates text to its edges unless verbose is set or it is
// short enough. Hex and binary keep more characters per edge.
func FormatValue(text string, base int, verbose bool) string {
	if verbose || len(text) <= TruncationLimit {
		return text
	}
	edges := DisplayEdges
	if base != 10 {
		edges = HexDisplayEdges
	}
	sign := ""
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}
	return fmt.Sprintf("%s%s...%s (%s characters)", sign, text[:edges], text[len(text)-edges:],
		format.FormatNumberString(fmt.Sprint(len(text))))
}

// DisplayResult renders res inside a lipgloss box: operation, algorithm,
// duration, size and the possibly truncated value.
func DisplayResult[D digit.Digit](out io.Writer, res calc.Result[D], cfg OutputConfig) {
	line := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, ui.Label().Render(label), value)
	}
	text := res.Value.Text(cfg.Base)
	lines := []string{
		line("Operation", res.Op.String()),
		line("Algorithm", res.Algorithm),
		line("Duration", format.FormatExecutionDuration(res.Duration)),
		line("Bits", format.FormatNumberString(fmt.Sprint(res.Value.BitLen()))),
		line("Digits", fmt.Sprintf("%s (%d-bit)", format.FormatNumberString(fmt.Sprint(res.Value.Len())), digit.Width[D]())),
		line("Result", FormatValue(text, cfg.Base, cfg.Verbose)),
	}
	if res.Op == calc.OpQuoRem {
		lines = append(lines, line("Remainder", FormatValue(res.Remainder.Text(cfg.Base), cfg.Base, cfg.Verbose)))
	}
	fmt.Fprintln(out, ui.ResultBox().Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

// DisplayQuietResult prints the value, and the remainder of a quorem on a
// second line, with nothing else.
func DisplayQuietResult[D digit.Digit](out io.Writer, res calc.Result[D], base int) {
	fmt.Fprintln(out, res.Value.Text(base))
	if res.Op == calc.OpQuoRem {
		fmt.Fprintln(out, res.Remainder.Text(base))
	}
}

// DisplayResultWithConfig displays res per cfg and saves it when an output
// file is configured.
func DisplayResultWithConfig[D digit.Digit](out io.Writer, res calc.Result[D], cfg OutputConfig) error {
	if cfg.Quiet {
		DisplayQuietResult(out, res, cfg.Base)
	} else {
		DisplayResult(out, res, cfg)
	}
	if cfg.OutputFile == "" {
		return nil
	}
	if err := WriteResultToFile(res, cfg.OutputFile); err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), cfg.OutputFile, ui.ColorReset())
	}
	return nil
}

// WriteResultToFile writes the value of res to path in the natio binary
// format, creating parent directories as needed.
func WriteResultToFile[D digit.Digit](res calc.Result[D], path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return calc.SaveResult(path, res.Value)
}
