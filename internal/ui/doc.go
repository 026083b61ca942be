// Package ui provides theme and color support for the bigcalc command line:
// ANSI escape helpers for inline coloring and lipgloss styles for the result
// box. The NO_COLOR convention and -no-color switch every helper to plain
// text.
package ui
