// Package logging provides a unified logging interface for bigcalc.
// It abstracts the underlying logging implementation so that the calc engine,
// the CLI and the HTTP server log consistently while supporting multiple
// backends (zerolog by default, the standard library logger for tests).
package logging
