// Package apperrors defines the application-level error types of bigcalc
// and the process exit codes they map to. Kernel packages report their own
// zeebo/errs classes; this package wraps them at the application boundary
// (CLI, server) so that callers can branch with errors.As and errors.Is.
package apperrors
