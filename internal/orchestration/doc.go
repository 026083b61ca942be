// Package orchestration runs every algorithm able to evaluate an operation
// concurrently and cross-checks their results. It decouples the comparison
// logic from presentation via the ResultPresenter and ErrorHandler
// interfaces.
package orchestration
