//go:build !bignumdebug

package nat

const debugChecks = false
