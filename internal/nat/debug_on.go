//go:build bignumdebug

package nat

// debugChecks enables internal consistency assertions.
const debugChecks = true
