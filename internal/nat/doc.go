// Package nat implements arbitrary-precision natural numbers over a generic
// digit type.
//
// A Nat is a little-endian slice of digits. Normalized values never carry a
// most-significant zero digit, and zero is represented by exactly one zero
// digit. Every operation comes in an allocating form that returns a fresh
// value and, where it is useful, an in-place *Assign form that reuses the
// receiver's backing array when its capacity suffices.
//
// Multiplication switches from schoolbook to Karatsuba above
// Options.KaratsubaThreshold and, for 32-bit digits, multiplies packed 64-bit
// digit pairs. Division uses a single-digit loop, a Newton–Raphson
// reciprocal for divisors up to Options.NewtonThreshold digits, and
// Burnikel–Ziegler recursive division beyond that. Knuth's long division is
// available as a reference.
//
// Build with the bignumdebug tag to enable internal consistency checks.
package nat
