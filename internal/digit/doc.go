// Package digit defines the fixed-width digit contract the arithmetic kernel
// is written against. A digit is one element of a big integer's internal
// array; BASE = 2^Width. The package also provides the double-width helpers
// (a Wide hi/lo pair) needed for carry-safe multiplication and 2-by-1
// division, so that the rest of the kernel never has to name a concrete
// integer width.
package digit
