// Package arith provides the carry-propagating vector loops that every
// multi-digit operation in the kernel is built on.
//
// Each loop has a portable generic form. Two faster strategies produce
// bit-identical results and are chosen per call from the digit width, the
// host byte order and the operand length:
//
//   - Platform: digits that are exactly one machine word are handed to
//     math/big's assembly routines.
//   - Doubled: on little-endian hosts, an aligned even-length run of
//     half-word digits is treated as machine words, with the odd tail
//     finished by the generic loop.
//
// Operands shorter than MinFastPathLen always use the generic loop.
package arith
