// Copyright 2010 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// WARNING: This file uses //go:linkname to reach math/big's word-vector
// routines, which are implemented in assembly on most platforms. They are
// not part of Go's public API. math/big keeps these particular symbols
// linkable because widely used packages depend on them, but the signatures
// below must match math/big exactly; review them after every Go upgrade.

package arith

import (
	"math/big"
	_ "unsafe" // Required for go:linkname
)

// word is one machine word as math/big sees it.
type word = big.Word

// bigAddVV computes z = x + y element-wise and returns the carry.
//
//go:linkname bigAddVV math/big.addVV
func bigAddVV(z, x, y []word) (c word)

// bigSubVV computes z = x - y element-wise and returns the borrow.
//
//go:linkname bigSubVV math/big.subVV
func bigSubVV(z, x, y []word) (c word)

// bigMulAddVWW computes z = x*y + r element-wise and returns the carry.
//
//go:linkname bigMulAddVWW math/big.mulAddVWW
func bigMulAddVWW(z, x []word, y, r word) (c word)

// bigAddMulVVW computes z += x*y element-wise and returns the carry.
//
//go:linkname bigAddMulVVW math/big.addMulVVW
func bigAddMulVVW(z, x []word, y word) (c word)
