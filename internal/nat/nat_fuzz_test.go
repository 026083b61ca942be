package nat

import (
	"math/big"
	"testing"
)

// FuzzArithmeticOracle checks add, sub, mul and every division tier against
// math/big on arbitrary byte-string operands.
func FuzzArithmeticOracle(f *testing.F) {
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF}, []byte{0xFF, 0xFF, 0xFF, 0xFF})
	f.Add([]byte{10}, []byte{3})
	f.Add([]byte{1, 0, 0, 0, 0, 0, 0, 0, 0}, []byte{1})
	f.Add(make([]byte, 64), []byte{7})
	f.Add([]byte{0x80, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, []byte{0x80, 0, 0, 0, 0, 0, 0, 1})

	f.Fuzz(func(t *testing.T, pa, pb []byte) {
		if len(pa) > 4096 || len(pb) > 4096 {
			return
		}
		a, ba := fromBytes[uint32](t, pa)
		b, bb := fromBytes[uint32](t, pb)

		if got := toBig(t, a.Add(b)); got.Cmp(new(big.Int).Add(ba, bb)) != 0 {
			t.Fatalf("add mismatch")
		}
		if got := toBig(t, a.Mul(b)); got.Cmp(new(big.Int).Mul(ba, bb)) != 0 {
			t.Fatalf("mul mismatch")
		}
		if a.Cmp(b) >= 0 {
			if got := toBig(t, a.Sub(b)); got.Cmp(new(big.Int).Sub(ba, bb)) != 0 {
				t.Fatalf("sub mismatch")
			}
		}
		if b.IsZero() {
			return
		}
		wantQ, wantR := new(big.Int).QuoRem(ba, bb, new(big.Int))
		for name, opts := range divisionTiers {
			q, r, err := a.QuoRemWith(b, opts)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			if toBig(t, q).Cmp(wantQ) != 0 || toBig(t, r).Cmp(wantR) != 0 {
				t.Fatalf("%s: quotient/remainder mismatch", name)
			}
		}
	})
}

// FuzzTextRoundTrip checks that decimal and hexadecimal text survive a
// round trip and agree with math/big.
func FuzzTextRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0})
	f.Add([]byte{0x3B, 0x9A, 0xCA, 0x00})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})

	f.Fuzz(func(t *testing.T, p []byte) {
		x, bx := fromBytes[uint64](t, p)
		if x.String() != bx.String() {
			t.Fatalf("decimal %s, math/big %s", x.String(), bx.String())
		}
		back, err := Parse[uint64](x.String())
		if err != nil || !back.Equal(x) {
			t.Fatalf("decimal round trip failed: %v", err)
		}
	})
}
