package arith

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/bignum/internal/digit"
)

// ─────────────────────────────────────────────────────────────────────────────
// Test Utilities
// ─────────────────────────────────────────────────────────────────────────────

func randomDigits[D digit.Digit](n int, seed int64) []D {
	r := rand.New(rand.NewSource(seed))
	xs := make([]D, n)
	for i := range xs {
		xs[i] = D(r.Uint64())
	}
	return xs
}

var strategies = []Strategy{Generic, Platform, Doubled}

// usable reports whether s can run for digits of type D on this host.
func usable[D digit.Digit](s Strategy) bool {
	return s == Generic || s == Available[D]()
}

// ─────────────────────────────────────────────────────────────────────────────
// Strategy Equivalence
// ─────────────────────────────────────────────────────────────────────────────

func testAddSubStrategies[D digit.Digit](t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 8, 9, 16, 33, 64, 257}
	for _, s := range strategies {
		if !usable[D](s) {
			continue
		}
		for _, n := range sizes {
			x := randomDigits[D](n, 42)
			y := randomDigits[D](n, 43)

			zRef := make([]D, n)
			cRef := addVVGeneric(zRef, x, y, 0)
			z := make([]D, n)
			c := addVVWith(s, z, x, y)
			if c != cRef || !slices.Equal(z, zRef) {
				t.Errorf("%s add n=%d: carry %d want %d, digits equal=%v", s, n, c, cRef, slices.Equal(z, zRef))
			}

			bRef := subVVGeneric(zRef, x, y, 0)
			b := subVVWith(s, z, x, y)
			if b != bRef || !slices.Equal(z, zRef) {
				t.Errorf("%s sub n=%d: borrow %d want %d", s, n, b, bRef)
			}
		}
	}
}

func TestStrategyEquivalence(t *testing.T) {
	t.Parallel()
	t.Run("uint32", func(t *testing.T) {
		t.Parallel()
		testAddSubStrategies[uint32](t)
	})
	t.Run("uint64", func(t *testing.T) {
		t.Parallel()
		testAddSubStrategies[uint64](t)
	})
}

func TestDoubledUnalignedFallsBack(t *testing.T) {
	t.Parallel()
	if Available[uint32]() != Doubled {
		t.Skip("doubled strategy not available on this host")
	}
	buf := randomDigits[uint32](41, 7)
	x, y := buf[1:21], buf[21:41] // odd offset into the buffer: misaligned
	want := make([]uint32, 20)
	cWant := addVVGeneric(want, x, y, 0)
	got := make([]uint32, 20)
	if c := addVVWith(Doubled, got, x, y); c != cWant || !slices.Equal(got, want) {
		t.Fatalf("misaligned doubled add diverged from generic")
	}
}

func TestCarryChain(t *testing.T) {
	t.Parallel()
	for _, s := range strategies {
		if !usable[uint32](s) {
			continue
		}
		n := 16
		x := make([]uint32, n)
		for i := range x {
			x[i] = ^uint32(0)
		}
		y := make([]uint32, n)
		y[0] = 1
		z := make([]uint32, n)
		if c := addVVWith(s, z, x, y); c != 1 {
			t.Errorf("%s: carry = %d, want 1", s, c)
		}
		for i, d := range z {
			if d != 0 {
				t.Fatalf("%s: z[%d] = %x, want 0", s, i, d)
			}
		}
	}
}

func TestStrategyFor(t *testing.T) {
	if strategyFor[uint64](MinFastPathLen-1) != Generic {
		t.Error("short operands must use the generic loop")
	}
	SetFastPaths(false)
	defer SetFastPaths(true)
	if strategyFor[uint64](1024) != Generic {
		t.Error("disabled fast paths must use the generic loop")
	}
	if FastPathsEnabled() {
		t.Error("FastPathsEnabled() = true after SetFastPaths(false)")
	}
}

func TestStrategyString(t *testing.T) {
	t.Parallel()
	for s, want := range map[Strategy]string{Generic: "generic", Platform: "platform", Doubled: "doubled", 9: "Strategy(9)"} {
		if got := s.String(); got != want {
			t.Errorf("Strategy(%d).String() = %q, want %q", s, got, want)
		}
	}
	if HostFeatures().String() == "" {
		t.Error("empty feature string")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// In-Place Assignment Helpers
// ─────────────────────────────────────────────────────────────────────────────

func TestAddAssignPropagates(t *testing.T) {
	t.Parallel()
	dst := []uint32{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 5}
	if c := AddAssign(dst, []uint32{1}); c != 0 {
		t.Fatalf("carry = %d, want 0", c)
	}
	if !slices.Equal(dst, []uint32{0, 0, 0, 6}) {
		t.Fatalf("dst = %x", dst)
	}

	dst = []uint32{0xFFFFFFFF, 0xFFFFFFFF}
	if c := AddAssign(dst, []uint32{1}); c != 1 {
		t.Fatalf("carry out of the top = %d, want 1", c)
	}
}

func TestSubAssignPropagates(t *testing.T) {
	t.Parallel()
	dst := []uint64{0, 0, 1}
	if b := SubAssign(dst, []uint64{1}); b != 0 {
		t.Fatalf("borrow = %d, want 0", b)
	}
	if !slices.Equal(dst, []uint64{^uint64(0), ^uint64(0), 0}) {
		t.Fatalf("dst = %x", dst)
	}
	if b := SubAssign([]uint64{0}, []uint64{1}); b != 1 {
		t.Fatalf("underflow borrow = %d, want 1", b)
	}
}

func TestRSubAssign(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		dst    []uint32
		dstLen int
		src    []uint32
		want   []uint32
		borrow uint32
	}{
		{"equal length", []uint32{3, 1}, 2, []uint32{5, 2}, []uint32{2, 1}, 0},
		{"borrow crosses window", []uint32{1, 0, 0, 0}, 1, []uint32{0, 0, 0, 1}, []uint32{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0}, 0},
		{"short window no borrow", []uint32{1, 9, 9}, 1, []uint32{4, 7, 8}, []uint32{3, 7, 8}, 0},
		{"underflow", []uint32{2}, 1, []uint32{1}, []uint32{0xFFFFFFFF}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dst := slices.Clone(tt.dst)
			b := RSubAssign(dst, tt.src, tt.dstLen)
			if b != tt.borrow {
				t.Errorf("borrow = %d, want %d", b, tt.borrow)
			}
			if got := dst[:len(tt.src)]; !slices.Equal(got, tt.want) {
				t.Errorf("result = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestRSubAssignPanicsOnBadLengths(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when dstLen exceeds len(src)")
		}
	}()
	RSubAssign([]uint32{1, 2, 3}, []uint32{1}, 3)
}

// ─────────────────────────────────────────────────────────────────────────────
// Multiply, Shift and Divide Loops
// ─────────────────────────────────────────────────────────────────────────────

func TestMulLoopsMatchGeneric(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 5, 8, 31, 128} {
		x := randomDigits[uint64](n, int64(n))
		y := uint64(0xDEADBEEFCAFEBABE)

		want := make([]uint64, n)
		cWant := mulAddVWWGeneric(want, x, y, 17)
		got := make([]uint64, n)
		if c := MulAddVWW(got, x, y, 17); c != cWant || !slices.Equal(got, want) {
			t.Errorf("MulAddVWW n=%d diverged", n)
		}

		acc := randomDigits[uint64](n, 99)
		accRef := slices.Clone(acc)
		cWant = addMulVVWGeneric(accRef, x, y)
		if c := AddMulVVW(acc, x, y); c != cWant || !slices.Equal(acc, accRef) {
			t.Errorf("AddMulVVW n=%d diverged", n)
		}
	}
}

func TestShiftRoundTrip(t *testing.T) {
	t.Parallel()
	x := randomDigits[uint32](10, 5)
	x[9] &= 0x0000FFFF // room for a 16-bit left shift
	for _, s := range []uint{0, 1, 13, 16} {
		z := make([]uint32, len(x))
		if c := ShlVU(z, x, s); c != 0 {
			t.Fatalf("ShlVU(%d) spilled %x", s, c)
		}
		back := make([]uint32, len(x))
		if c := ShrVU(back, z, s); c != 0 {
			t.Fatalf("ShrVU(%d) dropped bits %x", s, c)
		}
		if !slices.Equal(back, x) {
			t.Fatalf("shift round trip by %d failed", s)
		}
	}
	if c := ShlVU([]uint32{0}, []uint32{0x80000001}, 1); c != 1 {
		t.Errorf("ShlVU carry = %d, want 1", c)
	}
	if c := ShrVU([]uint32{0}, []uint32{3}, 1); c != 0x80000000 {
		t.Errorf("ShrVU carry = %x, want 80000000", c)
	}
}

func TestDivVW(t *testing.T) {
	t.Parallel()
	x := randomDigits[uint64](12, 11)
	const y = 1_000_000_007
	q := make([]uint64, len(x))
	r := DivVW(q, x, y)
	if r >= y {
		t.Fatalf("remainder %d not reduced", r)
	}
	// q*y + r must reproduce x.
	back := make([]uint64, len(x))
	if c := MulAddVWW(back, q, y, r); c != 0 {
		t.Fatalf("q*y+r overflowed: %d", c)
	}
	if !slices.Equal(back, x) {
		t.Fatal("q*y + r != x")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Property-Based Tests
// ─────────────────────────────────────────────────────────────────────────────

// TestAddThenSub_PropertyBased verifies that subtracting what was added
// restores the original digits under every strategy the host supports.
func TestAddThenSub_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("add then sub is identity", prop.ForAll(
		func(xs, ys []uint32) bool {
			n := min(len(xs), len(ys))
			x, y := xs[:n], ys[:n]
			for _, s := range strategies {
				if !usable[uint32](s) {
					continue
				}
				z := make([]uint32, n)
				c := addVVWith(s, z, x, y)
				b := subVVWith(s, z, z, y)
				if c != b || !slices.Equal(z, x) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt32()),
		gen.SliceOf(gen.UInt32()),
	))

	properties.TestingRun(t)
}
