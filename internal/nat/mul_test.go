package nat

import (
	"math/big"
	"math/rand"
	"slices"
	"testing"
)

var (
	schoolbookOnly = Options{Multiplication: MulSchoolbook}
	karatsubaOnly  = Options{Multiplication: MulKaratsuba, KaratsubaThreshold: minKaratsuba}
)

func TestMulTriangularPattern(t *testing.T) {
	t.Parallel()
	for name, opts := range map[string]Options{
		"default":    DefaultOptions(),
		"schoolbook": schoolbookOnly,
		"karatsuba":  karatsubaOnly,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			a := ones[uint32](100)
			p := a.MulWith(a, opts)
			if len(p) != 199 {
				t.Fatalf("product has %d digits, want 199", len(p))
			}
			for i, d := range p {
				want := uint32(min(i+1, 199-i))
				if d != want {
					t.Fatalf("digit %d = %d, want %d", i, d, want)
				}
			}
		})
	}
}

func TestMulMatchesBig(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 3, 16, 39, 40, 41, 79, 80, 81, 200, 333} {
		x := exactNat[uint64](r, n)
		y := exactNat[uint64](r, n)
		want := new(big.Int).Mul(toBig(t, x), toBig(t, y))
		if got := toBig(t, x.Mul(y)); got.Cmp(want) != 0 {
			t.Fatalf("n=%d: product differs from math/big", n)
		}
	}
}

// TestSchoolbookEqualsKaratsuba compares digit sequences on both sides of
// the cutover, balanced and unbalanced.
func TestSchoolbookEqualsKaratsuba(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(2))
	threshold := DefaultKaratsubaThreshold
	shapes := [][2]int{
		{threshold - 1, threshold - 1},
		{threshold, threshold},
		{threshold + 1, threshold},
		{2*threshold + 3, threshold},
		{5*threshold + 7, threshold + 2},
		{129, 64},
		{256, 256},
	}
	for _, s := range shapes {
		x := exactNat[uint32](r, s[0])
		y := exactNat[uint32](r, s[1])
		sb := x.MulWith(y, schoolbookOnly)
		ka := x.MulWith(y, karatsubaOnly)
		if !slices.Equal(sb, ka) {
			t.Fatalf("%dx%d digits: schoolbook and Karatsuba differ", s[0], s[1])
		}
		for _, opts := range []Options{DefaultOptions(), {Doubling: true, Multiplication: MulKaratsuba}} {
			if got := x.MulWith(y, opts); !slices.Equal(sb, got) {
				t.Fatalf("%dx%d digits: %+v differs from schoolbook", s[0], s[1], opts)
			}
		}
	}
}

func TestMulDoubledOddTails(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(5))
	doubled := Options{Doubling: true}
	for la := 2; la <= 9; la++ {
		for lb := 2; lb <= 9; lb++ {
			x := exactNat[uint32](r, la)
			y := exactNat[uint32](r, lb)
			want := x.MulWith(y, schoolbookOnly)
			if got := x.MulWith(y, doubled); !slices.Equal(got, want) {
				t.Fatalf("doubled %dx%d differs: got %x want %x", len(x), len(y), []uint32(got), []uint32(want))
			}
		}
	}
}

func TestMulParallel(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(6))
	x := exactNat[uint64](r, 600)
	y := exactNat[uint64](r, 550)
	opts := Options{KaratsubaThreshold: 16, ParallelThreshold: 256}
	want := x.MulWith(y, schoolbookOnly)
	if got := x.MulWith(y, opts); !slices.Equal(got, want) {
		t.Fatal("parallel Karatsuba differs from schoolbook")
	}
}

func TestMulByZeroAndOne(t *testing.T) {
	t.Parallel()
	x := MustParse[uint64]("98765432109876543210987654321")
	if p := x.Mul(Zero[uint64]()); !p.IsZero() || len(p) != 1 {
		t.Fatalf("x*0 = %v", []uint64(p))
	}
	if p := x.Mul(FromUint64[uint64](1)); !p.Equal(x) {
		t.Fatalf("x*1 = %s", p)
	}
	if sq := x.Sqr(); !sq.Equal(x.Mul(x)) {
		t.Fatal("Sqr differs from Mul")
	}
}

func BenchmarkMul(b *testing.B) {
	r := rand.New(rand.NewSource(7))
	for _, n := range []int{32, 256, 2048} {
		x, y := exactNat[uint64](r, n), exactNat[uint64](r, n)
		b.Run(formatSize(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = x.Mul(y)
			}
		})
	}
}

func formatSize(n int) string {
	return FromUint64[uint64](uint64(n)).String() + "_digits"
}
