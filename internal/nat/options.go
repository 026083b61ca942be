package nat

import (
	"fmt"
	"strings"
)

// ─── Algorithm Cutover Defaults ───

const (
	// DefaultKaratsubaThreshold is the shorter operand length, in digits,
	// from which multiplication switches to Karatsuba.
	DefaultKaratsubaThreshold = 40

	// DefaultNewtonThreshold is the largest divisor length, in digits, that
	// is divided with the Newton–Raphson reciprocal. Longer divisors use
	// Burnikel–Ziegler with Newton–Raphson as its base case.
	DefaultNewtonThreshold = 60

	// DefaultParallelThreshold is the padded Karatsuba length, in digits,
	// from which the three top-level sub-products run concurrently.
	// Zero disables parallel multiplication.
	DefaultParallelThreshold = 4096

	// minKaratsuba is the smallest half length Karatsuba recurses on.
	minKaratsuba = 4
)

// Multiplication selects the multiplication algorithm.
type Multiplication uint8

const (
	MulAuto Multiplication = iota
	MulSchoolbook
	MulKaratsuba
)

var multiplicationNames = map[Multiplication]string{
	MulAuto:       "auto",
	MulSchoolbook: "schoolbook",
	MulKaratsuba:  "karatsuba",
}

func (m Multiplication) String() string {
	if s, ok := multiplicationNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Multiplication(%d)", uint8(m))
}

// ParseMultiplication maps a name such as "karatsuba" to its algorithm.
func ParseMultiplication(s string) (Multiplication, error) {
	for m, name := range multiplicationNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return MulAuto, Error.New("unknown multiplication algorithm %q", s)
}

// Division selects the division algorithm.
type Division uint8

const (
	DivAuto Division = iota
	// DivSingleDigit is reported by SelectDivision for one-digit divisors;
	// requesting it explicitly behaves like DivAuto.
	DivSingleDigit
	DivSchoolbook
	DivNewton
	DivBurnikelZiegler
)

var divisionNames = map[Division]string{
	DivAuto:            "auto",
	DivSingleDigit:     "single-digit",
	DivSchoolbook:      "schoolbook",
	DivNewton:          "newton",
	DivBurnikelZiegler: "burnikel-ziegler",
}

func (d Division) String() string {
	if s, ok := divisionNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Division(%d)", uint8(d))
}

// ParseDivision maps a name such as "newton" or "bz" to its algorithm.
func ParseDivision(s string) (Division, error) {
	if strings.EqualFold(s, "bz") {
		return DivBurnikelZiegler, nil
	}
	for d, name := range divisionNames {
		if strings.EqualFold(s, name) {
			return d, nil
		}
	}
	return DivAuto, Error.New("unknown division algorithm %q", s)
}

// Options tunes algorithm selection. The zero value is usable: zero
// thresholds fall back to the defaults and doubling stays off.
type Options struct {
	KaratsubaThreshold int
	NewtonThreshold    int
	// ParallelThreshold enables concurrent Karatsuba sub-products when
	// positive.
	ParallelThreshold int
	Multiplication    Multiplication
	Division          Division
	// Doubling multiplies 32-bit digits as packed 64-bit pairs.
	Doubling bool
}

// DefaultOptions returns the tuned defaults.
func DefaultOptions() Options {
	return Options{
		KaratsubaThreshold: DefaultKaratsubaThreshold,
		NewtonThreshold:    DefaultNewtonThreshold,
		ParallelThreshold:  DefaultParallelThreshold,
		Doubling:           true,
	}
}

func (o Options) karatsubaThreshold() int {
	if o.KaratsubaThreshold <= 0 {
		return DefaultKaratsubaThreshold
	}
	return max(o.KaratsubaThreshold, minKaratsuba)
}

func (o Options) newtonThreshold() int {
	if o.NewtonThreshold <= 0 {
		return DefaultNewtonThreshold
	}
	return max(o.NewtonThreshold, 2)
}

// SelectDivision reports the algorithm used for a divisor of divisorLen
// digits under opts.
func SelectDivision(divisorLen int, opts Options) Division {
	if divisorLen <= 1 {
		return DivSingleDigit
	}
	switch opts.Division {
	case DivSchoolbook, DivNewton, DivBurnikelZiegler:
		return opts.Division
	}
	if divisorLen <= opts.newtonThreshold() {
		return DivNewton
	}
	return DivBurnikelZiegler
}

// SelectMultiplication reports the algorithm used for operands of the given
// lengths under opts.
func SelectMultiplication(la, lb int, opts Options) Multiplication {
	switch opts.Multiplication {
	case MulSchoolbook, MulKaratsuba:
		return opts.Multiplication
	}
	if min(la, lb) < opts.karatsubaThreshold() {
		return MulSchoolbook
	}
	return MulKaratsuba
}
