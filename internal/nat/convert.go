package nat

import (
	"strconv"
	"strings"

	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/digit"
)

// maxPow returns the largest power of base that fits one digit and its
// exponent.
func maxPow[D digit.Digit](base uint64) (pow D, k int) {
	limit := uint64(digit.Max[D]())
	p := uint64(1)
	for p <= limit/base {
		p *= base
		k++
	}
	return D(p), k
}

// String returns the decimal representation of x.
func (x Nat[D]) String() string {
	return x.Text(10)
}

// Text returns x in base 2, 10 or 16 without a prefix. Hexadecimal digits
// are lowercase.
func (x Nat[D]) Text(base int) string {
	a := sig(x)
	if len(a) == 0 {
		return "0"
	}
	switch base {
	case 2, 16:
		return formatPow2(a, base)
	case 10:
		return formatDecimal(a)
	}
	panic("nat: unsupported base " + strconv.Itoa(base))
}

// formatPow2 renders each digit at fixed width, most significant first; the
// top digit is not padded.
func formatPow2[D digit.Digit](a []D, base int) string {
	perDigit := int(digit.Width[D]())
	if base == 16 {
		perDigit /= 4
	}
	var sb strings.Builder
	sb.Grow(len(a) * perDigit)
	sb.WriteString(strconv.FormatUint(uint64(a[len(a)-1]), base))
	for i := len(a) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(a[i]), base)
		sb.WriteString(strings.Repeat("0", perDigit-len(s)))
		sb.WriteString(s)
	}
	return sb.String()
}

// formatDecimal divides repeatedly by the largest power of ten that fits a
// digit; each remainder is one zero-padded chunk of decimal digits.
func formatDecimal[D digit.Digit](a []D) string {
	pow, k := maxPow[D](10)
	q := make([]D, len(a))
	copy(q, a)
	var chunks []D
	for len(q) > 0 {
		r := arith.DivVW(q, q, pow)
		chunks = append(chunks, r)
		q = sig(q)
	}

	var sb strings.Builder
	sb.Grow(len(chunks) * k)
	sb.WriteString(strconv.FormatUint(uint64(chunks[len(chunks)-1]), 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(chunks[i]), 10)
		sb.WriteString(strings.Repeat("0", k-len(s)))
		sb.WriteString(s)
	}
	return sb.String()
}

// Parse converts s to a Nat. A 0x or 0b prefix selects hexadecimal or
// binary; otherwise s is decimal. Underscores between digits are ignored.
func Parse[D digit.Digit](s string) (Nat[D], error) {
	base := 10
	switch {
	case len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X"):
		base, s = 16, s[2:]
	case len(s) > 2 && (s[:2] == "0b" || s[:2] == "0B"):
		base, s = 2, s[2:]
	}
	return ParseBase[D](s, base)
}

// ParseBase converts s, written in base 2, 10 or 16 without a prefix.
func ParseBase[D digit.Digit](s string, base int) (Nat[D], error) {
	switch base {
	case 2, 10, 16:
	default:
		return nil, Error.New("unsupported base %d", base)
	}
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return nil, ErrSyntax
	}

	pow, k := maxPow[D](uint64(base))
	z := Zero[D]()
	// The first chunk absorbs the remainder so every later chunk is full.
	first := len(s) % k
	if first == 0 {
		first = k
	}
	for i := 0; i < len(s); {
		end := i + k
		if i == 0 {
			end = first
		}
		chunk, err := strconv.ParseUint(s[i:end], base, int(digit.Width[D]()))
		if err != nil {
			return nil, ErrSyntax
		}
		if i == 0 {
			z[0] = D(chunk)
		} else {
			z.MulAssignDigit(pow)
			z.AddAssignDigit(D(chunk))
		}
		i = end
	}
	return norm(z), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse[D digit.Digit](s string) Nat[D] {
	z, err := Parse[D](s)
	if err != nil {
		panic("nat: MustParse(" + strconv.Quote(s) + "): " + err.Error())
	}
	return z
}
