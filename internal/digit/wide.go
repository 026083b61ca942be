package digit

// Wide is the double-width companion of a digit: the value Hi·BASE + Lo.
// Go has no native integer twice as wide as uint64, so the pair form is
// used for every width.
type Wide[D Digit] struct {
	Hi, Lo D
}

// Join combines a high and a low digit into a double-width value.
func Join[D Digit](hi, lo D) Wide[D] {
	return Wide[D]{Hi: hi, Lo: lo}
}

// Split returns the high and low digits of w.
func (w Wide[D]) Split() (hi, lo D) {
	return w.Hi, w.Lo
}

// MulWide returns x*y as a double-width value.
func MulWide[D Digit](x, y D) Wide[D] {
	hi, lo := Mul(x, y)
	return Wide[D]{Hi: hi, Lo: lo}
}

// AddDigit returns w + c and reports whether the sum overflowed two digits.
func (w Wide[D]) AddDigit(c D) (Wide[D], bool) {
	lo, cc := Add(w.Lo, c, 0)
	hi, co := Add(w.Hi, 0, cc)
	return Wide[D]{Hi: hi, Lo: lo}, co != 0
}

// DivDigit divides w by y. The caller must ensure w.Hi < y.
func (w Wide[D]) DivDigit(y D) (q, r D) {
	return Div(w.Hi, w.Lo, y)
}

// Cmp compares w and v and returns -1, 0 or +1.
func (w Wide[D]) Cmp(v Wide[D]) int {
	switch {
	case w.Hi < v.Hi:
		return -1
	case w.Hi > v.Hi:
		return 1
	case w.Lo < v.Lo:
		return -1
	case w.Lo > v.Lo:
		return 1
	}
	return 0
}

// IsZero reports whether w == 0.
func (w Wide[D]) IsZero() bool {
	return w.Hi == 0 && w.Lo == 0
}
