package bignum

// AbsDiffU128 subtracts the smaller of a and b from the larger.
func AbsDiffU128(a, b U128) U128 {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

// Larger returns the larger of a and b, or a if they are equal.
func Larger(a, b Natural) Natural {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// Smaller returns the smaller of a and b, or a if they are equal.
func Smaller(a, b Natural) Natural {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}

// LargerInteger returns the larger of a and b, or a if they are equal.
func LargerInteger(a, b Integer) Integer {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// SmallerInteger returns the smaller of a and b, or a if they are equal.
func SmallerInteger(a, b Integer) Integer {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
