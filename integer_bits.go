package bignum

// The bitwise operations treat x as an infinite two's-complement bit string:
// a non-negative value has infinitely many leading zeros and a negative value
// infinitely many leading ones. For negative x the string is ^(|x| - 1), so
// every operation below reduces to magnitudes with one decrement or
// increment; the two's-complement form is never stored.

// Bit returns the value of bit i of x's two's-complement form.
func (x Integer) Bit(i uint64) uint {
	if x.neg {
		return x.abs.Dec().Bit(i) ^ 1
	}
	return x.abs.Bit(i)
}

// SetBit returns x with bit i set.
func (x Integer) SetBit(i uint64) Integer {
	if x.neg {
		t := x.abs.Dec().ClearBit(i)
		return integer(true, t.Inc())
	}
	return Integer{abs: x.abs.SetBit(i)}
}

// ClearBit returns x with bit i cleared.
func (x Integer) ClearBit(i uint64) Integer {
	if x.neg {
		t := x.abs.Dec().SetBit(i)
		return integer(true, t.Inc())
	}
	return Integer{abs: x.abs.ClearBit(i)}
}

// Not returns ^x, which is -x - 1.
func (x Integer) Not() Integer {
	if x.neg {
		return Integer{abs: x.abs.Dec()}
	}
	return integer(true, x.abs.Inc())
}

// And returns x & y.
func (x Integer) And(y Integer) Integer {
	if x.neg == y.neg {
		if x.neg {
			// (-x) & (-y) == ^(x-1) & ^(y-1) == ^((x-1) | (y-1)) == -(((x-1) | (y-1)) + 1)
			x1, y1 := x.abs.Dec(), y.abs.Dec()
			return integer(true, x1.Or(y1).Inc())
		}
		return Integer{abs: x.abs.And(y.abs)}
	}
	if x.neg {
		x, y = y, x
	}
	// x & (-y) == x & ^(y-1) == x &^ (y-1)
	return Integer{abs: x.abs.AndNot(y.abs.Dec())}
}

// Or returns x | y.
func (x Integer) Or(y Integer) Integer {
	if x.neg == y.neg {
		if x.neg {
			// (-x) | (-y) == ^(x-1) | ^(y-1) == ^((x-1) & (y-1)) == -(((x-1) & (y-1)) + 1)
			x1, y1 := x.abs.Dec(), y.abs.Dec()
			return integer(true, x1.And(y1).Inc())
		}
		return Integer{abs: x.abs.Or(y.abs)}
	}
	if x.neg {
		x, y = y, x
	}
	// x | (-y) == x | ^(y-1) == ^((y-1) &^ x) == -(((y-1) &^ x) + 1)
	y1 := y.abs.Dec()
	return integer(true, y1.AndNot(x.abs).Inc())
}

// Xor returns x ^ y.
func (x Integer) Xor(y Integer) Integer {
	if x.neg == y.neg {
		if x.neg {
			// (-x) ^ (-y) == ^(x-1) ^ ^(y-1) == (x-1) ^ (y-1)
			x1, y1 := x.abs.Dec(), y.abs.Dec()
			return Integer{abs: x1.Xor(y1)}
		}
		return Integer{abs: x.abs.Xor(y.abs)}
	}
	if x.neg {
		x, y = y, x
	}
	// x ^ (-y) == x ^ ^(y-1) == ^(x ^ (y-1)) == -((x ^ (y-1)) + 1)
	y1 := y.abs.Dec()
	return integer(true, x.abs.Xor(y1).Inc())
}

// AndNot returns x &^ y.
func (x Integer) AndNot(y Integer) Integer {
	switch {
	case x.neg && y.neg:
		// (-x) &^ (-y) == ^(x-1) &^ ^(y-1) == ^(x-1) & (y-1) == (y-1) &^ (x-1)
		x1, y1 := x.abs.Dec(), y.abs.Dec()
		return Integer{abs: y1.AndNot(x1)}
	case !x.neg && !y.neg:
		return Integer{abs: x.abs.AndNot(y.abs)}
	case !x.neg:
		// x &^ (-y) == x &^ ^(y-1) == x & (y-1)
		y1 := y.abs.Dec()
		return Integer{abs: x.abs.And(y1)}
	}
	// (-x) &^ y == ^(x-1) &^ y == ^((x-1) | y) == -(((x-1) | y) + 1)
	x1 := x.abs.Dec()
	return integer(true, x1.Or(y.abs).Inc())
}

// Lsh returns x << n.
func (x Integer) Lsh(n uint64) Integer {
	return integer(x.neg, x.abs.Lsh(n))
}

// Rsh returns x >> n, rounding towards negative infinity like Go's >> on
// signed integers.
func (x Integer) Rsh(n uint64) Integer {
	if x.neg {
		// (-x) >> s == ^(x-1) >> s == ^((x-1) >> s) == -(((x-1) >> s) + 1)
		t := x.abs.Dec().Rsh(n)
		return integer(true, t.Inc())
	}
	return Integer{abs: x.abs.Rsh(n)}
}

// BitLen returns the bit length of |x|.
func (x Integer) BitLen() uint64 { return x.abs.BitLen() }

// TrailingZeros returns the number of trailing zero bits of x, which is the
// same for x and -x. ok is false for zero.
func (x Integer) TrailingZeros() (uint64, bool) { return x.abs.TrailingZeros() }
