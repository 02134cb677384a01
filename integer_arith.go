package bignum

// Add returns x + y.
func (x Integer) Add(y Integer) Integer {
	if x.neg == y.neg {
		return integer(x.neg, x.abs.Add(y.abs))
	}
	// Opposite signs: the larger magnitude wins and sets the sign.
	if x.abs.Cmp(y.abs) >= 0 {
		return integer(x.neg, x.abs.Sub(y.abs))
	}
	return integer(y.neg, y.abs.Sub(x.abs))
}

// Sub returns x - y.
func (x Integer) Sub(y Integer) Integer {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Integer) Mul(y Integer) Integer {
	return integer(x.neg != y.neg, x.abs.Mul(y.abs))
}

// Square returns x * x.
func (x Integer) Square() Integer {
	return Integer{abs: x.abs.Square()}
}

// Pow returns x**n. 0**0 is 1.
func (x Integer) Pow(n uint64) Integer {
	return integer(x.neg && n&1 == 1, x.abs.Pow(n))
}

// Neg returns -x.
func (x Integer) Neg() Integer {
	return integer(!x.neg, x.abs)
}

// Abs returns |x|.
func (x Integer) Abs() Integer {
	return Integer{abs: x.abs}
}

// UnsignedAbs returns |x| as a Natural.
func (x Integer) UnsignedAbs() Natural {
	return x.abs
}

// QuoRem returns the quotient and remainder of x / y, truncated towards zero
// like Go's / and %:
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// The remainder has the sign of x. It panics if y is zero.
func (x Integer) QuoRem(y Integer) (q, r Integer) {
	qa, ra := x.abs.QuoRem(y.abs)
	return integer(x.neg != y.neg, qa), integer(x.neg, ra)
}

// CheckedQuoRem is QuoRem but returns ok == false instead of panicking when
// y is zero.
func (x Integer) CheckedQuoRem(y Integer) (q, r Integer, ok bool) {
	if y.IsZero() {
		return q, r, false
	}
	q, r = x.QuoRem(y)
	return q, r, true
}

// Quo returns x / y, truncated towards zero.
func (x Integer) Quo(y Integer) Integer {
	q, _ := x.QuoRem(y)
	return q
}

// Rem returns the remainder of x / y, with the sign of x.
func (x Integer) Rem(y Integer) Integer {
	return integer(x.neg, x.abs.Rem(y.abs))
}

// DivMod returns the quotient and remainder of x / y rounded towards negative
// infinity:
//
//	q = floor(x/y)
//	r = x - y*q
//
// The remainder has the sign of y. It panics if y is zero.
func (x Integer) DivMod(y Integer) (q, r Integer) {
	q, r = x.QuoRem(y)
	if !r.IsZero() && r.neg != y.neg {
		q = q.Sub(IntegerFrom64(1))
		r = r.Add(y)
	}
	return q, r
}

// Div returns floor(x / y).
func (x Integer) Div(y Integer) Integer {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns x - y*floor(x/y), which has the sign of y.
func (x Integer) Mod(y Integer) Integer {
	_, r := x.DivMod(y)
	return r
}

// Gcd returns the greatest common divisor of |x| and |y|.
func (x Integer) Gcd(y Integer) Natural {
	return x.abs.Gcd(y.abs)
}

// Lcm returns the least common multiple of |x| and |y|.
func (x Integer) Lcm(y Integer) Natural {
	return x.abs.Lcm(y.abs)
}

// Inc returns x + 1.
func (x Integer) Inc() Integer {
	if x.neg {
		return integer(true, x.abs.Dec())
	}
	return Integer{abs: x.abs.Inc()}
}

// Dec returns x - 1.
func (x Integer) Dec() Integer {
	if x.neg || x.abs.IsZero() {
		return Integer{neg: true, abs: x.abs.Inc()}
	}
	return Integer{abs: x.abs.Dec()}
}
