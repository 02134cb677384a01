package bignum

import (
	"math"
	"math/big"

	"fortio.org/safecast"
)

// Integer is an arbitrary-precision signed integer: a sign and a Natural
// magnitude. Zero is never negative. The zero value is 0.
type Integer struct {
	neg bool
	abs Natural
}

// integer builds an Integer, dropping the sign of a zero magnitude. Every
// operation producing an Integer goes through here.
func integer(neg bool, abs Natural) Integer {
	if abs.IsZero() {
		neg = false
	}
	return Integer{neg: neg, abs: abs}
}

func IntegerFrom64(v int64) Integer {
	if v < 0 {
		// -v wraps for math.MinInt64, but uint64 of the wrapped value is
		// still 2^63.
		return Integer{neg: true, abs: Natural{small: uint64(-v)}}
	}
	return Integer{abs: Natural{small: uint64(v)}}
}

func IntegerFromUint64(v uint64) Integer   { return Integer{abs: Natural{small: v}} }
func IntegerFromNatural(x Natural) Integer { return Integer{abs: x} }

// IntegerFromSignAndAbs returns -abs if neg is true, abs otherwise. A zero
// magnitude is always non-negative.
func IntegerFromSignAndAbs(neg bool, abs Natural) Integer {
	return integer(neg, abs)
}

func IntegerFromBigInt(v *big.Int) Integer {
	abs, _ := NaturalFromBigInt(new(big.Int).Abs(v))
	return integer(v.Sign() < 0, abs)
}

// IntegerFromI128 converts a signed double-limb value.
func IntegerFromI128(v I128) Integer {
	if v.hi&signBit != 0 {
		u := U128{}.Sub(U128{hi: v.hi, lo: v.lo})
		return Integer{neg: true, abs: fromDouble(u.hi, u.lo)}
	}
	return Integer{abs: fromDouble(v.hi, v.lo)}
}

// IntegerFromFloat64 converts f, truncating towards zero. exact is false if
// anything was discarded or f is NaN or infinite.
func IntegerFromFloat64(f float64) (out Integer, exact bool) {
	abs, exact := NaturalFromFloat64(math.Abs(f))
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return out, false
	}
	return integer(f < 0, abs), exact
}

// Int64 returns x as an int64. ok is false if x does not fit.
func (x Integer) Int64() (v int64, ok bool) {
	u, ok := x.abs.Uint64()
	if !ok {
		return 0, false
	}
	if x.neg {
		if u == 1<<63 {
			return math.MinInt64, true
		}
		v, err := safecast.Conv[int64](u)
		return -v, err == nil
	}
	v, err := safecast.Conv[int64](u)
	return v, err == nil
}

// Uint64 returns x as a uint64. ok is false if x is negative or too large.
func (x Integer) Uint64() (v uint64, ok bool) {
	if x.neg {
		return 0, false
	}
	return x.abs.Uint64()
}

// I128 returns x as a signed double-limb value. ok is false if x does not
// fit.
func (x Integer) I128() (v I128, ok bool) {
	u, ok := x.abs.U128()
	if !ok {
		return v, false
	}
	if !x.neg {
		if u.hi&signBit != 0 {
			return v, false
		}
		return I128{hi: u.hi, lo: u.lo}, true
	}
	if u.hi&signBit != 0 && !(u.hi == signBit && u.lo == 0) {
		return v, false
	}
	n := U128{}.Sub(u)
	return I128{hi: n.hi, lo: n.lo}, true
}

// Natural returns x as a Natural. ok is false if x is negative.
func (x Integer) Natural() (Natural, bool) {
	if x.neg {
		return Natural{}, false
	}
	return x.abs, true
}

// AsBigInt returns x as a new big.Int.
func (x Integer) AsBigInt() *big.Int {
	b := x.abs.AsBigInt()
	if x.neg {
		b.Neg(b)
	}
	return b
}

// Float64 returns the float64 nearest to x, ties to even. exact is false if
// the result is not exactly x.
func (x Integer) Float64() (f float64, exact bool) {
	f, exact = x.abs.Float64()
	if x.neg {
		f = -f
	}
	return f, exact
}

// TwosComplementLimbs returns the shortest two's-complement encoding of x,
// least-significant limb first. The top bit of the last limb is the sign.
// Zero has no limbs.
func (x Integer) TwosComplementLimbs() []Limb {
	if !x.neg {
		ls := x.abs.Limbs()
		if n := len(ls); n > 0 && ls[n-1]&signBit != 0 {
			ls = append(ls, 0)
		}
		return ls
	}
	// -x == ^(x-1)
	ls := x.abs.Dec().Limbs()
	for i := range ls {
		ls[i] = ^ls[i]
	}
	if n := len(ls); n == 0 || ls[n-1]&signBit == 0 {
		ls = append(ls, maxLimb)
	}
	return ls
}

// IntegerFromTwosComplementLimbs decodes a two's-complement value stored
// least-significant limb first. The top bit of the last limb is the sign;
// an empty slice is zero.
func IntegerFromTwosComplementLimbs(asc []Limb) Integer {
	n := len(asc)
	if n == 0 || asc[n-1]&signBit == 0 {
		return Integer{abs: NaturalFromLimbs(asc)}
	}
	z := make(nat, n)
	for i, l := range asc {
		z[i] = ^l
	}
	return integer(true, natural(z).Inc())
}

func (x Integer) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.abs.IsZero():
		return 0
	}
	return 1
}

func (x Integer) IsZero() bool     { return x.abs.IsZero() }
func (x Integer) IsNegative() bool { return x.neg }
func (x Integer) Even() bool       { return x.abs.Even() }
func (x Integer) Odd() bool        { return x.abs.Odd() }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Integer) Cmp(y Integer) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		return y.abs.Cmp(x.abs)
	}
	return x.abs.Cmp(y.abs)
}

// CmpAbs compares |x| and |y|.
func (x Integer) CmpAbs(y Integer) int { return x.abs.Cmp(y.abs) }

func (x Integer) Equal(y Integer) bool            { return x.neg == y.neg && x.abs.Equal(y.abs) }
func (x Integer) GreaterThan(y Integer) bool      { return x.Cmp(y) > 0 }
func (x Integer) GreaterOrEqualTo(y Integer) bool { return x.Cmp(y) >= 0 }
func (x Integer) LessThan(y Integer) bool         { return x.Cmp(y) < 0 }
func (x Integer) LessOrEqualTo(y Integer) bool    { return x.Cmp(y) <= 0 }
