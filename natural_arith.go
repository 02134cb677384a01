package bignum

// Add returns x + y.
func (x Natural) Add(y Natural) Natural {
	if x.large == nil && y.large == nil {
		c, s := addWW(x.small, y.small, 0)
		return fromDouble(c, s)
	}
	var xb, yb [1]Limb
	return natural(nat(nil).add(x.view(&xb), y.view(&yb)))
}

// Sub returns x - y. It panics if y > x; see CheckedSub and SaturatingSub.
func (x Natural) Sub(y Natural) Natural {
	z, ok := x.CheckedSub(y)
	if !ok {
		panic(errSubUnderflow)
	}
	return z
}

// CheckedSub returns x - y, or ok == false if y > x.
func (x Natural) CheckedSub(y Natural) (z Natural, ok bool) {
	if x.large == nil && y.large == nil {
		if y.small > x.small {
			return z, false
		}
		return Natural{small: x.small - y.small}, true
	}
	var xb, yb [1]Limb
	r, borrow := nat(nil).sub(x.view(&xb), y.view(&yb))
	if borrow {
		return z, false
	}
	return natural(r), true
}

// SaturatingSub returns x - y, or 0 if y > x.
func (x Natural) SaturatingSub(y Natural) Natural {
	z, _ := x.CheckedSub(y)
	return z
}

// AbsDiff returns |x - y|.
func (x Natural) AbsDiff(y Natural) Natural {
	if x.Cmp(y) < 0 {
		return y.Sub(x)
	}
	return x.Sub(y)
}

// Inc returns x + 1.
func (x Natural) Inc() Natural {
	if x.large == nil && x.small != maxLimb {
		return Natural{small: x.small + 1}
	}
	var xb [1]Limb
	return natural(nat(nil).addLimb(x.view(&xb), 1))
}

// Dec returns x - 1. It panics if x is zero.
func (x Natural) Dec() Natural {
	if x.IsZero() {
		panic(errDecZero)
	}
	if x.large == nil {
		return Natural{small: x.small - 1}
	}
	return natural(nat(nil).mustSub(x.large, natOne))
}

// Mul returns x * y.
func (x Natural) Mul(y Natural) Natural {
	if x.large == nil && y.large == nil {
		return fromDouble(xMulYToZZ(x.small, y.small))
	}
	var xb, yb [1]Limb
	return natural(nat(nil).mul(x.view(&xb), y.view(&yb)))
}

// Square returns x * x.
func (x Natural) Square() Natural {
	if x.large == nil {
		return fromDouble(xMulYToZZ(x.small, x.small))
	}
	return natural(nat(nil).sqr(x.large))
}

// Pow returns x**n. 0**0 is 1.
func (x Natural) Pow(n uint64) Natural {
	var xb [1]Limb
	return natural(nat(nil).pow(x.view(&xb), n))
}

// QuoRem returns the quotient and remainder of x / y. It panics if y is zero.
func (x Natural) QuoRem(y Natural) (q, r Natural) {
	if y.IsZero() {
		panic(errDivisionByZero)
	}
	if x.large == nil && y.large == nil {
		return Natural{small: x.small / y.small}, Natural{small: x.small % y.small}
	}
	var xb, yb [1]Limb
	qs, rs := nat(nil).div(nil, x.view(&xb), y.view(&yb))
	return natural(qs), natural(rs)
}

// CheckedQuoRem is QuoRem but returns ok == false instead of panicking when
// y is zero.
func (x Natural) CheckedQuoRem(y Natural) (q, r Natural, ok bool) {
	if y.IsZero() {
		return q, r, false
	}
	q, r = x.QuoRem(y)
	return q, r, true
}

// Quo returns x / y, rounded down.
func (x Natural) Quo(y Natural) Natural {
	q, _ := x.QuoRem(y)
	return q
}

// Rem returns x mod y.
func (x Natural) Rem(y Natural) Natural {
	if y.IsZero() {
		panic(errDivisionByZero)
	}
	if x.large == nil && y.large == nil {
		return Natural{small: x.small % y.small}
	}
	if y.large == nil {
		return Natural{small: x.large.modW(y.small)}
	}
	_, r := x.QuoRem(y)
	return r
}

// CeilingQuo returns x / y, rounded up.
func (x Natural) CeilingQuo(y Natural) Natural {
	q, r := x.QuoRem(y)
	if !r.IsZero() {
		q = q.Inc()
	}
	return q
}

// QuoRound returns x / y rounded according to mode, and how the result
// compares with the exact quotient. It panics if y is zero, or if mode is
// RoundExact and y does not divide x.
func (x Natural) QuoRound(y Natural, mode RoundingMode) (Natural, Ordering) {
	q, r := x.QuoRem(y)
	if r.IsZero() {
		return q, Equal
	}
	// Compare the remainder against half the divisor.
	c := r.Lsh(1).Cmp(y)
	half, sticky := c >= 0, c != 0
	if roundUpMagnitude(mode, false, q.Odd(), half, sticky) {
		return q.Inc(), Greater
	}
	return q, Less
}

// RoundToMultiple returns the multiple of y nearest to x in the direction
// given by mode, and how it compares with x. A zero y only has zero as a
// multiple, so a nonzero x rounds down to it; RoundUp and RoundCeiling panic
// in that case, as does RoundExact whenever x is not a multiple of y.
func (x Natural) RoundToMultiple(y Natural, mode RoundingMode) (Natural, Ordering) {
	if y.IsZero() {
		if x.IsZero() {
			return x, Equal
		}
		switch mode {
		case RoundDown, RoundFloor, RoundNearest:
			return Natural{}, Less
		case RoundExact:
			panic(errInexact)
		}
		panic(errZeroMultiple)
	}
	q, o := x.QuoRound(y, mode)
	return q.Mul(y), o
}

// EqMod reports whether x and y are congruent modulo m. Modulo zero that means
// equal.
func (x Natural) EqMod(y, m Natural) bool {
	if m.IsZero() {
		return x.Equal(y)
	}
	return x.AbsDiff(y).DivisibleBy(m)
}

// AddMul returns x + y*z.
func (x Natural) AddMul(y, z Natural) Natural {
	return x.Add(y.Mul(z))
}

// SubMul returns x - y*z. It panics if y*z > x.
func (x Natural) SubMul(y, z Natural) Natural {
	return x.Sub(y.Mul(z))
}

// CheckedSubMul returns x - y*z, or false if y*z > x.
func (x Natural) CheckedSubMul(y, z Natural) (Natural, bool) {
	return x.CheckedSub(y.Mul(z))
}

// DivExact returns x / y when y is known to divide x. It panics if y is zero
// or the division leaves a remainder.
func (x Natural) DivExact(y Natural) Natural {
	if y.IsZero() {
		panic(errDivisionByZero)
	}
	var xb, yb [1]Limb
	return natural(nat(nil).divExact(x.view(&xb), y.view(&yb)))
}

// DivisibleBy reports whether y divides x. Only zero is divisible by zero.
func (x Natural) DivisibleBy(y Natural) bool {
	if y.IsZero() {
		return x.IsZero()
	}
	return x.Rem(y).IsZero()
}

// Sqrt returns floor(sqrt(x)).
func (x Natural) Sqrt() Natural {
	if x.large == nil {
		return Natural{small: sqrtLimb(x.small)}
	}
	return natural(nat(nil).sqrt(x.large))
}

// CheckedSqrt returns sqrt(x) if x is a perfect square.
func (x Natural) CheckedSqrt() (Natural, bool) {
	r := x.Sqrt()
	if !r.Square().Equal(x) {
		return Natural{}, false
	}
	return r, true
}

// SqrtRem returns floor(sqrt(x)) and x minus its square.
func (x Natural) SqrtRem() (r, rem Natural) {
	r = x.Sqrt()
	return r, x.Sub(r.Square())
}

// CeilingSqrt returns ceil(sqrt(x)).
func (x Natural) CeilingSqrt() Natural {
	r, rem := x.SqrtRem()
	if !rem.IsZero() {
		r = r.Inc()
	}
	return r
}

// FloorRoot returns floor(x^(1/k)). It panics if k is zero.
func (x Natural) FloorRoot(k uint64) Natural {
	var xb [1]Limb
	return natural(nat(nil).root(x.view(&xb), k))
}

// CeilingRoot returns ceil(x^(1/k)). It panics if k is zero.
func (x Natural) CeilingRoot(k uint64) Natural {
	r, rem := x.RootRem(k)
	if !rem.IsZero() {
		r = r.Inc()
	}
	return r
}

// CheckedRoot returns x^(1/k) if x is a perfect k'th power. It panics if k is
// zero.
func (x Natural) CheckedRoot(k uint64) (Natural, bool) {
	r, rem := x.RootRem(k)
	if !rem.IsZero() {
		return Natural{}, false
	}
	return r, true
}

// RootRem returns floor(x^(1/k)) and x minus its k'th power. It panics if k is
// zero.
func (x Natural) RootRem(k uint64) (r, rem Natural) {
	r = x.FloorRoot(k)
	return r, x.Sub(r.Pow(k))
}

// FloorLogBase2 returns floor(log2(x)). It panics if x is zero.
func (x Natural) FloorLogBase2() uint64 {
	if x.IsZero() {
		panic(errLogOfZero)
	}
	return x.BitLen() - 1
}

// CeilingLogBase2 returns ceil(log2(x)). It panics if x is zero.
func (x Natural) CeilingLogBase2() uint64 {
	n := x.FloorLogBase2()
	if !x.IsPowerOf2() {
		n++
	}
	return n
}

// CheckedLogBase2 returns log2(x) if x is a power of two.
func (x Natural) CheckedLogBase2() (uint64, bool) {
	if !x.IsPowerOf2() {
		return 0, false
	}
	return x.BitLen() - 1, true
}

func checkLogArgs(x, b Natural) {
	if x.IsZero() {
		panic(errLogOfZero)
	}
	if b.large == nil && b.small < 2 {
		panic(errLogBase)
	}
}

// FloorLogBase returns floor(log_b(x)). It panics if x is zero or b < 2.
func (x Natural) FloorLogBase(b Natural) uint64 {
	checkLogArgs(x, b)
	var xb, bb [1]Limb
	n, _ := x.view(&xb).floorLog(b.view(&bb))
	return n
}

// CeilingLogBase returns ceil(log_b(x)). It panics if x is zero or b < 2.
func (x Natural) CeilingLogBase(b Natural) uint64 {
	checkLogArgs(x, b)
	var xb, bb [1]Limb
	n, exact := x.view(&xb).floorLog(b.view(&bb))
	if !exact {
		n++
	}
	return n
}

// CheckedLogBase returns log_b(x) if x is an exact power of b. It panics if
// b < 2; zero is never a power.
func (x Natural) CheckedLogBase(b Natural) (uint64, bool) {
	if x.IsZero() {
		return 0, false
	}
	checkLogArgs(x, b)
	var xb, bb [1]Limb
	n, exact := x.view(&xb).floorLog(b.view(&bb))
	if !exact {
		return 0, false
	}
	return n, true
}

// Gcd returns the greatest common divisor of x and y. Gcd(x, 0) == x.
func (x Natural) Gcd(y Natural) Natural {
	if x.large == nil && y.large == nil {
		switch {
		case x.small == 0:
			return y
		case y.small == 0:
			return x
		}
		return Natural{small: gcdLimb(x.small, y.small)}
	}
	var xb, yb [1]Limb
	return natural(nat(nil).gcd(x.view(&xb), y.view(&yb)))
}

// Lcm returns the least common multiple of x and y, which is zero if either
// is zero.
func (x Natural) Lcm(y Natural) Natural {
	if x.IsZero() || y.IsZero() {
		return Natural{}
	}
	return x.DivExact(x.Gcd(y)).Mul(y)
}

// ExtendedGcd returns g = gcd(x, y) along with Bezout coefficients a and b
// such that a*x + b*y = g. When one of x and y divides the other the
// coefficients are 0 and 1: (1, 0) if x divides y (and x != y), (0, 1)
// otherwise. Otherwise |a| <= y/g and |b| <= x/g. All three are zero when x
// and y are.
func (x Natural) ExtendedGcd(y Natural) (g Natural, a, b Integer) {
	if x.IsZero() && y.IsZero() {
		return Natural{}, Integer{}, Integer{}
	}
	r0, r1 := x, y
	s0, s1 := IntegerFrom64(1), Integer{}
	t0, t1 := Integer{}, IntegerFrom64(1)
	for !r1.IsZero() {
		q, r := r0.QuoRem(r1)
		qi := IntegerFromNatural(q)
		r0, r1 = r1, r
		s0, s1 = s1, s0.Sub(qi.Mul(s1))
		t0, t1 = t1, t0.Sub(qi.Mul(t1))
	}
	return r0, s0, t0
}

// CoprimeWith reports whether gcd(x, y) == 1.
func (x Natural) CoprimeWith(y Natural) bool {
	if x.Even() && y.Even() {
		return false
	}
	return x.Gcd(y).IsOne()
}

// BinomialCoefficient returns C(n, k). It is zero when k > n.
func BinomialCoefficient(n, k Natural) Natural {
	if k.Cmp(n) > 0 {
		return Natural{}
	}
	// Use the smaller of k and n-k, which must fit in a limb for the result to
	// be computable at all.
	if nk := n.Sub(k); nk.Cmp(k) < 0 {
		k = nk
	}
	kk, ok := k.Uint64()
	if !ok {
		panic("bignum: binomial coefficient too large")
	}
	var nb [1]Limb
	return natural(nat(nil).binomial(n.view(&nb), kk))
}

// Factorial returns n!.
func Factorial(n uint64) Natural {
	return natural(nat(nil).factorial(n))
}
