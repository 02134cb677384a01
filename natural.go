package bignum

import (
	"iter"
	"math"
	"math/big"

	"fortio.org/safecast"
)

// Natural is an arbitrary-precision non-negative integer.
//
// Values that fit in a single limb are held inline in small and large is nil;
// anything wider lives in large, which then always has at least two limbs and
// a non-zero top limb. The zero value is 0 and is ready to use.
//
// Natural is a value type: every operation returns a new Natural and never
// modifies its receiver or arguments. Copies may share a backing array, which
// is safe because nothing ever writes to one after it is built.
type Natural struct {
	small Limb
	large nat
}

// view returns x as a nat. Inline values are spilled into buf so no
// allocation is needed; the result must not be written to.
func (x Natural) view(buf *[1]Limb) nat {
	if x.large != nil {
		return x.large
	}
	if x.small == 0 {
		return nil
	}
	buf[0] = x.small
	return buf[:]
}

// natural trims z and stores it in whichever form the value requires. Every
// operation that builds a Natural from a nat goes through here.
func natural(z nat) Natural {
	z = z.norm()
	switch len(z) {
	case 0:
		return Natural{}
	case 1:
		return Natural{small: z[0]}
	}
	return Natural{large: z}
}

// fromDouble builds a Natural from a double-limb value hi<<64 + lo.
func fromDouble(hi, lo Limb) Natural {
	if hi == 0 {
		return Natural{small: lo}
	}
	return Natural{large: nat{lo, hi}}
}

func NaturalFromUint64(v uint64) Natural { return Natural{small: v} }
func NaturalFromUint32(v uint32) Natural { return Natural{small: Limb(v)} }

// NaturalFromU128 converts a double-limb value.
func NaturalFromU128(v U128) Natural { return fromDouble(v.hi, v.lo) }

// NaturalFromLimbs builds a Natural from limbs in ascending order of
// significance. Leading zero limbs are allowed and trimmed. The slice is
// copied.
func NaturalFromLimbs(asc []Limb) Natural {
	return natural(nat(nil).set(asc))
}

// NaturalFromBigInt converts a big.Int. ok is false if v is negative, in which
// case the result is 0.
func NaturalFromBigInt(v *big.Int) (out Natural, ok bool) {
	if v.Sign() < 0 {
		return out, false
	}
	words := v.Bits()
	if intSize == 64 {
		z := make(nat, len(words))
		for i, w := range words {
			z[i] = Limb(w)
		}
		return natural(z), true
	}
	z := make(nat, (len(words)+1)/2)
	for i, w := range words {
		z[i/2] |= Limb(w) << (32 * uint(i%2))
	}
	return natural(z), true
}

// NaturalFromFloat64 converts f, truncating any fractional part. exact is
// false if anything was discarded. NaN, infinities and negative values
// (other than -0) yield 0 with exact set to false.
func NaturalFromFloat64(f float64) (out Natural, exact bool) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return out, false
	case f < 0:
		return out, false
	case f == 0:
		return out, true
	}

	t := math.Trunc(f)
	exact = t == f
	if t < 1<<64 {
		return Natural{small: Limb(t)}, exact
	}

	// t == mant * 2^exp with mant in [0.5, 1); t >= 2^64 so exp > 53.
	mant, exp := math.Frexp(t)
	m := Limb(mant * (1 << float64MantBits))
	z := nat(nil).setLimb(m)
	z = z.lsh(z, uint64(exp-float64MantBits))
	return natural(z), exact
}

// Uint64 returns x as a uint64. ok is false if x does not fit.
func (x Natural) Uint64() (v uint64, ok bool) {
	if x.large != nil {
		return 0, false
	}
	return x.small, true
}

// Uint32 returns x as a uint32. ok is false if x does not fit.
func (x Natural) Uint32() (v uint32, ok bool) {
	if x.large != nil {
		return 0, false
	}
	v, err := safecast.Conv[uint32](x.small)
	return v, err == nil
}

// Int64 returns x as an int64. ok is false if x does not fit.
func (x Natural) Int64() (v int64, ok bool) {
	if x.large != nil {
		return 0, false
	}
	v, err := safecast.Conv[int64](x.small)
	return v, err == nil
}

// U128 returns x as a double-limb value. ok is false if x needs more than two
// limbs.
func (x Natural) U128() (v U128, ok bool) {
	switch {
	case x.large == nil:
		return U128{lo: x.small}, true
	case len(x.large) == 2:
		return U128{hi: x.large[1], lo: x.large[0]}, true
	}
	return v, false
}

// AsBigInt returns x as a new big.Int.
func (x Natural) AsBigInt() *big.Int {
	var b big.Int
	x.IntoBigInt(&b)
	return &b
}

// IntoBigInt sets b to x, reusing b's storage where possible.
func (x Natural) IntoBigInt(b *big.Int) {
	var buf [1]Limb
	xs := x.view(&buf)

	var words []big.Word
	if intSize == 64 {
		words = b.Bits()[:0]
		for _, l := range xs {
			words = append(words, big.Word(l))
		}
	} else {
		words = b.Bits()[:0]
		for _, l := range xs {
			words = append(words, big.Word(l&0xFFFFFFFF), big.Word(l>>32))
		}
	}
	b.SetBits(words)
}

// Float64 returns the float64 nearest to x, ties to even. exact is false if
// the result is not exactly x; values past the float64 range give +Inf.
func (x Natural) Float64() (f float64, exact bool) {
	var buf [1]Limb
	xs := x.view(&buf)

	n := xs.bitLen()
	if n <= float64MantBits {
		return float64(x.small), true
	}

	e := n - float64MantBits
	m := nat(nil).rsh(xs, e)[0]
	half := xs.bit(e-1) == 1
	sticky := xs.sticky(e - 1)
	if roundUpMagnitude(RoundNearest, false, m&1 == 1, half, sticky) {
		m++
		if m == 1<<float64MantBits {
			m >>= 1
			e++
		}
	}
	exact = !half && !sticky
	if e+float64MantBits > 1024 {
		return math.Inf(1), false
	}
	return math.Ldexp(float64(m), int(e)), exact
}

// Limbs returns a copy of x's limbs in ascending order of significance. Zero
// has no limbs.
func (x Natural) Limbs() []Limb {
	var buf [1]Limb
	return nat(nil).set(x.view(&buf))
}

// LimbCount returns the number of significant limbs in x.
func (x Natural) LimbCount() int {
	if x.large != nil {
		return len(x.large)
	}
	if x.small == 0 {
		return 0
	}
	return 1
}

// LimbAt returns limb i, counting from the least significant. Limbs past the
// top are zero.
func (x Natural) LimbAt(i int) Limb {
	if x.large != nil {
		if i < len(x.large) {
			return x.large[i]
		}
		return 0
	}
	if i == 0 {
		return x.small
	}
	return 0
}

// All iterates over x's limbs in ascending order of significance.
func (x Natural) All() iter.Seq2[int, Limb] {
	return func(yield func(int, Limb) bool) {
		n := x.LimbCount()
		for i := 0; i < n; i++ {
			if !yield(i, x.LimbAt(i)) {
				return
			}
		}
	}
}

func (x Natural) IsZero() bool { return x.large == nil && x.small == 0 }
func (x Natural) IsOne() bool  { return x.large == nil && x.small == 1 }

func (x Natural) Even() bool {
	if x.large != nil {
		return x.large[0]&1 == 0
	}
	return x.small&1 == 0
}

func (x Natural) Odd() bool { return !x.Even() }

// Sign returns 0 if x is zero and 1 otherwise.
func (x Natural) Sign() int {
	if x.IsZero() {
		return 0
	}
	return 1
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Natural) Cmp(y Natural) int {
	if x.large == nil && y.large == nil {
		switch {
		case x.small < y.small:
			return -1
		case x.small > y.small:
			return 1
		}
		return 0
	}
	var xb, yb [1]Limb
	return x.view(&xb).cmp(y.view(&yb))
}

func (x Natural) Equal(y Natural) bool {
	if x.large == nil || y.large == nil {
		return x.large == nil && y.large == nil && x.small == y.small
	}
	return x.large.cmp(y.large) == 0
}

func (x Natural) GreaterThan(y Natural) bool      { return x.Cmp(y) > 0 }
func (x Natural) GreaterOrEqualTo(y Natural) bool { return x.Cmp(y) >= 0 }
func (x Natural) LessThan(y Natural) bool         { return x.Cmp(y) < 0 }
func (x Natural) LessOrEqualTo(y Natural) bool    { return x.Cmp(y) <= 0 }
