package bignum

import (
	"fmt"
	"math/big"
	"math/bits"
)

// U128 is an unsigned double-limb value, hi<<64 + lo. Arithmetic on it wraps
// modulo 2^128. It is the fixed-width counterpart to Natural and the carrier
// for double-limb intermediates.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }
func U128From32(v uint32) U128       { return U128{lo: uint64(v)} }

// U128FromString parses a decimal string. Values too large for 128 bits
// saturate to MaxU128 and set accurate to false.
func U128FromString(s string) (out U128, accurate bool, err error) {
	x, err := ParseNatural(s, 10)
	if err != nil {
		return out, false, err
	}
	out, accurate = x.U128()
	if !accurate {
		out = MaxU128
	}
	return out, accurate, nil
}

// U128FromBigInt converts a big.Int. Negative values give 0 and overflow
// saturates to MaxU128; either sets accurate to false.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	x, ok := NaturalFromBigInt(v)
	if !ok {
		return out, false
	}
	out, accurate = x.U128()
	if !accurate {
		out = MaxU128
	}
	return out, accurate
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns the U128 as a pair of uint64s. See U128FromRaw for the
// counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string { return NaturalFromU128(u).String() }

func (u U128) Format(s fmt.State, c rune) { NaturalFromU128(u).Format(s, c) }

func (u U128) AsBigInt() *big.Int { return NaturalFromU128(u).AsBigInt() }

// AsUint64 truncates u to its low limb. See IsUint64 to check first.
func (u U128) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool { return u.hi == 0 }

func (u U128) Add(n U128) U128 {
	hi, lo := xxAddYYToZZ(u.hi, u.lo, n.hi, n.lo)
	return U128{hi: hi, lo: lo}
}

func (u U128) Sub(n U128) U128 {
	hi, lo := xxSubYYToZZ(u.hi, u.lo, n.hi, n.lo)
	return U128{hi: hi, lo: lo}
}

// Mul returns the low 128 bits of u * n.
func (u U128) Mul(n U128) U128 {
	hi, lo := xMulYToZZ(u.lo, n.lo)
	hi += u.hi*n.lo + u.lo*n.hi
	return U128{hi: hi, lo: lo}
}

// QuoRem returns the quotient and remainder of u / by. It panics if by is
// zero.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi == 0 {
		var rl uint64
		q, rl = u.QuoRemLimb(by.lo)
		return q, U128{lo: rl}
	}
	qn, rn := NaturalFromU128(u).QuoRem(NaturalFromU128(by))
	q, _ = qn.U128()
	r, _ = rn.U128()
	return q, r
}

// QuoRemLimb divides by a single limb with two chained 2-by-1 divisions. It
// panics if by is zero.
func (u U128) QuoRemLimb(by uint64) (q U128, r uint64) {
	if by == 0 {
		panic(errDivisionByZero)
	}
	q.hi, r = xxDivModYToQR(0, u.hi, by)
	q.lo, r = xxDivModYToQR(r, u.lo, by)
	return q, r
}

func (u U128) Cmp(n U128) int {
	switch {
	case greaterThan(u.hi, u.lo, n.hi, n.lo):
		return 1
	case greaterThan(n.hi, n.lo, u.hi, u.lo):
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool       { return u == n }
func (u U128) GreaterThan(n U128) bool { return greaterThan(u.hi, u.lo, n.hi, n.lo) }
func (u U128) LessThan(n U128) bool    { return greaterThan(n.hi, n.lo, u.hi, u.lo) }
func (u U128) And(v U128) U128         { return U128{hi: u.hi & v.hi, lo: u.lo & v.lo} }
func (u U128) Or(v U128) U128          { return U128{hi: u.hi | v.hi, lo: u.lo | v.lo} }
func (u U128) Xor(v U128) U128         { return U128{hi: u.hi ^ v.hi, lo: u.lo ^ v.lo} }
func (u U128) Not() U128               { return U128{hi: ^u.hi, lo: ^u.lo} }

func (u U128) Lsh(n uint) (v U128) {
	switch {
	case n >= 128:
		return v
	case n >= 64:
		return U128{hi: u.lo << (n - 64)}
	case n == 0:
		return u
	}
	return U128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
}

func (u U128) Rsh(n uint) (v U128) {
	switch {
	case n >= 128:
		return v
	case n >= 64:
		return U128{lo: u.hi >> (n - 64)}
	case n == 0:
		return u
	}
	return U128{hi: u.hi >> n, lo: u.lo>>n | u.hi<<(64-n)}
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, _, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts)
	if err != nil {
		return err
	}
	return u.UnmarshalText(bts)
}
