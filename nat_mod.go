package bignum

import (
	"math/bits"
)

// modPow2Add computes (x + y) mod 2^k for x, y < 2^k.
func (z nat) modPow2Add(x, y nat, k uint64) nat {
	return z.trunc(nat(nil).add(x, y), k)
}

// modPow2Sub computes (x - y) mod 2^k for x, y < 2^k.
func (z nat) modPow2Sub(x, y nat, k uint64) nat {
	if d, borrow := nat(nil).sub(x, y); !borrow {
		return z.set(d)
	}
	// x - y + 2^k, with 0 < y - x < 2^k.
	d := nat(nil).mustSub(y, x)
	return z.modPow2Neg(d, k)
}

// modPow2Neg computes -x mod 2^k for x < 2^k.
func (z nat) modPow2Neg(x nat, k uint64) nat {
	if len(x) == 0 {
		return z[:0]
	}
	p := nat(nil).setBit(nil, k, 1)
	return z.mustSub(p, x)
}

func (z nat) modPow2Mul(x, y nat, k uint64) nat {
	return z.trunc(nat(nil).mul(x, y), k)
}

// inverseLimb returns y such that x*y == 1 mod 2^64 for odd x. Starting from
// y = x is correct to 3 bits, and each step doubles the correct bits.
func inverseLimb(x Limb) Limb {
	y := x
	for i := 0; i < 5; i++ {
		y *= 2 - x*y
	}
	return y
}

// modInversePow2 computes x^-1 mod 2^k by Newton iteration on the precision:
// y' = y*(2 - x*y) doubles the number of correct low bits each round. x must
// be odd and less than 2^k.
func (z nat) modInversePow2(x nat, k uint64) nat {
	y := nat(nil).setLimb(inverseLimb(x[0]))
	if k <= limbBits {
		return z.trunc(y, k)
	}

	var xy, t, two nat
	for p := uint64(limbBits); p < k; {
		p = min(2*p, k)
		xy = xy.modPow2Mul(x, y, p)
		t = t.modPow2Mul(y, xy, p)
		two = two.trunc(nat(nil).lsh(y, 1), p)
		y = y.modPow2Sub(two, t, p)
	}
	return z.set(y)
}

// modMulKind selects the reduction used by ModMulData.
type modMulKind uint8

const (
	modMulKindNone modMulKind = iota
	modMulKindOneLimb
	modMulKindMinTwoLimbs // m == 2^64
	modMulKindTwoLimbs
	modMulKindGeneral
)

// precomputeModMulTwoLimbs returns inv = floor(2^256 / m) for a two-limb
// modulus m = m1<<64 + m0 with m > 2^64. inv always needs exactly three
// limbs.
func precomputeModMulTwoLimbs(m1, m0 Limb) (inv2, inv1, inv0 Limb) {
	if m1 == 0 || (m1 == 1 && m0 == 0) {
		panic("bignum: two-limb reciprocal needs a modulus above 2^64")
	}
	num := nat{0, 0, 0, 0, 1}
	q, _ := nat(nil).div(nil, num, nat{m0, m1})
	if len(q) != 3 {
		panic("bignum: two-limb reciprocal out of range")
	}
	return q[2], q[1], q[0]
}

// modMulTwoLimbs is Barrett reduction for a two-limb modulus m using the
// reciprocal from precomputeModMulTwoLimbs. x and y must be less than m; the
// result is always in [0, m).
//
// With r = 64:
//
//	w = x*y                  fits 4 limbs
//	z = (w >> r) * inv       top limb ends up zero
//	q = (z >> 3r) * m
//	w = w - q                fits 3 limbs
//
// after which w, w - m or w - 2m is the reduced value.
func modMulTwoLimbs(x1, x0, y1, y0, m1, m0, inv2, inv1, inv0 Limb) (r1, r0 Limb) {
	// w[3:0] = x[1:0] * y[1:0]
	w3, w2 := xMulYToZZ(x1, y1)
	w1, w0 := xMulYToZZ(x0, y0)
	c, t2, t1 := crossProducts(x1, y0, x0, y1)
	w3, w2, w1 = xxxAddYYYToZZZ(w3, w2, w1, c, t2, t1)

	// z[5:0] = w[3:1] * inv[2:0]
	z3, z2 := xMulYToZZ(w2, inv1)
	c, t3, t2 := crossProducts(w1, inv2, w3, inv0)
	u2, u1 := xMulYToZZ(w2, inv0)
	u4, u3 := xMulYToZZ(w3, inv1)
	z4, z3, z2 := xxxAddYYYToZZZ(w3*inv2, z3, z2, c, t3, t2)
	v2, v1 := xMulYToZZ(w1, inv1)
	v4, v3 := xMulYToZZ(w2, inv2)
	hi, _ := xMulYToZZ(w1, inv0)
	z4, z3, z2, z1 := xxxxAddYYYYToZZZZ(z4, z3, z2, hi, u4, u3, u2, u1)
	z4, z3, _, _ = xxxxAddYYYYToZZZZ(z4, z3, z2, z1, v4, v3, v2, v1)

	// w -= z[4:3] * m[1:0]; the fourth limb is dropped.
	q1, q0 := xMulYToZZ(z3, m0)
	w21 := U128FromRaw(w2, w1).
		Sub(U128FromRaw(xMulYToZZ(z4, m0))).
		Sub(U128FromRaw(xMulYToZZ(z3, m1)))
	w2, w1, w0 = xxxSubYYYToZZZ(w21.hi, w21.lo, w0, z4*m1, q1, q0)

	// At most two subtractions of m.
	s2, s1, s0 := xxxSubYYYToZZZ(w2, w1, w0, 0, m1, m0)
	if s2&signBit != 0 {
		return w1, w0
	}
	w2, w1, w0 = xxxSubYYYToZZZ(s2, s1, s0, 0, m1, m0)
	if w2&signBit != 0 {
		return s1, s0
	}
	return w1, w0
}

// crossProducts returns a*b + c*d as a carry limb and a double limb.
func crossProducts(a, b, c, d Limb) (carry, hi, lo Limb) {
	p1, p0 := xMulYToZZ(a, b)
	q1, q0 := xMulYToZZ(c, d)
	return xxxAddYYYToZZZ(0, p1, p0, 0, q1, q0)
}

// modMulLimb returns x*y mod m for x, y < m.
func modMulLimb(x, y, m Limb) Limb {
	hi, lo := xMulYToZZ(x, y)
	_, r := xxDivModYToQR(hi, lo, m)
	return r
}

// modMul computes x*y mod m for reduced x and y, using whatever reduction
// d was precomputed for.
func (z nat) modMul(x, y, m nat, d ModMulData) nat {
	switch d.kind {
	case modMulKindOneLimb:
		var xl, yl Limb
		if len(x) > 0 {
			xl = x[0]
		}
		if len(y) > 0 {
			yl = y[0]
		}
		return z.setLimb(modMulLimb(xl, yl, m[0]))

	case modMulKindMinTwoLimbs:
		var xl, yl Limb
		if len(x) > 0 {
			xl = x[0]
		}
		if len(y) > 0 {
			yl = y[0]
		}
		return z.setLimb(xl * yl)

	case modMulKindTwoLimbs:
		var xx, yy [2]Limb
		copy(xx[:], x)
		copy(yy[:], y)
		r1, r0 := modMulTwoLimbs(xx[1], xx[0], yy[1], yy[0], m[1], m[0], d.inv[2], d.inv[1], d.inv[0])
		z = z.make(2)
		z[0], z[1] = r0, r1
		return z.norm()

	default:
		_, r := nat(nil).div(z, nat(nil).mul(x, y), m)
		return r
	}
}

// expMod computes x**y mod m by left-to-right binary exponentiation. x must be
// reduced.
func (z nat) expMod(x, y, m nat, d ModMulData) nat {
	if len(m) == 1 && m[0] == 1 {
		return z[:0]
	}
	if len(y) == 0 {
		return z.setLimb(1)
	}
	if len(x) == 0 {
		return z[:0]
	}

	acc := nat(nil).set(x)
	var tmp nat
	top := len(y) - 1
	for i := top; i >= 0; i-- {
		word := y[i]
		n := limbBits
		if i == top {
			// The leading one bit is already in acc.
			n = bits.Len64(word) - 1
			word <<= uint(limbBits - n)
		}
		for j := 0; j < n; j++ {
			tmp = tmp.modMul(acc, acc, m, d)
			acc, tmp = tmp, acc
			if word&signBit != 0 {
				tmp = tmp.modMul(acc, x, m, d)
				acc, tmp = tmp, acc
			}
			word <<= 1
		}
	}
	return z.set(acc)
}

// modInverse returns x^-1 mod m by the extended Euclidean algorithm, keeping
// the Bezout coefficient reduced mod m so it never goes negative. x must be
// less than m.
func (z nat) modInverse(x, m nat) (nat, bool) {
	r0, r1 := nat(nil).set(m), nat(nil).set(x)
	var s0, s1 nat = nil, nat{1}
	for len(r1) > 0 {
		q, r := nat(nil).div(nil, r0, r1)
		r0, r1 = r1, r

		// s0 - q*s1 mod m
		_, qs := nat(nil).div(nil, nat(nil).mul(q, s1), m)
		var next nat
		if d, borrow := next.sub(s0, qs); !borrow {
			next = d
		} else {
			next = nat(nil).add(s0, nat(nil).mustSub(m, qs))
		}
		s0, s1 = s1, next
	}
	if len(r0) != 1 || r0[0] != 1 {
		return z[:0], false
	}
	return z.set(s0), true
}
