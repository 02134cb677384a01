package bignum

import (
	"math/bits"
)

// gcd computes the greatest common divisor of x and y by Euclid's algorithm.
// Once both remainders fit in a limb the binary algorithm finishes the job.
// gcd(x, 0) == x and gcd(0, 0) == 0.
func (z nat) gcd(x, y nat) nat {
	switch {
	case len(x) == 0:
		return z.set(y)
	case len(y) == 0:
		return z.set(x)
	}

	a, b := nat(nil).set(x), nat(nil).set(y)
	var q, r nat
	for len(b) > 0 {
		if len(a) == 1 && len(b) == 1 {
			return z.setLimb(gcdLimb(a[0], b[0]))
		}
		q, r = q.div(r, a, b)
		a, b, r = b, r, a
	}
	return z.set(a)
}

// gcdLimb is Stein's binary gcd for two non-zero limbs.
func gcdLimb(u, v Limb) Limb {
	shift := bits.TrailingZeros64(u | v)
	u >>= uint(bits.TrailingZeros64(u))
	for v != 0 {
		v >>= uint(bits.TrailingZeros64(v))
		if u > v {
			u, v = v, u
		}
		v -= u
	}
	return u << uint(shift)
}
