package bignum

import (
	"math"
)

// sqrt sets z = floor(sqrt(x)).
//
// Newton's iteration z' = (z + x/z) / 2 decreases monotonically to the
// answer when started above it, so the first step that fails to decrease
// has found it. 2^ceil(bitLen/2) is always above the root.
func (z nat) sqrt(x nat) nat {
	if x.cmp(natOne) <= 0 {
		return z.set(x)
	}
	if len(x) == 1 {
		return z.setLimb(sqrtLimb(x[0]))
	}
	if alias(z, x) {
		z = nil
	}

	var z1, z2 nat
	z1 = z1.setBit(nil, (x.bitLen()+1)/2, 1)
	for {
		z2, _ = z2.div(nil, x, z1)
		z2 = z2.add(z2, z1)
		z2 = z2.rsh(z2, 1)
		if z2.cmp(z1) >= 0 {
			return z.set(z1)
		}
		z1, z2 = z2, z1
	}
}

// root sets z = floor(x^(1/k)) for k >= 1, by the same decreasing Newton
// iteration as sqrt:
//
//	z' = ((k-1)*z + x/z^(k-1)) / k
//
// started from 2^ceil(bitLen/k).
func (z nat) root(x nat, k uint64) nat {
	switch {
	case k == 0:
		panic(errZeroRoot)
	case k == 1 || x.cmp(natOne) <= 0:
		return z.set(x)
	case k == 2:
		return z.sqrt(x)
	}
	bl := x.bitLen()
	if k >= bl {
		// 1 < x < 2^k
		return z.setLimb(1)
	}
	if alias(z, x) {
		z = nil
	}

	km1 := nat(nil).setLimb(k - 1)
	var z1, z2, t, u nat
	z1 = z1.setBit(nil, (bl+k-1)/k, 1)
	for {
		t = t.pow(z1, k-1)
		z2, _ = z2.div(nil, x, t)
		u = u.mul(z1, km1)
		z2 = z2.add(z2, u)
		z2, _ = nat(nil).divW(z2, k)
		if z2.cmp(z1) >= 0 {
			return z.set(z1)
		}
		z1, z2 = z2, z1
	}
}

// sqrtLimb is floor(sqrt(x)) for a single limb. The float estimate can be
// off by one in either direction above 2^52.
func sqrtLimb(x Limb) Limb {
	r := Limb(math.Sqrt(float64(x)))
	if r > 1<<32-1 {
		r = 1<<32 - 1
	}
	for r*r > x {
		r--
	}
	for (r+1) <= 1<<32-1 && (r+1)*(r+1) <= x {
		r++
	}
	return r
}

// floorLog returns the largest n such that b**n <= x, for x > 0 and b >= 2,
// and whether b**n == x.
func (x nat) floorLog(b nat) (n uint64, exact bool) {
	if len(b) == 1 && b[0]&(b[0]-1) == 0 {
		// Powers of two reduce to bit counting.
		s := uint64(trailingZeros(b[0]))
		bl := x.bitLen() - 1
		n = bl / s
		return n, bl%s == 0 && x.isPow2()
	}

	p := nat(nil).set(b)
	for p.cmp(x) <= 0 {
		p = p.mul(p, b)
		n++
	}
	// b**n <= x < b**(n+1)
	if n == 0 {
		return 0, len(x) == 1 && x[0] == 1
	}
	q, r := nat(nil).div(nil, p, b)
	return n, len(r) == 0 && q.cmp(x) == 0
}
