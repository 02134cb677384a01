package bignum

import (
	"math/bits"
)

// nat is an unsigned magnitude stored as little-endian limbs. A normalised
// nat has no zero limb at the top; the empty nat is zero.
//
// Methods follow the z.op(x, y) shape: the result is written into z's
// backing array when it is large enough and not shared with an operand, and
// the (possibly reallocated) result is returned. Operands are never written.
type nat []Limb

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n]
	}
	if n == 1 {
		return make(nat, 1)
	}
	// A little headroom avoids an immediate reallocation for a carry limb.
	const e = 4
	return make(nat, n, n+e)
}

func (z nat) setLimb(x Limb) nat {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// alias reports whether x and y share the same backing array.
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// cmp orders two normalised nats: longer is always greater, otherwise the
// limbs are compared from the top down.
func (x nat) cmp(y nat) (r int) {
	m, n := len(x), len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return r
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return r
}

func (z nat) add(x, y nat) nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		return z[:0]
	case n == 0:
		return z.set(x)
	}

	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m + 1)
	c := addVV(z[0:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

// sub computes x - y. When y > x the subtraction is undefined for
// magnitudes: sub returns an empty result and borrow == true so the caller
// can decide whether that is a sign flip or a contract violation.
func (z nat) sub(x, y nat) (r nat, borrow bool) {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z[:0], true
	case m == 0:
		return z[:0], false
	case n == 0:
		return z.set(x), false
	}

	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m)
	c := subVV(z[0:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		return z[:0], true
	}
	return z.norm(), false
}

// mustSub is sub for callers that have already established x >= y.
func (z nat) mustSub(x, y nat) nat {
	r, borrow := z.sub(x, y)
	if borrow {
		panic(errSubUnderflow)
	}
	return r
}

func (z nat) addLimb(x nat, y Limb) nat {
	m := len(x)
	if m == 0 {
		return z.setLimb(y)
	}
	if alias(z, x) {
		z = nil
	}
	z = z.make(m + 1)
	z[m] = addVW(z[0:m], x, y)
	return z.norm()
}

// mulAddLimb computes x*y + r.
func (z nat) mulAddLimb(x nat, y, r Limb) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setLimb(r)
	}
	if alias(z, x) {
		z = nil
	}
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)
	return z.norm()
}

// mul is schoolbook multiplication: each limb of the shorter operand
// contributes one row of double-limb partial products, accumulated into an
// output sized to the sum of the operand lengths.
func (z nat) mul(x, y nat) nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddLimb(x, y[0], 0)
	}

	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m + n)
	clear(z)
	for i, d := range y {
		if d != 0 {
			z[m+i] = addMulVVW(z[i:i+m], x, d)
		}
	}
	return z.norm()
}

func (z nat) sqr(x nat) nat {
	return z.mul(x, x)
}

// pow computes x**y by left-to-right binary exponentiation.
func (z nat) pow(x nat, y uint64) nat {
	switch {
	case y == 0:
		return z.setLimb(1)
	case len(x) == 0:
		return z[:0]
	case y == 1:
		return z.set(x)
	}

	acc := nat(nil).set(x)
	var tmp nat
	for i := bits.Len64(y) - 2; i >= 0; i-- {
		tmp = tmp.sqr(acc)
		acc, tmp = tmp, acc
		if y&(1<<uint(i)) != 0 {
			tmp = tmp.mul(acc, x)
			acc, tmp = tmp, acc
		}
	}
	return z.set(acc)
}

func (x nat) bitLen() uint64 {
	if i := len(x) - 1; i >= 0 {
		return uint64(i)*limbBits + uint64(bits.Len64(x[i]))
	}
	return 0
}

// trailingZeros returns the number of trailing zero bits of a non-zero x.
func (x nat) trailingZeros() uint64 {
	for i, l := range x {
		if l != 0 {
			return uint64(i)*limbBits + uint64(bits.TrailingZeros64(l))
		}
	}
	return 0
}

func (x nat) countOnes() uint64 {
	var n uint64
	for _, l := range x {
		n += uint64(bits.OnesCount64(l))
	}
	return n
}

func (x nat) isPow2() bool {
	if len(x) == 0 {
		return false
	}
	top := len(x) - 1
	for _, l := range x[:top] {
		if l != 0 {
			return false
		}
	}
	return x[top]&(x[top]-1) == 0
}
