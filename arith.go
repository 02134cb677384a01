package bignum

import (
	"math/bits"
	"unsafe"
)

// word is the set of limb widths the primitives below are written for. The
// production Limb is uint64; the 32-bit instantiation exists so the carry and
// division logic can be checked exhaustively against a wider native type.
type word interface {
	~uint32 | ~uint64
}

func wordBits[W word]() uint {
	var w W
	return uint(unsafe.Sizeof(w)) * 8
}

// addWW returns z1<<W + z0 = x + y + c, with c == 0 or 1.
func addWW[W word](x, y, c W) (z1, z0 W) {
	if wordBits[W]() == 32 {
		s, carry := bits.Add32(uint32(x), uint32(y), uint32(c))
		return W(carry), W(s)
	}
	s, carry := bits.Add64(uint64(x), uint64(y), uint64(c))
	return W(carry), W(s)
}

// subWW returns z0 = x - y - b and the borrow z1, with b == 0 or 1.
func subWW[W word](x, y, b W) (z1, z0 W) {
	if wordBits[W]() == 32 {
		d, borrow := bits.Sub32(uint32(x), uint32(y), uint32(b))
		return W(borrow), W(d)
	}
	d, borrow := bits.Sub64(uint64(x), uint64(y), uint64(b))
	return W(borrow), W(d)
}

// xxAddYYToZZ adds two double-limb values. The result wraps.
func xxAddYYToZZ[W word](x1, x0, y1, y0 W) (z1, z0 W) {
	var c W
	c, z0 = addWW(x0, y0, 0)
	_, z1 = addWW(x1, y1, c)
	return z1, z0
}

// xxSubYYToZZ subtracts two double-limb values. The result wraps.
func xxSubYYToZZ[W word](x1, x0, y1, y0 W) (z1, z0 W) {
	var b W
	b, z0 = subWW(x0, y0, 0)
	_, z1 = subWW(x1, y1, b)
	return z1, z0
}

func xxxAddYYYToZZZ[W word](x2, x1, x0, y2, y1, y0 W) (z2, z1, z0 W) {
	var c W
	c, z0 = addWW(x0, y0, 0)
	c, z1 = addWW(x1, y1, c)
	_, z2 = addWW(x2, y2, c)
	return z2, z1, z0
}

func xxxSubYYYToZZZ[W word](x2, x1, x0, y2, y1, y0 W) (z2, z1, z0 W) {
	var b W
	b, z0 = subWW(x0, y0, 0)
	b, z1 = subWW(x1, y1, b)
	_, z2 = subWW(x2, y2, b)
	return z2, z1, z0
}

func xxxxAddYYYYToZZZZ[W word](x3, x2, x1, x0, y3, y2, y1, y0 W) (z3, z2, z1, z0 W) {
	var c W
	c, z0 = addWW(x0, y0, 0)
	c, z1 = addWW(x1, y1, c)
	c, z2 = addWW(x2, y2, c)
	_, z3 = addWW(x3, y3, c)
	return z3, z2, z1, z0
}

// xMulYToZZ returns the full double-limb product z1<<W + z0 = x * y.
//
// The 32-bit width goes through a native 64-bit intermediate; the 64-bit
// width uses the 128-bit multiply the platform provides via math/bits.
func xMulYToZZ[W word](x, y W) (z1, z0 W) {
	if wordBits[W]() == 32 {
		p := uint64(x) * uint64(y)
		return W(p >> 32), W(p)
	}
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	return W(hi), W(lo)
}

// mulAddWWW returns z1<<W + z0 = x*y + c.
func mulAddWWW[W word](x, y, c W) (z1, z0 W) {
	z1, z0 = xMulYToZZ(x, y)
	var cc W
	cc, z0 = addWW(z0, c, 0)
	return z1 + cc, z0
}

// xxDivModYToQR divides the double-limb x1<<W + x0 by y. The quotient must
// fit in a single limb, so x1 < y is a caller contract; breaking it (which
// includes y == 0) panics.
func xxDivModYToQR[W word](x1, x0, y W) (q, r W) {
	if x1 >= y {
		if y == 0 {
			panic("bignum: division by zero")
		}
		panic("bignum: quotient overflows a limb")
	}
	if wordBits[W]() == 32 {
		d := uint64(x1)<<32 | uint64(x0)
		return W(d / uint64(y)), W(d % uint64(y))
	}
	qq, rr := bits.Div64(uint64(x1), uint64(x0), uint64(y))
	return W(qq), W(rr)
}

func leadingZeros[W word](x W) uint {
	if wordBits[W]() == 32 {
		return uint(bits.LeadingZeros32(uint32(x)))
	}
	return uint(bits.LeadingZeros64(uint64(x)))
}

func trailingZeros[W word](x W) uint {
	if wordBits[W]() == 32 {
		return uint(bits.TrailingZeros32(uint32(x)))
	}
	return uint(bits.TrailingZeros64(uint64(x)))
}

// greaterThan reports whether x1<<W + x0 > y1<<W + y0.
func greaterThan[W word](x1, x0, y1, y0 W) bool {
	return x1 > y1 || x1 == y1 && x0 > y0
}
