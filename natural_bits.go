package bignum

import (
	"math/bits"
)

// BitLen returns the number of bits needed to represent x. BitLen of zero is
// zero.
func (x Natural) BitLen() uint64 {
	if x.large == nil {
		return uint64(bits.Len64(x.small))
	}
	return x.large.bitLen()
}

// TrailingZeros returns the number of trailing zero bits of x. ok is false for
// zero, which has no lowest set bit.
func (x Natural) TrailingZeros() (n uint64, ok bool) {
	if x.large == nil {
		if x.small == 0 {
			return 0, false
		}
		return uint64(bits.TrailingZeros64(x.small)), true
	}
	return x.large.trailingZeros(), true
}

// CountOnes returns the number of one bits in x.
func (x Natural) CountOnes() uint64 {
	if x.large == nil {
		return uint64(bits.OnesCount64(x.small))
	}
	return x.large.countOnes()
}

// IsPowerOf2 reports whether x is 2^k for some k >= 0.
func (x Natural) IsPowerOf2() bool {
	if x.large == nil {
		return x.small != 0 && x.small&(x.small-1) == 0
	}
	return x.large.isPow2()
}

// Bit returns the value of bit i of x, 0 or 1.
func (x Natural) Bit(i uint64) uint {
	if x.large == nil {
		if i >= limbBits {
			return 0
		}
		return uint(x.small>>i) & 1
	}
	return x.large.bit(i)
}

// SetBit returns x with bit i set.
func (x Natural) SetBit(i uint64) Natural {
	if x.large == nil && i < limbBits {
		return Natural{small: x.small | 1<<i}
	}
	var xb [1]Limb
	return natural(nat(nil).setBit(x.view(&xb), i, 1))
}

// ClearBit returns x with bit i cleared.
func (x Natural) ClearBit(i uint64) Natural {
	if x.large == nil {
		if i >= limbBits {
			return x
		}
		return Natural{small: x.small &^ (1 << i)}
	}
	return natural(nat(nil).setBit(x.large, i, 0))
}

// FlipBit returns x with bit i toggled.
func (x Natural) FlipBit(i uint64) Natural {
	var xb [1]Limb
	return natural(nat(nil).flipBit(x.view(&xb), i))
}

// BitsRange returns bits [start, end) of x, shifted down to bit 0. It panics
// if start > end.
func (x Natural) BitsRange(start, end uint64) Natural {
	var xb [1]Limb
	return natural(nat(nil).bitsRange(x.view(&xb), start, end))
}

// AssignBits returns x with bits [start, end) replaced by the low end-start
// bits of v. It panics if start > end.
func (x Natural) AssignBits(start, end uint64, v Natural) Natural {
	var xb, vb [1]Limb
	return natural(nat(nil).assignBits(x.view(&xb), start, end, v.view(&vb)))
}

// Lsh returns x << n.
func (x Natural) Lsh(n uint64) Natural {
	if x.large == nil && n < limbBits {
		return fromDouble(x.small>>(limbBits-n), x.small<<n)
	}
	var xb [1]Limb
	return natural(nat(nil).lsh(x.view(&xb), n))
}

// Rsh returns x >> n, rounding down.
func (x Natural) Rsh(n uint64) Natural {
	if x.large == nil {
		if n >= limbBits {
			return Natural{}
		}
		return Natural{small: x.small >> n}
	}
	return natural(nat(nil).rsh(x.large, n))
}

// RshRound returns x / 2^n rounded according to mode, and how the result
// compares with the exact quotient. It panics if mode is RoundExact and any
// one bits are shifted out.
func (x Natural) RshRound(n uint64, mode RoundingMode) (Natural, Ordering) {
	q := x.Rsh(n)
	if n == 0 {
		return q, Equal
	}
	var xb [1]Limb
	xs := x.view(&xb)
	half := xs.bit(n-1) == 1
	sticky := xs.sticky(n - 1)
	if !half && !sticky {
		return q, Equal
	}
	if roundUpMagnitude(mode, false, q.Odd(), half, sticky) {
		return q.Inc(), Greater
	}
	return q, Less
}

// DivisibleByPowerOf2 reports whether 2^k divides x.
func (x Natural) DivisibleByPowerOf2(k uint64) bool {
	if k == 0 {
		return true
	}
	var xb [1]Limb
	return !x.view(&xb).sticky(k)
}

func (x Natural) And(y Natural) Natural {
	if x.large == nil || y.large == nil {
		return Natural{small: x.LimbAt(0) & y.LimbAt(0)}
	}
	return natural(nat(nil).and(x.large, y.large))
}

func (x Natural) Or(y Natural) Natural {
	if x.large == nil && y.large == nil {
		return Natural{small: x.small | y.small}
	}
	var xb, yb [1]Limb
	return natural(nat(nil).or(x.view(&xb), y.view(&yb)))
}

func (x Natural) Xor(y Natural) Natural {
	if x.large == nil && y.large == nil {
		return Natural{small: x.small ^ y.small}
	}
	var xb, yb [1]Limb
	return natural(nat(nil).xor(x.view(&xb), y.view(&yb)))
}

// AndNot returns x &^ y.
func (x Natural) AndNot(y Natural) Natural {
	if x.large == nil {
		return Natural{small: x.small &^ y.LimbAt(0)}
	}
	var yb [1]Limb
	return natural(nat(nil).andNot(x.large, y.view(&yb)))
}
