package bignum

import (
	"fmt"
	"math/bits"
)

const (
	lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
	upperDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	MinBase = 2
	MaxBase = 36
)

// maxPow returns (b**n, n) such that b**n is the largest power of b that
// fits in a limb.
func maxPow(b Limb) (p Limb, n int) {
	p, n = b, 1
	for limit := maxLimb / b; p <= limit; {
		p *= b
		n++
	}
	return p, n
}

func pow2Base(base int) (shift uint, ok bool) {
	if base&(base-1) != 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros(uint(base))), true
}

func checkBase(base int) {
	if base < MinBase || base > MaxBase {
		panic(fmt.Sprintf("bignum: illegal base %d", base))
	}
}

// itoa renders x in the given base, most-significant digit first. Zero is
// rendered as "0".
func (x nat) itoa(base int, upper bool) []byte {
	checkBase(base)
	digits := lowerDigits
	if upper {
		digits = upperDigits
	}

	if len(x) == 0 {
		return []byte{'0'}
	}

	if shift, ok := pow2Base(base); ok {
		// Repack bits directly; a digit may straddle a limb boundary.
		mask := Limb(1)<<shift - 1
		sh := uint64(shift)
		n := (x.bitLen() + sh - 1) / sh
		s := make([]byte, n)
		for k := uint64(0); k < n; k++ {
			pos := k * sh
			j, off := pos/limbBits, pos%limbBits
			v := x[j] >> off
			if off+sh > limbBits && j+1 < uint64(len(x)) {
				v |= x[j+1] << (limbBits - off)
			}
			s[n-1-k] = digits[v&mask]
		}
		return s
	}

	// floor(log2(base)) bits or more are consumed by every digit.
	i := int(x.bitLen()/uint64(bits.Len(uint(base))-1)) + 1
	s := make([]byte, i)

	bb, ndigits := maxPow(Limb(base))
	b := Limb(base)
	q := nat(nil).set(x)
	for len(q) > 0 {
		r := divWVW(q, 0, q, bb)
		q = q.norm()
		for j := 0; j < ndigits && (len(q) > 0 || r != 0); j++ {
			i--
			s[i] = digits[r%b]
			r /= b
		}
	}
	return s[i:]
}

// setString parses s as a magnitude in the given base. Digits above 9 may be
// either case. Every character must be a valid digit; s must not be empty.
func (z nat) setString(s string, base int) (nat, error) {
	if base < MinBase || base > MaxBase {
		return z[:0], fmt.Errorf("base %d not in [%d, %d]: %w", base, MinBase, MaxBase, ErrBase)
	}
	if len(s) == 0 {
		return z[:0], fmt.Errorf("empty string: %w", ErrSyntax)
	}
	for i := 0; i < len(s); i++ {
		if d := digitVal(s[i]); d >= base {
			return z[:0], fmt.Errorf("invalid digit %q for base %d: %w", s[i], base, ErrSyntax)
		}
	}

	if shift, ok := pow2Base(base); ok {
		n := (uint64(len(s))*uint64(shift) + limbBits - 1) / limbBits
		z = z.make(int(n))
		clear(z)
		var pos uint64
		for i := len(s) - 1; i >= 0; i-- {
			d := Limb(digitVal(s[i]))
			j, off := pos/limbBits, pos%limbBits
			z[j] |= d << off
			if off+uint64(shift) > limbBits {
				z[j+1] |= d >> (limbBits - off)
			}
			pos += uint64(shift)
		}
		return z.norm(), nil
	}

	bb, ndigits := maxPow(Limb(base))
	b := Limb(base)
	z = z[:0]
	var acc Limb
	var count int
	for i := 0; i < len(s); i++ {
		acc = acc*b + Limb(digitVal(s[i]))
		count++
		if count == ndigits {
			z = z.mulAddLimb(z, bb, acc)
			acc, count = 0, 0
		}
	}
	if count > 0 {
		p := Limb(1)
		for ; count > 0; count-- {
			p *= b
		}
		z = z.mulAddLimb(z, p, acc)
	}
	return z.norm(), nil
}

func digitVal(ch byte) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return int(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		return int(ch-'A') + 10
	}
	return MaxBase + 1
}
