package bignum

// lsh computes x << s. The shift splits into a whole-limb move and a
// sub-limb shift that carries bits between neighbouring limbs.
func (z nat) lsh(x nat, s uint64) nat {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	n := m + int(s/limbBits)
	if alias(z, x) {
		z = nil
	}
	z = z.make(n + 1)
	z[n] = shlVU(z[n-m:n], x, uint(s%limbBits))
	clear(z[0 : n-m])
	return z.norm()
}

// rsh computes x >> s, discarding the shifted-out bits.
func (z nat) rsh(x nat, s uint64) nat {
	m := len(x)
	whole := s / limbBits
	if whole >= uint64(m) {
		return z[:0]
	}
	n := m - int(whole)
	if alias(z, x) {
		z = nil
	}
	z = z.make(n)
	shrVU(z, x[m-n:], uint(s%limbBits))
	return z.norm()
}

// bit returns the value of the i'th bit of x.
func (x nat) bit(i uint64) uint {
	j := i / limbBits
	if j >= uint64(len(x)) {
		return 0
	}
	return uint(x[j] >> (i % limbBits) & 1)
}

// sticky reports whether any of the bits below position i are set, i.e.
// whether x >> i discards anything.
func (x nat) sticky(i uint64) bool {
	j := i / limbBits
	if j >= uint64(len(x)) {
		return len(x) > 0
	}
	for _, l := range x[:j] {
		if l != 0 {
			return true
		}
	}
	s := i % limbBits
	return s != 0 && x[j]<<(limbBits-s) != 0
}

// setBit sets z = x with the i'th bit set to b (0 or 1).
func (z nat) setBit(x nat, i uint64, b uint) nat {
	j := int(i / limbBits)
	m := Limb(1) << (i % limbBits)
	n := len(x)
	if alias(z, x) {
		z = nil
	}
	switch b {
	case 0:
		z = z.set(x)
		if j >= n {
			return z
		}
		z[j] &^= m
		return z.norm()
	case 1:
		if j >= n {
			z = z.make(j + 1)
			copy(z, x)
			clear(z[n:])
		} else {
			z = z.set(x)
		}
		z[j] |= m
		return z
	}
	panic("bignum: set bit value not 0 or 1")
}

// flipBit toggles the i'th bit of x.
func (z nat) flipBit(x nat, i uint64) nat {
	return z.setBit(x, i, x.bit(i)^1)
}

// trunc keeps the low n bits of x, i.e. x mod 2^n.
func (z nat) trunc(x nat, n uint64) nat {
	w := (n + limbBits - 1) / limbBits
	if uint64(len(x)) < w {
		return z.set(x)
	}
	if alias(z, x) {
		z = nil
	}
	z = z.make(int(w))
	copy(z, x)
	if b := n % limbBits; b != 0 {
		z[w-1] &= 1<<b - 1
	}
	return z.norm()
}

// bitsRange extracts bits [start, end) of x as a new value.
func (z nat) bitsRange(x nat, start, end uint64) nat {
	if start > end {
		panic(errBitRange)
	}
	t := nat(nil).rsh(x, start)
	return z.trunc(t, end-start)
}

// assignBits replaces bits [start, end) of x with the low end-start bits of
// y. Limbs wholly inside the range are copied; the limbs holding start and
// end are merged through partial masks. A range that reaches past the top of
// x grows the result.
func (z nat) assignBits(x nat, start, end uint64, y nat) nat {
	if start > end {
		panic(errBitRange)
	}
	if start == end {
		return z.set(x)
	}

	src := nat(nil).trunc(y, end-start)
	src = src.lsh(src, start)

	lo := int(start / limbBits)
	hi := int((end-1)/limbBits) + 1

	if alias(z, x) {
		z = nil
	}
	n := max(len(x), hi)
	z = z.make(n)
	copy(z, x)
	clear(z[len(x):])

	for i := lo; i < hi; i++ {
		mask := maxLimb
		if i == lo {
			mask &= maxLimb << (start % limbBits)
		}
		if i == hi-1 {
			if b := end % limbBits; b != 0 {
				mask &= 1<<b - 1
			}
		}
		var v Limb
		if i < len(src) {
			v = src[i]
		}
		z[i] = z[i]&^mask | v&mask
	}
	return z.norm()
}

func (z nat) and(x, y nat) nat {
	m := min(len(x), len(y))
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m)
	for i := 0; i < m; i++ {
		z[i] = x[i] & y[i]
	}
	return z.norm()
}

// andNot computes x &^ y.
func (z nat) andNot(x, y nat) nat {
	m, n := len(x), len(y)
	if n > m {
		n = m
	}
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] &^ y[i]
	}
	copy(z[n:m], x[n:m])
	return z.norm()
}

func (z nat) or(x, y nat) nat {
	m, n := len(x), len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] | y[i]
	}
	copy(z[n:m], s[n:m])
	return z.norm()
}

func (z nat) xor(x, y nat) nat {
	m, n := len(x), len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] ^ y[i]
	}
	copy(z[n:m], s[n:m])
	return z.norm()
}
