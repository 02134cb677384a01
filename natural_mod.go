package bignum

func checkReducedPow2(k uint64, xs ...Natural) {
	for _, x := range xs {
		if x.BitLen() > k {
			panic(errNotReduced)
		}
	}
}

func checkReduced(m Natural, xs ...Natural) {
	if m.IsZero() {
		panic(errZeroModulus)
	}
	for _, x := range xs {
		if x.Cmp(m) >= 0 {
			panic(errNotReduced)
		}
	}
}

// ModPowerOf2 returns x mod 2^k.
func (x Natural) ModPowerOf2(k uint64) Natural {
	if x.large == nil {
		if k >= limbBits {
			return x
		}
		return Natural{small: x.small & (1<<k - 1)}
	}
	return natural(nat(nil).trunc(x.large, k))
}

// ModPowerOf2Add returns (x + y) mod 2^k. x and y must be less than 2^k.
func (x Natural) ModPowerOf2Add(y Natural, k uint64) Natural {
	checkReducedPow2(k, x, y)
	var xb, yb [1]Limb
	return natural(nat(nil).modPow2Add(x.view(&xb), y.view(&yb), k))
}

// ModPowerOf2Sub returns (x - y) mod 2^k. x and y must be less than 2^k.
func (x Natural) ModPowerOf2Sub(y Natural, k uint64) Natural {
	checkReducedPow2(k, x, y)
	var xb, yb [1]Limb
	return natural(nat(nil).modPow2Sub(x.view(&xb), y.view(&yb), k))
}

// ModPowerOf2Neg returns -x mod 2^k. x must be less than 2^k.
func (x Natural) ModPowerOf2Neg(k uint64) Natural {
	checkReducedPow2(k, x)
	var xb [1]Limb
	return natural(nat(nil).modPow2Neg(x.view(&xb), k))
}

// ModPowerOf2Mul returns (x * y) mod 2^k. x and y must be less than 2^k.
func (x Natural) ModPowerOf2Mul(y Natural, k uint64) Natural {
	checkReducedPow2(k, x, y)
	var xb, yb [1]Limb
	return natural(nat(nil).modPow2Mul(x.view(&xb), y.view(&yb), k))
}

// ModPowerOf2Inverse returns the inverse of x modulo 2^k. Only odd values
// have one, so ok is false when x is even (including zero). x must be less
// than 2^k.
func (x Natural) ModPowerOf2Inverse(k uint64) (Natural, bool) {
	checkReducedPow2(k, x)
	if x.Even() {
		return Natural{}, false
	}
	var xb [1]Limb
	return natural(nat(nil).modInversePow2(x.view(&xb), k)), true
}

// ModAdd returns (x + y) mod m. x and y must be less than m.
func (x Natural) ModAdd(y, m Natural) Natural {
	checkReduced(m, x, y)
	s := x.Add(y)
	if s.Cmp(m) >= 0 {
		s = s.Sub(m)
	}
	return s
}

// ModSub returns (x - y) mod m. x and y must be less than m.
func (x Natural) ModSub(y, m Natural) Natural {
	checkReduced(m, x, y)
	if d, ok := x.CheckedSub(y); ok {
		return d
	}
	return x.Add(m).Sub(y)
}

// ModNeg returns -x mod m. x must be less than m.
func (x Natural) ModNeg(m Natural) Natural {
	checkReduced(m, x)
	if x.IsZero() {
		return x
	}
	return m.Sub(x)
}

// ModMulData holds the reduction constants PrecomputeModMul derives from a
// modulus. Reusing it across many multiplications by the same modulus saves
// recomputing them; for two-limb moduli it carries the Barrett reciprocal
// floor(2^256 / m) along with the modulus it was derived from.
type ModMulData struct {
	kind modMulKind
	inv  [3]Limb
	mod  [2]Limb
}

// PrecomputeModMul derives the reduction constants for modulus m. It panics
// if m is zero.
func PrecomputeModMul(m Natural) ModMulData {
	kind := modMulKindOf(m)
	if kind == modMulKindTwoLimbs {
		inv2, inv1, inv0 := precomputeModMulTwoLimbs(m.large[1], m.large[0])
		return ModMulData{
			kind: kind,
			inv:  [3]Limb{inv0, inv1, inv2},
			mod:  [2]Limb{m.large[0], m.large[1]},
		}
	}
	return ModMulData{kind: kind}
}

func modMulKindOf(m Natural) modMulKind {
	switch {
	case m.IsZero():
		panic(errZeroModulus)
	case m.large == nil:
		return modMulKindOneLimb
	case len(m.large) == 2 && m.large[1] == 1 && m.large[0] == 0:
		return modMulKindMinTwoLimbs
	case len(m.large) == 2:
		return modMulKindTwoLimbs
	}
	return modMulKindGeneral
}

func (d ModMulData) usableFor(m Natural) bool {
	switch d.kind {
	case modMulKindNone:
		return true
	case modMulKindTwoLimbs:
		return m.large != nil && len(m.large) == 2 &&
			d.mod[0] == m.large[0] && d.mod[1] == m.large[1]
	}
	return d.kind == modMulKindOf(m)
}

// ModMul returns (x * y) mod m. x and y must be less than m.
func (x Natural) ModMul(y, m Natural) Natural {
	return x.ModMulPrecomputed(y, m, PrecomputeModMul(m))
}

// ModMulPrecomputed is ModMul with constants from PrecomputeModMul(m). The
// result is always in [0, m). The zero ModMulData is accepted and falls back
// to plain division. It panics if data was computed for a different modulus.
func (x Natural) ModMulPrecomputed(y, m Natural, data ModMulData) Natural {
	checkReduced(m, x, y)
	if !data.usableFor(m) {
		panic("bignum: ModMulData was computed for a different modulus")
	}
	var xb, yb, mb [1]Limb
	return natural(nat(nil).modMul(x.view(&xb), y.view(&yb), m.view(&mb), data))
}

// ModPow returns x**e mod m. x must be less than m.
func (x Natural) ModPow(e, m Natural) Natural {
	checkReduced(m, x)
	data := PrecomputeModMul(m)
	var xb, eb, mb [1]Limb
	return natural(nat(nil).expMod(x.view(&xb), e.view(&eb), m.view(&mb), data))
}

// ModInverse returns y such that x*y mod m == 1. ok is false when x and m are
// not coprime. x must be less than m.
func (x Natural) ModInverse(m Natural) (Natural, bool) {
	checkReduced(m, x)
	var xb, mb [1]Limb
	z, ok := nat(nil).modInverse(x.view(&xb), m.view(&mb))
	if !ok {
		return Natural{}, false
	}
	return natural(z), true
}
