package bignum

// jacobi returns the Jacobi symbol (a/n) for odd n, by the binary algorithm:
// strip factors of two from a using (2/n), then swap by quadratic
// reciprocity.
func jacobi(a, n Natural) int {
	a = a.Rem(n)
	j := 1
	for !a.IsZero() {
		tz, _ := a.TrailingZeros()
		a = a.Rsh(tz)
		if tz&1 == 1 {
			if r := n.LimbAt(0) & 7; r == 3 || r == 5 {
				j = -j
			}
		}
		a, n = n, a
		if a.LimbAt(0)&3 == 3 && n.LimbAt(0)&3 == 3 {
			j = -j
		}
		a = a.Rem(n)
	}
	if n.IsOne() {
		return j
	}
	return 0
}

// kroneckerTwo returns (a/2) given a mod 8.
func kroneckerTwo(a8 Limb) int {
	switch a8 {
	case 1, 7:
		return 1
	case 3, 5:
		return -1
	}
	return 0
}

// Jacobi returns the Jacobi symbol (x/n). It panics if n is even.
func (x Natural) Jacobi(n Natural) int {
	if n.Even() {
		panic(errEvenJacobi)
	}
	return jacobi(x, n)
}

// Legendre returns the Legendre symbol (x/p). Primality of p is not checked,
// so for composite p this is the Jacobi symbol. It panics if p is even.
func (x Natural) Legendre(p Natural) int {
	return x.Jacobi(p)
}

// Kronecker returns the Kronecker symbol (x/y), which extends the Jacobi
// symbol to every y.
func (x Natural) Kronecker(y Natural) int {
	if y.IsZero() {
		if x.IsOne() {
			return 1
		}
		return 0
	}
	if x.Even() && y.Even() {
		return 0
	}
	j := 1
	tz, _ := y.TrailingZeros()
	if tz&1 == 1 {
		j = kroneckerTwo(x.LimbAt(0) & 7)
	}
	return j * jacobi(x, y.Rsh(tz))
}

// Jacobi returns the Jacobi symbol (x/n), with (x/-1) = -1 for negative x. It
// panics if n is even.
func (x Integer) Jacobi(n Integer) int {
	if n.Even() {
		panic(errEvenJacobi)
	}
	return x.Kronecker(n)
}

// Kronecker returns the Kronecker symbol (x/y).
func (x Integer) Kronecker(y Integer) int {
	j := 1
	if y.neg && x.neg {
		j = -1
	}
	b := y.abs
	if b.IsZero() {
		if x.abs.IsOne() {
			return 1
		}
		return 0
	}
	if x.Even() && b.Even() {
		return 0
	}
	tz, _ := b.TrailingZeros()
	b = b.Rsh(tz)
	if tz&1 == 1 {
		a8 := x.Mod(IntegerFrom64(8)).abs.LimbAt(0)
		j *= kroneckerTwo(a8)
	}
	// (x/b) for odd b only depends on x mod b.
	return j * jacobi(x.Mod(IntegerFromNatural(b)).abs, b)
}
