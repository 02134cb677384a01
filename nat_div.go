package bignum

// div computes q = u/v and r = u%v, writing q into z and r into z2.
//
// Single-limb divisors go through divLimb; everything else goes through the
// normalised long division in divLarge.
func (z nat) div(z2, u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic(errDivisionByZero)
	}

	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return q, r
	}

	if len(v) == 1 {
		var r2 Limb
		q, r2 = z.divLimb(u, v)
		r = z2.setLimb(r2)
		return q, r
	}

	return z.divLarge(z2, u, v)
}

// divLimb is the single-limb fast path. It must only be handed a divisor of
// exactly one limb; anything else is a bug in the caller.
func (z nat) divLimb(x, v nat) (q nat, r Limb) {
	if len(v) != 1 {
		panic("bignum: single-limb division with a multi-limb divisor")
	}
	return z.divW(x, v[0])
}

// divW divides by a single limb value.
func (z nat) divW(x nat, y Limb) (q nat, r Limb) {
	m := len(x)
	switch {
	case y == 0:
		panic(errDivisionByZero)
	case y == 1:
		q = z.set(x)
		return q, 0
	case m == 0:
		q = z[:0]
		return q, 0
	}

	if alias(z, x) {
		z = nil
	}
	z = z.make(m)
	r = divWVW(z, 0, x, y)
	q = z.norm()
	return q, r
}

// modW returns x mod y for a single limb y.
func (x nat) modW(y Limb) Limb {
	if y == 0 {
		panic(errDivisionByZero)
	}
	return modVW(x, y)
}

// divLarge is Knuth's Algorithm D (TAOCP vol. 2, 4.3.1). It requires
// len(v) >= 2 and u >= v. One quotient limb is produced per step, estimated
// from the top two limbs of the running remainder and the top limb of the
// normalised divisor, refined with the second divisor limb, and corrected by
// at most one add-back.
func (z nat) divLarge(z2, u, v nat) (q, r nat) {
	n := len(v)
	m := len(u) - n

	if alias(z, u) || alias(z, v) {
		z = nil
	}
	if alias(z2, u) || alias(z2, v) {
		z2 = nil
	}

	// Normalise so the divisor's top limb has its high bit set. Both
	// normalised copies are scratch space owned by this call.
	shift := leadingZeros(v[n-1])
	vn := make(nat, n)
	shlVU(vn, v, shift)
	un := make(nat, len(u)+1)
	un[len(u)] = shlVU(un[0:len(u)], u, shift)

	q = z.make(m + 1)
	qhatv := make(nat, n+1)

	vtop, vnext := vn[n-1], vn[n-2]
	for j := m; j >= 0; j-- {
		qhat := maxLimb
		if ujn := un[j+n]; ujn != vtop {
			var rhat Limb
			qhat, rhat = xxDivModYToQR(ujn, un[j+n-1], vtop)

			// Reject estimates where qhat*vnext > rhat<<limbBits + u[j+n-2].
			x1, x0 := xMulYToZZ(qhat, vnext)
			ujn2 := un[j+n-2]
			for greaterThan(x1, x0, rhat, ujn2) {
				qhat--
				prev := rhat
				rhat += vtop
				if rhat < prev {
					// rhat no longer fits a limb, so the test can't fail again.
					break
				}
				x1, x0 = xMulYToZZ(qhat, vnext)
			}
		}

		qhatv[n] = mulAddVWW(qhatv[0:n], vn, qhat, 0)
		if c := subVV(un[j:j+n+1], un[j:j+n+1], qhatv); c != 0 {
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
			qhat--
		}
		q[j] = qhat
	}
	q = q.norm()

	r = z2.make(n)
	shrVU(r, un[0:n], shift)
	r = r.norm()
	return q, r
}

// divExact divides when the caller knows v | u. It panics otherwise.
func (z nat) divExact(u, v nat) nat {
	q, r := z.div(nil, u, v)
	if len(r) != 0 {
		panic("bignum: inexact division")
	}
	return q
}
