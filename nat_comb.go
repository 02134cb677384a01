package bignum

// factorial sets z = n!.
func (z nat) factorial(n uint64) nat {
	z = z.setLimb(1)
	for i := uint64(2); i <= n; i++ {
		z = z.mulAddLimb(z, i, 0)
	}
	return z
}

// binomial sets z = C(n, k), the number of k-element subsets of an n-element
// set. k is replaced by min(k, n-k), then the running product
// r = r * (n-k+i) / i divides exactly at every step: after step i, r is
// C(n-k+i, i).
func (z nat) binomial(n nat, k uint64) nat {
	kn := nat(nil).setLimb(k)
	if kn.cmp(n) > 0 {
		return z[:0]
	}
	if nk := nat(nil).mustSub(n, kn); nk.cmp(kn) < 0 {
		// n-k < k, so n-k fits a limb.
		k = 0
		if len(nk) > 0 {
			k = nk[0]
		}
		kn = kn.setLimb(k)
	}

	base := nat(nil).mustSub(n, kn) // n-k
	r := nat(nil).setLimb(1)
	var f nat
	for i := uint64(1); i <= k; i++ {
		f = f.addLimb(base, i)
		r = r.mul(r, f)
		r, _ = r.divW(r, i)
	}
	return z.set(r)
}
