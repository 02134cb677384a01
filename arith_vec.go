package bignum

// Vector kernels over limb slices. Each returns its carry, borrow or
// remainder explicitly; none of them allocates. Unless noted otherwise, x and
// y must be at least as long as z.

// addVV sets z = x + y and returns the carry out of the top limb.
func addVV(z, x, y []Limb) (c Limb) {
	for i := range z {
		c, z[i] = addWW(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y and returns the borrow out of the top limb.
func subVV(z, x, y []Limb) (c Limb) {
	for i := range z {
		c, z[i] = subWW(x[i], y[i], c)
	}
	return c
}

// addVW sets z = x + y for a single limb y and returns the carry.
func addVW(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := range z {
		c, z[i] = addWW(x[i], c, 0)
	}
	return c
}

// subVW sets z = x - y for a single limb y and returns the borrow.
func subVW(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := range z {
		c, z[i] = subWW(x[i], c, 0)
	}
	return c
}

// shlVU sets z = x << s for 0 <= s < limbBits and returns the bits shifted
// out of the top limb. z may overlap x when &z[0] >= &x[0].
func shlVU(z, x []Limb, s uint) (c Limb) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	rs := limbBits - s
	c = x[len(z)-1] >> rs
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>rs
	}
	z[0] = x[0] << s
	return c
}

// shrVU sets z = x >> s for 0 <= s < limbBits and returns the bits shifted
// out of the bottom limb, left-aligned. z may overlap x when &z[0] <= &x[0].
func shrVU(z, x []Limb, s uint) (c Limb) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	ls := limbBits - s
	c = x[0] << ls
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ls
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return c
}

// mulAddVWW sets z = x*y + r and returns the carry limb.
func mulAddVWW(z, x []Limb, y, r Limb) (c Limb) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return c
}

// addMulVVW sets z += x*y and returns the carry limb.
func addMulVVW(z, x []Limb, y Limb) (c Limb) {
	for i := range z {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		var cc Limb
		cc, z[i] = addWW(z0, c, 0)
		c = z1 + cc
	}
	return c
}

// divWVW sets z = (xn<<(limbBits*len(x)) + x) / y and returns the remainder.
// xn < y is required, which keeps every quotient limb in range.
func divWVW(z []Limb, xn Limb, x []Limb, y Limb) (r Limb) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = xxDivModYToQR(r, x[i], y)
	}
	return r
}

// modVW returns x mod y without materialising the quotient.
func modVW(x []Limb, y Limb) (r Limb) {
	for i := len(x) - 1; i >= 0; i-- {
		_, r = xxDivModYToQR(r, x[i], y)
	}
	return r
}
