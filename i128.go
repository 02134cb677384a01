package bignum

import (
	"fmt"
	"math/big"
)

// I128 is a signed double-limb value in two's complement. It is the
// fixed-width counterpart to Integer.
type I128 struct {
	hi uint64
	lo uint64
}

// I128FromRaw is the complement to I128.Raw; it creates an I128 from the hi
// and lo limbs of its two's-complement form.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

// I128FromString parses a decimal string with an optional sign. Values
// outside the range saturate to MinI128 or MaxI128 and set accurate to
// false.
func I128FromString(s string) (out I128, accurate bool, err error) {
	x, err := ParseInteger(s, 10)
	if err != nil {
		return out, false, err
	}
	out, accurate = x.I128()
	if !accurate {
		out = MaxI128
		if x.IsNegative() {
			out = MinI128
		}
	}
	return out, accurate, nil
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns the two's-complement limbs of i.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) String() string { return IntegerFromI128(i).String() }

func (i I128) Format(s fmt.State, c rune) { IntegerFromI128(i).Format(s, c) }

func (i I128) AsBigInt() *big.Int { return IntegerFromI128(i).AsBigInt() }

// AsU128 reinterprets the two's-complement bits of i as unsigned.
func (i I128) AsU128() U128 { return U128{hi: i.hi, lo: i.lo} }

func (i I128) Sign() int {
	switch {
	case i == zeroI128:
		return 0
	case i.hi&signBit == 0:
		return 1
	}
	return -1
}

// Neg returns -i. -MinI128 wraps to MinI128.
func (i I128) Neg() I128 {
	n := zeroU128.Sub(i.AsU128())
	return I128{hi: n.hi, lo: n.lo}
}

func (i I128) Add(n I128) I128 {
	hi, lo := xxAddYYToZZ(i.hi, i.lo, n.hi, n.lo)
	return I128{hi: hi, lo: lo}
}

func (i I128) Sub(n I128) I128 {
	hi, lo := xxSubYYToZZ(i.hi, i.lo, n.hi, n.lo)
	return I128{hi: hi, lo: lo}
}

// Cmp compares i and n and returns -1, 0 or +1.
func (i I128) Cmp(n I128) int {
	// Flipping the sign bit maps two's complement order onto unsigned order.
	a := U128{hi: i.hi ^ signBit, lo: i.lo}
	b := U128{hi: n.hi ^ signBit, lo: n.lo}
	return a.Cmp(b)
}

func (i I128) Equal(n I128) bool { return i == n }

func (i I128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, _, err := I128FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts)
	if err != nil {
		return err
	}
	return i.UnmarshalText(bts)
}
