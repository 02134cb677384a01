package bignum

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var i64 = I128From64

func bigI64(i int64) *big.Int { return new(big.Int).SetInt64(i) }

func i128s(s string) I128 {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(s)
	}
	i, acc := IntegerFromBigInt(b).I128()
	if !acc {
		panic(fmt.Errorf("bignum: inaccurate i128 %s", s))
	}
	return i
}

func randI128(scratch []byte) I128 {
	rand.Read(scratch)
	i := I128{}
	i.lo = binary.LittleEndian.Uint64(scratch)

	if scratch[0]%2 == 1 {
		// if we always generate hi bits, the universe will die before we
		// test a number < maxInt64
		i.hi = binary.LittleEndian.Uint64(scratch[8:])
	}
	if scratch[1]%2 == 1 {
		i = i.Neg()
	}
	return i
}

func TestI128Add(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c I128
	}{
		{i64(-2), i64(-1), i64(-3)},
		{i64(-2), i64(1), i64(-1)},
		{i64(-1), i64(1), i64(0)},
		{i64(1), i64(2), i64(3)},
		{i64(10), i64(3), i64(13)},

		// Overflow wraps:
		{MaxI128, i64(1), MinI128},

		// lo carries to hi:
		{I128{lo: maxUint64}, i64(1), i128s("18446744073709551616")},
		{i128s("18446744073709551615"), i128s("18446744073709551615"), i128s("36893488147419103230")},

		// Crossing zero from below:
		{i128s("-18446744073709551616"), i128s("18446744073709551617"), i64(1)},
	} {
		t.Run(fmt.Sprintf("%d/%s+%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Add(tc.b)), "found %s", tc.a.Add(tc.b))
		})
	}
}

func TestI128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a I128
		b *big.Int
	}{
		{I128{0, 2}, bigI64(2)},
		{I128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE}, bigI64(-2)},
		{I128{0x1, 0x0}, bigs("18446744073709551616")},
		{I128{0x1, 0xFFFFFFFFFFFFFFFF}, bigs("36893488147419103231")}, // (1<<65) - 1
		{I128{0x1, 0x8AC7230489E7FFFF}, bigs("28446744073709551615")},
		{I128{0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("170141183460469231731687303715884105727")},
		{I128{0x8000000000000000, 0}, bigs("-170141183460469231731687303715884105728")},
		{I128{0xFFFFFFFFFFFFFFFF, 0}, bigs("-18446744073709551616")},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d=%s", idx, tc.a.hi, tc.a.lo, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
		})
	}
}

func TestI128Cmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b I128
		out  int
	}{
		{i64(0), i64(0), 0},
		{i64(1), i64(0), 1},
		{i64(-1), i64(0), -1},
		{i64(-1), i64(-2), 1},
		{MinI128, MaxI128, -1},
		{MaxI128, MinI128, 1},
		{i128s("-18446744073709551616"), i64(math.MinInt64), -1},
		{i128s("18446744073709551616"), i64(math.MaxInt64), 1},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.Cmp(tc.b))
			tt.MustEqual(tc.out, tc.a.AsBigInt().Cmp(tc.b.AsBigInt()))
		})
	}
}

func TestI128FromString(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out I128
		acc bool
	}{
		{"0", i64(0), true},
		{"-1", i64(-1), true},
		{"+1", i64(1), true},
		{"170141183460469231731687303715884105727", MaxI128, true},
		{"-170141183460469231731687303715884105728", MinI128, true},
		{"170141183460469231731687303715884105728", MaxI128, false},
		{"-170141183460469231731687303715884105729", MinI128, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc, err := I128FromString(tc.in)
			tt.MustOK(err)
			tt.MustEqual(tc.acc, acc)
			tt.MustAssert(tc.out.Equal(v), "found %s", v)
		})
	}
}

func TestI128MarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	bts := make([]byte, 16)

	for i := 0; i < 5000; i++ {
		n := randI128(bts)

		bts, err := json.Marshal(n)
		tt.MustOK(err)

		var result I128
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(n))
	}
}

func TestI128Neg(t *testing.T) {
	for idx, tc := range []struct {
		a, b I128
	}{
		{i64(0), i64(0)},
		{i64(-2), i64(2)},
		{i64(2), i64(-2)},

		// hi/lo carry:
		{I128{lo: 0xFFFFFFFFFFFFFFFF}, I128{hi: 0xFFFFFFFFFFFFFFFF, lo: 1}},
		{I128{hi: 0xFFFFFFFFFFFFFFFF, lo: 1}, I128{lo: 0xFFFFFFFFFFFFFFFF}},

		{i128s("18446744073709551616"), i128s("-18446744073709551616")},
		{i128s("-18446744073709551616"), i128s("18446744073709551616")},
		{i128s("-18446744073709551617"), i128s("18446744073709551617")},
		{I128{hi: 1, lo: 0}, I128{hi: 0xFFFFFFFFFFFFFFFF, lo: 0x0}},

		{i128s("28446744073709551615"), i128s("-28446744073709551615")},
		{i128s("-28446744073709551615"), i128s("28446744073709551615")},

		// Negating MaxI128 should yield MinI128 + 1:
		{I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}, I128{hi: 0x8000000000000000, lo: 1}},

		// Negating MinI128 should yield MinI128:
		{I128{hi: 0x8000000000000000, lo: 0}, I128{hi: 0x8000000000000000, lo: 0}},
	} {
		t.Run(fmt.Sprintf("%d/-%s=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := tc.a.Neg()
			tt.MustAssert(tc.b.Equal(result))
		})
	}
}

func TestI128Sign(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, i64(0).Sign())
	tt.MustEqual(1, i64(1).Sign())
	tt.MustEqual(-1, i64(-1).Sign())
	tt.MustEqual(-1, MinI128.Sign())
	tt.MustEqual(1, MaxI128.Sign())
}

func TestI128Sub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c I128
	}{
		{i64(-2), i64(-1), i64(-1)},
		{i64(-2), i64(1), i64(-3)},
		{i64(2), i64(1), i64(1)},
		{i64(2), i64(-1), i64(3)},
		{i64(1), i64(2), i64(-1)},  // crossing zero
		{i64(-1), i64(-2), i64(1)}, // crossing zero

		{MinI128, i64(1), MaxI128},  // Overflow wraps
		{MaxI128, i64(-1), MinI128}, // Overflow wraps

		{i128s("0x10000000000000000"), i64(1), i128s("0xFFFFFFFFFFFFFFFF")},  // carry down
		{i128s("0xFFFFFFFFFFFFFFFF"), i64(-1), i128s("0x10000000000000000")}, // carry up
	} {
		t.Run(fmt.Sprintf("%d/%s-%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Sub(tc.b)))
		})
	}
}

func TestI128IntegerRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	bts := make([]byte, 16)

	for i := 0; i < 5000; i++ {
		n := randI128(bts)
		x := IntegerFromI128(n)
		tt.MustEqual(n.AsBigInt().String(), x.String())

		back, ok := x.I128()
		tt.MustAssert(ok)
		tt.MustAssert(back.Equal(n))
	}

	_, ok := IntegerFromI128(MaxI128).Inc().I128()
	tt.MustAssert(!ok)
	_, ok = IntegerFromI128(MinI128).Dec().I128()
	tt.MustAssert(!ok)
}

func BenchmarkI128Sub(b *testing.B) {
	sub := i64(1)
	for _, iv := range []I128{i64(1), i128s("0x10000000000000000"), MaxI128} {
		b.Run(fmt.Sprintf("%s", iv), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchI128Result = iv.Sub(sub)
			}
		})
	}
}
