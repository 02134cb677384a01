package bignum

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var u64 = U128From64

var maxBigU128 = bigs("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF")

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

func bigs(s string) *big.Int {
	v, ok := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	if !ok {
		panic(s)
	}
	return v
}

func u128s(s string) U128 {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("bignum: u128 string %q invalid", s))
	}
	out, acc := U128FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("bignum: inaccurate u128 %s", s))
	}
	return out
}

func randU128(scratch []byte) U128 {
	rand.Read(scratch)
	u := U128{}
	u.lo = binary.LittleEndian.Uint64(scratch)

	if scratch[0]%2 == 1 {
		// if we always generate hi bits, the universe will die before we
		// test a number < maxUint64
		u.hi = binary.LittleEndian.Uint64(scratch[8:])
	}
	return u
}

func TestU128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a U128
		b *big.Int
	}{
		{U128{0, 2}, bigU64(2)},
		{U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE}, bigs("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE")},
		{U128{0x1, 0x0}, bigs("18446744073709551616")},
		{U128{0x1, 0xFFFFFFFFFFFFFFFF}, bigs("36893488147419103231")}, // (1<<65) - 1
		{U128{0x1, 0x8AC7230489E7FFFF}, bigs("28446744073709551615")},
		{U128{0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("170141183460469231731687303715884105727")},
		{U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF")},
		{U128{0x8000000000000000, 0}, bigs("0x 8000000000000000 0000000000000000")},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d=%s", idx, tc.a.hi, tc.a.lo, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
		})
	}
}

func TestU128Add(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U128
	}{
		{u64(1), u64(2), u64(3)},
		{u64(10), u64(3), u64(13)},
		{MaxU128, u64(1), u64(0)},                               // Overflow wraps
		{u64(maxUint64), u64(1), u128s("18446744073709551616")}, // lo carries to hi
		{u128s("18446744073709551615"), u128s("18446744073709551615"), u128s("36893488147419103230")},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Add(tc.b)))
		})
	}
}

func TestU128Sub(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U128
	}{
		{u64(3), u64(2), u64(1)},
		{u128s("18446744073709551616"), u64(1), u64(maxUint64)},

		// Underflow wraps:
		{u64(0), u64(1), MaxU128},
	} {
		t.Run(fmt.Sprintf("%s-%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Sub(tc.b)))
			tt.MustAssert(AbsDiffU128(tc.a, tc.b).Equal(AbsDiffU128(tc.b, tc.a)))
		})
	}
}

func TestU128Format(t *testing.T) {
	for idx, tc := range []struct {
		v   U128
		fmt string
		out string
	}{
		{u64(1), "%d", "1"},
		{u64(1), "%s", "1"},
		{u64(1), "%v", "1"},
		{MaxU128, "%d", "340282366920938463463374607431768211455"},
		{MaxU128, "%#d", "340282366920938463463374607431768211455"},
		{MaxU128, "%o", "3777777777777777777777777777777777777777777"},
		{MaxU128, "%b", strings.Repeat("1", 128)},
		{MaxU128, "%#b", "0b" + strings.Repeat("1", 128)},
		{MaxU128, "%#o", "03777777777777777777777777777777777777777777"},
		{MaxU128, "%#x", "0xffffffffffffffffffffffffffffffff"},
		{MaxU128, "%#X", "0XFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.fmt, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := fmt.Sprintf(tc.fmt, tc.v)
			tt.MustEqual(tc.out, result)
		})
	}
}

func TestU128FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   U128
		acc bool
	}{
		{bigU64(2), u64(2), true},
		{bigs("18446744073709551616"), U128{hi: 0x1, lo: 0x0}, true},                // 1 << 64
		{bigs("36893488147419103231"), U128{hi: 0x1, lo: 0xFFFFFFFFFFFFFFFF}, true}, // (1<<65) - 1
		{bigs("28446744073709551615"), u128s("28446744073709551615"), true},
		{bigs("170141183460469231731687303715884105727"), u128s("170141183460469231731687303715884105727"), true},
		{bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, true},
		{bigs("0x 1 0000000000000000 00000000000000000"), MaxU128, false},
		{bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFFF"), MaxU128, false},
		{bigs("-1"), U128{}, false},
	} {
		t.Run(fmt.Sprintf("%d/%s=%d,%d", idx, tc.a, tc.b.lo, tc.b.hi), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := U128FromBigInt(tc.a)
			tt.MustEqual(acc, tc.acc)
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: (%d, %d), expected (%d, %d)", v.hi, v.lo, tc.b.hi, tc.b.lo)
		})
	}
}

func TestU128FromString(t *testing.T) {
	tt := assert.WrapTB(t)

	v, acc, err := U128FromString("340282366920938463463374607431768211455")
	tt.MustOK(err)
	tt.MustAssert(acc)
	tt.MustEqual(MaxU128, v)

	v, acc, err = U128FromString("340282366920938463463374607431768211456")
	tt.MustOK(err)
	tt.MustAssert(!acc)
	tt.MustEqual(MaxU128, v)

	_, _, err = U128FromString("-1")
	tt.MustAssert(err != nil)
}

func TestU128Lsh(t *testing.T) {
	for idx, tc := range []struct {
		u  U128
		by uint
		r  U128
	}{
		{u: u64(2), by: 1, r: u64(4)},
		{u: u64(1), by: 2, r: u64(4)},
		{u: u128s("18446744073709551615"), by: 1, r: u128s("36893488147419103230")}, // (1<<64) - 1
		{u: u64(1), by: 128, r: u64(0)},

		// These cases were found by the fuzzer:
		{u: u128s("5080864651895"), by: 57, r: u128s("732229764895815899943471677440")},
		{u: u128s("63669103"), by: 85, r: u128s("2463079120908903847397520463364096")},
		{u: u128s("0x1f1ecfd29cb51500c1a0699657"), by: 104, r: u128s("0x69965700000000000000000000000000")},
		{u: u128s("0x4ff0d215cf8c26f26344"), by: 58, r: u128s("0xc348573e309bc98d1000000000000000")},
		{u: u128s("0x6b5823decd7ef067f78e8cc3d8"), by: 74, r: u128s("0xc19fde3a330f60000000000000000000")},
		{u: u128s("0x8b93924e1f7b6ac551d66f18ab520a2"), by: 50, r: u128s("0xdab154759bc62ad48288000000000000")},
		{u: u128s("173760885"), by: 68, r: u128s("51285161209860430747989442560")},
		{u: u128s("213"), by: 65, r: u128s("7858312975400268988416")},
		{u: u128s("0x2203b9f3dbe0afa82d80d998641aa0"), by: 75, r: u128s("0x6c06ccc320d500000000000000000000")},
		{u: u128s("40625"), by: 55, r: u128s("1463669878895411200000")},
	} {
		t.Run(fmt.Sprintf("%d/%s<<%d=%s", idx, tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			ub := tc.u.AsBigInt()
			ub.Lsh(ub, tc.by).And(ub, maxBigU128)

			ru := tc.u.Lsh(tc.by)
			tt.MustEqual(tc.r.String(), ru.String(), "%s != %s; big: %s", tc.r, ru, ub)
			tt.MustEqual(ub.String(), ru.String())
		})
	}
}

func TestU128Mul(t *testing.T) {
	tt := assert.WrapTB(t)
	scratch := make([]byte, 16)

	for i := 0; i < 5000; i++ {
		u, v := randU128(scratch), randU128(scratch)
		rb := new(big.Int).Mul(u.AsBigInt(), v.AsBigInt())
		rb.And(rb, maxBigU128)
		tt.MustEqual(rb.String(), u.Mul(v).String(), "%s * %s", u, v)
	}
}

func TestU128QuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, by, q, r U128
	}{
		{u: u64(1), by: u64(2), q: u64(0), r: u64(1)},
		{u: u64(10), by: u64(3), q: u64(3), r: u64(1)},

		// Divisor with a zero low limb:
		{u: U128{hi: 0, lo: 1}, by: U128{hi: 1, lo: 0}, q: u64(0), r: u64(1)},

		{u128s("0x1234567890123456"), u128s("0x1234567890123456"), u64(1), u64(0)},
		{u128s("0x123456789012345678901234"), u128s("0x222222229012345678901234"), u64(0), u128s("0x123456789012345678901234")},
		{u128s("0x123456789012345678901234"), u128s("0x123456789012345678901234"), u64(1), u64(0)},

		// These test cases were found by the fuzzer and exposed a bug in the
		// two-limb divisor branch:
		{u128s("3289699161974853443944280720275488"), u128s("9261249991223143249760"), u128s("355211139435"), u128s("96980854802329989888")},
		{u128s("555579170280843546177"), u128s("21475569273528505412"), u128s("25"), u128s("18689938442630910877")},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s,%s", idx, tc.u, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.u.QuoRem(tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())

			qBig, rBig := new(big.Int).QuoRem(tc.u.AsBigInt(), tc.by.AsBigInt(), new(big.Int))
			tt.MustEqual(tc.q.String(), qBig.String())
			tt.MustEqual(tc.r.String(), rBig.String())
		})
	}
}

func TestU128QuoRemLimb(t *testing.T) {
	tt := assert.WrapTB(t)
	scratch := make([]byte, 16)

	for i := 0; i < 5000; i++ {
		u := randU128(scratch)
		by := rand.Uint64() >> uint(rand.Intn(64))
		if by == 0 {
			continue
		}
		q, r := u.QuoRemLimb(by)
		qb, rb := new(big.Int).QuoRem(u.AsBigInt(), bigU64(by), new(big.Int))
		tt.MustEqual(qb.String(), q.String())
		tt.MustEqual(rb.Uint64(), r)
	}
}

func TestU128Rsh(t *testing.T) {
	for _, tc := range []struct {
		u  U128
		by uint
		r  U128
	}{
		{u: u64(2), by: 1, r: u64(1)},
		{u: u64(1), by: 2, r: u64(0)},
		{u: u128s("36893488147419103232"), by: 1, r: u128s("18446744073709551616")}, // (1<<65) - 1
		{u: MaxU128, by: 128, r: u64(0)},

		// These test cases were found by the fuzzer:
		{u: u128s("2465608830469196860151950841431"), by: 104, r: u64(0)},
		{u: u128s("377509308958315595850564"), by: 58, r: u64(1309748)},
		{u: u128s("8504691434450337657905929307096"), by: 74, r: u128s("450234615")},
		{u: u128s("11595557904603123290159404941902684322"), by: 50, r: u128s("10298924295251697538375")},
		{u: u128s("176613673099733424757078556036831904"), by: 75, r: u128s("4674925001596")},
		{u: u128s("3731491383344351937489898072501894878"), by: 112, r: u64(718)},
	} {
		t.Run(fmt.Sprintf("%s>>%d=%s", tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			ub := tc.u.AsBigInt()
			ub.Rsh(ub, tc.by).And(ub, maxBigU128)

			ru := tc.u.Rsh(tc.by)
			tt.MustEqual(tc.r.String(), ru.String(), "%s != %s; big: %s", tc.r, ru, ub)
			tt.MustEqual(ub.String(), ru.String())
		})
	}
}

func TestU128Zeros(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(uint(128), U128{}.LeadingZeros())
	tt.MustEqual(uint(128), U128{}.TrailingZeros())
	tt.MustEqual(uint(63), U128{hi: 1}.LeadingZeros())
	tt.MustEqual(uint(64), U128{hi: 1}.TrailingZeros())
	tt.MustEqual(uint(127), u64(1).LeadingZeros())
	tt.MustEqual(uint(0), u64(1).TrailingZeros())
}

func TestU128MarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	bts := make([]byte, 16)

	for i := 0; i < 5000; i++ {
		u := randU128(bts)

		bts, err := json.Marshal(u)
		tt.MustOK(err)

		var result U128
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(u))
	}
}

func BenchmarkU128Add(b *testing.B) {
	u, v := U128{hi: 1234, lo: 5678}, U128{hi: 9123, lo: 5678}
	for i := 0; i < b.N; i++ {
		BenchU128Result = u.Add(v)
	}
}

func BenchmarkU128Mul(b *testing.B) {
	u, v := U128{hi: 1234, lo: 5678}, U128{hi: 9123, lo: 5678}
	for i := 0; i < b.N; i++ {
		BenchU128Result = u.Mul(v)
	}
}

func BenchmarkU128QuoRemLimb(b *testing.B) {
	u := U128{hi: 0x1234567890, lo: 0xFEDCBA9876543210}
	for i := 0; i < b.N; i++ {
		BenchU128Result, BenchUint64Result = u.QuoRemLimb(121525124)
	}
}

func BenchmarkU128String(b *testing.B) {
	u := MaxU128
	for i := 0; i < b.N; i++ {
		BenchStringResult = u.String()
	}
}
