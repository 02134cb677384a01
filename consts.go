package bignum

// Limb is a single base-2^64 digit of a multi-limb magnitude.
type Limb = uint64

const (
	limbBits = 64
	maxLimb  = Limb(1<<64 - 1)

	maxUint64 = 1<<64 - 1

	signBit = 0x8000000000000000

	intSize = 32 << (^uint(0) >> 63)

	// float64 significand width, including the implicit bit.
	float64MantBits = 53
)

const (
	errDivisionByZero = "bignum: division by zero"
	errSubUnderflow   = "bignum: subtraction underflow"
	errNotReduced     = "bignum: operand not reduced"
	errBitRange       = "bignum: bit range start > end"
	errInexact        = "bignum: inexact result with RoundExact"
	errLogOfZero      = "bignum: logarithm of zero"
	errLogBase        = "bignum: logarithm base must be at least 2"
	errZeroModulus    = "bignum: zero modulus"
	errDecZero        = "bignum: decrement of zero"
	errZeroRoot       = "bignum: zeroth root"
	errEvenJacobi     = "bignum: Jacobi symbol of an even denominator"
	errZeroMultiple   = "bignum: nonzero value rounded away from zero to a multiple of zero"
)

var (
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroI128 I128
	zeroU128 U128

	natOne = nat{1}
)
