/*
Package bignum provides arbitrary-precision natural numbers (Natural) and
signed integers (Integer), along with the double-limb helper types U128 and
I128 they are built on.

Natural and Integer are value types; all operations return new values and
never modify their receivers or arguments. A Natural that fits in a single
64-bit limb is stored inline and does not allocate.

Simple example:

	x := NaturalFromUint64(math.MaxUint64)
	fmt.Println(x.Mul(x))
	// Output: 340282366920938463426481119284349108225

Natural and Integer can be created from a variety of sources:

	NaturalFromUint64(v uint64) Natural
	NaturalFromU128(v U128) Natural
	NaturalFromLimbs(asc []Limb) Natural
	NaturalFromBigInt(v *big.Int) (out Natural, ok bool)
	NaturalFromFloat64(f float64) (out Natural, exact bool)
	ParseNatural(s string, base int) (Natural, error)
	IntegerFrom64(v int64) Integer
	IntegerFromSignAndAbs(neg bool, abs Natural) Integer
	IntegerFromTwosComplementLimbs(asc []Limb) Integer
	ParseInteger(s string, base int) (Integer, error)

Operations that are only defined for some inputs come in three forms. The
plain form panics when called outside its domain (Sub when y > x, Quo by
zero), a Checked form returns a second ok result instead, and where it makes
sense a Saturating form clamps.

Modular operations (ModAdd, ModMul, ModPow and the power-of-two variants)
require operands already reduced by the modulus. Repeated multiplication by
the same modulus can reuse the reduction data from PrecomputeModMul.

Natural and Integer support the following formatting and marshalling
interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

*/
package bignum
