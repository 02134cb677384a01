package bignum

import (
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ fmt.Formatter            = Natural{}
	_ fmt.Stringer             = Natural{}
	_ encoding.TextMarshaler   = Natural{}
	_ encoding.TextUnmarshaler = (*Natural)(nil)
	_ json.Marshaler           = Natural{}
	_ json.Unmarshaler         = (*Natural)(nil)
	_ msgpack.CustomEncoder    = Natural{}
	_ msgpack.CustomDecoder    = (*Natural)(nil)

	_ fmt.Formatter            = Integer{}
	_ fmt.Stringer             = Integer{}
	_ encoding.TextMarshaler   = Integer{}
	_ encoding.TextUnmarshaler = (*Integer)(nil)
	_ json.Marshaler           = Integer{}
	_ json.Unmarshaler         = (*Integer)(nil)
	_ msgpack.CustomEncoder    = Integer{}
	_ msgpack.CustomDecoder    = (*Integer)(nil)
)

func (x Natural) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Natural) UnmarshalText(bts []byte) (err error) {
	v, err := ParseNatural(string(bts), 10)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON encodes x as a quoted decimal string, so values past 2^53
// survive JSON decoders that read numbers as float64.
func (x Natural) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted or bare decimal number. null is a no-op.
func (x *Natural) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	bts, err = unquoteJSON(bts)
	if err != nil {
		return err
	}
	return x.UnmarshalText(bts)
}

// EncodeMsgpack writes x as an array of limbs, least significant first.
func (x Natural) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(x.LimbCount()); err != nil {
		return err
	}
	for _, l := range x.All() {
		if err := enc.EncodeUint(l); err != nil {
			return err
		}
	}
	return nil
}

func (x *Natural) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n < 0 {
		*x = Natural{}
		return nil
	}
	z, err := decodeMsgpackLimbs(dec, n)
	if err != nil {
		return err
	}
	*x = natural(z)
	return nil
}

func (x Integer) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Integer) UnmarshalText(bts []byte) (err error) {
	v, err := ParseInteger(string(bts), 10)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON encodes x as a quoted decimal string.
func (x Integer) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted or bare decimal number. null is a no-op.
func (x *Integer) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	bts, err = unquoteJSON(bts)
	if err != nil {
		return err
	}
	return x.UnmarshalText(bts)
}

// EncodeMsgpack writes x as an array holding the sign followed by the limbs
// of the magnitude, least significant first.
func (x Integer) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(x.abs.LimbCount() + 1); err != nil {
		return err
	}
	if err := enc.EncodeBool(x.neg); err != nil {
		return err
	}
	for _, l := range x.abs.All() {
		if err := enc.EncodeUint(l); err != nil {
			return err
		}
	}
	return nil
}

func (x *Integer) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n < 0 {
		*x = Integer{}
		return nil
	}
	if n == 0 {
		return fmt.Errorf("bignum: integer msgpack array is empty: %w", ErrSyntax)
	}
	neg, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	z, err := decodeMsgpackLimbs(dec, n-1)
	if err != nil {
		return err
	}
	*x = integer(neg, natural(z))
	return nil
}

// msgpackLimbsPrealloc caps the capacity reserved from an array header, which
// may claim far more limbs than the input holds.
const msgpackLimbsPrealloc = 16

func decodeMsgpackLimbs(dec *msgpack.Decoder, n int) (nat, error) {
	z := make(nat, 0, min(n, msgpackLimbsPrealloc))
	for i := 0; i < n; i++ {
		l, err := dec.DecodeUint64()
		if err != nil {
			return nil, err
		}
		z = append(z, l)
	}
	return z, nil
}

func unquoteJSON(bts []byte) ([]byte, error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return nil, fmt.Errorf("bignum: invalid JSON %q: %w", string(bts), ErrSyntax)
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}
