package bignum

import (
	"fmt"
)

func (x Integer) String() string {
	return x.Text(10)
}

// Text returns x in the given base with a leading '-' if negative. It panics
// if base is not in [MinBase, MaxBase].
func (x Integer) Text(base int) string {
	s := x.abs.Text(base)
	if x.neg {
		return "-" + s
	}
	return s
}

// TextUpper is Text with upper-case letters for digits above 9.
func (x Integer) TextUpper(base int) string {
	s := x.abs.TextUpper(base)
	if x.neg {
		return "-" + s
	}
	return s
}

// Format implements fmt.Formatter with the same verbs and flags as
// Natural.Format. The '+' and ' ' flags select the sign shown for
// non-negative values.
func (x Integer) Format(s fmt.State, verb rune) {
	var xb [1]Limb
	formatInt(s, verb, x.neg, x.abs.view(&xb))
}

// ParseInteger parses s as an integer in the given base, with an optional
// leading '-' or '+'. "-0" parses as zero. The returned error wraps ErrSyntax
// or ErrBase.
func ParseInteger(s string, base int) (Integer, error) {
	var neg bool
	digits := s
	if len(digits) > 0 {
		switch digits[0] {
		case '-':
			neg, digits = true, digits[1:]
		case '+':
			digits = digits[1:]
		}
	}
	z, err := nat(nil).setString(digits, base)
	if err != nil {
		return Integer{}, fmt.Errorf("bignum: parse integer %q: %w", s, err)
	}
	return integer(neg, natural(z)), nil
}

// MustParseInteger is like ParseInteger but panics if s cannot be parsed.
func MustParseInteger(s string, base int) Integer {
	x, err := ParseInteger(s, base)
	if err != nil {
		panic(fmt.Sprintf("MustParseInteger(%q) failed: %v", s, err))
	}
	return x
}
