package bignum

import (
	"bytes"
	"fmt"
)

func (x Natural) String() string {
	return x.Text(10)
}

// Text returns x in the given base, using lower-case letters for digits above
// 9. It panics if base is not in [MinBase, MaxBase].
func (x Natural) Text(base int) string {
	var xb [1]Limb
	return string(x.view(&xb).itoa(base, false))
}

// TextUpper is Text with upper-case letters for digits above 9.
func (x Natural) TextUpper(base int) string {
	var xb [1]Limb
	return string(x.view(&xb).itoa(base, true))
}

// TextPadded is Text, left-padded with zeros to at least width digits.
func (x Natural) TextPadded(base int, width int) string {
	s := x.Text(base)
	if len(s) >= width {
		return s
	}
	return string(bytes.Repeat([]byte{'0'}, width-len(s))) + s
}

// ParseNatural parses s as a natural number in the given base. s must be a
// non-empty run of digits with no sign, prefix or separators; digits above 9
// may be either case. The returned error wraps ErrSyntax or ErrBase.
func ParseNatural(s string, base int) (Natural, error) {
	z, err := nat(nil).setString(s, base)
	if err != nil {
		return Natural{}, fmt.Errorf("bignum: parse natural %q: %w", s, err)
	}
	return natural(z), nil
}

// MustParseNatural is like ParseNatural but panics if s cannot be parsed.
func MustParseNatural(s string, base int) Natural {
	x, err := ParseNatural(s, base)
	if err != nil {
		panic(fmt.Sprintf("MustParseNatural(%q) failed: %v", s, err))
	}
	return x
}

// Format implements fmt.Formatter. It accepts the verbs 'd', 's' and 'v'
// (decimal), 'b', 'o', 'O', 'x' and 'X', the '#' flag for base prefixes,
// precision as a minimum digit count, and width with the '-' and '0' flags.
func (x Natural) Format(s fmt.State, verb rune) {
	var xb [1]Limb
	formatInt(s, verb, false, x.view(&xb))
}

// formatInt writes a sign and magnitude to s in the style of the integer verbs
// of package fmt.
func formatInt(s fmt.State, verb rune, neg bool, mag nat) {
	var base int
	var prefix string
	alt := s.Flag('#')
	switch verb {
	case 'd', 's', 'v':
		base = 10
	case 'b':
		base = 2
		if alt {
			prefix = "0b"
		}
	case 'o':
		base = 8
		if alt {
			prefix = "0"
		}
	case 'O':
		base, prefix = 8, "0o"
	case 'x':
		base = 16
		if alt {
			prefix = "0x"
		}
	case 'X':
		base = 16
		if alt {
			prefix = "0X"
		}
	default:
		fmt.Fprintf(s, "%%!%c(bignum=%s)", verb, mag.itoa(10, false))
		return
	}

	var sign string
	switch {
	case neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	digits := mag.itoa(base, verb == 'X')
	var zeros int
	prec, hasPrec := s.Precision()
	if hasPrec {
		switch {
		case len(mag) == 0 && prec == 0:
			// An explicit zero precision prints nothing for zero.
			digits = digits[:0]
		case len(digits) < prec:
			zeros = prec - len(digits)
		}
	}

	n := len(sign) + len(prefix) + zeros + len(digits)
	var left, right int
	if w, ok := s.Width(); ok && w > n {
		pad := w - n
		switch {
		case s.Flag('-'):
			right = pad
		case s.Flag('0') && !hasPrec:
			zeros += pad
		default:
			left = pad
		}
	}

	buf := make([]byte, 0, n+left+right)
	buf = append(buf, bytes.Repeat([]byte{' '}, left)...)
	buf = append(buf, sign...)
	buf = append(buf, prefix...)
	buf = append(buf, bytes.Repeat([]byte{'0'}, zeros)...)
	buf = append(buf, digits...)
	buf = append(buf, bytes.Repeat([]byte{' '}, right)...)
	_, _ = s.Write(buf)
}
