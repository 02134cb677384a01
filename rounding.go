package bignum

import "fmt"

// RoundingMode selects how an inexact quotient or shift is rounded.
type RoundingMode uint8

const (
	// RoundDown rounds towards zero.
	RoundDown RoundingMode = iota

	// RoundUp rounds away from zero.
	RoundUp

	// RoundFloor rounds towards negative infinity.
	RoundFloor

	// RoundCeiling rounds towards positive infinity.
	RoundCeiling

	// RoundNearest rounds to the nearest value, ties to even.
	RoundNearest

	// RoundExact panics if the result is not exact.
	RoundExact
)

func (m RoundingMode) String() string {
	switch m {
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	case RoundFloor:
		return "floor"
	case RoundCeiling:
		return "ceiling"
	case RoundNearest:
		return "nearest"
	case RoundExact:
		return "exact"
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// Ordering reports how a rounded result compares with the exact value it
// stands for: Less if the result is smaller, Greater if larger.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return fmt.Sprintf("Ordering(%d)", int8(o))
}

// roundUpMagnitude decides whether a truncated non-negative magnitude must be
// bumped by one. half and sticky describe the discarded part: half is its
// leading bit (or whether it is at least one half), sticky whether anything
// below that is non-zero. neg is the sign of the exact value, so floor and
// ceiling can be expressed on magnitudes.
func roundUpMagnitude(mode RoundingMode, neg, odd, half, sticky bool) bool {
	if !half && !sticky {
		return false
	}
	switch mode {
	case RoundDown:
		return false
	case RoundUp:
		return true
	case RoundFloor:
		return neg
	case RoundCeiling:
		return !neg
	case RoundNearest:
		return half && (sticky || odd)
	case RoundExact:
		panic(errInexact)
	}
	panic(fmt.Sprintf("bignum: unknown rounding mode %d", mode))
}
