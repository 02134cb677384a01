package bignum

import (
	"errors"
)

var (
	// ErrSyntax is returned (wrapped) when a digit string is empty or contains
	// a character that is not a digit in the requested base.
	ErrSyntax = errors.New("bignum: invalid syntax")

	// ErrBase is returned (wrapped) when a base outside [MinBase, MaxBase] is
	// requested.
	ErrBase = errors.New("bignum: base out of range")
)
