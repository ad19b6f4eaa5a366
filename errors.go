package rational

import (
	"errors"
)

var (
	// ErrDivisionByZero indicates a zero denominator, either at construction
	// (including parsing), or as the divisor of [Rational.Quo] or
	// [Rational.Inv].
	ErrDivisionByZero = errors.New(`rational: division by zero`)

	// ErrInvalidFormat indicates text that is neither an integer, nor two
	// integers separated by a single "/".
	ErrInvalidFormat = errors.New(`rational: invalid format`)
)
