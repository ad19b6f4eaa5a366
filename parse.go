package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse parses s, which must be either an integer "n", or a fraction "n/d",
// where n and d are base 10 integers, each with an optional sign. The
// fraction need not be reduced, nor have a positive denominator.
//
// Any other shape results in [ErrInvalidFormat], and a zero denominator in
// [ErrDivisionByZero]. Both are wrapped, with the input quoted.
func Parse(s string) (Rational, error) {
	var num, den *big.Int
	switch parts := strings.Split(s, `/`); len(parts) {
	case 1:
		num = parseInt(parts[0])
		den = big.NewInt(1)
	case 2:
		num = parseInt(parts[0])
		den = parseInt(parts[1])
	}
	if num == nil || den == nil {
		return Rational{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	if den.Sign() == 0 {
		return Rational{}, fmt.Errorf("%w: %q", ErrDivisionByZero, s)
	}
	x := Rational{den: den}
	if num.Sign() != 0 {
		x.num = num
	}
	return x, nil
}

// MustParse is like [Parse], but panics on error.
func MustParse(s string) Rational {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

func parseInt(s string) *big.Int {
	// note: SetString (base 10) already rejects empty strings and whitespace
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil
	}
	return v
}
