package rational

import (
	"math/big"
)

type (
	// Range is an inclusive interval, [Low, High].
	Range struct {
		Low, High Rational
	}
)

// Cmp compares x and y, returning -1 if x < y, 0 if x == y, and +1 if x > y.
// It is exact, being the sign of (a*d - c*b), with the signs of both
// denominators accounted for.
func (x Rational) Cmp(y Rational) int {
	a, b := x.parts()
	c, d := y.parts()
	v := new(big.Int).Mul(a, d).Cmp(new(big.Int).Mul(c, b))
	if b.Sign() != d.Sign() {
		v = -v
	}
	return v
}

// Equal reports whether x and y have identical canonical forms.
func (x Rational) Equal(y Rational) bool {
	a, b := x.canonical()
	c, d := y.canonical()
	return a.Cmp(c) == 0 && b.Cmp(d) == 0
}

// Less reports whether x < y.
func (x Rational) Less(y Rational) bool { return x.Cmp(y) < 0 }

// LessOrEqual reports whether x <= y.
func (x Rational) LessOrEqual(y Rational) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x Rational) Greater(y Rational) bool { return x.Cmp(y) > 0 }

// GreaterOrEqual reports whether x >= y.
func (x Rational) GreaterOrEqual(y Rational) bool { return x.Cmp(y) >= 0 }

// RangeTo returns the inclusive range [x, high].
func (x Rational) RangeTo(high Rational) Range {
	return Range{Low: x, High: high}
}

// In reports whether low <= x <= high.
func (x Rational) In(low, high Rational) bool {
	return Range{Low: low, High: high}.Contains(x)
}

// Contains reports whether Low <= v <= High. An empty range (Low > High)
// contains nothing.
func (x Range) Contains(v Rational) bool {
	return x.Low.LessOrEqual(v) && v.LessOrEqual(x.High)
}

// IsEmpty reports whether Low > High.
func (x Range) IsEmpty() bool {
	return x.Low.Greater(x.High)
}

// String formats the range as "low..high".
func (x Range) String() string {
	return x.Low.String() + `..` + x.High.String()
}
