package rational

import (
	"math/big"
)

const unitsNanosDecimals = 9

// FromUnitsNanos converts a pair of units and nanos (before and after the
// decimal point, respectively) to a Rational, or returns false if nanos are
// not in the range [-999999999, 999999999], or the signs of the non-zero
// units and nanos do not match.
//
// The pair is the representation used by the google.type.Money message.
func FromUnitsNanos(units int64, nanos int32) (Rational, bool) {
	if nanos <= -1e9 || nanos >= 1e9 ||
		(units > 0 && nanos < 0) ||
		(units < 0 && nanos > 0) {
		return Rational{}, false
	}
	if nanos == 0 {
		return FromInt64(units), true
	}
	num := big.NewInt(units)
	num.Mul(num, pow10(unitsNanosDecimals))
	num.Add(num, big.NewInt(int64(nanos)))
	return frac(num, new(big.Int).Set(pow10(unitsNanosDecimals))), true
}

// UnitsNanos converts x to a pair of units and nanos, see [FromUnitsNanos],
// rounding half-to-even to 9 decimal places. The signs of the units and
// nanos always match, unless either is zero. If the units do not fit in an
// int64, false is returned.
func (x Rational) UnitsNanos() (units int64, nanos int32, ok bool) {
	num, den := x.Round(unitsNanosDecimals).canonical()

	// the rounded den always divides 10**9
	scaled := new(big.Int).Quo(pow10(unitsNanosDecimals), den)
	scaled.Mul(scaled, num)

	u, n := scaled.QuoRem(scaled, pow10(unitsNanosDecimals), new(big.Int))
	if !u.IsInt64() {
		return 0, 0, false
	}

	return u.Int64(), int32(n.Int64()), true
}
