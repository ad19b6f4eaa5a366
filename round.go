package rational

import (
	"math/big"
)

// Round returns x rounded to prec decimal places, using half-to-even
// rounding. Negative values for prec are allowed, and indicate the number of
// places to the left of the decimal point, e.g. Round(-2) of 512.34 is 500.
func (x Rational) Round(prec int) Rational {
	num, den := x.canonical()

	// trivial cases: unchanged
	if num.Sign() == 0 || (prec >= 0 && den.Cmp(bigOne) == 0) {
		return x
	}

	if prec >= 0 {
		// x * 10**prec, rounded, over 10**prec
		q := roundQuo(new(big.Int).Mul(num, pow10(prec)), den)
		return frac(q, new(big.Int).Set(pow10(prec)))
	}

	// x / 10**-prec, rounded, times 10**-prec
	scl := pow10(-prec)
	q := roundQuo(num, new(big.Int).Mul(den, scl))
	return frac(q.Mul(q, scl), big.NewInt(1))
}

// roundQuo returns n/d rounded to the nearest integer, with ties going to
// the even neighbour. The d must be positive. The result is a new value.
func roundQuo(n, d *big.Int) *big.Int {
	var r big.Int
	q, _ := new(big.Int).QuoRem(n, d, &r) // truncated, r has the sign of n
	if r.Sign() == 0 {
		return q
	}

	// compare the magnitude of the remainder against half the divisor
	r.Abs(&r)
	r.Lsh(&r, 1)
	if cmp := r.Cmp(d); cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
		if n.Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}

	return q
}
