package rational

import (
	"math/big"
)

// gcd returns the greatest common divisor of abs(x) and abs(y), using the
// Euclidean algorithm, i.e. gcd(x, 0) = x, gcd(x, y) = gcd(y, x mod y).
// The result is always a new value.
func gcd(x, y *big.Int) *big.Int {
	a := new(big.Int).Abs(x)
	b := new(big.Int).Abs(y)
	for b.Sign() != 0 {
		a.Rem(a, b)
		a, b = b, a
	}
	return a
}

// canonicalize reduces num/den in place, dividing both by their gcd, then
// moving any sign to the numerator. The den must not be zero.
func canonicalize(num, den *big.Int) {
	if num.Sign() == 0 {
		den.SetInt64(1)
		return
	}
	if g := gcd(num, den); g.Cmp(bigOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
}
