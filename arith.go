package rational

import (
	"math/big"
)

// Add returns x + y, i.e. (a*d + c*b) / (b*d).
func (x Rational) Add(y Rational) Rational {
	a, b := x.parts()
	c, d := y.parts()
	num := new(big.Int).Mul(a, d)
	num.Add(num, new(big.Int).Mul(c, b))
	return frac(num, new(big.Int).Mul(b, d))
}

// Sub returns x - y, i.e. (a*d - c*b) / (b*d).
func (x Rational) Sub(y Rational) Rational {
	a, b := x.parts()
	c, d := y.parts()
	num := new(big.Int).Mul(a, d)
	num.Sub(num, new(big.Int).Mul(c, b))
	return frac(num, new(big.Int).Mul(b, d))
}

// Mul returns x * y, i.e. (a*c) / (b*d).
func (x Rational) Mul(y Rational) Rational {
	a, b := x.parts()
	c, d := y.parts()
	return frac(new(big.Int).Mul(a, c), new(big.Int).Mul(b, d))
}

// Quo returns x / y, i.e. (a*d) / (b*c), or [ErrDivisionByZero] if y is
// zero.
func (x Rational) Quo(y Rational) (Rational, error) {
	a, b := x.parts()
	c, d := y.parts()
	if c.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return frac(new(big.Int).Mul(a, d), new(big.Int).Mul(b, c)), nil
}

// Neg returns -x.
func (x Rational) Neg() Rational {
	if x.IsZero() {
		return Rational{}
	}
	num, _ := x.parts()
	x.num = new(big.Int).Neg(num)
	return x
}

// Abs returns |x|.
func (x Rational) Abs() Rational {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x
}

// Inv returns 1/x, or [ErrDivisionByZero] if x is zero.
func (x Rational) Inv() (Rational, error) {
	if x.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	num, den := x.parts()
	return frac(new(big.Int).Set(den), new(big.Int).Set(num)), nil
}
