package rational

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

type (
	// Rational is an exact fraction, with arbitrary-precision numerator and
	// denominator. The zero value is valid, and equal to 0/1.
	//
	// The stored pair is not necessarily reduced, see [Rational.Num] and
	// [Rational.Denom] for the canonical parts.
	Rational struct {
		num *big.Int // nil is 0
		den *big.Int // nil is 1, never zero
		// norm indicates num/den are already canonical
		norm bool
	}
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// New returns num/den, copying both values. A nil num or den is treated as
// zero. The fraction is not reduced (it behaves as if it were).
// If den is zero, [ErrDivisionByZero] is returned.
func New(num, den *big.Int) (Rational, error) {
	if den == nil || den.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	var x Rational
	if num != nil && num.Sign() != 0 {
		x.num = new(big.Int).Set(num)
	}
	x.den = new(big.Int).Set(den)
	return x, nil
}

// MustNew is like [New], but panics on error.
func MustNew(num, den *big.Int) Rational {
	x, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// NewInt64 returns num/den, or [ErrDivisionByZero] if den is zero.
func NewInt64(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return Rational{num: big.NewInt(num), den: big.NewInt(den)}, nil
}

// FromInts returns num/den, for any integer type, or [ErrDivisionByZero] if
// den is zero.
func FromInts[T constraints.Integer](num, den T) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return Rational{num: bigFromInt(num), den: bigFromInt(den)}, nil
}

func bigFromInt[T constraints.Integer](v T) *big.Int {
	if v < 0 {
		return big.NewInt(int64(v))
	}
	// note: avoids overflow for uint64 values > math.MaxInt64
	return new(big.Int).SetUint64(uint64(v))
}

// FromInt returns v/1, copying v. A nil v is treated as zero.
func FromInt(v *big.Int) Rational {
	if v == nil || v.Sign() == 0 {
		return Rational{}
	}
	return Rational{num: new(big.Int).Set(v), norm: true}
}

// FromInt64 returns v/1.
func FromInt64(v int64) Rational {
	if v == 0 {
		return Rational{}
	}
	return Rational{num: big.NewInt(v), norm: true}
}

// frac takes ownership of num and den, which must be freshly allocated, and
// reduces them in place. The den must not be zero.
func frac(num, den *big.Int) Rational {
	if num.Sign() == 0 {
		return Rational{}
	}
	canonicalize(num, den)
	if den.Cmp(bigOne) == 0 {
		den = nil
	}
	return Rational{num: num, den: den, norm: true}
}

// parts returns the stored (possibly unreduced) numerator and denominator,
// neither of which may be mutated.
func (x Rational) parts() (num, den *big.Int) {
	num, den = x.num, x.den
	if num == nil {
		num = bigZero
	}
	if den == nil {
		den = bigOne
	}
	return
}

// canonical returns the reduced parts, neither of which may be mutated.
func (x Rational) canonical() (num, den *big.Int) {
	num, den = x.parts()
	if x.norm {
		return
	}
	if num.Sign() == 0 {
		return bigZero, bigOne
	}
	num, den = new(big.Int).Set(num), new(big.Int).Set(den)
	canonicalize(num, den)
	return
}

// Num returns a copy of the numerator of x, in canonical form. The sign of
// the result is the sign of x.
func (x Rational) Num() *big.Int {
	num, _ := x.canonical()
	return new(big.Int).Set(num)
}

// Denom returns a copy of the denominator of x, in canonical form. The
// result is always positive.
func (x Rational) Denom() *big.Int {
	_, den := x.canonical()
	return new(big.Int).Set(den)
}

// Sign returns -1, 0 or +1, for negative, zero and positive values of x.
func (x Rational) Sign() int {
	num, den := x.parts()
	return num.Sign() * den.Sign()
}

// IsZero reports whether x == 0.
func (x Rational) IsZero() bool {
	return x.num == nil || x.num.Sign() == 0
}

// IsInt reports whether the canonical denominator of x is 1.
func (x Rational) IsInt() bool {
	num, den := x.parts()
	if x.norm {
		return den.Cmp(bigOne) == 0
	}
	return new(big.Int).Rem(num, den).Sign() == 0
}
