package rational

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func nr(t interface {
	Fatal(args ...any)
}, num, den int64) Rational {
	if t, ok := t.(interface{ Helper() }); ok {
		t.Helper()
	}
	x, err := NewInt64(num, den)
	if err != nil {
		t.Fatal(err)
	}
	return x
}

func bi(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(`unable to parse big.Int from string: ` + s)
	}
	return v
}

func TestNew_zeroDenominator(t *testing.T) {
	for _, tt := range [...]struct {
		name string
		num  *big.Int
		den  *big.Int
	}{
		{"zero", big.NewInt(1), big.NewInt(0)},
		{"nil", big.NewInt(1), nil},
		{"both zero", big.NewInt(0), big.NewInt(0)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.num, tt.den); !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("New() error = %v, want %v", err, ErrDivisionByZero)
			}
		})
	}
	if _, err := NewInt64(5, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Error(err)
	}
	if _, err := FromInts[uint8](5, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Error(err)
	}
}

func TestNew_copiesInputs(t *testing.T) {
	num, den := big.NewInt(3), big.NewInt(4)
	x := MustNew(num, den)
	num.SetInt64(100)
	den.SetInt64(-7)
	if s := x.String(); s != `3/4` {
		t.Fatal(s)
	}
	// mutating accessor results must not affect the value
	x.Num().SetInt64(9)
	x.Denom().SetInt64(9)
	if s := x.String(); s != `3/4` {
		t.Fatal(s)
	}
}

func TestMustNew_panics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrDivisionByZero {
			t.Errorf("recover() = %v", r)
		}
	}()
	MustNew(big.NewInt(1), big.NewInt(0))
	t.Error(`expected panic`)
}

func TestRational_zeroValue(t *testing.T) {
	var x Rational
	if s := x.String(); s != `0` {
		t.Error(s)
	}
	if !x.IsZero() || !x.IsInt() || x.Sign() != 0 {
		t.Error(x)
	}
	if !x.Equal(nr(t, 0, -5)) {
		t.Error(`zero value should equal 0/-5`)
	}
	if x.Num().Sign() != 0 || x.Denom().Cmp(big.NewInt(1)) != 0 {
		t.Error(x.Num(), x.Denom())
	}
}

func TestRational_canonicalForm(t *testing.T) {
	for _, tt := range [...]struct {
		num, den int64
		want     string
		wantNum  int64
		wantDen  int64
	}{
		{-2, 4, `-1/2`, -1, 2},
		{2, 1, `2`, 2, 1},
		{2, 4, `1/2`, 1, 2},
		{2, -4, `-1/2`, -1, 2},
		{-2, -4, `1/2`, 1, 2},
		{0, -9, `0`, 0, 1},
		{6, 3, `2`, 2, 1},
		{-6, 3, `-2`, -2, 1},
		{6, -3, `-2`, -2, 1},
		{117, 1098, `13/122`, 13, 122},
		{math.MinInt64, -1, `9223372036854775808`, 0, 0},
	} {
		x := nr(t, tt.num, tt.den)
		if got := x.String(); got != tt.want {
			t.Errorf("NewInt64(%d, %d).String() = %q, want %q", tt.num, tt.den, got, tt.want)
		}
		if tt.wantDen == 0 {
			continue // doesn't fit in an int64
		}
		if x.Num().Int64() != tt.wantNum || x.Denom().Int64() != tt.wantDen {
			t.Errorf("NewInt64(%d, %d) = %s/%s", tt.num, tt.den, x.Num(), x.Denom())
		}
	}
}

func TestFromInts(t *testing.T) {
	if x, err := FromInts(int8(-4), int8(6)); err != nil || x.String() != `-2/3` {
		t.Error(x, err)
	}
	if x, err := FromInts(uint64(math.MaxUint64), uint64(3)); err != nil || x.String() != `6148914691236517205` {
		t.Error(x, err)
	}
	if x, err := FromInts(2000000000, 4000000000); err != nil || !x.Equal(nr(t, 1, 2)) {
		t.Error(x, err)
	}
	if x, err := FromInts(int64(2000000000), int64(4000000000)); err != nil || !x.Equal(nr(t, 1, 2)) {
		t.Error(x, err)
	}
}

func TestFromInt(t *testing.T) {
	v := big.NewInt(-12)
	x := FromInt(v)
	v.SetInt64(1)
	if x.String() != `-12` || !x.IsInt() {
		t.Error(x)
	}
	if !FromInt(nil).IsZero() {
		t.Error(`nil should be zero`)
	}
	if s := FromInt64(7).String(); s != `7` {
		t.Error(s)
	}
}

func TestRational_largeIntegers(t *testing.T) {
	x := MustNew(
		bi(`912016490186296920119201192141970416029`),
		bi(`1824032980372593840238402384283940832058`),
	)
	if !x.Equal(nr(t, 1, 2)) {
		t.Errorf("expected 1/2, got %s", x)
	}
	if x.Cmp(nr(t, 1, 2)) != 0 {
		t.Error(x.Cmp(nr(t, 1, 2)))
	}
	// values that would be equal as float64, but are not
	a := MustNew(bi(`9007199254740993`), big.NewInt(1))
	b := MustNew(bi(`9007199254740992`), big.NewInt(1))
	if a.Equal(b) || a.Cmp(b) != 1 {
		t.Error(`expected exact comparison`)
	}
}

func TestRational_arithmetic(t *testing.T) {
	half, third := nr(t, 1, 2), nr(t, 1, 3)
	for _, tt := range [...]struct {
		name string
		got  Rational
		want Rational
	}{
		{"add", half.Add(third), nr(t, 5, 6)},
		{"sub", half.Sub(third), nr(t, 1, 6)},
		{"mul", half.Mul(third), nr(t, 1, 6)},
		{"neg", half.Neg(), nr(t, -1, 2)},
		{"neg neg", half.Neg().Neg(), half},
		{"neg zero", Rational{}.Neg(), Rational{}},
		{"sub to zero", half.Sub(nr(t, 2, 4)), Rational{}},
		{"add negative denominators", nr(t, 1, -2).Add(nr(t, 1, -3)), nr(t, -5, 6)},
		{"abs", nr(t, 3, -4).Abs(), nr(t, 3, 4)},
		{"abs positive", nr(t, 3, 4).Abs(), nr(t, 3, 4)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}

	quotient, err := half.Quo(third)
	if err != nil || !quotient.Equal(nr(t, 3, 2)) {
		t.Error(quotient, err)
	}

	if _, err := half.Quo(nr(t, 0, 5)); !errors.Is(err, ErrDivisionByZero) {
		t.Error(err)
	}
	if _, err := (Rational{}).Inv(); !errors.Is(err, ErrDivisionByZero) {
		t.Error(err)
	}
	if inv, err := nr(t, -2, 3).Inv(); err != nil || inv.String() != `-3/2` {
		t.Error(inv, err)
	}
}

func TestRational_operandsUnchanged(t *testing.T) {
	x, y := nr(t, 2, 4), nr(t, -3, 9)
	_ = x.Add(y)
	_ = x.Sub(y)
	_ = x.Mul(y)
	_, _ = x.Quo(y)
	_ = x.Neg()
	_, _ = y.Inv()
	_ = x.Round(0)
	_ = x.Cmp(y)
	_ = x.String()
	if x.num.Int64() != 2 || x.den.Int64() != 4 || y.num.Int64() != -3 || y.den.Int64() != 9 {
		t.Errorf("operands mutated: %s/%s %s/%s", x.num, x.den, y.num, y.den)
	}
}

func TestRational_properties(t *testing.T) {
	values := []Rational{
		{},
		nr(t, 1, 2),
		nr(t, -2, 4),
		nr(t, 7, -3),
		nr(t, 117, 1098),
		nr(t, math.MaxInt64, math.MinInt64),
		MustNew(bi(`912016490186296920119201192141970416029`), bi(`-1824032980372593840238402383`)),
	}
	one := nr(t, 1, 1)
	for _, x := range values {
		if v := MustParse(x.String()); !v.Equal(x) {
			t.Errorf("round trip %s: got %s", x, v)
		}
		if v := x.Add(Rational{}); !v.Equal(x) {
			t.Errorf("additive identity %s: got %s", x, v)
		}
		if !x.IsZero() {
			inv := MustNew(x.Denom(), x.Num())
			if v := x.Mul(inv); !v.Equal(one) {
				t.Errorf("multiplicative inverse %s: got %s", x, v)
			}
		}
		for _, y := range values {
			if a, b := x.Add(y), y.Add(x); !a.Equal(b) {
				t.Errorf("add commutativity %s %s: %s != %s", x, y, a, b)
			}
			if a, b := x.Mul(y), y.Mul(x); !a.Equal(b) {
				t.Errorf("mul commutativity %s %s: %s != %s", x, y, a, b)
			}
			if a, b := x.Cmp(y), y.Cmp(x); a != -b {
				t.Errorf("cmp antisymmetry %s %s: %d %d", x, y, a, b)
			}
			if want := x.BigRat().Cmp(y.BigRat()); x.Cmp(y) != want {
				t.Errorf("cmp %s %s: got %d want %d", x, y, x.Cmp(y), want)
			}
		}
	}
}

func TestRational_IsInt(t *testing.T) {
	for _, tt := range [...]struct {
		x    Rational
		want bool
	}{
		{Rational{}, true},
		{nr(t, 4, 2), true},
		{nr(t, -4, -2), true},
		{nr(t, 1, 2), false},
		{nr(t, 1, 2).Add(nr(t, 1, 2)), true},
		{nr(t, 1, 3).Add(nr(t, 1, 2)), false},
	} {
		if got := tt.x.IsInt(); got != tt.want {
			t.Errorf("%s.IsInt() = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestGcd(t *testing.T) {
	for _, tt := range [...]struct {
		x, y, want int64
	}{
		{12, 8, 4},
		{8, 12, 4},
		{-12, 8, 4},
		{12, -8, 4},
		{7, 0, 7},
		{0, 7, 7},
		{17, 5, 1},
		{117, 1098, 9},
	} {
		if got := gcd(big.NewInt(tt.x), big.NewInt(tt.y)); got.Int64() != tt.want {
			t.Errorf("gcd(%d, %d) = %s, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}
