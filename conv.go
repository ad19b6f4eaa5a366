package rational

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/joeycumines/go-utilpkg/jsonenc"
	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v4"
)

// ExtTypeID is the msgpack extension type used to encode [Rational] values.
const ExtTypeID int8 = 17

func init() {
	msgpack.RegisterExt(ExtTypeID, (*Rational)(nil))
}

// FromBigRat converts r to a Rational, copying it. A nil r is treated as
// zero.
func FromBigRat(r *big.Rat) Rational {
	if r == nil || r.Sign() == 0 {
		return Rational{}
	}
	return frac(new(big.Int).Set(r.Num()), new(big.Int).Set(r.Denom()))
}

// BigRat returns x as a new [math/big.Rat].
func (x Rational) BigRat() *big.Rat {
	num, den := x.parts()
	return new(big.Rat).SetFrac(num, den)
}

// FromDecimal converts d to a Rational, exactly.
func FromDecimal(d decimal.Decimal) Rational {
	coef := d.Coefficient()
	if coef.Sign() == 0 {
		return Rational{}
	}
	if exp := int(d.Exponent()); exp < 0 {
		return frac(coef, new(big.Int).Set(pow10(-exp)))
	} else if exp > 0 {
		coef.Mul(coef, pow10(exp))
	}
	return frac(coef, big.NewInt(1))
}

// Decimal returns x as a [decimal.Decimal], rounded half-to-even to the given
// number of decimal places (negative places round to the left of the
// decimal point, see [Rational.Round]).
func (x Rational) Decimal(places int32) decimal.Decimal {
	r := x.Round(int(places))
	num, den := r.canonical()
	if places <= 0 || den.Cmp(bigOne) == 0 {
		return decimal.NewFromBigInt(num, 0)
	}
	// the rounded den always divides 10**places
	coef := new(big.Int).Quo(pow10(int(places)), den)
	coef.Mul(coef, num)
	return decimal.NewFromBigInt(coef, -places)
}

// MarshalText implements [encoding.TextMarshaler], using [Rational.String].
func (x Rational) MarshalText() ([]byte, error) {
	return x.append(nil), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], using [Parse].
func (x *Rational) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON encodes x as a JSON string, in canonical form.
func (x Rational) MarshalJSON() ([]byte, error) {
	return jsonenc.AppendString(make([]byte, 0, 16), x.String()), nil
}

// UnmarshalJSON decodes a JSON string accepted by [Parse], or a JSON number
// that is an integer. JSON escapes within the string are decoded. Null is
// not accepted.
func (x *Rational) UnmarshalJSON(b []byte) error {
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		s := b[1 : len(b)-1]
		if bytes.IndexByte(s, '\\') == -1 {
			return x.UnmarshalText(s)
		}
		// escaped, e.g. "1\/2"
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return fmt.Errorf("%w: json: %s", ErrInvalidFormat, b)
		}
		return x.UnmarshalText([]byte(v))
	}
	if len(b) != 0 && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')) {
		if v, ok := new(big.Int).SetString(string(b), 10); ok {
			*x = FromInt(v)
			return nil
		}
	}
	return fmt.Errorf("%w: json: %s", ErrInvalidFormat, b)
}

// MarshalMsgpack implements the msgpack extension payload, which is the
// canonical text form.
func (x Rational) MarshalMsgpack() ([]byte, error) {
	return x.append(nil), nil
}

// UnmarshalMsgpack decodes the extension payload written by
// [Rational.MarshalMsgpack].
func (x *Rational) UnmarshalMsgpack(b []byte) error {
	return x.UnmarshalText(b)
}
