package calc

import (
	"strconv"

	"github.com/joeycumines/rational"
	"github.com/joeycumines/rational/internal/config"
)

// Kind identifies the type of a Value.
type Kind uint8

const (
	// KindNone is the zero Value, e.g. the result of an empty statement.
	KindNone Kind = iota
	KindRational
	KindBool
)

// Value is the result of evaluating a statement, either a rational or a
// boolean.
type Value struct {
	rat  rational.Rational
	kind Kind
	b    bool
}

// RationalValue returns a Value of KindRational.
func RationalValue(x rational.Rational) Value {
	return Value{kind: KindRational, rat: x}
}

// BoolValue returns a Value of KindBool.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func (v Value) Kind() Kind { return v.kind }

// Rational returns the value, and true, if the kind is KindRational.
func (v Value) Rational() (rational.Rational, bool) {
	return v.rat, v.kind == KindRational
}

// Bool returns the value, and true, if the kind is KindBool.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// String formats rationals in canonical form, and booleans as "true" or
// "false". The zero Value formats as an empty string.
func (v Value) String() string {
	switch v.kind {
	case KindRational:
		return v.rat.String()
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ``
}

// Format renders the value for display. Only rationals are affected by the
// format, where config.FormatBoth renders the fraction, then the decimal
// (with prec places) in parentheses, unless the value is an integer.
func (v Value) Format(format config.Format, prec int) string {
	if v.kind != KindRational {
		return v.String()
	}
	switch format {
	case config.FormatDecimal:
		return v.rat.FloatString(prec)
	case config.FormatBoth:
		if v.rat.IsInt() {
			return v.rat.String()
		}
		return v.rat.String() + ` (` + v.rat.FloatString(prec) + `)`
	}
	return v.rat.String()
}
