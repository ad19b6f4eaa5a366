// Package rational implements exact, arbitrary-precision fractions.
//
// A [Rational] is an immutable numerator and denominator pair, backed by
// [math/big.Int]. Values behave as if they were always in canonical form,
// i.e. reduced by their greatest common divisor, with a positive
// denominator, though the stored pair is only reduced on demand. Equality
// and ordering are exact, using cross-multiplication, and never go through
// floating point.
//
// Values may be copied and shared freely, including between goroutines, as
// no operation mutates its operands.
//
// Also provided are lossless text, JSON and msgpack encodings, half-to-even
// decimal rounding, and conversions to and from [math/big.Rat] and
// [github.com/shopspring/decimal.Decimal].
package rational
