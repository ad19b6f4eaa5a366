package rational

import (
	"fmt"
	"math/big"
	"unsafe"

	"golang.org/x/exp/slices"
)

// String formats x in canonical form, i.e. "n" if the denominator is 1,
// otherwise "n/d", with any sign on the numerator.
func (x Rational) String() string {
	b := x.append(nil)
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// AppendText implements [encoding.TextAppender], appending the same
// representation as [Rational.String].
func (x Rational) AppendText(b []byte) ([]byte, error) {
	return x.append(b), nil
}

func (x Rational) append(b []byte) []byte {
	num, den := x.canonical()
	b = num.Append(b, 10)
	if den.Cmp(bigOne) != 0 {
		b = append(b, '/')
		b = den.Append(b, 10)
	}
	return b
}

// FloatString formats x as a decimal number, with exactly prec digits after
// the decimal point, using half-to-even rounding. A prec <= 0 formats an
// integer, without a decimal point. Unlike [math/big.Rat.FloatString], a
// result that rounds to zero never carries a negative sign.
func (x Rational) FloatString(prec int) string {
	b := x.AppendFloat(nil, prec)
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// AppendFloat is the append variant of [Rational.FloatString].
func (x Rational) AppendFloat(b []byte, prec int) []byte {
	prec = max(prec, 0)

	num, den := x.canonical()

	// trivial case: integer value
	if den.Cmp(bigOne) == 0 {
		b = num.Append(b, 10)
		if prec > 0 {
			b = append(b, '.')
			b = appendZeros(b, prec)
		}
		return b
	}

	// x * 10**prec, rounded, has exactly the digits we need
	q := roundQuo(new(big.Int).Mul(num, pow10(prec)), den)

	if q.Sign() < 0 {
		b = append(b, '-')
		q.Neg(q)
	}

	// sign, digits, possibly leading zeros, and the decimal point
	b = slices.Grow(b, q.BitLen()/3+prec+3)

	start := len(b)
	b = q.Append(b, 10)
	if prec == 0 {
		return b
	}

	// pad with leading zeros, so there is at least one digit before the decimal point
	if digits := len(b) - start; digits <= prec {
		n := prec - digits + 1
		b = appendZeros(b, n)
		copy(b[start+n:], b[start:start+digits])
		for i := start; i < start+n; i++ {
			b[i] = '0'
		}
	}

	// insert the decimal point
	dec := len(b) - prec
	b = append(b, 0)
	copy(b[dec+1:], b[dec:])
	b[dec] = '.'

	return b
}

func appendZeros(b []byte, n int) []byte {
	for range n {
		b = append(b, '0')
	}
	return b
}

// Format implements [fmt.Formatter]. The verbs v, s and q use the canonical
// form, per [Rational.String], while f formats a decimal number, per
// [Rational.FloatString], using a default precision of 6. Width is
// supported for all verbs, and flags other than '-' are ignored for f.
func (x Rational) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'q':
		_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), x.String())
	case 'f', 'F':
		prec, ok := s.Precision()
		if !ok {
			prec = 6
		}
		b := x.AppendFloat(nil, prec)
		if width, ok := s.Width(); ok && width > len(b) {
			pad := make([]byte, width-len(b))
			for i := range pad {
				pad[i] = ' '
			}
			if s.Flag('-') {
				b = append(b, pad...)
			} else {
				b = append(pad, b...)
			}
		}
		_, _ = s.Write(b)
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(rational.Rational=%s)", verb, x.String())
	}
}
