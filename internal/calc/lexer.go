package calc

import (
	"fmt"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokLiteral
	tokIdent
	tokLet
	tokIn
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokAssign
	tokEq
	tokNe
	tokLt
	tokLe
	tokGt
	tokGe
	tokRange
)

var tokenNames = [...]string{
	tokEOF:     `end of statement`,
	tokLiteral: `literal`,
	tokIdent:   `identifier`,
	tokLet:     `let`,
	tokIn:      `in`,
	tokPlus:    `+`,
	tokMinus:   `-`,
	tokStar:    `*`,
	tokSlash:   `/`,
	tokLParen:  `(`,
	tokRParen:  `)`,
	tokAssign:  `=`,
	tokEq:      `==`,
	tokNe:      `!=`,
	tokLt:      `<`,
	tokLe:      `<=`,
	tokGt:      `>`,
	tokGe:      `>=`,
	tokRange:   `..`,
}

// Keywords are the reserved words of the language, which may not be used as
// variable names.
var Keywords = [...]string{`let`, `in`}

type token struct {
	kind tokenKind
	pos  int
	text string
}

func (x tokenKind) String() string {
	if int(x) < len(tokenNames) {
		return tokenNames[x]
	}
	return fmt.Sprintf("tokenKind(%d)", x)
}

func (x token) String() string {
	switch x.kind {
	case tokLiteral, tokIdent:
		return fmt.Sprintf("%s %q", x.kind, x.text)
	default:
		return fmt.Sprintf("%q", x.kind.String())
	}
}

// operandEnd reports whether the token may end an operand, in which case
// a following sign is a binary operator, rather than part of a literal.
func (x tokenKind) operandEnd() bool {
	return x == tokLiteral || x == tokIdent || x == tokRParen
}

// tokenize splits a statement into tokens, always terminated by tokEOF.
func tokenize(s string) ([]token, error) {
	var (
		tokens []token
		i      int
	)
	operand := func() bool {
		return len(tokens) == 0 || !tokens[len(tokens)-1].kind.operandEnd()
	}
	emit := func(kind tokenKind, start, end int) {
		tokens = append(tokens, token{kind: kind, pos: start, text: s[start:end]})
		i = end
	}
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++

		case isDigit(c) || ((c == '+' || c == '-') && operand() && i+1 < len(s) && isDigit(s[i+1])):
			emit(tokLiteral, i, scanLiteral(s, i))

		case isIdentStart(c):
			end := i + 1
			for end < len(s) && isIdentPart(s[end]) {
				end++
			}
			kind := tokIdent
			switch s[i:end] {
			case `let`:
				kind = tokLet
			case `in`:
				kind = tokIn
			}
			emit(kind, i, end)

		default:
			kind, n := scanPunct(s[i:])
			if n == 0 {
				return nil, syntaxErrorf(i, "unexpected character %q", s[i])
			}
			emit(kind, i, i+n)
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(s)})
	return tokens, nil
}

// scanLiteral returns the end of the literal starting at i, matching
// [+-]?digits(/[+-]?digits)?
func scanLiteral(s string, i int) int {
	digits := func(i int) int {
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return -1
		}
		return i
	}
	end := digits(i)
	if end < len(s) && s[end] == '/' {
		if den := digits(end + 1); den != -1 {
			end = den
		}
	}
	return end
}

func scanPunct(s string) (tokenKind, int) {
	if len(s) >= 2 {
		switch s[:2] {
		case `==`:
			return tokEq, 2
		case `!=`:
			return tokNe, 2
		case `<=`:
			return tokLe, 2
		case `>=`:
			return tokGe, 2
		case `..`:
			return tokRange, 2
		}
	}
	switch s[0] {
	case '+':
		return tokPlus, 1
	case '-':
		return tokMinus, 1
	case '*':
		return tokStar, 1
	case '/':
		return tokSlash, 1
	case '(':
		return tokLParen, 1
	case ')':
		return tokRParen, 1
	case '=':
		return tokAssign, 1
	case '<':
		return tokLt, 1
	case '>':
		return tokGt, 1
	}
	return tokEOF, 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }

// ValidName reports whether name may be bound as a variable.
func ValidName(name string) bool {
	if name == `` || !isIdentStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isIdentPart(name[i]) {
			return false
		}
	}
	for _, k := range Keywords {
		if name == k {
			return false
		}
	}
	return true
}
