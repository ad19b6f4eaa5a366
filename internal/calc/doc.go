// Package calc implements a small statement language over exact rationals,
// used by the ratcalc command.
//
// Each statement is a single line:
//
//	stmt    := 'let' IDENT '=' expr | test
//	test    := expr [ CMP expr | 'in' expr '..' expr ]
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := '-' unary | primary
//	primary := LITERAL | IDENT | '(' expr ')'
//
// A LITERAL is an integer or fraction without whitespace, e.g. "-2/4", which
// is a single value, while "-2 / 4" is an expression. Comparisons (CMP is one
// of ==, !=, <, <=, >, >=) and range tests evaluate to booleans, everything
// else evaluates to a rational.
package calc
