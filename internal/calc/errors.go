package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by Session.Eval for blank lines and comments.
	ErrEmpty = errors.New(`calc: empty statement`)
	// ErrSyntax is wrapped by every SyntaxError.
	ErrSyntax = errors.New(`calc: syntax error`)
	// ErrUndefined indicates a reference to an unbound variable.
	ErrUndefined = errors.New(`calc: undefined variable`)
	// ErrInvalidName indicates a variable name that is not an identifier, or is a keyword.
	ErrInvalidName = errors.New(`calc: invalid variable name`)
)

// SyntaxError describes a statement that could not be tokenized or parsed.
type SyntaxError struct {
	// Pos is the byte offset into the statement.
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", ErrSyntax.Error(), e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

func syntaxErrorf(pos int, format string, args ...any) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
