package calc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/rational"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// Session evaluates statements, holding the variables bound by `let`.
	// It is not safe for concurrent use.
	Session struct {
		logger *logiface.Logger[logiface.Event]
		vars   map[string]rational.Rational
	}

	// Option configures a Session, see New.
	Option interface {
		applySession(*sessionOptions) error
	}

	sessionOptions struct {
		logger *logiface.Logger[logiface.Event]
		vars   map[string]rational.Rational
	}

	sessionOptionImpl struct {
		applySessionFunc func(*sessionOptions) error
	}
)

func (x *sessionOptionImpl) applySession(opts *sessionOptions) error {
	return x.applySessionFunc(opts)
}

// WithLogger sets the logger, which may be nil (the default), to disable
// logging.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &sessionOptionImpl{func(opts *sessionOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithVariables binds the given variables, in addition to any bound by
// previous options. Each name must satisfy ValidName.
func WithVariables(vars map[string]rational.Rational) Option {
	return &sessionOptionImpl{func(opts *sessionOptions) error {
		for name, val := range vars {
			if !ValidName(name) {
				return fmt.Errorf("%w: %q", ErrInvalidName, name)
			}
			opts.vars[name] = val
		}
		return nil
	}}
}

// New initializes a Session, with no variables bound, unless configured
// by WithVariables.
func New(opts ...Option) (*Session, error) {
	cfg := sessionOptions{vars: make(map[string]rational.Rational)}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applySession(&cfg); err != nil {
			return nil, err
		}
	}
	return &Session{logger: cfg.logger, vars: cfg.vars}, nil
}

// Eval evaluates a single statement. Blank lines, and lines starting with
// '#', return ErrEmpty.
func (x *Session) Eval(line string) (Value, error) {
	v, err := x.eval(line)
	switch {
	case err == nil:
		x.logger.Debug().
			Str(`line`, line).
			Str(`result`, v.String()).
			Log(`evaluated`)
	case !errors.Is(err, ErrEmpty):
		x.logger.Warning().
			Str(`line`, line).
			Err(err).
			Log(`evaluation failed`)
	}
	return v, err
}

func (x *Session) eval(line string) (Value, error) {
	if s := strings.TrimSpace(line); s == `` || s[0] == '#' {
		return Value{}, ErrEmpty
	}

	st, err := parse(line)
	if err != nil {
		return Value{}, err
	}

	switch st := st.(type) {
	case letStmt:
		val, err := x.evalExpr(st.x)
		if err != nil {
			return Value{}, err
		}
		x.vars[st.name] = val
		return RationalValue(val), nil

	case exprStmt:
		val, err := x.evalExpr(st.x)
		if err != nil {
			return Value{}, err
		}
		return RationalValue(val), nil

	case cmpStmt:
		a, err := x.evalExpr(st.x)
		if err != nil {
			return Value{}, err
		}
		b, err := x.evalExpr(st.y)
		if err != nil {
			return Value{}, err
		}
		var result bool
		switch st.op {
		case tokEq:
			result = a.Equal(b)
		case tokNe:
			result = !a.Equal(b)
		case tokLt:
			result = a.Less(b)
		case tokLe:
			result = a.LessOrEqual(b)
		case tokGt:
			result = a.Greater(b)
		case tokGe:
			result = a.GreaterOrEqual(b)
		default:
			panic(fmt.Errorf(`calc: unexpected comparison: %s`, st.op))
		}
		return BoolValue(result), nil

	case inStmt:
		var vals [3]rational.Rational
		for i, e := range [...]expr{st.x, st.low, st.high} {
			if vals[i], err = x.evalExpr(e); err != nil {
				return Value{}, err
			}
		}
		return BoolValue(vals[0].In(vals[1], vals[2])), nil
	}

	panic(fmt.Errorf(`calc: unexpected statement: %T`, st))
}

func (x *Session) evalExpr(e expr) (rational.Rational, error) {
	switch e := e.(type) {
	case litExpr:
		return e.val, nil

	case varExpr:
		val, ok := x.vars[e.name]
		if !ok {
			return rational.Rational{}, fmt.Errorf("%w: %s", ErrUndefined, e.name)
		}
		return val, nil

	case negExpr:
		val, err := x.evalExpr(e.x)
		if err != nil {
			return rational.Rational{}, err
		}
		return val.Neg(), nil

	case binExpr:
		a, err := x.evalExpr(e.x)
		if err != nil {
			return rational.Rational{}, err
		}
		b, err := x.evalExpr(e.y)
		if err != nil {
			return rational.Rational{}, err
		}
		switch e.op {
		case tokPlus:
			return a.Add(b), nil
		case tokMinus:
			return a.Sub(b), nil
		case tokStar:
			return a.Mul(b), nil
		case tokSlash:
			return a.Quo(b)
		}
		panic(fmt.Errorf(`calc: unexpected operator: %s`, e.op))
	}

	panic(fmt.Errorf(`calc: unexpected expression: %T`, e))
}

// Run evaluates each line read from r, in order, skipping empty statements.
// Lines may be of any length. If fn is nil, the first error is returned,
// prefixed with the line number (from 1). Otherwise, fn is called with the
// result of every non-empty line, and Run stops if it returns a non-nil
// error, which is returned as is. The context is checked before each line.
func (x *Session) Run(ctx context.Context, r io.Reader, fn func(line int, v Value, err error) error) error {
	if fn == nil {
		fn = func(line int, v Value, err error) error {
			if err != nil {
				return fmt.Errorf(`calc: line %d: %w`, line, err)
			}
			return nil
		}
	}
	scanner := bufio.NewScanner(r)
	// literals are unbounded, so lines are too
	scanner.Buffer(nil, math.MaxInt)
	for n := 1; scanner.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := x.Eval(scanner.Text())
		if errors.Is(err, ErrEmpty) {
			continue
		}
		if err := fn(n, v, err); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Variables returns the names of all bound variables, sorted.
func (x *Session) Variables() []string {
	names := make([]string, 0, len(x.vars))
	for name := range x.vars {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the value bound to name, if any.
func (x *Session) Lookup(name string) (rational.Rational, bool) {
	val, ok := x.vars[name]
	return val, ok
}

// Set binds name to val, as if by a `let` statement.
func (x *Session) Set(name string, val rational.Rational) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	x.vars[name] = val
	return nil
}

// Snapshot returns a copy of all bound variables.
func (x *Session) Snapshot() map[string]rational.Rational {
	return maps.Clone(x.vars)
}
