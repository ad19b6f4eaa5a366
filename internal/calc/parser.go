package calc

import (
	"github.com/joeycumines/rational"
)

type (
	// stmt is a parsed statement, see the package docs for the grammar
	stmt interface{ stmtNode() }

	// expr is a rational-valued expression
	expr interface{ exprNode() }

	letStmt struct {
		name string
		x    expr
	}

	exprStmt struct {
		x expr
	}

	cmpStmt struct {
		op   tokenKind
		x, y expr
	}

	inStmt struct {
		x, low, high expr
	}

	litExpr struct {
		val rational.Rational
	}

	varExpr struct {
		name string
		pos  int
	}

	negExpr struct {
		x expr
	}

	binExpr struct {
		op   tokenKind
		x, y expr
	}

	parser struct {
		tokens []token
		i      int
	}
)

func (letStmt) stmtNode()  {}
func (exprStmt) stmtNode() {}
func (cmpStmt) stmtNode()  {}
func (inStmt) stmtNode()   {}

func (litExpr) exprNode() {}
func (varExpr) exprNode() {}
func (negExpr) exprNode() {}
func (binExpr) exprNode() {}

// parse parses a single (non-empty) statement.
func parse(s string) (stmt, error) {
	tokens, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	p := parser{tokens: tokens}
	st, err := p.stmt()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, syntaxErrorf(tok.pos, "unexpected %s", tok)
	}
	return st, nil
}

func (p *parser) peek() token { return p.tokens[p.i] }

func (p *parser) next() token {
	tok := p.tokens[p.i]
	if tok.kind != tokEOF {
		p.i++
	}
	return tok
}

func (p *parser) expect(kind tokenKind) (token, error) {
	tok := p.next()
	if tok.kind != kind {
		return tok, syntaxErrorf(tok.pos, "expected %q, found %s", kind.String(), tok)
	}
	return tok, nil
}

func (p *parser) stmt() (stmt, error) {
	if p.peek().kind == tokLet {
		p.next()
		name, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokAssign); err != nil {
			return nil, err
		}
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		return letStmt{name: name.text, x: x}, nil
	}

	x, err := p.expr()
	if err != nil {
		return nil, err
	}

	switch op := p.peek().kind; op {
	case tokEq, tokNe, tokLt, tokLe, tokGt, tokGe:
		p.next()
		y, err := p.expr()
		if err != nil {
			return nil, err
		}
		return cmpStmt{op: op, x: x, y: y}, nil

	case tokIn:
		p.next()
		low, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRange); err != nil {
			return nil, err
		}
		high, err := p.expr()
		if err != nil {
			return nil, err
		}
		return inStmt{x: x, low: low, high: high}, nil
	}

	return exprStmt{x: x}, nil
}

func (p *parser) expr() (expr, error) {
	x, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokPlus && op != tokMinus {
			return x, nil
		}
		p.next()
		y, err := p.term()
		if err != nil {
			return nil, err
		}
		x = binExpr{op: op, x: x, y: y}
	}
}

func (p *parser) term() (expr, error) {
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokStar && op != tokSlash {
			return x, nil
		}
		p.next()
		y, err := p.unary()
		if err != nil {
			return nil, err
		}
		x = binExpr{op: op, x: x, y: y}
	}
}

func (p *parser) unary() (expr, error) {
	if p.peek().kind == tokMinus {
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return negExpr{x: x}, nil
	}
	return p.primary()
}

func (p *parser) primary() (expr, error) {
	tok := p.next()
	switch tok.kind {
	case tokLiteral:
		val, err := rational.Parse(tok.text)
		if err != nil {
			return nil, err
		}
		return litExpr{val: val}, nil

	case tokIdent:
		return varExpr{name: tok.text, pos: tok.pos}, nil

	case tokLParen:
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return x, nil
	}
	return nil, syntaxErrorf(tok.pos, "unexpected %s", tok)
}
