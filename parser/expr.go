// C3: expression grammar - operators, precedence via grammar shape,
// function calls, filter expressions, projections with rename.
package parser

import (
	"github.com/ivanceras/restq/ast"
	"github.com/ivanceras/restq/token"
)

// atom = nested(paren expr) | multi_values | null | bool | number |
// function call | column | scalar value (unquoted fallback), matching
// the alternation order of
// _examples/original_source/src/ast/parser.rs's `expr()`.
func (p *Parser) atom() (ast.Expr, error) {
	start := p.cur.Pos

	if p.curIs(token.LPAREN) {
		p.advance()
		inner, err := p.filterExpr()
		if err != nil {
			return nil, err
		}
		end := p.cur.Pos
		if _, err := p.expect(token.RPAREN, "a closing ')'"); err != nil {
			return nil, err
		}
		return &ast.NestedExpr{StartPos: start, EndPos: end, Inner: inner}, nil
	}

	if p.curIs(token.LBRACKET) {
		return p.multiValues()
	}

	if p.cur.Type == token.IDENT {
		switch p.cur.Value {
		case "null":
			p.advance()
			return &ast.ValueExpr{StartPos: start, EndPos: p.cur.Pos, Value: ast.NullValue{}}, nil
		case "true":
			p.advance()
			return &ast.ValueExpr{StartPos: start, EndPos: p.cur.Pos, Value: ast.BoolValue(true)}, nil
		case "false":
			p.advance()
			return &ast.ValueExpr{StartPos: start, EndPos: p.cur.Pos, Value: ast.BoolValue(false)}, nil
		}
	}

	if p.cur.Type == token.INT || p.cur.Type == token.FLOAT {
		f, err := p.number()
		if err != nil {
			return nil, err
		}
		return &ast.ValueExpr{StartPos: start, EndPos: p.cur.Pos, Value: ast.NumberValue(f)}, nil
	}

	if p.cur.Type == token.IDENT {
		m := p.mark()
		name := p.cur.Value
		p.advance()
		if p.curIs(token.LPAREN) {
			return p.functionArgs(start, name)
		}
		p.reset(m)
		col, err := p.columnName()
		if err != nil {
			return nil, err
		}
		return &ast.ColumnNameExpr{StartPos: start, EndPos: p.cur.Pos, Name: col}, nil
	}

	if p.cur.Type == token.STRING {
		s, err := p.quotedString()
		if err != nil {
			return nil, err
		}
		return &ast.ValueExpr{StartPos: start, EndPos: p.cur.Pos, Value: ast.StringValue(s)}, nil
	}

	s, err := p.unquotedString()
	if err != nil {
		return nil, p.fail("an expression")
	}
	return &ast.ValueExpr{StartPos: start, EndPos: p.cur.Pos, Value: ast.StringValue(s)}, nil
}

// functionArgs parses the `(expr (',' expr)*)?` tail of a function call
// whose name and opening paren have already been consumed.
func (p *Parser) functionArgs(start token.Pos, name string) (ast.Expr, error) {
	p.advance() // consume '('
	var args []ast.Expr
	if !p.curIs(token.RPAREN) {
		for {
			arg, err := p.expr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	end := p.cur.Pos
	if _, err := p.expect(token.RPAREN, "a closing ')' after function arguments"); err != nil {
		return nil, err
	}
	return &ast.FunctionExpr{StartPos: start, EndPos: end, Name: name, Args: args}, nil
}

// multiValues parses `[ value (',' value)* ]`, the right-hand side of
// `in`/`not_in`.
func (p *Parser) multiValues() (ast.Expr, error) {
	start := p.cur.Pos
	if _, err := p.expect(token.LBRACKET, "a '[' starting a value list"); err != nil {
		return nil, err
	}
	var values []ast.Value
	if !p.curIs(token.RBRACKET) {
		for {
			v, err := p.value()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	end := p.cur.Pos
	if _, err := p.expect(token.RBRACKET, "a closing ']' for the value list"); err != nil {
		return nil, err
	}
	return &ast.MultiValueExpr{StartPos: start, EndPos: end, Values: values}, nil
}

// mathOperator maps a lexed arithmetic token to its ast.Operator.
func mathOperator(t token.Token) (ast.Operator, bool) {
	switch t {
	case token.PLUS:
		return ast.Plus, true
	case token.MINUS:
		return ast.Minus, true
	case token.STAR:
		return ast.Multiply, true
	case token.SLASH:
		return ast.Divide, true
	case token.PERCENT:
		return ast.Modulus, true
	default:
		return 0, false
	}
}

// binaryOperationExpr implements the three forms documented in §4.3:
// a bare `atom op atom` arithmetic operation (`+ - * / %`; the named
// comparisons always take the `=op.` form) without the separator, the
// canonical `left '=' (op '.')? right` comparison (defaulting to Eq when
// the op.-prefix is absent), or a plain atom when neither follows.
func (p *Parser) binaryOperationExpr() (ast.Expr, error) {
	start := p.cur.Pos
	left, err := p.atom()
	if err != nil {
		return nil, err
	}

	if op, ok := mathOperator(p.cur.Type); ok {
		p.advance()
		right, err := p.atom()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOperationExpr{StartPos: start, EndPos: p.cur.Pos, Left: left, Operator: op, Right: right}, nil
	}

	if p.curIs(token.EQ) {
		p.advance()
		op := ast.Eq
		if p.cur.Type == token.IDENT {
			m := p.mark()
			name := p.cur.Value
			p.advance()
			if p.curIs(token.DOT) {
				if namedOp, ok := ast.ParseNamedOperator(name); ok {
					p.advance() // consume '.'
					op = namedOp
				} else {
					p.reset(m)
				}
			} else {
				p.reset(m)
			}
		}
		right, err := p.atom()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOperationExpr{StartPos: start, EndPos: p.cur.Pos, Left: left, Operator: op, Right: right}, nil
	}

	return left, nil
}

// filterExpr is the left-recursive combination of binary operations via
// `&`/`|` connectors; arbitrary grouping is handled by atom()'s nested-
// paren case, which always produces its own NestedExpr wrapper.
//
// At top level (directly after a statement's '?'), a filter expression
// is immediately followed by the query string's named parameters
// (group_by=, having=, order_by=, page=, page_size=, limit=, offset=),
// joined by the same '&' connector token. All of those names except
// offset are reserved words guarded by strictIdent and fail to parse as a
// filter operand, so a connector whose right-hand side turns out to be
// one of them simply ends the filter: the loop resets to the '&' and
// leaves it for the caller's named-parameter loop. offset is not a
// reserved word, so an `&offset=` directly after a filter (or after an
// order_by/group_by/having expression) is parsed as part of that
// expression.
func (p *Parser) filterExpr() (ast.Expr, error) {
	start := p.cur.Pos
	left, err := p.binaryOperationExpr()
	if err != nil {
		return nil, err
	}
	for p.curIs(token.AMP) || p.curIs(token.PIPE) {
		m := p.mark()
		conn := ast.And
		if p.curIs(token.PIPE) {
			conn = ast.Or
		}
		p.advance()
		right, err := p.binaryOperationExpr()
		if err != nil {
			p.reset(m)
			break
		}
		left = &ast.BinaryOperationExpr{StartPos: start, EndPos: p.cur.Pos, Left: left, Operator: conn, Right: right}
	}
	return left, nil
}

// expr is the public top-level expression entry point, used inside
// projections, function arguments, and defaults.
func (p *Parser) expr() (ast.Expr, error) {
	return p.filterExpr()
}

// exprRename = expr ( ('=>' | '=^') ident )?
func (p *Parser) exprRename() (*ast.ExprRename, error) {
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	r := &ast.ExprRename{Expr: e}
	if p.curIs(token.RENAMEFAT) || p.curIs(token.RENAMECARET) {
		p.advance()
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		r.Rename = &name
	}
	return r, nil
}

// projection = '{' expr_rename (',' expr_rename)* '}'
func (p *Parser) projection() ([]*ast.ExprRename, error) {
	if _, err := p.expect(token.LBRACE, "a '{' starting a projection"); err != nil {
		return nil, err
	}
	var items []*ast.ExprRename
	if !p.curIs(token.RBRACE) {
		for {
			item, err := p.exprRename()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(token.RBRACE, "a closing '}' for the projection"); err != nil {
		return nil, err
	}
	return items, nil
}
