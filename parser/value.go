package parser

import (
	"github.com/ivanceras/restq/ast"
	"github.com/ivanceras/restq/rqerr"
	"github.com/ivanceras/restq/token"
)

// value parses `null | bool | number | quoted_string | single_quoted_string
// | back_quoted_string | unquoted_string`, with the restricted-identifier
// guard applying to the bare unquoted alternative, per §4.2.
func (p *Parser) value() (ast.Value, error) {
	if p.cur.Type == token.IDENT {
		switch p.cur.Value {
		case "null":
			p.advance()
			return ast.NullValue{}, nil
		case "true":
			p.advance()
			return ast.BoolValue(true), nil
		case "false":
			p.advance()
			return ast.BoolValue(false), nil
		}
	}
	if p.cur.Type == token.INT || p.cur.Type == token.FLOAT || p.cur.Type == token.MINUS {
		m := p.mark()
		if f, err := p.number(); err == nil {
			return ast.NumberValue(f), nil
		}
		p.reset(m)
	}
	if p.cur.Type == token.STRING {
		s, err := p.quotedString()
		if err != nil {
			return nil, err
		}
		return ast.StringValue(s), nil
	}
	s, err := p.unquotedString()
	if err != nil {
		return nil, p.fail("a value")
	}
	return ast.StringValue(s), nil
}

// dataType parses a reserved tag from the closed DataType set; unknown
// tags fail with InvalidDataType(tag).
func (p *Parser) dataType() (ast.DataType, error) {
	name, err := p.ident()
	if err != nil {
		return 0, err
	}
	dt, ok := ast.ParseDataType(name)
	if !ok {
		return 0, rqerr.InvalidDataType(name)
	}
	return dt, nil
}

// dataTypeDef parses `data_type ('?')? ('(' value|function ')')?`.
func (p *Parser) dataTypeDef() (ast.DataTypeDef, error) {
	dt, err := p.dataType()
	if err != nil {
		return ast.DataTypeDef{}, err
	}
	def := ast.DataTypeDef{DataType: dt}
	if p.curIs(token.QUESTION) {
		p.advance()
		def.IsOptional = true
	}
	if p.curIs(token.LPAREN) {
		p.advance()
		defaultExpr, err := p.defaultExpr()
		if err != nil {
			return ast.DataTypeDef{}, err
		}
		if _, err := p.expect(token.RPAREN, "a closing ')' for the default expression"); err != nil {
			return ast.DataTypeDef{}, err
		}
		def.Default = defaultExpr
	}
	return def, nil
}

// defaultExpr parses either a function call (`now()`, `uuid_generate_v4()`)
// or a scalar value, for use as a DataTypeDef's default.
func (p *Parser) defaultExpr() (ast.Expr, error) {
	start := p.cur.Pos
	if p.cur.Type == token.IDENT {
		m := p.mark()
		name := p.cur.Value
		p.advance()
		if p.curIs(token.LPAREN) {
			p.advance()
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
		p.reset(m)
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	return &ast.ValueExpr{StartPos: start, EndPos: p.cur.Pos, Value: v}, nil
}
