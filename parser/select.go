// C3/C5: from-table join chains and the Select statement, including the
// query-string's named parameters (group_by=, having=, order_by=, page=,
// page_size=, limit=, offset=) that follow a top-level filter expression.
package parser

import (
	"github.com/ivanceras/restq/ast"
	"github.com/ivanceras/restq/token"
)

// joinType reports the JoinType denoted by the current token, if any.
func joinType(t token.Token) (ast.JoinType, bool) {
	switch t {
	case token.ARROW:
		return ast.Right, true
	case token.LARROW:
		return ast.Left, true
	case token.INNERARROW:
		return ast.Inner, true
	case token.FULLARROW:
		return ast.Full, true
	default:
		return 0, false
	}
}

// fromTable parses a left-associative chain of tables joined by
// directional digraph arrows: `table (arrow table)*`.
func (p *Parser) fromTable() (*ast.FromTable, error) {
	start := p.cur.Pos
	name, err := p.tableName()
	if err != nil {
		return nil, err
	}
	f := &ast.FromTable{StartPos: start, Table: name}
	if jt, ok := joinType(p.cur.Type); ok {
		p.advance()
		next, err := p.fromTable()
		if err != nil {
			return nil, err
		}
		f.Join = &ast.JoinLink{Type: jt, Next: next}
	}
	f.EndPos = p.cur.Pos
	return f, nil
}

// orderItem parses one `expr ('.' (asc|desc))?` entry of order_by=.
func (p *Parser) orderItem() (*ast.Order, error) {
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	o := &ast.Order{Expr: e}
	if p.curIs(token.DOT) {
		m := p.mark()
		p.advance()
		if p.cur.Type == token.IDENT && (p.cur.Value == "asc" || p.cur.Value == "desc") {
			d := ast.Asc
			if p.cur.Value == "desc" {
				d = ast.Desc
			}
			p.advance()
			o.Direction = &d
		} else {
			p.reset(m)
		}
	}
	return o, nil
}

// queryParts accumulates the parsed pieces of a '?'-introduced query
// string: a filter expression plus the named parameters that follow it.
type queryParts struct {
	Filter  ast.Expr
	GroupBy []ast.Expr
	Having  ast.Expr
	OrderBy []*ast.Order
	Range   ast.Range
}

// namedParams lists the names that may appear as `name=value` query
// parameters after (or instead of) a filter; all but offset are also in
// token's restricted-identifier set.
var namedParams = map[string]bool{
	"group_by": true, "having": true, "order_by": true,
	"page": true, "page_size": true, "limit": true, "offset": true,
}

// tryNamedParam consumes one `name=...` query parameter if the current
// token is a recognized parameter name; it reports whether it matched.
func (p *Parser) tryNamedParam(parts *queryParts, pageNum, pageSize, limitNum, offsetNum **int64) (bool, error) {
	if p.cur.Type != token.IDENT || !namedParams[p.cur.Value] {
		return false, nil
	}
	name := p.cur.Value
	p.advance()
	if _, err := p.expect(token.EQ, "a '=' after '"+name+"'"); err != nil {
		return false, err
	}
	switch name {
	case "group_by":
		for {
			e, err := p.expr()
			if err != nil {
				return false, err
			}
			parts.GroupBy = append(parts.GroupBy, e)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	case "having":
		e, err := p.expr()
		if err != nil {
			return false, err
		}
		parts.Having = e
	case "order_by":
		for {
			o, err := p.orderItem()
			if err != nil {
				return false, err
			}
			parts.OrderBy = append(parts.OrderBy, o)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	case "page":
		n, err := p.integer()
		if err != nil {
			return false, err
		}
		*pageNum = &n
	case "page_size":
		n, err := p.integer()
		if err != nil {
			return false, err
		}
		*pageSize = &n
	case "limit":
		n, err := p.integer()
		if err != nil {
			return false, err
		}
		*limitNum = &n
	case "offset":
		n, err := p.integer()
		if err != nil {
			return false, err
		}
		*offsetNum = &n
	}
	return true, nil
}

// queryString parses the body of a '?' query: an optional filter
// expression followed by any number of '&'-joined named parameters.
func (p *Parser) queryString() (*queryParts, error) {
	parts := &queryParts{}
	var pageNum, pageSize, limitNum, offsetNum *int64

	matched, err := p.tryNamedParam(parts, &pageNum, &pageSize, &limitNum, &offsetNum)
	if err != nil {
		return nil, err
	}
	if !matched {
		filter, err := p.filterExpr()
		if err != nil {
			return nil, err
		}
		parts.Filter = filter
	}

	for p.curIs(token.AMP) {
		m := p.mark()
		p.advance()
		matched, err := p.tryNamedParam(parts, &pageNum, &pageSize, &limitNum, &offsetNum)
		if err != nil {
			return nil, err
		}
		if !matched {
			p.reset(m)
			break
		}
	}

	switch {
	case pageNum != nil && pageSize != nil:
		parts.Range = ast.Page{PageNum: *pageNum, PageSize: *pageSize}
	case limitNum != nil:
		parts.Range = ast.Limit{LimitNum: *limitNum, OffsetNum: offsetNum}
	}
	return parts, nil
}

// selectStmt parses a GET request: `from_table projection? ('?' query_string)?`.
func (p *Parser) selectStmt() (*ast.Select, error) {
	start := p.cur.Pos
	from, err := p.fromTable()
	if err != nil {
		return nil, err
	}
	sel := &ast.Select{StartPos: start, From: from}
	if p.curIs(token.LBRACE) {
		proj, err := p.projection()
		if err != nil {
			return nil, err
		}
		sel.Projection = proj
	}
	if p.curIs(token.QUESTION) {
		p.advance()
		parts, err := p.queryString()
		if err != nil {
			return nil, err
		}
		sel.Filter = parts.Filter
		sel.GroupBy = parts.GroupBy
		sel.Having = parts.Having
		sel.OrderBy = parts.OrderBy
		sel.Range = parts.Range
	}
	sel.EndPos = p.cur.Pos
	return sel, nil
}
