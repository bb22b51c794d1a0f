// C6: the statement dispatcher. A header line begins with a method
// token, optional single whitespace (already consumed by the lexer's
// skipSpaces), then a '/' and a sub-expression. Each alternative commits
// after matching the method prefix: a mismatch past that point is a hard
// parse error naming the expected production, per §4.6 and §9's
// committed-choice discipline.
package parser

import (
	"github.com/ivanceras/restq/ast"
	"github.com/ivanceras/restq/rqerr"
	"github.com/ivanceras/restq/token"
)

// Parse parses one complete header line into its Statement.
func Parse(input string) (ast.Statement, error) {
	p := New(input)
	return p.parseStatement()
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	if p.cur.Type != token.IDENT {
		return p.selectStmt()
	}
	switch p.cur.Value {
	case "GET":
		p.advance()
		if err := p.expectSlash(); err != nil {
			return nil, err
		}
		return p.selectStmt()
	case "POST":
		p.advance()
		if err := p.expectSlash(); err != nil {
			return nil, err
		}
		ins, err := p.insert()
		if err != nil {
			return nil, rqerr.ParseError(p.pos().Offset, "an insert after POST")
		}
		return ins, nil
	case "PUT":
		p.advance()
		if err := p.expectSlash(); err != nil {
			return nil, err
		}
		if p.curIs(token.PLUS) {
			p.advance()
		}
		def, err := p.tableDef()
		if err != nil {
			return nil, rqerr.ParseError(p.pos().Offset, "a table definition after PUT")
		}
		return def, nil
	case "DELETE":
		p.advance()
		if err := p.expectSlash(); err != nil {
			return nil, err
		}
		if p.curIs(token.MINUS) {
			p.advance()
			dt, err := p.dropTable()
			if err != nil {
				return nil, rqerr.ParseError(p.pos().Offset, "a table name after DELETE -")
			}
			return dt, nil
		}
		del, err := p.deleteBody()
		if err != nil {
			return nil, rqerr.ParseError(p.pos().Offset, "a delete or bulk delete after DELETE")
		}
		return del, nil
	case "PATCH":
		p.advance()
		if err := p.expectSlash(); err != nil {
			return nil, err
		}
		return p.patchBody()
	case "OPTIONS", "TRACE", "CONNECT", "HEAD":
		return nil, rqerr.NotImplemented("method " + p.cur.Value)
	default:
		return p.selectStmt()
	}
}

// expectSlash consumes the '/' that separates a method token from its
// path/query, after optional single whitespace (already skipped by the
// lexer).
func (p *Parser) expectSlash() error {
	_, err := p.expect(token.SLASH, "a '/' after the method")
	return err
}

// deleteBody disambiguates Delete from BulkDelete without backtracking:
// Delete never carries a bracketed list, so the presence of one
// immediately after the table name is decisive.
func (p *Parser) deleteBody() (ast.Statement, error) {
	start := p.cur.Pos
	table, err := p.tableName()
	if err != nil {
		return nil, err
	}
	if p.curIs(token.LPAREN) || p.curIs(token.LBRACE) {
		cols, err := p.columnNameList()
		if err != nil {
			return nil, err
		}
		return &ast.BulkDelete{StartPos: start, EndPos: p.cur.Pos, From: table, Columns: cols}, nil
	}
	del := &ast.Delete{StartPos: start, From: table}
	if p.curIs(token.QUESTION) {
		p.advance()
		filter, err := p.filterExpr()
		if err != nil {
			return nil, err
		}
		del.Filter = filter
	}
	del.EndPos = p.cur.Pos
	return del, nil
}

// patchBody disambiguates PATCH between AlterTable, BulkUpdate, and
// Update, all of which share a table name plus a bracketed list. Each
// alternative is tried in full with backtracking: AlterTable entries
// always begin with a '-'/'+' sigil or have the `column '=' column_def`
// shape, whose right side needs an identifier followed by a data-type
// colon, BulkUpdate's list holds bare column names only (no
// '='), and Update's holds `column '=' value` pairs - so at most one
// alternative ever parses the whole list successfully.
func (p *Parser) patchBody() (ast.Statement, error) {
	m := p.mark()
	if at, err := p.alterTable(); err == nil {
		return at, nil
	}
	p.reset(m)

	if bu, err := p.bulkUpdate(); err == nil {
		return bu, nil
	}
	p.reset(m)

	upd, err := p.update()
	if err != nil {
		return nil, rqerr.ParseError(p.pos().Offset, "an alter, bulk update, or update after PATCH")
	}
	return upd, nil
}
