// C5: DML grammar - Insert, Update, Delete, BulkUpdate, BulkDelete.
//
// The header line only ever carries column names and (for Update) inline
// scalar values; the row payload for Insert/BulkUpdate/BulkDelete comes
// from the frame's CSV body (see package frame), so Insert's Source here
// defaults to an empty ValuesSource that the frame reader populates. A
// dedicated header syntax for an inline select-source or `$1,$2,...`
// positional-parameter source is not pinned down precisely enough by
// original_source to ground further; ast.DeriveInsert already covers the
// parameterized convenience case. See DESIGN.md.
package parser

import (
	"github.com/ivanceras/restq/ast"
	"github.com/ivanceras/restq/token"
)

// columnNameList parses a comma-separated column_name list enclosed in
// either `(...)` or `{...}`.
func (p *Parser) columnNameList() ([]ast.ColumnName, error) {
	var open token.Token
	switch p.cur.Type {
	case token.LPAREN, token.LBRACE:
		open = p.cur.Type
	default:
		return nil, p.fail("a column name list in '(' or '{'")
	}
	closeTok := closeFor(open)
	p.advance()
	var cols []ast.ColumnName
	if !p.curIs(closeTok) {
		for {
			c, err := p.columnName()
			if err != nil {
				return nil, err
			}
			cols = append(cols, c)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(closeTok, "a closing bracket for the column name list"); err != nil {
		return nil, err
	}
	return cols, nil
}

// insert parses `table '{' column_list '}' ('?' 'returning=' column_list)?`.
func (p *Parser) insert() (*ast.Insert, error) {
	start := p.cur.Pos
	table, err := p.tableName()
	if err != nil {
		return nil, err
	}
	cols, err := p.columnNameList()
	if err != nil {
		return nil, err
	}
	ins := &ast.Insert{StartPos: start, Into: table, Columns: cols, Source: ast.ValuesSource{}}
	if p.curIs(token.QUESTION) {
		p.advance()
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		if name != "returning" {
			return nil, p.fail("'returning=' after '?' in an insert")
		}
		if _, err := p.expect(token.EQ, "a '=' after 'returning'"); err != nil {
			return nil, err
		}
		var ret []ast.ColumnName
		for {
			c, err := p.columnName()
			if err != nil {
				return nil, err
			}
			ret = append(ret, c)
			if !p.curIs(token.COMMA) {
				break
			}
			p.advance()
		}
		ins.Returning = ret
	}
	ins.EndPos = p.cur.Pos
	return ins, nil
}

// columnValue parses one `column '=' value` pair of an Update SET list.
func (p *Parser) columnValue() (ast.ColumnValue, error) {
	col, err := p.columnName()
	if err != nil {
		return ast.ColumnValue{}, err
	}
	if _, err := p.expect(token.EQ, "a '=' separating the column from its new value"); err != nil {
		return ast.ColumnValue{}, err
	}
	val, err := p.value()
	if err != nil {
		return ast.ColumnValue{}, err
	}
	return ast.ColumnValue{Column: col, Value: val}, nil
}

// update parses `table '{' (column '=' value)+ '}' ('?' filter_expr)?`.
func (p *Parser) update() (*ast.Update, error) {
	start := p.cur.Pos
	table, err := p.tableName()
	if err != nil {
		return nil, err
	}
	var open token.Token
	switch p.cur.Type {
	case token.LPAREN, token.LBRACE:
		open = p.cur.Type
	default:
		return nil, p.fail("a set-list in '(' or '{'")
	}
	closeTok := closeFor(open)
	p.advance()
	var set []ast.ColumnValue
	for {
		cv, err := p.columnValue()
		if err != nil {
			return nil, err
		}
		set = append(set, cv)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(closeTok, "a closing bracket for the set-list"); err != nil {
		return nil, err
	}
	upd := &ast.Update{StartPos: start, Table: table, Set: set}
	if p.curIs(token.QUESTION) {
		p.advance()
		filter, err := p.filterExpr()
		if err != nil {
			return nil, err
		}
		upd.Filter = filter
	}
	upd.EndPos = p.cur.Pos
	return upd, nil
}

// bulkUpdate parses `table '{' column_list '}'`.
func (p *Parser) bulkUpdate() (*ast.BulkUpdate, error) {
	start := p.cur.Pos
	table, err := p.tableName()
	if err != nil {
		return nil, err
	}
	cols, err := p.columnNameList()
	if err != nil {
		return nil, err
	}
	return &ast.BulkUpdate{StartPos: start, EndPos: p.cur.Pos, Table: table, Columns: cols}, nil
}

// Delete and BulkDelete are both parsed by dispatch.go's deleteBody,
// which distinguishes them by the presence of a bracketed column list
// immediately after the table name.
