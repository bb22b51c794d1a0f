// C4: DDL grammar - column attributes, foreign references, column and
// table definitions, drop-table, and alter-table operations.
package parser

import (
	"github.com/ivanceras/restq/ast"
	"github.com/ivanceras/restq/token"
)

// columnAttributes consumes a run of `* & @` sigils preceding a column
// name. Order is preserved and duplicate sigils are kept verbatim - the
// grammar treats repeats as idempotent, not as an error.
func (p *Parser) columnAttributes() []ast.ColumnAttribute {
	var attrs []ast.ColumnAttribute
	for {
		switch p.cur.Type {
		case token.STAR:
			attrs = append(attrs, ast.Primary)
			p.advance()
		case token.AMP:
			attrs = append(attrs, ast.Unique)
			p.advance()
		case token.AT:
			attrs = append(attrs, ast.Index)
			p.advance()
		default:
			return attrs
		}
	}
}

// foreignRef parses `'(' target_table ('::' target_column)? ')'`.
func (p *Parser) foreignRef() (*ast.ForeignRef, error) {
	if !p.curIs(token.LPAREN) {
		return nil, nil
	}
	p.advance()
	table, err := p.tableName()
	if err != nil {
		return nil, err
	}
	ref := &ast.ForeignRef{Table: table}
	if p.curIs(token.DCOLON) {
		p.advance()
		col, err := p.ident()
		if err != nil {
			return nil, err
		}
		cn := ast.NewColumnName(col)
		ref.Column = &cn
	}
	if _, err := p.expect(token.RPAREN, "a closing ')' for the foreign reference"); err != nil {
		return nil, err
	}
	return ref, nil
}

// columnDef parses `attrs? name foreign? ':' data_type_def`.
func (p *Parser) columnDef() (*ast.ColumnDef, error) {
	start := p.cur.Pos
	attrs := p.columnAttributes()
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	col := &ast.ColumnDef{StartPos: start, Attributes: attrs, Column: ast.NewColumnName(name)}
	fk, err := p.foreignRef()
	if err != nil {
		return nil, err
	}
	col.Foreign = fk
	if _, err := p.expect(token.COLON, "a ':' separating the column name from its type"); err != nil {
		return nil, err
	}
	dtd, err := p.dataTypeDef()
	if err != nil {
		return nil, err
	}
	col.Type = dtd
	col.EndPos = p.cur.Pos
	return col, nil
}

// closeFor returns the matching closing bracket token for an opener.
func closeFor(open token.Token) token.Token {
	if open == token.LPAREN {
		return token.RPAREN
	}
	return token.RBRACE
}

// columnList parses a comma-separated column_def list enclosed in either
// `(...)` or `{...}` - parentheses are valid in path position where
// braces are not, per §4.4.
func (p *Parser) columnList() ([]*ast.ColumnDef, error) {
	var open token.Token
	switch p.cur.Type {
	case token.LPAREN, token.LBRACE:
		open = p.cur.Type
	default:
		return nil, p.fail("a column list in '(' or '{'")
	}
	closeTok := closeFor(open)
	p.advance()
	var cols []*ast.ColumnDef
	if !p.curIs(closeTok) {
		for {
			c, err := p.columnDef()
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
	if _, err := p.expect(closeTok, "a closing bracket for the column list"); err != nil {
		return nil, err
	}
	return cols, nil
}

// tableDef parses `table_name column_list`, the body of a Create
// statement once the PUT method (and optional leading '+') has already
// been consumed by the dispatcher.
func (p *Parser) tableDef() (*ast.TableDef, error) {
	start := p.cur.Pos
	name, err := p.tableName()
	if err != nil {
		return nil, err
	}
	cols, err := p.columnList()
	if err != nil {
		return nil, err
	}
	return &ast.TableDef{StartPos: start, EndPos: p.cur.Pos, Table: name, Columns: cols}, nil
}

// dropTable parses the body of a Delete-method `-table_name` statement:
// the leading '-' has already been consumed by the dispatcher.
func (p *Parser) dropTable() (*ast.DropTable, error) {
	start := p.cur.Pos
	name, err := p.tableName()
	if err != nil {
		return nil, err
	}
	return &ast.DropTable{StartPos: start, EndPos: p.cur.Pos, Table: name}, nil
}

// alterOperation parses one entry of an alter_ops list: `-column`,
// `+column_def`, or `column '=' column_def`.
func (p *Parser) alterOperation() (ast.AlterOperation, error) {
	start := p.cur.Pos
	switch p.cur.Type {
	case token.MINUS:
		p.advance()
		col, err := p.columnName()
		if err != nil {
			return nil, err
		}
		return &ast.DropColumnOp{StartPos: start, EndPos: p.cur.Pos, Column: col}, nil
	case token.PLUS:
		p.advance()
		cd, err := p.columnDef()
		if err != nil {
			return nil, err
		}
		return &ast.AddColumnOp{StartPos: start, EndPos: p.cur.Pos, Column: cd}, nil
	default:
		old, err := p.columnName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.EQ, "a '=' introducing the new column definition"); err != nil {
			return nil, err
		}
		cd, err := p.columnDef()
		if err != nil {
			return nil, err
		}
		return &ast.AlterColumnOp{StartPos: start, EndPos: p.cur.Pos, Old: old, New: cd}, nil
	}
}

// alterOps parses the bracketed list of alter operations.
func (p *Parser) alterOps() ([]ast.AlterOperation, error) {
	var open token.Token
	switch p.cur.Type {
	case token.LPAREN, token.LBRACE:
		open = p.cur.Type
	default:
		return nil, p.fail("an alter-operation list in '(' or '{'")
	}
	closeTok := closeFor(open)
	p.advance()
	var ops []ast.AlterOperation
	if !p.curIs(closeTok) {
		for {
			op, err := p.alterOperation()
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(closeTok, "a closing bracket for the alter-operation list"); err != nil {
		return nil, err
	}
	return ops, nil
}

// alterTable parses `table_name alter_ops`, the body of a PATCH-method
// alter statement.
func (p *Parser) alterTable() (*ast.AlterTable, error) {
	start := p.cur.Pos
	name, err := p.tableName()
	if err != nil {
		return nil, err
	}
	ops, err := p.alterOps()
	if err != nil {
		return nil, err
	}
	return &ast.AlterTable{StartPos: start, EndPos: p.cur.Pos, Table: name, Operations: ops}, nil
}
