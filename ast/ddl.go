package ast

import (
	"strings"

	"github.com/ivanceras/restq/token"
)

// DataTypeDef is a data type, an optionality flag, and an optional
// default expression (a scalar value or a function call).
type DataTypeDef struct {
	DataType   DataType
	IsOptional bool
	Default    Expr // nil if absent; a *ValueExpr or a *FunctionExpr
}

// String renders `data_type ('?')? ('(' default ')')?`.
func (d DataTypeDef) String() string {
	s := d.DataType.String()
	if d.IsOptional {
		s += "?"
	}
	if d.Default != nil {
		s += "(" + d.Default.String() + ")"
	}
	return s
}

// ColumnAttribute annotates a column declaration with one of the sigil
// markers `*` (Primary), `&` (Unique), `@` (Index).
type ColumnAttribute int

const (
	Primary ColumnAttribute = iota
	Unique
	Index
)

func (a ColumnAttribute) String() string {
	switch a {
	case Primary:
		return "*"
	case Unique:
		return "&"
	case Index:
		return "@"
	default:
		return "?"
	}
}

// ForeignRef is a column's foreign-key target: `column(target_table)` or
// `column(target_table::target_column)`. Column is nil when no explicit
// target column was given, in which case lowering resolves it to the
// target table's sole primary key.
type ForeignRef struct {
	Table  TableName
	Column *ColumnName
}

// String renders `(target_table)` or `(target_table::target_column)`.
func (f *ForeignRef) String() string {
	if f.Column == nil {
		return "(" + f.Table.String() + ")"
	}
	return "(" + f.Table.String() + "::" + f.Column.String() + ")"
}

// ColumnDef is one column declaration: attributes (order preserved,
// duplicates idempotent), the column name, an optional foreign
// reference, and the data type definition.
type ColumnDef struct {
	StartPos   token.Pos
	EndPos     token.Pos
	Attributes []ColumnAttribute
	Column     ColumnName
	Foreign    *ForeignRef
	Type       DataTypeDef
}

func (c *ColumnDef) Pos() token.Pos { return c.StartPos }
func (c *ColumnDef) End() token.Pos { return c.EndPos }

// String renders `attrs? name foreign? ':' data_type_def`, the column
// declaration syntax of §6.
func (c *ColumnDef) String() string {
	var b strings.Builder
	for _, a := range c.Attributes {
		b.WriteString(a.String())
	}
	b.WriteString(c.Column.String())
	if c.Foreign != nil {
		b.WriteString(c.Foreign.String())
	}
	b.WriteString(":")
	b.WriteString(c.Type.String())
	return b.String()
}

// HasAttribute reports whether the column carries the given attribute.
func (c *ColumnDef) HasAttribute(a ColumnAttribute) bool {
	for _, x := range c.Attributes {
		if x == a {
			return true
		}
	}
	return false
}

// TableDef is a table name and its ordered column list. Column names
// must be unique within a table; Validate enforces that invariant.
type TableDef struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    TableName
	Columns  []*ColumnDef
}

func (*TableDef) statementNode()   {}
func (t *TableDef) Pos() token.Pos { return t.StartPos }
func (t *TableDef) End() token.Pos { return t.EndPos }

// String renders the canonical `PUT /table{col_def,...}` create request.
// The column list is rendered brace-delimited; §4.4's parenthesized
// alternative is path-position-only and is never the canonical form.
func (t *TableDef) String() string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = c.String()
	}
	return "PUT /" + t.Table.String() + "{" + strings.Join(cols, ",") + "}"
}

// Validate enforces the no-duplicate-column-names invariant from §3.
func (t *TableDef) Validate() error {
	seen := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		name := c.Column.Name()
		if seen[name] {
			return &DuplicateColumnError{Table: t.Table.Name(), Column: name}
		}
		seen[name] = true
	}
	return nil
}

// DuplicateColumnError reports a TableDef with a repeated column name.
type DuplicateColumnError struct {
	Table  string
	Column string
}

func (e *DuplicateColumnError) Error() string {
	return "duplicate column \"" + e.Column + "\" in table \"" + e.Table + "\""
}

// PrimaryColumns returns the columns carrying the Primary attribute, in
// definition order.
func (t *TableDef) PrimaryColumns() []*ColumnDef {
	var out []*ColumnDef
	for _, c := range t.Columns {
		if c.HasAttribute(Primary) {
			out = append(out, c)
		}
	}
	return out
}

// ColumnByName returns the column definition with the given name, if any.
func (t *TableDef) ColumnByName(name string) *ColumnDef {
	for _, c := range t.Columns {
		if c.Column.Name() == name {
			return c
		}
	}
	return nil
}

// MatchingColumnDefs returns, in order, the ColumnDef for each of the
// given columns - used by the frame reader to align CSV fields declared
// in an Insert/BulkUpdate/BulkDelete statement against the table's
// catalog entry.
func (t *TableDef) MatchingColumnDefs(columns []ColumnName) []*ColumnDef {
	out := make([]*ColumnDef, 0, len(columns))
	for _, col := range columns {
		if cd := t.ColumnByName(col.Name()); cd != nil {
			out = append(out, cd)
		}
	}
	return out
}

// DropTable drops a table: `-table_name` lowers to
// `DROP TABLE IF EXISTS name CASCADE`.
type DropTable struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    TableName
}

func (*DropTable) statementNode()   {}
func (d *DropTable) Pos() token.Pos { return d.StartPos }
func (d *DropTable) End() token.Pos { return d.EndPos }

// String renders the canonical `DELETE /-table` drop-table request.
func (d *DropTable) String() string {
	return "DELETE /-" + d.Table.String()
}

// DropColumnOp is an alter operation `-column` removing a column.
type DropColumnOp struct {
	StartPos token.Pos
	EndPos   token.Pos
	Column   ColumnName
}

func (*DropColumnOp) alterOperationNode() {}
func (o *DropColumnOp) Pos() token.Pos    { return o.StartPos }
func (o *DropColumnOp) End() token.Pos    { return o.EndPos }

// String renders `-column`.
func (o *DropColumnOp) String() string { return "-" + o.Column.String() }

// AddColumnOp is an alter operation `+column_def` adding a column.
type AddColumnOp struct {
	StartPos token.Pos
	EndPos   token.Pos
	Column   *ColumnDef
}

func (*AddColumnOp) alterOperationNode() {}
func (o *AddColumnOp) Pos() token.Pos    { return o.StartPos }
func (o *AddColumnOp) End() token.Pos    { return o.EndPos }

// String renders `+column_def`.
func (o *AddColumnOp) String() string { return "+" + o.Column.String() }

// AlterColumnOp is an alter operation `column=column_def` renaming and/or
// retyping a column. Its SQL lowering is deliberately unimplemented; see
// sqlast.LowerAlterTable.
type AlterColumnOp struct {
	StartPos token.Pos
	EndPos   token.Pos
	Old      ColumnName
	New      *ColumnDef
}

func (*AlterColumnOp) alterOperationNode() {}
func (o *AlterColumnOp) Pos() token.Pos    { return o.StartPos }
func (o *AlterColumnOp) End() token.Pos    { return o.EndPos }

// String renders `old=new_col_def`.
func (o *AlterColumnOp) String() string { return o.Old.String() + "=" + o.New.String() }

// AlterTable is `table_name alter_ops end_or_line`. Lowering produces one
// SQL ALTER TABLE statement per operation, not one merged multi-op
// statement.
type AlterTable struct {
	StartPos   token.Pos
	EndPos     token.Pos
	Table      TableName
	Operations []AlterOperation
}

func (*AlterTable) statementNode()   {}
func (a *AlterTable) Pos() token.Pos { return a.StartPos }
func (a *AlterTable) End() token.Pos { return a.EndPos }

// String renders the canonical `PATCH /table{op,...}` alter request.
func (a *AlterTable) String() string {
	ops := make([]string, len(a.Operations))
	for i, op := range a.Operations {
		ops[i] = op.String()
	}
	return "PATCH /" + a.Table.String() + "{" + strings.Join(ops, ",") + "}"
}
