package ast

import (
	"strings"

	"github.com/ivanceras/restq/token"
)

func columnNameStrings(cols []ColumnName) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.String()
	}
	return out
}

// ValuesSource is an Insert source of explicit VALUES rows.
type ValuesSource struct {
	Rows [][]Value
}

func (ValuesSource) sourceNode() {}

// SelectSource is an Insert source of `INSERT INTO t SELECT ...`.
type SelectSource struct {
	Select *Select
}

func (SelectSource) sourceNode() {}

// ParameterizedSource is an Insert source of positional parameters
// (`$1, $2, ...`); it lowers to sqlast's ParameterizedValue(indices).
type ParameterizedSource struct {
	Indices []int
}

func (ParameterizedSource) sourceNode() {}

// Insert is `table{col_list}('?returning='col_list)?` with one of the
// three Source shapes providing the row data.
type Insert struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Into      TableName
	Columns   []ColumnName
	Source    Source
	Returning []ColumnName // optional; nil means no RETURNING
}

func (*Insert) statementNode()   {}
func (i *Insert) Pos() token.Pos { return i.StartPos }
func (i *Insert) End() token.Pos { return i.EndPos }

// String renders `POST /table{col,...}('?returning='col,...)?`. Source is
// not part of the surface syntax - it is carried in the CSV/JSON body, not
// the header - so it does not appear in the rendering.
func (i *Insert) String() string {
	s := "POST /" + i.Into.String() + "{" + strings.Join(columnNameStrings(i.Columns), ",") + "}"
	if i.Returning != nil {
		s += "?returning=" + strings.Join(columnNameStrings(i.Returning), ",")
	}
	return s
}

// DeriveInsert builds a parameterized Insert over every column of a
// table definition: `INSERT INTO t (c1, c2, ...) VALUES ($1, $2, ...)
// RETURNING c1, c2, ...`. Supplements spec.md per original_source's TableDef::derive_insert
// convenience; see SPEC_FULL.md §4.
func DeriveInsert(t *TableDef) *Insert {
	cols := make([]ColumnName, len(t.Columns))
	indices := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = c.Column
		indices[i] = i + 1
	}
	return &Insert{
		Into:      t.Table,
		Columns:   cols,
		Source:    ParameterizedSource{Indices: indices},
		Returning: cols,
	}
}

// ColumnValue is one `column=value` pair in an Update's SET list.
type ColumnValue struct {
	Column ColumnName
	Value  Value
}

// Update is `table{col=val,...}('?'filter)?` - a single-row update whose
// new values are carried inline in the header, filtered by an optional
// expression.
type Update struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    TableName
	Set      []ColumnValue
	Filter   Expr // optional
}

func (*Update) statementNode()   {}
func (u *Update) Pos() token.Pos { return u.StartPos }
func (u *Update) End() token.Pos { return u.EndPos }

// String renders `PATCH /table{col=val,...}('?'filter)?`.
func (u *Update) String() string {
	pairs := make([]string, len(u.Set))
	for i, cv := range u.Set {
		pairs[i] = cv.Column.String() + "=" + displayValue(cv.Value)
	}
	s := "PATCH /" + u.Table.String() + "{" + strings.Join(pairs, ",") + "}"
	if u.Filter != nil {
		s += "?" + u.Filter.String()
	}
	return s
}

// BulkUpdate is `table{col_list}`: each CSV body row carries 2*N values,
// the first N being old values (used to build the per-row primary-key
// predicate) and the last N the new values (used to build the per-row
// SET list of only the columns that changed).
type BulkUpdate struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    TableName
	Columns  []ColumnName
}

func (*BulkUpdate) statementNode()   {}
func (b *BulkUpdate) Pos() token.Pos { return b.StartPos }
func (b *BulkUpdate) End() token.Pos { return b.EndPos }

// String renders `PATCH /table{col,...}`, the bulk-update header; the
// old/new value pairs live in the CSV body, not the header.
func (b *BulkUpdate) String() string {
	return "PATCH /" + b.Table.String() + "{" + strings.Join(columnNameStrings(b.Columns), ",") + "}"
}

// Delete is `table('?'filter)?`.
type Delete struct {
	StartPos token.Pos
	EndPos   token.Pos
	From     TableName
	Filter   Expr // optional
}

func (*Delete) statementNode()   {}
func (d *Delete) Pos() token.Pos { return d.StartPos }
func (d *Delete) End() token.Pos { return d.EndPos }

// String renders `DELETE /table('?'filter)?`.
func (d *Delete) String() string {
	s := "DELETE /" + d.From.String()
	if d.Filter != nil {
		s += "?" + d.Filter.String()
	}
	return s
}

// BulkDelete is `table{col_list}`: each CSV body row's fields (aligned to
// Columns) identify one row to delete. sqlast.LowerBulkDeleteRows picks
// one of two lowering paths from the column count alone: a single DELETE
// with `col IN (...)` when Columns names exactly one column, else one
// DELETE per row with a composite equality predicate. The caller cannot
// choose the path, and the single column is not checked against the
// table's primary key.
type BulkDelete struct {
	StartPos token.Pos
	EndPos   token.Pos
	From     TableName
	Columns  []ColumnName
}

func (*BulkDelete) statementNode()   {}
func (b *BulkDelete) Pos() token.Pos { return b.StartPos }
func (b *BulkDelete) End() token.Pos { return b.EndPos }

// String renders `DELETE /table{col,...}`, the bulk-delete header; the
// per-row identifying values live in the CSV body, not the header.
func (b *BulkDelete) String() string {
	return "DELETE /" + b.From.String() + "{" + strings.Join(columnNameStrings(b.Columns), ",") + "}"
}
