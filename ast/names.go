package ast

import "strings"

// TableName is a possibly schema-qualified table reference (at most one
// level of qualification: "schema.table"). It carries no identity beyond
// its textual form.
type TableName struct {
	Parts []string
}

// NewTableName builds a TableName from its dot-separated parts.
func NewTableName(parts ...string) TableName { return TableName{Parts: parts} }

// Name returns the unqualified table name (the last part).
func (t TableName) Name() string {
	if len(t.Parts) == 0 {
		return ""
	}
	return t.Parts[len(t.Parts)-1]
}

// Schema returns the schema qualifier, or "" if unqualified.
func (t TableName) Schema() string {
	if len(t.Parts) < 2 {
		return ""
	}
	return t.Parts[len(t.Parts)-2]
}

func (t TableName) String() string { return strings.Join(t.Parts, ".") }

// Equal compares two table names by their textual form.
func (t TableName) Equal(o TableName) bool { return t.String() == o.String() }

// ColumnName is a column reference with up to two levels of qualification
// (schema.table.column).
type ColumnName struct {
	Parts []string
}

// NewColumnName builds a ColumnName from its dot-separated parts.
func NewColumnName(parts ...string) ColumnName { return ColumnName{Parts: parts} }

// Name returns the unqualified column name (the last part).
func (c ColumnName) Name() string {
	if len(c.Parts) == 0 {
		return ""
	}
	return c.Parts[len(c.Parts)-1]
}

func (c ColumnName) String() string { return strings.Join(c.Parts, ".") }

// Equal compares two column names by their textual form.
func (c ColumnName) Equal(o ColumnName) bool { return c.String() == o.String() }
