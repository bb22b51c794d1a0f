package sqlast

import (
	"strconv"
	"strings"
)

// Stmt is one lowered SQL statement.
type Stmt interface {
	SQL() string
}

// ProjItem is one projected expression with an optional alias.
type ProjItem struct {
	Expr  Expr
	Alias string
}

func (p ProjItem) sql() string {
	if p.Alias == "" {
		return p.Expr.SQL()
	}
	return p.Expr.SQL() + " AS " + p.Alias
}

// OrderItem is one ORDER BY entry with an optional explicit direction.
type OrderItem struct {
	Expr      Expr
	Direction string // "ASC", "DESC", or "" for unspecified
}

func (o OrderItem) sql() string {
	if o.Direction == "" {
		return o.Expr.SQL()
	}
	return o.Expr.SQL() + " " + o.Direction
}

// SelectStmt is a lowered GET request.
type SelectStmt struct {
	Projection []ProjItem // nil means SELECT *
	From       string     // pre-rendered FROM clause body (table plus any JOINs)
	Where      Expr
	GroupBy    []Expr
	Having     Expr
	OrderBy    []OrderItem
	Limit      *int64
	Offset     *int64
}

func (s *SelectStmt) SQL() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	if len(s.Projection) == 0 {
		b.WriteString("*")
	} else {
		parts := make([]string, len(s.Projection))
		for i, p := range s.Projection {
			parts[i] = p.sql()
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(s.From)
	if s.Where != nil {
		b.WriteString(" WHERE ")
		b.WriteString(s.Where.SQL())
	}
	if len(s.GroupBy) > 0 {
		parts := make([]string, len(s.GroupBy))
		for i, g := range s.GroupBy {
			parts[i] = g.SQL()
		}
		b.WriteString(" GROUP BY ")
		b.WriteString(strings.Join(parts, ", "))
	}
	if s.Having != nil {
		b.WriteString(" HAVING ")
		b.WriteString(s.Having.SQL())
	}
	if len(s.OrderBy) > 0 {
		parts := make([]string, len(s.OrderBy))
		for i, o := range s.OrderBy {
			parts[i] = o.sql()
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(parts, ", "))
	}
	if s.Limit != nil {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.FormatInt(*s.Limit, 10))
	}
	if s.Offset != nil {
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.FormatInt(*s.Offset, 10))
	}
	return b.String()
}

// InsertStmt is a lowered Insert. Exactly one of Rows or ParamIndices is
// populated, mirroring ast.ValuesSource/ast.ParameterizedSource; a
// SelectSource lowers to InsertSelectStmt instead.
type InsertStmt struct {
	Table        string
	Columns      []string
	Rows         [][]Expr
	ParamIndices []int
	Returning    []string
}

func (s *InsertStmt) SQL() string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(s.Table)
	b.WriteString(" (")
	b.WriteString(strings.Join(s.Columns, ", "))
	b.WriteString(") VALUES ")
	switch {
	case s.ParamIndices != nil:
		parts := make([]string, len(s.ParamIndices))
		for i, idx := range s.ParamIndices {
			parts[i] = "$" + strconv.FormatInt(int64(idx), 10)
		}
		b.WriteString("(" + strings.Join(parts, ", ") + ")")
	default:
		rowParts := make([]string, len(s.Rows))
		for i, row := range s.Rows {
			cells := make([]string, len(row))
			for j, c := range row {
				cells[j] = c.SQL()
			}
			rowParts[i] = "(" + strings.Join(cells, ", ") + ")"
		}
		b.WriteString(strings.Join(rowParts, ", "))
	}
	if len(s.Returning) > 0 {
		b.WriteString(" RETURNING ")
		b.WriteString(strings.Join(s.Returning, ", "))
	}
	return b.String()
}

// InsertSelectStmt is a lowered Insert whose source is a nested Select.
type InsertSelectStmt struct {
	Table   string
	Columns []string
	Select  *SelectStmt
}

func (s *InsertSelectStmt) SQL() string {
	return "INSERT INTO " + s.Table + " (" + strings.Join(s.Columns, ", ") + ") " + s.Select.SQL()
}

// SetItem is one `column = value` assignment in an UPDATE's SET list.
type SetItem struct {
	Column string
	Value  Expr
}

func (i SetItem) sql() string { return i.Column + " = " + i.Value.SQL() }

// UpdateStmt is a lowered Update, and also the per-row statement emitted
// by BulkUpdate lowering.
type UpdateStmt struct {
	Table string
	Set   []SetItem
	Where Expr
}

func (s *UpdateStmt) SQL() string {
	parts := make([]string, len(s.Set))
	for i, si := range s.Set {
		parts[i] = si.sql()
	}
	out := "UPDATE " + s.Table + " SET " + strings.Join(parts, ", ")
	if s.Where != nil {
		out += " WHERE " + s.Where.SQL()
	}
	return out
}

// DeleteStmt is a lowered Delete, and also the per-row/composite
// statement emitted by BulkDelete lowering.
type DeleteStmt struct {
	Table string
	Where Expr
}

func (s *DeleteStmt) SQL() string {
	out := "DELETE FROM " + s.Table
	if s.Where != nil {
		out += " WHERE " + s.Where.SQL()
	}
	return out
}

// CreateTableStmt is a lowered Create; Columns holds each column's
// already-rendered definition text.
type CreateTableStmt struct {
	Table   string
	Columns []string
}

func (s *CreateTableStmt) SQL() string {
	return "CREATE TABLE IF NOT EXISTS " + s.Table + " (" + strings.Join(s.Columns, ", ") + ")"
}

// DropTableStmt is a lowered DropTable.
type DropTableStmt struct {
	Table string
}

func (s *DropTableStmt) SQL() string {
	return "DROP TABLE IF EXISTS " + s.Table + " CASCADE"
}

// AlterTableStmt is one lowered alter operation. AlterTable always
// produces one of these per operation - see LowerAlterTable.
type AlterTableStmt struct {
	Table  string
	Clause string // e.g. "DROP COLUMN IF EXISTS description CASCADE"
}

func (s *AlterTableStmt) SQL() string {
	return "ALTER TABLE " + s.Table + " " + s.Clause
}

