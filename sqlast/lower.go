// Lowering: the translation from a parsed ast.Statement (plus, where
// joins or foreign-key columns are involved, a catalog.TableLookup) into
// the sqlast tree defined in expr.go/stmt.go. The rendering rules
// (column option order, data-type spellings, join keyword choice,
// string/number literal formatting) are derived from the six worked
// examples in spec §8, not reverse-engineered from a generic SQL
// grammar - see DESIGN.md for the per-rule justification.
package sqlast

import (
	"math"
	"strconv"
	"strings"

	"github.com/ivanceras/restq/ast"
	"github.com/ivanceras/restq/catalog"
	"github.com/ivanceras/restq/rqerr"
)

// Lower projects the single-statement forms of ast.Statement onto a
// sqlast.Stmt: Select, Insert, Update, Delete, DropTable, and Create
// (*ast.TableDef). AlterTable, BulkUpdate, and BulkDelete each lower to
// a sequence of statements (one per alter operation, or one per CSV
// row) and are handled by LowerAlterTable, LowerBulkUpdateRow, and
// LowerBulkDeleteRows instead. lookup may be nil for statements that
// never consult it (a Select over a single table, Update, Delete); a
// Select whose FromTable carries a join, or a column with a foreign
// reference, requires one.
func Lower(stmt ast.Statement, lookup *catalog.TableLookup) (Stmt, error) {
	switch s := stmt.(type) {
	case *ast.Select:
		return lowerSelect(s, lookup)
	case *ast.Insert:
		return lowerInsert(s, lookup)
	case *ast.Update:
		return lowerUpdate(s)
	case *ast.Delete:
		return lowerDelete(s)
	case *ast.DropTable:
		return &DropTableStmt{Table: s.Table.Name()}, nil
	case *ast.TableDef:
		return lowerCreate(s, lookup)
	case *ast.AlterTable:
		return nil, rqerr.NotImplemented("AlterTable lowers to multiple statements; call LowerAlterTable")
	case *ast.BulkUpdate:
		return nil, rqerr.NotImplemented("BulkUpdate lowers per row; call LowerBulkUpdateRow")
	case *ast.BulkDelete:
		return nil, rqerr.NotImplemented("BulkDelete lowers per row or to a single IN (...); call LowerBulkDeleteRows")
	default:
		return nil, rqerr.NotImplemented("lowering for this statement type")
	}
}

// lowerDataType renders a DataType tag to its SQL spelling. The S* serial
// family lowers to the matching SMALLSERIAL/SERIAL/BIGSERIAL only when
// the column is primary; otherwise it lowers to a plain integer of the
// same width, resolving open question (c) in spec §9. U*/I* never lower
// to a serial type, primary or not.
func lowerDataType(dt ast.DataType, primary bool) (string, error) {
	switch dt {
	case ast.Bool:
		return "boolean", nil
	case ast.S8, ast.S16:
		if primary {
			return "SMALLSERIAL", nil
		}
		return "smallint", nil
	case ast.S32:
		if primary {
			return "SERIAL", nil
		}
		return "int", nil
	case ast.S64:
		if primary {
			return "BIGSERIAL", nil
		}
		return "bigint", nil
	case ast.U8, ast.U16, ast.I8, ast.I16:
		return "smallint", nil
	case ast.U32, ast.I32:
		return "int", nil
	case ast.U64, ast.I64:
		return "bigint", nil
	case ast.F32:
		return "float", nil
	case ast.F64:
		return "double precision", nil
	case ast.Uuid, ast.UuidRandType:
		return "uuid", nil
	case ast.UuidSlugType:
		return "text", nil
	case ast.Local, ast.Utc:
		return "timestamp", nil
	case ast.Text, ast.Ident, ast.Email, ast.Domain, ast.IpAddr, ast.Url:
		return "text", nil
	case ast.Json:
		return "json", nil
	case ast.Bytes:
		return "bytea", nil
	default:
		return "", rqerr.InvalidDataType(dt.String())
	}
}

// lowerColumnDef renders one column declaration in the fixed option
// order confirmed against spec §8 scenarios 1 and 6: type, then
// PRIMARY KEY/UNIQUE (Index produces no clause, and no CREATE INDEX is
// emitted for it either), then
// NOT NULL unless the column is optional, then DEFAULT value (no
// parentheses around it), then REFERENCES table (col).
func lowerColumnDef(cd *ast.ColumnDef, lookup *catalog.TableLookup) (string, error) {
	primary := cd.HasAttribute(ast.Primary)
	typeName, err := lowerDataType(cd.Type.DataType, primary)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(cd.Column.Name())
	b.WriteString(" ")
	b.WriteString(typeName)
	switch {
	case primary:
		b.WriteString(" PRIMARY KEY")
	case cd.HasAttribute(ast.Unique):
		b.WriteString(" UNIQUE")
	}
	if !cd.Type.IsOptional {
		b.WriteString(" NOT NULL")
	}
	if cd.Type.Default != nil {
		def, err := lowerExpr(cd.Type.Default)
		if err != nil {
			return "", err
		}
		b.WriteString(" DEFAULT ")
		b.WriteString(def.SQL())
	}
	if cd.Foreign != nil {
		foreignCol, err := resolveForeignColumn(cd.Foreign, lookup)
		if err != nil {
			return "", err
		}
		b.WriteString(" REFERENCES ")
		b.WriteString(cd.Foreign.Table.Name())
		b.WriteString(" (")
		b.WriteString(foreignCol)
		b.WriteString(")")
	}
	return b.String(), nil
}

// resolveForeignColumn returns the explicit `::target_column` override if
// given, else the target table's sole primary key column, looked up
// through the catalog.
func resolveForeignColumn(fk *ast.ForeignRef, lookup *catalog.TableLookup) (string, error) {
	if fk.Column != nil {
		return fk.Column.Name(), nil
	}
	if lookup == nil {
		return "", rqerr.NoSuppliedTableLookup()
	}
	def, ok := lookup.GetTableDef(fk.Table)
	if !ok {
		return "", rqerr.TableNotFound(fk.Table.Name())
	}
	pk := def.PrimaryColumns()
	if len(pk) != 1 {
		return "", rqerr.TableNotFound(fk.Table.Name() + ": expected exactly one primary key column")
	}
	return pk[0].Column.Name(), nil
}

// lowerCreate renders a TableDef (a PUT statement's body) as CREATE
// TABLE IF NOT EXISTS. Validate runs first so a duplicate column name
// fails before any rendering work.
func lowerCreate(t *ast.TableDef, lookup *catalog.TableLookup) (*CreateTableStmt, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		def, err := lowerColumnDef(c, lookup)
		if err != nil {
			return nil, err
		}
		cols[i] = def
	}
	return &CreateTableStmt{Table: t.Table.Name(), Columns: cols}, nil
}

// LowerAlterTable renders each operation of an AlterTable as its own
// AlterTableStmt, per spec §8 scenario 6 and §9's note that AlterTable
// never merges its operations into one statement.
func LowerAlterTable(at *ast.AlterTable, lookup *catalog.TableLookup) ([]Stmt, error) {
	stmts := make([]Stmt, 0, len(at.Operations))
	for _, op := range at.Operations {
		switch o := op.(type) {
		case *ast.DropColumnOp:
			stmts = append(stmts, &AlterTableStmt{
				Table:  at.Table.Name(),
				Clause: "DROP COLUMN IF EXISTS " + o.Column.Name() + " CASCADE",
			})
		case *ast.AddColumnOp:
			def, err := lowerColumnDef(o.Column, lookup)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, &AlterTableStmt{Table: at.Table.Name(), Clause: "ADD COLUMN " + def})
		case *ast.AlterColumnOp:
			return nil, rqerr.NotImplemented("AlterColumn lowering")
		default:
			return nil, rqerr.NotImplemented("alter operation lowering")
		}
	}
	return stmts, nil
}

// joinKeyword renders a JoinType's SQL keyword. Inner renders as plain
// "JOIN" rather than "INNER JOIN" - a deliberate deviation from a
// literal reading of spec §4.7, made to match the exact expected string
// in scenario 2 (`FROM person JOIN users ON ...`); see DESIGN.md.
func joinKeyword(t ast.JoinType) (string, error) {
	switch t {
	case ast.Inner:
		return "JOIN", nil
	case ast.Left:
		return "LEFT OUTER JOIN", nil
	case ast.Right:
		return "RIGHT OUTER JOIN", nil
	case ast.Full:
		return "FULL OUTER JOIN", nil
	default:
		return "", rqerr.NotImplemented("unknown join type")
	}
}

// lowerFrom renders a FromTable chain, expanding each join link's ON
// clause from the catalog's ForeignKeyPairs between the two adjacent
// tables. When no pair is found, behavior follows the chain's
// TableLookup.Config().OnMissingForeignKey policy (spec §9(a)): suppress
// logs the drop and keeps the join with no ON clause, while
// ErrorOnMissingForeignKey fails the lowering outright.
func lowerFrom(f *ast.FromTable, lookup *catalog.TableLookup) (string, error) {
	var b strings.Builder
	b.WriteString(f.Table.Name())
	prev := f.Table
	for link := f.Join; link != nil; link = link.Next.Join {
		next := link.Next.Table
		kw, err := joinKeyword(link.Type)
		if err != nil {
			return "", err
		}
		if lookup == nil {
			return "", rqerr.NoSuppliedTableLookup()
		}
		pairs := lookup.ForeignKeyPairs(prev, next)
		b.WriteString(" ")
		b.WriteString(kw)
		b.WriteString(" ")
		b.WriteString(next.Name())
		if len(pairs) == 0 {
			if lookup.Config().OnMissingForeignKey != catalog.SuppressJoin {
				return "", rqerr.TableNotFound(prev.Name() + " -> " + next.Name())
			}
			lookup.LogMissingForeignKey(prev, next)
		} else {
			conds := make([]string, len(pairs))
			for i, p := range pairs {
				conds[i] = p.LocalTable + "." + p.LocalColumn + " = " + p.ForeignTable + "." + p.ForeignColumn
			}
			b.WriteString(" ON ")
			b.WriteString(strings.Join(conds, " AND "))
		}
		prev = next
	}
	return b.String(), nil
}

// lowerExpr lowers one parsed expression node to its sqlast rendering.
func lowerExpr(e ast.Expr) (Expr, error) {
	switch x := e.(type) {
	case *ast.ColumnNameExpr:
		return Ident(x.Name.String()), nil
	case *ast.FunctionExpr:
		args := make([]Expr, len(x.Args))
		for i, a := range x.Args {
			le, err := lowerExpr(a)
			if err != nil {
				return nil, err
			}
			args[i] = le
		}
		return FuncCall{Name: x.Name, Args: args}, nil
	case *ast.ValueExpr:
		return Lit(renderValue(x.Value)), nil
	case *ast.MultiValueExpr:
		items := make([]Expr, len(x.Values))
		for i, v := range x.Values {
			items[i] = Lit(renderValue(v))
		}
		return ExprList{Items: items}, nil
	case *ast.NestedExpr:
		inner, err := lowerExpr(x.Inner)
		if err != nil {
			return nil, err
		}
		return Paren{Inner: inner}, nil
	case *ast.BinaryOperationExpr:
		return lowerBinary(x)
	default:
		return nil, rqerr.NotImplemented("expression lowering")
	}
}

// lowerBinary lowers a BinaryOperationExpr. Most operators map to a
// fixed SQL spelling; Starts is bespoke, expanding to an ILIKE with a
// trailing wildcard appended to its literal argument, since the source
// this was distilled from panics on that conversion instead of
// implementing it (see original_source and DESIGN.md).
func lowerBinary(b *ast.BinaryOperationExpr) (Expr, error) {
	switch b.Operator {
	case ast.Starts:
		left, err := lowerExpr(b.Left)
		if err != nil {
			return nil, err
		}
		return lowerStarts(left, b.Right)
	case ast.Is, ast.IsNot:
		return lowerIs(b)
	}
	left, err := lowerExpr(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := lowerExpr(b.Right)
	if err != nil {
		return nil, err
	}
	op, err := sqlOperator(b.Operator)
	if err != nil {
		return nil, err
	}
	return Binary{Left: left, Operator: op, Right: right}, nil
}

// lowerIs renders Is/IsNot: `IS [NOT] NULL` when the right-hand side is
// the literal null, otherwise an ordinary equality/inequality. The NULL
// form has no right operand to speak of, so it is rendered directly into
// a Lit; the equality/inequality form is an ordinary Binary.
// original_source's own Is/IsNot-to-SQL conversion
// panics unconditionally; this is SPEC_FULL.md's resolution, not a
// straight port.
func lowerIs(b *ast.BinaryOperationExpr) (Expr, error) {
	left, err := lowerExpr(b.Left)
	if err != nil {
		return nil, err
	}
	if ve, ok := b.Right.(*ast.ValueExpr); ok {
		if _, isNull := ve.Value.(ast.NullValue); isNull {
			if b.Operator == ast.IsNot {
				return Lit(left.SQL() + " IS NOT NULL"), nil
			}
			return Lit(left.SQL() + " IS NULL"), nil
		}
	}
	right, err := lowerExpr(b.Right)
	if err != nil {
		return nil, err
	}
	op := "="
	if b.Operator == ast.IsNot {
		op = "<>"
	}
	return Binary{Left: left, Operator: op, Right: right}, nil
}

func sqlOperator(op ast.Operator) (string, error) {
	switch op {
	case ast.And:
		return "AND", nil
	case ast.Or:
		return "OR", nil
	case ast.Eq:
		return "=", nil
	case ast.Neq:
		return "!=", nil
	case ast.Lt:
		return "<", nil
	case ast.Lte:
		return "<=", nil
	case ast.Gt:
		return ">", nil
	case ast.Gte:
		return ">=", nil
	case ast.Plus:
		return "+", nil
	case ast.Minus:
		return "-", nil
	case ast.Multiply:
		return "*", nil
	case ast.Divide:
		return "/", nil
	case ast.Modulus:
		return "%", nil
	case ast.In:
		return "IN", nil
	case ast.NotIn:
		return "NOT IN", nil
	case ast.Like:
		return "LIKE", nil
	case ast.ILike:
		return "ILIKE", nil
	default:
		return "", rqerr.NotImplemented("operator lowering for " + op.String())
	}
}

// lowerStarts builds `left ILIKE 'value%'` from Starts' literal string
// argument, matching the informal precedent in its own name (a
// case-insensitive prefix match); a non-literal or non-string
// right-hand side is rejected rather than guessed at.
func lowerStarts(left Expr, rightExpr ast.Expr) (Expr, error) {
	ve, ok := rightExpr.(*ast.ValueExpr)
	if !ok {
		return nil, rqerr.NotImplemented("starts operator with a non-literal argument")
	}
	sv, ok := ve.Value.(ast.StringValue)
	if !ok {
		return nil, rqerr.NotImplemented("starts operator with a non-string argument")
	}
	pattern := Lit(renderStringLiteral(string(sv) + "%"))
	return Binary{Left: left, Operator: "ILIKE", Right: pattern}, nil
}

// renderValue renders a coarse Value as a SQL literal.
func renderValue(v ast.Value) string {
	switch x := v.(type) {
	case ast.NullValue:
		return "NULL"
	case ast.BoolValue:
		if x {
			return "true"
		}
		return "false"
	case ast.NumberValue:
		return formatNumber(float64(x))
	case ast.StringValue:
		return renderStringLiteral(string(x))
	default:
		return "NULL"
	}
}

// renderStringLiteral single-quotes s, doubling any embedded single
// quotes, per spec §8 scenario 3 (`'I''m the new description now'`).
func renderStringLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// formatNumber renders a float64 without a trailing ".0" for whole
// numbers, per spec §8 scenarios 3/4 (`product_id = 1`, not `1.0`).
func formatNumber(f float64) string {
	if !math.IsInf(f, 0) && f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// dataValueText renders an already-coerced DataValue in plain (unquoted)
// form, used only to compare an old and new BulkUpdate cell for
// equality - never written into emitted SQL directly.
func dataValueText(v ast.DataValue) string { return v.String() }

// dataValueLit renders an already-coerced DataValue as a SQL literal:
// unquoted for booleans and every numeric family, single-quoted
// (escaped) otherwise.
func dataValueLit(v ast.DataValue) Expr {
	if _, ok := v.(ast.NilVal); ok {
		return Lit("NULL")
	}
	switch v.Type() {
	case ast.Bool,
		ast.S8, ast.S16, ast.S32, ast.S64,
		ast.U8, ast.U16, ast.U32, ast.U64,
		ast.I8, ast.I16, ast.I32, ast.I64,
		ast.F32, ast.F64:
		return Lit(v.String())
	default:
		return Lit(renderStringLiteral(v.String()))
	}
}

// andExpr AND-chains cond onto acc, returning cond unchanged if acc is
// the zero accumulator (nil).
func andExpr(acc Expr, cond Expr) Expr {
	if acc == nil {
		return cond
	}
	return Binary{Left: acc, Operator: "AND", Right: cond}
}

// lowerSelect lowers a GET request's Select.
func lowerSelect(s *ast.Select, lookup *catalog.TableLookup) (*SelectStmt, error) {
	from, err := lowerFrom(s.From, lookup)
	if err != nil {
		return nil, err
	}
	out := &SelectStmt{From: from}
	if s.Filter != nil {
		w, err := lowerExpr(s.Filter)
		if err != nil {
			return nil, err
		}
		out.Where = w
	}
	for _, g := range s.GroupBy {
		ge, err := lowerExpr(g)
		if err != nil {
			return nil, err
		}
		out.GroupBy = append(out.GroupBy, ge)
	}
	if s.Having != nil {
		h, err := lowerExpr(s.Having)
		if err != nil {
			return nil, err
		}
		out.Having = h
	}
	for _, p := range s.Projection {
		pe, err := lowerExpr(p.Expr)
		if err != nil {
			return nil, err
		}
		alias := ""
		if p.Rename != nil {
			alias = *p.Rename
		}
		out.Projection = append(out.Projection, ProjItem{Expr: pe, Alias: alias})
	}
	for _, o := range s.OrderBy {
		oe, err := lowerExpr(o.Expr)
		if err != nil {
			return nil, err
		}
		dir := ""
		if o.Direction != nil {
			if *o.Direction == ast.Desc {
				dir = "DESC"
			} else {
				dir = "ASC"
			}
		}
		out.OrderBy = append(out.OrderBy, OrderItem{Expr: oe, Direction: dir})
	}
	if s.Range != nil {
		lim := s.Range.Limit()
		out.Limit = &lim
		if off, ok := s.Range.Offset(); ok {
			out.Offset = &off
		}
	}
	return out, nil
}

func returningNames(cols []ast.ColumnName) []string {
	if cols == nil {
		return nil
	}
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name()
	}
	return out
}

// lowerInsert lowers a POST request. Exactly one of the three Source
// shapes is populated by the parser/frame reader.
func lowerInsert(ins *ast.Insert, lookup *catalog.TableLookup) (Stmt, error) {
	cols := make([]string, len(ins.Columns))
	for i, c := range ins.Columns {
		cols[i] = c.Name()
	}
	switch src := ins.Source.(type) {
	case ast.ValuesSource:
		rows := make([][]Expr, len(src.Rows))
		for i, row := range src.Rows {
			cells := make([]Expr, len(row))
			for j, v := range row {
				cells[j] = Lit(renderValue(v))
			}
			rows[i] = cells
		}
		return &InsertStmt{Table: ins.Into.Name(), Columns: cols, Rows: rows, Returning: returningNames(ins.Returning)}, nil
	case ast.ParameterizedSource:
		return &InsertStmt{Table: ins.Into.Name(), Columns: cols, ParamIndices: src.Indices, Returning: returningNames(ins.Returning)}, nil
	case ast.SelectSource:
		// Unreachable from any parser/frame path today: insert()'s header
		// grammar never constructs a SelectSource (see DESIGN.md's "Insert
		// header simplification" note). Kept because the type mirrors the
		// data model spec §3 names and a future header syntax would need
		// exactly this lowering.
		sel, err := lowerSelect(src.Select, lookup)
		if err != nil {
			return nil, err
		}
		return &InsertSelectStmt{Table: ins.Into.Name(), Columns: cols, Select: sel}, nil
	default:
		return nil, rqerr.NotImplemented("insert source lowering")
	}
}

// lowerUpdate lowers a single-row PATCH update.
func lowerUpdate(u *ast.Update) (*UpdateStmt, error) {
	set := make([]SetItem, len(u.Set))
	for i, cv := range u.Set {
		set[i] = SetItem{Column: cv.Column.Name(), Value: Lit(renderValue(cv.Value))}
	}
	out := &UpdateStmt{Table: u.Table.Name(), Set: set}
	if u.Filter != nil {
		w, err := lowerExpr(u.Filter)
		if err != nil {
			return nil, err
		}
		out.Where = w
	}
	return out, nil
}

// lowerDelete lowers a single-row DELETE.
func lowerDelete(d *ast.Delete) (*DeleteStmt, error) {
	out := &DeleteStmt{Table: d.From.Name()}
	if d.Filter != nil {
		w, err := lowerExpr(d.Filter)
		if err != nil {
			return nil, err
		}
		out.Where = w
	}
	return out, nil
}

// LowerInsertRows lowers a POST's CSV body rows - already coerced
// DataValues, one slice per row, aligned to ins.Columns - into a single
// multi-row InsertStmt, mirroring lowerInsert's ValuesSource case but
// for already-typed values rather than the grammar's coarse Value.
func LowerInsertRows(ins *ast.Insert, rows [][]ast.DataValue) (*InsertStmt, error) {
	cols := make([]string, len(ins.Columns))
	for i, c := range ins.Columns {
		cols[i] = c.Name()
	}
	out := make([][]Expr, len(rows))
	for i, row := range rows {
		if len(row) != len(ins.Columns) {
			return nil, rqerr.InvalidValue("row", "insert column count")
		}
		cells := make([]Expr, len(row))
		for j, v := range row {
			cells[j] = dataValueLit(v)
		}
		out[i] = cells
	}
	return &InsertStmt{Table: ins.Into.Name(), Columns: cols, Rows: out, Returning: returningNames(ins.Returning)}, nil
}

// LowerBulkUpdateRow lowers one BulkUpdate CSV row: old and new must
// each hold one already-coerced DataValue per bu.Columns, in the same
// order. The WHERE predicate is built only from the columns tbl marks
// Primary (matched against their old values); the SET list holds only
// the columns whose rendered value actually changed. ok is false (with
// a nil statement and nil error) when no column changed, since spec §8
// requires exactly one UPDATE per row only when there is something to
// set.
func LowerBulkUpdateRow(bu *ast.BulkUpdate, tbl *ast.TableDef, old, new []ast.DataValue) (stmt *UpdateStmt, ok bool, err error) {
	if len(old) != len(bu.Columns) || len(new) != len(bu.Columns) {
		return nil, false, rqerr.InvalidValue("row", "bulk update column count")
	}
	var where Expr
	for i, col := range bu.Columns {
		cd := tbl.ColumnByName(col.Name())
		if cd == nil || !cd.HasAttribute(ast.Primary) {
			continue
		}
		where = andExpr(where, Binary{Left: Ident(col.Name()), Operator: "=", Right: dataValueLit(old[i])})
	}
	var set []SetItem
	for i, col := range bu.Columns {
		if dataValueText(old[i]) == dataValueText(new[i]) {
			continue
		}
		set = append(set, SetItem{Column: col.Name(), Value: dataValueLit(new[i])})
	}
	if len(set) == 0 {
		return nil, false, nil
	}
	return &UpdateStmt{Table: bu.Table.Name(), Set: set, Where: where}, true, nil
}

// LowerBulkDeleteRows lowers a BulkDelete's coerced CSV rows, per spec
// §4.5's two paths: when bd.Columns names exactly one column - that
// column is expected to be the table's sole primary key - every row
// collapses into a single DELETE with `col IN (...)`; otherwise each
// row becomes its own DELETE with a composite equality predicate across
// all of bd.Columns.
func LowerBulkDeleteRows(bd *ast.BulkDelete, rows [][]ast.DataValue) ([]Stmt, error) {
	if len(bd.Columns) == 1 {
		items := make([]Expr, len(rows))
		for i, row := range rows {
			if len(row) != 1 {
				return nil, rqerr.InvalidValue("row", "bulk delete column count")
			}
			items[i] = dataValueLit(row[0])
		}
		where := Binary{Left: Ident(bd.Columns[0].Name()), Operator: "IN", Right: ExprList{Items: items}}
		return []Stmt{&DeleteStmt{Table: bd.From.Name(), Where: where}}, nil
	}
	stmts := make([]Stmt, 0, len(rows))
	for _, row := range rows {
		if len(row) != len(bd.Columns) {
			return nil, rqerr.InvalidValue("row", "bulk delete column count")
		}
		var where Expr
		for i, col := range bd.Columns {
			where = andExpr(where, Binary{Left: Ident(col.Name()), Operator: "=", Right: dataValueLit(row[i])})
		}
		stmts = append(stmts, &DeleteStmt{Table: bd.From.Name(), Where: where})
	}
	return stmts, nil
}
