package parser

import (
	"testing"

	"github.com/ivanceras/restq/ast"
)

func TestParseSelect(t *testing.T) {
	tests := []struct {
		input      string
		wantTable  string
		wantFilter bool
	}{
		{"GET /person", "person", false},
		{"person", "person", false},
		{"GET /person?age=gt.30", "person", true},
		{"GET /person?age=gt.30&order_by=name&limit=10", "person", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmt, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			sel, ok := stmt.(*ast.Select)
			if !ok {
				t.Fatalf("expected *ast.Select, got %T", stmt)
			}
			if sel.From.Table.Name() != tt.wantTable {
				t.Errorf("expected table %q, got %q", tt.wantTable, sel.From.Table.Name())
			}
			if (sel.Filter != nil) != tt.wantFilter {
				t.Errorf("expected filter presence %v, got %v", tt.wantFilter, sel.Filter != nil)
			}
		})
	}
}

func TestParseSelectJoin(t *testing.T) {
	stmt, err := Parse("GET /person<-category")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	sel := stmt.(*ast.Select)
	if sel.From.Join == nil {
		t.Fatal("expected a join")
	}
	if sel.From.Join.Type != ast.Left {
		t.Errorf("expected Left join, got %v", sel.From.Join.Type)
	}
}

func TestParseSelectOrderAndLimit(t *testing.T) {
	stmt, err := Parse("GET /person?order_by=name&limit=10&offset=5")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	sel := stmt.(*ast.Select)
	if len(sel.OrderBy) != 1 {
		t.Fatalf("expected 1 order item, got %d", len(sel.OrderBy))
	}
	if sel.Range == nil {
		t.Fatal("expected a range")
	}
	if sel.Range.Limit() != 10 {
		t.Errorf("expected limit 10, got %d", sel.Range.Limit())
	}
	off, ok := sel.Range.Offset()
	if !ok || off != 5 {
		t.Errorf("expected offset 5, got %d (ok=%v)", off, ok)
	}
}

func TestParseInsert(t *testing.T) {
	stmt, err := Parse("POST /category(category_id,name)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	ins, ok := stmt.(*ast.Insert)
	if !ok {
		t.Fatalf("expected *ast.Insert, got %T", stmt)
	}
	if ins.Into.Name() != "category" {
		t.Errorf("expected table category, got %q", ins.Into.Name())
	}
	if len(ins.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(ins.Columns))
	}
	if _, ok := ins.Source.(ast.ValuesSource); !ok {
		t.Errorf("expected Insert.Source to default to ValuesSource, got %T", ins.Source)
	}
}

func TestParseInsertBraceColumnList(t *testing.T) {
	stmt, err := Parse("POST /category{category_id,name}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	ins := stmt.(*ast.Insert)
	if len(ins.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(ins.Columns))
	}
}

func TestParseUpdate(t *testing.T) {
	stmt, err := Parse("PATCH /category{name='Fiction'}?category_id=1")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	upd, ok := stmt.(*ast.Update)
	if !ok {
		t.Fatalf("expected *ast.Update, got %T", stmt)
	}
	if len(upd.Set) != 1 {
		t.Fatalf("expected 1 set item, got %d", len(upd.Set))
	}
	if upd.Filter == nil {
		t.Error("expected a filter")
	}
}

func TestParseBulkUpdate(t *testing.T) {
	stmt, err := Parse("PATCH /category{category_id,name}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	bu, ok := stmt.(*ast.BulkUpdate)
	if !ok {
		t.Fatalf("expected *ast.BulkUpdate, got %T", stmt)
	}
	if len(bu.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(bu.Columns))
	}
}

func TestParseDelete(t *testing.T) {
	stmt, err := Parse("DELETE /category?category_id=1")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	del, ok := stmt.(*ast.Delete)
	if !ok {
		t.Fatalf("expected *ast.Delete, got %T", stmt)
	}
	if del.From.Name() != "category" {
		t.Errorf("expected table category, got %q", del.From.Name())
	}
	if del.Filter == nil {
		t.Error("expected a filter")
	}
}

func TestParseBulkDelete(t *testing.T) {
	stmt, err := Parse("DELETE /category{category_id}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	bd, ok := stmt.(*ast.BulkDelete)
	if !ok {
		t.Fatalf("expected *ast.BulkDelete, got %T", stmt)
	}
	if len(bd.Columns) != 1 {
		t.Fatalf("expected 1 column, got %d", len(bd.Columns))
	}
}

func TestParseDropTable(t *testing.T) {
	stmt, err := Parse("DELETE /-category")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	dt, ok := stmt.(*ast.DropTable)
	if !ok {
		t.Fatalf("expected *ast.DropTable, got %T", stmt)
	}
	if dt.Table.Name() != "category" {
		t.Errorf("expected table category, got %q", dt.Table.Name())
	}
}

func TestParseTableDef(t *testing.T) {
	stmt, err := Parse("PUT /category{*category_id:s32,name:text,description:text?}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	td, ok := stmt.(*ast.TableDef)
	if !ok {
		t.Fatalf("expected *ast.TableDef, got %T", stmt)
	}
	if td.Table.Name() != "category" {
		t.Errorf("expected table category, got %q", td.Table.Name())
	}
	if len(td.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(td.Columns))
	}
	pk := td.PrimaryColumns()
	if len(pk) != 1 || pk[0].Column.Name() != "category_id" {
		t.Errorf("expected category_id as sole primary key, got %v", pk)
	}
	desc := td.ColumnByName("description")
	if desc == nil || !desc.Type.IsOptional {
		t.Error("expected description to be optional")
	}
}

func TestParseTableDefPlusPrefixOptional(t *testing.T) {
	stmt, err := Parse("PUT /+category{*category_id:s32,name:text}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, ok := stmt.(*ast.TableDef); !ok {
		t.Fatalf("expected *ast.TableDef, got %T", stmt)
	}
}

func TestParseAlterTable(t *testing.T) {
	stmt, err := Parse("PATCH /category{+email:text}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	at, ok := stmt.(*ast.AlterTable)
	if !ok {
		t.Fatalf("expected *ast.AlterTable, got %T", stmt)
	}
	if len(at.Operations) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(at.Operations))
	}
	if _, ok := at.Operations[0].(*ast.AddColumnOp); !ok {
		t.Errorf("expected an AddColumnOp, got %T", at.Operations[0])
	}
}

func TestParseInvalidInputs(t *testing.T) {
	inputs := []string{
		"PUT /+category{*category_id:s32",
		"POST /category(",
		"GET /t?a=",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Errorf("expected a parse error for %q", input)
			}
		})
	}
}
