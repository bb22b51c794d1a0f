package restq

import (
	"strings"
	"testing"

	"github.com/ivanceras/restq/ast"
)

func TestParseAndLowerSelectWithFilterOrderAndLimit(t *testing.T) {
	stmt, err := Parse("GET /person?age=gt.30&order_by=name&limit=10&offset=5")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	lowered, err := Lower(stmt, New())
	if err != nil {
		t.Fatalf("Lower error: %v", err)
	}
	sql := lowered.SQL()
	for _, want := range []string{"SELECT * FROM person", "age > 30", "ORDER BY name", "LIMIT 10", "OFFSET 5"} {
		if !strings.Contains(sql, want) {
			t.Errorf("expected SQL to contain %q, got %q", want, sql)
		}
	}
}

func TestParseAndLowerSelectWithJoin(t *testing.T) {
	lookup := New()
	lookup.AddTable(&TableDef{
		Table: ast.NewTableName("category"),
		Columns: []*ast.ColumnDef{
			{Column: ast.NewColumnName("category_id")},
		},
	})
	lookup.AddTable(&TableDef{
		Table: ast.NewTableName("product"),
		Columns: []*ast.ColumnDef{
			{Column: ast.NewColumnName("product_id")},
			{Column: ast.NewColumnName("category_id"), Foreign: &ast.ForeignRef{Table: ast.NewTableName("category")}},
		},
	})

	stmt, err := Parse("GET /product<-category")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	lowered, err := Lower(stmt, lookup)
	if err != nil {
		t.Fatalf("Lower error: %v", err)
	}
	sql := lowered.SQL()
	if !strings.Contains(sql, "JOIN") {
		t.Errorf("expected a JOIN clause, got %q", sql)
	}
}

func TestParseAndLowerInsert(t *testing.T) {
	stmt, err := Parse("POST /category(category_id,name)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	lowered, err := Lower(stmt, New())
	if err != nil {
		t.Fatalf("Lower error: %v", err)
	}
	if !strings.Contains(lowered.SQL(), "INSERT INTO category") {
		t.Errorf("unexpected SQL: %q", lowered.SQL())
	}
}

func TestParseAndLowerDropTable(t *testing.T) {
	stmt, err := Parse("DELETE /-category")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	lowered, err := Lower(stmt, New())
	if err != nil {
		t.Fatalf("Lower error: %v", err)
	}
	if !strings.Contains(lowered.SQL(), "DROP TABLE") {
		t.Errorf("unexpected SQL: %q", lowered.SQL())
	}
}

func TestParseAndLowerTableDef(t *testing.T) {
	stmt, err := Parse("PUT /category{*category_id:s32,name:text}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	lowered, err := Lower(stmt, New())
	if err != nil {
		t.Fatalf("Lower error: %v", err)
	}
	if !strings.Contains(lowered.SQL(), "CREATE TABLE IF NOT EXISTS category") {
		t.Errorf("unexpected SQL: %q", lowered.SQL())
	}
}

func TestParseAndLowerDelete(t *testing.T) {
	stmt, err := Parse("DELETE /category?category_id=1")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	lowered, err := Lower(stmt, New())
	if err != nil {
		t.Fatalf("Lower error: %v", err)
	}
	if !strings.Contains(lowered.SQL(), "DELETE FROM category") {
		t.Errorf("unexpected SQL: %q", lowered.SQL())
	}
}
