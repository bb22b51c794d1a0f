// Package restq provides RestQ, a URL-and-CSV oriented surface syntax
// that projects onto SQL.
//
// Basic usage:
//
//	stmt, err := restq.Parse("GET /person?age=gt.30&order_by=name&limit=10")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lookup := catalog.New()
//	lowered, err := restq.Lower(stmt, lookup)
//	fmt.Println(lowered.SQL())
//
// Reading a framed CSV request stream:
//
//	mr := frame.NewMultiReader(r)
//	f, err := mr.Next()
//	cols, err := frame.RowColumns(f.Statement, frame.NewCatalogLookup(lookup.GetTableDef))
//	rows := frame.NewRowReader(f.Body(), cols)
package restq

import (
	"github.com/ivanceras/restq/ast"
	"github.com/ivanceras/restq/catalog"
	"github.com/ivanceras/restq/parser"
	"github.com/ivanceras/restq/sqlast"
)

// Parse parses a single RestQ header line into its Statement.
func Parse(input string) (ast.Statement, error) {
	return parser.Parse(input)
}

// Lower projects a parsed Statement onto its SQL lowering, consulting
// lookup for join expansion and primary-key extraction. lookup may be
// nil for statements that need no catalog (e.g. Create, Delete without
// a join).
func Lower(stmt ast.Statement, lookup *catalog.TableLookup) (sqlast.Stmt, error) {
	return sqlast.Lower(stmt, lookup)
}

// Statement is the interface for all RestQ statements.
type Statement = ast.Statement

// Expr is the interface for all RestQ filter expressions.
type Expr = ast.Expr

// Node is the base interface for all AST nodes.
type Node = ast.Node

// Common type aliases for convenience.
type (
	Select        = ast.Select
	Insert        = ast.Insert
	Update        = ast.Update
	Delete        = ast.Delete
	BulkUpdate    = ast.BulkUpdate
	BulkDelete    = ast.BulkDelete
	TableDef      = ast.TableDef
	DropTable     = ast.DropTable
	AlterTable    = ast.AlterTable
	TableName     = ast.TableName
	ColumnName    = ast.ColumnName
	DataType      = ast.DataType
	DataValue     = ast.DataValue
	Value         = ast.Value
	TableLookup   = catalog.TableLookup
	CatalogConfig = catalog.Config
)

// New returns an empty table catalog, matching catalog.New.
func New() *catalog.TableLookup {
	return catalog.New()
}
