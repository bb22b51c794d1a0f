// Package ast defines RestQ's abstract syntax tree: the intermediate
// representation a parsed header line is lowered into before the sqlast
// package projects it onto SQL.
package ast

import (
	"fmt"

	"github.com/ivanceras/restq/token"
)

// Node is the base interface implemented by every AST node that carries
// source position information.
type Node interface {
	Pos() token.Pos
	End() token.Pos
}

// Statement is the tagged union named in the data model: Select, Insert,
// Update, Delete, BulkUpdate, BulkDelete, DropTable, AlterTable, or a
// *TableDef standing for Create. String renders the canonical
// method-prefixed RestQ surface syntax for the statement (§4.6's
// dispatcher table run in reverse), not SQL.
type Statement interface {
	Node
	fmt.Stringer
	statementNode()
}

// Expr is a recursive expression: column reference, function call, scalar
// value, multi-value list, binary operation, or an explicitly nested
// (parenthesized) expression. String renders the canonical RestQ surface
// syntax: operators requiring the value-dot separator (§6) always emit
// it, and NestedExpr always re-emits its parentheses.
type Expr interface {
	Node
	fmt.Stringer
	exprNode()
}

// Source is an Insert's data source: explicit VALUES rows, a nested
// SELECT, or a positional parameter list.
type Source interface {
	sourceNode()
}

// AlterOperation is one entry inside an ALTER table operation list.
type AlterOperation interface {
	Node
	fmt.Stringer
	alterOperationNode()
}

// Range is a Select's paging specification: Page{page, page_size} or
// Limit{limit, offset?}. String renders the canonical query-string form
// (`page=N&page_size=M` or `limit=N[&offset=M]`) - the two concrete types
// are NOT interchangeable on render, since always emitting one shape
// would not round-trip a Select parsed from the other.
type Range interface {
	// Limit returns the SQL LIMIT value this range implies.
	Limit() int64
	// Offset returns the SQL OFFSET value this range implies, if any.
	Offset() (int64, bool)
	fmt.Stringer
	rangeNode()
}
