// Package sqlast is C8: a closed abstract SQL statement tree - a target
// in its own right, not a string template - plus the SQL() rendering
// that exercises it. The node-switch dispatch and buffer-building style
// follow _examples/freeeve-machparse's format/formatter.go; the tree
// shape and rendering rules are RestQ's own, per spec §4.8.
package sqlast

import "strings"

// Expr is a node in a lowered SQL expression tree.
type Expr interface {
	SQL() string
}

// Ident is a bare SQL identifier (column or table reference).
type Ident string

func (i Ident) SQL() string { return string(i) }

// Lit is a pre-rendered SQL literal: a number, a single-quoted and
// escaped string, `true`/`false`, or `NULL`.
type Lit string

func (l Lit) SQL() string { return string(l) }

// Paren preserves an explicit grouping from the source RestQ expression;
// it is never collapsed, mirroring ast.NestedExpr.
type Paren struct {
	Inner Expr
}

func (p Paren) SQL() string { return "(" + p.Inner.SQL() + ")" }

// Binary is `left operator right` with operator already lowered to its
// SQL spelling.
type Binary struct {
	Left     Expr
	Operator string
	Right    Expr
}

func (b Binary) SQL() string { return b.Left.SQL() + " " + b.Operator + " " + b.Right.SQL() }

// FuncCall is a SQL function call.
type FuncCall struct {
	Name string
	Args []Expr
}

func (f FuncCall) SQL() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.SQL()
	}
	return f.Name + "(" + strings.Join(parts, ", ") + ")"
}

// ExprList renders a parenthesized, comma-joined list - the right-hand
// side of IN/NOT IN.
type ExprList struct {
	Items []Expr
}

func (l ExprList) SQL() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.SQL()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
