package ast

import (
	"strings"

	"github.com/ivanceras/restq/token"
)

// ColumnNameExpr is a column reference used inside an expression.
type ColumnNameExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     ColumnName
}

func (*ColumnNameExpr) exprNode()    {}
func (c *ColumnNameExpr) Pos() token.Pos { return c.StartPos }
func (c *ColumnNameExpr) End() token.Pos { return c.EndPos }
func (c *ColumnNameExpr) String() string { return c.Name.String() }

// FunctionExpr is a function call: name plus parameter expressions, used
// both inside projections and as a DataTypeDef default.
type FunctionExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Args     []Expr
}

func (*FunctionExpr) exprNode()    {}
func (f *FunctionExpr) Pos() token.Pos { return f.StartPos }
func (f *FunctionExpr) End() token.Pos { return f.EndPos }

// String renders `name(arg,arg,...)`.
func (f *FunctionExpr) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return f.Name + "(" + strings.Join(args, ",") + ")"
}

// ValueExpr wraps a coarse scalar Value as an expression.
type ValueExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Value    Value
}

func (*ValueExpr) exprNode()    {}
func (v *ValueExpr) Pos() token.Pos { return v.StartPos }
func (v *ValueExpr) End() token.Pos { return v.EndPos }
func (v *ValueExpr) String() string { return displayValue(v.Value) }

// MultiValueExpr is a bracketed list of scalar values, `[v1, v2, ...]`,
// the right-hand side of `in`/`not_in` operations.
type MultiValueExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Values   []Value
}

func (*MultiValueExpr) exprNode()    {}
func (m *MultiValueExpr) Pos() token.Pos { return m.StartPos }
func (m *MultiValueExpr) End() token.Pos { return m.EndPos }

// String renders `[v1,v2,...]`.
func (m *MultiValueExpr) String() string {
	vals := make([]string, len(m.Values))
	for i, v := range m.Values {
		vals[i] = displayValue(v)
	}
	return "[" + strings.Join(vals, ",") + "]"
}

// BinaryOperationExpr is `left operator right`.
type BinaryOperationExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Left     Expr
	Operator Operator
	Right    Expr
}

func (*BinaryOperationExpr) exprNode()    {}
func (b *BinaryOperationExpr) Pos() token.Pos { return b.StartPos }
func (b *BinaryOperationExpr) End() token.Pos { return b.EndPos }

// String renders the canonical surface form: `left=op.right` for every
// operator requiring the value-dot separator - Eq included, so
// `age=eq.30` never collapses to the bare `age=30` shorthand the parser
// also accepts on input - or the bare `left op right` form for the
// connectors (`&`/`|`) and arithmetic operators, per §6's operator table.
func (b *BinaryOperationExpr) String() string {
	if b.Operator.NeedsSeparator() {
		return b.Left.String() + "=" + b.Operator.String() + "." + b.Right.String()
	}
	return b.Left.String() + b.Operator.String() + b.Right.String()
}

// NestedExpr is an expression explicitly grouped in parentheses. It
// carries no semantics beyond preserving the writer's grouping through
// round-trip rendering and must never be collapsed - each paren level in
// the surface syntax adds its own NestedExpr wrapper.
type NestedExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Inner    Expr
}

func (*NestedExpr) exprNode()    {}
func (n *NestedExpr) Pos() token.Pos { return n.StartPos }
func (n *NestedExpr) End() token.Pos { return n.EndPos }

// String wraps the inner expression's rendering in parentheses. Never
// collapsed: a doubly-nested expression renders with both paren levels.
func (n *NestedExpr) String() string { return "(" + n.Inner.String() + ")" }

// ExprRename pairs a projection expression with an optional alias
// (`expr=>alias` or `expr=^alias`; both parse, but canonical rendering
// always emits `=>`, following the precedent in
// _examples/original_source/src/ast/expr.rs's Display impl).
type ExprRename struct {
	Expr   Expr
	Rename *string
}

// String renders `expr` or `expr=>alias`. The rename marker is always
// canonicalized to `=>`, even though `=^` also parses on input - see
// ast/expr.go's doc comment above and DESIGN.md.
func (r *ExprRename) String() string {
	if r.Rename == nil {
		return r.Expr.String()
	}
	return r.Expr.String() + "=>" + *r.Rename
}
