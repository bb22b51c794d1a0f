package ast

import "github.com/ivanceras/restq/token"

// JoinType is one of the four directional digraph-arrow joins.
type JoinType int

const (
	Inner JoinType = iota
	Left
	Right
	Full
)

func (j JoinType) String() string {
	switch j {
	case Inner:
		return "-><-"
	case Left:
		return "<-"
	case Right:
		return "->"
	case Full:
		return "<-->"
	default:
		return "?"
	}
}

// FromTable is a left-associative chain: a head table plus at most one
// (JoinType, FromTable) continuation.
type FromTable struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    TableName
	Join     *JoinLink
}

func (*FromTable) tableExprNode() {}
func (f *FromTable) Pos() token.Pos { return f.StartPos }
func (f *FromTable) End() token.Pos { return f.EndPos }

// String renders the join chain with its directional digraph arrows,
// e.g. `person-><-users`.
func (f *FromTable) String() string {
	s := f.Table.String()
	if f.Join != nil {
		s += f.Join.Type.String() + f.Join.Next.String()
	}
	return s
}

// tableExprNode is a marker for table-position AST nodes; kept minimal
// since RestQ has only one concrete TableExpr shape (FromTable).
type TableExpr interface {
	Node
	tableExprNode()
}

// JoinLink is one link in a FromTable chain.
type JoinLink struct {
	Type JoinType
	Next *FromTable
}

// Tables returns the chain flattened head-first.
func (f *FromTable) Tables() []TableName {
	out := []TableName{f.Table}
	for cur := f; cur.Join != nil; cur = cur.Join.Next {
		out = append(out, cur.Join.Next.Table)
	}
	return out
}
