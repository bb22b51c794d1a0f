package ast

import (
	"strings"

	"github.com/ivanceras/restq/token"
)

// Select is a GET request: a from-table chain plus optional filter,
// group-by, having, projection, order-by, and paging range.
type Select struct {
	StartPos   token.Pos
	EndPos     token.Pos
	From       *FromTable
	Filter     Expr   // optional; nil means no WHERE
	GroupBy    []Expr // optional
	Having     Expr   // optional
	Projection []*ExprRename // optional; nil means SELECT *
	OrderBy    []*Order      // optional
	Range      Range         // optional
}

func (*Select) statementNode()   {}
func (s *Select) Pos() token.Pos { return s.StartPos }
func (s *Select) End() token.Pos { return s.EndPos }

// String renders the canonical `GET /from_table{projection}?query_string`
// request, following parser/select.go's selectStmt/queryString grammar:
// an optional filter expression first, then the named params
// (group_by, having, order_by, and the Range) joined by `&`, all after a
// single leading `?`.
func (s *Select) String() string {
	var b strings.Builder
	b.WriteString("GET /")
	b.WriteString(s.From.String())
	if s.Projection != nil {
		parts := make([]string, len(s.Projection))
		for i, p := range s.Projection {
			parts[i] = p.String()
		}
		b.WriteString("{")
		b.WriteString(strings.Join(parts, ","))
		b.WriteString("}")
	}

	var params []string
	if s.Filter != nil {
		params = append(params, s.Filter.String())
	}
	if len(s.GroupBy) > 0 {
		cols := make([]string, len(s.GroupBy))
		for i, c := range s.GroupBy {
			cols[i] = c.String()
		}
		params = append(params, "group_by="+strings.Join(cols, ","))
	}
	if s.Having != nil {
		params = append(params, "having="+s.Having.String())
	}
	if len(s.OrderBy) > 0 {
		items := make([]string, len(s.OrderBy))
		for i, o := range s.OrderBy {
			items[i] = o.String()
		}
		params = append(params, "order_by="+strings.Join(items, ","))
	}
	if s.Range != nil {
		params = append(params, s.Range.String())
	}
	if len(params) > 0 {
		b.WriteString("?")
		b.WriteString(strings.Join(params, "&"))
	}
	return b.String()
}
