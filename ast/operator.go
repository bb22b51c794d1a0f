package ast

// Operator is the closed set of binary operators: arithmetic, comparison,
// membership, pattern, null-check and boolean. Each carries a flag for
// whether canonical rendering requires the "value-dot" separator
// (`column=op.value`) rather than a bare `column op value` form.
type Operator int

const (
	Eq Operator = iota
	Neq
	Lt
	Lte
	Gt
	Gte
	In
	NotIn
	Is
	IsNot
	Like
	ILike
	Starts
	And
	Or
	Plus
	Minus
	Multiply
	Divide
	Modulus
)

var operatorTokens = [...]string{
	Eq: "eq", Neq: "neq", Lt: "lt", Lte: "lte", Gt: "gt", Gte: "gte",
	In: "in", NotIn: "not_in", Is: "is", IsNot: "is_not",
	Like: "like", ILike: "ilike", Starts: "starts",
	And: "&", Or: "|",
	Plus: "+", Minus: "-", Multiply: "*", Divide: "/", Modulus: "%",
}

func (o Operator) String() string {
	if int(o) >= 0 && int(o) < len(operatorTokens) {
		return operatorTokens[o]
	}
	return "?"
}

// NeedsSeparator reports whether this operator's canonical surface form
// requires the dot separator between the `op` token and its right-hand
// side (`column=op.value`), as opposed to the bare connector/arithmetic
// forms (`a&b`, `a+b`).
func (o Operator) NeedsSeparator() bool {
	switch o {
	case Eq, Neq, Lt, Lte, Gt, Gte, In, NotIn, Is, IsNot, Like, ILike, Starts:
		return true
	default:
		return false
	}
}

// namedOperators maps every canonical token spelling to its Operator.
// Longer/overlapping prefixes (not_in before in, is_not before is) must be
// tried first by the parser; this table itself imposes no order.
var namedOperators = map[string]Operator{
	"eq": Eq, "neq": Neq, "lt": Lt, "lte": Lte, "gt": Gt, "gte": Gte,
	"in": In, "not_in": NotIn, "is": Is, "is_not": IsNot,
	"like": Like, "ilike": ILike, "starts": Starts,
}

// ParseNamedOperator resolves one of the dot-separator-requiring operator
// tokens (eq, neq, lt, lte, gt, gte, in, not_in, is, is_not, like, ilike,
// starts) by name.
func ParseNamedOperator(name string) (Operator, bool) {
	op, ok := namedOperators[name]
	return op, ok
}
