package exprs

import "github.com/reusee/contra/tokens"

// Expr is one of *Binary, *Unary, *Literal or *Grouping.
// Every node owns its children; trees are not modified after parsing.
type Expr interface {
	String() string
	exprNode()
}

type Binary struct {
	Left     Expr
	Operator tokens.Token
	Right    Expr
}

type Unary struct {
	Operator tokens.Token
	Right    Expr
}

// Literal holds the source text of numbers and strings, or one of "true", "false" and "nil".
type Literal struct {
	Value string
	Kind  tokens.Kind
	Line  int
}

// Grouping keeps parentheses visible to later passes.
type Grouping struct {
	Expression Expr
}

func (*Binary) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}

func (b *Binary) String() string {
	return Print(b)
}

func (u *Unary) String() string {
	return Print(u)
}

func (l *Literal) String() string {
	return Print(l)
}

func (g *Grouping) String() string {
	return Print(g)
}

// Line returns the line of the leftmost token of expr.
func Line(expr Expr) int {
	switch expr := expr.(type) {
	case *Binary:
		return Line(expr.Left)
	case *Unary:
		return expr.Operator.Line
	case *Literal:
		return expr.Line
	case *Grouping:
		return Line(expr.Expression)
	}
	return 0
}
