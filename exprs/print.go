package exprs

import (
	"strings"
)

// Print renders expr in parenthesized prefix form, like (+ 1 (* 2 3)).
func Print(expr Expr) string {
	var sb strings.Builder
	writeExpr(&sb, expr)
	return sb.String()
}

func writeExpr(sb *strings.Builder, expr Expr) {
	switch expr := expr.(type) {
	case *Binary:
		parenthesize(sb, expr.Operator.Lexeme, expr.Left, expr.Right)
	case *Unary:
		parenthesize(sb, expr.Operator.Lexeme, expr.Right)
	case *Literal:
		sb.WriteString(expr.Value)
	case *Grouping:
		parenthesize(sb, "group", expr.Expression)
	case nil:
		sb.WriteString("<nil>")
	}
}

func parenthesize(sb *strings.Builder, name string, exprs ...Expr) {
	sb.WriteString("(")
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteString(" ")
		writeExpr(sb, expr)
	}
	sb.WriteString(")")
}
