package exprs

// Inspect traverses expr in depth-first pre-order.
// Children of a node are skipped if fn returns false for it.
func Inspect(expr Expr, fn func(Expr) bool) {
	if expr == nil || !fn(expr) {
		return
	}
	switch expr := expr.(type) {
	case *Binary:
		Inspect(expr.Left, fn)
		Inspect(expr.Right, fn)
	case *Unary:
		Inspect(expr.Right, fn)
	case *Grouping:
		Inspect(expr.Expression, fn)
	}
}

func Depth(expr Expr) int {
	switch expr := expr.(type) {
	case *Binary:
		return 1 + max(Depth(expr.Left), Depth(expr.Right))
	case *Unary:
		return 1 + Depth(expr.Right)
	case *Grouping:
		return 1 + Depth(expr.Expression)
	case *Literal:
		return 1
	}
	return 0
}
