package debugs

import (
	"github.com/reusee/contra/exprs"
	"github.com/reusee/contra/tokens"
	"go.starlark.net/starlark"
)

func literalValue(l tokens.Literal) starlark.Value {
	switch l.Kind {
	case tokens.LiteralNumber:
		if f, err := l.Number(); err == nil {
			return starlark.Float(f)
		}
		return starlark.String(l.Text)
	case tokens.LiteralString:
		return starlark.String(l.Text)
	}
	return starlark.None
}

func tokenValue(t tokens.Token) starlark.Value {
	d := starlark.NewDict(5)
	d.SetKey(starlark.String("kind"), starlark.String(t.Kind.String()))
	d.SetKey(starlark.String("lexeme"), starlark.String(t.Lexeme))
	d.SetKey(starlark.String("line"), starlark.MakeInt(t.Line))
	d.SetKey(starlark.String("offset"), starlark.MakeInt(t.Offset))
	d.SetKey(starlark.String("literal"), literalValue(t.Literal))
	return d
}

// exprValue converts a tree to nested dicts keyed like the JSON encoding.
func exprValue(expr exprs.Expr) starlark.Value {
	d := starlark.NewDict(5)
	set := func(k string, v starlark.Value) {
		d.SetKey(starlark.String(k), v)
	}

	switch expr := expr.(type) {
	case *exprs.Binary:
		if expr == nil {
			return starlark.None
		}
		set("type", starlark.String("binary"))
		set("operator", starlark.String(expr.Operator.Lexeme))
		set("left", exprValue(expr.Left))
		set("right", exprValue(expr.Right))
	case *exprs.Unary:
		if expr == nil {
			return starlark.None
		}
		set("type", starlark.String("unary"))
		set("operator", starlark.String(expr.Operator.Lexeme))
		set("right", exprValue(expr.Right))
	case *exprs.Literal:
		if expr == nil {
			return starlark.None
		}
		set("type", starlark.String("literal"))
		set("value", starlark.String(expr.Value))
		set("kind", starlark.String(expr.Kind.String()))
	case *exprs.Grouping:
		if expr == nil {
			return starlark.None
		}
		set("type", starlark.String("grouping"))
		set("expression", exprValue(expr.Expression))
	default:
		return starlark.None
	}

	set("line", starlark.MakeInt(exprs.Line(expr)))
	return d
}
