package exprs

import "encoding/json"

type jsonNode struct {
	Type       string    `json:"type"`
	Operator   string    `json:"operator,omitempty"`
	Left       *jsonNode `json:"left,omitempty"`
	Right      *jsonNode `json:"right,omitempty"`
	Expression *jsonNode `json:"expression,omitempty"`
	Value      *string   `json:"value,omitempty"`
	Kind       string    `json:"kind,omitempty"`
	Line       int       `json:"line"`
}

func toJSONNode(expr Expr) *jsonNode {
	switch expr := expr.(type) {
	case *Binary:
		return &jsonNode{
			Type:     "binary",
			Operator: expr.Operator.Lexeme,
			Left:     toJSONNode(expr.Left),
			Right:    toJSONNode(expr.Right),
			Line:     expr.Operator.Line,
		}
	case *Unary:
		return &jsonNode{
			Type:     "unary",
			Operator: expr.Operator.Lexeme,
			Right:    toJSONNode(expr.Right),
			Line:     expr.Operator.Line,
		}
	case *Literal:
		value := expr.Value
		return &jsonNode{
			Type:  "literal",
			Value: &value,
			Kind:  expr.Kind.String(),
			Line:  expr.Line,
		}
	case *Grouping:
		return &jsonNode{
			Type:       "grouping",
			Expression: toJSONNode(expr.Expression),
			Line:       Line(expr),
		}
	}
	return nil
}

func ToJSON(expr Expr) ([]byte, error) {
	return json.MarshalIndent(toJSONNode(expr), "", "  ")
}
