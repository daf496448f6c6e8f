package frontends

import (
	"errors"
	"fmt"

	"github.com/reusee/contra/exprs"
	"github.com/reusee/contra/tokens"
)

var ErrInvariant = errors.New("front end invariant violated")

// check verifies the properties every unit must have after compilation.
func check(unit *Unit) error {
	toks := unit.Tokens
	if len(toks) == 0 {
		return fmt.Errorf("%w: empty token sequence", ErrInvariant)
	}
	for i, tok := range toks {
		if tok.Kind == tokens.EOF && i != len(toks)-1 {
			return fmt.Errorf("%w: EOF at %d of %d tokens", ErrInvariant, i, len(toks))
		}
		if tok.Offset < 0 || tok.Offset+len(tok.Lexeme) > len(unit.Source.Content) {
			return fmt.Errorf("%w: token %s out of source", ErrInvariant, tok)
		}
		if unit.Source.Content[tok.Offset:tok.Offset+len(tok.Lexeme)] != tok.Lexeme {
			return fmt.Errorf("%w: token %s does not match source", ErrInvariant, tok)
		}
	}
	if last := toks[len(toks)-1]; last.Kind != tokens.EOF {
		return fmt.Errorf("%w: last token is %s", ErrInvariant, last)
	}
	if unit.Expr != nil && unit.Err != nil {
		return fmt.Errorf("%w: both tree and parse error", ErrInvariant)
	}
	if unit.Expr != nil {
		var err error
		exprs.Inspect(unit.Expr, func(expr exprs.Expr) bool {
			if u, ok := expr.(*exprs.Unary); ok &&
				u.Operator.Kind != tokens.Bang && u.Operator.Kind != tokens.Minus {
				err = fmt.Errorf("%w: unary operator %s", ErrInvariant, u.Operator)
				return false
			}
			return true
		})
		if err != nil {
			return err
		}
	}
	return nil
}
