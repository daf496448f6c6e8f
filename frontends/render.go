package frontends

import (
	"fmt"
	"io"

	"github.com/reusee/contra/contraconfigs"
	"github.com/reusee/contra/exprs"
)

// Render writes a unit in the configured format.
type Render func(w io.Writer, unit *Unit) error

func (Module) Render(
	format contraconfigs.Format,
) Render {
	return func(w io.Writer, unit *Unit) error {
		return WriteUnit(w, unit, format)
	}
}

// WriteUnit writes the tokens or the tree of unit. Nothing is written for a unit without a tree
// unless format is FormatTokens.
func WriteUnit(w io.Writer, unit *Unit, format contraconfigs.Format) error {
	if err := format.Validate(); err != nil {
		return err
	}

	switch format {

	case contraconfigs.FormatTokens:
		for _, tok := range unit.Tokens {
			if _, err := fmt.Fprintln(w, tok.String()); err != nil {
				return wrap(err)
			}
		}

	case contraconfigs.FormatSExpr:
		if unit.Expr == nil {
			return nil
		}
		if _, err := fmt.Fprintln(w, exprs.Print(unit.Expr)); err != nil {
			return wrap(err)
		}

	case contraconfigs.FormatJSON:
		if unit.Expr == nil {
			return nil
		}
		bs, err := exprs.ToJSON(unit.Expr)
		if err != nil {
			return wrap(err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", bs); err != nil {
			return wrap(err)
		}

	}

	return nil
}

// WriteDiagnostics writes every diagnostic of unit, one per paragraph.
func WriteDiagnostics(w io.Writer, unit *Unit) error {
	for _, diag := range unit.Diagnostics() {
		if _, err := fmt.Fprintln(w, diag.Error()); err != nil {
			return wrap(err)
		}
	}
	return nil
}
