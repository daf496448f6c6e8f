package debugs

import (
	"testing"

	"github.com/reusee/contra/parsers"
	"github.com/reusee/contra/scanners"
	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	toks, errs := scanners.Scan("1 + 2 @")
	expr, err := parsers.Parse(toks)
	if err != nil {
		t.Fatal(err)
	}
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		// stdin is not a terminal under go test, the repl returns at once
		tap(t.Context(), "test", map[string]any{
			"tokens": toks,
			"errors": errs,
			"ast":    expr,
			"sexpr": func() string {
				return expr.String()
			},
		})
	})
}
