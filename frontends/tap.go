package frontends

import (
	"context"
	"sync"

	"github.com/reusee/contra/cmds"
	"github.com/reusee/contra/debugs"
	"github.com/reusee/contra/exprs"
	"github.com/reusee/contra/parsers"
	"github.com/reusee/contra/scanners"
)

var tapFlag = cmds.Switch("-tap", "open a starlark repl on each compiled unit")

// TapUnit lets the user inspect a compiled unit when -tap is given.
type TapUnit func(ctx context.Context, unit *Unit)

func (Module) TapUnit(
	tap debugs.Tap,
) TapUnit {
	// one repl at a time
	var l sync.Mutex
	return func(ctx context.Context, unit *Unit) {
		if !*tapFlag {
			return
		}
		l.Lock()
		defer l.Unlock()
		tap(ctx, unit.Source.Name, TapGlobals(unit))
	}
}

// TapGlobals are the names visible in the tap repl.
func TapGlobals(unit *Unit) map[string]any {
	return map[string]any{
		"unit":   unit,
		"tokens": unit.Tokens,
		"ast":    unit.Expr,
		"errors": unit.Diagnostics(),
		"scan": func(src string) []string {
			toks, _ := scanners.Scan(src)
			ret := make([]string, 0, len(toks))
			for _, tok := range toks {
				ret = append(ret, tok.String())
			}
			return ret
		},
		"parse": func(src string) string {
			expr, err := parsers.ParseString(src)
			if err != nil {
				return err.Error()
			}
			return exprs.Print(expr)
		},
		"sexpr": func() string {
			if unit.Expr == nil {
				return ""
			}
			return exprs.Print(unit.Expr)
		},
		"kinds": func() []string {
			ret := make([]string, 0, len(unit.Tokens))
			for _, tok := range unit.Tokens {
				ret = append(ret, tok.Kind.String())
			}
			return ret
		},
	}
}
