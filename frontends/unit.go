package frontends

import (
	"github.com/reusee/contra/exprs"
	"github.com/reusee/contra/scanners"
	"github.com/reusee/contra/sources"
	"github.com/reusee/contra/tokens"
)

// Unit is the result of compiling one source.
type Unit struct {
	Source    *sources.Source
	Tokens    []tokens.Token
	LexErrors scanners.Errors
	// Expr is nil if parsing failed or did not run
	Expr exprs.Expr
	// Err is the parse error, located in Source
	Err error
	// Skipped reports that parsing did not run because of lexical errors in strict mode
	Skipped bool
}

// Diagnostics returns lexical errors followed by the parse error, each with its source line.
func (u *Unit) Diagnostics() (ret []error) {
	for _, e := range u.LexErrors {
		ret = append(ret, sources.WithLine(e, u.Source, e.Line))
	}
	if u.Err != nil {
		ret = append(ret, u.Err)
	}
	return
}

func (u *Unit) OK() bool {
	return len(u.LexErrors) == 0 && u.Err == nil && !u.Skipped
}
