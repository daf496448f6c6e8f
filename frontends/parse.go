package frontends

import (
	"context"
	"errors"

	"github.com/reusee/contra/logs"
	"github.com/reusee/contra/parsers"
	"github.com/reusee/contra/sources"
)

// Parse builds the tree of a scanned unit.
type Parse func(ctx context.Context, unit *Unit)

func (Module) Parse(
	logger logs.Logger,
) Parse {
	return func(ctx context.Context, unit *Unit) {
		expr, err := parsers.Parse(unit.Tokens)
		if err != nil {
			line := 0
			var parseErr *parsers.Error
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			unit.Err = sources.WithLine(err, unit.Source, line)
			logger.InfoContext(ctx, "parse error",
				"line", line,
				"error", err,
			)
			return
		}
		unit.Expr = expr
		logger.DebugContext(ctx, "parsed",
			"expr", expr,
		)
	}
}
