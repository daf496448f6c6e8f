package frontends

import (
	"context"

	"github.com/reusee/contra/logs"
	"github.com/reusee/contra/scanners"
	"github.com/reusee/contra/sources"
)

// Scan tokenizes a source into a new Unit.
type Scan func(ctx context.Context, source *sources.Source) *Unit

func (Module) Scan(
	logger logs.Logger,
) Scan {
	return func(ctx context.Context, source *sources.Source) *Unit {
		toks, errs := scanners.NewScanner(source.Content).ScanTokens()
		logger.DebugContext(ctx, "scanned",
			"tokens", len(toks),
			"errors", len(errs),
		)
		for _, e := range errs {
			logger.InfoContext(ctx, "lexical error",
				"line", e.Line,
				"message", e.Message,
			)
		}
		return &Unit{
			Source:    source,
			Tokens:    toks,
			LexErrors: errs,
		}
	}
}
