package frontends

import (
	"context"

	"github.com/reusee/contra/contraconfigs"
	"github.com/reusee/contra/logs"
	"github.com/reusee/contra/modes"
	"github.com/reusee/contra/procs"
	"github.com/reusee/contra/sources"
)

// Compile scans and parses one source.
// The returned error is not about the program text; diagnostics are in the Unit.
type Compile func(ctx context.Context, source *sources.Source) (*Unit, error)

type compilation struct {
	ctx    context.Context
	source *sources.Source
	unit   *Unit
}

type stage = procs.Proc[*compilation]

func (Module) Compile(
	scan Scan,
	parse Parse,
	strict contraconfigs.StrictLexing,
	mode modes.Mode,
	newSpan logs.NewSpan,
	logger logs.Logger,
	tapUnit TapUnit,
) Compile {

	scanStage := procs.Func[*compilation](func(c *compilation) (stage, error) {
		if err := c.ctx.Err(); err != nil {
			return nil, wrap(err)
		}
		c.unit = scan(c.ctx, c.source)
		return nil, nil
	})

	parseStage := procs.Func[*compilation](func(c *compilation) (stage, error) {
		if strict && len(c.unit.LexErrors) > 0 {
			c.unit.Skipped = true
			logger.InfoContext(c.ctx, "parse skipped",
				"lexical errors", len(c.unit.LexErrors),
			)
			return nil, nil
		}
		parse(c.ctx, c.unit)
		return nil, nil
	})

	stages := procs.Procs[*compilation]{
		scanStage,
		parseStage,
	}
	if mode.Checked() {
		stages = append(stages, procs.Func[*compilation](func(c *compilation) (stage, error) {
			if err := check(c.unit); err != nil {
				return nil, wrap(err)
			}
			return nil, nil
		}))
	}

	return func(ctx context.Context, source *sources.Source) (*Unit, error) {
		ctx = logs.WithSource(ctx, source.Name)
		ctx, _ = newSpan(ctx, "compile")
		c := &compilation{
			ctx:    ctx,
			source: source,
		}
		if err := procs.RunAll(c, stage(stages)); err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "compiled",
			"ok", c.unit.OK(),
		)
		tapUnit(ctx, c.unit)
		return c.unit, nil
	}
}
