package frontends

import (
	"context"
	"errors"
	"sync"

	"github.com/reusee/contra/contraconfigs"
	"github.com/reusee/contra/logs"
	"github.com/reusee/contra/sources"
	"github.com/reusee/contra/syncs"
)

// CompileAll compiles sources concurrently. Units are in the order of sources.
type CompileAll func(ctx context.Context, srcs []*sources.Source) ([]*Unit, error)

func (Module) CompileAll(
	compile Compile,
	jobs contraconfigs.Jobs,
	logger logs.Logger,
) CompileAll {
	return func(ctx context.Context, srcs []*sources.Source) ([]*Unit, error) {
		units := make([]*Unit, len(srcs))
		errs := make([]error, len(srcs))
		sem := syncs.NewSemaphore(int(jobs))
		wg := new(sync.WaitGroup)

		for i, source := range srcs {
			if err := sem.AcquireContext(ctx); err != nil {
				errs[i] = wrap(err)
				break
			}
			wg.Go(func() {
				defer sem.Release()
				units[i], errs[i] = compile(ctx, source)
			})
		}
		wg.Wait()

		if err := errors.Join(errs...); err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "compile all",
			"sources", len(srcs),
			"jobs", jobs,
		)
		return units, nil
	}
}
