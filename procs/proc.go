package procs

// Proc is one step of a staged computation over C.
// Run returns the next step, or nil when the computation is complete.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}

type Func[C any] func(ctx C) (Proc[C], error)

var _ Proc[any] = Func[any](nil)

func (f Func[C]) Run(ctx C) (Proc[C], error) {
	return f(ctx)
}

// RunAll drives proc until it completes or fails.
func RunAll[C any](ctx C, proc Proc[C]) error {
	var err error
	for proc != nil {
		proc, err = proc.Run(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}
