package procs

// Proc is one step. Run returns the step to run next, nil when finished.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}

type Func[C any] func(ctx C) (Proc[C], error)

var _ Proc[any] = Func[any](nil)

func (f Func[C]) Run(ctx C) (Proc[C], error) {
	return f(ctx)
}

// Procs runs its elements in order, each to completion.
type Procs[C any] []Proc[C]

var _ Proc[any] = Procs[any]{}

func (p Procs[C]) Run(ctx C) (Proc[C], error) {
	if len(p) == 0 {
		return nil, nil
	}
	proc, err := p[0].Run(ctx)
	if err != nil {
		return nil, err
	}
	if proc == nil {
		if len(p) == 1 {
			return nil, nil
		}
		return p[1:], nil
	}
	// copy, so the caller's slice is not rewritten
	next := make(Procs[C], len(p))
	copy(next, p)
	next[0] = proc
	return next, nil
}

// Run drives proc until it returns nil or an error.
func Run[C any](ctx C, proc Proc[C]) error {
	for proc != nil {
		var err error
		proc, err = proc.Run(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}
