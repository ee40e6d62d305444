package vehicles

type Op string

const (
	OpStart        Op = "start"
	OpRide         Op = "ride"
	OpStop         Op = "stop"
	OpMeasureSpeed Op = "speed"
	OpSetStart     Op = "set start behavior"
	OpSetRide      Op = "set ride behavior"
	OpSetStop      Op = "set stop behavior"
	OpRecord       Op = "record"
)

type Outcome int

const (
	// Done means the operation took effect.
	Done Outcome = iota
	// Rejected means the operation is invalid in the current state. Nothing changed.
	Rejected
	// BehaviorFailed means the behavior faulted and the transition was aborted.
	BehaviorFailed
)

func (o Outcome) String() string {
	switch o {
	case Done:
		return "done"
	case Rejected:
		return "rejected"
	case BehaviorFailed:
		return "behavior failed"
	}
	return "unknown"
}

// Result describes one operation. Running and Speed are the state after it.
type Result struct {
	Op      Op
	Outcome Outcome
	Running bool
	Speed   int
	// Err is the behavior fault when Outcome is BehaviorFailed.
	Err error
	// LogErr is set when the transition happened but its record was not written.
	LogErr error
}

func (r Result) OK() bool {
	return r.Outcome == Done && r.LogErr == nil
}
