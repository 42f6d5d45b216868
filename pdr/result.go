package pdr

import "github.com/wayne1204/socv-final/cube"

// Status is the verdict an Engine.Run produces.
type Status int

const (
	// Proved means two consecutive frames coincided: the property holds
	// for all reachable states.
	Proved Status = iota
	// CounterexampleFound means a concrete trace from the initial state
	// to a bad state was found.
	CounterexampleFound
)

// String renders a Status for diagnostics.
func (s Status) String() string {
	switch s {
	case Proved:
		return "proved"
	case CounterexampleFound:
		return "counterexample"
	default:
		return "unknown"
	}
}

// Result is the outcome of a full Run.
type Result struct {
	Status Status
	// Trace holds the counterexample, ascending from the initial state
	// (Trace[0]) to the bad state (Trace[len(Trace)-1]), populated only
	// when Status == CounterexampleFound.
	Trace []*cube.Cube
	Stats Stats
}
