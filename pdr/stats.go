package pdr

import "time"

// Stats accumulates engine-wide counters over a Run, for callers that
// want to report solver load (outer layers only — this module does no
// logging of its own, per spec.md §1's scope).
type Stats struct {
	// Solves is the number of SAT queries issued (bad-cube extraction,
	// relative induction, and propagation combined).
	Solves int
	// SolveTime is the cumulative wall-clock time spent inside the SAT
	// solver across all Solves.
	SolveTime time.Duration
	// Frames is the number of frames allocated by the time Run returned.
	Frames int
}
