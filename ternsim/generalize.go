package ternsim

import (
	"github.com/wayne1204/socv-final/cube"
	"github.com/wayne1204/socv-final/ternary"
)

// GeneralizeModeA weakens c (a fully-assigned bad cube, from a SAT model)
// by tentatively setting each latch slot to X, ascending by index, and
// keeping the weakening only if the monitor output still simulates to 1
// (spec.md §4.6, Mode A). Used for bad-cube extraction: the result is a
// state predicate, every concretization of which still exhibits the bad
// output.
//
// inputValues is the primary-input assignment paired with c; it is held
// fixed throughout (ternary simulation only ever weakens the latch
// cube, never the input vector).
func (s *Simulator) GeneralizeModeA(c *cube.Cube, inputValues []ternary.Value) *cube.Cube {
	working := c.Clone()

	for i := 0; i < working.Width(); i++ {
		if ternary.IsX(working.Get(i)) {
			continue
		}

		orig := working.Get(i)
		working.Set(i, ternary.X)
		s.Run(working, inputValues)
		if !ternary.IsTrue(s.MonitorValue()) {
			working.Set(i, orig)
		}
	}

	return working
}

// GeneralizeModeB weakens c the same way, keeping a weakening only if
// every latch's D-input still simulates to a non-X value (spec.md §4.6,
// Mode B). Used for predecessor cubes surfaced by relative induction:
// the result must still pin down every latch's next state, so it
// remains a valid predecessor under the transition relation.
func (s *Simulator) GeneralizeModeB(c *cube.Cube, inputValues []ternary.Value) *cube.Cube {
	working := c.Clone()

	for i := 0; i < working.Width(); i++ {
		if ternary.IsX(working.Get(i)) {
			continue
		}

		orig := working.Get(i)
		working.Set(i, ternary.X)
		s.Run(working, inputValues)
		if !s.DNonX() {
			working.Set(i, orig)
		}
	}

	return working
}
