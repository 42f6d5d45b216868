package cube

import (
	"math"

	"github.com/wayne1204/socv-final/ternary"
)

// FrameNull marks a TCube produced by a SAT (not UNSAT) relative-induction
// query: there is no frame at which the cube was blocked.
const FrameNull = -1

// FrameInf marks a TCube that is inductive relative to every frame,
// forever — the strongest possible result of relative induction.
const FrameInf = math.MaxInt32

// Cube is a conjunction of latch literals: a partial assignment over the
// circuit's latch variables, one ternary.Value per latch.
type Cube struct {
	latches []ternary.Value
}

// TCube pairs a Cube with the frame it is associated with: either a
// non-negative frame index, FrameNull ("no frame, the query was SAT"), or
// FrameInf ("inductive relative to all frames forever").
type TCube struct {
	Cube  *Cube
	Frame int
}

// Null returns the sentinel TCube produced by a SAT relative-induction
// query: no cube, no frame.
func Null() TCube {
	return TCube{Cube: nil, Frame: FrameNull}
}
