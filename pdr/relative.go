package pdr

import (
	"github.com/wayne1204/socv-final/circuit"
	"github.com/wayne1204/socv-final/cube"
	"github.com/wayne1204/socv-final/satsolver"
	"github.com/wayne1204/socv-final/ternary"
)

// mode selects what solveRelative does with a SAT result (spec.md §4.7).
type mode int

const (
	// modeExtractModel additionally forbids the current state from
	// equaling s (the one-shot ¬s clause) and, on SAT, extracts and
	// ternary-generalizes a predecessor cube.
	modeExtractModel mode = iota
	// modeNoInduct omits ¬s and, on SAT, returns no cube — used by
	// propagation, which only needs the SAT/UNSAT verdict.
	modeNoInduct
)

// solveRelative asks whether s@d is reachable from R_{d-1} in one step
// (spec.md §4.7). d must be ≥ 1.
func (e *Engine) solveRelative(s *cube.Cube, d int, m mode) cube.TCube {
	enc := e.frames.Encoder()

	sAssumps, essential := e.sPrimeAssumptions(s)
	assumps := append([]satsolver.Lit(nil), sAssumps...)

	var notSLit satsolver.Lit
	if m == modeExtractModel {
		notSLit = e.assertNotS(s)
		assumps = append(assumps, notSLit)
	}
	assumps = append(assumps, e.frames.AssumeFrames(d-1)...)

	sat := e.solve(assumps)

	if m == modeExtractModel {
		enc.Solver().AddUnit(satsolver.Negate(notSLit))
	}

	if sat {
		if m != modeExtractModel {
			return cube.Null()
		}
		pred := e.extractLatchCube()
		inputs := e.extractInputVector()

		return cube.TCube{Cube: e.sim.GeneralizeModeB(pred, inputs), Frame: cube.FrameNull}
	}

	return e.generalizeFromCore(s, essential, d)
}

// sPrimeAssumptions builds, for every non-X latch i of s, the assumption
// that latch i's D-input (evaluated at depth 0, the current-state
// combinational value that defines the next state) equals s_i. essential
// maps latch index to the literal asserted, for the UNSAT-core check
// below.
func (e *Engine) sPrimeAssumptions(s *cube.Cube) ([]satsolver.Lit, map[int]satsolver.Lit) {
	enc := e.frames.Encoder()
	essential := make(map[int]satsolver.Lit, s.Width())
	lits := make([]satsolver.Lit, 0, s.Width())

	for i := 0; i < s.Width(); i++ {
		v := s.Get(i)
		if ternary.IsX(v) {
			continue
		}

		latch := e.net.GetLatch(i)
		enc.AddBounded(latch.ID, 0)
		din := e.net.InputNetId(latch.ID, 0)
		enc.AddBounded(din.ID, 0)

		lit := enc.Lit(din, 0)
		if v == ternary.Zero {
			lit = satsolver.Negate(lit)
		}
		lits = append(lits, lit)
		essential[i] = lit
	}

	return lits, essential
}

// assertNotS allocates a one-shot activation variable t, adds the clause
// forbidding the current state from equaling s unless t is false, and
// returns the literal to assume (t itself).
func (e *Engine) assertNotS(s *cube.Cube) satsolver.Lit {
	enc := e.frames.Encoder()
	t := enc.Solver().NewVar()
	tLit := satsolver.MkLit(t, false)

	clause := make([]satsolver.Lit, 0, s.Width()+1)
	for i := 0; i < s.Width(); i++ {
		v := s.Get(i)
		if ternary.IsX(v) {
			continue
		}
		latch := e.net.GetLatch(i)
		lit := enc.Lit(latch, 0)
		if v == ternary.Zero {
			lit = satsolver.Negate(lit)
		}
		clause = append(clause, satsolver.Negate(lit))
	}
	clause = append(clause, satsolver.Negate(tLit))
	enc.Solver().AddClause(clause)

	return tLit
}

// generalizeFromCore builds the UNSAT-core-weakened cube (spec.md §4.8)
// and determines the frame it is now inductive up to (spec.md §4.7's
// UNSAT interpretation).
func (e *Engine) generalizeFromCore(s *cube.Cube, essential map[int]satsolver.Lit, d int) cube.TCube {
	core := e.frames.Solver().Conflict()

	gen := s.Clone()
	for i := 0; i < s.Width(); i++ {
		lit, tracked := essential[i]
		if !tracked {
			continue
		}
		if !coreContains(core, lit) {
			gen.Weaken(i)
		}
	}
	if gen.IntersectsInitial(circuit.InitialVector(e.net)) {
		gen = s.Clone()
	}

	frameIdx := cube.FrameInf
	for i := d - 1; i <= e.frames.Top(); i++ {
		if coreContains(core, satsolver.MkLit(e.frames.ActVar(i), false)) {
			frameIdx = i + 1

			break
		}
	}

	return cube.TCube{Cube: gen, Frame: frameIdx}
}

func coreContains(core []satsolver.Lit, lit satsolver.Lit) bool {
	want := satsolver.VarOf(lit)
	for _, l := range core {
		if satsolver.VarOf(l) == want {
			return true
		}
	}

	return false
}

func (e *Engine) extractLatchCube() *cube.Cube {
	enc := e.frames.Encoder()
	c := cube.NewZero(e.net.LatchSize())
	for i := 0; i < e.net.LatchSize(); i++ {
		latch := e.net.GetLatch(i)
		enc.AddBounded(latch.ID, 0)
		c.Set(i, enc.Solver().Model(enc.Var(latch.ID, 0)))
	}

	return c
}

func (e *Engine) extractInputVector() []ternary.Value {
	enc := e.frames.Encoder()
	vals := make([]ternary.Value, e.net.InputSize())
	for i := range vals {
		in := e.net.GetInput(i)
		enc.AddBounded(in.ID, 0)
		vals[i] = enc.Solver().Model(enc.Var(in.ID, 0))
	}

	return vals
}

// CheckInductive is the assertCubeUNSAT debug/verification helper named
// in spec.md §8 (P2): it reports whether c, presumed already blocked at
// frame k, is inductive relative to R_{k-1} — i.e. whether
// solveRelative(c@k, modeExtractModel) is UNSAT.
func (e *Engine) CheckInductive(c *cube.Cube, k int) bool {
	res := e.solveRelative(c, k, modeExtractModel)

	return res.Frame != cube.FrameNull
}
