package pdr

import (
	"time"

	"github.com/wayne1204/socv-final/circuit"
	"github.com/wayne1204/socv-final/cube"
	"github.com/wayne1204/socv-final/encoder"
	"github.com/wayne1204/socv-final/frame"
	"github.com/wayne1204/socv-final/satsolver"
	"github.com/wayne1204/socv-final/ternsim"
)

// Engine drives the IC3/PDR main loop over a single network and a single
// bad (monitor) output (spec.md §4.5; multi-property verification is an
// explicit non-goal).
type Engine struct {
	net     circuit.Network
	frames  *frame.Manager
	sim     *ternsim.Simulator
	monitor circuit.NetId
	opts    Options
	stats   Stats
}

// New returns an Engine checking whether monitor is ever reachable in
// net, using solver as the sole SAT backend.
func New(net circuit.Network, solver satsolver.Solver, monitor circuit.NetId, opts ...Option) (*Engine, error) {
	if net.LatchSize() == 0 {
		return nil, ErrNoLatches
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	enc := encoder.New(net, solver)

	return &Engine{
		net:     net,
		frames:  frame.NewManager(enc),
		sim:     ternsim.New(net, monitor),
		monitor: monitor,
		opts:    cfg,
	}, nil
}

func (e *Engine) logf(format string, args ...interface{}) {
	if e.opts.Logger != nil {
		e.opts.Logger.Printf(format, args...)
	}
}

// Stats returns a snapshot of the engine's solve counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Run executes the outer/inner PDR loop to completion, returning either
// a proof or a counterexample.
func (e *Engine) Run() (*Result, error) {
	top := e.frames.NewFrame() // frame 0

	for {
		if e.opts.MaxFrames > 0 && top+1 > e.opts.MaxFrames {
			return nil, ErrFrameLimitExceeded
		}

		bad := e.extractBadCube(top)
		if bad == nil {
			e.frames.NewFrame()
			e.logf("pdr: frame %d allocated, propagating", e.frames.Top())
			if e.propagate(top) {
				e.stats.Frames = e.frames.Top() + 1
				e.logf("pdr: proved at frame %d", e.frames.Top())

				return &Result{Status: Proved, Stats: e.stats}, nil
			}
			top = e.frames.Top()

			continue
		}

		if trace := e.innerLoop(bad, top); trace != nil {
			e.stats.Frames = e.frames.Top() + 1
			e.logf("pdr: counterexample of length %d found", len(trace)-1)

			return &Result{Status: CounterexampleFound, Trace: trace, Stats: e.stats}, nil
		}
		// Queue drained without reaching depth 0: another bad cube may
		// still be reachable from R_top; loop back to bad-cube extraction.
	}
}

// extractBadCube queries SAT for a state in R_top satisfying the
// monitor, returning a ternary-generalized cube, or nil if R_top ∧ bad
// is unsatisfiable (spec.md §4.5 step 1).
func (e *Engine) extractBadCube(top int) *cube.Cube {
	enc := e.frames.Encoder()
	enc.AddBounded(e.monitor.ID, 0)

	assumps := e.frames.AssumeFrames(top)
	assumps = append(assumps, enc.Lit(e.monitor, 0))

	if !e.solve(assumps) {
		return nil
	}

	c := e.extractLatchCube()
	inputs := e.extractInputVector()

	return e.sim.GeneralizeModeA(c, inputs)
}

// innerLoop processes the proof-obligation queue seeded with bad@top,
// returning a counterexample trace if the queue ever produces a
// depth-0 obligation, or nil if the queue drains first (spec.md §4.5
// step 2).
func (e *Engine) innerLoop(bad *cube.Cube, top int) []*cube.Cube {
	q := newObligationQueue()
	q.push(&obligation{c: bad, frame: top})

	for q.Len() > 0 {
		ob := q.pop()
		if ob.frame == 0 {
			return ob.trace()
		}

		res := e.solveRelative(ob.c, ob.frame, modeExtractModel)
		if res.Frame == cube.FrameNull {
			q.push(&obligation{c: res.Cube, frame: ob.frame - 1, parent: ob})
			q.push(ob)

			continue
		}

		e.frames.BlockCubeInSolver(res.Cube, res.Frame)
		if res.Frame < e.frames.Top() {
			q.push(&obligation{c: ob.c, frame: res.Frame + 1, parent: ob.parent})
		}
	}

	return nil
}

// propagate pushes every cube blocked at a frame j in 0..top forward to
// frame j+1 when relative induction holds there, and reports whether any
// two consecutive frames now hold an identical blocked-cube set — the
// inductive fixed point that proves the property (spec.md §4.5 step 4).
func (e *Engine) propagate(top int) bool {
	for j := 0; j <= top; j++ {
		for _, c := range e.frames.CubesAt(j) {
			res := e.solveRelative(c, j+1, modeNoInduct)
			if res.Frame != cube.FrameNull {
				e.frames.BlockCubeInSolver(c, j+1)
			}
		}
	}

	// j starts at 1, not 0: R_0 = I, enforced only by the a_0 init
	// clauses (frame/manager.go's NewFrame special case), while R_1 = ⊤.
	// Two empty blocked-cube lists at frame 0 and frame 1 do not imply
	// R_0 == R_1 — frame 0 carries the implicit initial-state constraint
	// frame 1 never does, so they can only be compared via the
	// blocked-cube-list proxy from j=1 upward, where both frames share
	// the same ⊤ baseline.
	for j := 1; j <= top; j++ {
		if framesEqual(e.frames.CubesAt(j), e.frames.CubesAt(j+1)) {
			return true
		}
	}

	return false
}

func framesEqual(a, b []*cube.Cube) bool {
	if len(a) != len(b) {
		return false
	}
	for _, ca := range a {
		found := false
		for _, cb := range b {
			if ca.Equal(cb) {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func (e *Engine) solve(assumps []satsolver.Lit) bool {
	e.stats.Solves++
	start := time.Now()
	sat := e.frames.SolveUnderAssumptions(assumps)
	e.stats.SolveTime += time.Since(start)

	return sat
}
