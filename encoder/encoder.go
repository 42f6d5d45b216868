package encoder

import (
	"github.com/wayne1204/socv-final/circuit"
	"github.com/wayne1204/socv-final/satsolver"
)

// Encoder builds the time-unrolled CNF encoding of a circuit.Network
// into a satsolver.Solver, one (net, depth) pair at a time.
//
// The variable map is monotone (spec.md I4): once vars[id][d] is
// assigned it is never reassigned; setVar panics if asked to overwrite
// a slot, which would indicate a logic error in AddBounded's recursion.
type Encoder struct {
	net    circuit.Network
	solver satsolver.Solver
	vars   [][]satsolver.Var // vars[id][depth] = base variable, 0 = unassigned
}

// New returns an Encoder that will materialize net's gates into solver.
func New(net circuit.Network, solver satsolver.Solver) *Encoder {
	return &Encoder{
		net:    net,
		solver: solver,
		vars:   make([][]satsolver.Var, net.NetSize()),
	}
}

// Solver returns the underlying SAT solver, for callers (frame.Manager,
// the PDR engine) that need to add their own clauses against the same
// variable space.
func (e *Encoder) Solver() satsolver.Solver {
	return e.solver
}

// Network returns the circuit being encoded.
func (e *Encoder) Network() circuit.Network {
	return e.net
}

// Exists reports whether net id already has a variable allocated at
// depth.
func (e *Encoder) Exists(id circuit.ID, depth int) bool {
	return depth < len(e.vars[id]) && e.vars[id][depth] != 0
}

// Var returns the base variable of net id at depth, or 0 if it has not
// been encoded yet.
func (e *Encoder) Var(id circuit.ID, depth int) satsolver.Var {
	if !e.Exists(id, depth) {
		return 0
	}

	return e.vars[id][depth]
}

// Lit returns the literal for net n (applying its inversion flag) at
// depth. Panics if n has not been encoded at depth — callers must
// AddBounded first.
func (e *Encoder) Lit(n circuit.NetId, depth int) satsolver.Lit {
	v := e.Var(n.ID, depth)
	if v == 0 {
		panic("encoder: net not yet encoded at this depth")
	}

	return satsolver.MkLit(v, n.Inverted)
}

// InitLiteral returns the unit literal asserting "latch latchIdx ==
// its initial value" at depth 0. Panics if the latch has not been
// encoded at depth 0 yet.
func (e *Encoder) InitLiteral(latchIdx int) satsolver.Lit {
	latch := e.net.GetLatch(latchIdx)
	v := e.Var(latch.ID, 0)
	if v == 0 {
		panic("encoder: latch not yet encoded at depth 0")
	}
	initOne := circuit.InitialValue(e.net, latchIdx) != 0 // ternary.Zero == 0

	return satsolver.MkLit(v, !initOne)
}

func (e *Encoder) setVar(id circuit.ID, depth int, v satsolver.Var) {
	for len(e.vars[id]) <= depth {
		e.vars[id] = append(e.vars[id], 0)
	}
	if e.vars[id][depth] != 0 {
		panic("encoder: (net, depth) variable slot already assigned")
	}
	e.vars[id][depth] = v
}

// allocVar allocates width consecutive fresh variables for (id, depth)
// and records the base. Relies on the solver's NewVar handing out
// consecutive ids across these width calls, which holds because no
// other allocation is interleaved between them.
func (e *Encoder) allocVar(id circuit.ID, depth int, width int) satsolver.Var {
	base := e.solver.NewVar()
	for i := 1; i < width; i++ {
		e.solver.NewVar()
	}
	e.setVar(id, depth, base)

	return base
}
