package encoder

import (
	"github.com/wayne1204/socv-final/circuit"
	"github.com/wayne1204/socv-final/satsolver"
)

// addFalse allocates the single variable for the AIG constant-false net
// and asserts it false.
func (e *Encoder) addFalse(id circuit.ID, depth int) {
	v := e.allocVar(id, depth, 1)
	e.solver.AddUnit(satsolver.MkLit(v, true))
}

// addPI allocates a fresh variable per bit of a primary input; no
// clauses are needed since primary inputs are unconstrained.
func (e *Encoder) addPI(id circuit.ID, depth int) {
	e.allocVar(id, depth, e.net.NetWidth(id))
}

// addFF materializes a latch at depth. At depth 0 it allocates a fresh
// variable (the latch's initial value lives in circuit.InitialValue, not
// in any clause here — it becomes a unit fact only when a caller asks
// for InitLiteral). At depth>0 the latch's value is definitionally its
// D-input's value one step earlier: reuse that variable directly if the
// D-input is non-inverted, or allocate a buffer variable tied to its
// negation otherwise.
func (e *Encoder) addFF(id circuit.ID, depth int) {
	width := e.net.NetWidth(id)
	if depth == 0 {
		e.allocVar(id, depth, width)
		return
	}

	din := e.net.InputNetId(id, 0)
	prev := e.Var(din.ID, depth-1)
	if !din.Inverted {
		e.setVar(id, depth, prev)
		return
	}

	v := e.allocVar(id, depth, width)
	for i := 0; i < width; i++ {
		e.buf(satsolver.Var(int(v)+i), satsolver.Var(int(prev)+i))
	}
}

// addAnd allocates y and emits the Tseitin clauses for y = a ∧ b, per
// bit, respecting each fan-in's inversion flag.
func (e *Encoder) addAnd(id circuit.ID, depth int) {
	width := e.net.NetWidth(id)
	y := e.allocVar(id, depth, width)

	a := e.net.InputNetId(id, 0)
	b := e.net.InputNetId(id, 1)
	va := e.Var(a.ID, depth)
	vb := e.Var(b.ID, depth)

	for i := 0; i < width; i++ {
		e.and2(
			satsolver.Var(int(y)+i),
			satsolver.Var(int(va)+i), a.Inverted,
			satsolver.Var(int(vb)+i), b.Inverted,
		)
	}
}

// and2 emits the three Tseitin clauses encoding y == a ∧ b:
// (¬y∨a)(¬y∨b)(y∨¬a∨¬b).
func (e *Encoder) and2(y, va satsolver.Var, aInv bool, vb satsolver.Var, bInv bool) {
	aLit := satsolver.MkLit(va, aInv)
	bLit := satsolver.MkLit(vb, bInv)

	e.solver.AddClause([]satsolver.Lit{satsolver.MkLit(y, true), aLit})
	e.solver.AddClause([]satsolver.Lit{satsolver.MkLit(y, true), bLit})
	e.solver.AddClause([]satsolver.Lit{satsolver.MkLit(y, false), satsolver.Negate(aLit), satsolver.Negate(bLit)})
}

// buf emits the two clauses encoding y == ¬a (a buffer with inversion).
func (e *Encoder) buf(y, a satsolver.Var) {
	aLit := satsolver.MkLit(a, true)

	e.solver.AddClause([]satsolver.Lit{satsolver.MkLit(y, true), aLit})
	e.solver.AddClause([]satsolver.Lit{satsolver.MkLit(y, false), satsolver.Negate(aLit)})
}
