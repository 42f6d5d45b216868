package frame

import (
	"github.com/wayne1204/socv-final/circuit"
	"github.com/wayne1204/socv-final/cube"
	"github.com/wayne1204/socv-final/encoder"
	"github.com/wayne1204/socv-final/satsolver"
	"github.com/wayne1204/socv-final/ternary"
)

// Manager owns the activation-variable vector and per-frame blocked-cube
// bookkeeping described in spec.md §4.4. It shares both the solver and
// the net/depth variable map with the encoder that materializes the
// transition relation its relative-induction queries run against.
type Manager struct {
	enc     *encoder.Encoder
	net     circuit.Network
	actVars []satsolver.Var  // actVars[k] = a_k
	blocked [][]*cube.Cube   // blocked[k] = cubes blocked at frame k
	perm    []*cube.Cube     // cubes blocked at cube.FrameInf (no activation guard)
}

// NewManager returns a Manager driving enc's solver. Callers must call
// NewFrame at least once (for frame 0) before issuing any query.
func NewManager(enc *encoder.Encoder) *Manager {
	return &Manager{enc: enc, net: enc.Network()}
}

// Solver returns the shared SAT solver, for callers (the PDR engine) that
// need to issue relative-induction queries combining frame assumptions
// with their own one-shot literals.
func (m *Manager) Solver() satsolver.Solver {
	return m.enc.Solver()
}

// Encoder returns the shared transition-relation encoder.
func (m *Manager) Encoder() *encoder.Encoder {
	return m.enc
}

// Top returns the index of the newest frame.
func (m *Manager) Top() int {
	return len(m.actVars) - 1
}

// NewFrame appends a fresh activation variable a_k and returns its index
// k. For k = 0, it also encodes the initial state under a_0: for each
// latch, the clause `lit_latch_false ∨ ¬a_0`, i.e. "assuming a_0, every
// latch equals its initial value" (spec.md §4.4, generalized per §9 to
// consult each latch's real initial value rather than hardcoding zero).
func (m *Manager) NewFrame() int {
	k := len(m.actVars)
	a := m.enc.Solver().NewVar()
	m.actVars = append(m.actVars, a)
	m.blocked = append(m.blocked, nil)

	if k == 0 {
		for i := 0; i < m.net.LatchSize(); i++ {
			latch := m.net.GetLatch(i)
			m.enc.AddBounded(latch.ID, 0)
			init := m.enc.InitLiteral(i)
			m.enc.Solver().AddClause([]satsolver.Lit{init, satsolver.MkLit(a, true)})
		}
	}

	return k
}

// BlockCubeInSolver adds the clause (⋁ ¬lit(c)) ∨ ¬a_k blocking c at
// frame k, and records c in that frame's bookkeeping list. k = FrameInf
// blocks c permanently, with no activation literal, and is recorded
// separately since it is not guarded by any a_k.
func (m *Manager) BlockCubeInSolver(c *cube.Cube, k int) {
	lits := blockingLiterals(m.enc, c)
	if k == cube.FrameInf {
		m.enc.Solver().AddClause(lits)
		m.perm = append(m.perm, c)

		return
	}

	lits = append(lits, satsolver.MkLit(m.actVars[k], true))
	m.enc.Solver().AddClause(lits)
	m.blocked[k] = append(m.blocked[k], c)
}

// blockingLiterals builds ⋁ ¬lit_i(c) over c's non-X latch slots, each
// literal read at depth 0 (a blocked cube always describes a present
// state).
func blockingLiterals(enc *encoder.Encoder, c *cube.Cube) []satsolver.Lit {
	var lits []satsolver.Lit
	for i := 0; i < c.Width(); i++ {
		v := c.Get(i)
		if ternary.IsX(v) {
			continue
		}
		latch := enc.Network().GetLatch(i)
		enc.AddBounded(latch.ID, 0)
		lit := enc.Lit(latch, 0)
		if ternary.IsTrue(v) {
			lit = satsolver.Negate(lit)
		}
		lits = append(lits, lit)
	}

	return lits
}

// AssumeFrames returns the assumption literals {a_k, ..., a_top}
// restricting a query to states consistent with every frame from k
// upward.
func (m *Manager) AssumeFrames(k int) []satsolver.Lit {
	lits := make([]satsolver.Lit, 0, len(m.actVars)-k)
	for i := k; i < len(m.actVars); i++ {
		lits = append(lits, satsolver.MkLit(m.actVars[i], false))
	}

	return lits
}

// SolveUnderAssumptions delegates to the underlying SAT solver.
func (m *Manager) SolveUnderAssumptions(assumps []satsolver.Lit) bool {
	return m.enc.Solver().SolveAssuming(assumps)
}

// CubesAt returns the cubes blocked at frame k (not including cubes
// blocked permanently at FrameInf).
func (m *Manager) CubesAt(k int) []*cube.Cube {
	return m.blocked[k]
}

// PermanentCubes returns the cubes blocked at FrameInf.
func (m *Manager) PermanentCubes() []*cube.Cube {
	return m.perm
}

// ActVar returns the activation variable for frame k.
func (m *Manager) ActVar(k int) satsolver.Var {
	return m.actVars[k]
}

// IsBlocked double-checks that c is actually unreachable under R_k: it
// asks the solver whether R_k ∧ c is satisfiable, under a one-shot
// assumption list that does not touch any clause already asserted for c.
// A cube just blocked via BlockCubeInSolver always reads as blocked by
// construction, so this exists for callers that want to re-verify a
// cube recorded earlier (e.g. after further clauses were learned)
// rather than trust the bookkeeping slices.
func (m *Manager) IsBlocked(c *cube.Cube, k int) bool {
	lits := append([]satsolver.Lit(nil), m.AssumeFrames(k)...)
	for i := 0; i < c.Width(); i++ {
		v := c.Get(i)
		if ternary.IsX(v) {
			continue
		}
		latch := m.net.GetLatch(i)
		m.enc.AddBounded(latch.ID, 0)
		lit := m.enc.Lit(latch, 0)
		if v == ternary.Zero {
			lit = satsolver.Negate(lit)
		}
		lits = append(lits, lit)
	}

	return !m.enc.Solver().SolveAssuming(lits)
}
