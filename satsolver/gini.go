package satsolver

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
	"github.com/wayne1204/socv-final/ternary"
)

// GiniSolver is a Solver backed by github.com/irifrance/gini's CDCL
// engine. It is the production SAT backend for this module (see
// SPEC_FULL.md's DOMAIN STACK section); the adapter's only job is
// translating this package's plain Var/Lit to gini's z.Var/z.Lit.
type GiniSolver struct {
	g         *gini.Gini
	lastSat   bool
	conflict  []Lit
	assumps   []z.Lit // scratch buffer reused across SolveAssuming calls
}

var _ Solver = (*GiniSolver)(nil)

// NewGiniSolver constructs a Solver with an empty clause database.
func NewGiniSolver() *GiniSolver {
	return &GiniSolver{g: gini.New()}
}

// NewVar implements Solver.
func (s *GiniSolver) NewVar() Var {
	return Var(s.g.NewVar())
}

// AddClause implements Solver.
func (s *GiniSolver) AddClause(lits []Lit) {
	for _, l := range lits {
		s.g.Add(toZLit(l))
	}
	s.g.Add(z.LitNull)
}

// AddUnit implements Solver.
func (s *GiniSolver) AddUnit(l Lit) {
	s.g.Add(toZLit(l))
	s.g.Add(z.LitNull)
}

// Solve implements Solver.
func (s *GiniSolver) Solve() bool {
	return s.finish(s.g.Solve())
}

// SolveAssuming implements Solver.
func (s *GiniSolver) SolveAssuming(assumps []Lit) bool {
	s.assumps = s.assumps[:0]
	for _, l := range assumps {
		s.assumps = append(s.assumps, toZLit(l))
	}
	s.g.Assume(s.assumps...)

	return s.finish(s.g.Solve())
}

func (s *GiniSolver) finish(status int) bool {
	s.lastSat = status == 1
	s.conflict = s.conflict[:0]
	if !s.lastSat {
		why := s.g.Why(nil)
		for _, m := range why {
			s.conflict = append(s.conflict, fromZLit(m))
		}
	}

	return s.lastSat
}

// Okay implements Solver.
func (s *GiniSolver) Okay() bool {
	return s.lastSat
}

// Model implements Solver.
func (s *GiniSolver) Model(v Var) ternary.Value {
	if !s.lastSat {
		return ternary.X
	}

	return ternary.FromBool(s.g.Value(z.Var(v).Pos()))
}

// Conflict implements Solver.
func (s *GiniSolver) Conflict() []Lit {
	return s.conflict
}

// SimplifyDB implements Solver. gini performs its own clause-database
// compaction internally during solving (see its xo package doc comment
// on "compaction"/"clause garbage collection"), so there is no separate
// manual simplification step to forward to; this always reports success.
func (s *GiniSolver) SimplifyDB() bool {
	return true
}

func toZLit(l Lit) z.Lit {
	v := z.Var(VarOf(l))
	if IsNegated(l) {
		return v.Neg()
	}

	return v.Pos()
}

func fromZLit(m z.Lit) Lit {
	return MkLit(Var(m.Var()), !m.IsPos())
}
