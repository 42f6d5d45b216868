package satsolver

import (
	"testing"

	"github.com/wayne1204/socv-final/ternary"
)

func TestGiniSolverBasicSat(t *testing.T) {
	s := NewGiniSolver()
	a := s.NewVar()
	b := s.NewVar()
	// (a ∨ b) ∧ (¬a ∨ b) ⇒ satisfiable only with b = true.
	s.AddClause([]Lit{MkLit(a, false), MkLit(b, false)})
	s.AddClause([]Lit{MkLit(a, true), MkLit(b, false)})

	if !s.Solve() {
		t.Fatal("expected SAT")
	}
	if s.Model(b) != ternary.One {
		t.Errorf("Model(b) = %v; want One", s.Model(b))
	}
}

func TestGiniSolverUnsat(t *testing.T) {
	s := NewGiniSolver()
	a := s.NewVar()
	s.AddUnit(MkLit(a, false))
	s.AddUnit(MkLit(a, true))

	if s.Solve() {
		t.Fatal("expected UNSAT")
	}
	if s.Okay() {
		t.Errorf("Okay() should be false after an UNSAT solve")
	}
}

func TestGiniSolverAssumptionConflict(t *testing.T) {
	s := NewGiniSolver()
	a := s.NewVar()
	b := s.NewVar()
	// a ⇒ b, i.e. (¬a ∨ b). Assuming a and ¬b must be UNSAT, with a
	// non-empty returned conflict.
	s.AddClause([]Lit{MkLit(a, true), MkLit(b, false)})

	if s.SolveAssuming([]Lit{MkLit(a, false), MkLit(b, true)}) {
		t.Fatal("expected UNSAT under assumptions {a, ¬b}")
	}
	core := s.Conflict()
	if len(core) == 0 {
		t.Fatal("expected a non-empty conflict core")
	}
}

func TestGiniSolverIncrementalAcrossCalls(t *testing.T) {
	s := NewGiniSolver()
	a := s.NewVar()
	if !s.SolveAssuming([]Lit{MkLit(a, false)}) {
		t.Fatal("expected SAT with a assumed true")
	}
	if s.Model(a) != ternary.One {
		t.Errorf("Model(a) = %v; want One", s.Model(a))
	}
	if !s.SolveAssuming([]Lit{MkLit(a, true)}) {
		t.Fatal("expected SAT with a assumed false (no permanent clause pins a)")
	}
	if s.Model(a) != ternary.Zero {
		t.Errorf("Model(a) = %v; want Zero", s.Model(a))
	}
}
