package satsolver

import "github.com/wayne1204/socv-final/ternary"

// Var is a SAT variable: a positive integer, 1-based (0 is never a valid
// variable — spec.md §9's "recycle literal" reservation: variable 0 stays
// permanently unused so that 0 can double as the variable-map sentinel
// for "no variable allocated at this (net, depth) yet").
type Var int

// Lit is a signed SAT literal: Lit(v) is the positive occurrence of
// variable v, Lit(-v) its negation. Lit(0) is never a valid literal.
type Lit int

// MkLit builds the literal for v with the given polarity: negated==true
// yields ¬v.
func MkLit(v Var, negated bool) Lit {
	if negated {
		return Lit(-v)
	}

	return Lit(v)
}

// Negate returns the complementary literal of l.
func Negate(l Lit) Lit {
	return -l
}

// VarOf returns the variable underlying l, regardless of polarity.
func VarOf(l Lit) Var {
	if l < 0 {
		return Var(-l)
	}

	return Var(l)
}

// IsNegated reports whether l is the negative occurrence of its variable.
func IsNegated(l Lit) bool {
	return l < 0
}

// Solver is the external SAT-solver collaborator the PDR engine is built
// against (spec.md §6): an incremental CDCL solver supporting clause
// addition, solving under assumptions, and UNSAT-core extraction.
//
// Implementations are mutated exclusively by a single PDR engine
// (spec.md §5: no shared-state concurrency); no method here is safe to
// call concurrently with any other.
type Solver interface {
	// NewVar allocates and returns a fresh variable.
	NewVar() Var
	// AddClause adds a permanent disjunctive clause to the solver.
	AddClause(lits []Lit)
	// AddUnit adds a permanent single-literal clause.
	AddUnit(l Lit)
	// Solve solves the current clause database with no assumptions.
	Solve() bool
	// SolveAssuming solves the current clause database with assumps
	// additionally asserted for this call only.
	SolveAssuming(assumps []Lit) bool
	// Okay reports whether the most recent Solve/SolveAssuming call
	// returned satisfiable.
	Okay() bool
	// Model returns the value assigned to v's variable by the most
	// recent satisfiable solve (ternary.Zero or ternary.One — a SAT
	// model is always total), or ternary.X if the last call was
	// unsatisfiable.
	Model(v Var) ternary.Value
	// Conflict returns the subset of the most recent SolveAssuming
	// call's assumptions that were part of the unsatisfiable core —
	// meaningful only immediately after a call that returned false.
	Conflict() []Lit
	// SimplifyDB asks the solver to simplify its clause database given
	// unit facts derived so far, returning false if simplification
	// itself discovers a top-level contradiction.
	SimplifyDB() bool
}
