// Package cube implements the Cube and TCube (timed cube) types: partial
// assignments over a circuit's latch variables, used throughout the PDR
// engine as proof obligations, bad-state witnesses, and blocked-cube
// clauses.
//
// A Cube is a fixed-width vector of ternary.Value, one slot per latch.
// Semantically it denotes the conjunction, over every non-X slot, of the
// literal (latch == value); an all-X cube is the tautology (true). Cubes
// are heap-allocated and owned by whichever obligation queue or frame
// slot holds them; Clone exists precisely so a generalization step can
// mutate a copy while the pre-generalization witness survives for the
// caller that still needs it.
//
// Width is fixed once per circuit (set by the number of latches) and
// every Cube constructed via New shares that width; mixing cubes of
// different widths is a programmer error. Widths are not checked: an
// operation that indexes past the shorter slice panics, and one that
// does not (e.g. Subsumes with a wider argument) compares only the
// common prefix.
package cube
