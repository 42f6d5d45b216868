// Package satsolver defines the incremental SAT-solver oracle the PDR
// engine consumes (spec.md §6) and a production backend for it built on
// github.com/irifrance/gini, a CDCL solver with a MiniSat-style API:
// incremental clause addition, solving under assumptions, and UNSAT-core
// (failed-assumption) extraction.
//
// The solver itself is explicitly out of scope for this module (spec.md
// §1): Solver is the boundary the rest of the engine programs against,
// and Gini is the one concrete implementation wired behind it — no SAT
// algorithm is reimplemented here.
package satsolver
