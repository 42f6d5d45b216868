// Package encoder builds, on demand and incrementally, the CNF encoding
// of a circuit.Network unrolled to a given depth, sharing structure
// across queries (spec.md §4.3).
//
// Encoding a net at depth d is a depth-first descent (AddBounded) that
// first materializes every net it depends on — an AND node's two
// fan-ins at the same depth, a latch's D-input at depth d-1 — before
// emitting clauses for the net itself. Already-materialized (net, depth)
// pairs are short-circuited, so repeated AddBounded calls over a growing
// unrolling never duplicate clauses (spec.md P5). The recursion cannot
// cycle: combinational fan-in is acyclic and latch traversal strictly
// decreases depth.
//
// Gate encodings:
//
//	Constant false : one variable, asserted false.
//	Primary input  : one fresh variable per bit, no clauses.
//	AND node       : Tseitin encoding of y = a ∧ b per bit, respecting
//	                 each fan-in's inversion.
//	Latch (FF)     : at depth 0, a fresh variable (its initial value is
//	                 read via circuit.InitialValue, not encoded here);
//	                 at depth d>0, aliases its D-input's variable at
//	                 depth d-1 directly if non-inverted, or a fresh
//	                 buffer variable linked to its negation otherwise.
package encoder
