// Package frame maintains the PDR frame sequence R_0, R_1, ..., R_top as
// activation-variable-guarded clauses inside a single persistent SAT
// solver (spec.md §4.4).
//
// Frame k is represented purely by its activation variable a_k: blocking
// a cube c at k adds the clause (⋁ ¬lit(c)) ∨ ¬a_k, so the clause fires
// only when a_k is among the current assumptions. Asserting {a_k, ...,
// a_top} therefore restricts a query to states consistent with every
// frame from k upward — the monotone "blocked at k ⇒ blocked at all
// k' ≤ k" relation falls out of the assumption-stack convention, not
// from any copying of clauses between frames.
package frame
