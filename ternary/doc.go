// Package ternary implements the three-valued {0, 1, X} logic domain used
// throughout the PDR engine to represent "don't care" latch assignments.
//
// Semantics follow standard Kleene three-valued logic: X absorbs into AND
// and OR the way a genuinely unknown bit would — AND(X, 0) = 0 because the
// result is false regardless of what X turns out to be, while AND(X, 1) = X
// because the result tracks the unknown operand. Equality treats any two X
// values as equal to each other, but a Value carries no notion of identity
// beyond its own bits.
//
// All operations are total (defined for every input), allocation-free, and
// commutative where the truth table is. Boolean-mixed fast paths (ternary
// operand with a plain bool) avoid converting the bool through FromBool at
// every call site in hot simulation loops.
package ternary
