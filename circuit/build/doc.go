// Package build provides a small in-memory circuit.Network implementation
// and a step-by-step Builder for constructing AND-inverter circuits with
// latches by hand — useful for unit tests and worked examples where a full
// AIG parser (out of scope for this module, per spec.md §1) would be
// overkill.
//
// Mirrors the teacher's builder package: one Builder type accumulating
// state through chained calls, a single Build (there: graph construction,
// here: Network construction) step that validates and freezes the result.
package build
