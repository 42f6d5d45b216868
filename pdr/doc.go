// Package pdr implements the IC3/Property-Directed-Reachability engine's
// main loop (spec.md §4.5): bad-cube extraction, proof-obligation
// scheduling, relative induction, and frame propagation, built on top of
// frame.Manager, encoder.Encoder, and ternsim.Simulator.
//
// Complexity: each outer-loop iteration issues O(1) bad-cube queries plus
// one relative-induction query per queued obligation and per propagated
// cube; obligations are processed via a min-heap keyed by frame index
// (ascending), ties broken by insertion order for reproducible
// counterexamples (spec.md §9).
package pdr
