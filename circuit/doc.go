// Package circuit defines the network-oracle contract consumed by the PDR
// engine: the Network interface, its NetId/GateType vocabulary, and the
// DFS traversal helper the ternary simulator needs.
//
// AIG parsing and construction are out of scope for this module (spec.md
// §1 names them an external collaborator) — this package is the boundary,
// not a parser. A small in-memory reference implementation good enough
// to build the concrete circuits spec.md §8 names as test scenarios lives
// in the sibling circuit/build package, grounded on the same hand-built,
// one-topology-per-file pattern the teacher's builder package uses for
// graph topologies.
package circuit
