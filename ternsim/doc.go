// Package ternsim implements the ternary-simulation cube generalizer of
// spec.md §4.6: given a fully-assigned cube and the primary-input values
// that produced it, try weakening each latch slot to X in turn, keeping
// the weakening only if a target invariant still holds after re-running
// three-valued forward simulation.
//
// Two target invariants are supported (Mode A, Mode B); both share the
// same tentative-weaken-then-simulate-then-revert skeleton and the same
// DFS-ordered net list, built once per circuit via circuit.Network.DFS
// seeded at the monitor output and every latch's D-input.
package ternsim
