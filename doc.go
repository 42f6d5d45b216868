// Package pdrmc is a from-scratch IC3/PDR safety model checker for AIG
// circuits with latches.
//
// What is pdrmc?
//
//	A small, dependency-light reachability engine that brings together:
//
//	  • A ternary (0/1/X) value domain and partial-assignment cubes
//	  • A lazy, monotone Tseitin encoder for AND/latch transition relations
//	  • An activation-variable-guarded frame sequence and SAT interface
//	  • Ternary-simulation-based cube generalization
//	  • A relative-induction proof-obligation engine deciding the classic
//	    IC3/PDR question: is some bad (monitor) output ever reachable?
//
// Under the hood, everything is organized under per-concern subpackages:
//
//	ternary/  — the three-valued logic domain
//	cube/     — partial latch assignments and timed cubes
//	circuit/  — the network contract the engine checks against
//	satsolver/ — the incremental SAT oracle (backed by gini)
//	encoder/  — transition-relation construction
//	frame/    — the R_0..R_k frame sequence and its SAT bookkeeping
//	ternsim/  — ternary-simulation cube generalization
//	pdr/      — the engine: outer/inner loop, relative induction, results
//
// A minimal run looks like:
//
//	eng, err := pdr.New(net, satsolver.NewGiniSolver(), monitor)
//	res, err := eng.Run()
//	switch res.Status {
//	case pdr.Proved:
//	        // property holds for every reachable state
//	case pdr.CounterexampleFound:
//	        // res.Trace holds the witness, initial state first
//	}
package pdrmc
