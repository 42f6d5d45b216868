package encoder

import (
	"testing"

	"github.com/wayne1204/socv-final/circuit/build"
	"github.com/wayne1204/socv-final/satsolver"
)

func TestAddBoundedIdempotent(t *testing.T) {
	s := build.CounterTo3()
	e := New(s.Network, satsolver.NewGiniSolver())

	l0 := s.Network.GetLatch(0)
	e.AddBounded(l0.ID, 2)
	v1 := e.Var(l0.ID, 2)
	e.AddBounded(l0.ID, 2)
	v2 := e.Var(l0.ID, 2)
	if v1 != v2 || v1 == 0 {
		t.Fatalf("repeated AddBounded must return a stable variable, got %d then %d", v1, v2)
	}
}

func TestSingleLatchSafeMonitorAlwaysFalse(t *testing.T) {
	s := build.SingleLatchSafe()
	e := New(s.Network, satsolver.NewGiniSolver())
	e.AddBounded(s.Monitor.ID, 0)

	// bad = latch ∧ ¬latch is a structural contradiction: asserting the
	// monitor true must be UNSAT regardless of any other constraint.
	if e.Solver().SolveAssuming([]satsolver.Lit{e.Lit(s.Monitor, 0)}) {
		t.Fatal("monitor should be structurally unsatisfiable")
	}
}

func TestCounterReachesBadAtDepth3(t *testing.T) {
	s := build.CounterTo3()
	e := New(s.Network, satsolver.NewGiniSolver())
	e.AddBounded(s.Monitor.ID, 3)

	for i := 0; i < s.Network.LatchSize(); i++ {
		e.AddBounded(s.Network.GetLatch(i).ID, 0)
	}
	assumps := make([]satsolver.Lit, 0, s.Network.LatchSize()+1)
	for i := 0; i < s.Network.LatchSize(); i++ {
		assumps = append(assumps, e.InitLiteral(i))
	}
	assumps = append(assumps, e.Lit(s.Monitor, 3))

	if !e.Solver().SolveAssuming(assumps) {
		t.Fatal("counter should reach the bad state (11) by depth 3 from the initial state")
	}
}

func TestCounterDoesNotReachBadBeforeDepth3(t *testing.T) {
	s := build.CounterTo3()
	e := New(s.Network, satsolver.NewGiniSolver())
	e.AddBounded(s.Monitor.ID, 2)

	for i := 0; i < s.Network.LatchSize(); i++ {
		e.AddBounded(s.Network.GetLatch(i).ID, 0)
	}
	assumps := make([]satsolver.Lit, 0, s.Network.LatchSize()+1)
	for i := 0; i < s.Network.LatchSize(); i++ {
		assumps = append(assumps, e.InitLiteral(i))
	}
	assumps = append(assumps, e.Lit(s.Monitor, 2))

	if e.Solver().SolveAssuming(assumps) {
		t.Fatal("counter should not reach the bad state before depth 3")
	}
}

func TestAliasingReusesNonInvertedDInputVariable(t *testing.T) {
	s := build.BlockedByInduction()
	e := New(s.Network, satsolver.NewGiniSolver())
	l0 := s.Network.GetLatch(0)

	e.AddBounded(l0.ID, 0)
	d := s.Network.InputNetId(l0.ID, 0)
	e.AddBounded(d.ID, 0)
	e.AddBounded(l0.ID, 1)

	if e.Var(l0.ID, 1) != e.Var(d.ID, 0) {
		t.Fatalf("non-inverted D-input aliasing should reuse the same base variable")
	}
}
