package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wayne1204/socv-final/circuit/build"
	"github.com/wayne1204/socv-final/cube"
	"github.com/wayne1204/socv-final/encoder"
	"github.com/wayne1204/socv-final/satsolver"
	"github.com/wayne1204/socv-final/ternary"
)

func TestNewFrameZeroAssertsInitialState(t *testing.T) {
	s := build.CounterTo3()
	enc := encoder.New(s.Network, satsolver.NewGiniSolver())
	m := NewManager(enc)
	m.NewFrame()

	// Under a_0, the latches must read their initial (all-zero) values.
	l0 := s.Network.GetLatch(0)
	l1 := s.Network.GetLatch(1)
	enc.AddBounded(l0.ID, 0)
	enc.AddBounded(l1.ID, 0)

	assumps := append(m.AssumeFrames(0), enc.Lit(l0, 0))
	require.False(t, m.SolveUnderAssumptions(assumps),
		"latch 0 should be forced to its zero initial value under a_0")
}

func TestBlockCubeInSolverGuardedByActivation(t *testing.T) {
	s := build.CounterTo3()
	enc := encoder.New(s.Network, satsolver.NewGiniSolver())
	m := NewManager(enc)
	m.NewFrame()
	m.NewFrame()

	l0 := s.Network.GetLatch(0)
	l1 := s.Network.GetLatch(1)
	enc.AddBounded(l0.ID, 0)
	enc.AddBounded(l1.ID, 0)

	c := cube.New(2)
	c.Set(0, ternary.One)
	m.BlockCubeInSolver(c, 1)

	// Blocked at frame 1: asserting frame-1 assumptions with latch0=1
	// should be unsatisfiable...
	assumps := append(m.AssumeFrames(1), enc.Lit(l0, 0))
	require.False(t, m.SolveUnderAssumptions(assumps),
		"cube should be blocked under frame-1 assumptions")

	// ...but with no activation variable assumed (a_1 left unasserted), the
	// same state must remain satisfiable, since the clause is guarded by
	// ¬a_1. (a_0 is not assumed either: it pins every latch to 0.)
	noFrames := []satsolver.Lit{enc.Lit(l0, 0)}
	require.True(t, m.SolveUnderAssumptions(noFrames),
		"cube blocked at frame 1 only must not be enforced when a_1 is not assumed")
}

func TestBlockCubeAtFrameInfIsPermanent(t *testing.T) {
	s := build.BlockedByInduction()
	enc := encoder.New(s.Network, satsolver.NewGiniSolver())
	m := NewManager(enc)
	m.NewFrame()

	l0 := s.Network.GetLatch(0)
	enc.AddBounded(l0.ID, 0)

	c := cube.New(1)
	c.Set(0, ternary.One)
	m.BlockCubeInSolver(c, cube.FrameInf)

	require.False(t, m.SolveUnderAssumptions([]satsolver.Lit{enc.Lit(l0, 0)}),
		"a cube blocked at FrameInf must be unsatisfiable with no assumptions at all")
	require.Len(t, m.PermanentCubes(), 1)
}

func TestIsBlockedReflectsBookkeeping(t *testing.T) {
	s := build.CounterTo3()
	enc := encoder.New(s.Network, satsolver.NewGiniSolver())
	m := NewManager(enc)
	m.NewFrame()
	m.NewFrame()

	c := cube.New(2)
	c.Set(0, ternary.One)
	require.False(t, m.IsBlocked(c, 1), "cube not yet blocked at frame 1 must read as not blocked")

	m.BlockCubeInSolver(c, 1)
	require.True(t, m.IsBlocked(c, 1), "cube blocked at frame 1 must read as blocked")
}
