package pdr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wayne1204/socv-final/circuit"
	"github.com/wayne1204/socv-final/circuit/build"
	"github.com/wayne1204/socv-final/cube"
	"github.com/wayne1204/socv-final/satsolver"
)

func mustEngine(t *testing.T, s build.Scenario) *Engine {
	t.Helper()
	e, err := New(s.Network, satsolver.NewGiniSolver(), s.Monitor)
	require.NoError(t, err)

	return e
}

func TestSingleLatchSafeIsProved(t *testing.T) {
	e := mustEngine(t, build.SingleLatchSafe())
	res, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, Proved, res.Status)
}

func TestTwoLatchInitialStateBadIsCounterexampleOfLengthZero(t *testing.T) {
	e := mustEngine(t, build.TwoLatchInitialStateBad())
	res, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, CounterexampleFound, res.Status)
	require.Len(t, res.Trace, 1, "a 0-step counterexample: the initial state is already bad")

	initial := circuit.InitialVector(e.net)
	require.True(t, res.Trace[0].IntersectsInitial(initial), "the sole trace state must be an initial state")
}

func TestCounterTo3ProducesACounterexample(t *testing.T) {
	e := mustEngine(t, build.CounterTo3())
	res, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, CounterexampleFound, res.Status)
	require.NotEmpty(t, res.Trace, "a counterexample must carry at least one state")

	initial := circuit.InitialVector(e.net)
	require.True(t, res.Trace[0].IntersectsInitial(initial), "the first trace state must be an initial state")
}

func TestBlockedByInductionIsProved(t *testing.T) {
	e := mustEngine(t, build.BlockedByInduction())
	res, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, Proved, res.Status)
}

func TestCheckInductiveOnBlockedCube(t *testing.T) {
	e := mustEngine(t, build.BlockedByInduction())
	c := cube.FromBits([]bool{true})
	// Seed a frame so solveRelative(c@1, ...) has an R_0 to check against.
	e.frames.NewFrame()
	e.frames.NewFrame()
	require.True(t, e.CheckInductive(c, 1),
		"{latch=1} should be inductive relative to R_0 for a latch that holds its value forever")
}
