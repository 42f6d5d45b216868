package circuit

import "github.com/wayne1204/socv-final/ternary"

// InitialValue returns the concrete initial value of latch i, read from
// the network's declared init-value source net (InputNetId(latch, 1)):
// the source is inverted iff the latch resets to 1.
//
// Callers needing the full per-circuit initial-state vector (for
// cube.IntersectsInitial) should build it once via InitialVector.
func InitialValue(net Network, latchIndex int) ternary.Value {
	latch := net.GetLatch(latchIndex)
	src := net.InputNetId(latch.ID, 1)

	return ternary.FromBool(src.Inverted)
}

// InitialVector returns the per-latch initial-value vector for net, in
// latch-index order, suitable for cube.IntersectsInitial. This is the
// precise alternative spec.md §9 calls for in place of hardcoding "all
// latches zero".
func InitialVector(net Network) []ternary.Value {
	vec := make([]ternary.Value, net.LatchSize())
	for i := range vec {
		vec[i] = InitialValue(net, i)
	}

	return vec
}
