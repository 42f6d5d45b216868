package build

import "errors"

// Sentinel errors for the build package.
var (
	// ErrLatchInputUnset is returned by Build when a latch was reserved
	// via AddLatch but never given a D-input via SetLatchInput.
	ErrLatchInputUnset = errors.New("build: latch has no D-input set")
	// ErrNoOutputs is returned by Build when the circuit declares no
	// primary outputs at all (there would be no monitor to check).
	ErrNoOutputs = errors.New("build: circuit has no outputs")
)
