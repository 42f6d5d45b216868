package pdr

import "errors"

// Sentinel errors for pdr engine construction and operation.
var (
	// ErrNoLatches indicates a network with zero latches was given to
	// New: the engine has nothing to generalize a frontier over.
	ErrNoLatches = errors.New("pdr: network declares no latches")

	// ErrFrameLimitExceeded is returned by Run when Options.MaxFrames is
	// positive and the outer loop would extend beyond it without
	// reaching either a proof or a counterexample.
	ErrFrameLimitExceeded = errors.New("pdr: frame limit exceeded without a verdict")
)
