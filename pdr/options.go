package pdr

import "log"

// Options configures an Engine. The zero value (via DefaultOptions) runs
// with no artificial bound on frame count and no progress logging.
type Options struct {
	// MaxFrames caps the number of outer-loop iterations (frame indices)
	// the engine will extend to before giving up. Zero means unbounded.
	MaxFrames int
	// Logger, when non-nil, receives one line per frame extension,
	// proof, and counterexample. Nil (the default) disables logging
	// entirely; this module never logs on its own initiative.
	Logger *log.Logger
}

// Option is a functional option for configuring an Engine at construction.
type Option func(*Options)

// WithMaxFrames bounds the engine to at most max outer-loop iterations,
// after which Run returns ErrFrameLimitExceeded. max must be positive.
func WithMaxFrames(max int) Option {
	return func(o *Options) {
		if max <= 0 {
			panic("pdr: WithMaxFrames requires a positive limit")
		}
		o.MaxFrames = max
	}
}

// WithLogger attaches a progress logger to the engine.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct with no frame limit and no
// logger.
func DefaultOptions() Options {
	return Options{MaxFrames: 0}
}
