package cube

import (
	"strings"

	"github.com/wayne1204/socv-final/ternary"
)

// New builds a Cube of the given width with every latch slot set to X
// (the all-X cube, i.e. the tautology true).
func New(width int) *Cube {
	latches := make([]ternary.Value, width)
	for i := range latches {
		latches[i] = ternary.X
	}

	return &Cube{latches: latches}
}

// NewZero builds a Cube of the given width with every latch slot set to
// Zero. The PDR engine's model extraction starts from this shape and
// overwrites every slot from the SAT model before ternary simulation
// weakens it.
func NewZero(width int) *Cube {
	return &Cube{latches: make([]ternary.Value, width)}
}

// FromBits builds a Cube from a concrete bit vector: bits[i] becomes the
// ternary value of latch i (Zero or One, never X).
func FromBits(bits []bool) *Cube {
	latches := make([]ternary.Value, len(bits))
	for i, b := range bits {
		latches[i] = ternary.FromBool(b)
	}

	return &Cube{latches: latches}
}

// Width returns the number of latch slots in c.
func (c *Cube) Width() int {
	return len(c.latches)
}

// Get returns the ternary value of latch i.
func (c *Cube) Get(i int) ternary.Value {
	return c.latches[i]
}

// Set assigns the ternary value of latch i. Legality of the resulting
// cube (e.g. that weakening to X still satisfies the caller's invariant)
// is the caller's responsibility — Set itself never fails.
func (c *Cube) Set(i int, v ternary.Value) {
	c.latches[i] = v
}

// Weaken sets latch i to X. It is the elementary generalization step:
// every cube-generalization routine in this module is built from repeated
// calls to Weaken guarded by a re-check of the caller's invariant.
func (c *Cube) Weaken(i int) {
	c.latches[i] = ternary.X
}

// Clone returns a deep copy of c, so a caller can mutate the copy during
// generalization while the original witness survives.
func (c *Cube) Clone() *Cube {
	latches := make([]ternary.Value, len(c.latches))
	copy(latches, c.latches)

	return &Cube{latches: latches}
}

// Subsumes reports whether c subsumes s: every non-X slot of c agrees
// with the corresponding slot of s. A subsuming c has a subset of s's
// literals, so c ⇒ s as a state predicate once both are read as clause
// negations (P3: subsumption is reflexive and transitive).
func (c *Cube) Subsumes(s *Cube) bool {
	for i, v := range c.latches {
		if v == ternary.X {
			continue
		}
		if !ternary.Equal(v, s.latches[i]) {
			return false
		}
	}

	return true
}

// Equal reports whether c and s denote the same partial assignment:
// mutual subsumption (P3's reflexivity/transitivity extended to
// antisymmetry). Used by the PDR engine to detect a frame-propagation
// fixed point — two frames holding the same blocked-cube set.
func (c *Cube) Equal(s *Cube) bool {
	return c.Subsumes(s) && s.Subsumes(c)
}

// IntersectsInitial reports whether c intersects the initial states
// described by initial: for every latch, initial[i] is the latch's
// concrete initial value (Zero or One). c intersects the initial state
// set iff every latch slot of c is either X or agrees with initial[i].
//
// Per spec.md §9's design note, callers must pass the circuit's actual
// per-latch initial-value vector here rather than assuming "all latches
// zero"; IsInitialZero below exists only for circuits that really do
// reset to all-zero and documents that assumption at the call site.
func (c *Cube) IntersectsInitial(initial []ternary.Value) bool {
	for i, v := range c.latches {
		if v == ternary.X {
			continue
		}
		if !ternary.Equal(v, initial[i]) {
			return false
		}
	}

	return true
}

// IsInitialZero reports whether c intersects the "all latches zero"
// initial state. This is the known discrepancy flagged in spec.md §9:
// correct only for circuits whose latches all reset to 0. Prefer
// IntersectsInitial with the circuit's real initial-value vector.
func (c *Cube) IsInitialZero() bool {
	for _, v := range c.latches {
		if v == ternary.One {
			return false
		}
	}

	return true
}

// String renders c as a bit string, latch index descending (matching the
// original implementation's debug Cube::show), X for don't-care slots.
func (c *Cube) String() string {
	var b strings.Builder
	for i := len(c.latches) - 1; i >= 0; i-- {
		b.WriteString(c.latches[i].String())
	}

	return b.String()
}
