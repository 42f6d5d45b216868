package ternary

// Value is a three-valued logic datum: Zero, One, or X ("don't care").
//
// The zero value of Value is Zero, so a freshly allocated []Value slice
// reads as all-false rather than all-X; callers that need an all-X vector
// (e.g. cube.New) must fill it explicitly.
type Value uint8

const (
	// Zero is the ternary false value.
	Zero Value = iota
	// One is the ternary true value.
	One
	// X is "don't care" — the value is unconstrained.
	X
)

// String renders a Value as "0", "1", or "X".
func (v Value) String() string {
	switch v {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "X"
	}
}

// FromBool lifts a plain boolean into the ternary domain.
func FromBool(b bool) Value {
	if b {
		return One
	}

	return Zero
}

// And computes the ternary conjunction of a and b.
//
// Truth table (X absorbs unless the other operand alone decides the
// result): Zero wins over anything, X wins over One, One&One = One.
func And(a, b Value) Value {
	if a == Zero || b == Zero {
		return Zero
	}
	if a == X || b == X {
		return X
	}

	return One
}

// Or computes the ternary disjunction of a and b.
func Or(a, b Value) Value {
	if a == One || b == One {
		return One
	}
	if a == X || b == X {
		return X
	}

	return Zero
}

// Not computes the ternary negation of a. X negates to X.
func Not(a Value) Value {
	switch a {
	case Zero:
		return One
	case One:
		return Zero
	default:
		return X
	}
}

// Equal reports whether a and b represent the same ternary value. Any two
// X values are considered equal to each other, even though neither carries
// a concrete bit.
func Equal(a, b Value) bool {
	if a == X || b == X {
		return a == X && b == X
	}

	return a == b
}

// AndBool is the fast path for And(a, FromBool(b)) that skips the lift.
func AndBool(a Value, b bool) Value {
	if !b {
		return Zero
	}
	if a == X {
		return X
	}

	return a
}

// OrBool is the fast path for Or(a, FromBool(b)) that skips the lift.
func OrBool(a Value, b bool) Value {
	if b {
		return One
	}
	if a == X {
		return X
	}

	return a
}

// IsX reports whether a is the "don't care" value.
func IsX(a Value) bool {
	return a == X
}

// IsTrue reports whether a is concretely One (not X).
func IsTrue(a Value) bool {
	return a == One
}
