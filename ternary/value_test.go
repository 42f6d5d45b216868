package ternary

import "testing"

func TestAnd(t *testing.T) {
	cases := []struct {
		a, b, want Value
	}{
		{Zero, Zero, Zero},
		{Zero, One, Zero},
		{Zero, X, Zero},
		{One, One, One},
		{One, X, X},
		{X, X, X},
	}
	for _, c := range cases {
		if got := And(c.a, c.b); got != c.want {
			t.Errorf("And(%v, %v) = %v; want %v", c.a, c.b, got, c.want)
		}
		if got := And(c.b, c.a); got != c.want {
			t.Errorf("And(%v, %v) = %v; want %v (not commutative)", c.b, c.a, got, c.want)
		}
	}
}

func TestOr(t *testing.T) {
	cases := []struct {
		a, b, want Value
	}{
		{Zero, Zero, Zero},
		{Zero, One, One},
		{Zero, X, X},
		{One, One, One},
		{One, X, One},
		{X, X, X},
	}
	for _, c := range cases {
		if got := Or(c.a, c.b); got != c.want {
			t.Errorf("Or(%v, %v) = %v; want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestNot(t *testing.T) {
	if Not(Zero) != One {
		t.Errorf("Not(Zero) != One")
	}
	if Not(One) != Zero {
		t.Errorf("Not(One) != Zero")
	}
	if Not(X) != X {
		t.Errorf("Not(X) != X")
	}
}

// TestDeMorgan checks P4: ~(a & b) == (~a) | (~b) over every value pair.
func TestDeMorgan(t *testing.T) {
	vals := []Value{Zero, One, X}
	for _, a := range vals {
		for _, b := range vals {
			lhs := Not(And(a, b))
			rhs := Or(Not(a), Not(b))
			if !Equal(lhs, rhs) {
				t.Errorf("de Morgan failed for a=%v b=%v: ~(a&b)=%v, ~a|~b=%v", a, b, lhs, rhs)
			}
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal(X, X) {
		t.Errorf("Equal(X, X) should be true")
	}
	if Equal(Zero, One) {
		t.Errorf("Equal(Zero, One) should be false")
	}
	if Equal(Zero, X) {
		t.Errorf("Equal(Zero, X) should be false")
	}
}

func TestAndBoolOrBoolMatchLiftedForm(t *testing.T) {
	for _, a := range []Value{Zero, One, X} {
		for _, b := range []bool{true, false} {
			if got, want := AndBool(a, b), And(a, FromBool(b)); got != want {
				t.Errorf("AndBool(%v, %v) = %v; want %v", a, b, got, want)
			}
			if got, want := OrBool(a, b), Or(a, FromBool(b)); got != want {
				t.Errorf("OrBool(%v, %v) = %v; want %v", a, b, got, want)
			}
		}
	}
}
