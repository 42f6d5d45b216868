package cube

import (
	"testing"

	"github.com/wayne1204/socv-final/ternary"
)

func TestNewAllX(t *testing.T) {
	c := New(3)
	for i := 0; i < 3; i++ {
		if c.Get(i) != ternary.X {
			t.Errorf("New(3).Get(%d) = %v; want X", i, c.Get(i))
		}
	}
}

func TestSubsumesReflexiveTransitive(t *testing.T) {
	a := FromBits([]bool{true, false, true})
	if !a.Subsumes(a) {
		t.Fatal("Subsumes should be reflexive")
	}

	// weaker has strictly fewer literals than a (latch 0 dropped to X),
	// so weaker ⇒ a: weaker.Subsumes(a) must hold.
	weaker := a.Clone()
	weaker.Weaken(0)
	if !weaker.Subsumes(a) {
		t.Errorf("a cube with fewer literals should subsume a cube agreeing on the rest")
	}

	evenWeaker := weaker.Clone()
	evenWeaker.Weaken(2)
	if !evenWeaker.Subsumes(weaker) {
		t.Errorf("transitivity: evenWeaker should subsume weaker")
	}
	if !evenWeaker.Subsumes(a) {
		t.Errorf("transitivity: evenWeaker should subsume a")
	}
}

func TestSubsumesDisagreement(t *testing.T) {
	a := FromBits([]bool{true, false})
	b := FromBits([]bool{false, false})
	if a.Subsumes(b) {
		t.Errorf("cubes disagreeing on a non-X literal must not subsume")
	}
}

func TestIntersectsInitial(t *testing.T) {
	initial := []ternary.Value{ternary.Zero, ternary.Zero, ternary.One}

	allX := New(3)
	if !allX.IntersectsInitial(initial) {
		t.Errorf("all-X cube must intersect every initial state")
	}

	matching := FromBits([]bool{false, false, true})
	if !matching.IntersectsInitial(initial) {
		t.Errorf("cube matching initial values must intersect initial")
	}

	mismatching := FromBits([]bool{true, false, true})
	if mismatching.IntersectsInitial(initial) {
		t.Errorf("cube disagreeing with an initial value must not intersect")
	}
}

func TestIsInitialZero(t *testing.T) {
	if !New(4).IsInitialZero() {
		t.Errorf("all-X cube must be considered initial under all-zero assumption")
	}
	if !NewZero(4).IsInitialZero() {
		t.Errorf("all-zero cube must be initial")
	}
	c := NewZero(4)
	c.Set(2, ternary.One)
	if c.IsInitialZero() {
		t.Errorf("cube with a set-to-one latch must not be initial under all-zero assumption")
	}
}

func TestCloneIndependence(t *testing.T) {
	a := FromBits([]bool{true, false})
	b := a.Clone()
	b.Set(0, ternary.X)
	if a.Get(0) == ternary.X {
		t.Errorf("mutating the clone must not affect the original")
	}
}

func TestWeaken(t *testing.T) {
	c := FromBits([]bool{true, true})
	c.Weaken(0)
	if c.Get(0) != ternary.X {
		t.Errorf("Weaken must set the slot to X")
	}
	if c.Get(1) != ternary.One {
		t.Errorf("Weaken must not touch other slots")
	}
}

func TestString(t *testing.T) {
	c := FromBits([]bool{false, true, false})
	c.Weaken(1)
	if got, want := c.String(), "0X0"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
