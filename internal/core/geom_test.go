package core

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	a := Vec{X: 3, Y: 4}
	b := Vec{X: 1, Y: 2}

	if got := a.Add(b); got != (Vec{X: 4, Y: 6}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec{X: 2, Y: 2}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %g, want 5", got)
	}
	if got := a.Scale(2); got != (Vec{X: 6, Y: 8}) {
		t.Errorf("Scale = %v", got)
	}

	n := a.Normalized()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalized length = %g, want 1", n.Len())
	}
}

func TestNormalizedZeroVec(t *testing.T) {
	z := Vec{}
	if got := z.Normalized(); got != z {
		t.Errorf("zero vector should normalize to itself, got %v", got)
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	if !a.Intersects(NewRect(5, 5, 10, 10)) {
		t.Error("overlapping rects should intersect")
	}
	if !a.Intersects(NewRect(2, 2, 4, 4)) {
		t.Error("contained rect should intersect")
	}
	if a.Intersects(NewRect(20, 20, 5, 5)) {
		t.Error("distant rects should not intersect")
	}
}

func TestRectEdgeTouchDoesNotIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	// Half-open semantics: sharing an edge or a corner is not a hit.
	if a.Intersects(NewRect(10, 0, 10, 10)) {
		t.Error("rects sharing a vertical edge should not intersect")
	}
	if a.Intersects(NewRect(0, 10, 10, 10)) {
		t.Error("rects sharing a horizontal edge should not intersect")
	}
	if a.Intersects(NewRect(10, 10, 5, 5)) {
		t.Error("rects sharing only a corner should not intersect")
	}
	if !a.Intersects(NewRect(9.999, 0, 10, 10)) {
		t.Error("any positive overlap should intersect")
	}
}

func TestRectIntersectsSymmetric(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(8, 8, 10, 10)
	if a.Intersects(b) != b.Intersects(a) {
		t.Error("intersection should be symmetric")
	}
}

func TestRectAccessors(t *testing.T) {
	r := NewRect(2, 3, 10, 20)
	if r.Right() != 12 || r.Bottom() != 23 {
		t.Errorf("Right/Bottom = %g/%g", r.Right(), r.Bottom())
	}
	if c := r.Center(); c != (Vec{X: 7, Y: 13}) {
		t.Errorf("Center = %v", c)
	}
	if !r.Contains(Vec{X: 2, Y: 3}) {
		t.Error("Contains should include the top-left corner")
	}
	if r.Contains(Vec{X: 12, Y: 3}) {
		t.Error("Contains should exclude the right edge")
	}
}

func TestClamp(t *testing.T) {
	if got := ClampF(5, 0, 10); got != 5 {
		t.Errorf("ClampF(5,0,10) = %g", got)
	}
	if got := ClampF(-1, 0, 10); got != 0 {
		t.Errorf("ClampF(-1,0,10) = %g", got)
	}
	if got := ClampF(11, 0, 10); got != 10 {
		t.Errorf("ClampF(11,0,10) = %g", got)
	}
	if got := Clamp(7, 0, 5); got != 5 {
		t.Errorf("Clamp(7,0,5) = %d", got)
	}
}
