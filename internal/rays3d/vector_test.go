package rays3d

import (
	"math"
	"testing"
)

func approx(a, b Real) bool { return math.Abs(float64(a-b)) <= 1e-5 }

func approxVec(a, b Vector3) bool { return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z) }

func TestVectorOps(t *testing.T) {
	v := Vector3{1, 2, 3}
	w := Vector3{-1, 0.5, 2}

	if add := v.Add(w); add != (Vector3{0, 2.5, 5}) {
		t.Fatalf("Add mismatch: %+v", add)
	}
	if sub := v.Sub(w); sub != (Vector3{2, 1.5, 1}) {
		t.Fatalf("Sub mismatch: %+v", sub)
	}
	if mul := v.Mul(3); mul != (Vector3{3, 6, 9}) {
		t.Fatalf("Mul mismatch: %+v", mul)
	}
	if dot := v.Dot(w); dot != 6 {
		t.Fatalf("Dot mismatch: %g", dot)
	}
	if l := v.Len(); !approx(l, Real(math.Sqrt(14))) {
		t.Fatalf("Len mismatch: %g", l)
	}
	if n := v.Norm(); !approx(n.Len(), 1) {
		t.Fatalf("Norm not unit: %g", n.Len())
	}
	if d := (Vector3{1, 1, 1}).Dist(Vector3{1, 4, 5}); d != 5 {
		t.Fatalf("Dist mismatch: %g", d)
	}
	if a := (Vector3{-1, 2, -3}).Abs(); a != (Vector3{1, 2, 3}) {
		t.Fatalf("Abs mismatch: %+v", a)
	}
	if n := v.Neg(); n != (Vector3{-1, -2, -3}) {
		t.Fatalf("Neg mismatch: %+v", n)
	}
}

func TestVectorCrossRightHanded(t *testing.T) {
	x, y, z := Vector3{1, 0, 0}, Vector3{0, 1, 0}, Vector3{0, 0, 1}
	if c := x.Cross(y); c != z {
		t.Fatalf("x cross y = %+v, want z", c)
	}
	if c := y.Cross(z); c != x {
		t.Fatalf("y cross z = %+v, want x", c)
	}
	if c := z.Cross(x); c != y {
		t.Fatalf("z cross x = %+v, want y", c)
	}
	a, b := Vector3{1, 2, 3}, Vector3{4, -5, 6}
	c := a.Cross(b)
	if !approx(c.Dot(a), 0) || !approx(c.Dot(b), 0) {
		t.Fatalf("cross not orthogonal: %+v", c)
	}
}

func TestVectorNormZero(t *testing.T) {
	if n := (Vector3{}).Norm(); n != (Vector3{}) {
		t.Fatalf("zero vector should normalize to itself, got %+v", n)
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: Vector3{1, 0, 0}, Direction: Vector3{0, 0, 2}}
	if p := r.At(1.5); p != (Vector3{1, 0, 3}) {
		t.Fatalf("At mismatch: %+v", p)
	}
}
