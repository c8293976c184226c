package rays3d

import (
	"errors"
	"testing"
)

func TestNewCameraBasis(t *testing.T) {
	c, err := NewCamera(Vector3{}, Vector3{0, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if !approxVec(c.Right, Vector3{-1, 0, 0}) {
		t.Fatalf("right wrong: %+v", c.Right)
	}
	if !approxVec(c.Up, Vector3{0, 1, 0}) {
		t.Fatalf("up wrong: %+v", c.Up)
	}

	// Oblique direction: basis stays orthonormal
	c, err = NewCamera(Vector3{1, 2, 3}, Vector3{1, -0.5, 2})
	if err != nil {
		t.Fatal(err)
	}
	if !approx(c.Right.Len(), 1) || !approx(c.Up.Len(), 1) {
		t.Fatalf("basis not unit: %+v %+v", c.Right, c.Up)
	}
	if !approx(c.Right.Dot(c.Up), 0) || !approx(c.Right.Dot(c.Direction), 0) || !approx(c.Up.Dot(c.Direction), 0) {
		t.Fatal("basis not orthogonal")
	}
}

func TestNewCameraDegenerate(t *testing.T) {
	if _, err := NewCamera(Vector3{}, Vector3{}); !errors.Is(err, ErrDegenerateCamera) {
		t.Fatalf("zero direction: want ErrDegenerateCamera, got %v", err)
	}
	if _, err := NewCamera(Vector3{}, Vector3{0, -2, 0}); !errors.Is(err, ErrDegenerateCamera) {
		t.Fatalf("direction along world up: want ErrDegenerateCamera, got %v", err)
	}
}

func TestSetupPerspectiveRays3x3(t *testing.T) {
	c, err := NewCamera(Vector3{0, 0, -1}, Vector3{0, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	rays := c.SetupPerspectiveRays(3, 3)
	if len(rays) != 9 {
		t.Fatalf("want 9 rays, got %d", len(rays))
	}
	for i, r := range rays {
		if r.Origin != c.Position {
			t.Fatalf("ray %d origin %+v", i, r.Origin)
		}
		if !approx(r.Direction.Len(), 1) {
			t.Fatalf("ray %d not unit: %+v", i, r.Direction)
		}
	}
	if !approxVec(rays[4].Direction, Vector3{0, 0, 1}) {
		t.Fatalf("center ray should look straight ahead: %+v", rays[4].Direction)
	}
	// 90° vertical fov with a square canvas: corners at 45° on both axes.
	// x=0,y=0 is +right +up; right is -X here.
	if want := (Vector3{-1, 1, 1}).Norm(); !approxVec(rays[0].Direction, want) {
		t.Fatalf("top-left ray %+v, want %+v", rays[0].Direction, want)
	}
	if want := (Vector3{1, -1, 1}).Norm(); !approxVec(rays[8].Direction, want) {
		t.Fatalf("bottom-right ray %+v, want %+v", rays[8].Direction, want)
	}
	// Row-major: index y*width+x
	if want := (Vector3{1, 1, 1}).Norm(); !approxVec(rays[2].Direction, want) {
		t.Fatalf("top-right ray %+v, want %+v", rays[2].Direction, want)
	}
}

func TestSetupPerspectiveRaysSinglePixel(t *testing.T) {
	c, err := NewCamera(Vector3{}, Vector3{1, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	rays := c.SetupPerspectiveRays(1, 1)
	if len(rays) != 1 || !approxVec(rays[0].Direction, Vector3{1, 0, 0}) {
		t.Fatalf("single pixel should look ahead: %+v", rays)
	}
	if rays := c.SetupPerspectiveRays(0, 5); rays != nil {
		t.Fatalf("empty canvas should give no rays, got %d", len(rays))
	}
}
