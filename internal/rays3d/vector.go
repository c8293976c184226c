package rays3d

import "github.com/chewxy/math32"

type Real = float32

// Vector3 is a point, direction or color in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

func Vec3(x, y, z Real) Vector3 { return Vector3{x, y, z} }

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Neg() Vector3          { return Vector3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product between two vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math32.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
// A zero vector is returned unchanged instead of turning into NaNs.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// Dist returns the Euclidean distance between two points.
func (a Vector3) Dist(b Vector3) Real { return a.Sub(b).Len() }

// Abs returns the per-component absolute value.
func (v Vector3) Abs() Vector3 {
	return Vector3{math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)}
}
