package rays3d

// Ray is a half-line. Direction is unit-length for every ray the camera and
// the shading pass produce; Sphere.Intersect relies on that.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t Real) Vector3 { return r.Origin.Add(r.Direction.Mul(t)) }
