package rays3d

// Hit describes where a ray struck a primitive. Absence of a hit is reported
// by the accompanying bool, never by a sentinel distance.
type Hit struct {
	Color    Color
	Distance Real
	Position Vector3
	Normal   Vector3
}

type primitive interface {
	Intersect(r Ray) (Hit, bool)
}
