package rays3d

import (
	"fmt"

	"github.com/chewxy/math32"
)

type Sphere struct {
	Center Vector3
	Radius Real
	Color  Color
}

func NewSphere(center Vector3, radius Real, color Color) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("sphere radius must be > 0, got %g", radius)
	}
	s := &Sphere{Center: center, Radius: radius, Color: color}
	DebugLog("Created sphere: %+v", s)
	return s, nil
}

// Intersect expects a unit ray direction: distances are measured in
// multiples of it. Spheres containing the ray origin are not hit, and
// neither are spheres behind it.
func (s *Sphere) Intersect(r Ray) (Hit, bool) {
	radius2 := s.Radius * s.Radius
	centerDir := s.Center.Sub(r.Origin)
	tca := centerDir.Dot(r.Direction)
	if tca < 0 {
		return Hit{}, false
	}
	d2 := centerDir.Dot(centerDir) - tca*tca
	if d2 > radius2+Eps {
		return Hit{}, false
	}
	// d2 may exceed radius2 by up to Eps: that is a tangent hit
	thc := math32.Sqrt(math32.Max(radius2-d2, 0))
	distance := math32.Min(tca-thc, tca+thc)
	if distance < 0 {
		return Hit{}, false
	}
	p := r.At(distance)
	n := p.Sub(s.Center).Norm()
	// the normal faces the side the ray came from
	if n.Dot(r.Direction) > 0 {
		n = n.Neg()
	}
	return Hit{Color: s.Color, Distance: distance, Position: p, Normal: n}, true
}
