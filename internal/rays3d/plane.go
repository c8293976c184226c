package rays3d

import (
	"errors"

	"github.com/chewxy/math32"
)

type Plane struct {
	Pivot  Vector3
	Normal Vector3 // unit; constructor normalizes
	Color  Color
}

func NewPlane(pivot, normal Vector3, color Color) (*Plane, error) {
	if normal.Len() == 0 {
		return nil, errors.New("plane normal must be non-zero")
	}
	p := &Plane{Pivot: pivot, Normal: normal.Norm(), Color: color}
	DebugLog("Created plane: %+v", p)
	return p, nil
}

// Intersect accepts any non-zero ray direction; the reported distance is the
// Euclidean distance from the ray origin. The normal is returned as stored,
// whichever side was struck.
func (p *Plane) Intersect(r Ray) (Hit, bool) {
	d := p.Normal.Dot(r.Direction)
	if math32.Abs(d) < Eps {
		return Hit{}, false
	}
	t := p.Pivot.Sub(r.Origin).Dot(p.Normal) / d
	if t < 0 {
		return Hit{}, false
	}
	pos := r.At(t)
	return Hit{
		Color:    p.Color,
		Distance: r.Origin.Dist(pos),
		Position: pos,
		Normal:   p.Normal,
	}, true
}
