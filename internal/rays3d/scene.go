package rays3d

import (
	"cmp"
	"fmt"
	"io"

	"github.com/chewxy/math32"
)

// Scene owns the camera, lights and primitives. It is built once and read
// concurrently by render workers; nothing may be added once tracing starts.
type Scene struct {
	Camera     *Camera
	Lights     *List[Light]
	Spheres    *List[*Sphere]
	Planes     *List[*Plane]
	Background *Color // written to pixels no ray hits; nil leaves them untouched
	ShadowBias Real   // zero means ShadowBias
}

func NewScene() *Scene {
	return &Scene{
		Lights:  NewList[Light](4),
		Spheres: NewList[*Sphere](8),
		Planes:  NewList[*Plane](3),
	}
}

func (s *Scene) SetCamera(c *Camera)  { s.Camera = c }
func (s *Scene) AddSphere(sp *Sphere) { s.Spheres.Add(sp) }
func (s *Scene) AddPlane(p *Plane)    { s.Planes.Add(p) }
func (s *Scene) AddLight(l Light)     { s.Lights.Add(l) }

func (s *Scene) shadowBias() Real {
	if s.ShadowBias > 0 {
		return s.ShadowBias
	}
	return ShadowBias
}

// CastRay returns the nearest hit along r, spheres first and then planes.
// Ties go to the primitive enumerated last. A scene without a camera never
// reports a hit.
func (s *Scene) CastRay(r Ray) (Hit, bool) {
	return s.castRay(r, math32.Inf(1))
}

// castRay only considers hits not farther than maxDist.
func (s *Scene) castRay(r Ray, maxDist Real) (Hit, bool) {
	if s.Camera == nil {
		return Hit{}, false
	}
	best := Hit{}
	okAny := false
	bestDist := maxDist
	for _, sp := range s.Spheres.Slice() {
		if hit, ok := sp.Intersect(r); ok && hit.Distance <= bestDist {
			bestDist, best, okAny = hit.Distance, hit, true
		}
	}
	for _, p := range s.Planes.Slice() {
		if hit, ok := p.Intersect(r); ok && hit.Distance <= bestDist {
			bestDist, best, okAny = hit.Distance, hit, true
		}
	}
	return best, okAny
}

// TraceRay finds the nearest hit and shades it. For every light a shadow ray
// is cast from just above the surface; each light it reaches is mixed into
// the surface color. A hit reached by no light keeps half its color.
func (s *Scene) TraceRay(r Ray) (Hit, bool) {
	return s.traceRay(r, nil)
}

func (s *Scene) traceRay(r Ray, counts *rayCounts) (Hit, bool) {
	hit, ok := s.CastRay(r)
	if !ok {
		counts.log(CatMiss)
		return hit, false
	}
	counts.log(CatHit)

	origin := hit.Position.Add(hit.Normal.Mul(s.shadowBias()))
	color := hit.Color
	reached := false
	for _, l := range s.Lights.Slice() {
		toLight := l.Position.Sub(origin)
		dist := toLight.Len()
		shadow := Ray{Origin: origin, Direction: toLight.Norm()}
		if _, blocked := s.castRay(shadow, dist); blocked {
			counts.log(CatShadowed)
			continue
		}
		counts.log(CatLit)
		reached = true
		color = Mix(color, l.Color)
	}
	if !reached {
		counts.log(CatUnlit)
		color = color.Mul(0.5)
	}
	hit.Color = color
	return hit, true
}

// DebugPrint writes a human readable dump of the scene.
func (s *Scene) DebugPrint(w io.Writer) {
	fmt.Fprintln(w, "Scene debug:")
	if c := s.Camera; c != nil {
		fmt.Fprintf(w, "\tCamera: { p: (%.2f, %.2f, %.2f), d: (%.2f, %.2f, %.2f) }\n",
			c.Position.X, c.Position.Y, c.Position.Z, c.Direction.X, c.Direction.Y, c.Direction.Z)
	} else {
		fmt.Fprintln(w, "\tCamera: <none>")
	}
	for _, l := range s.Lights.All() {
		fmt.Fprintf(w, "\tLight: { o: (%.2f, %.2f, %.2f), c: (%.2f, %.2f, %.2f) }\n",
			l.Position.X, l.Position.Y, l.Position.Z, l.Color.X, l.Color.Y, l.Color.Z)
	}
	// nearest first; the scene order itself decides ties and stays untouched
	spheres := NewList[*Sphere](s.Spheres.Len())
	for _, sp := range s.Spheres.All() {
		spheres.Add(sp)
	}
	if c := s.Camera; c != nil {
		spheres.SortBy(func(a, b *Sphere) int {
			return cmp.Compare(c.Position.Dist(a.Center), c.Position.Dist(b.Center))
		})
	}
	fmt.Fprintf(w, "Scene has %d spheres:\n", spheres.Len())
	for i := 0; i < spheres.Len(); i++ {
		sp := spheres.At(i)
		fmt.Fprintf(w, "\tSphere: { o: (%.2f, %.2f, %.2f), r: %.2f, c: (%.2f, %.2f, %.2f) }\n",
			sp.Center.X, sp.Center.Y, sp.Center.Z, sp.Radius, sp.Color.X, sp.Color.Y, sp.Color.Z)
	}
	fmt.Fprintf(w, "Scene has %d planes:\n", s.Planes.Len())
	for _, p := range s.Planes.All() {
		fmt.Fprintf(w, "\tPlane: { p: (%.2f, %.2f, %.2f), n: (%.2f, %.2f, %.2f), c: (%.2f, %.2f, %.2f) }\n",
			p.Pivot.X, p.Pivot.Y, p.Pivot.Z, p.Normal.X, p.Normal.Y, p.Normal.Z, p.Color.X, p.Color.Y, p.Color.Z)
	}
}
