package rays3d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Camera looks along Direction from Position. Right and Up are derived once
// against WorldUp and are unit-length.
type Camera struct {
	Position  Vector3
	Direction Vector3
	Right     Vector3
	Up        Vector3
}

// NewCamera builds the camera basis. A zero direction or one parallel to
// WorldUp has no usable basis and is rejected.
func NewCamera(pos, dir Vector3) (*Camera, error) {
	if dir.Len() == 0 {
		return nil, fmt.Errorf("%w: direction must be non-zero", ErrDegenerateCamera)
	}
	right := dir.Cross(WorldUp)
	if right.Len() < Eps {
		return nil, fmt.Errorf("%w: direction %+v is parallel to world up", ErrDegenerateCamera, dir)
	}
	right = right.Norm()
	camera := &Camera{
		Position:  pos,
		Direction: dir,
		Right:     right,
		Up:        right.Cross(dir).Norm(),
	}
	DebugLog("Created camera %+v", camera)
	return camera, nil
}

// perspective holds the image plane at distance 1 for a given canvas.
type perspective struct {
	width, height int
	halfW, halfH  Real
	stepX, stepY  Real
}

func newPerspective(width, height int) perspective {
	aspect := Real(width) / Real(height)
	halfH := math32.Tan(FOVDeg * 0.5 * math32.Pi / 180)
	pp := perspective{
		width:  width,
		height: height,
		halfW:  aspect * halfH,
		halfH:  halfH,
	}
	// a single column/row looks straight ahead
	if width > 1 {
		pp.stepX = 2 * pp.halfW / Real(width-1)
	} else {
		pp.halfW = 0
	}
	if height > 1 {
		pp.stepY = 2 * pp.halfH / Real(height-1)
	} else {
		pp.halfH = 0
	}
	return pp
}

// rayAt returns the primary ray of pixel (x, y). x=0, y=0 map to the
// +halfW, +halfH corner of the image plane.
func (c *Camera) rayAt(pp perspective, x, y int) Ray {
	sx := pp.halfW - Real(x)*pp.stepX
	sy := pp.halfH - Real(y)*pp.stepY
	dir := c.Direction.Add(c.Right.Mul(sx)).Add(c.Up.Mul(sy)).Norm()
	return Ray{Origin: c.Position, Direction: dir}
}

// SetupPerspectiveRays returns one ray per pixel, row-major: pixel (x, y) is
// at index y*width + x. The field of view is FOVDeg vertically.
func (c *Camera) SetupPerspectiveRays(width, height int) []Ray {
	if width <= 0 || height <= 0 {
		return nil
	}
	DebugLog("Allocating %d rays", width*height)
	pp := newPerspective(width, height)
	rays := make([]Ray, width*height)
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			rays[row+x] = c.rayAt(pp, x, y)
		}
	}
	return rays
}
