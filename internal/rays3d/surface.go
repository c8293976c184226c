package rays3d

import (
	"image"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// Surface is a presentation target. Blit copies the framebuffer onto it,
// scaled to the surface size; it may run while workers are still writing.
type Surface interface {
	Blit(fb *Framebuffer) error
}

// MultiSurface blits to every surface in order and stops at the first error.
type MultiSurface []Surface

func (m MultiSurface) Blit(fb *Framebuffer) error {
	for _, s := range m {
		if err := s.Blit(fb); err != nil {
			return err
		}
	}
	return nil
}

// scaler decodes a framebuffer into a reusable canvas image and scales it
// onto a destination.
type scaler struct {
	format PixelFormat
	canvas *image.RGBA
}

func (s *scaler) blitScaled(dst *image.RGBA, fb *Framebuffer) {
	s.canvas = fb.DrawTo(s.canvas, s.format)
	if dst.Bounds() == s.canvas.Bounds() {
		copy(dst.Pix, s.canvas.Pix)
		return
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), s.canvas, s.canvas.Bounds(), xdraw.Src, nil)
}

// ImageSurface presents into an in-memory RGBA image of a fixed size.
type ImageSurface struct {
	mu sync.Mutex
	scaler
	dst *image.RGBA
}

func NewImageSurface(width, height int, format PixelFormat) *ImageSurface {
	return &ImageSurface{
		scaler: scaler{format: format},
		dst:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (s *ImageSurface) Blit(fb *Framebuffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blitScaled(s.dst, fb)
	return nil
}

// Image returns a copy of the last presented image.
func (s *ImageSurface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := image.NewRGBA(s.dst.Bounds())
	copy(out.Pix, s.dst.Pix)
	return out
}
