package rays3d

import (
	"fmt"
	"image"
	"sync/atomic"
)

// Framebuffer is a width×height array of packed pixels, row-major.
// Render workers write disjoint index ranges while a presenter reads the
// whole buffer; per-pixel atomics keep that race-free without locks, so a
// reader may see a mix of old and new pixels.
type Framebuffer struct {
	Width, Height int
	pix           []atomic.Uint32
}

func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("framebuffer size must be positive, got %dx%d", width, height)
	}
	return &Framebuffer{
		Width:  width,
		Height: height,
		pix:    make([]atomic.Uint32, width*height),
	}, nil
}

func (f *Framebuffer) Len() int                { return len(f.pix) }
func (f *Framebuffer) Set(i int, p uint32)     { f.pix[i].Store(p) }
func (f *Framebuffer) At(i int) uint32         { return f.pix[i].Load() }
func (f *Framebuffer) PixelAt(x, y int) uint32 { return f.pix[y*f.Width+x].Load() }

// Clear sets every pixel to p. Not to be called while workers render.
func (f *Framebuffer) Clear(p uint32) {
	for i := range f.pix {
		f.pix[i].Store(p)
	}
}

// Snapshot copies the pixels into dst, growing it when too small.
func (f *Framebuffer) Snapshot(dst []uint32) []uint32 {
	if cap(dst) < len(f.pix) {
		dst = make([]uint32, len(f.pix))
	}
	dst = dst[:len(f.pix)]
	for i := range f.pix {
		dst[i] = f.pix[i].Load()
	}
	return dst
}

// DrawTo decodes the pixels into img, which must be Width×Height. A nil img
// is allocated.
func (f *Framebuffer) DrawTo(img *image.RGBA, format PixelFormat) *image.RGBA {
	if img == nil || img.Bounds().Dx() != f.Width || img.Bounds().Dy() != f.Height {
		img = image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	}
	for y := 0; y < f.Height; y++ {
		row := y * f.Width
		off := y * img.Stride
		for x := 0; x < f.Width; x++ {
			r, g, b := format.RGB(f.pix[row+x].Load())
			j := off + x*4
			img.Pix[j+0] = r
			img.Pix[j+1] = g
			img.Pix[j+2] = b
			img.Pix[j+3] = 0xFF
		}
	}
	return img
}
