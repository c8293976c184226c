package rays3d

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// GIFRecorder is a Surface that records the progress of a render as an
// animated GIF: at most one frame per Every, at most MaxFrames frames.
type GIFRecorder struct {
	Format    PixelFormat
	Every     time.Duration
	MaxFrames int

	mu     sync.Mutex
	canvas *image.RGBA
	frames []*image.Paletted
	last   time.Time
	fb     *Framebuffer // latest blitted, for the closing frame
	dirty  bool
}

func NewGIFRecorder(format PixelFormat, every time.Duration, maxFrames int) *GIFRecorder {
	if maxFrames <= 0 {
		maxFrames = MaxGIFFrames
	}
	return &GIFRecorder{Format: format, Every: every, MaxFrames: maxFrames}
}

func (g *GIFRecorder) Blit(fb *Framebuffer) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fb, g.dirty = fb, true
	if len(g.frames) >= g.MaxFrames-1 || time.Since(g.last) < g.Every {
		return nil // keep the last slot for the final frame
	}
	g.addFrame()
	return nil
}

func (g *GIFRecorder) addFrame() {
	g.canvas = g.fb.DrawTo(g.canvas, g.Format)
	// Quantize to paletted for GIF
	pimg := image.NewPaletted(g.canvas.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), g.canvas, image.Point{})
	g.frames = append(g.frames, pimg)
	g.last = time.Now()
	g.dirty = false
}

func (g *GIFRecorder) Frames() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.frames)
}

// Save writes the recorded frames, adding the latest blitted state when it
// has not been recorded yet. delay is in 100ths of a second.
func (g *GIFRecorder) Save(path string, delay int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dirty && g.fb != nil {
		g.addFrame()
	}
	if len(g.frames) == 0 {
		return errors.New("no frames recorded")
	}
	out := &gif.GIF{
		Image:     g.frames,
		Delay:     make([]int, len(g.frames)),
		LoopCount: 0,
	}
	for i := range out.Delay {
		out.Delay[i] = delay
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
