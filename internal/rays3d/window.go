//go:build cgo

package rays3d

import (
	"context"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// windowSurface is the staging image between the presenter goroutine and
// the ebiten draw loop.
type windowSurface struct {
	mu sync.Mutex
	scaler
	dst *image.RGBA
}

func (s *windowSurface) Blit(fb *Framebuffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dst != nil {
		s.blitScaled(s.dst, fb)
	}
	return nil
}

type windowGame struct {
	p       *Presenter
	surface *windowSurface
	img     *ebiten.Image

	mu         sync.Mutex
	outW, outH int
}

// acquire sizes the staging image to the current window.
func (g *windowGame) acquire() (Surface, error) {
	g.mu.Lock()
	w, h := g.outW, g.outH
	g.mu.Unlock()

	s := g.surface
	s.mu.Lock()
	defer s.mu.Unlock()
	if w > 0 && h > 0 && (s.dst == nil || s.dst.Bounds().Dx() != w || s.dst.Bounds().Dy() != h) {
		s.dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return s, nil
}

func (g *windowGame) Update() error {
	if ebiten.IsWindowBeingClosed() || !g.p.Running() {
		g.p.Stop()
		return ebiten.Termination
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	s := g.surface
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dst == nil {
		return
	}
	b := s.dst.Bounds()
	if g.img == nil || g.img.Bounds().Dx() != b.Dx() || g.img.Bounds().Dy() != b.Dy() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.img.WritePixels(s.dst.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.mu.Lock()
	changed := outsideWidth != g.outW || outsideHeight != g.outH
	if changed {
		g.outW, g.outH = outsideWidth, outsideHeight
	}
	g.mu.Unlock()
	if changed {
		g.p.BufferSwitched()
	}
	return outsideWidth, outsideHeight
}

// runWindow presents the render in a desktop window until it is closed. The
// ebiten loop owns the calling goroutine, which must be the main one.
func runWindow(ctx context.Context, opts Options, d *Dispatcher, scene *Scene, fb *Framebuffer) (RenderStats, error) {
	g := &windowGame{
		surface: &windowSurface{scaler: scaler{format: d.Encoder.Format}},
		outW:    opts.WindowWidth,
		outH:    opts.WindowHeight,
	}
	p, err := NewPresenter(g.acquire, frameInterval(opts.FPS))
	if err != nil {
		return RenderStats{}, err
	}
	g.p = p

	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowSize(opts.WindowWidth, opts.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(opts.Fullscreen)

	type result struct {
		stats RenderStats
		err   error
	}
	done := make(chan result, 1)
	go func() {
		stats, err := Display(ctx, d, scene, fb, p, false)
		done <- result{stats, err}
	}()

	runErr := ebiten.RunGame(g)
	p.Stop()
	res := <-done
	if runErr != nil {
		return res.stats, runErr
	}
	if res.err != nil {
		return res.stats, res.err
	}
	if opts.Output != "" {
		if err := SaveFramebufferPNG(fb, d.Encoder.Format, opts.Output); err != nil {
			return res.stats, err
		}
		Logger().Info("saved PNG", "path", opts.Output)
	}
	return res.stats, nil
}
