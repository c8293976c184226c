package rays3d

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// AcquireFunc returns the current destination surface. It is called once up
// front and again whenever the destination has been switched (e.g. resized).
type AcquireFunc func() (Surface, error)

// Presenter repeatedly blits a framebuffer to a surface while running. It
// does not synchronize with render workers; partially updated frames are
// expected.
type Presenter struct {
	acquire  AcquireFunc
	interval time.Duration // zero means a tight loop
	surface  Surface

	running  atomic.Bool
	switched atomic.Bool
	frames   atomic.Int64
}

func NewPresenter(acquire AcquireFunc, interval time.Duration) (*Presenter, error) {
	s, err := acquire()
	if err != nil {
		return nil, err
	}
	p := &Presenter{acquire: acquire, interval: interval, surface: s}
	p.running.Store(true)
	return p, nil
}

func (p *Presenter) Running() bool { return p.running.Load() }

// Stop ends Loop after its current blit. It does not cancel rendering.
func (p *Presenter) Stop() { p.running.Store(false) }

// BufferSwitched makes the next Present re-acquire the surface first.
func (p *Presenter) BufferSwitched() { p.switched.Store(true) }

// Frames returns the number of blits so far.
func (p *Presenter) Frames() int64 { return p.frames.Load() }

// Present blits fb once.
func (p *Presenter) Present(fb *Framebuffer) error {
	if p.switched.CompareAndSwap(true, false) {
		s, err := p.acquire()
		if err != nil {
			return err
		}
		p.surface = s
	}
	if err := p.surface.Blit(fb); err != nil {
		return err
	}
	p.frames.Add(1)
	return nil
}

// Loop presents fb until Stop is called.
func (p *Presenter) Loop(fb *Framebuffer) error {
	var tick <-chan time.Time
	if p.interval > 0 {
		t := time.NewTicker(p.interval)
		defer t.Stop()
		tick = t.C
	}
	for p.running.Load() {
		if err := p.Present(fb); err != nil {
			return err
		}
		if tick != nil {
			<-tick
		}
	}
	return nil
}

// Display renders scene into fb while p presents it concurrently. With
// stopWhenDone the presenter is stopped as soon as the render completes;
// otherwise it runs until someone else calls Stop (a closed window) or ctx
// ends. Rendering is never interrupted. After both have finished, fb is
// presented one final time.
func Display(ctx context.Context, d *Dispatcher, scene *Scene, fb *Framebuffer, p *Presenter, stopWhenDone bool) (RenderStats, error) {
	g, gctx := errgroup.WithContext(ctx)
	var stats RenderStats
	g.Go(func() error { return p.Loop(fb) })
	g.Go(func() error {
		var err error
		stats, err = d.Render(scene, fb)
		if stopWhenDone || err != nil {
			p.Stop()
		}
		return err
	})
	go func() {
		<-gctx.Done()
		p.Stop()
	}()
	if err := g.Wait(); err != nil {
		return stats, err
	}
	return stats, p.Present(fb)
}
