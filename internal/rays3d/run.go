package rays3d

import (
	"context"
	"os"
	"time"
)

// Options configure one Run.
type Options struct {
	Width, Height             int // canvas
	WindowWidth, WindowHeight int // presentation surface; canvas size when zero
	Workers                   int
	Batch                     int
	Input                     string
	Fullscreen                bool
	Headless                  bool
	Output                    string // PNG of the presented surface
	GIFOut                    string // animated GIF of the render progress
	RawOut                    string // raw framebuffer dump
	Format                    PixelFormat
	Tone                      ToneMode
	FPS                       int // presenter rate; zero blits in a tight loop
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.WindowWidth <= 0 {
		o.WindowWidth = o.Width
	}
	if o.WindowHeight <= 0 {
		o.WindowHeight = o.Height
	}
	if o.Workers <= 0 {
		o.Workers = defaultWorkers()
	}
	if o.Batch <= 0 {
		o.Batch = DefaultBatch
	}
	if o.FPS < 0 {
		o.FPS = 0
	}
	return o
}

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// Run loads the scene, renders it while presenting progress, and writes the
// requested outputs.
func Run(ctx context.Context, opts Options) error {
	if opts.Input == "" {
		return ErrNoInput
	}
	opts = opts.withDefaults()

	scene, err := LoadScene(opts.Input)
	if err != nil {
		return err
	}
	if Debug {
		scene.DebugPrint(os.Stdout)
	}
	if err := checkMemory(opts.Width, opts.Height); err != nil {
		return err
	}
	fb, err := NewFramebuffer(opts.Width, opts.Height)
	if err != nil {
		return err
	}
	enc := PixelEncoder{Format: opts.Format, Tone: opts.Tone}
	DebugLog("color (1.0, 1.0, 1.0) -> %d", enc.Encode(RGB(1, 1, 1)))
	d, err := NewDispatcher(opts.Workers, opts.Batch, enc)
	if err != nil {
		return err
	}
	if Debug {
		resetRayStats()
		DebugLog("Estimated coverage: %.3f", estimateCoverage(scene, opts.Width, opts.Height, ProbeRays))
	}

	var stats RenderStats
	if opts.Headless {
		stats, err = runHeadless(ctx, opts, d, scene, fb)
	} else {
		stats, err = runWindow(ctx, opts, d, scene, fb)
	}
	if err != nil {
		return err
	}
	Logger().Info("rendered", "rays", stats.Rays, "hits", stats.Hits, "workers", stats.Workers, "elapsed", stats.Elapsed)

	if opts.RawOut != "" {
		if err := SaveRawFramebuffer(fb, opts.RawOut); err != nil {
			return err
		}
		Logger().Info("saved raw framebuffer", "path", opts.RawOut)
	}
	return nil
}

func runHeadless(ctx context.Context, opts Options, d *Dispatcher, scene *Scene, fb *Framebuffer) (RenderStats, error) {
	img := NewImageSurface(opts.WindowWidth, opts.WindowHeight, d.Encoder.Format)
	surfaces := MultiSurface{img}
	var rec *GIFRecorder
	if opts.GIFOut != "" {
		rec = NewGIFRecorder(d.Encoder.Format, GIFEvery, MaxGIFFrames)
		surfaces = append(surfaces, rec)
	}
	p, err := NewPresenter(func() (Surface, error) { return surfaces, nil }, frameInterval(opts.FPS))
	if err != nil {
		return RenderStats{}, err
	}
	stats, err := Display(ctx, d, scene, fb, p, true)
	if err != nil {
		return stats, err
	}
	DebugLog("Presented %d frames", p.Frames())

	if rec != nil {
		if err := rec.Save(opts.GIFOut, GIFDelay); err != nil {
			return stats, err
		}
		Logger().Info("saved animated GIF", "path", opts.GIFOut, "frames", rec.Frames())
	}
	if opts.Output != "" {
		if err := SavePNG(img.Image(), opts.Output); err != nil {
			return stats, err
		}
		Logger().Info("saved PNG", "path", opts.Output)
	}
	return stats, nil
}
