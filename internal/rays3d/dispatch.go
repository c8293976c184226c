package rays3d

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// RenderState tracks a Dispatcher through one render.
type RenderState int32

const (
	StateIdle        RenderState = iota
	StateDispatching             // rays set up, partitions computed
	StateRendering               // workers tracing
	StateDraining                // first worker finished, joining the rest
	StateDone                    // framebuffer stable
)

func (s RenderState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDispatching:
		return "dispatching"
	case StateRendering:
		return "rendering"
	case StateDraining:
		return "draining"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("RenderState(%d)", int32(s))
}

// RenderStats summarizes one render.
type RenderStats struct {
	Rays    int
	Hits    int64
	Workers int
	Elapsed time.Duration
}

// Dispatcher fills a framebuffer with a fixed pool of workers, one per
// partition. There is no work stealing and no cancellation: a dispatched
// render always runs to completion.
type Dispatcher struct {
	Workers int
	Batch   int
	Encoder PixelEncoder

	state  atomic.Int32
	traced atomic.Int64
}

func NewDispatcher(workers, batch int, enc PixelEncoder) (*Dispatcher, error) {
	if workers < 1 {
		return nil, fmt.Errorf("worker count must be >= 1, got %d", workers)
	}
	if batch < 1 {
		return nil, fmt.Errorf("batch size must be >= 1, got %d", batch)
	}
	return &Dispatcher{Workers: workers, Batch: batch, Encoder: enc}, nil
}

func (d *Dispatcher) State() RenderState { return RenderState(d.state.Load()) }

// Traced returns how many rays the current or last render has traced.
func (d *Dispatcher) Traced() int64 { return d.traced.Load() }

func (d *Dispatcher) setState(s RenderState) {
	d.state.Store(int32(s))
	DebugLog("Render state: %s", s)
}

// Render traces every pixel of fb. Each worker writes only inside its own
// partition; pixels no ray hits keep their value unless the scene has a
// background color.
func (d *Dispatcher) Render(scene *Scene, fb *Framebuffer) (RenderStats, error) {
	if scene == nil || scene.Camera == nil {
		return RenderStats{}, ErrNoCamera
	}
	workers, batch := max(d.Workers, 1), max(d.Batch, 1)
	start := time.Now()

	d.setState(StateDispatching)
	d.traced.Store(0)
	if scene.Background != nil {
		fb.Clear(d.Encoder.Encode(*scene.Background))
	}
	rays := scene.Camera.SetupPerspectiveRays(fb.Width, fb.Height)
	total := len(rays)
	ranges := Partition(total, workers)
	DebugLog("Parallelism: %d rays per worker, %d rays in total", total/workers, total)

	nextPrint := int64(1)
	if total >= 100 {
		nextPrint = int64(total / 100) // ~1%
	}

	var hits atomic.Int64
	var wg sync.WaitGroup
	var draining sync.Once
	d.setState(StateRendering)
	wg.Add(len(ranges))
	for i, rg := range ranges {
		go func(wid int, rg Range) {
			defer wg.Done()
			var counts *rayCounts
			if Debug {
				counts = &rayCounts{}
			}
			DebugLog("rw[%d]: Firing %d rays", wid, rg.Len())
			n := d.fireRays(rg, batch, rays, scene, fb, counts, total, nextPrint)
			hits.Add(n)
			mergeRayCounts(counts)
			DebugLog("rw[%d]: Done!", wid)
			draining.Do(func() { d.setState(StateDraining) })
		}(i, rg)
	}

	wg.Wait()
	d.setState(StateDone)

	stats := RenderStats{Rays: total, Hits: hits.Load(), Workers: workers, Elapsed: time.Since(start)}
	if Debug {
		raysStats()
	}
	return stats, nil
}

// fireRays traces rg in batches and returns the number of hits.
func (d *Dispatcher) fireRays(rg Range, batch int, rays []Ray, scene *Scene, fb *Framebuffer, counts *rayCounts, total int, nextPrint int64) int64 {
	var hits int64
	for i := rg.Start; i < rg.End; i += batch {
		end := min(i+batch, rg.End)
		for j := i; j < end; j++ {
			if hit, ok := scene.traceRay(rays[j], counts); ok {
				fb.Set(j, d.Encoder.Encode(hit.Color))
				hits++
			}
		}
		k := int64(end - i)
		fired := d.traced.Add(k)
		if fired/nextPrint != (fired-k)/nextPrint {
			DebugLog("[PROGRESS] %.2f%%", float64(fired)*100/float64(total))
		}
	}
	return hits
}

// Render traces scene into a new width×height framebuffer with workers
// goroutines, the default batch size and RGB888 pixels.
func Render(scene *Scene, width, height, workers int) (*Framebuffer, error) {
	fb, err := NewFramebuffer(width, height)
	if err != nil {
		return nil, err
	}
	d, err := NewDispatcher(workers, DefaultBatch, PixelEncoder{Format: RGB888})
	if err != nil {
		return nil, err
	}
	if _, err := d.Render(scene, fb); err != nil {
		return nil, err
	}
	return fb, nil
}
