package rays3d

import "time"

// Render defaults and tunables.
const (
	DefaultWidth   = 1792
	DefaultHeight  = 768
	DefaultWorkers = 12
	DefaultBatch   = 3 // rays traced per batch by one worker
	FOVDeg         = 90.0
	Eps            = 0.000001

	// ShadowBias offsets shadow ray origins along the hit normal.
	// Too small gives shadow acne, too large lets light leak through contact points.
	ShadowBias = 0.01

	ProbeRays    = 10_000
	MaxGIFFrames = 100
	GIFDelay     = 5 // 100ths of a second per frame
	GIFEvery     = 100 * time.Millisecond
	WindowTitle  = "Raytracer"
)
