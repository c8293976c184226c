package rays3d

import "sync"

type Category uint8

const (
	CatHit      Category = iota // primary ray hit a primitive
	CatMiss                     // primary ray left the scene
	CatLit                      // shadow ray reached its light
	CatShadowed                 // shadow ray was blocked before its light
	CatUnlit                    // hit point reached by no light at all
	numCategories
)

func (c Category) String() string {
	switch c {
	case CatHit:
		return "hit"
	case CatMiss:
		return "miss"
	case CatLit:
		return "lit"
	case CatShadowed:
		return "shadowed"
	case CatUnlit:
		return "unlit"
	}
	return "unknown"
}

// rayCounts is owned by a single worker while tracing and merged afterwards.
type rayCounts [numCategories]int64

func (c *rayCounts) log(cat Category) {
	if c != nil {
		c[cat]++
	}
}

type RayLogCache struct {
	mu     sync.Mutex
	counts rayCounts
}

var cache = &RayLogCache{}

func mergeRayCounts(local *rayCounts) {
	if local == nil {
		return
	}
	cache.mu.Lock()
	defer cache.mu.Unlock()
	for i, n := range local {
		cache.counts[i] += n
	}
}

func resetRayStats() {
	cache.mu.Lock()
	cache.counts = rayCounts{}
	cache.mu.Unlock()
}

// RayStats returns a copy of the accumulated counters.
func RayStats() map[Category]int64 {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	out := make(map[Category]int64, numCategories)
	for i, n := range cache.counts {
		out[Category(i)] = n
	}
	return out
}

func raysStats() {
	for cat, n := range RayStats() {
		DebugLog("Ray type %s: %d", cat, n)
	}
}
