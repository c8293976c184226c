package rays3d

// estimateCoverage probes trials evenly strided primary rays of a
// width×height canvas and returns the fraction that hits anything.
func estimateCoverage(scene *Scene, width, height, trials int) Real {
	if scene == nil || scene.Camera == nil || width <= 0 || height <= 0 || trials <= 0 {
		return 0
	}
	total := width * height
	if trials > total {
		trials = total
	}
	workers := min(defaultWorkers(), trials)

	pp := newPerspective(width, height)
	ranges := Partition(trials, workers)
	hitsCh := make(chan int, workers)
	for _, rg := range ranges {
		go func(rg Range) {
			localHits := 0
			for k := rg.Start; k < rg.End; k++ {
				idx := k * total / trials
				r := scene.Camera.rayAt(pp, idx%width, idx/width)
				if _, ok := scene.CastRay(r); ok {
					localHits++
				}
			}
			hitsCh <- localHits
		}(rg)
	}

	totalHits := 0
	for range ranges {
		totalHits += <-hitsCh
	}
	return Real(totalHits) / Real(trials)
}
