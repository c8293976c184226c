package rays3d

// Range is a half-open interval [Start, End) of pixel indices.
type Range struct {
	Start, End int
}

func (r Range) Len() int { return r.End - r.Start }

// Partition splits [0, total) into workers contiguous ranges of total/workers
// indices each; the last range also takes the remainder. Ranges never
// overlap and together cover [0, total) exactly.
func Partition(total, workers int) []Range {
	if workers < 1 {
		workers = 1
	}
	if total < 0 {
		total = 0
	}
	per := total / workers
	out := make([]Range, workers)
	for i := 0; i < workers; i++ {
		out[i] = Range{Start: i * per, End: (i + 1) * per}
	}
	out[workers-1].End = total
	return out
}
