package rays3d

import "github.com/chewxy/math32"

func isFinite(x Real) bool { return !math32.IsInf(x, 0) && !math32.IsNaN(x) }

// toByte maps [0,1] to [0,255] by truncation; out of range and NaN inputs saturate.
func toByte(v Real) uint8 {
	if !isFinite(v) || v <= 0 {
		if math32.IsInf(v, 1) {
			return 255
		}
		return 0
	}
	x := math32.Trunc(v * 255)
	if x > 255 {
		return 255
	}
	return uint8(x)
}
