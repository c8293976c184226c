package rays3d

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// PixelFormat is the packed layout of one framebuffer pixel.
type PixelFormat uint8

const (
	RGB888 PixelFormat = iota // 0x00RRGGBB
	RGB565                    // 5-6-5 bits in the low half
)

func (f PixelFormat) String() string {
	switch f {
	case RGB888:
		return "rgb888"
	case RGB565:
		return "rgb565"
	}
	return fmt.Sprintf("PixelFormat(%d)", uint8(f))
}

func ParsePixelFormat(s string) (PixelFormat, error) {
	switch strings.ToLower(s) {
	case "", "rgb888":
		return RGB888, nil
	case "rgb565":
		return RGB565, nil
	}
	return 0, fmt.Errorf("unknown pixel format %q (want rgb888 or rgb565)", s)
}

// MapRGB packs 8-bit channels into a pixel.
func (f PixelFormat) MapRGB(r, g, b uint8) uint32 {
	if f == RGB565 {
		rr := uint32(r>>3) & 0x1F
		gg := uint32(g>>2) & 0x3F
		bb := uint32(b>>3) & 0x1F
		return (rr << 11) | (gg << 5) | bb
	}
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// RGB unpacks a pixel into 8-bit channels.
func (f PixelFormat) RGB(p uint32) (r, g, b uint8) {
	if f == RGB565 {
		rr := (p >> 11) & 0x1F
		gg := (p >> 5) & 0x3F
		bb := p & 0x1F
		return uint8((rr * 255) / 31), uint8((gg * 255) / 63), uint8((bb * 255) / 31)
	}
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// ToneMode selects how a float color is brought into [0,1] before packing.
type ToneMode uint8

const (
	// ToneNormalize takes abs(normalize(color)); only the hue survives.
	ToneNormalize ToneMode = iota
	// ToneClamp clamps every channel to [0,1] and keeps brightness.
	ToneClamp
)

func ParseToneMode(s string) (ToneMode, error) {
	switch strings.ToLower(s) {
	case "", "normalize":
		return ToneNormalize, nil
	case "clamp":
		return ToneClamp, nil
	}
	return 0, fmt.Errorf("unknown tone mode %q (want normalize or clamp)", s)
}

// PixelEncoder converts shaded colors to packed pixels. It is passed to
// whoever writes or reads the framebuffer; there is no global format.
type PixelEncoder struct {
	Format PixelFormat
	Tone   ToneMode
}

func (e PixelEncoder) Encode(c Color) uint32 {
	var nc Color
	if e.Tone == ToneClamp {
		cl := func(x Real) Real { return math32.Max(0, math32.Min(1, x)) }
		nc = Color{cl(c.X), cl(c.Y), cl(c.Z)}
	} else {
		nc = c.Norm().Abs()
	}
	return e.Format.MapRGB(toByte(nc.X), toByte(nc.Y), toByte(nc.Z))
}
