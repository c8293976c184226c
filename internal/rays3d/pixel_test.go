package rays3d

import "testing"

func TestEncodeRGB888(t *testing.T) {
	enc := PixelEncoder{Format: RGB888}
	// White normalizes to 1/sqrt(3) per channel.
	if got := enc.Encode(RGB(1, 1, 1)); got != 147<<16|147<<8|147 {
		t.Fatalf("white encoded to %#x", got)
	}
	if got := enc.Encode(RGB(1, 0, 0)); got != 0xFF0000 {
		t.Fatalf("red encoded to %#x", got)
	}
	// Negative channels fold through abs.
	if got := enc.Encode(RGB(0, -2, 0)); got != 0x00FF00 {
		t.Fatalf("negative green encoded to %#x", got)
	}
	if got := enc.Encode(RGB(0, 0, 0)); got != 0 {
		t.Fatalf("black encoded to %#x", got)
	}
}

func TestEncodeClamp(t *testing.T) {
	enc := PixelEncoder{Format: RGB888, Tone: ToneClamp}
	if got := enc.Encode(RGB(2, 0.5, -1)); got != 0xFF7F00 {
		t.Fatalf("clamped encode %#x", got)
	}
}

func TestRGB565(t *testing.T) {
	if p := RGB565.MapRGB(255, 255, 255); p != 0xFFFF {
		t.Fatalf("white 565 = %#x", p)
	}
	if p := RGB565.MapRGB(255, 0, 0); p != 0xF800 {
		t.Fatalf("red 565 = %#x", p)
	}
	r, g, b := RGB565.RGB(0xFFFF)
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("unpack white: %d %d %d", r, g, b)
	}
	r, g, b = RGB565.RGB(0x07E0)
	if r != 0 || g != 255 || b != 0 {
		t.Fatalf("unpack green: %d %d %d", r, g, b)
	}
}

func TestRGB888RoundTrip(t *testing.T) {
	r, g, b := RGB888.RGB(RGB888.MapRGB(12, 34, 56))
	if r != 12 || g != 34 || b != 56 {
		t.Fatalf("round trip: %d %d %d", r, g, b)
	}
}

func TestParseFormats(t *testing.T) {
	if f, err := ParsePixelFormat("RGB565"); err != nil || f != RGB565 {
		t.Fatalf("parse rgb565: %v %v", f, err)
	}
	if _, err := ParsePixelFormat("yuv"); err == nil {
		t.Fatal("unknown format should fail")
	}
	if m, err := ParseToneMode("clamp"); err != nil || m != ToneClamp {
		t.Fatalf("parse clamp: %v %v", m, err)
	}
	if _, err := ParseToneMode("aces"); err == nil {
		t.Fatal("unknown tone mode should fail")
	}
}

func TestToByte(t *testing.T) {
	cases := map[Real]uint8{0: 0, -1: 0, 0.5: 127, 1: 255, 7: 255}
	for in, want := range cases {
		if got := toByte(in); got != want {
			t.Fatalf("toByte(%g) = %d, want %d", in, got, want)
		}
	}
}
