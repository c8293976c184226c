package rays3d

import (
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func tinyFramebuffer(t *testing.T) *Framebuffer {
	t.Helper()
	fb, err := NewFramebuffer(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	fb.Set(1, RGB888.MapRGB(255, 128, 64))
	return fb
}

func TestGIFRecorderCapsFrames(t *testing.T) {
	fb := tinyFramebuffer(t)
	rec := NewGIFRecorder(RGB888, 0, 3)
	for i := 0; i < 5; i++ {
		if err := rec.Blit(fb); err != nil {
			t.Fatal(err)
		}
	}
	// The last slot is kept for the closing frame.
	if rec.Frames() != 2 {
		t.Fatalf("frames %d, want 2", rec.Frames())
	}
	path := filepath.Join(t.TempDir(), "sub", "out.gif")
	if err := rec.Save(path, GIFDelay); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 3 || g.Delay[0] != GIFDelay {
		t.Fatalf("gif has %d frames, delay %v", len(g.Image), g.Delay)
	}
	if b := g.Image[0].Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("frame size %v", b)
	}
}

func TestGIFRecorderNoFrames(t *testing.T) {
	rec := NewGIFRecorder(RGB888, 0, 0)
	if err := rec.Save(filepath.Join(t.TempDir(), "x.gif"), 1); err == nil {
		t.Fatal("saving without frames should fail")
	}
}

func TestSaveFramebufferPNG(t *testing.T) {
	fb := tinyFramebuffer(t)
	path := filepath.Join(t.TempDir(), "out", "img.png")
	if err := SaveFramebufferPNG(fb, RGB888, path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("png size %v", b)
	}
	r, g, b, a := img.At(1, 0).RGBA()
	if r>>8 != 255 || g>>8 != 128 || b>>8 != 64 || a>>8 != 255 {
		t.Fatalf("pixel %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
}
