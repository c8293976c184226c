package rays3d

import "testing"

func TestNewFramebufferValidation(t *testing.T) {
	if _, err := NewFramebuffer(0, 1); err == nil {
		t.Fatal("zero width should fail")
	}
	if _, err := NewFramebuffer(1, -1); err == nil {
		t.Fatal("negative height should fail")
	}
}

func TestFramebufferAccess(t *testing.T) {
	fb, err := NewFramebuffer(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if fb.Len() != 12 {
		t.Fatalf("len %d", fb.Len())
	}
	fb.Set(2*4+1, 0xABCDEF)
	if fb.PixelAt(1, 2) != 0xABCDEF || fb.At(9) != 0xABCDEF {
		t.Fatal("Set/PixelAt mismatch")
	}
	fb.Clear(7)
	snap := fb.Snapshot(nil)
	for i, p := range snap {
		if p != 7 {
			t.Fatalf("pixel %d = %d after Clear", i, p)
		}
	}
	// Snapshot reuses a large enough buffer.
	buf := make([]uint32, 0, 32)
	if snap = fb.Snapshot(buf); len(snap) != 12 || &snap[0] != &buf[:1][0] {
		t.Fatal("snapshot did not reuse buffer")
	}
}

func TestFramebufferDrawTo(t *testing.T) {
	fb, err := NewFramebuffer(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	fb.Set(3, 0xFF8000)
	img := fb.DrawTo(nil, RGB888)
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("image size %v", img.Bounds())
	}
	c := img.RGBAAt(1, 1)
	if c.R != 0xFF || c.G != 0x80 || c.B != 0 || c.A != 0xFF {
		t.Fatalf("pixel decoded to %+v", c)
	}
	if again := fb.DrawTo(img, RGB888); again != img {
		t.Fatal("matching image should be reused")
	}
}
