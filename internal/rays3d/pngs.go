package rays3d

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// SavePNG writes img as a lossless 8-bit PNG, creating parent directories.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveFramebufferPNG writes fb at its native size.
func SaveFramebufferPNG(fb *Framebuffer, format PixelFormat, path string) error {
	return SavePNG(fb.DrawTo(nil, format), path)
}
