package rays3d

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawFramebuffer dumps fb as: width, height (int32 little-endian) then
// width*height packed pixels (uint32 little-endian), row-major.
func SaveRawFramebuffer(fb *Framebuffer, path string) error {
	if exp := int64(fb.Width) * int64(fb.Height); int64(fb.Len()) != exp {
		return fmt.Errorf("framebuffer length mismatch: got %d, expected %d (Width*Height)", fb.Len(), exp)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, int32(fb.Width)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(fb.Height)); err != nil {
		return err
	}
	// Body: one shot from a stable snapshot
	if err := binary.Write(w, binary.LittleEndian, fb.Snapshot(nil)); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}
