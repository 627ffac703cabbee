// internal/export/png.go
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/tamzrod/touchhand/internal/frame"
)

// WritePNG encodes the display frame enlarged by scale.
func WritePNG(w io.Writer, img image.Image, scale int) error {
	if img == nil {
		return fmt.Errorf("export: nil image")
	}
	return png.Encode(w, frame.Enlarge(img, scale))
}

// writeAtomic writes through a temp file in the target directory and
// renames it into place, so readers never see a partial file.
func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// SavePNG writes the enlarged frame to path atomically.
func SavePNG(path string, img image.Image, scale int) error {
	return writeAtomic(path, func(w io.Writer) error {
		return WritePNG(w, img, scale)
	})
}
