package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"
)

var ErrUpscale = errors.New("upscale factor must be at least 1")

// MaxUpscale bounds the enlargement factor.
const MaxUpscale = 16

// Upscale enlarges img by an integer factor, repeating each pixel. A factor of 1 returns img.
func Upscale(img *image.RGBA, factor int) (*image.RGBA, error) {
	if factor < 1 || factor > MaxUpscale {
		return nil, fmt.Errorf("%w and at most %d, got %d", ErrUpscale, MaxUpscale, factor)
	}
	if factor == 1 {
		return img, nil
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	return dst, nil
}

// WritePNG encodes img, enlarged by factor, to w.
func WritePNG(w io.Writer, img *image.RGBA, factor int) error {
	scaled, err := Upscale(img, factor)
	if err != nil {
		return err
	}

	return png.Encode(w, scaled)
}

// DefaultPath is a timestamped file name under dir.
func DefaultPath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s.png", now.Format("20060102150405")))
}

// SavePNG writes img to path, creating parent directories.
func SavePNG(path string, img *image.RGBA, factor int) error {
	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = WritePNG(f, img, factor)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return f.Close()
}
