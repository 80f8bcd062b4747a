package output

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func checker() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	return img
}

func TestUpscale(t *testing.T) {
	src := checker()
	got, err := Upscale(src, 3)
	if err != nil {
		t.Fatal(err)
	}

	if b := got.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, want 6x6", b)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if want, have := src.RGBAAt(x/3, y/3), got.RGBAAt(x, y); want != have {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, have, want)
			}
		}
	}
}

func TestUpscaleIdentity(t *testing.T) {
	src := checker()
	got, err := Upscale(src, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got != src {
		t.Error("Upscale(1) copied the image")
	}
}

func TestUpscaleRange(t *testing.T) {
	for _, factor := range []int{-1, 0, MaxUpscale + 1} {
		if _, err := Upscale(checker(), factor); !errors.Is(err, ErrUpscale) {
			t.Errorf("Upscale(%d) error = %v, want ErrUpscale", factor, err)
		}
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, checker(), 2); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("decoded bounds = %v, want 4x4", b)
	}
}

func TestDefaultPath(t *testing.T) {
	now := time.Date(2026, 10, 19, 13, 4, 5, 0, time.UTC)
	if got, want := DefaultPath("out", now), filepath.Join("out", "20261019130405.png"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fractal.png")
	if err := SavePNG(path, checker(), 1); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file is not a PNG: %v", err)
	}
}
