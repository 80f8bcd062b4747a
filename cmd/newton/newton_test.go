package main

import (
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()

	cmd := mainCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	return cmd.ExecuteContext(context.Background())
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fractal.png")

	err := execute(t, "--width", "6", "--height", "4", "-a", "0.8", "--variant", "golden-star",
		"--coloring", "blend", "--scale", "0.5", "--upscale", "2", "-o", out)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Errorf("bounds = %v, want 12x8", b)
	}
}

func TestRunRejects(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown variant", args: []string{"--variant", "mandelbrot"}},
		{name: "unknown coloring", args: []string{"--coloring", "sepia"}},
		{name: "zero width", args: []string{"--width", "0"}},
		{name: "bad upscale", args: []string{"--width", "2", "--height", "2", "--upscale", "0"}},
		{name: "positional argument", args: []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-o", filepath.Join(dir, tt.name+".png")}, tt.args...)
			if err := execute(t, args...); err == nil {
				t.Errorf("newton %v succeeded", tt.args)
			}
		})
	}
}
