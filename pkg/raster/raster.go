package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"runtime"
	"sync"

	"github.com/willbeason/newton-fractal/pkg/cplx"
	"github.com/willbeason/newton-fractal/pkg/newton"
)

var (
	ErrDimensions = errors.New("image dimensions must be positive")
	ErrBufferSize = errors.New("buffer size does not match image dimensions")
	ErrDamping    = errors.New("damping must be finite")
)

// Params are the per-call inputs of a render.
type Params struct {
	Width, Height int

	// A scales each Newton step.
	A float64

	// Workers is the number of goroutines computing columns. Zero means one per CPU and one
	// renders in the calling goroutine.
	Workers int
}

// BufferSize is the length of an RGBA buffer for p.
func (p Params) BufferSize() int {
	return p.Width * p.Height * 4
}

func (p Params) validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, p.Width, p.Height)
	}
	if p.Width > math.MaxInt/4/p.Height {
		return fmt.Errorf("%w: %dx%d overflows", ErrDimensions, p.Width, p.Height)
	}
	if math.IsNaN(p.A) || math.IsInf(p.A, 0) {
		return fmt.Errorf("%w: got %g", ErrDamping, p.A)
	}

	return nil
}

func (p Params) workers() int {
	n := p.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}

	return min(n, p.Width)
}

// Render fills buf with the fractal v as a row-major RGBA image of p.Width by p.Height
// pixels. Every alpha byte is 255.
func Render(buf []byte, p Params, v newton.Variant) error {
	return RenderContext(context.Background(), buf, p, v)
}

// RenderContext is Render, stopping early if ctx is done. If ctx is done before every column
// has started, buf is partially written and ctx.Err() is returned.
func RenderContext(ctx context.Context, buf []byte, p Params, v newton.Variant) error {
	if err := p.validate(); err != nil {
		return err
	}
	if len(buf) != p.BufferSize() {
		return fmt.Errorf("%w: got %d bytes, want %d for %dx%d", ErrBufferSize, len(buf), p.BufferSize(), p.Width, p.Height)
	}
	if err := v.Validate(); err != nil {
		return err
	}

	parallel := p.workers()
	if parallel == 1 {
		for x := 0; x < p.Width; x++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			renderColumn(buf, p, v, x)
		}

		return nil
	}

	xChannel := make(chan int)

	// Written before xChannel closes, read after every worker has seen it closed.
	var stopped error

	go func() {
		defer close(xChannel)
		for x := 0; x < p.Width; x++ {
			if stopped = ctx.Err(); stopped != nil {
				return
			}
			select {
			case xChannel <- x:
			case <-ctx.Done():
				stopped = ctx.Err()
				return
			}
		}
	}()

	// Columns write disjoint pixels, so workers share buf without locking.
	xwg := sync.WaitGroup{}
	xwg.Add(parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			for x := range xChannel {
				renderColumn(buf, p, v, x)
			}
			xwg.Done()
		}()
	}
	xwg.Wait()

	return stopped
}

// Image renders into a newly allocated image.
func Image(ctx context.Context, p Params, v newton.Variant) (*image.RGBA, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	if err := RenderContext(ctx, img.Pix, p, v); err != nil {
		return nil, err
	}

	return img, nil
}

func renderColumn(buf []byte, p Params, v newton.Variant, x int) {
	// y, centered on half the width, becomes the real part and x, centered on half the
	// height, the imaginary part.
	zr := (float64(x) - float64(p.Height)*0.5) * v.Scale

	for y := 0; y < p.Height; y++ {
		zi := (float64(y) - float64(p.Width)*0.5) * v.Scale

		result := newton.Calculate(v, cplx.Complex{Re: zi, Im: zr}, p.A)

		idx := (y*p.Width + x) * 4
		v.Coloring.Put(buf[idx:idx+3], result)
		buf[idx+3] = 255
	}
}
