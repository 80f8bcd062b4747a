package newton

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/willbeason/newton-fractal/pkg/colorspace"
)

// A Coloring writes the RGB bytes for a Result into dst[0:3].
type Coloring interface {
	Name() string
	Put(dst []byte, r Result)
}

// HSVRamp colors by root hue with value rising and saturation falling with iteration count.
// Inputs wrap at 8 bits instead of being clamped, so slow points cycle through bands.
type HSVRamp struct{}

func (HSVRamp) Name() string { return "hsv" }

func (HSVRamp) Put(dst []byte, r Result) {
	iteration, root := r.Legacy()

	colorspace.HSV{
		H: uint8((root * 100) % 255),
		S: uint8(255 - iteration*6),
		V: uint8(iteration * 12),
	}.Put(dst)
}

// HSLRamp colors by root hue at half saturation with lightness rising with iteration count.
type HSLRamp struct{}

func (HSLRamp) Name() string { return "hsl" }

func (HSLRamp) Put(dst []byte, r Result) {
	iteration, root := r.Legacy()

	colorspace.HSL{
		H: float32(0.3888 * float64(root)),
		S: 0.5,
		L: float32(float64(iteration) * 0.1),
	}.Put(dst)
}

// Blend spreads the roots evenly around the HCL hue circle and darkens with iteration
// count. Points that never converge are black.
type Blend struct {
	Roots int
}

func (Blend) Name() string { return "blend" }

func (b Blend) Put(dst []byte, r Result) {
	if !r.Converged || b.Roots <= 0 {
		colorspace.RGB{}.Put(dst)
		return
	}

	hue := 360 * float64(r.Root) / float64(b.Roots)
	lightness := 0.15 + 0.6*math.Exp(-float64(r.Iteration)/16)

	red, green, blue := colorful.Hcl(hue, 0.5, lightness).Clamped().RGB255()
	colorspace.RGB{red, green, blue}.Put(dst)
}

var (
	_ Coloring = HSVRamp{}
	_ Coloring = HSLRamp{}
	_ Coloring = Blend{}
)
