package colorspace

import "math"

// Sector breakpoints of the hue ramp, kept as truncated decimals rather than exact fractions.
const (
	oneSixth  float32 = 0.166666
	oneHalf   float32 = 0.5
	twoThirds float32 = 0.666666
	oneThird  float32 = 0.333333
)

// HSL is a hue/saturation/lightness color. H wraps into [0, 1); S and L are expected in [0, 1]
// but are not clamped.
type HSL struct {
	H, S, L float32
}

// hueChannel evaluates one RGB channel at hue offset t.
func hueChannel(p, q, t float32) float32 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}

	switch {
	case t < oneSixth:
		return p + (q-p)*6*t
	case t < oneHalf:
		return q
	case t < twoThirds:
		return p + (q-p)*(twoThirds-t)*6
	default:
		return p
	}
}

func (c HSL) RGB() RGB {
	h := float32(math.Mod(float64(c.H), 1.0))
	s, l := c.S, c.L

	var r, g, b float32
	if s < 0.001 {
		r, g, b = l, l, l
	} else {
		var q float32
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		r = hueChannel(p, q, h+oneThird)
		g = hueChannel(p, q, h)
		b = hueChannel(p, q, h-oneThird)
	}

	return RGB{truncByte(r * 255), truncByte(g * 255), truncByte(b * 255)}
}

func (c HSL) Put(dst []byte) {
	c.RGB().Put(dst)
}
