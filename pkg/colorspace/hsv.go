package colorspace

// HSV is an 8-bit hue/saturation/value color. The hue circle spans 0-255 in six sectors of 43.
type HSV struct {
	H, S, V uint8
}

// RGB converts with integer arithmetic only.
func (c HSV) RGB() RGB {
	v := int(c.V)
	if c.S == 0 {
		return RGB{c.V, c.V, c.V}
	}

	s := int(c.S)
	region := int(c.H) / 43
	remainder := (int(c.H) - region*43) * 6

	p := uint8((v * (255 - s)) >> 8)
	q := uint8((v * (255 - ((s * remainder) >> 8))) >> 8)
	t := uint8((v * (255 - ((s * (255 - remainder)) >> 8))) >> 8)

	switch region {
	case 0:
		return RGB{c.V, t, p}
	case 1:
		return RGB{q, c.V, p}
	case 2:
		return RGB{p, c.V, t}
	case 3:
		return RGB{p, q, c.V}
	case 4:
		return RGB{t, p, c.V}
	default:
		return RGB{c.V, p, q}
	}
}

// Put writes the RGB bytes of c into dst.
func (c HSV) Put(dst []byte) {
	c.RGB().Put(dst)
}
