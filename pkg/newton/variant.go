package newton

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/willbeason/newton-fractal/pkg/cplx"
	"github.com/willbeason/newton-fractal/pkg/transforms"
)

var (
	ErrUnknownVariant  = errors.New("unknown variant")
	ErrUnknownColoring = errors.New("unknown coloring")
	ErrInvalidVariant  = errors.New("invalid variant")
)

// A Variant is everything that distinguishes one Newton fractal from another.
//
// Roots must list every attractor of the polynomial inside the rendered region; starting
// points drawn to an unlisted root run out their iteration budget.
type Variant struct {
	Name string

	Polynomial transforms.Polynomial

	// Roots are shared between copies and must not be modified.
	Roots []cplx.Complex

	MaxIterations int

	// Scale is the size of one pixel in the complex plane.
	Scale float64

	Coloring Coloring
}

// GoldenPair is 1.61803·z^6 − 1 drawn with HSV.
//
// Only the two real roots are listed. The four complex sixth roots are left out, and their
// basins draw as non-convergent.
var GoldenPair = Variant{
	Name:       "golden-pair",
	Polynomial: transforms.Binomial{N: 6, C: 1.61803, D: 9.708203, K: 1},
	Roots: []cplx.Complex{
		{Re: 0.9229299, Im: 0},
		{Re: -0.9229299, Im: 0},
	},
	MaxIterations: 2000,
	Scale:         0.01,
	Coloring:      HSVRamp{},
}

// GoldenStar is z^6 + z^3 − 1 drawn with HSL. Its roots are the cube roots of 1/φ and −φ.
var GoldenStar = Variant{
	Name:       "golden-star",
	Polynomial: transforms.Trinomial{N: 6, M: 3, K: 1},
	Roots: []cplx.Complex{
		{Re: 0.851799642079243, Im: 0},
		{Re: -0.4258998210396213, Im: 0.7376801289751168},
		{Re: -0.4258998210396213, Im: -0.7376801289751168},
		{Re: 0.5869924983526643, Im: 1.016700830808605},
		{Re: -1.1739849967053284, Im: 0},
		{Re: 0.5869924983526643, Im: -1.016700830808605},
	},
	MaxIterations: 200,
	Scale:         0.1,
	Coloring:      HSLRamp{},
}

// Variants lists the built-in variants.
func Variants() []Variant {
	return []Variant{GoldenPair, GoldenStar}
}

// Lookup returns the built-in variant with the given name.
func Lookup(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}

	return Variant{}, fmt.Errorf("%w %q, want one of %s", ErrUnknownVariant, name, strings.Join(Names(), ", "))
}

// Names of the built-in variants.
func Names() []string {
	var names []string
	for _, v := range Variants() {
		names = append(names, v.Name)
	}

	return names
}

// LookupColoring returns the named coloring for v. The empty name selects v's own coloring.
func LookupColoring(name string, v Variant) (Coloring, error) {
	switch name {
	case "":
		return v.Coloring, nil
	case HSVRamp{}.Name():
		return HSVRamp{}, nil
	case HSLRamp{}.Name():
		return HSLRamp{}, nil
	case Blend{}.Name():
		return Blend{Roots: len(v.Roots)}, nil
	}

	return nil, fmt.Errorf("%w %q, want hsv, hsl or blend", ErrUnknownColoring, name)
}

// WithScale returns a copy of v zoomed to scale.
func (v Variant) WithScale(scale float64) Variant {
	v.Scale = scale
	return v
}

// WithColoring returns a copy of v drawn with c.
func (v Variant) WithColoring(c Coloring) Variant {
	v.Coloring = c
	return v
}

// Validate reports whether v can be rendered.
func (v Variant) Validate() error {
	switch {
	case v.Polynomial == nil:
		return fmt.Errorf("%w %q: no polynomial", ErrInvalidVariant, v.Name)
	case v.Coloring == nil:
		return fmt.Errorf("%w %q: no coloring", ErrInvalidVariant, v.Name)
	case v.MaxIterations <= 0:
		return fmt.Errorf("%w %q: iteration budget %d", ErrInvalidVariant, v.Name, v.MaxIterations)
	case !(v.Scale > 0) || math.IsInf(v.Scale, 0):
		return fmt.Errorf("%w %q: pixel scale %g", ErrInvalidVariant, v.Name, v.Scale)
	}

	return nil
}
