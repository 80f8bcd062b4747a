package server

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/willbeason/newton-fractal/pkg/newton"
	"github.com/willbeason/newton-fractal/pkg/raster"
)

var ErrTooLarge = errors.New("image too large")

// Request describes one render. Zero values select defaults.
type Request struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	A        *float64 `json:"a,omitempty"`
	Variant  string   `json:"variant,omitempty"`
	Coloring string   `json:"coloring,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
}

const (
	defaultSize    = 512
	defaultDamping = 1.0
)

// parseQuery reads a Request from URL query parameters.
func parseQuery(q url.Values) (Request, error) {
	var req Request
	var err error

	if s := q.Get("width"); s != "" {
		if req.Width, err = strconv.Atoi(s); err != nil {
			return req, fmt.Errorf("width: %w", err)
		}
	}
	if s := q.Get("height"); s != "" {
		if req.Height, err = strconv.Atoi(s); err != nil {
			return req, fmt.Errorf("height: %w", err)
		}
	}
	if s := q.Get("a"); s != "" {
		a, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return req, fmt.Errorf("a: %w", err)
		}
		req.A = &a
	}
	if s := q.Get("scale"); s != "" {
		if req.Scale, err = strconv.ParseFloat(s, 64); err != nil {
			return req, fmt.Errorf("scale: %w", err)
		}
	}
	req.Variant = q.Get("variant")
	req.Coloring = q.Get("coloring")

	return req, nil
}

// resolve fills in defaults and checks the request against maxPixels.
func (r Request) resolve(maxPixels, workers int) (raster.Params, newton.Variant, error) {
	p := raster.Params{
		Width:   r.Width,
		Height:  r.Height,
		A:       defaultDamping,
		Workers: workers,
	}
	if p.Width == 0 {
		p.Width = defaultSize
	}
	if p.Height == 0 {
		p.Height = defaultSize
	}
	if r.A != nil {
		p.A = *r.A
	}
	if p.Width < 0 || p.Height < 0 {
		return p, newton.Variant{}, fmt.Errorf("%w: %dx%d", raster.ErrDimensions, p.Width, p.Height)
	}
	if p.Width > maxPixels/p.Height {
		return p, newton.Variant{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, p.Width, p.Height, maxPixels)
	}

	name := r.Variant
	if name == "" {
		name = newton.GoldenPair.Name
	}
	v, err := newton.Lookup(name)
	if err != nil {
		return p, v, err
	}

	coloring, err := newton.LookupColoring(r.Coloring, v)
	if err != nil {
		return p, v, err
	}
	v = v.WithColoring(coloring)

	if r.Scale != 0 {
		v = v.WithScale(r.Scale)
	}

	return p, v, nil
}
