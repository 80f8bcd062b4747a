package transforms

import "github.com/willbeason/newton-fractal/pkg/cplx"

// A Transform iterates a passed point.
type Transform interface {
	Next(cplx.Complex) cplx.Complex
}

// A Polynomial evaluates itself and its derivative at a point.
type Polynomial interface {
	Eval(z cplx.Complex) (p, dp cplx.Complex)
}

// Newton is a relaxed Newton step for a polynomial. A scales the step: 1.0 is the classical
// method, smaller values under-relax and larger values over-relax.
type Newton struct {
	Polynomial
	A float64
}

func (n Newton) Next(z cplx.Complex) cplx.Complex {
	p, dp := n.Eval(z)

	return z.Sub(p.Div(dp).Mul(cplx.Real(n.A)))
}

var _ Transform = Newton{}
