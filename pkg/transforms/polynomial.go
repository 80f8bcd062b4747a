package transforms

import "github.com/willbeason/newton-fractal/pkg/cplx"

// Binomial is C·z^N − K.
//
// The derivative coefficient D is stored rather than derived as N·C so that rounded
// coefficients can be used as given.
type Binomial struct {
	N int
	C float64
	D float64
	K float64
}

func (b Binomial) Eval(z cplx.Complex) (cplx.Complex, cplx.Complex) {
	p := z.PowN(b.N).Mul(cplx.Real(b.C)).Sub(cplx.Real(b.K))
	dp := z.PowN(b.N - 1).Mul(cplx.Real(b.D))

	return p, dp
}

// Trinomial is z^N + z^M − K, with z^M taken through the polar complex power.
type Trinomial struct {
	N int
	M int
	K float64
}

func (t Trinomial) Eval(z cplx.Complex) (cplx.Complex, cplx.Complex) {
	p := z.PowN(t.N).Add(z.Pow(cplx.Real(float64(t.M)))).Sub(cplx.Real(t.K))

	dp := z.PowN(t.N - 1).Mul(cplx.Real(float64(t.N))).
		Add(z.PowN(t.M - 1).Mul(cplx.Real(float64(t.M))))

	return p, dp
}

var (
	_ Polynomial = Binomial{}
	_ Polynomial = Trinomial{}
)
