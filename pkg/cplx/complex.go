package cplx

import (
	"fmt"
	"math"
)

// Complex is a point in the complex plane.
//
// Division and exponentiation are written out by hand rather than delegated to complex128 so
// that rendered images are reproducible bit for bit: the runtime's complex division scales its
// operands and rounds differently.
type Complex struct {
	Re, Im float64
}

// Real lifts r onto the real axis.
func Real(r float64) Complex {
	return Complex{Re: r}
}

func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

func (z Complex) Sub(w Complex) Complex {
	return Complex{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Div returns z / w. Dividing by zero is not guarded and yields infinities or NaN.
func (z Complex) Div(w Complex) Complex {
	d := 1.0 / (w.Im*w.Im + w.Re*w.Re)

	return Complex{
		Re: d * (z.Re*w.Re + z.Im*w.Im),
		Im: d * (z.Im*w.Re - z.Re*w.Im),
	}
}

// PowN raises z to the n-th power by n-1 successive multiplications.
// For n < 2 z is returned unchanged.
func (z Complex) PowN(n int) Complex {
	result := z
	for i := 1; i < n; i++ {
		result = result.Mul(z)
	}

	return result
}

// Pow raises z to the complex power w through polar form.
//
// The log-modulus is taken as ln(Re/cos(arg)) rather than ln|z|. The two agree except near
// the imaginary axis, where cos(arg) vanishes: the log-modulus becomes -Inf and the result
// NaN.
func (z Complex) Pow(w Complex) Complex {
	arg := math.Atan2(z.Im, z.Re)
	loh := math.Log(z.Re / math.Cos(arg))

	c := w.Im*loh + w.Re*arg
	d := math.Exp(w.Re*loh - w.Im*arg)

	return Complex{Re: d * math.Cos(c), Im: d * math.Sin(c)}
}

// AbsSq is the squared modulus. Compare it against squared thresholds to avoid the square root.
func (z Complex) AbsSq() float64 {
	return z.Re*z.Re + z.Im*z.Im
}

func (z Complex) String() string {
	return fmt.Sprintf("(%g%+gi)", z.Re, z.Im)
}
