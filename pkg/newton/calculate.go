package newton

import (
	"github.com/willbeason/newton-fractal/pkg/cplx"
	"github.com/willbeason/newton-fractal/pkg/transforms"
)

// BasinThreshold is the squared distance to a root below which an iterate counts as converged.
const BasinThreshold = 0.05

// Calculate runs the damped Newton iteration of v from z and classifies where it ends up.
//
// Roots are checked in order and the first one within BasinThreshold wins. Non-finite
// iterates never compare below the threshold, so they run out the budget.
func Calculate(v Variant, z cplx.Complex, a float64) Result {
	step := transforms.Newton{Polynomial: v.Polynomial, A: a}

	for i := 0; i < v.MaxIterations; i++ {
		next := step.Next(z)

		for r, root := range v.Roots {
			if next.Sub(root).AbsSq() < BasinThreshold {
				return Converged(i, r)
			}
		}

		z = next
	}

	return DidNotConverge()
}
