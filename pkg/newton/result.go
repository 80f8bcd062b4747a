package newton

import "fmt"

// Result is the outcome of iterating one starting point.
//
// Iteration and Root are meaningful only when Converged is set.
type Result struct {
	Converged bool
	Iteration int
	Root      int
}

// Converged reports convergence to roots[root] after iteration steps.
func Converged(iteration, root int) Result {
	return Result{Converged: true, Iteration: iteration, Root: root}
}

// DidNotConverge reports an exhausted iteration budget.
func DidNotConverge() Result {
	return Result{}
}

// Legacy flattens r into an (iteration, root) pair, mapping non-convergence to (0, 0).
// This is indistinguishable from converging to root 0 on the first step, which is how the
// built-in colorings have always drawn such points.
func (r Result) Legacy() (iteration, root int) {
	if !r.Converged {
		return 0, 0
	}

	return r.Iteration, r.Root
}

func (r Result) String() string {
	if !r.Converged {
		return "did not converge"
	}

	return fmt.Sprintf("root %d after %d iterations", r.Root, r.Iteration)
}
