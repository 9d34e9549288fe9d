package rootfind

import (
	"fmt"
	"math"
)

// Halley finds a root of f starting from x0 using Halley's method:
//
//	x⁺ = x − (f/df) / (1 − (f·d2f)/(2·df²))
//
// When the second-order adjustment (f·d2f)/(2·df²) has magnitude ≥ 1
// the denominator is untrustworthy and the step falls back to plain
// Newton. Iteration stops at an exact zero of f, or when
// |x⁺ − x| ≤ AbsTol + RelTol·|x⁺|.
//
// Returns ErrZeroDerivative if df vanishes at an iterate and
// ErrNoConvergence if opts.MaxIter steps do not meet the criterion.
func Halley(f Func, x0 float64, opts Options) (float64, error) {
	o := opts.normalized()

	x := x0
	for iter := 0; iter < o.MaxIter; iter++ {
		fx, dfx, d2fx := f(x)
		if fx == 0 {
			return x, nil
		}
		if dfx == 0 {
			return 0, fmt.Errorf("%w at x=%g (iteration %d)", ErrZeroDerivative, x, iter)
		}

		step := fx / dfx
		if d2fx != 0 {
			// Halley correction; keep the Newton step when the
			// adjustment would flip or explode the denominator.
			adj := step * d2fx / dfx / 2
			if math.Abs(adj) < 1 {
				step /= 1 - adj
			}
		}

		next := x - step
		if math.Abs(next-x) <= o.AbsTol+o.RelTol*math.Abs(next) {
			return next, nil
		}
		x = next
	}

	return 0, fmt.Errorf("%w after %d iterations (last x=%g)", ErrNoConvergence, o.MaxIter, x)
}

// Newton finds a root of f starting from x0 using Newton's method:
//
//	x⁺ = x − f/df
//
// Same convergence criterion and failure modes as Halley.
func Newton(f NewtonFunc, x0 float64, opts Options) (float64, error) {
	o := opts.normalized()

	x := x0
	for iter := 0; iter < o.MaxIter; iter++ {
		fx, dfx := f(x)
		if fx == 0 {
			return x, nil
		}
		if dfx == 0 {
			return 0, fmt.Errorf("%w at x=%g (iteration %d)", ErrZeroDerivative, x, iter)
		}

		next := x - fx/dfx
		if math.Abs(next-x) <= o.AbsTol+o.RelTol*math.Abs(next) {
			return next, nil
		}
		x = next
	}

	return 0, fmt.Errorf("%w after %d iterations (last x=%g)", ErrNoConvergence, o.MaxIter, x)
}
