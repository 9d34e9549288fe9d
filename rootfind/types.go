package rootfind

import "errors"

var (
	// ErrNoConvergence indicates the iteration budget was exhausted
	// before the step criterion was met.
	ErrNoConvergence = errors.New("rootfind: failed to converge within iteration budget")
	// ErrZeroDerivative indicates the first derivative vanished at an
	// iterate, so no further step could be taken.
	ErrZeroDerivative = errors.New("rootfind: derivative was zero")
)

// Solver defaults. Documented once here; both solvers fall back to
// these for unset Options fields.
const (
	// DefaultAbsTol is the default absolute step tolerance.
	DefaultAbsTol = 1.48e-8
	// DefaultRelTol is the default relative step tolerance.
	DefaultRelTol = 0.0
	// DefaultMaxIter is the default iteration budget.
	DefaultMaxIter = 50
)

// Func evaluates the target function together with its first and
// second derivatives at x, for Halley iteration.
type Func func(x float64) (f, df, d2f float64)

// NewtonFunc evaluates the target function and its first derivative
// at x, for Newton iteration.
type NewtonFunc func(x float64) (f, df float64)

// Options configures an iteration.
//
// Fields:
//   - AbsTol  — absolute step tolerance; values ≤ 0 select DefaultAbsTol.
//   - RelTol  — relative step tolerance; values < 0 select DefaultRelTol.
//   - MaxIter — iteration budget; values ≤ 0 select DefaultMaxIter.
//
// A step x → x⁺ converges when |x⁺ − x| ≤ AbsTol + RelTol·|x⁺|.
type Options struct {
	AbsTol  float64
	RelTol  float64
	MaxIter int
}

// DefaultOptions returns the documented solver defaults.
func DefaultOptions() Options {
	return Options{AbsTol: DefaultAbsTol, RelTol: DefaultRelTol, MaxIter: DefaultMaxIter}
}

// normalized fills unset fields with the package defaults.
func (o Options) normalized() Options {
	if o.AbsTol <= 0 {
		o.AbsTol = DefaultAbsTol
	}
	if o.RelTol < 0 {
		o.RelTol = DefaultRelTol
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultMaxIter
	}

	return o
}
