// Package rootfind implements derivative-enhanced scalar root finding:
// Newton's method (2nd order) and Halley's method (3rd order), both
// driven entirely by closed-form derivatives supplied by the caller.
//
// 🚀 Why a dedicated package?
//
//	The photovoltaic single-diode equation is implicit: terminal
//	current and voltage are related through an exponential that has no
//	closed-form inverse, so every evaluation is a root-finding
//	problem. The model supplies exact first and second derivatives,
//	which makes Halley's method — cubic local convergence at the cost
//	of one extra derivative evaluation — the natural iteration. No
//	numeric differentiation takes place anywhere.
//
// ✨ Key features:
//   - Halley iteration with the correction factor clamped back to the
//     plain Newton step when the second-order adjustment is unstable
//   - Newton iteration for targets whose second derivative is not
//     available (e.g. maximizing power via dP/dV = 0)
//   - strict convergence reporting: a result is returned only when the
//     step criterion is met within the iteration budget, otherwise the
//     call fails with ErrNoConvergence (or ErrZeroDerivative when the
//     iteration cannot proceed at all)
//   - fixed, documented defaults: AbsTol 1.48e-8, RelTol 0, MaxIter 50
//
// ⚙️ Usage:
//
//	import "github.com/helioforge/pvsde/rootfind"
//
//	root, err := rootfind.Halley(func(x float64) (f, df, d2f float64) {
//		return x*x - 2, 2 * x, 2
//	}, 1.0, rootfind.DefaultOptions())
//	// root ≈ 1.41421356
//
// Convergence criterion: |x⁺ − x| ≤ AbsTol + RelTol·|x⁺|, or an exact
// zero of f. NaN propagation is handled by the criterion itself: once
// the iterate is NaN the step comparison can never hold, so the call
// ends in ErrNoConvergence after MaxIter steps.
//
// Errors:
//   - ErrNoConvergence  — iteration budget exhausted before the step
//     criterion was met.
//   - ErrZeroDerivative — first derivative vanished at an iterate.
package rootfind
