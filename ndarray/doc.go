// Package ndarray provides N-dimensional float64 arrays with
// numpy-style broadcasting, the numeric foundation for vectorized
// photovoltaic model evaluation.
//
// 🚀 What is ndarray?
//
//	A small, dependency-light container for dense numeric data of any
//	rank, designed around one rule: every operation between arrays
//	first reconciles their shapes through a single broadcast relation,
//	then proceeds element-wise. It is used throughout pvsde to let a
//	caller mix scalars, vectors, and higher-rank parameter grids in
//	one call without writing a loop.
//
// ✨ Key features:
//   - rank-0 scalars through arbitrary-rank dense arrays
//   - one broadcast rule, applied uniformly at every API boundary:
//     trailing dimensions must be equal, or one of them must be 1,
//     or one operand may be missing the dimension entirely
//   - value semantics: constructors copy their inputs, accessors never
//     expose interior mutability
//   - element-wise combinators (Apply, Zip) for building derived arrays
//
// ⚙️ Usage:
//
//	import "github.com/helioforge/pvsde/ndarray"
//
//	v := ndarray.FromSlice([]float64{0.0, 0.25, 0.5})  // shape (3)
//	t := ndarray.Scalar(25.0)                          // rank-0
//	sum, err := ndarray.Zip(func(a, b float64) float64 { return a + b }, v, t)
//	// sum has shape (3)
//
// Broadcasting mirrors the numpy convention: shapes are compared from
// the trailing dimension backwards, so (4,1) and (3) broadcast to
// (4,3), while (4,2) and (3) do not broadcast and yield
// ErrShapeMismatch.
//
// Errors:
//   - ErrShapeMismatch — operand shapes are not broadcast-compatible.
//   - ErrBadShape      — a shape contains a non-positive dimension.
//   - ErrDataLength    — explicit data does not fill the given shape.
package ndarray
