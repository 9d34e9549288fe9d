package ndarray

import "errors"

var (
	// ErrShapeMismatch indicates operand shapes are not broadcast-compatible.
	ErrShapeMismatch = errors.New("ndarray: shapes are not broadcast-compatible")
	// ErrBadShape indicates a shape with a zero or negative dimension.
	ErrBadShape = errors.New("ndarray: shape dimensions must be positive")
	// ErrDataLength indicates explicit data whose length does not equal the shape size.
	ErrDataLength = errors.New("ndarray: data length does not match shape size")
)

// Shape describes the extent of each dimension of an Array.
// The empty Shape is rank-0 and describes a scalar.
type Shape []int

// Array is a dense, immutable N-dimensional array of float64 values
// stored in row-major order. The zero value is an empty rank-0 array;
// use the package constructors to build populated arrays.
type Array struct {
	shape Shape
	data  []float64
}
