package ndarray

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number constrains the generic constructors to builtin numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Scalar wraps a single value as a rank-0 Array.
func Scalar(v float64) Array {
	return Array{shape: Shape{}, data: []float64{v}}
}

// FromSlice copies vs into a rank-1 Array of shape (len(vs)).
func FromSlice(vs []float64) Array {
	data := make([]float64, len(vs))
	copy(data, vs)

	return Array{shape: Shape{len(vs)}, data: data}
}

// FromValues builds a rank-1 Array from any builtin numeric values.
func FromValues[T Number](vs ...T) Array {
	data := make([]float64, len(vs))
	for i, v := range vs {
		data[i] = float64(v)
	}

	return Array{shape: Shape{len(vs)}, data: data}
}

// New builds an Array of the given shape from explicit row-major data.
// The data slice is copied. Returns ErrBadShape for non-positive
// dimensions and ErrDataLength when len(data) != shape.Size().
func New(shape Shape, data []float64) (Array, error) {
	if err := shape.validate(); err != nil {
		return Array{}, err
	}
	if len(data) != shape.Size() {
		return Array{}, fmt.Errorf("%w: %d values for shape %s", ErrDataLength, len(data), shape)
	}
	out := make([]float64, len(data))
	copy(out, data)

	return Array{shape: shape.Clone(), data: out}, nil
}

// Full builds an Array of the given shape with every element set to v.
func Full(shape Shape, v float64) (Array, error) {
	if err := shape.validate(); err != nil {
		return Array{}, err
	}
	data := make([]float64, shape.Size())
	for i := range data {
		data[i] = v
	}

	return Array{shape: shape.Clone(), data: data}, nil
}

// Zeros builds an all-zero Array of the given shape.
func Zeros(shape Shape) (Array, error) {
	return Full(shape, 0)
}

// Shape returns a copy of the array's shape.
func (a Array) Shape() Shape { return a.shape.Clone() }

// Size returns the number of elements.
func (a Array) Size() int { return len(a.data) }

// IsScalar reports whether the array is rank-0.
func (a Array) IsScalar() bool { return len(a.shape) == 0 }

// At returns the element at row-major flat index i.
func (a Array) At(i int) float64 { return a.data[i] }

// Data returns a copy of the row-major element data.
func (a Array) Data() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// Equal reports whether a and b have identical shapes and bitwise
// identical element values.
func (a Array) Equal(b Array) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
