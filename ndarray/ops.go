package ndarray

import "fmt"

// BroadcastTo materializes a at the target shape, repeating elements
// along broadcast dimensions. Returns ErrShapeMismatch when a's shape
// does not broadcast to target.
func (a Array) BroadcastTo(target Shape) (Array, error) {
	common, err := BroadcastShapes(a.shape, target)
	if err != nil {
		return Array{}, err
	}
	if !common.Equal(target) {
		return Array{}, fmt.Errorf("%w: %s does not broadcast to %s", ErrShapeMismatch, a.shape, target)
	}

	return a.expandTo(target), nil
}

// Broadcast reconciles every given array to their common shape and
// returns the materialized results in input order.
func Broadcast(arrs ...Array) ([]Array, error) {
	shapes := make([]Shape, len(arrs))
	for i, a := range arrs {
		shapes[i] = a.shape
	}
	common, err := CommonShape(shapes...)
	if err != nil {
		return nil, err
	}
	out := make([]Array, len(arrs))
	for i, a := range arrs {
		out[i] = a.expandTo(common)
	}

	return out, nil
}

// Apply returns a new Array with f applied to every element of a.
func Apply(f func(float64) float64, a Array) Array {
	data := make([]float64, len(a.data))
	for i, v := range a.data {
		data[i] = f(v)
	}

	return Array{shape: a.shape.Clone(), data: data}
}

// Zip broadcasts x and y to their common shape and combines them
// element-wise with f.
func Zip(f func(x, y float64) float64, x, y Array) (Array, error) {
	bc, err := Broadcast(x, y)
	if err != nil {
		return Array{}, err
	}
	xb, yb := bc[0], bc[1]
	data := make([]float64, len(xb.data))
	for i := range data {
		data[i] = f(xb.data[i], yb.data[i])
	}

	return Array{shape: xb.shape.Clone(), data: data}, nil
}

// expandTo repeats a's elements to fill target. The caller must have
// verified broadcast compatibility; target is at least as large as a
// in every dimension.
func (a Array) expandTo(target Shape) Array {
	if a.shape.Equal(target) {
		return a
	}
	out := make([]float64, target.Size())
	if len(a.data) == 1 {
		for i := range out {
			out[i] = a.data[0]
		}

		return Array{shape: target.Clone(), data: out}
	}

	offset := len(target) - len(a.shape)
	srcStrides := strides(a.shape)
	idx := make([]int, len(target))
	for flat := range out {
		src := 0
		for d, n := range idx {
			if d < offset {
				continue
			}
			if sd := d - offset; a.shape[sd] != 1 {
				src += n * srcStrides[sd]
			}
		}
		out[flat] = a.data[src]

		// Odometer increment of the multi-index.
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < target[d] {
				break
			}
			idx[d] = 0
		}
	}

	return Array{shape: target.Clone(), data: out}
}
