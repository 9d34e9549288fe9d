package ndarray

import (
	"fmt"
	"strings"
)

// Size returns the number of elements a Shape describes.
// The rank-0 Shape has size 1 (a scalar).
func (s Shape) Size() int {
	size := 1
	for _, dim := range s {
		size *= dim
	}

	return size
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int { return len(s) }

// Equal reports whether s and t have identical rank and extents.
func (s Shape) Equal(t Shape) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// String renders the shape as "(d0,d1,...)"; the scalar shape is "()".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprintf("%d", dim)
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// validate rejects non-positive dimensions.
func (s Shape) validate() error {
	for _, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: %s", ErrBadShape, s)
		}
	}

	return nil
}

// BroadcastShapes reconciles two shapes under the broadcast rule:
// compare extents from the trailing dimension backwards; at each
// position the extents must be equal, or one of them must be 1, or
// one operand may lack the dimension. The result takes the larger
// extent at every position.
//
// Returns ErrShapeMismatch when the shapes cannot be reconciled.
func BroadcastShapes(a, b Shape) (Shape, error) {
	rank := len(a)
	if len(b) > rank {
		rank = len(b)
	}
	out := make(Shape, rank)
	for i := 1; i <= rank; i++ {
		da, db := 1, 1
		if i <= len(a) {
			da = a[len(a)-i]
		}
		if i <= len(b) {
			db = b[len(b)-i]
		}
		switch {
		case da == db:
			out[rank-i] = da
		case da == 1:
			out[rank-i] = db
		case db == 1:
			out[rank-i] = da
		default:
			return nil, fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, a, b)
		}
	}

	return out, nil
}

// CommonShape folds BroadcastShapes over every given shape, yielding
// the single shape all of them broadcast to.
func CommonShape(shapes ...Shape) (Shape, error) {
	out := Shape{}
	for _, s := range shapes {
		var err error
		if out, err = BroadcastShapes(out, s); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// strides returns the row-major stride of each dimension of s.
func strides(s Shape) []int {
	st := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= s[i]
	}

	return st
}
