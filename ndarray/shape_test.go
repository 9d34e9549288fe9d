package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helioforge/pvsde/ndarray"
)

// TestBroadcastShapes_ScalarFreely verifies that the rank-0 shape
// broadcasts against anything.
func TestBroadcastShapes_ScalarFreely(t *testing.T) {
	out, err := ndarray.BroadcastShapes(ndarray.Shape{}, ndarray.Shape{4, 3})
	assert.NoError(t, err)
	assert.True(t, out.Equal(ndarray.Shape{4, 3}), "scalar must adopt the other shape")

	out, err = ndarray.BroadcastShapes(ndarray.Shape{2}, ndarray.Shape{})
	assert.NoError(t, err)
	assert.True(t, out.Equal(ndarray.Shape{2}))
}

// TestBroadcastShapes_OneExtendable verifies the size-1 dimension rule
// and rank extension from the trailing dimension.
func TestBroadcastShapes_OneExtendable(t *testing.T) {
	out, err := ndarray.BroadcastShapes(ndarray.Shape{4, 1}, ndarray.Shape{3})
	assert.NoError(t, err)
	assert.True(t, out.Equal(ndarray.Shape{4, 3}), "(4,1) with (3) must give (4,3)")

	out, err = ndarray.BroadcastShapes(ndarray.Shape{1, 5}, ndarray.Shape{6, 1})
	assert.NoError(t, err)
	assert.True(t, out.Equal(ndarray.Shape{6, 5}))
}

// TestBroadcastShapes_Mismatch verifies that incompatible trailing
// dimensions yield ErrShapeMismatch.
func TestBroadcastShapes_Mismatch(t *testing.T) {
	_, err := ndarray.BroadcastShapes(ndarray.Shape{4, 2}, ndarray.Shape{3})
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

// TestCommonShape_Fold verifies folding across more than two shapes.
func TestCommonShape_Fold(t *testing.T) {
	out, err := ndarray.CommonShape(ndarray.Shape{}, ndarray.Shape{3}, ndarray.Shape{2, 1})
	assert.NoError(t, err)
	assert.True(t, out.Equal(ndarray.Shape{2, 3}))

	_, err = ndarray.CommonShape(ndarray.Shape{3}, ndarray.Shape{2, 2})
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

// TestShape_SizeAndString covers the scalar conventions.
func TestShape_SizeAndString(t *testing.T) {
	assert.Equal(t, 1, ndarray.Shape{}.Size(), "rank-0 shape has one element")
	assert.Equal(t, 6, ndarray.Shape{2, 3}.Size())
	assert.Equal(t, "()", ndarray.Shape{}.String())
	assert.Equal(t, "(2,3)", ndarray.Shape{2, 3}.String())
}
