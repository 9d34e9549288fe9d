package sde_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioforge/pvsde/ndarray"
	"github.com/helioforge/pvsde/sde"
)

// TestPAtV_Definition verifies P = V·I against an independent IAtV
// call across a sweep.
func TestPAtV_Definition(t *testing.T) {
	params := cellParams()
	vV := ndarray.FromSlice([]float64{0, 0.2, 0.4, 0.5})

	pW, iA, err := sde.PAtV(vV, params, nil)
	require.NoError(t, err)

	iAgain, err := sde.IAtV(vV, params, nil)
	require.NoError(t, err)
	assert.True(t, iA.Equal(iAgain))

	for k := 0; k < pW.Size(); k++ {
		assert.Equal(t, vV.At(k)*iA.At(k), pW.At(k))
	}

	// Power vanishes at short circuit.
	assert.Equal(t, 0.0, pW.At(0))
}

// TestMaxPower_ReferenceScenario verifies the precomputed maximum
// power point of the reference cell and the physical bound
// 0 < P_mp < I_ph·V_oc.
func TestMaxPower_ReferenceScenario(t *testing.T) {
	mp, err := sde.MaxPower(cellParams(), nil)
	require.NoError(t, err)

	assert.InDelta(t, refVmpV, mp.VmpV.At(0), 1e-7)
	assert.InDelta(t, refImpA, mp.ImpA.At(0), 1e-7)
	assert.InDelta(t, refPmpW, mp.PmpW.At(0), 1e-7)
	assert.InDelta(t, refVocV, mp.VocV.At(0), 1e-9)

	assert.Greater(t, mp.PmpW.At(0), 0.0)
	assert.Less(t, mp.PmpW.At(0), 6.0*mp.VocV.At(0), "P_mp must stay below I_ph·V_oc")
}

// TestMaxPower_IsActuallyMaximal samples the power curve around V_mp
// and checks no sample beats it.
func TestMaxPower_IsActuallyMaximal(t *testing.T) {
	params := moduleParams()

	mp, err := sde.MaxPower(params, nil)
	require.NoError(t, err)
	vmp, pmp := mp.VmpV.At(0), mp.PmpW.At(0)

	sweep := make([]float64, 41)
	for k := range sweep {
		sweep[k] = mp.VocV.At(0) * float64(k) / float64(len(sweep)-1)
	}
	pW, _, err := sde.PAtV(ndarray.FromSlice(sweep), params, nil)
	require.NoError(t, err)

	for k := 0; k < pW.Size(); k++ {
		assert.LessOrEqual(t, pW.At(k), pmp+1e-9, "sample at V=%g beats the reported maximum", sweep[k])
	}

	// And the knee sits strictly inside (0, V_oc).
	assert.Greater(t, vmp, 0.0)
	assert.Less(t, vmp, mp.VocV.At(0))
}

// TestMaxPower_Batch verifies the search over a parameter batch and
// that results match per-element scalar searches exactly.
func TestMaxPower_Batch(t *testing.T) {
	batch := sde.ModelParameters{
		Ns:    ndarray.FromValues(1, 72),
		TdegC: ndarray.Scalar(25),
		IphA:  ndarray.Scalar(6.0),
		IrsA:  ndarray.FromValues(1e-9, 1e-7),
		N:     ndarray.FromValues(1.0, 1.2),
		RsOhm: ndarray.FromValues(0.05, 0.5),
		GpS:   ndarray.Scalar(0.001),
	}

	mp, err := sde.MaxPower(batch, nil)
	require.NoError(t, err)
	require.True(t, mp.PmpW.Shape().Equal(ndarray.Shape{2}))

	cell, err := sde.MaxPower(cellParams(), nil)
	require.NoError(t, err)
	module, err := sde.MaxPower(moduleParams(), nil)
	require.NoError(t, err)

	assert.Equal(t, cell.PmpW.At(0), mp.PmpW.At(0))
	assert.Equal(t, module.PmpW.At(0), mp.PmpW.At(1))
	assert.Equal(t, cell.VmpV.At(0), mp.VmpV.At(0))
	assert.Equal(t, module.VmpV.At(0), mp.VmpV.At(1))
}

// TestMaxPower_ConvergenceFailure verifies the all-or-nothing
// contract on the nested search.
func TestMaxPower_ConvergenceFailure(t *testing.T) {
	params := cellParams()
	params.RsOhm = ndarray.FromValues(0.05, -1.0)

	_, err := sde.MaxPower(params, nil)
	assert.ErrorIs(t, err, sde.ErrConvergence)
}
