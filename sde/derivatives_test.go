package sde_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioforge/pvsde/ndarray"
	"github.com/helioforge/pvsde/sde"
)

// TestDIDVAtV_Monotonicity is the monotonicity property: terminal
// current is strictly non-increasing in voltage for physically valid
// parameters, so dI/dV ≤ 0 across the whole sweep.
func TestDIDVAtV_Monotonicity(t *testing.T) {
	for name, params := range map[string]sde.ModelParameters{"cell": cellParams(), "module": moduleParams()} {
		vocV, err := sde.VAtI(ndarray.Scalar(0), params, nil)
		require.NoError(t, err)

		// 25 voltages from short circuit to slightly past open circuit.
		sweep := make([]float64, 25)
		for k := range sweep {
			sweep[k] = vocV.At(0) * 1.05 * float64(k) / float64(len(sweep)-1)
		}

		dIdVS, iA, err := sde.DIDVAtV(ndarray.FromSlice(sweep), params, nil)
		require.NoError(t, err)
		require.Equal(t, len(sweep), dIdVS.Size())
		for k := 0; k < dIdVS.Size(); k++ {
			assert.Negative(t, dIdVS.At(k), "%s: dI/dV at V=%g", name, sweep[k])
		}

		// The current itself must decrease along the sweep.
		for k := 1; k < iA.Size(); k++ {
			assert.Less(t, iA.At(k), iA.At(k-1), "%s: I must decrease with V", name)
		}
	}
}

// TestDerivatives_ReciprocalConsistency verifies that dI/dV and dV/dI
// are reciprocal at matched operating points — the implicit function
// theorem applied in both directions must agree.
func TestDerivatives_ReciprocalConsistency(t *testing.T) {
	params := cellParams()
	for _, v := range []float64{0, 0.3, 0.5} {
		dIdVS, iA, err := sde.DIDVAtV(ndarray.Scalar(v), params, nil)
		require.NoError(t, err)

		dVdIOhm, _, err := sde.DVDIAtI(iA, params, nil)
		require.NoError(t, err)

		assert.InDelta(t, 1.0, dIdVS.At(0)*dVdIOhm.At(0), 1e-9,
			"dI/dV · dV/dI at V=%g", v)
	}
}

// TestD2IDV2AtV_Consistency verifies the second-derivative bundle:
// the dI/dV it returns matches DIDVAtV, and d²I/dV² is strictly
// negative (the I-V curve is concave toward open circuit).
func TestD2IDV2AtV_Consistency(t *testing.T) {
	params := cellParams()
	vV := ndarray.FromSlice([]float64{0, 0.2, 0.4, 0.5, refVocV})

	d2, d1Bundled, iABundled, err := sde.D2IDV2AtV(vV, params, nil)
	require.NoError(t, err)

	d1, iA, err := sde.DIDVAtV(vV, params, nil)
	require.NoError(t, err)

	assert.True(t, d1.Equal(d1Bundled), "both entry points must agree on dI/dV")
	assert.True(t, iA.Equal(iABundled), "both entry points must agree on I")
	for k := 0; k < d2.Size(); k++ {
		assert.Negative(t, d2.At(k), "d²I/dV² at V=%g", vV.At(k))
	}
}

// TestDIDVAtV_ErrorPropagation verifies a failing inner solve fails
// the derivative call too.
func TestDIDVAtV_ErrorPropagation(t *testing.T) {
	params := cellParams()
	params.RsOhm = ndarray.Scalar(-1.0)

	_, _, err := sde.DIDVAtV(ndarray.Scalar(0.6), params, nil)
	assert.ErrorIs(t, err, sde.ErrConvergence)

	_, _, err = sde.DVDIAtI(ndarray.Scalar(7.0), params, nil)
	assert.ErrorIs(t, err, sde.ErrDomain)
}
