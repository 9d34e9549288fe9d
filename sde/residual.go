package sde

import (
	"github.com/helioforge/pvsde/ndarray"
	"github.com/helioforge/pvsde/physconst"
	"github.com/helioforge/pvsde/units"
)

// ScaledThermalVoltage computes the thermal voltage k_B·T_K/q scaled
// by the number of series-connected cells [V]. Inputs broadcast.
func ScaledThermalVoltage(ns, tDegC ndarray.Array) (ndarray.Array, error) {
	return ndarray.Zip(func(n, t float64) float64 {
		return n * physconst.KBJPerK * units.CelsiusToKelvin(t) / physconst.QC
	}, ns, tDegC)
}

// ISumDiodeAnodeAtIV computes the sum of currents at the diode's
// anode node of the single-diode equivalent circuit:
//
//	I_sum = I_ph − I_rs·(exp(V_d/n_mod) − 1) − G_p·V_d − I
//
// with V_d = V + I·R_s. The result is zero exactly at a physically
// consistent operating point; solving I_sum = 0 for I or V is what
// IAtV and VAtI do. All inputs broadcast to one common shape, which
// the result carries.
func ISumDiodeAnodeAtIV(ivData IVData, params ModelParameters) (ndarray.Array, error) {
	xs, elems, err := broadcastParams(params, ivData.IA, ivData.VV)
	if err != nil {
		return ndarray.Array{}, err
	}
	iA, vV := xs[0], xs[1]

	out := make([]float64, iA.Size())
	for k := range out {
		out[k] = elems[k].iSumAtIV(iA.At(k), vV.At(k))
	}

	return ndarray.New(iA.Shape(), out)
}
