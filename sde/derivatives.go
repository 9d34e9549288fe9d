package sde

import (
	"github.com/helioforge/pvsde/ndarray"
	"github.com/helioforge/pvsde/rootfind"
)

// DIDVAtV computes the 1st derivative of terminal current with
// respect to terminal voltage at the specified terminal voltage,
// together with the terminal current itself.
//
// The current is root-found via IAtV; the derivative then follows in
// closed form from the implicit function theorem applied to the anode
// current balance, so the root-found current is never differentiated
// numerically. Needed for R_sc, R_oc, and the maximum-power search.
func DIDVAtV(vV ndarray.Array, params ModelParameters, opts *rootfind.Options) (dIdVS, iA ndarray.Array, err error) {
	iA, err = IAtV(vV, params, opts)
	if err != nil {
		return ndarray.Array{}, ndarray.Array{}, err
	}

	xs, elems, err := broadcastParams(params, vV)
	if err != nil {
		return ndarray.Array{}, ndarray.Array{}, err
	}
	v := xs[0]

	out := make([]float64, v.Size())
	for k := range out {
		out[k] = elems[k].slopeAtIV(iA.At(k), v.At(k))
	}
	dIdVS, err = ndarray.New(v.Shape(), out)

	return dIdVS, iA, err
}

// D2IDV2AtV extends DIDVAtV to the 2nd derivative, needed to locate
// extrema of the power curve. Returns d²I/dV², dI/dV, and I.
func D2IDV2AtV(vV ndarray.Array, params ModelParameters, opts *rootfind.Options) (d2IdV2SPerV, dIdVS, iA ndarray.Array, err error) {
	iA, err = IAtV(vV, params, opts)
	if err != nil {
		return ndarray.Array{}, ndarray.Array{}, ndarray.Array{}, err
	}

	xs, elems, err := broadcastParams(params, vV)
	if err != nil {
		return ndarray.Array{}, ndarray.Array{}, ndarray.Array{}, err
	}
	v := xs[0]

	d2 := make([]float64, v.Size())
	d1 := make([]float64, v.Size())
	for k := range d2 {
		d2[k], d1[k] = elems[k].curvatureAtIV(iA.At(k), v.At(k))
	}
	if d2IdV2SPerV, err = ndarray.New(v.Shape(), d2); err != nil {
		return ndarray.Array{}, ndarray.Array{}, ndarray.Array{}, err
	}
	dIdVS, err = ndarray.New(v.Shape(), d1)

	return d2IdV2SPerV, dIdVS, iA, err
}

// DVDIAtI computes the 1st derivative of terminal voltage with
// respect to terminal current at the specified terminal current,
// together with the terminal voltage itself. Needed, e.g., for
// solving the differential equation of capacitor charging against a
// PV source.
func DVDIAtI(iA ndarray.Array, params ModelParameters, opts *rootfind.Options) (dVdIOhm, vV ndarray.Array, err error) {
	vV, err = VAtI(iA, params, opts)
	if err != nil {
		return ndarray.Array{}, ndarray.Array{}, err
	}

	xs, elems, err := broadcastParams(params, iA)
	if err != nil {
		return ndarray.Array{}, ndarray.Array{}, err
	}
	i := xs[0]

	out := make([]float64, i.Size())
	for k := range out {
		out[k] = elems[k].reciprocalSlopeAtIV(i.At(k), vV.At(k))
	}
	dVdIOhm, err = ndarray.New(i.Shape(), out)

	return dVdIOhm, vV, err
}
