package sde

import (
	"github.com/helioforge/pvsde/ndarray"
	"github.com/helioforge/pvsde/rootfind"
)

// IAtV computes terminal current at the specified terminal voltage.
//
// Compute strategy, per broadcast element:
//  1. Initial condition from the explicit zero-series-resistance
//     solution I_ic = I_ph − I_rs·(exp(V/n_mod) − 1) − G_p·V.
//  2. Halley iteration on the anode current balance in I, with
//     closed-form first and second derivatives.
//
// opts == nil selects rootfind.DefaultOptions(). The result carries
// the common broadcast shape of vV and the parameter fields.
//
// Errors: ErrConvergence when any element fails to converge (the
// whole call fails, no partial results); ndarray.ErrShapeMismatch for
// incompatible input shapes.
func IAtV(vV ndarray.Array, params ModelParameters, opts *rootfind.Options) (ndarray.Array, error) {
	o := solverOptions(opts)

	xs, elems, err := broadcastParams(params, vV)
	if err != nil {
		return ndarray.Array{}, err
	}
	v := xs[0]

	out := make([]float64, v.Size())
	var failed int
	var firstErr error
	for k := range out {
		iA, kerr := elems[k].iAtV(v.At(k), o)
		if kerr != nil {
			failed++
			if firstErr == nil {
				firstErr = kerr
			}

			continue
		}
		out[k] = iA
	}
	if failed > 0 {
		return ndarray.Array{}, convergenceFailure("IAtV", failed, len(out), firstErr)
	}

	return ndarray.New(v.Shape(), out)
}
