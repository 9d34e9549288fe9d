package sde

import (
	"fmt"

	"github.com/helioforge/pvsde/ndarray"
	"github.com/helioforge/pvsde/rootfind"
)

// VAtI computes terminal voltage at the specified terminal current.
//
// Compute strategy, per broadcast element:
//  1. Initial condition from the explicit zero-shunt-conductance
//     solution V_ic = n_mod·(ln(I_ph + I_rs − I) − ln(I_rs)) − I·R_s.
//  2. Halley iteration on the anode current balance in V, with
//     closed-form first and second derivatives.
//
// The initial condition is undefined when I_ph + I_rs − I ≤ 0, i.e.
// when the requested current is at or above the short-circuit
// asymptote; that case fails with ErrDomain before any iteration
// starts. Same all-or-nothing convergence contract as IAtV.
func VAtI(iA ndarray.Array, params ModelParameters, opts *rootfind.Options) (ndarray.Array, error) {
	o := solverOptions(opts)

	xs, elems, err := broadcastParams(params, iA)
	if err != nil {
		return ndarray.Array{}, err
	}
	i := xs[0]

	// Domain gate: the log argument must be positive everywhere.
	for k, e := range elems {
		if arg := e.iphA + e.irsA - i.At(k); arg <= 0 {
			return ndarray.Array{}, fmt.Errorf(
				"sde: VAtI: I_ph_A + I_rs_A - I_A = %g at element %d: %w", arg, k, ErrDomain)
		}
	}

	out := make([]float64, i.Size())
	var failed int
	var firstErr error
	for k := range out {
		vV, kerr := elems[k].vAtI(i.At(k), o)
		if kerr != nil {
			failed++
			if firstErr == nil {
				firstErr = kerr
			}

			continue
		}
		out[k] = vV
	}
	if failed > 0 {
		return ndarray.Array{}, convergenceFailure("VAtI", failed, len(out), firstErr)
	}

	return ndarray.New(i.Shape(), out)
}
