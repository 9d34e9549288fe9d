package sde

import (
	"math"

	"github.com/helioforge/pvsde/ndarray"
	"github.com/helioforge/pvsde/rootfind"
)

// PAtV computes terminal power P = V·I at the specified terminal
// voltage, together with the terminal current.
func PAtV(vV ndarray.Array, params ModelParameters, opts *rootfind.Options) (pW, iA ndarray.Array, err error) {
	iA, err = IAtV(vV, params, opts)
	if err != nil {
		return ndarray.Array{}, ndarray.Array{}, err
	}

	pW, err = ndarray.Zip(func(v, i float64) float64 { return v * i }, vV, iA)

	return pW, iA, err
}

// MaxPower locates the maximum-power point for the given parameters.
//
// Compute strategy, per broadcast element:
//  1. V_oc via VAtI(I=0); the knee lies in (0, V_oc).
//  2. Initial condition V_mp = 0.75·V_oc.
//  3. Newton iteration on dP/dV = dI/dV·V + I with derivative
//     d²P/dV² = d²I/dV²·V + 2·dI/dV, both in closed form from the
//     derivative curves; every dP/dV evaluation solves the element's
//     inner current root-find.
//  4. I_mp at the converged V_mp; P_mp = V_mp·I_mp.
//
// Failure of any element's inner or outer solve fails the whole call
// with ErrConvergence.
func MaxPower(params ModelParameters, opts *rootfind.Options) (MaxPowerResult, error) {
	o := solverOptions(opts)

	vocV, err := VAtI(ndarray.Scalar(0), params, opts)
	if err != nil {
		return MaxPowerResult{}, err
	}

	xs, elems, err := broadcastParams(params, vocV)
	if err != nil {
		return MaxPowerResult{}, err
	}
	voc := xs[0]

	vmp := make([]float64, voc.Size())
	imp := make([]float64, voc.Size())
	pmp := make([]float64, voc.Size())
	var failed int
	var firstErr error
	for k := range vmp {
		e := elems[k]

		// An inner IAtV failure surfaces as NaN, which the outer
		// iteration then reports as a convergence failure.
		dPdV := func(v float64) (f, df float64) {
			iA, ierr := e.iAtV(v, o)
			if ierr != nil {
				return math.NaN(), math.NaN()
			}
			d2, d1 := e.curvatureAtIV(iA, v)

			return d1*v + iA, d2*v + 2*d1
		}

		vmpK, kerr := rootfind.Newton(dPdV, 0.75*voc.At(k), o)
		if kerr == nil {
			var impK float64
			if impK, kerr = e.iAtV(vmpK, o); kerr == nil {
				vmp[k], imp[k], pmp[k] = vmpK, impK, vmpK*impK
			}
		}
		if kerr != nil {
			failed++
			if firstErr == nil {
				firstErr = kerr
			}
		}
	}
	if failed > 0 {
		return MaxPowerResult{}, convergenceFailure("MaxPower", failed, len(vmp), firstErr)
	}

	shape := voc.Shape()
	out := MaxPowerResult{VocV: voc}
	if out.PmpW, err = ndarray.New(shape, pmp); err != nil {
		return MaxPowerResult{}, err
	}
	if out.ImpA, err = ndarray.New(shape, imp); err != nil {
		return MaxPowerResult{}, err
	}
	if out.VmpV, err = ndarray.New(shape, vmp); err != nil {
		return MaxPowerResult{}, err
	}

	return out, nil
}
